// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2goldberg

import (
	"github.com/golang/geo/r3"
)

// Mesh buffer generation. Corners are duplicated per face so a renderer can
// assign flat per-face normals; pentagons occupy the first 12*5 slots, then
// hexagons follow in face order. All three buffers index consistently.

// NumMeshVertices returns the length of the vertex and normal buffers:
// one slot per face corner, corners duplicated per face.
func (p *Polyhedron) NumMeshVertices() int {
	return len(p.FaceVertices)
}

// MeshVertices returns the vertex buffer of the polyhedron mesh, scaled by
// the configured radius. The slice is freshly allocated on each call.
func (p *Polyhedron) MeshVertices() []r3.Vector {
	vertices := make([]r3.Vector, len(p.FaceVertices))
	for i, idx := range p.FaceVertices {
		vertices[i] = p.Vertices[idx].Mul(p.radius)
	}
	return vertices
}

// MeshTriangles returns the triangle index buffer: each face is fanned from
// its first corner, 3 triangles per pentagon and 4 per hexagon, preserving
// the CCW winding of the face boundary.
func (p *Polyhedron) MeshTriangles() []int {
	// A face with m corners fans into m-2 triangles.
	triangles := make([]int, 0, 3*(len(p.FaceVertices)-2*p.NumFaces()))

	for v := 0; v < p.NumFaces(); v++ {
		base, end := p.FaceOffsets[v], p.FaceOffsets[v+1]
		for i := base + 1; i+1 < end; i++ {
			triangles = append(triangles, base, i, i+1)
		}
	}
	return triangles
}

// MeshNormals returns the normal buffer: every corner of a face carries the
// face's outward centroid direction, giving flat shading per tile.
func (p *Polyhedron) MeshNormals() []r3.Vector {
	normals := make([]r3.Vector, 0, len(p.FaceVertices))
	for v := 0; v < p.NumFaces(); v++ {
		normal := p.Centroids[v].Vector
		for n := 0; n < p.FaceOffsets[v+1]-p.FaceOffsets[v]; n++ {
			normals = append(normals, normal)
		}
	}
	return normals
}
