// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2goldberg

import (
	"fmt"

	"github.com/golang/geo/s2"
)

// Face represents one tile of the polyhedron, a pentagon or a hexagon. It is
// a view structure for accessing a face in a Polyhedron; the face's index is
// the canonical id of the lattice vertex at its center.
type Face struct {
	idx int
	p   *Polyhedron
}

// Face returns the face at the specified index.
// It returns an error wrapping ErrIndexOutOfRange if i is out of range.
func (p *Polyhedron) Face(i int) (Face, error) {
	if i < 0 || i >= p.NumFaces() {
		return Face{}, fmt.Errorf("Face: index %d out of range [0 %d): %w",
			i, p.NumFaces(), ErrIndexOutOfRange)
	}
	return Face{idx: i, p: p}, nil
}

// Faces returns all faces in construction order. The order is identical
// across calls and across polyhedra of the same frequency.
func (p *Polyhedron) Faces() []Face {
	faces := make([]Face, p.NumFaces())
	for i := range faces {
		faces[i] = Face{idx: i, p: p}
	}
	return faces
}

// Index returns the index of the face in the Polyhedron.
func (f Face) Index() int {
	return f.idx
}

// IsPentagon reports whether the face has five sides. Exactly twelve faces
// do, one per icosahedron vertex; all others are hexagons.
func (f Face) IsPentagon() bool {
	return f.NumVertices() == 5
}

// Center returns the projected lattice point at the center of the face.
func (f Face) Center() s2.Point {
	return f.p.Centers[f.idx]
}

// Centroid returns the spherical mean of the face's boundary corners. This is
// not the Euclidean average: it is computed along great-circle arcs, keeping
// tile shapes uniform near the icosahedron seams.
func (f Face) Centroid() s2.Point {
	return f.p.Centroids[f.idx]
}

// NumVertices returns the number of boundary corners of the face.
// This equals the number of neighbors.
func (f Face) NumVertices() int {
	return f.p.FaceOffsets[f.idx+1] - f.p.FaceOffsets[f.idx]
}

// VertexIndices returns the indices of the corners that form the face in the
// Polyhedron's Vertices, sorted in counter-clockwise order when looking out
// of the sphere.
func (f Face) VertexIndices() []int {
	return f.p.FaceVertices[f.p.FaceOffsets[f.idx]:f.p.FaceOffsets[f.idx+1]]
}

// Vertex returns the boundary corner at the specified index.
// It returns an error wrapping ErrIndexOutOfRange if i is out of range.
func (f Face) Vertex(i int) (s2.Point, error) {
	start := f.p.FaceOffsets[f.idx]
	end := f.p.FaceOffsets[f.idx+1]
	if i < 0 || i >= end-start {
		return s2.Point{}, fmt.Errorf("Vertex: index %d out of range [0 %d): %w",
			i, end-start, ErrIndexOutOfRange)
	}
	return f.p.Vertices[f.p.FaceVertices[start+i]], nil
}

// Vertices returns the boundary polygon of the face in counter-clockwise
// winding order when looking out of the sphere. The slice is freshly
// allocated on each call.
func (f Face) Vertices() []s2.Point {
	indices := f.VertexIndices()
	pts := make([]s2.Point, len(indices))
	for i, idx := range indices {
		pts[i] = f.p.Vertices[idx]
	}
	return pts
}

// NumNeighbors returns the number of neighboring faces.
// This equals the number of vertices.
func (f Face) NumNeighbors() int {
	return f.p.FaceOffsets[f.idx+1] - f.p.FaceOffsets[f.idx]
}

// NeighborIndices returns the indices of the neighboring faces in the
// Polyhedron, sorted in counter-clockwise order when looking out of the
// sphere.
func (f Face) NeighborIndices() []int {
	return f.p.FaceNeighbors[f.p.FaceOffsets[f.idx]:f.p.FaceOffsets[f.idx+1]]
}

// Neighbor returns the neighboring face at the specified index.
// It returns an error wrapping ErrIndexOutOfRange if i is out of range.
func (f Face) Neighbor(i int) (Face, error) {
	start := f.p.FaceOffsets[f.idx]
	end := f.p.FaceOffsets[f.idx+1]
	if i < 0 || i >= end-start {
		return Face{}, fmt.Errorf("Neighbor: index %d out of range [0 %d): %w",
			i, end-start, ErrIndexOutOfRange)
	}
	return f.p.Face(f.p.FaceNeighbors[start+i])
}
