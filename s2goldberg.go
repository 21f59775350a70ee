// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package s2goldberg generates Goldberg polyhedra: tilings of the unit sphere
// by 12 pentagons and 10n²-10 hexagons, built as the dual of an icosahedron
// whose faces are subdivided n times. All topology is derived with integer
// arithmetic; floating point enters only when canonical lattice points are
// projected onto the sphere by spherical interpolation.
package s2goldberg

import (
	"errors"
	"fmt"

	"github.com/2dChan/s2goldberg/geodesic"
	"github.com/2dChan/s2goldberg/icosa"
	"github.com/2dChan/s2goldberg/slerp"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

const defaultEps = 1e-12

var (
	// ErrInvalidFrequency is returned when the requested subdivision
	// frequency is below 1.
	ErrInvalidFrequency = geodesic.ErrInvalidFrequency

	// ErrIndexOutOfRange is returned by accessors queried with a face or
	// vertex index that does not exist.
	ErrIndexOutOfRange = errors.New("s2goldberg: index out of range")
)

// Polyhedron is a generated Goldberg polyhedron. It is immutable after
// construction: every query is read-only and deterministic for a fixed
// frequency.
//
// Face indices are canonical lattice vertex ids of the underlying subdivided
// icosahedron; faces 0..11 are the pentagons, anchored at the icosahedron
// vertices.
type Polyhedron struct {
	Frequency int

	// Centers[i] is the projected lattice point at the center of face i.
	Centers s2.PointVector
	// Vertices holds the tiling corners, one per small triangle of the
	// subdivided icosahedron, projected from its exact lattice centroid.
	Vertices s2.PointVector
	// Centroids[i] is the spherical mean of face i's boundary corners.
	Centroids s2.PointVector

	// NOTE: Sort in CCW per face(look out of sphere)
	FaceVertices []int
	// NOTE: Sort in CCW per face(look out of sphere)
	FaceNeighbors []int
	FaceOffsets   []int

	radius float64
}

// PolyhedronOptions holds the tunable construction parameters.
type PolyhedronOptions struct {
	// Eps bounds the spherical interpolation convergence.
	Eps float64
	// Radius scales the mesh buffers; topology and the unit-sphere point
	// vectors are unaffected.
	Radius float64
}

// PolyhedronOption mutates PolyhedronOptions, reporting invalid settings.
type PolyhedronOption func(*PolyhedronOptions) error

// WithEps sets the convergence tolerance of the spherical interpolation used
// to project lattice points. It rejects non-positive values.
func WithEps(eps float64) PolyhedronOption {
	return func(o *PolyhedronOptions) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps = %v, want positive", eps)
		}
		o.Eps = eps
		return nil
	}
}

// WithRadius sets the sphere radius applied to mesh buffer output.
// It rejects non-positive values.
func WithRadius(r float64) PolyhedronOption {
	return func(o *PolyhedronOptions) error {
		if r <= 0 {
			return fmt.Errorf("WithRadius: radius = %v, want positive", r)
		}
		o.Radius = r
		return nil
	}
}

// NewPolyhedron generates the Goldberg polyhedron of the given subdivision
// frequency. It returns ErrInvalidFrequency for frequencies below 1 before
// building any table; no partially constructed object is ever returned.
func NewPolyhedron(frequency int, setters ...PolyhedronOption) (*Polyhedron, error) {
	opts := PolyhedronOptions{
		Eps:    defaultEps,
		Radius: 1,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	sub, err := geodesic.NewSubdivision(frequency)
	if err != nil {
		return nil, err
	}

	p := &Polyhedron{
		Frequency: frequency,
		radius:    opts.Radius,
	}
	p.buildDualGraph(sub)
	p.project(sub, opts.Eps)
	return p, nil
}

// NumFaces returns the number of faces, 10n²+2 for frequency n.
func (p *Polyhedron) NumFaces() int {
	return len(p.Centers)
}

// Adjacency returns the undirected edges of the face adjacency graph as index
// pairs, smaller index first. Every edge appears exactly once; the list is
// 30n² long for frequency n.
func (p *Polyhedron) Adjacency() [][2]int {
	edges := make([][2]int, 0, len(p.FaceNeighbors)/2)
	for v := 0; v < p.NumFaces(); v++ {
		for _, nb := range p.FaceNeighbors[p.FaceOffsets[v]:p.FaceOffsets[v+1]] {
			if v < nb {
				edges = append(edges, [2]int{v, nb})
			}
		}
	}
	return edges
}

// Position returns the projected unit-sphere position of a canonical lattice
// vertex, which is also the center of the face with the same index. Results
// are computed once at construction and reused on repeat query.
// It returns an error wrapping ErrIndexOutOfRange if id is out of range.
func (p *Polyhedron) Position(id int) (s2.Point, error) {
	if id < 0 || id >= len(p.Centers) {
		return s2.Point{}, fmt.Errorf("Position: index %d out of range [0 %d): %w",
			id, len(p.Centers), ErrIndexOutOfRange)
	}
	return p.Centers[id], nil
}

// buildDualGraph converts the subdivision into the dual tiling using CRS
// arrays: face i's boundary corners are the triangles incident to lattice
// vertex i, sorted into a CCW fan, and its k-th neighbor is the lattice
// vertex across the k-th fan triangle.
func (p *Polyhedron) buildDualGraph(sub *geodesic.Subdivision) {
	numFaces := sub.NumVertices()
	numTriangles := sub.NumTriangles()

	offsets := make([]int, numFaces+1)
	for _, tri := range sub.Triangles {
		for _, v := range tri {
			offsets[v+1]++
		}
	}
	for i := 0; i < numFaces; i++ {
		offsets[i+1] += offsets[i]
	}

	incident := make([]int, numTriangles*3)
	nxt := make([]int, numFaces)
	copy(nxt, offsets[:numFaces])
	for i, tri := range sub.Triangles {
		for _, v := range tri {
			incident[nxt[v]] = i
			nxt[v]++
		}
	}

	neighbors := make([]int, numTriangles*3)
	for v := 0; v < numFaces; v++ {
		fan := incident[offsets[v]:offsets[v+1]]
		want := 6
		if v < icosa.NumVertices {
			want = 5
		}
		if len(fan) != want {
			panic(fmt.Sprintf(
				"s2goldberg: inconsistent stitching: face %d has %d incident triangles, want %d",
				v, len(fan), want))
		}
		sortFanCCW(v, fan, sub.Triangles)
		for i, tIdx := range fan {
			neighbors[offsets[v]+i] = nextVertex(sub.Triangles[tIdx], v)
		}
	}

	p.FaceVertices = incident
	p.FaceNeighbors = neighbors
	p.FaceOffsets = offsets

	p.checkAdjacency()
}

// checkAdjacency verifies neighbor symmetry before the polyhedron is
// released. A violation denotes a bug in the stitching tables, not a runtime
// condition, so it is fatal.
func (p *Polyhedron) checkAdjacency() {
	for v := 0; v < p.NumFaces(); v++ {
		for _, nb := range p.FaceNeighbors[p.FaceOffsets[v]:p.FaceOffsets[v+1]] {
			back := false
			for _, w := range p.FaceNeighbors[p.FaceOffsets[nb]:p.FaceOffsets[nb+1]] {
				if w == v {
					back = true
					break
				}
			}
			if !back {
				panic(fmt.Sprintf(
					"s2goldberg: inconsistent adjacency: face %d lists %d but not vice versa",
					v, nb))
			}
		}
	}
}

// project computes every floating-point position of the polyhedron: face
// centers from their lattice coordinates, tiling corners from exact triangle
// centroids (denominator 3n), and face centroids as spherical means of the
// boundary corners. Weights are integer ratios, so results depend only on
// (frequency, id).
func (p *Polyhedron) project(sub *geodesic.Subdivision, eps float64) {
	p.Centers = make(s2.PointVector, sub.NumVertices())
	for id := range p.Centers {
		c := sub.VertexCoord(id)
		w := [3]float64{
			float64(c.I),
			float64(c.J),
			float64(sub.Frequency - c.I - c.J),
		}
		p.Centers[id] = s2.Point{Vector: slerp.Mean3(w, faceCorners(c.Face), eps)}
	}

	p.Vertices = make(s2.PointVector, sub.NumTriangles())
	for t := range p.Vertices {
		var si, sj int
		for _, c := range sub.TriangleCoords(t) {
			si += c.I
			sj += c.J
		}
		w := [3]float64{
			float64(si),
			float64(sj),
			float64(3*sub.Frequency - si - sj),
		}
		p.Vertices[t] = s2.Point{Vector: slerp.Mean3(w, faceCorners(sub.TriangleFace(t)), eps)}
	}

	p.Centroids = make(s2.PointVector, len(p.Centers))
	for v := range p.Centroids {
		start, end := p.FaceOffsets[v], p.FaceOffsets[v+1]
		pts := make([]r3.Vector, end-start)
		weights := make([]float64, end-start)
		for i, idx := range p.FaceVertices[start:end] {
			pts[i] = p.Vertices[idx].Vector
			weights[i] = 1
		}
		p.Centroids[v] = s2.Point{Vector: slerp.Mean(weights, pts, eps)}
	}
}

// faceCorners returns the corner directions of an icosahedron face in the
// order matching lattice weights (I, J, n-I-J).
func faceCorners(face int) [3]r3.Vector {
	fv := icosa.FaceVertices(face)
	return [3]r3.Vector{
		icosa.VertexDirection(fv[0]).Vector,
		icosa.VertexDirection(fv[1]).Vector,
		icosa.VertexDirection(fv[2]).Vector,
	}
}

// sortFanCCW orders the triangles incident to vertex v so that each fan entry
// follows its predecessor across their shared edge through v. In a triangle
// (v,a,b) winding CCW looking out of the sphere, b sits CCW of a around v, so
// chaining the successor's next vertex onto the predecessor's prev vertex
// walks the fan CCW. A fan that cannot be closed denotes broken stitching and
// is fatal.
func sortFanCCW(v int, fan []int, triangles [][3]int) {
	n := len(fan)
	for i := 1; i < n; i++ {
		prv := prevVertex(triangles[fan[i-1]], v)
		found := false
		for j := i; j < n; j++ {
			if nextVertex(triangles[fan[j]], v) == prv {
				fan[i], fan[j] = fan[j], fan[i]
				found = true
				break
			}
		}
		if !found {
			panic(fmt.Sprintf(
				"s2goldberg: inconsistent stitching: broken triangle fan around face %d", v))
		}
	}
}

func prevVertex(t [3]int, v int) int {
	switch v {
	case t[0]:
		return t[2]
	case t[1]:
		return t[0]
	case t[2]:
		return t[1]
	}
	panic("prevVertex: vertex not in triangle")
}

func nextVertex(t [3]int, v int) int {
	switch v {
	case t[0]:
		return t[1]
	case t[1]:
		return t[2]
	case t[2]:
		return t[0]
	}
	panic("nextVertex: vertex not in triangle")
}
