// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package geodesic indexes the triangular lattice of a subdivided icosahedron
// and stitches the 20 per-face grids into one canonical vertex set. Everything
// here is integer and combinatorial; no floating point is involved.
//
// A frequency n splits every icosahedron edge into n segments, giving each
// face an (n+1)(n+2)/2 point lattice. Points on shared edges and corners are
// addressed by several faces; canonical ids resolve every address to a single
// identifier by fixed formulas, so the result never depends on construction
// order:
//
//   - ids [0, 12) are the icosahedron vertices,
//   - ids [12, 12+30(n-1)) are edge points, blocked per edge and ordered from
//     the edge's lower-numbered endpoint,
//   - remaining ids are face-interior points, blocked per face in row-major
//     order.
package geodesic

import (
	"errors"
	"fmt"

	"github.com/2dChan/s2goldberg/icosa"
)

// ErrInvalidFrequency is returned when the requested subdivision frequency is
// below 1.
var ErrInvalidFrequency = errors.New("geodesic: frequency must be at least 1")

// NumVertices returns the number of canonical lattice vertices at frequency n.
func NumVertices(n int) int {
	return 10*n*n + 2
}

// NumTriangles returns the number of small triangles at frequency n.
func NumTriangles(n int) int {
	return 20 * n * n
}

// NumEdges returns the number of lattice edges at frequency n.
func NumEdges(n int) int {
	return 30 * n * n
}

// Coord addresses one lattice point of a subdivided icosahedron face. I and J
// are the integer barycentric weights of the face's first and second corner;
// the third weight is n-I-J. Corners are therefore (n,0), (0,n) and (0,0).
type Coord struct {
	Face int
	I    int
	J    int
}

// Subdivision is the canonical integer lattice over all 20 icosahedron faces
// at a fixed frequency. It is immutable after construction.
type Subdivision struct {
	Frequency int

	// Triangles lists every small triangle as a canonical vertex id triple in
	// CCW winding order when looking out of the sphere. The n*n triangles of
	// face f occupy the range [f*n*n, (f+1)*n*n).
	Triangles [][3]int

	triCoords   [][3]Coord
	sides       [icosa.NumFaces][3]faceSide
	cornerOwner [icosa.NumVertices]Coord
}

// NewSubdivision builds the canonical lattice at the given frequency.
// It returns ErrInvalidFrequency for n < 1 without allocating anything.
func NewSubdivision(n int) (*Subdivision, error) {
	if n < 1 {
		return nil, ErrInvalidFrequency
	}

	s := &Subdivision{Frequency: n}
	s.buildSides()
	s.buildCornerOwners()
	s.buildTriangles()
	return s, nil
}

// NumVertices returns the number of canonical lattice vertices.
func (s *Subdivision) NumVertices() int {
	return NumVertices(s.Frequency)
}

// NumTriangles returns the number of small triangles across all faces.
func (s *Subdivision) NumTriangles() int {
	return NumTriangles(s.Frequency)
}

// CanonicalID resolves a lattice coordinate to its canonical vertex id. Every
// addressing of a shared point resolves to the same id regardless of which
// face it is addressed from. It panics if c is not a valid coordinate.
func (s *Subdivision) CanonicalID(c Coord) int {
	n := s.Frequency
	if c.Face < 0 || c.Face >= icosa.NumFaces || c.I < 0 || c.J < 0 || c.I+c.J > n {
		panic(fmt.Sprintf("CanonicalID: coordinate %+v out of range at frequency %d", c, n))
	}

	fv := icosa.FaceVertices(c.Face)
	k := n - c.I - c.J
	switch {
	case c.I == n:
		return fv[0]
	case c.J == n:
		return fv[1]
	case k == n:
		return fv[2]
	case k == 0:
		return s.edgeVertexID(fv[0], fv[1], c.J)
	case c.J == 0:
		return s.edgeVertexID(fv[2], fv[0], c.I)
	case c.I == 0:
		return s.edgeVertexID(fv[1], fv[2], n-c.J)
	default:
		return s.interiorVertexID(c.Face, c.I, c.J)
	}
}

// edgeVertexID returns the canonical id of the point t steps from vertex x
// toward vertex y along their shared edge, 0 < t < n.
func (s *Subdivision) edgeVertexID(x, y, t int) int {
	e := icosa.EdgeIndex(x, y)
	if x != icosa.EdgeVertices(e)[0] {
		t = s.Frequency - t
	}
	return icosa.NumVertices + e*(s.Frequency-1) + t - 1
}

func (s *Subdivision) interiorVertexID(f, i, j int) int {
	n := s.Frequency
	base := icosa.NumVertices + icosa.NumEdges*(n-1)
	perFace := (n - 1) * (n - 2) / 2
	row := (i-1)*(n-1) - i*(i-1)/2
	return base + f*perFace + row + j - 1
}

// VertexCoord returns the owning coordinate of a canonical vertex id: the
// lattice address on the lowest-numbered face containing the point. It is the
// inverse of CanonicalID restricted to owner coordinates. It panics if id is
// out of range.
func (s *Subdivision) VertexCoord(id int) Coord {
	n := s.Frequency
	if id < 0 || id >= s.NumVertices() {
		panic(fmt.Sprintf("VertexCoord: id %d out of range [0 %d)", id, s.NumVertices()))
	}

	if id < icosa.NumVertices {
		return s.cornerOwner[id]
	}
	id -= icosa.NumVertices

	edgePoints := icosa.NumEdges * (n - 1)
	if id < edgePoints {
		return s.edgeCoord(id/(n-1), id%(n-1)+1)
	}
	id -= edgePoints

	perFace := (n - 1) * (n - 2) / 2
	f := id / perFace
	r := id % perFace
	i := 1
	for r >= n-1-i {
		r -= n - 1 - i
		i++
	}
	return Coord{Face: f, I: i, J: r + 1}
}

// edgeCoord returns the owner coordinate of the edge point t steps from the
// lower-numbered endpoint of undirected edge e.
func (s *Subdivision) edgeCoord(e, t int) Coord {
	f := icosa.FacesSharingEdge(e)[0]
	for si, sd := range s.sides[f] {
		if sd.edge != e {
			continue
		}
		if sd.start != icosa.EdgeVertices(e)[0] {
			t = s.Frequency - t
		}
		i, j := sideCoord(si, t, s.Frequency)
		return Coord{Face: f, I: i, J: j}
	}
	panic(fmt.Sprintf("edgeCoord: edge %d not on face %d", e, f))
}

// TriangleFace returns the icosahedron face owning small triangle t.
func (s *Subdivision) TriangleFace(t int) int {
	if t < 0 || t >= s.NumTriangles() {
		panic(fmt.Sprintf("TriangleFace: triangle %d out of range [0 %d)", t, s.NumTriangles()))
	}
	return t / (s.Frequency * s.Frequency)
}

// TriangleCoords returns the lattice coordinates of small triangle t's
// corners, in the same order as its entry in Triangles.
func (s *Subdivision) TriangleCoords(t int) [3]Coord {
	if t < 0 || t >= s.NumTriangles() {
		panic(fmt.Sprintf("TriangleCoords: triangle %d out of range [0 %d)", t, s.NumTriangles()))
	}
	return s.triCoords[t]
}

func (s *Subdivision) buildCornerOwners() {
	n := s.Frequency
	seen := [icosa.NumVertices]bool{}
	for f := 0; f < icosa.NumFaces; f++ {
		fv := icosa.FaceVertices(f)
		corners := [3]Coord{
			{Face: f, I: n},
			{Face: f, J: n},
			{Face: f},
		}
		for i, v := range fv {
			if !seen[v] {
				seen[v] = true
				s.cornerOwner[v] = corners[i]
			}
		}
	}
}

func (s *Subdivision) buildTriangles() {
	n := s.Frequency
	s.Triangles = make([][3]int, 0, s.NumTriangles())
	s.triCoords = make([][3]Coord, 0, s.NumTriangles())

	for f := 0; f < icosa.NumFaces; f++ {
		// Upward triangles, then downward. Both wind CCW looking out of the
		// sphere because the face's corner triple does.
		for i := 0; i < n; i++ {
			for j := 0; i+j < n; j++ {
				s.appendTriangle(
					Coord{Face: f, I: i, J: j},
					Coord{Face: f, I: i + 1, J: j},
					Coord{Face: f, I: i, J: j + 1},
				)
			}
		}
		for i := 0; i+1 < n; i++ {
			for j := 0; i+j+2 <= n; j++ {
				s.appendTriangle(
					Coord{Face: f, I: i + 1, J: j + 1},
					Coord{Face: f, I: i, J: j + 1},
					Coord{Face: f, I: i + 1, J: j},
				)
			}
		}
	}
}

func (s *Subdivision) appendTriangle(a, b, c Coord) {
	s.Triangles = append(s.Triangles, [3]int{
		s.CanonicalID(a),
		s.CanonicalID(b),
		s.CanonicalID(c),
	})
	s.triCoords = append(s.triCoords, [3]Coord{a, b, c})
}
