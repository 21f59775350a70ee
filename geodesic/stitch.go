// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geodesic

import (
	"fmt"

	"github.com/2dChan/s2goldberg/icosa"
)

// faceSide records how one side of a face glues to its neighbor across the
// shared icosahedron edge. The table is generated once from the base topology
// instead of branching per edge, so every one of the 30 seams is stitched by
// the same rule.
//
// Sides are numbered by the boundary walk of the lattice: side 0 runs along
// j=0 from corner (0,0) to (n,0), side 1 along i+j=n from (n,0) to (0,n), and
// side 2 along i=0 from (0,n) back to (0,0). A side parameter t in [0, n]
// measures progress from the side's start corner, so the three sides traverse
// the face boundary CCW when looking out of the sphere.
type faceSide struct {
	// edge is the undirected icosahedron edge this side lies on.
	edge int
	// start is the icosahedron vertex at parameter 0.
	start int
	// mateFace and mateSide name the gluing side of the adjacent face.
	mateFace int
	mateSide int
}

// sideCoord converts a side parameter to the face-local lattice coordinate.
// Together with the seam reversal t -> n-t this is the linear reindexing
// transform between adjacent faces; the mesh is coherently oriented, so the
// mate face always traverses the shared edge in the opposite direction.
func sideCoord(side, t, n int) (i, j int) {
	switch side {
	case 0:
		return t, 0
	case 1:
		return n - t, t
	case 2:
		return 0, n - t
	}
	panic(fmt.Sprintf("sideCoord: side %d out of range [0 3)", side))
}

// coordSide classifies a boundary coordinate into its side and parameter.
// Corner and interior points return ok=false: corners lie on two sides at
// once and are resolved by the per-vertex owner table instead.
func coordSide(c Coord, n int) (side, t int, ok bool) {
	k := n - c.I - c.J
	switch {
	case c.J == 0 && c.I > 0 && c.I < n:
		return 0, c.I, true
	case k == 0 && c.J > 0 && c.J < n:
		return 1, c.J, true
	case c.I == 0 && c.J > 0 && c.J < n:
		return 2, n - c.J, true
	}
	return 0, 0, false
}

func (s *Subdivision) buildSides() {
	for f := 0; f < icosa.NumFaces; f++ {
		fv := icosa.FaceVertices(f)
		// Side corners in walk order: (c2,c0), (c0,c1), (c1,c2).
		starts := [3]int{fv[2], fv[0], fv[1]}
		ends := [3]int{fv[0], fv[1], fv[2]}
		for si := 0; si < 3; si++ {
			s.sides[f][si] = faceSide{
				edge:     icosa.EdgeIndex(starts[si], ends[si]),
				start:    starts[si],
				mateFace: -1,
				mateSide: -1,
			}
		}
	}

	// Match each side with the side of the adjacent face lying on the same
	// edge. Coherent orientation guarantees the mate runs the opposite way.
	for f := 0; f < icosa.NumFaces; f++ {
		for si := 0; si < 3; si++ {
			sd := &s.sides[f][si]
			shared := icosa.FacesSharingEdge(sd.edge)
			g := shared[0]
			if g == f {
				g = shared[1]
			}
			for gi := 0; gi < 3; gi++ {
				if s.sides[g][gi].edge == sd.edge {
					sd.mateFace = g
					sd.mateSide = gi
					break
				}
			}
			if sd.mateFace == -1 {
				panic(fmt.Sprintf("buildSides: no mate for face %d side %d", f, si))
			}
			if s.sides[sd.mateFace][sd.mateSide].start == sd.start {
				panic(fmt.Sprintf("buildSides: face %d side %d runs the same way as its mate", f, si))
			}
		}
	}
}

// Mate returns the addressing of the same geometric point from the face on
// the other side of the seam. It reports ok=false for corner and interior
// points, which have no single mate.
func (s *Subdivision) Mate(c Coord) (Coord, bool) {
	n := s.Frequency
	if c.Face < 0 || c.Face >= icosa.NumFaces || c.I < 0 || c.J < 0 || c.I+c.J > n {
		panic(fmt.Sprintf("Mate: coordinate %+v out of range at frequency %d", c, n))
	}

	side, t, ok := coordSide(c, n)
	if !ok {
		return Coord{}, false
	}

	sd := s.sides[c.Face][side]
	i, j := sideCoord(sd.mateSide, n-t, n)
	return Coord{Face: sd.mateFace, I: i, J: j}, true
}
