// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package icosa

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexDirection_UnitNorm(t *testing.T) {
	for id := 0; id < NumVertices; id++ {
		norm := VertexDirection(id).Norm()
		assert.InDelta(t, 1.0, norm, 1e-12, "vertex %d", id)
	}
}

func TestVertexDirection_Distinct(t *testing.T) {
	for a := 0; a < NumVertices; a++ {
		for b := a + 1; b < NumVertices; b++ {
			d := VertexDirection(a).Sub(VertexDirection(b).Vector).Norm()
			assert.Greater(t, d, 0.5, "vertices %d and %d coincide", a, b)
		}
	}
}

func TestVertexDirection_OutOfRange(t *testing.T) {
	assert.Panics(t, func() { VertexDirection(-1) })
	assert.Panics(t, func() { VertexDirection(NumVertices) })
}

func TestFaceVertices_EachVertexInFiveFaces(t *testing.T) {
	count := make([]int, NumVertices)
	for f := 0; f < NumFaces; f++ {
		for _, v := range FaceVertices(f) {
			count[v]++
		}
	}
	for v, c := range count {
		assert.Equal(t, 5, c, "vertex %d", v)
	}
}

// Every face triple must wind CCW when looking out of the sphere, i.e. the
// triple product of its corner directions is positive.
func TestFaceVertices_CCWWinding(t *testing.T) {
	for f := 0; f < NumFaces; f++ {
		fv := FaceVertices(f)
		u := VertexDirection(fv[0]).Vector
		v := VertexDirection(fv[1]).Vector
		w := VertexDirection(fv[2]).Vector
		assert.Positive(t, u.Dot(v.Cross(w)), "face %d winds CW", f)
	}
}

// A coherently oriented closed surface traverses every shared edge in
// opposite directions from its two faces.
func TestFaceVertices_CoherentOrientation(t *testing.T) {
	directed := make(map[[2]int]int)
	for f := 0; f < NumFaces; f++ {
		fv := FaceVertices(f)
		for i := 0; i < 3; i++ {
			directed[[2]int{fv[i], fv[(i+1)%3]}]++
		}
	}
	require.Len(t, directed, 2*NumEdges)
	for e, c := range directed {
		assert.Equal(t, 1, c, "directed edge %v", e)
		assert.Equal(t, 1, directed[[2]int{e[1], e[0]}], "reverse of edge %v", e)
	}
}

func TestEdgeVertices_Ordering(t *testing.T) {
	for e := 0; e < NumEdges; e++ {
		ev := EdgeVertices(e)
		assert.Less(t, ev[0], ev[1], "edge %d", e)
		if e > 0 {
			prev := EdgeVertices(e - 1)
			less := prev[0] < ev[0] || (prev[0] == ev[0] && prev[1] < ev[1])
			assert.True(t, less, "edges %d and %d out of lexicographic order", e-1, e)
		}
	}
}

func TestEdgeIndex_Roundtrip(t *testing.T) {
	for e := 0; e < NumEdges; e++ {
		ev := EdgeVertices(e)
		assert.Equal(t, e, EdgeIndex(ev[0], ev[1]))
		assert.Equal(t, e, EdgeIndex(ev[1], ev[0]))
	}
}

func TestEdgeIndex_NonEdgePanics(t *testing.T) {
	assert.Panics(t, func() { EdgeIndex(0, 0) })
	// Vertices 0 and 3 are antipodal, never adjacent.
	assert.Panics(t, func() { EdgeIndex(0, 3) })
	assert.Panics(t, func() { EdgeIndex(-1, 0) })
}

func TestFacesSharingEdge(t *testing.T) {
	for e := 0; e < NumEdges; e++ {
		ev := EdgeVertices(e)
		fs := FacesSharingEdge(e)
		require.Less(t, fs[0], fs[1], "edge %d", e)
		for _, f := range fs {
			fv := FaceVertices(f)
			has := func(v int) bool { return fv[0] == v || fv[1] == v || fv[2] == v }
			assert.True(t, has(ev[0]) && has(ev[1]),
				"face %d does not contain edge %d endpoints", f, e)
		}
	}
}

// Neighboring vertex directions of the icosahedron are separated by
// atan(2) ≈ 63.435°.
func TestEdgeVertices_ArcLength(t *testing.T) {
	want := math.Atan(2)
	for e := 0; e < NumEdges; e++ {
		ev := EdgeVertices(e)
		angle := VertexDirection(ev[0]).Angle(VertexDirection(ev[1]).Vector).Radians()
		assert.InDelta(t, want, angle, 1e-12, "edge %d", e)
	}
}
