// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package icosa holds the fixed topology of the regular icosahedron that seeds
// every Goldberg polyhedron: 12 unit vertex directions, 20 faces, and 30 edges.
// All tables are computed once at load time and never mutated.
package icosa

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// Topology constants of the regular icosahedron.
const (
	NumVertices = 12
	NumEdges    = 30
	NumFaces    = 20
)

// faces lists the vertex triple of every face in CCW winding order when
// looking out of the sphere, grouped in four bands of five:
// top, upper middle, lower middle, bottom.
var faces = [NumFaces][3]int{
	{0, 10, 5}, {0, 2, 10}, {0, 8, 2}, {0, 4, 8}, {0, 5, 4},
	{11, 5, 10}, {7, 10, 2}, {6, 2, 8}, {9, 8, 4}, {1, 4, 5},
	{10, 7, 11}, {2, 6, 7}, {8, 9, 6}, {4, 1, 9}, {5, 11, 1},
	{3, 11, 7}, {3, 7, 6}, {3, 6, 9}, {3, 9, 1}, {3, 1, 11},
}

var (
	vertexDirections = computeVertexDirections()

	// edges[e] is the vertex pair of undirected edge e, lower id first.
	// Edges are numbered in lexicographic order of their vertex pairs.
	edges     [NumEdges][2]int
	edgeFaces [NumEdges][2]int
	edgeIndex [NumVertices][NumVertices]int
)

func computeVertexDirections() [NumVertices]s2.Point {
	phi := (1 + math.Sqrt(5)) / 2

	raw := [NumVertices]r3.Vector{
		{X: 1, Z: phi}, {X: 1, Z: -phi},
		{X: -1, Z: phi}, {X: -1, Z: -phi},
		{X: phi, Y: 1}, {X: phi, Y: -1},
		{X: -phi, Y: 1}, {X: -phi, Y: -1},
		{Y: phi, Z: 1}, {Y: phi, Z: -1},
		{Y: -phi, Z: 1}, {Y: -phi, Z: -1},
	}

	var dirs [NumVertices]s2.Point
	for i, v := range raw {
		dirs[i] = s2.Point{Vector: v.Normalize()}
	}
	return dirs
}

func init() {
	var adjacent [NumVertices][NumVertices]bool
	for _, f := range faces {
		for i := 0; i < 3; i++ {
			a, b := f[i], f[(i+1)%3]
			adjacent[a][b] = true
			adjacent[b][a] = true
		}
	}

	for a := 0; a < NumVertices; a++ {
		for b := 0; b < NumVertices; b++ {
			edgeIndex[a][b] = -1
		}
	}

	e := 0
	for a := 0; a < NumVertices; a++ {
		for b := a + 1; b < NumVertices; b++ {
			if !adjacent[a][b] {
				continue
			}
			edges[e] = [2]int{a, b}
			edgeIndex[a][b] = e
			edgeIndex[b][a] = e
			edgeFaces[e] = [2]int{-1, -1}
			e++
		}
	}
	if e != NumEdges {
		panic(fmt.Sprintf("icosa: face table yields %d edges, want %d", e, NumEdges))
	}

	for f, face := range faces {
		for i := 0; i < 3; i++ {
			e := edgeIndex[face[i]][face[(i+1)%3]]
			if edgeFaces[e][0] == -1 {
				edgeFaces[e][0] = f
			} else {
				edgeFaces[e][1] = f
			}
		}
	}
}

// VertexDirection returns the unit direction of the given icosahedron vertex.
// It panics if id is out of range.
func VertexDirection(id int) s2.Point {
	if id < 0 || id >= NumVertices {
		panic(fmt.Sprintf("VertexDirection: id %d out of range [0 %d)", id, NumVertices))
	}
	return vertexDirections[id]
}

// FaceVertices returns the ordered vertex triple of the given face,
// in CCW winding order when looking out of the sphere.
// It panics if f is out of range.
func FaceVertices(f int) [3]int {
	if f < 0 || f >= NumFaces {
		panic(fmt.Sprintf("FaceVertices: face %d out of range [0 %d)", f, NumFaces))
	}
	return faces[f]
}

// EdgeVertices returns the vertex pair of undirected edge e, lower id first.
// It panics if e is out of range.
func EdgeVertices(e int) [2]int {
	if e < 0 || e >= NumEdges {
		panic(fmt.Sprintf("EdgeVertices: edge %d out of range [0 %d)", e, NumEdges))
	}
	return edges[e]
}

// EdgeIndex returns the index of the undirected edge between vertices a and b.
// It panics if a and b do not form an icosahedron edge.
func EdgeIndex(a, b int) int {
	if a < 0 || a >= NumVertices || b < 0 || b >= NumVertices || edgeIndex[a][b] < 0 {
		panic(fmt.Sprintf("EdgeIndex: vertices %d,%d do not form an edge", a, b))
	}
	return edgeIndex[a][b]
}

// FacesSharingEdge returns the two faces incident to undirected edge e,
// lower face id first. It panics if e is out of range.
func FacesSharingEdge(e int) [2]int {
	if e < 0 || e >= NumEdges {
		panic(fmt.Sprintf("FacesSharingEdge: edge %d out of range [0 %d)", e, NumEdges))
	}
	return edgeFaces[e]
}
