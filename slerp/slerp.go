// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package slerp provides spherical linear interpolation and weighted
// spherical averages of unit vectors. Interpolation follows great-circle
// arcs, never straight-line blending.
package slerp

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

const (
	// DefaultEps bounds the tangent-space update norm at convergence.
	DefaultEps = 1e-12

	maxIterations = 64
)

// Interpolate returns the point a fraction t of the way along the great-circle
// arc from a to b. Inputs must be unit vectors; t outside [0, 1] extrapolates
// along the same arc.
func Interpolate(a, b r3.Vector, t float64) r3.Vector {
	theta := a.Angle(b).Radians()
	if theta == 0 {
		return a
	}
	sin := math.Sin(theta)
	return a.Mul(math.Sin((1-t)*theta) / sin).
		Add(b.Mul(math.Sin(t*theta) / sin)).
		Normalize()
}

// Mean returns the weighted spherical average of the given unit vectors using
// the local linear convergence algorithm (A1) of Buss and Fillmore,
// "Spherical Averages and Applications to Spherical Splines and
// Interpolation". Weights are normalized internally and must sum to a
// positive value; eps bounds the tangent update norm at convergence, with
// DefaultEps used when eps <= 0.
func Mean(weights []float64, points []r3.Vector, eps float64) r3.Vector {
	if len(points) == 0 || len(weights) != len(points) {
		panic(fmt.Sprintf("Mean: got %d weights for %d points", len(weights), len(points)))
	}
	if eps <= 0 {
		eps = DefaultEps
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		panic(fmt.Sprintf("Mean: weights sum to %v, want positive", total))
	}

	q := r3.Vector{}
	for i, p := range points {
		q = q.Add(p.Mul(weights[i] / total))
	}
	q = q.Normalize()

	for it := 0; it < maxIterations; it++ {
		var u r3.Vector
		for i, p := range points {
			u = u.Add(logMap(q, p).Mul(weights[i] / total))
		}
		q = expMap(q, u)
		if u.Norm() < eps {
			break
		}
	}
	return q
}

// Mean3 is shorthand for Mean over three points.
func Mean3(w [3]float64, p [3]r3.Vector, eps float64) r3.Vector {
	return Mean(w[:], p[:], eps)
}

// logMap maps p onto the tangent plane of the sphere at q. The result has
// magnitude equal to the arc angle between p and q, pointing from q toward p.
// Inverse of expMap.
func logMap(q, p r3.Vector) r3.Vector {
	r := p.Angle(q).Radians()
	k := 1.0
	if r != 0 {
		k = r / math.Sin(r)
	}
	return p.Sub(q.Mul(math.Cos(r))).Mul(k)
}

// expMap maps a tangent vector dp at q back onto the sphere, preserving
// distance and direction.
func expMap(q, dp r3.Vector) r3.Vector {
	r := dp.Norm()
	k := 1.0
	if r != 0 {
		k = math.Sin(r) / r
	}
	return q.Mul(math.Cos(r)).Add(dp.Mul(k))
}
