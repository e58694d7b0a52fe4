// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

const (
	defaultEps = 1e-12
)

// LiftedTriangles returns the Delaunay triangles of points as index triples
// in counter-clockwise order. It lifts the points onto the paraboloid
// z = x^2 + y^2 and keeps the lower faces of their convex hull, so it is
// independent of GenerateGraph. Points must be in general position.
// eps is the hull tolerance; zero selects the default.
func LiftedTriangles(points []r2.Point, eps float64) ([][3]int, error) {
	if eps < 0 {
		return nil, fmt.Errorf("LiftedTriangles: eps must be non-negative, got %v", eps)
	}
	if eps == 0 {
		eps = defaultEps
	}
	if len(points) < 4 {
		return nil, errors.New("delaunay: insufficient points for lifted triangulation (minimum 4 required)")
	}

	lifted := make([]r3.Vector, len(points))
	var centroid r3.Vector
	for i, p := range points {
		lifted[i] = r3.Vector{X: p.X, Y: p.Y, Z: p.X*p.X + p.Y*p.Y}
		centroid = centroid.Add(lifted[i])
	}
	centroid = centroid.Mul(1 / float64(len(points)))

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, eps)
	if len(ch.Indices)%3 != 0 {
		return nil, errors.New("delaunay: inconsistent number of indices returned from QuickHull")
	}

	var tris [][3]int
	for i := 0; i < len(ch.Indices); i += 3 {
		t := [3]int{ch.Indices[i], ch.Indices[i+1], ch.Indices[i+2]}
		a, b, c := lifted[t[0]], lifted[t[1]], lifted[t[2]]
		norm := b.Sub(a).Cross(c.Sub(a))
		if norm.Dot(centroid.Sub(a)) > 0 {
			norm = norm.Mul(-1)
		}
		if norm.Z >= -eps*norm.Norm() {
			continue
		}
		if Orient(points[t[0]], points[t[1]], points[t[2]]) < 0 {
			t[1], t[2] = t[2], t[1]
		}
		tris = append(tris, t)
	}
	return tris, nil
}
