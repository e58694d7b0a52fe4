// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides point set and graph generators for planar subdivisions.

package utils

import (
	"math"
	"math/rand"
	"slices"

	"github.com/2dChan/planar/dcel"
	"github.com/golang/geo/r2"
)

// hexDirections are the six lattice neighbors in axial coordinates,
// counter-clockwise from the +x axis.
var hexDirections = [6][2]int{{1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {0, -1}, {1, -1}}

// GenerateRandomPoints generates points uniformly distributed in the unit square.
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, cnt)

	for i := range cnt {
		points[i] = r2.Point{X: random.Float64(), Y: random.Float64()}
	}

	return points
}

type hexPoint struct {
	a, b  int
	norm  int
	angle float64
}

func (h hexPoint) point(spacing float64) r2.Point {
	return r2.Point{
		X: (float64(h.a) + float64(h.b)/2) * spacing,
		Y: float64(h.b) * math.Sqrt(3) / 2 * spacing,
	}
}

// hexCircle returns the n triangular lattice points closest to the origin,
// ordered by distance and then by counter-clockwise angle from the +x axis.
func hexCircle(n int) []hexPoint {
	if n <= 0 {
		return nil
	}
	r := int(math.Sqrt(float64(n))) + 2
	candidates := make([]hexPoint, 0, (2*r+1)*(2*r+1))
	for a := -r; a <= r; a++ {
		for b := -r; b <= r; b++ {
			h := hexPoint{a: a, b: b, norm: a*a + a*b + b*b}
			p := h.point(1)
			h.angle = math.Atan2(p.Y, p.X)
			if h.angle < 0 {
				h.angle += 2 * math.Pi
			}
			candidates = append(candidates, h)
		}
	}
	slices.SortFunc(candidates, func(x, y hexPoint) int {
		if x.norm != y.norm {
			return x.norm - y.norm
		}
		switch {
		case x.angle < y.angle:
			return -1
		case x.angle > y.angle:
			return 1
		}
		return 0
	})
	return candidates[:n]
}

// HexCircle returns the n points of a triangular lattice with the given
// spacing that lie closest to the origin. Point 0 is the origin and points
// 1 to 6 its neighbors counter-clockwise from the +x axis; further points
// follow by distance, then angle.
func HexCircle(n int, spacing float64) []r2.Point {
	hs := hexCircle(n)
	points := make([]r2.Point, len(hs))
	for i, h := range hs {
		points[i] = h.point(spacing)
	}
	return points
}

// HexCircleGraph returns the triangular lattice graph on HexCircle(n, spacing),
// with vertices numbered by their index, and its layout. Every pair of
// lattice neighbors is joined by a straight-line edge.
func HexCircleGraph(n int, spacing float64) (*dcel.DCEL[int], *dcel.MapLayout[int], error) {
	hs := hexCircle(n)
	layout := dcel.NewMapLayout[int]()
	index := make(map[[2]int]int, len(hs))
	for i, h := range hs {
		layout.SetPosition(i, h.point(spacing))
		index[[2]int{h.a, h.b}] = i
	}

	g, err := dcel.New(dcel.WithLayout[int](layout))
	if err != nil {
		return nil, nil, err
	}
	for i := range hs {
		if err := g.AddVertex(i); err != nil {
			return nil, nil, err
		}
	}
	for i, h := range hs {
		for _, d := range hexDirections {
			j, ok := index[[2]int{h.a + d[0], h.b + d[1]}]
			if !ok || j >= i {
				continue
			}
			if _, err := dcel.ConnectByAngle(g, layout, i, j); err != nil {
				return nil, nil, err
			}
		}
	}
	return g, layout, nil
}
