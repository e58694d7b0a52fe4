// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package dcel

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
)

// Layout maps vertices to points in the plane.
type Layout[V comparable] interface {
	Position(v V) (r2.Point, bool)
}

// MutableLayout is a Layout that accepts new positions.
type MutableLayout[V comparable] interface {
	Layout[V]
	SetPosition(v V, p r2.Point)
}

// MapLayout is a map-backed MutableLayout.
type MapLayout[V comparable] struct {
	points map[V]r2.Point
}

func NewMapLayout[V comparable]() *MapLayout[V] {
	return &MapLayout[V]{points: make(map[V]r2.Point)}
}

func (l *MapLayout[V]) Position(v V) (r2.Point, bool) {
	p, ok := l.points[v]
	return p, ok
}

func (l *MapLayout[V]) SetPosition(v V, p r2.Point) {
	l.points[v] = p
}

func (l *MapLayout[V]) Delete(v V) {
	delete(l.points, v)
}

func (l *MapLayout[V]) Len() int {
	return len(l.points)
}

// cycleArea returns the signed area of the face cycle through e, positive
// for a counter-clockwise cycle.
func (g *DCEL[V]) cycleArea(e HalfEdge) (float64, bool) {
	var sum float64
	x := e
	for range len(g.halfEdges) {
		p, ok := g.opts.Layout.Position(g.vertices[g.halfEdges[x].origin].id)
		if !ok {
			return 0, false
		}
		x = g.halfEdges[x].next
		q, ok := g.opts.Layout.Position(g.vertices[g.halfEdges[x].origin].id)
		if !ok {
			return 0, false
		}
		sum += p.Cross(q)
		if x == e {
			return sum / 2, true
		}
	}
	return 0, false
}

// ConnectByAngle adds the straight-line edge from u to v, placing it in
// both rotations according to the positions in layout.
func ConnectByAngle[V comparable](g *DCEL[V], layout Layout[V], u, v V) (HalfEdge, error) {
	pu, ok := layout.Position(u)
	if !ok {
		return NoEdge, fmt.Errorf("ConnectByAngle(%v, %v): %w: no position for %v", u, v, ErrInvalidArgument, u)
	}
	pv, ok := layout.Position(v)
	if !ok {
		return NoEdge, fmt.Errorf("ConnectByAngle(%v, %v): %w: no position for %v", u, v, ErrInvalidArgument, v)
	}
	bu, err := clockwiseSuccessor(g, layout, u, direction(pv.Sub(pu)))
	if err != nil {
		return NoEdge, fmt.Errorf("ConnectByAngle(%v, %v): %w", u, v, err)
	}
	bv, err := clockwiseSuccessor(g, layout, v, direction(pu.Sub(pv)))
	if err != nil {
		return NoEdge, fmt.Errorf("ConnectByAngle(%v, %v): %w", u, v, err)
	}
	return g.AddEdge(u, v, bu, bv)
}

func direction(d r2.Point) s1.Angle {
	return s1.Angle(math.Atan2(d.Y, d.X))
}

// clockwiseSuccessor returns the half-edge leaving v that comes first when
// turning clockwise from direction a.
func clockwiseSuccessor[V comparable](g *DCEL[V], layout Layout[V], v V, a s1.Angle) (HalfEdge, error) {
	pv, _ := layout.Position(v)
	best := NoEdge
	bestTurn := math.Inf(1)
	for _, h := range g.EdgesOf(v) {
		pt, ok := layout.Position(g.Target(h))
		if !ok {
			return NoEdge, fmt.Errorf("%w: no position for %v", ErrInvalidArgument, g.Target(h))
		}
		turn := float64(a - direction(pt.Sub(pv)))
		if turn <= 0 {
			turn += 2 * math.Pi
		}
		if turn < bestTurn {
			best, bestTurn = h, turn
		}
	}
	return best, nil
}
