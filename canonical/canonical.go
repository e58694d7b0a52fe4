// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package canonical computes canonical orderings of maximal planar graphs.
//
// A canonical ordering v1..vn starts with two adjacent vertices of the outer
// face. Every later vertex vk has at least two neighbours among v1..vk-1,
// and those neighbours form one contiguous arc of its rotation. Shift and
// Schnyder style grid drawing algorithms place vertices in this order.
package canonical

import (
	"fmt"

	"github.com/2dChan/planar/dcel"
	"github.com/2dChan/planar/internal/logger"
)

var (
	ErrNilGraph      = fmt.Errorf("%w: nil graph", dcel.ErrInvalidArgument)
	ErrNotOnBoundary = fmt.Errorf("%w: vertex is not on the outer face", dcel.ErrInvalidArgument)
)

type kind uint8

const (
	unprocessed kind = iota
	oneProcessed
	pending
	ready
	processed
)

// status is the state of one vertex. anchor is meaningful for oneProcessed,
// runs for pending and ready.
type status[V comparable] struct {
	kind   kind
	anchor V
	// runs is the number of contiguous arcs of processed neighbours in the
	// rotation.
	runs int
}

// Order returns a canonical ordering of g starting at first, which must lie
// on the outer face. The second vertex is the one preceding first on the
// outer face.
//
// g must be maximal planar. Other input yields an order that is missing
// vertices, without an error.
func Order[V comparable](g *dcel.DCEL[V], first V) ([]V, error) {
	if g == nil {
		return nil, fmt.Errorf("Order: %w", ErrNilGraph)
	}
	if !g.HasVertex(first) {
		return nil, fmt.Errorf("Order(%v): %w", first, dcel.ErrVertexNotFound)
	}
	second, ok := boundaryPredecessor(g, first)
	if !ok {
		return nil, fmt.Errorf("Order(%v): %w", first, ErrNotOnBoundary)
	}

	st := make(map[V]status[V], g.NumVertices())
	st[first] = status[V]{kind: ready, runs: 1}
	st[second] = status[V]{kind: ready, runs: 1}
	queue := []V{first, second}
	order := make([]V, 0, g.NumVertices())

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if st[v].kind != ready {
			continue
		}
		for _, w := range g.Neighbors(v) {
			if w == v || w == first || w == second {
				continue
			}
			s := st[w]
			switch s.kind {
			case processed:
				continue
			case unprocessed:
				st[w] = status[V]{kind: oneProcessed, anchor: v}
			case oneProcessed:
				prev, _ := g.PrevVertex(w, v)
				next, _ := g.NextVertex(v, w)
				initial := s.anchor == first && v == second
				if s.anchor == next || (s.anchor == prev && !initial) {
					st[w] = status[V]{kind: ready, runs: 1}
					queue = append(queue, w)
				} else {
					st[w] = status[V]{kind: pending, runs: 2}
				}
			case pending, ready:
				prev, _ := g.PrevVertex(w, v)
				next, _ := g.NextVertex(v, w)
				before, after := st[prev].kind == processed, st[next].kind == processed
				runs := s.runs
				switch {
				case before && after:
					runs = max(runs-1, 1)
				case !before && !after:
					runs++
				}
				if runs == 1 {
					if s.kind != ready {
						queue = append(queue, w)
					}
					st[w] = status[V]{kind: ready, runs: 1}
				} else {
					st[w] = status[V]{kind: pending, runs: runs}
				}
			}
		}
		st[v] = status[V]{kind: processed}
		order = append(order, v)
	}

	if len(order) != g.NumVertices() {
		logger.Get().Debug("canonical: partial order, graph is not maximal planar",
			"ordered", len(order), "vertices", g.NumVertices())
	}
	return order, nil
}

// boundaryPredecessor returns the source of the outer face half-edge that
// enters v.
func boundaryPredecessor[V comparable](g *dcel.DCEL[V], v V) (V, bool) {
	for _, h := range g.EdgesOf(v) {
		if g.IsOuter(g.FaceOf(g.Twin(h))) {
			return g.Target(h), true
		}
	}
	var zero V
	return zero, false
}
