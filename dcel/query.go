// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package dcel

import (
	"fmt"
	"slices"
)

// EdgesOf returns the half-edges leaving v in clockwise rotation order,
// starting at OutgoingEdge(v). It returns nil if v is absent or isolated.
func (g *DCEL[V]) EdgesOf(v V) []HalfEdge {
	vi, ok := g.index[v]
	if !ok || g.vertices[vi].edge == NoEdge {
		return nil
	}
	start := g.vertices[vi].edge
	es := make([]HalfEdge, 0, g.vertices[vi].degree)
	e := start
	for range len(g.halfEdges) {
		es = append(es, e)
		e = g.halfEdges[e^1].next
		if e == start {
			break
		}
	}
	return es
}

// Neighbors returns the targets of EdgesOf(v).
func (g *DCEL[V]) Neighbors(v V) []V {
	es := g.EdgesOf(v)
	if es == nil {
		return nil
	}
	ns := make([]V, len(es))
	for i, e := range es {
		ns[i] = g.Target(e)
	}
	return ns
}

// NextVertex returns the vertex reached after target when walking the face
// on the left of the half-edge from source to target.
func (g *DCEL[V]) NextVertex(source, target V) (V, error) {
	e, ok := g.Edge(source, target)
	if !ok {
		var zero V
		return zero, fmt.Errorf("NextVertex(%v, %v): %w", source, target, ErrEdgeNotFound)
	}
	return g.Target(g.halfEdges[e].next), nil
}

// PrevVertex returns the vertex visited before source when walking the
// face on the left of the half-edge from source to target.
func (g *DCEL[V]) PrevVertex(source, target V) (V, error) {
	e, ok := g.Edge(source, target)
	if !ok {
		var zero V
		return zero, fmt.Errorf("PrevVertex(%v, %v): %w", source, target, ErrEdgeNotFound)
	}
	return g.Source(g.halfEdges[e].prev), nil
}

// IsBoundary reports whether the half-edge from source to target lies on
// the outer face.
func (g *DCEL[V]) IsBoundary(source, target V) (bool, error) {
	e, ok := g.Edge(source, target)
	if !ok {
		return false, fmt.Errorf("IsBoundary(%v, %v): %w", source, target, ErrEdgeNotFound)
	}
	return g.halfEdges[e].face == g.outer, nil
}

// FaceBoundary returns the half-edges of f in walk order, starting at
// FaceEdge(f).
func (g *DCEL[V]) FaceBoundary(f Face) ([]HalfEdge, error) {
	if f < 0 || int(f) >= len(g.faces) || g.faces[f].edge == NoEdge {
		return nil, fmt.Errorf("FaceBoundary(%d): %w: face not found", f, ErrInvalidArgument)
	}
	return g.cycle(g.faces[f].edge)
}

// FaceVertices returns the sources of FaceBoundary(f).
func (g *DCEL[V]) FaceVertices(f Face) ([]V, error) {
	es, err := g.FaceBoundary(f)
	if err != nil {
		return nil, err
	}
	vs := make([]V, len(es))
	for i, e := range es {
		vs[i] = g.Source(e)
	}
	return vs, nil
}

// BoundaryVertices returns the distinct vertices on the outer face in
// walk order.
func (g *DCEL[V]) BoundaryVertices() []V {
	if g.outer == NoFace {
		return nil
	}
	es, err := g.cycle(g.faces[g.outer].edge)
	if err != nil {
		return nil
	}
	seen := make(map[int32]bool, len(es))
	var vs []V
	for _, e := range es {
		vi := g.halfEdges[e].origin
		if !seen[vi] {
			seen[vi] = true
			vs = append(vs, g.vertices[vi].id)
		}
	}
	return vs
}

func (g *DCEL[V]) cycle(start HalfEdge) ([]HalfEdge, error) {
	var es []HalfEdge
	e := start
	for range len(g.halfEdges) {
		es = append(es, e)
		e = g.halfEdges[e].next
		if e == start {
			return es, nil
		}
	}
	return nil, fmt.Errorf("%w: face cycle through half-edge %d does not close", ErrCorrupted, start)
}

// Validate checks the structural invariants: twin, next and prev
// coherence, closed face cycles covering every half-edge exactly once,
// rotation cycles matching vertex degrees, and the edge index.
func (g *DCEL[V]) Validate() error {
	live := 0
	for i, he := range g.halfEdges {
		if he.origin < 0 {
			continue
		}
		live++
		e := HalfEdge(i)
		switch {
		case !g.live(he.next) || !g.live(he.prev):
			return fmt.Errorf("%w: half-edge %d links a dead half-edge", ErrCorrupted, e)
		case g.halfEdges[he.next].prev != e || g.halfEdges[he.prev].next != e:
			return fmt.Errorf("%w: next/prev mismatch at half-edge %d", ErrCorrupted, e)
		case g.halfEdges[he.next].origin != g.halfEdges[e^1].origin:
			return fmt.Errorf("%w: half-edge %d is not followed by an edge leaving its target", ErrCorrupted, e)
		case he.face < 0 || int(he.face) >= len(g.faces) || g.faces[he.face].edge == NoEdge:
			return fmt.Errorf("%w: half-edge %d lies on a dead face", ErrCorrupted, e)
		case g.halfEdges[he.next].face != he.face:
			return fmt.Errorf("%w: face changes along the cycle at half-edge %d", ErrCorrupted, e)
		case !g.vertices[he.origin].alive:
			return fmt.Errorf("%w: half-edge %d leaves a removed vertex", ErrCorrupted, e)
		}
		if got, ok := g.edges[edgeKey{he.origin, g.halfEdges[e^1].origin}]; !ok || got != e {
			return fmt.Errorf("%w: edge index out of date for half-edge %d", ErrCorrupted, e)
		}
	}
	if live != 2*g.numEdges || len(g.edges) != live {
		return fmt.Errorf("%w: %d live half-edges for %d edges", ErrCorrupted, live, g.numEdges)
	}

	covered, outers, faces := 0, 0, 0
	for i, fc := range g.faces {
		if fc.edge == NoEdge {
			continue
		}
		faces++
		if fc.outer {
			outers++
		}
		es, err := g.cycle(fc.edge)
		if err != nil {
			return err
		}
		for _, e := range es {
			if g.halfEdges[e].face != Face(i) {
				return fmt.Errorf("%w: half-edge %d on the cycle of face %d is labeled %d", ErrCorrupted, e, i, g.halfEdges[e].face)
			}
		}
		covered += len(es)
	}
	if covered != live {
		return fmt.Errorf("%w: face cycles cover %d of %d half-edges", ErrCorrupted, covered, live)
	}
	if faces != g.numFaces {
		return fmt.Errorf("%w: %d live faces, counted %d", ErrCorrupted, faces, g.numFaces)
	}
	switch {
	case g.numEdges == 0 && (outers != 0 || g.outer != NoFace),
		g.numEdges > 0 && (outers != 1 || g.outer == NoFace || !g.faces[g.outer].outer):
		return fmt.Errorf("%w: %d outer faces for %d edges", ErrCorrupted, outers, g.numEdges)
	}

	for vi, vx := range g.vertices {
		if !vx.alive {
			continue
		}
		if vx.degree == 0 {
			if vx.edge != NoEdge {
				return fmt.Errorf("%w: isolated vertex %v has an anchor", ErrCorrupted, vx.id)
			}
			continue
		}
		if !g.live(vx.edge) || g.halfEdges[vx.edge].origin != int32(vi) {
			return fmt.Errorf("%w: anchor of %v does not leave it", ErrCorrupted, vx.id)
		}
		steps := 0
		e := vx.edge
		for {
			steps++
			e = g.halfEdges[e^1].next
			if e == vx.edge || steps > vx.degree {
				break
			}
		}
		if steps != vx.degree || e != vx.edge {
			return fmt.Errorf("%w: rotation of %v has wrong length, want %d", ErrCorrupted, vx.id, vx.degree)
		}
	}
	return nil
}

// EqualGraph reports whether a and b have the same vertices and edges.
func EqualGraph[V comparable](a, b *DCEL[V]) bool {
	if a.NumVertices() != b.NumVertices() || a.NumEdges() != b.NumEdges() {
		return false
	}
	for _, v := range a.Vertices() {
		if !b.HasVertex(v) {
			return false
		}
	}
	for _, e := range a.Edges() {
		if _, ok := b.Edge(a.Source(e), a.Target(e)); !ok {
			return false
		}
	}
	return true
}

// EqualEmbedding reports whether a and b have the same vertices and the
// same cyclic rotation of neighbors around every vertex.
func EqualEmbedding[V comparable](a, b *DCEL[V]) bool {
	if !EqualGraph(a, b) {
		return false
	}
	for _, v := range a.Vertices() {
		if !CyclicEqual(a.Neighbors(v), b.Neighbors(v)) {
			return false
		}
	}
	return true
}

// CyclicEqual reports whether b is a rotation of a.
func CyclicEqual[V comparable](a, b []V) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	for off := range b {
		if b[off] == a[0] && slices.Equal(a, append(slices.Clone(b[off:]), b[:off]...)) {
			return true
		}
	}
	return false
}
