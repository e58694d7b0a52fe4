// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package dcel

import (
	"fmt"
	"slices"
)

// AddEdge inserts an edge between two existing vertices and returns the
// half-edge from source to target.
//
// The new half-edge leaving source is placed immediately before
// beforeSource in the clockwise rotation of source, so that
// Next(Twin(new)) == beforeSource; likewise at target. NoEdge is accepted
// for a vertex of degree 0 or 1. Both references must lie on the same face,
// which the edge then splits in two. The cycle on the left of the new
// source-to-target half-edge gets the new face, unless the split face is
// the outer face and a layout is configured, in which case the cycle with
// the larger signed area becomes the new bounded face.
func (g *DCEL[V]) AddEdge(source, target V, beforeSource, beforeTarget HalfEdge) (HalfEdge, error) {
	si, ok := g.index[source]
	if !ok {
		return NoEdge, fmt.Errorf("AddEdge(%v, %v): %w: %v", source, target, ErrVertexNotFound, source)
	}
	ti, ok := g.index[target]
	if !ok {
		return NoEdge, fmt.Errorf("AddEdge(%v, %v): %w: %v", source, target, ErrVertexNotFound, target)
	}
	if si == ti {
		return NoEdge, fmt.Errorf("AddEdge(%v, %v): %w", source, target, ErrSelfLoop)
	}
	if _, ok := g.edges[edgeKey{si, ti}]; ok {
		return NoEdge, fmt.Errorf("AddEdge(%v, %v): %w", source, target, ErrEdgeExists)
	}
	bs, err := g.placement(si, beforeSource)
	if err != nil {
		return NoEdge, fmt.Errorf("AddEdge(%v, %v): %w", source, target, err)
	}
	bt, err := g.placement(ti, beforeTarget)
	if err != nil {
		return NoEdge, fmt.Errorf("AddEdge(%v, %v): %w", source, target, err)
	}
	if bs == NoEdge && bt == NoEdge && g.numEdges > 0 {
		return NoEdge, fmt.Errorf("AddEdge(%v, %v): %w", source, target, ErrDisconnected)
	}
	if bs != NoEdge && bt != NoEdge && g.halfEdges[bs].face != g.halfEdges[bt].face {
		return NoEdge, fmt.Errorf("AddEdge(%v, %v): %w: corners lie on different faces", source, target, ErrBadPlacement)
	}
	if bs != NoEdge && bt != NoEdge {
		if err := g.sameCycle(bs, bt); err != nil {
			return NoEdge, fmt.Errorf("AddEdge(%v, %v): %w", source, target, err)
		}
	}

	n := g.allocPair(si, ti)
	m := n ^ 1
	switch {
	case bs == NoEdge && bt == NoEdge:
		g.link(n, m)
		g.link(m, n)
		f := g.allocFace(n, true)
		g.outer = f
		g.halfEdges[n].face = f
		g.halfEdges[m].face = f
		if g.opts.FaceFactory != nil {
			g.faces[f].data = g.opts.FaceFactory(n, m, true)
		}
	case bs == NoEdge:
		in := g.halfEdges[bt].prev
		f := g.halfEdges[bt].face
		g.link(in, m)
		g.link(m, n)
		g.link(n, bt)
		g.halfEdges[n].face = f
		g.halfEdges[m].face = f
	case bt == NoEdge:
		in := g.halfEdges[bs].prev
		f := g.halfEdges[bs].face
		g.link(in, n)
		g.link(n, m)
		g.link(m, bs)
		g.halfEdges[n].face = f
		g.halfEdges[m].face = f
	default:
		if err := g.split(n, bs, bt); err != nil {
			return NoEdge, fmt.Errorf("AddEdge(%v, %v): %w", source, target, err)
		}
	}

	g.attach(si, n)
	g.attach(ti, m)
	g.edges[edgeKey{si, ti}] = n
	g.edges[edgeKey{ti, si}] = m
	g.numEdges++
	if g.opts.EdgeFactory != nil {
		g.edgeData[n>>1] = g.opts.EdgeFactory(source, target)
	}
	return n, nil
}

// placement resolves the rotation reference for vertex vi.
func (g *DCEL[V]) placement(vi int32, before HalfEdge) (HalfEdge, error) {
	vx := g.vertices[vi]
	if before == NoEdge {
		switch vx.degree {
		case 0:
			return NoEdge, nil
		case 1:
			return vx.edge, nil
		}
		return NoEdge, fmt.Errorf("%w: %v", ErrAmbiguousPlacement, vx.id)
	}
	if !g.live(before) || g.halfEdges[before].origin != vi {
		return NoEdge, fmt.Errorf("%w: half-edge %d does not leave %v", ErrBadPlacement, before, vx.id)
	}
	return before, nil
}

// sameCycle checks that the face cycle through bs closes and passes bt.
func (g *DCEL[V]) sameCycle(bs, bt HalfEdge) error {
	es, err := g.cycle(bs)
	if err != nil {
		return err
	}
	if !slices.Contains(es, bt) {
		return fmt.Errorf("%w: half-edges %d and %d are labelled with one face but lie on different cycles", ErrCorrupted, bs, bt)
	}
	return nil
}

// split links n and its twin between the corners before bs and bt, which
// lie on one closed face cycle, and labels the two resulting cycles.
func (g *DCEL[V]) split(n, bs, bt HalfEdge) error {
	m := n ^ 1
	f := g.halfEdges[bs].face
	inS := g.halfEdges[bs].prev
	inT := g.halfEdges[bt].prev
	g.link(inS, n)
	g.link(n, bt)
	g.link(inT, m)
	g.link(m, bs)

	side := n
	if g.faces[f].outer && g.opts.Layout != nil {
		an, okn := g.cycleArea(n)
		am, okm := g.cycleArea(m)
		if okn && okm && am > an {
			side = m
		}
	}
	nf := g.allocFace(side, false)
	if err := g.relabel(side, nf); err != nil {
		return err
	}
	g.halfEdges[side^1].face = f
	g.faces[f].edge = side ^ 1
	if g.opts.FaceFactory != nil {
		g.faces[nf].data = g.opts.FaceFactory(side, side^1, false)
	}
	return nil
}

// RemoveEdge deletes the edge between source and target. When the edge
// separates two faces they are merged; the outer face survives a merge.
// Removing the last edge of the graph drops the outer face.
func (g *DCEL[V]) RemoveEdge(source, target V) error {
	si, ok := g.index[source]
	if !ok {
		return fmt.Errorf("RemoveEdge(%v, %v): %w: %v", source, target, ErrVertexNotFound, source)
	}
	ti, ok := g.index[target]
	if !ok {
		return fmt.Errorf("RemoveEdge(%v, %v): %w: %v", source, target, ErrVertexNotFound, target)
	}
	e, ok := g.edges[edgeKey{si, ti}]
	if !ok {
		return fmt.Errorf("RemoveEdge(%v, %v): %w", source, target, ErrEdgeNotFound)
	}
	m := e ^ 1
	fe := g.halfEdges[e].face
	fm := g.halfEdges[m].face
	ds := g.vertices[si].degree
	dt := g.vertices[ti].degree
	if fe == fm && ds > 1 && dt > 1 {
		return fmt.Errorf("RemoveEdge(%v, %v): %w", source, target, ErrDisconnected)
	}

	a := g.halfEdges[e].prev
	b := g.halfEdges[m].next
	c := g.halfEdges[m].prev
	d := g.halfEdges[e].next
	switch {
	case ds == 1 && dt == 1:
		g.freeFace(fe)
		g.outer = NoFace
	case ds == 1:
		g.link(c, d)
		g.faces[fe].edge = d
	case dt == 1:
		g.link(a, b)
		g.faces[fe].edge = b
	default:
		g.link(a, b)
		g.link(c, d)
		keep, drop := fe, fm
		if g.faces[fm].outer {
			keep, drop = fm, fe
		}
		if err := g.relabel(b, keep); err != nil {
			return fmt.Errorf("RemoveEdge(%v, %v): %w", source, target, err)
		}
		g.faces[keep].edge = b
		g.freeFace(drop)
	}

	if g.vertices[si].edge == e {
		g.vertices[si].edge = NoEdge
		if ds > 1 {
			g.vertices[si].edge = b
		}
	}
	if g.vertices[ti].edge == m {
		g.vertices[ti].edge = NoEdge
		if dt > 1 {
			g.vertices[ti].edge = d
		}
	}
	g.vertices[si].degree--
	g.vertices[ti].degree--
	delete(g.edges, edgeKey{si, ti})
	delete(g.edges, edgeKey{ti, si})
	g.freePair(e)
	g.numEdges--
	return nil
}

// SplitEdge inserts v in the middle of the edge from source to target and
// returns the half-edge from v to target. The half-edge from source to
// target keeps its handle and now ends at v. v must be absent or isolated.
func (g *DCEL[V]) SplitEdge(source, target, v V) (HalfEdge, error) {
	si, ok := g.index[source]
	if !ok {
		return NoEdge, fmt.Errorf("SplitEdge(%v, %v, %v): %w: %v", source, target, v, ErrVertexNotFound, source)
	}
	ti, ok := g.index[target]
	if !ok {
		return NoEdge, fmt.Errorf("SplitEdge(%v, %v, %v): %w: %v", source, target, v, ErrVertexNotFound, target)
	}
	e, ok := g.edges[edgeKey{si, ti}]
	if !ok {
		return NoEdge, fmt.Errorf("SplitEdge(%v, %v, %v): %w", source, target, v, ErrEdgeNotFound)
	}
	vi, ok := g.index[v]
	if ok && g.vertices[vi].degree != 0 {
		return NoEdge, fmt.Errorf("SplitEdge(%v, %v, %v): %w", source, target, v, ErrVertexInUse)
	}
	if !ok {
		vi = g.addVertex(v)
	}

	tw := e ^ 1
	en := g.halfEdges[e].next
	tp := g.halfEdges[tw].prev
	f := g.allocPair(vi, ti)
	f2 := f ^ 1
	if en == tw {
		en = f2
	}
	if tp == e {
		tp = f
	}
	g.halfEdges[tw].origin = vi
	g.link(f, en)
	g.link(e, f)
	g.link(tp, f2)
	g.link(f2, tw)
	g.halfEdges[f].face = g.halfEdges[e].face
	g.halfEdges[f2].face = g.halfEdges[tw].face

	if g.vertices[ti].edge == tw {
		g.vertices[ti].edge = f2
	}
	g.vertices[vi].edge = f
	g.vertices[vi].degree = 2

	delete(g.edges, edgeKey{si, ti})
	delete(g.edges, edgeKey{ti, si})
	g.edges[edgeKey{si, vi}] = e
	g.edges[edgeKey{vi, si}] = tw
	g.edges[edgeKey{vi, ti}] = f
	g.edges[edgeKey{ti, vi}] = f2
	g.numEdges++
	if g.opts.EdgeFactory != nil {
		g.edgeData[e>>1] = g.opts.EdgeFactory(source, v)
		g.edgeData[f>>1] = g.opts.EdgeFactory(v, target)
	}
	return f, nil
}

// Flip replaces the edge of e, the shared diagonal of two bounded
// triangles, with the opposite diagonal of their quadrilateral. e keeps its
// handle and payload. If e ran from a to b with c on its left and d on its
// right, it now runs from d to c.
func (g *DCEL[V]) Flip(e HalfEdge) error {
	if !g.live(e) {
		return fmt.Errorf("Flip(%d): %w", e, ErrEdgeNotFound)
	}
	m := e ^ 1
	f1 := g.halfEdges[e].face
	f2 := g.halfEdges[m].face
	if g.faces[f1].outer || g.faces[f2].outer {
		return fmt.Errorf("Flip(%d): %w: borders the outer face", e, ErrNotFlippable)
	}
	e1 := g.halfEdges[e].next
	e2 := g.halfEdges[e1].next
	m1 := g.halfEdges[m].next
	m2 := g.halfEdges[m1].next
	if g.halfEdges[e2].next != e || g.halfEdges[m2].next != m {
		return fmt.Errorf("Flip(%d): %w: face is not a triangle", e, ErrNotFlippable)
	}
	a := g.halfEdges[e].origin
	b := g.halfEdges[m].origin
	c := g.halfEdges[e2].origin
	d := g.halfEdges[m2].origin
	if c == d {
		return fmt.Errorf("Flip(%d): %w: opposite vertices coincide", e, ErrNotFlippable)
	}
	if _, ok := g.edges[edgeKey{c, d}]; ok {
		return fmt.Errorf("Flip(%d): %w: diagonal already present", e, ErrNotFlippable)
	}

	delete(g.edges, edgeKey{a, b})
	delete(g.edges, edgeKey{b, a})
	g.halfEdges[e].origin = d
	g.halfEdges[m].origin = c
	g.link(e, e2)
	g.link(e2, m1)
	g.link(m1, e)
	g.link(m, m2)
	g.link(m2, e1)
	g.link(e1, m)
	g.halfEdges[e].face = f1
	g.halfEdges[e2].face = f1
	g.halfEdges[m1].face = f1
	g.halfEdges[m].face = f2
	g.halfEdges[m2].face = f2
	g.halfEdges[e1].face = f2
	g.faces[f1].edge = e
	g.faces[f2].edge = m

	if g.vertices[a].edge == e {
		g.vertices[a].edge = m1
	}
	if g.vertices[b].edge == m {
		g.vertices[b].edge = e1
	}
	g.vertices[a].degree--
	g.vertices[b].degree--
	g.attach(c, m)
	g.attach(d, e)
	g.edges[edgeKey{d, c}] = e
	g.edges[edgeKey{c, d}] = m
	return nil
}

func (g *DCEL[V]) link(a, b HalfEdge) {
	g.halfEdges[a].next = b
	g.halfEdges[b].prev = a
}

// attach records a new half-edge e leaving vi.
func (g *DCEL[V]) attach(vi int32, e HalfEdge) {
	if g.vertices[vi].degree == 0 {
		g.vertices[vi].edge = e
	}
	g.vertices[vi].degree++
}

func (g *DCEL[V]) allocPair(si, ti int32) HalfEdge {
	var n HalfEdge
	if k := len(g.freeEdges); k > 0 {
		n = g.freeEdges[k-1]
		g.freeEdges = g.freeEdges[:k-1]
		g.edgeData[n>>1] = nil
	} else {
		n = HalfEdge(len(g.halfEdges))
		g.halfEdges = append(g.halfEdges, halfEdge{}, halfEdge{})
		g.edgeData = append(g.edgeData, nil)
	}
	g.halfEdges[n] = halfEdge{origin: si, next: NoEdge, prev: NoEdge, face: NoFace}
	g.halfEdges[n^1] = halfEdge{origin: ti, next: NoEdge, prev: NoEdge, face: NoFace}
	return n
}

func (g *DCEL[V]) freePair(e HalfEdge) {
	e &^= 1
	g.halfEdges[e] = halfEdge{origin: -1, next: NoEdge, prev: NoEdge, face: NoFace}
	g.halfEdges[e^1] = halfEdge{origin: -1, next: NoEdge, prev: NoEdge, face: NoFace}
	g.edgeData[e>>1] = nil
	g.freeEdges = append(g.freeEdges, e)
}

func (g *DCEL[V]) allocFace(e HalfEdge, outer bool) Face {
	var f Face
	if k := len(g.freeFaces); k > 0 {
		f = g.freeFaces[k-1]
		g.freeFaces = g.freeFaces[:k-1]
	} else {
		f = Face(len(g.faces))
		g.faces = append(g.faces, face{})
	}
	g.faces[f] = face{edge: e, outer: outer}
	g.numFaces++
	return f
}

func (g *DCEL[V]) freeFace(f Face) {
	g.faces[f] = face{edge: NoEdge}
	g.freeFaces = append(g.freeFaces, f)
	g.numFaces--
}

// relabel assigns f to every half-edge of the cycle through e.
func (g *DCEL[V]) relabel(e HalfEdge, f Face) error {
	x := e
	for range len(g.halfEdges) {
		g.halfEdges[x].face = f
		x = g.halfEdges[x].next
		if x == e {
			return nil
		}
	}
	return fmt.Errorf("%w: face cycle through half-edge %d does not close", ErrCorrupted, e)
}
