// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package dcel implements a connected planar subdivision stored as a doubly
// connected edge list.
//
// Half-edges are addressed by HalfEdge handles and faces by Face handles.
// A half-edge and its twin are allocated together, so Twin(e) == e^1.
// The face of a half-edge is the face on its left: bounded faces are walked
// counter-clockwise and the outer face clockwise. The rotation around a
// vertex is clockwise, the successor of an outgoing half-edge e being
// Next(Twin(e)).
//
// A DCEL is not safe for concurrent use.
package dcel

import (
	"fmt"
)

// HalfEdge is a handle to a directed half-edge.
type HalfEdge int32

// NoEdge is the absent half-edge.
const NoEdge HalfEdge = -1

// Face is a handle to a face.
type Face int32

// NoFace is the absent face.
const NoFace Face = -1

type halfEdge struct {
	origin int32 // -1 while the pair is on the free list
	next   HalfEdge
	prev   HalfEdge
	face   Face
}

type vertex[V comparable] struct {
	id     V
	edge   HalfEdge
	degree int
	alive  bool
}

type face struct {
	edge  HalfEdge // NoEdge while on the free list
	outer bool
	data  any
}

type edgeKey struct {
	s, t int32
}

type DCEL[V comparable] struct {
	vertices  []vertex[V]
	index     map[V]int32
	halfEdges []halfEdge
	edgeData  []any
	faces     []face
	edges     map[edgeKey]HalfEdge

	freeEdges []HalfEdge
	freeFaces []Face

	outer    Face
	numEdges int
	numFaces int

	opts Options[V]
}

type Options[V comparable] struct {
	EdgeFactory EdgeFactory[V]
	FaceFactory FaceFactory
	// Layout, when set, decides which side of a split outer face becomes
	// the new bounded face.
	Layout Layout[V]
}

type Option[V comparable] func(*Options[V]) error

func WithEdgeFactory[V comparable](f EdgeFactory[V]) Option[V] {
	return func(o *Options[V]) error {
		if f == nil {
			return fmt.Errorf("WithEdgeFactory: %w", ErrNilOption)
		}
		o.EdgeFactory = f
		return nil
	}
}

func WithFaceFactory[V comparable](f FaceFactory) Option[V] {
	return func(o *Options[V]) error {
		if f == nil {
			return fmt.Errorf("WithFaceFactory: %w", ErrNilOption)
		}
		o.FaceFactory = f
		return nil
	}
}

func WithLayout[V comparable](l Layout[V]) Option[V] {
	return func(o *Options[V]) error {
		if l == nil {
			return fmt.Errorf("WithLayout: %w", ErrNilOption)
		}
		o.Layout = l
		return nil
	}
}

// New returns an empty DCEL.
func New[V comparable](setters ...Option[V]) (*DCEL[V], error) {
	g := &DCEL[V]{
		index: make(map[V]int32),
		edges: make(map[edgeKey]HalfEdge),
		outer: NoFace,
	}
	for _, set := range setters {
		if err := set(&g.opts); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// AddVertex inserts an isolated vertex.
func (g *DCEL[V]) AddVertex(v V) error {
	if _, ok := g.index[v]; ok {
		return fmt.Errorf("AddVertex(%v): %w", v, ErrVertexExists)
	}
	g.addVertex(v)
	return nil
}

func (g *DCEL[V]) addVertex(v V) int32 {
	vi := int32(len(g.vertices))
	g.vertices = append(g.vertices, vertex[V]{id: v, edge: NoEdge, alive: true})
	g.index[v] = vi
	return vi
}

// RemoveVertex removes an isolated vertex.
func (g *DCEL[V]) RemoveVertex(v V) error {
	vi, ok := g.index[v]
	if !ok {
		return fmt.Errorf("RemoveVertex(%v): %w", v, ErrVertexNotFound)
	}
	if g.vertices[vi].degree != 0 {
		return fmt.Errorf("RemoveVertex(%v): %w", v, ErrVertexInUse)
	}
	g.vertices[vi] = vertex[V]{edge: NoEdge}
	delete(g.index, v)
	return nil
}

func (g *DCEL[V]) HasVertex(v V) bool {
	_, ok := g.index[v]
	return ok
}

// Vertices returns the vertices in insertion order.
func (g *DCEL[V]) Vertices() []V {
	vs := make([]V, 0, len(g.index))
	for _, vx := range g.vertices {
		if vx.alive {
			vs = append(vs, vx.id)
		}
	}
	return vs
}

func (g *DCEL[V]) NumVertices() int {
	return len(g.index)
}

// NumEdges returns the number of edges, each counted once.
func (g *DCEL[V]) NumEdges() int {
	return g.numEdges
}

// NumFaces returns the number of faces including the outer face.
func (g *DCEL[V]) NumFaces() int {
	return g.numFaces
}

// Degree returns the number of edges incident to v, or 0 if v is absent.
func (g *DCEL[V]) Degree(v V) int {
	vi, ok := g.index[v]
	if !ok {
		return 0
	}
	return g.vertices[vi].degree
}

// OutgoingEdge returns the anchor half-edge leaving v. EdgesOf starts its
// rotation there. It returns NoEdge if v is absent or isolated.
func (g *DCEL[V]) OutgoingEdge(v V) HalfEdge {
	vi, ok := g.index[v]
	if !ok {
		return NoEdge
	}
	return g.vertices[vi].edge
}

// Edge returns the half-edge from source to target.
func (g *DCEL[V]) Edge(source, target V) (HalfEdge, bool) {
	si, ok := g.index[source]
	if !ok {
		return NoEdge, false
	}
	ti, ok := g.index[target]
	if !ok {
		return NoEdge, false
	}
	e, ok := g.edges[edgeKey{si, ti}]
	return e, ok
}

// Edges returns one half-edge per edge, oriented as the edge was inserted.
func (g *DCEL[V]) Edges() []HalfEdge {
	es := make([]HalfEdge, 0, g.numEdges)
	for i := 0; i < len(g.halfEdges); i += 2 {
		if g.halfEdges[i].origin >= 0 {
			es = append(es, HalfEdge(i))
		}
	}
	return es
}

func (g *DCEL[V]) mustLive(e HalfEdge, method string) {
	if e < 0 || int(e) >= len(g.halfEdges) || g.halfEdges[e].origin < 0 {
		panic(method + ": half-edge out of range")
	}
}

func (g *DCEL[V]) live(e HalfEdge) bool {
	return e >= 0 && int(e) < len(g.halfEdges) && g.halfEdges[e].origin >= 0
}

func (g *DCEL[V]) Source(e HalfEdge) V {
	g.mustLive(e, "Source")
	return g.vertices[g.halfEdges[e].origin].id
}

func (g *DCEL[V]) Target(e HalfEdge) V {
	g.mustLive(e, "Target")
	return g.vertices[g.halfEdges[e^1].origin].id
}

func (g *DCEL[V]) Twin(e HalfEdge) HalfEdge {
	g.mustLive(e, "Twin")
	return e ^ 1
}

// Next returns the half-edge following e around its face.
func (g *DCEL[V]) Next(e HalfEdge) HalfEdge {
	g.mustLive(e, "Next")
	return g.halfEdges[e].next
}

// Prev returns the half-edge preceding e around its face.
func (g *DCEL[V]) Prev(e HalfEdge) HalfEdge {
	g.mustLive(e, "Prev")
	return g.halfEdges[e].prev
}

// FaceOf returns the face on the left of e.
func (g *DCEL[V]) FaceOf(e HalfEdge) Face {
	g.mustLive(e, "FaceOf")
	return g.halfEdges[e].face
}

// EdgeData returns the payload the edge factory produced for e's edge.
func (g *DCEL[V]) EdgeData(e HalfEdge) any {
	g.mustLive(e, "EdgeData")
	return g.edgeData[e>>1]
}

// OuterFace returns the outer face, or NoFace if the graph has no edges.
func (g *DCEL[V]) OuterFace() Face {
	return g.outer
}

func (g *DCEL[V]) IsOuter(f Face) bool {
	return f != NoFace && f == g.outer
}

// Faces returns the live faces in handle order.
func (g *DCEL[V]) Faces() []Face {
	fs := make([]Face, 0, g.numFaces)
	for i, fc := range g.faces {
		if fc.edge != NoEdge {
			fs = append(fs, Face(i))
		}
	}
	return fs
}

// FaceEdge returns a half-edge on the boundary of f.
func (g *DCEL[V]) FaceEdge(f Face) HalfEdge {
	g.mustLiveFace(f, "FaceEdge")
	return g.faces[f].edge
}

// FaceData returns the payload the face factory produced for f.
func (g *DCEL[V]) FaceData(f Face) any {
	g.mustLiveFace(f, "FaceData")
	return g.faces[f].data
}

func (g *DCEL[V]) mustLiveFace(f Face, method string) {
	if f < 0 || int(f) >= len(g.faces) || g.faces[f].edge == NoEdge {
		panic(method + ": face out of range")
	}
}
