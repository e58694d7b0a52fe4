// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package delaunay builds Delaunay triangulations into a dcel.DCEL by
// randomized incremental insertion with edge flips.
package delaunay

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/2dChan/planar/dcel"
	"github.com/2dChan/planar/internal/logger"
	"github.com/golang/geo/r2"
)

const (
	// boundingScale is the distance of the bounding vertices from the
	// centre of the input, in units of the larger side of its bounding box.
	boundingScale = 32
)

var (
	ErrNilGraph      = fmt.Errorf("%w: nil graph", dcel.ErrInvalidArgument)
	ErrNilLayout     = fmt.Errorf("%w: nil layout", dcel.ErrInvalidArgument)
	ErrNilFactory    = fmt.Errorf("%w: nil vertex factory", dcel.ErrInvalidArgument)
	ErrNilRand       = fmt.Errorf("%w: nil random source", dcel.ErrInvalidArgument)
	ErrGraphNotEmpty = fmt.Errorf("%w: graph already has edges", dcel.ErrInvalidArgument)
	ErrNoPosition    = fmt.Errorf("%w: vertex has no finite position", dcel.ErrInvalidArgument)
)

type Options struct {
	Rand *rand.Rand
	// KeepBoundingTriangle leaves the three bounding vertices in the graph,
	// making the result a maximal planar graph.
	KeepBoundingTriangle bool
}

type Option func(*Options) error

// WithSeed seeds the random source used for shuffling and point location.
func WithSeed(seed int64) Option {
	return func(o *Options) error {
		//nolint:gosec
		o.Rand = rand.New(rand.NewSource(seed))
		return nil
	}
}

func WithRand(r *rand.Rand) Option {
	return func(o *Options) error {
		if r == nil {
			return fmt.Errorf("WithRand: %w", ErrNilRand)
		}
		o.Rand = r
		return nil
	}
}

func WithBoundingTriangle() Option {
	return func(o *Options) error {
		o.KeepBoundingTriangle = true
		return nil
	}
}

// Generator inserts point sets into a DCEL. Each GenerateGraph call is an
// independent session; the generator only carries its random source and the
// bounding triangle of the last session between calls.
type Generator[V comparable] struct {
	newVertex dcel.VertexFactory[V]
	opts      Options

	g         *dcel.DCEL[V]
	pos       map[V]r2.Point
	bounding  [3]V
	hasBounds bool
	last      dcel.HalfEdge
}

func NewGenerator[V comparable](newVertex dcel.VertexFactory[V], setters ...Option) (*Generator[V], error) {
	if newVertex == nil {
		return nil, fmt.Errorf("NewGenerator: %w", ErrNilFactory)
	}
	//nolint:gosec
	opts := Options{Rand: rand.New(rand.NewSource(0))}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}
	return &Generator[V]{newVertex: newVertex, opts: opts}, nil
}

// BoundingTriangle returns the bounding vertices of the last session and
// their positions, counter-clockwise. ok is false before the first
// non-empty session.
func (gen *Generator[V]) BoundingTriangle() (vs [3]V, ps [3]r2.Point, ok bool) {
	if !gen.hasBounds {
		return vs, ps, false
	}
	for i, b := range gen.bounding {
		vs[i], ps[i] = b, gen.pos[b]
	}
	return vs, ps, true
}

// GenerateGraph triangulates vertices, positioned by layout, into g, which
// must have no edges. Vertices missing from g are added; a vertex whose
// position coincides with an already inserted one is skipped and, unless it
// was already in g, not added. An empty vertex list leaves g untouched.
//
// ctx is checked between insertions. When it is done, the points inserted
// so far are finalized as usual and ctx.Err() is returned.
func (gen *Generator[V]) GenerateGraph(ctx context.Context, g *dcel.DCEL[V], layout dcel.Layout[V], vertices []V) error {
	if len(vertices) == 0 {
		return nil
	}
	if g == nil {
		return fmt.Errorf("GenerateGraph: %w", ErrNilGraph)
	}
	if layout == nil {
		return fmt.Errorf("GenerateGraph: %w", ErrNilLayout)
	}
	if g.NumEdges() != 0 {
		return fmt.Errorf("GenerateGraph: %w", ErrGraphNotEmpty)
	}

	pos := make(map[V]r2.Point, len(vertices)+3)
	order := make([]V, 0, len(vertices))
	rect := r2.EmptyRect()
	for _, v := range vertices {
		if _, ok := pos[v]; ok {
			continue
		}
		p, ok := layout.Position(v)
		if !ok || !finite(p) {
			return fmt.Errorf("GenerateGraph: %w: %v", ErrNoPosition, v)
		}
		pos[v] = p
		order = append(order, v)
		rect = rect.AddPoint(p)
	}

	var bounding [3]V
	for i := range bounding {
		b := gen.newVertex()
		if _, ok := pos[b]; ok || g.HasVertex(b) {
			return fmt.Errorf("GenerateGraph: bounding vertex %v: %w", b, dcel.ErrVertexExists)
		}
		for _, prev := range bounding[:i] {
			if prev == b {
				return fmt.Errorf("GenerateGraph: bounding vertex %v: %w", b, dcel.ErrVertexExists)
			}
		}
		bounding[i] = b
	}

	size := math.Max(rect.Size().X, rect.Size().Y)
	if size == 0 {
		size = 1
	}
	center := rect.Center()
	for i, b := range bounding {
		angle := math.Pi/2 + float64(i)*2*math.Pi/3
		pos[b] = r2.Point{
			X: center.X + boundingScale*size*math.Cos(angle),
			Y: center.Y + boundingScale*size*math.Sin(angle),
		}
	}

	gen.g, gen.pos, gen.bounding, gen.hasBounds = g, pos, bounding, true
	defer func() { gen.g = nil }()

	if err := gen.addBoundingTriangle(); err != nil {
		return fmt.Errorf("GenerateGraph: %w", err)
	}

	gen.opts.Rand.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	var ctxErr error
	for _, v := range order {
		if ctxErr = ctx.Err(); ctxErr != nil {
			break
		}
		if err := gen.insert(v); err != nil {
			return fmt.Errorf("GenerateGraph: %w", err)
		}
	}

	if gen.opts.KeepBoundingTriangle {
		if ml, ok := layout.(dcel.MutableLayout[V]); ok {
			for _, b := range bounding {
				ml.SetPosition(b, pos[b])
			}
		}
		return ctxErr
	}
	if err := gen.removeBoundingTriangle(); err != nil {
		return fmt.Errorf("GenerateGraph: %w", err)
	}
	if err := gen.completeHull(); err != nil {
		return fmt.Errorf("GenerateGraph: %w", err)
	}
	if err := gen.restoreDelaunay(); err != nil {
		return fmt.Errorf("GenerateGraph: %w", err)
	}
	return ctxErr
}

func (gen *Generator[V]) addBoundingTriangle() error {
	g := gen.g
	b := gen.bounding
	for _, v := range b {
		if err := g.AddVertex(v); err != nil {
			return err
		}
	}
	for i := range 3 {
		if _, err := g.AddEdge(b[i], b[(i+1)%3], dcel.NoEdge, dcel.NoEdge); err != nil {
			return err
		}
	}
	gen.last, _ = g.Edge(b[0], b[1])
	return nil
}

func (gen *Generator[V]) insert(v V) error {
	g := gen.g
	p := gen.pos[v]
	e, err := gen.locate(p)
	if err != nil {
		return err
	}
	gen.last = e
	tri := [3]dcel.HalfEdge{e, g.Next(e), g.Prev(e)}
	for _, x := range tri {
		if gen.pos[g.Source(x)] == p {
			logger.Get().Debug("delaunay: duplicate point skipped", "vertex", v, "at", g.Source(x))
			return nil
		}
	}
	if g.HasVertex(v) && g.Degree(v) != 0 {
		return fmt.Errorf("insert %v: %w", v, dcel.ErrVertexInUse)
	}

	var stack []dcel.HalfEdge
	on := dcel.NoEdge
	for _, x := range tri {
		if Orient(gen.pos[g.Source(x)], gen.pos[g.Target(x)], p) == 0 {
			on = x
			break
		}
	}
	if on != dcel.NoEdge {
		stack, err = gen.insertOnEdge(v, on)
	} else {
		stack, err = gen.insertInTriangle(v, tri)
	}
	if err != nil {
		return corrupted(err)
	}

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		tw := g.Twin(e)
		if g.IsOuter(g.FaceOf(tw)) {
			continue
		}
		i, j := g.Source(e), g.Target(e)
		l := g.Target(g.Next(tw))
		if !gen.illegal(i, j, v, l) {
			continue
		}
		if err := g.Flip(e); err != nil {
			return corrupted(err)
		}
		stack = append(stack, g.Prev(e), g.Next(g.Twin(e)))
	}
	gen.last = g.OutgoingEdge(v)
	return nil
}

// insertInTriangle connects v to the three corners of the triangle tri and
// returns the edges opposite v.
func (gen *Generator[V]) insertInTriangle(v V, tri [3]dcel.HalfEdge) ([]dcel.HalfEdge, error) {
	g := gen.g
	if !g.HasVertex(v) {
		if err := g.AddVertex(v); err != nil {
			return nil, err
		}
	}
	a, b, c := g.Source(tri[0]), g.Source(tri[1]), g.Source(tri[2])
	if _, err := g.AddEdge(v, a, dcel.NoEdge, tri[0]); err != nil {
		return nil, err
	}
	vb, err := g.AddEdge(v, b, dcel.NoEdge, tri[1])
	if err != nil {
		return nil, err
	}
	if _, err := g.AddEdge(v, c, vb, tri[2]); err != nil {
		return nil, err
	}
	return []dcel.HalfEdge{tri[0], tri[1], tri[2]}, nil
}

// insertOnEdge splits the edge e, which passes through the position of v,
// connects v to the apexes of both adjacent triangles and returns the four
// edges opposite v.
func (gen *Generator[V]) insertOnEdge(v V, e dcel.HalfEdge) ([]dcel.HalfEdge, error) {
	g := gen.g
	u, w := g.Source(e), g.Target(e)
	c := g.Target(g.Next(e))
	cu := g.Prev(e)
	tw := g.Twin(e)
	d := g.Target(g.Next(tw))
	dw := g.Prev(tw)

	vw, err := g.SplitEdge(u, w, v)
	if err != nil {
		return nil, err
	}
	if _, err := g.AddEdge(v, c, vw, cu); err != nil {
		return nil, err
	}
	if _, err := g.AddEdge(v, d, tw, dw); err != nil {
		return nil, err
	}
	var stack []dcel.HalfEdge
	for _, h := range g.EdgesOf(v) {
		stack = append(stack, g.Next(h))
	}
	return stack, nil
}

// locate returns a half-edge of the triangle containing p. It walks from the
// last located triangle across any edge that has p strictly on its right,
// trying the three edges from a random offset.
func (gen *Generator[V]) locate(p r2.Point) (dcel.HalfEdge, error) {
	g := gen.g
	e := gen.last
	maxSteps := 4*g.NumEdges() + 16
	for range maxSteps {
		tri := [3]dcel.HalfEdge{e, g.Next(e), g.Prev(e)}
		off := gen.opts.Rand.Intn(3)
		moved := false
		for k := range 3 {
			x := tri[(off+k)%3]
			if Orient(gen.pos[g.Source(x)], gen.pos[g.Target(x)], p) < 0 {
				e = g.Twin(x)
				moved = true
				break
			}
		}
		if !moved {
			return e, nil
		}
	}
	logger.Get().Debug("delaunay: walk exceeded step limit, scanning faces", "steps", maxSteps)
	return gen.scan(p)
}

func (gen *Generator[V]) scan(p r2.Point) (dcel.HalfEdge, error) {
	g := gen.g
	for _, f := range g.Faces() {
		if g.IsOuter(f) {
			continue
		}
		e := g.FaceEdge(f)
		tri := [3]dcel.HalfEdge{e, g.Next(e), g.Prev(e)}
		inside := true
		for _, x := range tri {
			if Orient(gen.pos[g.Source(x)], gen.pos[g.Target(x)], p) < 0 {
				inside = false
				break
			}
		}
		if inside {
			return e, nil
		}
	}
	return dcel.NoEdge, fmt.Errorf("%w: no triangle contains %v", dcel.ErrCorrupted, p)
}

func (gen *Generator[V]) isBounding(v V) bool {
	return v == gen.bounding[0] || v == gen.bounding[1] || v == gen.bounding[2]
}

// illegal reports whether the edge from i to j, with the new vertex p on its
// left and l on its right, must be flipped. Bounding vertices lie at
// infinity: an edge between two of them is never flipped, nor is an edge
// whose opposite vertex is one of them.
func (gen *Generator[V]) illegal(i, j, p, l V) bool {
	bi, bj := gen.isBounding(i), gen.isBounding(j)
	if bi && bj || gen.isBounding(l) {
		return false
	}
	pi, pj, pp, pl := gen.pos[i], gen.pos[j], gen.pos[p], gen.pos[l]
	var flip bool
	switch {
	case !bi && !bj:
		flip = InCircle(pi, pj, pp, pl) > 0
	case bj:
		flip = Orient(pp, pi, pl) > 0
	default:
		flip = Orient(pj, pp, pl) > 0
	}
	return flip && Orient(pp, pi, pl) > 0 && Orient(pp, pl, pj) > 0
}

func (gen *Generator[V]) removeBoundingTriangle() error {
	g := gen.g
	for _, b := range gen.bounding {
		for g.Degree(b) > 0 {
			h := gen.removableEdge(b)
			if h == dcel.NoEdge {
				return fmt.Errorf("%w: every edge of bounding vertex %v is a bridge", dcel.ErrCorrupted, b)
			}
			if err := g.RemoveEdge(b, g.Target(h)); err != nil {
				return corrupted(err)
			}
		}
		if err := g.RemoveVertex(b); err != nil {
			return corrupted(err)
		}
	}
	return nil
}

func (gen *Generator[V]) removableEdge(b V) dcel.HalfEdge {
	g := gen.g
	if g.Degree(b) == 1 {
		return g.OutgoingEdge(b)
	}
	for _, h := range g.EdgesOf(b) {
		if g.FaceOf(h) != g.FaceOf(g.Twin(h)) || g.Degree(g.Target(h)) == 1 {
			return h
		}
	}
	return dcel.NoEdge
}

// completeHull fills the concave pockets left on the outer boundary by the
// removal of the bounding triangle.
func (gen *Generator[V]) completeHull() error {
	g := gen.g
	added := 0
	for {
		f := g.OuterFace()
		if f == dcel.NoFace {
			break
		}
		cycle, err := g.FaceBoundary(f)
		if err != nil {
			return err
		}
		if len(cycle) < 3 {
			break
		}
		boundary := make(map[V]bool, len(cycle))
		for _, e := range cycle {
			boundary[g.Source(e)] = true
		}
		filled := false
		for _, e1 := range cycle {
			e2 := g.Next(e1)
			a, b, c := g.Source(e1), g.Target(e1), g.Target(e2)
			if a == c {
				continue
			}
			if _, ok := g.Edge(c, a); ok {
				continue
			}
			pa, pb, pc := gen.pos[a], gen.pos[b], gen.pos[c]
			if Orient(pa, pb, pc) <= 0 || gen.pocketBlocked(boundary, a, b, c) {
				continue
			}
			if _, err := g.AddEdge(c, a, g.Next(e2), e1); err != nil {
				return corrupted(err)
			}
			added++
			filled = true
			break
		}
		if !filled {
			break
		}
	}
	if added > 0 {
		logger.Get().Debug("delaunay: closed hull pockets", "triangles", added)
	}
	return nil
}

// pocketBlocked reports whether a boundary vertex other than a, b and c lies
// in the closed triangle a, b, c.
func (gen *Generator[V]) pocketBlocked(boundary map[V]bool, a, b, c V) bool {
	pa, pb, pc := gen.pos[a], gen.pos[b], gen.pos[c]
	for v := range boundary {
		if v == a || v == b || v == c {
			continue
		}
		q := gen.pos[v]
		if Orient(pa, pb, q) >= 0 && Orient(pb, pc, q) >= 0 && Orient(pc, pa, q) >= 0 {
			return true
		}
	}
	return false
}

// restoreDelaunay flips every bounded edge that fails the empty circle test
// until none does.
func (gen *Generator[V]) restoreDelaunay() error {
	g := gen.g
	stack := g.Edges()
	flips := 0
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		tw := g.Twin(e)
		if g.IsOuter(g.FaceOf(e)) || g.IsOuter(g.FaceOf(tw)) {
			continue
		}
		pi, pj := gen.pos[g.Source(e)], gen.pos[g.Target(e)]
		pk, pl := gen.pos[g.Target(g.Next(e))], gen.pos[g.Target(g.Next(tw))]
		if InCircle(pi, pj, pk, pl) <= 0 || Orient(pk, pi, pl) <= 0 || Orient(pk, pl, pj) <= 0 {
			continue
		}
		if err := g.Flip(e); err != nil {
			return corrupted(err)
		}
		flips++
		m := g.Twin(e)
		stack = append(stack, g.Next(e), g.Prev(e), g.Next(m), g.Prev(m))
	}
	if flips > 0 {
		logger.Get().Debug("delaunay: boundary sweep flipped edges", "flips", flips)
	}
	return nil
}

// Triangles returns the bounded triangular faces of g as vertex triples in
// counter-clockwise order.
func Triangles[V comparable](g *dcel.DCEL[V]) [][3]V {
	var tris [][3]V
	for _, f := range g.Faces() {
		if g.IsOuter(f) {
			continue
		}
		e := g.FaceEdge(f)
		if g.Next(g.Next(g.Next(e))) != e {
			continue
		}
		tris = append(tris, [3]V{g.Source(e), g.Target(e), g.Target(g.Next(e))})
	}
	return tris
}

func finite(p r2.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// corrupted marks an error returned by the DCEL during a triangulation step
// as an internal inconsistency.
func corrupted(err error) error {
	if errors.Is(err, dcel.ErrCorrupted) {
		return err
	}
	return fmt.Errorf("%w: %v", dcel.ErrCorrupted, err)
}
