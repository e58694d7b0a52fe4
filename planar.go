// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package planar triangulates planar point sets into a doubly connected edge
// list and orders the result canonically. The dcel, delaunay and canonical
// sub-packages provide the underlying generic building blocks.

package planar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/2dChan/planar/canonical"
	"github.com/2dChan/planar/dcel"
	"github.com/2dChan/planar/delaunay"
	"github.com/2dChan/planar/internal/logger"
	"github.com/golang/geo/r2"
)

type Triangulation struct {
	// Points holds the input points followed, with WithBoundingTriangle, by
	// the three bounding vertices. Vertex i of Graph is Points[i].
	Points []r2.Point
	Graph  *dcel.DCEL[int]
	Layout *dcel.MapLayout[int]

	// NOTE: Sort in CCW per Face
	FaceVertices []int
	// FaceNeighbors[k] is the face across the edge from FaceVertices[k] to
	// the next vertex of the same face, or -1 on the convex hull.
	FaceNeighbors []int
	FaceOffsets   []int
}

type TriangulationOptions struct {
	Seed                 int64
	KeepBoundingTriangle bool
}

type TriangulationOption func(*TriangulationOptions) error

func WithSeed(seed int64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		o.Seed = seed
		return nil
	}
}

// WithBoundingTriangle keeps the bounding vertices, numbered n, n+1 and n+2
// for n input points, so that the triangulation is maximal planar.
func WithBoundingTriangle() TriangulationOption {
	return func(o *TriangulationOptions) error {
		o.KeepBoundingTriangle = true
		return nil
	}
}

// NewTriangulation computes the Delaunay triangulation of points. Vertex i
// is points[i]; a point equal to an earlier one is left out of the graph.
func NewTriangulation(points []r2.Point, setters ...TriangulationOption) (*Triangulation, error) {
	opts := TriangulationOptions{}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	n := len(points)
	genOpts := []delaunay.Option{delaunay.WithSeed(opts.Seed)}
	if opts.KeepBoundingTriangle {
		genOpts = append(genOpts, delaunay.WithBoundingTriangle())
	}
	gen, err := delaunay.NewGenerator(dcel.Counter(n), genOpts...)
	if err != nil {
		return nil, err
	}
	g, err := dcel.New[int]()
	if err != nil {
		return nil, err
	}
	layout := dcel.NewMapLayout[int]()
	vertices := make([]int, n)
	for i, p := range points {
		layout.SetPosition(i, p)
		vertices[i] = i
	}
	if err := gen.GenerateGraph(context.Background(), g, layout, vertices); err != nil {
		return nil, fmt.Errorf("NewTriangulation: %w", err)
	}

	t := &Triangulation{
		Points: append([]r2.Point(nil), points...),
		Graph:  g,
		Layout: layout,
	}
	if opts.KeepBoundingTriangle {
		if _, ps, ok := gen.BoundingTriangle(); ok {
			t.Points = append(t.Points, ps[:]...)
		}
	}
	if err := t.index(); err != nil {
		return nil, fmt.Errorf("NewTriangulation: %w", err)
	}
	return t, nil
}

// index flattens the bounded faces of Graph into FaceVertices,
// FaceNeighbors and FaceOffsets, replacing any previous tables.
func (t *Triangulation) index() error {
	g := t.Graph
	var faces []dcel.Face
	for _, f := range g.Faces() {
		if !g.IsOuter(f) {
			faces = append(faces, f)
		}
	}
	ids := make(map[dcel.Face]int, len(faces))
	for i, f := range faces {
		ids[f] = i
	}

	t.FaceVertices = t.FaceVertices[:0]
	t.FaceNeighbors = t.FaceNeighbors[:0]
	t.FaceOffsets = make([]int, 0, len(faces)+1)
	t.FaceOffsets = append(t.FaceOffsets, 0)
	for _, f := range faces {
		es, err := g.FaceBoundary(f)
		if err != nil {
			return err
		}
		for _, e := range es {
			t.FaceVertices = append(t.FaceVertices, g.Source(e))
			nb, ok := ids[g.FaceOf(g.Twin(e))]
			if !ok {
				nb = -1
			}
			t.FaceNeighbors = append(t.FaceNeighbors, nb)
		}
		t.FaceOffsets = append(t.FaceOffsets, len(t.FaceVertices))
	}
	return nil
}

// NumFaces returns the number of bounded faces.
func (t *Triangulation) NumFaces() int {
	return len(t.FaceOffsets) - 1
}

// Face returns the view of the i-th bounded face.
// It returns an error if the index is out of range.
func (t *Triangulation) Face(i int) (Face, error) {
	if i < 0 || i >= t.NumFaces() {
		return Face{}, fmt.Errorf("Face: index %d out of range [0 %d)", i, t.NumFaces())
	}
	return Face{idx: i, t: t}, nil
}

// Triangles returns the bounded faces as vertex index triples in
// counter-clockwise order.
func (t *Triangulation) Triangles() [][3]int {
	tris := make([][3]int, 0, t.NumFaces())
	for i := range t.NumFaces() {
		vs := t.FaceVertices[t.FaceOffsets[i]:t.FaceOffsets[i+1]]
		if len(vs) == 3 {
			tris = append(tris, [3]int{vs[0], vs[1], vs[2]})
		}
	}
	return tris
}

// CanonicalOrder returns a canonical ordering of the vertices starting at
// first, which must lie on the convex hull. The order covers every vertex
// only when the triangulation is maximal planar, as with
// WithBoundingTriangle.
func (t *Triangulation) CanonicalOrder(first int) ([]int, error) {
	return canonical.Order(t.Graph, first)
}

// SetLogger sets the logger used by planar and its sub-packages. Records are
// emitted at debug level only. A nil logger disables logging, which is the
// default.
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}

// Logger returns the logger used by planar and its sub-packages.
func Logger() *slog.Logger {
	return logger.Get()
}
