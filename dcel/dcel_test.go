// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package dcel

import (
	"errors"
	"slices"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
)

// Options

func TestNew_NilOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option[string]
	}{
		{"nil edge factory", WithEdgeFactory[string](nil)},
		{"nil face factory", WithFaceFactory[string](nil)},
		{"nil layout", WithLayout[string](nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opt); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("New(...) error = %v, want %v", err, ErrInvalidArgument)
			}
		})
	}
}

// Vertices

func TestAddVertex(t *testing.T) {
	g := mustNew(t)
	if err := g.AddVertex("a"); err != nil {
		t.Fatalf("AddVertex(a) error = %v, want nil", err)
	}
	if err := g.AddVertex("a"); !errors.Is(err, ErrVertexExists) {
		t.Errorf("AddVertex(a) error = %v, want %v", err, ErrVertexExists)
	}
	if !g.HasVertex("a") || g.NumVertices() != 1 {
		t.Errorf("HasVertex(a) = %v, NumVertices() = %d, want true, 1", g.HasVertex("a"), g.NumVertices())
	}
}

func TestRemoveVertex(t *testing.T) {
	g := mustSquare(t, false)
	if err := g.RemoveVertex("a"); !errors.Is(err, ErrVertexInUse) {
		t.Errorf("RemoveVertex(a) error = %v, want %v", err, ErrVertexInUse)
	}
	if err := g.RemoveVertex("z"); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("RemoveVertex(z) error = %v, want %v", err, ErrVertexNotFound)
	}

	mustAddVertices(t, g, "z")
	if err := g.RemoveVertex("z"); err != nil {
		t.Fatalf("RemoveVertex(z) error = %v, want nil", err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, g.Vertices()); diff != "" {
		t.Errorf("Vertices() mismatch (-want +got):\n%s", diff)
	}
	mustValidate(t, g)
}

// Edges

func TestAddEdge_Errors(t *testing.T) {
	g := mustSquare(t, false)
	mustAddVertices(t, g, "x", "y")
	ab, _ := g.Edge("a", "b")
	ba, _ := g.Edge("b", "a")
	cd, _ := g.Edge("c", "d")

	tests := []struct {
		name         string
		source       string
		target       string
		bs, bt       HalfEdge
		wantSentinel error
	}{
		{"absent source", "z", "a", NoEdge, ab, ErrVertexNotFound},
		{"absent target", "a", "z", ab, NoEdge, ErrVertexNotFound},
		{"self-loop", "a", "a", ab, ab, ErrSelfLoop},
		{"duplicate", "a", "b", ab, ba, ErrEdgeExists},
		{"isolated pair", "x", "y", NoEdge, NoEdge, ErrDisconnected},
		{"ambiguous", "a", "c", NoEdge, cd, ErrAmbiguousPlacement},
		{"foreign reference", "a", "c", ba, cd, ErrBadPlacement},
		{"dead reference", "a", "c", HalfEdge(1000), cd, ErrBadPlacement},
		{"different faces", "a", "c", ab, mustEdge(t, g, "c", "b"), ErrBadPlacement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.AddEdge(tt.source, tt.target, tt.bs, tt.bt)
			if !errors.Is(err, tt.wantSentinel) {
				t.Errorf("AddEdge(%s, %s, ...) error = %v, want %v", tt.source, tt.target, err, tt.wantSentinel)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("AddEdge(%s, %s, ...) error = %v, want wrapped %v", tt.source, tt.target, err, ErrInvalidArgument)
			}
		})
	}
	if g.NumEdges() != 4 || g.NumFaces() != 2 {
		t.Errorf("NumEdges(), NumFaces() = %d, %d after failed inserts, want 4, 2", g.NumEdges(), g.NumFaces())
	}
	mustValidate(t, g)
}

func TestAddEdge_Square(t *testing.T) {
	g := mustSquare(t, true)
	if g.NumEdges() != 5 || g.NumFaces() != 3 {
		t.Fatalf("NumEdges(), NumFaces() = %d, %d, want 5, 3", g.NumEdges(), g.NumFaces())
	}

	tests := []struct {
		v    string
		want []string
	}{
		{"a", []string{"d", "c", "b"}},
		{"b", []string{"a", "c"}},
		{"c", []string{"b", "a", "d"}},
		{"d", []string{"c", "a"}},
	}
	for _, tt := range tests {
		got := g.Neighbors(tt.v)
		if !CyclicEqual(tt.want, got) {
			t.Errorf("Neighbors(%s) = %v, want rotation of %v", tt.v, got, tt.want)
		}
	}

	if got := g.BoundaryVertices(); !CyclicEqual([]string{"a", "d", "c", "b"}, got) {
		t.Errorf("BoundaryVertices() = %v, want rotation of [a d c b]", got)
	}
}

func TestAddEdge_OuterSplitWithLayout(t *testing.T) {
	tests := []struct {
		name      string
		layout    bool
		wantOuter []string
	}{
		{"without layout", false, []string{"d", "a", "b", "c"}},
		{"with layout", true, []string{"a", "d", "c", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option[string]
			if tt.layout {
				opts = append(opts, WithLayout[string](squareLayout()))
			}
			g := mustNew(t, opts...)
			mustAddVertices(t, g, "a", "b", "c", "d")
			mustAddEdge(t, g, "a", "b", NoEdge, NoEdge)
			mustAddEdge(t, g, "b", "c", NoEdge, NoEdge)
			mustAddEdge(t, g, "c", "d", NoEdge, NoEdge)
			mustAddEdge(t, g, "a", "d", NoEdge, NoEdge)

			got, err := g.FaceVertices(g.OuterFace())
			if err != nil {
				t.Fatalf("FaceVertices(OuterFace()) error = %v, want nil", err)
			}
			if !CyclicEqual(tt.wantOuter, got) {
				t.Errorf("FaceVertices(OuterFace()) = %v, want rotation of %v", got, tt.wantOuter)
			}
			mustValidate(t, g)
		})
	}
}

func TestAddEdge_Factories(t *testing.T) {
	type faceCall struct {
		outer bool
	}
	var faces []faceCall
	var edges [][2]string
	g := mustNew(t,
		WithEdgeFactory(func(s, d string) any {
			edges = append(edges, [2]string{s, d})
			return s + d
		}),
		WithFaceFactory[string](func(e, twin HalfEdge, outer bool) any {
			faces = append(faces, faceCall{outer})
			return len(faces)
		}),
	)
	buildSquare(t, g, true)

	wantEdges := [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "a"}, {"a", "c"}}
	if diff := cmp.Diff(wantEdges, edges); diff != "" {
		t.Errorf("edge factory calls mismatch (-want +got):\n%s", diff)
	}
	wantFaces := []faceCall{{true}, {false}, {false}}
	if diff := cmp.Diff(wantFaces, faces, cmp.AllowUnexported(faceCall{})); diff != "" {
		t.Errorf("face factory calls mismatch (-want +got):\n%s", diff)
	}

	ac := mustEdge(t, g, "a", "c")
	if got := g.EdgeData(ac); got != "ac" {
		t.Errorf("EdgeData(a->c) = %v, want ac", got)
	}
	if got := g.EdgeData(g.Twin(ac)); got != "ac" {
		t.Errorf("EdgeData(c->a) = %v, want ac", got)
	}
	if got := g.FaceData(g.OuterFace()); got != 1 {
		t.Errorf("FaceData(OuterFace()) = %v, want 1", got)
	}
}

func TestRemoveEdge_Square(t *testing.T) {
	g := mustSquare(t, true)
	if err := g.RemoveEdge("a", "c"); err != nil {
		t.Fatalf("RemoveEdge(a, c) error = %v, want nil", err)
	}
	if g.NumFaces() != 2 || g.NumEdges() != 4 {
		t.Errorf("NumFaces(), NumEdges() = %d, %d, want 2, 4", g.NumFaces(), g.NumEdges())
	}
	mustValidate(t, g)
	if !EqualEmbedding(g, mustSquare(t, false)) {
		t.Errorf("EqualEmbedding(after RemoveEdge, square) = false, want true")
	}

	if err := g.RemoveEdge("a", "c"); !errors.Is(err, ErrEdgeNotFound) {
		t.Errorf("RemoveEdge(a, c) error = %v, want %v", err, ErrEdgeNotFound)
	}
}

func TestRemoveEdge_OuterSurvives(t *testing.T) {
	g := mustSquare(t, false)
	outer := g.OuterFace()
	if err := g.RemoveEdge("d", "a"); err != nil {
		t.Fatalf("RemoveEdge(d, a) error = %v, want nil", err)
	}
	if g.OuterFace() != outer || g.NumFaces() != 1 {
		t.Errorf("OuterFace(), NumFaces() = %d, %d, want %d, 1", g.OuterFace(), g.NumFaces(), outer)
	}
	mustValidate(t, g)
}

func TestRemoveEdge_Path(t *testing.T) {
	g := mustNew(t)
	mustAddVertices(t, g, "w", "x", "y", "z")
	mustAddEdge(t, g, "w", "x", NoEdge, NoEdge)
	mustAddEdge(t, g, "x", "y", NoEdge, NoEdge)
	mustAddEdge(t, g, "y", "z", NoEdge, NoEdge)

	if err := g.RemoveEdge("x", "y"); !errors.Is(err, ErrDisconnected) {
		t.Errorf("RemoveEdge(x, y) error = %v, want %v", err, ErrDisconnected)
	}
	for _, e := range [][2]string{{"z", "y"}, {"w", "x"}} {
		if err := g.RemoveEdge(e[0], e[1]); err != nil {
			t.Fatalf("RemoveEdge(%s, %s) error = %v, want nil", e[0], e[1], err)
		}
		mustValidate(t, g)
	}
	if err := g.RemoveEdge("y", "x"); err != nil {
		t.Fatalf("RemoveEdge(y, x) error = %v, want nil", err)
	}
	if g.NumFaces() != 0 || g.OuterFace() != NoFace {
		t.Errorf("NumFaces(), OuterFace() = %d, %d, want 0, %d", g.NumFaces(), g.OuterFace(), NoFace)
	}
	mustValidate(t, g)

	// Freed slots are reused.
	mustAddEdge(t, g, "w", "z", NoEdge, NoEdge)
	mustValidate(t, g)
}

func TestSplitEdge(t *testing.T) {
	g := mustSquare(t, true)
	f, err := g.SplitEdge("a", "b", "e")
	if err != nil {
		t.Fatalf("SplitEdge(a, b, e) error = %v, want nil", err)
	}
	if g.Source(f) != "e" || g.Target(f) != "b" {
		t.Errorf("SplitEdge(a, b, e) = %s->%s, want e->b", g.Source(f), g.Target(f))
	}
	mustValidate(t, g)
	if g.NumEdges() != 6 || g.NumFaces() != 3 {
		t.Errorf("NumEdges(), NumFaces() = %d, %d, want 6, 3", g.NumEdges(), g.NumFaces())
	}
	if _, ok := g.Edge("a", "b"); ok {
		t.Errorf("Edge(a, b) found after split, want absent")
	}
	got, err := g.FaceVertices(g.FaceOf(mustEdge(t, g, "a", "e")))
	if err != nil {
		t.Fatalf("FaceVertices(...) error = %v, want nil", err)
	}
	if !CyclicEqual([]string{"a", "e", "b", "c"}, got) {
		t.Errorf("FaceVertices(face of a->e) = %v, want rotation of [a e b c]", got)
	}

	if _, err := g.SplitEdge("a", "e", "c"); !errors.Is(err, ErrVertexInUse) {
		t.Errorf("SplitEdge(a, e, c) error = %v, want %v", err, ErrVertexInUse)
	}
}

func TestSplitEdge_Leaf(t *testing.T) {
	g := mustNew(t)
	mustAddVertices(t, g, "x", "y")
	mustAddEdge(t, g, "x", "y", NoEdge, NoEdge)
	if _, err := g.SplitEdge("x", "y", "m"); err != nil {
		t.Fatalf("SplitEdge(x, y, m) error = %v, want nil", err)
	}
	mustValidate(t, g)
	if got := g.BoundaryVertices(); !CyclicEqual([]string{"x", "m", "y"}, got) {
		t.Errorf("BoundaryVertices() = %v, want rotation of [x m y]", got)
	}
}

func TestFlip_Twice(t *testing.T) {
	g := mustSquare(t, true)
	e := mustEdge(t, g, "a", "c")
	if err := g.Flip(e); err != nil {
		t.Fatalf("Flip(a->c) error = %v, want nil", err)
	}
	mustValidate(t, g)
	if g.Source(e) != "b" || g.Target(e) != "d" {
		t.Errorf("Flip(a->c) = %s->%s, want b->d", g.Source(e), g.Target(e))
	}
	if _, ok := g.Edge("a", "c"); ok {
		t.Errorf("Edge(a, c) found after flip, want absent")
	}
	if err := g.Flip(e); err != nil {
		t.Fatalf("Flip(b->d) error = %v, want nil", err)
	}
	mustValidate(t, g)
	if !EqualEmbedding(g, mustSquare(t, true)) {
		t.Errorf("EqualEmbedding(flipped twice, square) = false, want true")
	}
	if diff := cmp.Diff(faceSets(t, mustSquare(t, true)), faceSets(t, g)); diff != "" {
		t.Errorf("faces mismatch (-want +got):\n%s", diff)
	}
}

func TestFlip_Errors(t *testing.T) {
	g := mustSquare(t, true)
	tests := []struct {
		name string
		e    HalfEdge
		want error
	}{
		{"boundary edge", mustEdge(t, g, "a", "b"), ErrNotFlippable},
		{"dead handle", HalfEdge(99), ErrEdgeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := g.Flip(tt.e); !errors.Is(err, tt.want) {
				t.Errorf("Flip(%d) error = %v, want %v", tt.e, err, tt.want)
			}
		})
	}

	g = mustSquare(t, false)
	mustAddVertices(t, g, "e")
	// A pendant edge leaves the square face non-triangular.
	mustAddEdge(t, g, "e", "a", NoEdge, mustEdge(t, g, "a", "b"))
	if err := g.Flip(mustEdge(t, g, "e", "a")); !errors.Is(err, ErrNotFlippable) {
		t.Errorf("Flip(e->a) error = %v, want %v", err, ErrNotFlippable)
	}
}

// Queries

func TestNextPrevVertex(t *testing.T) {
	g := mustSquare(t, true)
	tests := []struct {
		source, target string
		next, prev     string
		boundary       bool
	}{
		{"a", "c", "d", "d", false},
		{"c", "a", "b", "b", false},
		{"a", "b", "c", "c", false},
		{"b", "a", "d", "c", true},
	}
	for _, tt := range tests {
		next, err := g.NextVertex(tt.source, tt.target)
		if err != nil || next != tt.next {
			t.Errorf("NextVertex(%s, %s) = %s, %v, want %s, nil", tt.source, tt.target, next, err, tt.next)
		}
		prev, err := g.PrevVertex(tt.source, tt.target)
		if err != nil || prev != tt.prev {
			t.Errorf("PrevVertex(%s, %s) = %s, %v, want %s, nil", tt.source, tt.target, prev, err, tt.prev)
		}
		boundary, err := g.IsBoundary(tt.source, tt.target)
		if err != nil || boundary != tt.boundary {
			t.Errorf("IsBoundary(%s, %s) = %v, %v, want %v, nil", tt.source, tt.target, boundary, err, tt.boundary)
		}
	}

	if _, err := g.NextVertex("b", "d"); !errors.Is(err, ErrEdgeNotFound) {
		t.Errorf("NextVertex(b, d) error = %v, want %v", err, ErrEdgeNotFound)
	}
}

func TestEdgesOf_Stable(t *testing.T) {
	g := mustSquare(t, true)
	first := g.EdgesOf("a")
	if len(first) != 3 || first[0] != g.OutgoingEdge("a") {
		t.Fatalf("EdgesOf(a) = %v, want 3 edges starting at OutgoingEdge(a)", first)
	}
	if diff := cmp.Diff(first, g.EdgesOf("a")); diff != "" {
		t.Errorf("EdgesOf(a) mismatch between calls (-want +got):\n%s", diff)
	}
	for i, e := range first {
		want := first[(i+1)%len(first)]
		if got := g.Next(g.Twin(e)); got != want {
			t.Errorf("Next(Twin(EdgesOf(a)[%d])) = %d, want %d", i, got, want)
		}
	}
	if got := g.EdgesOf("z"); got != nil {
		t.Errorf("EdgesOf(z) = %v, want nil", got)
	}
}

func TestAccessors_Panic(t *testing.T) {
	assertPanic := func(name string, f func()) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("%s did not panic, want panic", name)
			}
		}()
		f()
	}
	g := mustSquare(t, false)
	assertPanic("Source(-1)", func() { g.Source(NoEdge) })
	assertPanic("Next(100)", func() { g.Next(100) })
	assertPanic("FaceData(-1)", func() { g.FaceData(NoFace) })
}

func TestConnectByAngle(t *testing.T) {
	layout := squareLayout()
	g := mustNew(t, WithLayout[string](layout))
	mustAddVertices(t, g, "a", "b", "c", "d")
	for _, e := range [][2]string{{"a", "c"}, {"d", "a"}, {"c", "d"}, {"b", "c"}, {"a", "b"}} {
		if _, err := ConnectByAngle(g, layout, e[0], e[1]); err != nil {
			t.Fatalf("ConnectByAngle(%s, %s) error = %v, want nil", e[0], e[1], err)
		}
		mustValidate(t, g)
	}
	if !EqualEmbedding(g, mustSquare(t, true)) {
		t.Errorf("EqualEmbedding(ConnectByAngle square, square) = false, want true")
	}
	if got := g.BoundaryVertices(); !CyclicEqual([]string{"a", "d", "c", "b"}, got) {
		t.Errorf("BoundaryVertices() = %v, want rotation of [a d c b]", got)
	}

	mustAddVertices(t, g, "z")
	if _, err := ConnectByAngle(g, layout, "a", "z"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ConnectByAngle(a, z) error = %v, want %v", err, ErrInvalidArgument)
	}
}

func TestValidate_Corrupted(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(g *DCEL[string])
	}{
		{"broken next", func(g *DCEL[string]) { g.halfEdges[0].next = g.halfEdges[0].prev }},
		{"wrong face", func(g *DCEL[string]) { g.halfEdges[0].face = g.halfEdges[1].face }},
		{"wrong degree", func(g *DCEL[string]) { g.vertices[0].degree++ }},
		{"stale index", func(g *DCEL[string]) { delete(g.edges, edgeKey{0, 1}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustSquare(t, true)
			tt.corrupt(g)
			err := g.Validate()
			if !errors.Is(err, ErrCorrupted) {
				t.Errorf("Validate() error = %v, want %v", err, ErrCorrupted)
			}
			if errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Validate() error = %v, want distinct from %v", err, ErrInvalidArgument)
			}
		})
	}
}

func TestAddEdge_CorruptedCycleLeavesStoreUntouched(t *testing.T) {
	g := mustSquare(t, false)
	ab := mustEdge(t, g, "a", "b")
	bc := mustEdge(t, g, "b", "c")
	cd := mustEdge(t, g, "c", "d")
	g.halfEdges[bc].next = bc

	before := slices.Clone(g.halfEdges)
	_, err := g.AddEdge("a", "c", ab, cd)
	if !errors.Is(err, ErrCorrupted) {
		t.Fatalf("AddEdge(a, c) error = %v, want %v", err, ErrCorrupted)
	}
	if diff := cmp.Diff(before, g.halfEdges, cmp.AllowUnexported(halfEdge{})); diff != "" {
		t.Errorf("half-edges changed by failed AddEdge (-want +got):\n%s", diff)
	}
	if g.NumEdges() != 4 || g.NumFaces() != 2 {
		t.Errorf("NumEdges(), NumFaces() = %d, %d, want 4, 2", g.NumEdges(), g.NumFaces())
	}
	if _, ok := g.Edge("a", "c"); ok {
		t.Errorf("Edge(a, c) found after failed AddEdge")
	}
}

func TestEqualGraph(t *testing.T) {
	a := mustSquare(t, true)
	b := mustSquare(t, false)
	if EqualGraph(a, b) {
		t.Errorf("EqualGraph(square+diagonal, square) = true, want false")
	}
	if !EqualGraph(a, mustSquare(t, true)) {
		t.Errorf("EqualGraph(square+diagonal, square+diagonal) = false, want true")
	}
}

func TestCyclicEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want bool
	}{
		{"empty", nil, []int{}, true},
		{"same", []int{1, 2, 3}, []int{1, 2, 3}, true},
		{"rotated", []int{1, 2, 3}, []int{3, 1, 2}, true},
		{"reversed", []int{1, 2, 3}, []int{3, 2, 1}, false},
		{"length", []int{1, 2}, []int{1, 2, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CyclicEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("CyclicEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCounter(t *testing.T) {
	next := Counter(7)
	got := []int{next(), next(), next()}
	if diff := cmp.Diff([]int{7, 8, 9}, got); diff != "" {
		t.Errorf("Counter(7) mismatch (-want +got):\n%s", diff)
	}
}

// Helpers

func mustNew(t *testing.T, opts ...Option[string]) *DCEL[string] {
	t.Helper()
	g, err := New(opts...)
	if err != nil {
		t.Fatalf("New(...) error = %v, want nil", err)
	}
	return g
}

func mustAddVertices(t *testing.T, g *DCEL[string], vs ...string) {
	t.Helper()
	for _, v := range vs {
		if err := g.AddVertex(v); err != nil {
			t.Fatalf("AddVertex(%s) error = %v, want nil", v, err)
		}
	}
}

func mustAddEdge(t *testing.T, g *DCEL[string], s, d string, bs, bt HalfEdge) HalfEdge {
	t.Helper()
	e, err := g.AddEdge(s, d, bs, bt)
	if err != nil {
		t.Fatalf("AddEdge(%s, %s, %d, %d) error = %v, want nil", s, d, bs, bt, err)
	}
	return e
}

func mustEdge(t *testing.T, g *DCEL[string], s, d string) HalfEdge {
	t.Helper()
	e, ok := g.Edge(s, d)
	if !ok {
		t.Fatalf("Edge(%s, %s) not found", s, d)
	}
	return e
}

func mustValidate(t *testing.T, g *DCEL[string]) {
	t.Helper()
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
}

// mustSquare builds the unit square a(0,0) b(1,0) c(1,1) d(0,1), optionally
// with the diagonal a-c.
func mustSquare(t *testing.T, diagonal bool) *DCEL[string] {
	t.Helper()
	g := mustNew(t)
	buildSquare(t, g, diagonal)
	return g
}

func buildSquare(t *testing.T, g *DCEL[string], diagonal bool) {
	t.Helper()
	mustAddVertices(t, g, "a", "b", "c", "d")
	mustAddEdge(t, g, "a", "b", NoEdge, NoEdge)
	mustAddEdge(t, g, "b", "c", NoEdge, NoEdge)
	mustAddEdge(t, g, "c", "d", NoEdge, NoEdge)
	mustAddEdge(t, g, "d", "a", NoEdge, NoEdge)
	if diagonal {
		mustAddEdge(t, g, "a", "c", mustEdge(t, g, "a", "b"), mustEdge(t, g, "c", "d"))
	}
	mustValidate(t, g)
}

func squareLayout() *MapLayout[string] {
	l := NewMapLayout[string]()
	l.SetPosition("a", r2.Point{X: 0, Y: 0})
	l.SetPosition("b", r2.Point{X: 1, Y: 0})
	l.SetPosition("c", r2.Point{X: 1, Y: 1})
	l.SetPosition("d", r2.Point{X: 0, Y: 1})
	return l
}

// faceSets returns the vertex cycles of the bounded faces, each rotated to
// start at its smallest vertex.
func faceSets(t *testing.T, g *DCEL[string]) map[string]bool {
	t.Helper()
	out := make(map[string]bool)
	for _, f := range g.Faces() {
		if g.IsOuter(f) {
			continue
		}
		vs, err := g.FaceVertices(f)
		if err != nil {
			t.Fatalf("FaceVertices(%d) error = %v, want nil", f, err)
		}
		start := 0
		for i, v := range vs {
			if v < vs[start] {
				start = i
			}
		}
		key := ""
		for i := range vs {
			key += vs[(start+i)%len(vs)]
		}
		out[key] = true
	}
	return out
}
