// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package dcel

// VertexFactory produces a fresh vertex identity on every call.
type VertexFactory[V comparable] func() V

// EdgeFactory produces the payload of an edge joining source and target.
// It is called once per inserted edge, including the edges created by
// SplitEdge.
type EdgeFactory[V comparable] func(source, target V) any

// FaceFactory produces the payload of a newly created face. e lies on the
// new face and twin is its twin; outer reports whether the new face is the
// outer face.
type FaceFactory func(e, twin HalfEdge, outer bool) any

// Counter returns a VertexFactory yielding start, start+1, ...
func Counter(start int) VertexFactory[int] {
	next := start
	return func() int {
		v := next
		next++
		return v
	}
}
