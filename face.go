// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package planar

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Face represents a bounded face of a Triangulation. It is a view structure
// for accessing the face's slices in the Triangulation.
type Face struct {
	idx int
	t   *Triangulation
}

// Index returns the index of the face in the Triangulation.
func (f Face) Index() int {
	return f.idx
}

// NumVertices returns the number of vertices in the face.
// This equals the number of neighbors.
func (f Face) NumVertices() int {
	return f.t.FaceOffsets[f.idx+1] - f.t.FaceOffsets[f.idx]
}

// VertexIndices returns the indices of the face's vertices in the
// Triangulation's Points, sorted in counter-clockwise order.
func (f Face) VertexIndices() []int {
	return f.t.FaceVertices[f.t.FaceOffsets[f.idx]:f.t.FaceOffsets[f.idx+1]]
}

// Vertex returns the vertex at the specified index.
// It returns an error if the index is out of range.
func (f Face) Vertex(i int) (r2.Point, error) {
	start := f.t.FaceOffsets[f.idx]
	end := f.t.FaceOffsets[f.idx+1]
	if i < 0 || i >= end-start {
		return r2.Point{}, fmt.Errorf("Vertex: index %d out of range [0 %d)", i, end-start)
	}
	return f.t.Points[f.t.FaceVertices[start+i]], nil
}

// NumNeighbors returns the number of edges of the face, including those on
// the convex hull.
func (f Face) NumNeighbors() int {
	return f.t.FaceOffsets[f.idx+1] - f.t.FaceOffsets[f.idx]
}

// NeighborIndices returns, for each edge of the face, the index of the face
// across it, or -1 where the edge lies on the convex hull. Edge i runs from
// vertex i to vertex i+1.
func (f Face) NeighborIndices() []int {
	return f.t.FaceNeighbors[f.t.FaceOffsets[f.idx]:f.t.FaceOffsets[f.idx+1]]
}

// Neighbor returns the face across edge i.
// It returns an error if the index is out of range or the edge lies on the
// convex hull.
func (f Face) Neighbor(i int) (Face, error) {
	start := f.t.FaceOffsets[f.idx]
	end := f.t.FaceOffsets[f.idx+1]
	if i < 0 || i >= end-start {
		return Face{}, fmt.Errorf("Neighbor: index %d out of range [0 %d)", i, end-start)
	}
	nb := f.t.FaceNeighbors[start+i]
	if nb < 0 {
		return Face{}, fmt.Errorf("Neighbor: edge %d of face %d is on the convex hull", i, f.idx)
	}
	return f.t.Face(nb)
}

// Circumcenter returns the centre of the circle through the first three
// vertices of the face.
func (f Face) Circumcenter() r2.Point {
	vs := f.VertexIndices()
	return triangleCircumcenter(f.t.Points[vs[0]], f.t.Points[vs[1]], f.t.Points[vs[2]])
}

func triangleCircumcenter(p1, p2, p3 r2.Point) r2.Point {
	b := p2.Sub(p1)
	c := p3.Sub(p1)

	d := 2 * b.Cross(c)
	bb := b.Dot(b)
	cc := c.Dot(c)

	return r2.Point{
		X: p1.X + (c.Y*bb-b.Y*cc)/d,
		Y: p1.Y + (b.X*cc-c.X*bb)/d,
	}
}
