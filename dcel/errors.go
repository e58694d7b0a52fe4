// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package dcel

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of every precondition error. An operation
// that fails with it has not modified the structure.
var ErrInvalidArgument = errors.New("dcel: invalid argument")

// ErrCorrupted reports a broken invariant discovered during an operation,
// such as a face walk that never returns to its start.
var ErrCorrupted = errors.New("dcel: corrupted structure")

var (
	ErrVertexExists       = fmt.Errorf("%w: vertex already exists", ErrInvalidArgument)
	ErrVertexNotFound     = fmt.Errorf("%w: vertex not found", ErrInvalidArgument)
	ErrVertexInUse        = fmt.Errorf("%w: vertex has incident edges", ErrInvalidArgument)
	ErrEdgeExists         = fmt.Errorf("%w: edge already exists", ErrInvalidArgument)
	ErrEdgeNotFound       = fmt.Errorf("%w: edge not found", ErrInvalidArgument)
	ErrSelfLoop           = fmt.Errorf("%w: self-loop", ErrInvalidArgument)
	ErrBadPlacement       = fmt.Errorf("%w: placement inconsistent with rotation", ErrInvalidArgument)
	ErrAmbiguousPlacement = fmt.Errorf("%w: placement required for vertex of degree > 1", ErrInvalidArgument)
	ErrDisconnected       = fmt.Errorf("%w: edge would leave the graph disconnected", ErrInvalidArgument)
	ErrNotFlippable       = fmt.Errorf("%w: edge is not a diagonal of two bounded triangles", ErrInvalidArgument)
	ErrNilOption          = fmt.Errorf("%w: nil option value", ErrInvalidArgument)
)
