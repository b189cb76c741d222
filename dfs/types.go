// Package dfs provides tunable options and error definitions
// for depth-first search over a core.Graph.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/incgraph/core"
	"github.com/katalvlaran/incgraph/props"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex does not
	// belong to the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Unreached marks a vertex the search has not discovered; it is the
// default of the number containers when the caller supplies none.
const Unreached = -1

// Option configures DFS behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks to customize DFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines between expansion steps.
	Ctx context.Context

	// Direction selects how arcs are followed from the current vertex.
	Direction core.Direction

	// Values receives each vertex's pre-order dfs number. When nil,
	// the search allocates its own container with default Unreached.
	Values *props.Map[int]

	// LowValues receives each vertex's low-link number: the smallest
	// dfs number reachable from the vertex's subtree via at most one
	// non-tree arc. When nil, the search allocates its own container.
	LowValues *props.Map[int]

	// OnVertexDiscovered runs when a vertex is first reached.
	// Returning false records the vertex's numbers without expanding
	// its subtree.
	OnVertexDiscovered func(v *core.Vertex) bool

	// VertexStop halts the traversal after the vertex is discovered
	// but before its subtree is expanded, leaving partial results in
	// place.
	VertexStop func(v *core.Vertex) bool

	// OnArcDiscovered runs for every arc considered during expansion.
	// Returning false ignores the arc entirely.
	OnArcDiscovered func(a *core.Arc) bool

	// ArcStop halts the traversal, discarding the current arc's effect.
	ArcStop func(a *core.Arc) bool

	// OnTreeArc runs when an arc leads to a previously-undiscovered
	// peer.
	OnTreeArc func(a *core.Arc)

	// OnNonTreeArc runs when an arc leads to an already-discovered
	// peer.
	OnNonTreeArc func(a *core.Arc)

	// OnVertexExit runs in post-order, after a vertex's subtree has
	// been fully expanded.
	OnVertexExit func(v *core.Vertex)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Forward direction
//   - fresh number containers with default Unreached
//   - permissive hooks (everything considered, nothing stops).
func DefaultOptions() Options {
	return Options{
		Ctx:                context.Background(),
		Direction:          core.Forward,
		OnVertexDiscovered: func(*core.Vertex) bool { return true },
		VertexStop:         func(*core.Vertex) bool { return false },
		OnArcDiscovered:    func(*core.Arc) bool { return true },
		ArcStop:            func(*core.Arc) bool { return false },
		OnTreeArc:          func(*core.Arc) {},
		OnNonTreeArc:       func(*core.Arc) {},
		OnVertexExit:       func(*core.Vertex) {},
		err:                nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection selects the arc-following mode. An unknown direction
// is an invalid option and surfaces as ErrOptionViolation.
func WithDirection(dir core.Direction) Option {
	return func(o *Options) {
		switch dir {
		case core.Forward, core.Reverse, core.Undirected:
			o.Direction = dir
		default:
			o.err = fmt.Errorf("%w: unknown direction (%d)", ErrOptionViolation, dir)
		}
	}
}

// WithValues supplies the container dfs numbers are written to.
func WithValues(values *props.Map[int]) Option {
	return func(o *Options) {
		if values != nil {
			o.Values = values
		}
	}
}

// WithLowValues supplies the container low-link numbers are written
// to.
func WithLowValues(values *props.Map[int]) Option {
	return func(o *Options) {
		if values != nil {
			o.LowValues = values
		}
	}
}

// WithOnVertexDiscovered registers the vertex-discovery hook;
// returning false from it skips expansion of that vertex's subtree.
func WithOnVertexDiscovered(fn func(v *core.Vertex) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVertexDiscovered = fn
		}
	}
}

// WithVertexStop registers the vertex stop condition.
func WithVertexStop(fn func(v *core.Vertex) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.VertexStop = fn
		}
	}
}

// WithOnArcDiscovered registers the arc-consideration hook; returning
// false from it ignores that arc.
func WithOnArcDiscovered(fn func(a *core.Arc) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnArcDiscovered = fn
		}
	}
}

// WithArcStop registers the arc stop condition.
func WithArcStop(fn func(a *core.Arc) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.ArcStop = fn
		}
	}
}

// WithOnTreeArc registers a callback for arcs reaching undiscovered
// peers.
func WithOnTreeArc(fn func(a *core.Arc)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTreeArc = fn
		}
	}
}

// WithOnNonTreeArc registers a callback for arcs reaching
// already-discovered peers.
func WithOnNonTreeArc(fn func(a *core.Arc)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnNonTreeArc = fn
		}
	}
}

// WithOnVertexExit registers the post-order hook.
func WithOnVertexExit(fn func(v *core.Vertex)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVertexExit = fn
		}
	}
}
