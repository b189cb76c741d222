// Package bfs provides tunable options and error definitions
// for restartable breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/incgraph/core"
	"github.com/katalvlaran/incgraph/props"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex does not
	// belong to the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// INF marks a vertex the search has not discovered yet; it is the
// default of the value container when the caller does not supply one.
const INF = ^uint64(0)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. an unknown direction), it is recorded
// internally and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines between expansion steps.
	Ctx context.Context

	// Direction selects how arcs are followed from the current vertex:
	// Forward (tail→head), Reverse (head→tail), or Undirected (both).
	Direction core.Direction

	// Values receives each discovered vertex's value, keyed by vertex
	// id. When nil, the search allocates its own container with
	// default INF.
	Values *props.Map[uint64]

	// LevelValues switches the recorded value from the sequential
	// discovery number to the vertex's level (distance in waves from
	// the start).
	LevelValues bool

	// OnVertexDiscovered runs when a vertex is first reached.
	// Returning false marks the vertex discovered without enqueuing it
	// for expansion.
	OnVertexDiscovered func(v *core.Vertex) bool

	// VertexStop halts the traversal before the vertex at the front of
	// the queue is expanded. The vertex stays queued, so a later Resume
	// re-evaluates the condition and can continue past it.
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

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Forward direction
//   - discovery-number values in a fresh container
//   - permissive hooks (everything considered, nothing stops).
func DefaultOptions() Options {
	return Options{
		Ctx:                context.Background(),
		Direction:          core.Forward,
		Values:             nil,
		LevelValues:        false,
		OnVertexDiscovered: func(*core.Vertex) bool { return true },
		VertexStop:         func(*core.Vertex) bool { return false },
		OnArcDiscovered:    func(*core.Arc) bool { return true },
		ArcStop:            func(*core.Arc) bool { return false },
		OnTreeArc:          func(*core.Arc) {},
		OnNonTreeArc:       func(*core.Arc) {},
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

// WithValues supplies the container discovery values are written to,
// letting callers share one container across runs.
func WithValues(values *props.Map[uint64]) Option {
	return func(o *Options) {
		if values != nil {
			o.Values = values
		}
	}
}

// WithLevelValues records each vertex's level instead of its
// sequential discovery number.
func WithLevelValues() Option {
	return func(o *Options) { o.LevelValues = true }
}

// WithOnVertexDiscovered registers the vertex-discovery hook;
// returning false from it skips expansion of that vertex.
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
