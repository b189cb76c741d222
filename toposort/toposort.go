// Package toposort computes a topological ordering of a directed
// acyclic core.Graph, assigning each vertex a topological number
// through an optional property container.
//
// The ordering is built by repeated source removal (Kahn's method) on
// the engine's degree and arc-mapping primitives without mutating the
// graph. Deactivated vertices and arcs are invisible to the sort, so
// a graph can be partially deactivated and re-sorted cheaply.
//
// Complexity: O(V + A) time, O(V) memory.
package toposort

import (
	"errors"

	"github.com/katalvlaran/incgraph/core"
	"github.com/katalvlaran/incgraph/props"
)

// Sentinel errors for topological sorting.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("toposort: graph is nil")

	// ErrCycleDetected is returned when the graph contains a directed
	// cycle and no complete ordering exists.
	ErrCycleDetected = errors.New("toposort: graph contains a cycle")
)

// Option configures the sort via functional arguments.
type Option func(*Options)

// Options holds the tunable parts of a sort.
type Options struct {
	// Values receives each vertex's topological number, keyed by
	// vertex id. Nil leaves numbering to the returned slice order.
	Values *props.Map[int]
}

// WithValues supplies the container topological numbers are written
// to.
func WithValues(values *props.Map[int]) Option {
	return func(o *Options) {
		if values != nil {
			o.Values = values
		}
	}
}

// Sort returns the graph's vertices in topological order: every arc's
// tail precedes its head. Parallel arcs and bundles count once; a
// self-loop makes its vertex part of a cycle.
func Sort(g *core.Graph, opts ...Option) ([]*core.Vertex, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	indegree := make(map[uint64]uint64, g.Size())
	queue := make([]*core.Vertex, 0, g.Size())
	g.MapVertices(func(v *core.Vertex) {
		d := v.InDegree(true)
		indegree[v.ID()] = d
		if d == 0 {
			queue = append(queue, v)
		}
	})

	order := make([]*core.Vertex, 0, g.Size())
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if o.Values != nil {
			o.Values.Set(v.ID(), len(order))
		}
		order = append(order, v)

		g.MapOutgoingArcs(v, func(a *core.Arc) {
			head := a.Head()
			indegree[head.ID()]--
			if indegree[head.ID()] == 0 {
				queue = append(queue, head)
			}
		})
	}

	if len(order) != g.Size() {
		return nil, ErrCycleDetected
	}

	return order, nil
}
