// Package bfs implements restartable breadth-first search over a
// core.Graph, recording discovery numbers or levels through a shared
// property container.
//
// A Search is split into Run (initialize state, discover the start
// vertex) and Resume (drain the queue). Stop conditions halt the
// traversal as a normal outcome; calling Resume afterwards continues
// from exactly where the search left off.
package bfs

import (
	"github.com/katalvlaran/incgraph/core"
	"github.com/katalvlaran/incgraph/props"
)

// Search holds the mutable state of one breadth-first traversal.
// It is restartable: after a stop condition halts Resume, another
// Resume call picks the queue back up.
type Search struct {
	graph *core.Graph
	start *core.Vertex
	opts  Options

	values     *props.Map[uint64]
	discovered map[uint64]bool

	// queue is the FIFO wave queue; a nil entry marks a level
	// boundary.
	queue []*core.Vertex

	nextNumber uint64
	maxNumber  uint64
	maxLevel   uint64
	prepared   bool
}

// New validates the inputs and builds a Search ready to Run.
// Returns ErrGraphNil, ErrStartVertexNotFound, or ErrOptionViolation
// for invalid input.
func New(g *core.Graph, start *core.Vertex, opts ...Option) (*Search, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start == nil || !g.ContainsVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	values := o.Values
	if values == nil {
		values = props.New[uint64](INF)
	}

	return &Search{
		graph:     g,
		start:     start,
		opts:      o,
		values:    values,
		maxNumber: INF,
	}, nil
}

// Run initializes the traversal state, discovers the start vertex,
// and drains the queue via Resume. Rerunning resets all prior state.
func (s *Search) Run() error {
	s.queue = s.queue[:0]
	s.discovered = make(map[uint64]bool, s.graph.Size())
	s.nextNumber = 0
	s.maxNumber = INF
	s.maxLevel = 0
	s.prepared = true

	if s.discover(s.start, 0) {
		s.queue = append(s.queue, s.start, nil)
	}

	return s.Resume()
}

// Resume drains the queue until it empties, a stop condition fires,
// or the context is cancelled. Halting on a stop condition is a
// normal outcome and returns nil; only cancellation yields an error.
func (s *Search) Resume() error {
	for len(s.queue) > 0 {
		select {
		case <-s.opts.Ctx.Done():
			return s.opts.Ctx.Err()
		default:
		}

		curr := s.queue[0]
		if curr == nil {
			// level boundary: close the wave, reinsert the marker
			// behind the next one if anything is left
			s.queue = s.queue[1:]
			if len(s.queue) > 0 {
				s.queue = append(s.queue, nil)
				s.maxLevel++
			}

			continue
		}

		// the stopping vertex stays queued so a later Resume
		// re-evaluates the condition
		if s.opts.VertexStop(curr) {
			return nil
		}
		s.queue = s.queue[1:]
		if !s.expand(curr) {
			return nil
		}
	}

	return nil
}

// discover assigns curr its value, marks it discovered, and reports
// whether the vertex should be expanded further.
func (s *Search) discover(v *core.Vertex, level uint64) bool {
	num := s.nextNumber
	s.nextNumber++
	s.maxNumber = num

	if s.opts.LevelValues {
		s.values.Set(v.ID(), level)
	} else {
		s.values.Set(v.ID(), num)
	}
	s.discovered[v.ID()] = true

	return s.opts.OnVertexDiscovered(v)
}

// expand follows curr's arcs in the configured direction, discovering
// and enqueuing unseen peers. Returns false when an arc stop condition
// halted the traversal; the stopping arc is still announced through
// OnArcDiscovered, but its effect is discarded.
func (s *Search) expand(curr *core.Vertex) bool {
	stopped := false
	s.graph.MapIncidentArcsUntil(curr, s.opts.Direction, func(a *core.Arc) {
		consider := s.opts.OnArcDiscovered(a)
		if s.opts.ArcStop(a) {
			stopped = true

			return
		}
		if !consider {
			return
		}
		peer := a.Peer(curr, s.opts.Direction)
		if s.discovered[peer.ID()] {
			s.opts.OnNonTreeArc(a)

			return
		}
		s.opts.OnTreeArc(a)
		if s.discover(peer, s.maxLevel+1) {
			s.queue = append(s.queue, peer)
		}
	}, func(*core.Arc) bool { return stopped })

	return !stopped
}

// NumVerticesReached returns how many vertices the search discovered,
// or zero before the first Run.
func (s *Search) NumVerticesReached() uint64 {
	if s.maxNumber == INF {
		return 0
	}

	return s.maxNumber + 1
}

// MaxLevel returns the highest level the search has completed so far.
func (s *Search) MaxLevel() uint64 { return s.maxLevel }

// Discovered reports whether the search has reached v.
func (s *Search) Discovered(v *core.Vertex) bool {
	return s.discovered[v.ID()]
}

// Values exposes the container holding discovery numbers or levels,
// keyed by vertex id; unvisited vertices read as INF (or the caller's
// configured default).
func (s *Search) Values() *props.Map[uint64] { return s.values }

// Finished reports whether the queue has fully drained since the last
// Run.
func (s *Search) Finished() bool {
	return s.prepared && len(s.queue) == 0
}
