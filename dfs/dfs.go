// Package dfs implements depth-first search over a core.Graph with
// classic low-link computation, recording pre-order dfs numbers,
// low numbers, and parent links.
//
// The traversal runs on an explicit work stack of resumable frames
// (vertex, arc snapshot, cursor) instead of true recursion, so graph
// size bounds memory, not goroutine stack depth. Stop conditions halt
// the traversal as a normal outcome, leaving partial results in place.
package dfs

import (
	"github.com/katalvlaran/incgraph/core"
	"github.com/katalvlaran/incgraph/props"
)

// frame is one suspended expansion: a vertex, the snapshot of its
// incident arcs in direction order, and the cursor of the next arc to
// process. Snapshotting keeps each graph mapping call atomic while
// the frame outlives it.
type frame struct {
	v    *core.Vertex
	arcs []*core.Arc
	next int
}

// Search holds the mutable state of one depth-first traversal.
type Search struct {
	graph *core.Graph
	start *core.Vertex
	opts  Options

	values     *props.Map[int]
	lows       *props.Map[int]
	parents    map[uint64]*core.Vertex
	discovered map[uint64]bool

	stack     []frame
	counter   int
	maxNumber int
	halted    bool
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
		values = props.New(Unreached)
	}
	lows := o.LowValues
	if lows == nil {
		lows = props.New(Unreached)
	}

	return &Search{
		graph:     g,
		start:     start,
		opts:      o,
		values:    values,
		lows:      lows,
		maxNumber: Unreached,
	}, nil
}

// Run performs the traversal from the start vertex. Rerunning resets
// all prior state. Halting on a stop condition is a normal outcome
// and returns nil; only cancellation yields an error.
func (s *Search) Run() error {
	s.stack = s.stack[:0]
	s.parents = make(map[uint64]*core.Vertex, s.graph.Size())
	s.discovered = make(map[uint64]bool, s.graph.Size())
	s.counter = 0
	s.maxNumber = Unreached
	s.halted = false

	s.visit(s.start)

	for len(s.stack) > 0 && !s.halted {
		select {
		case <-s.opts.Ctx.Done():
			return s.opts.Ctx.Err()
		default:
		}

		f := &s.stack[len(s.stack)-1]
		if f.next >= len(f.arcs) {
			s.exit()

			continue
		}

		a := f.arcs[f.next]
		f.next++

		// the stopping arc is still announced, but its effect is
		// discarded
		consider := s.opts.OnArcDiscovered(a)
		if s.opts.ArcStop(a) {
			s.halted = true

			break
		}
		if !consider {
			continue
		}

		peer := a.Peer(f.v, s.opts.Direction)
		if s.discovered[peer.ID()] {
			s.opts.OnNonTreeArc(a)
			// non-tree arc to a non-parent peer lowers the low-link
			// to the peer's dfs number
			if peer != s.parents[f.v.ID()] {
				if pn := s.values.Get(peer.ID()); pn < s.lows.Get(f.v.ID()) {
					s.lows.Set(f.v.ID(), pn)
				}
			}

			continue
		}

		s.parents[peer.ID()] = f.v
		s.opts.OnTreeArc(a)
		s.visit(peer)
	}

	return nil
}

// visit discovers v: assigns its dfs and low numbers, fires the
// discovery hooks, and pushes an expansion frame unless the vertex is
// not to be considered further or a stop condition halts the run.
func (s *Search) visit(v *core.Vertex) {
	num := s.counter
	s.counter++
	s.maxNumber = num
	s.values.Set(v.ID(), num)
	s.lows.Set(v.ID(), num)
	s.discovered[v.ID()] = true

	consider := s.opts.OnVertexDiscovered(v)
	if s.opts.VertexStop(v) {
		s.halted = true

		return
	}
	if !consider {
		return
	}

	s.stack = append(s.stack, frame{v: v, arcs: s.incidentArcs(v)})
}

// exit pops the finished frame, fires the post-order hook, and folds
// the vertex's low number into its parent's.
func (s *Search) exit() {
	f := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.opts.OnVertexExit(f.v)

	if len(s.stack) > 0 {
		p := s.stack[len(s.stack)-1].v
		if low := s.lows.Get(f.v.ID()); low < s.lows.Get(p.ID()) {
			s.lows.Set(p.ID(), low)
		}
	}
}

// incidentArcs snapshots v's arcs in the configured direction order.
func (s *Search) incidentArcs(v *core.Vertex) []*core.Arc {
	var arcs []*core.Arc
	s.graph.MapIncidentArcsUntil(v, s.opts.Direction,
		func(a *core.Arc) { arcs = append(arcs, a) },
		func(*core.Arc) bool { return false },
	)

	return arcs
}

// NumVerticesReached returns how many vertices the search discovered,
// or zero before the first Run.
func (s *Search) NumVerticesReached() int { return s.maxNumber + 1 }

// Discovered reports whether the last Run reached v.
func (s *Search) Discovered(v *core.Vertex) bool {
	return s.discovered[v.ID()]
}

// DFSNumber returns v's pre-order discovery number, or Unreached.
func (s *Search) DFSNumber(v *core.Vertex) int {
	return s.values.Get(v.ID())
}

// LowNumber returns v's low-link number, or Unreached.
func (s *Search) LowNumber(v *core.Vertex) int {
	return s.lows.Get(v.ID())
}

// Parent returns v's tree parent, or nil for the start vertex and
// unreached vertices.
func (s *Search) Parent(v *core.Vertex) *core.Vertex {
	return s.parents[v.ID()]
}

// Values exposes the dfs-number container, keyed by vertex id.
func (s *Search) Values() *props.Map[int] { return s.values }

// LowValues exposes the low-link container, keyed by vertex id.
func (s *Search) LowValues() *props.Map[int] { return s.lows }

// Halted reports whether the last Run was cut short by a stop
// condition.
func (s *Search) Halted() bool { return s.halted }
