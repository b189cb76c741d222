// File: methods_arcs.go
// Role: arc lifecycle, membership queries, and the map-style iteration
// primitives the traversal framework consumes.
package core

// AddArc creates a simple arc tail→head and registers it in tail's
// outgoing and head's incoming lists. O(1) amortized. With consistency
// checking enabled, both endpoints must be active members of this
// graph (ErrVertexNotFound otherwise).
func (g *Graph) AddArc(tail, head *Vertex) (*Arc, error) {
	if g.checkConsistency && (!g.ContainsVertex(tail) || !g.ContainsVertex(head)) {
		return nil, ErrVertexNotFound
	}
	a := g.createArc(tail, head, Simple, 1)
	g.registerArc(a, tail, head)

	return a, nil
}

// AddMultiArc creates an arc representing size parallel edges between
// the same ordered pair. Size below one yields ErrInvalidArcSize.
func (g *Graph) AddMultiArc(tail, head *Vertex, size uint64) (*Arc, error) {
	if size < 1 {
		return nil, ErrInvalidArcSize
	}
	if g.checkConsistency && (!g.ContainsVertex(tail) || !g.ContainsVertex(head)) {
		return nil, ErrVertexNotFound
	}
	a := g.createArc(tail, head, Multi, size)
	g.registerArc(a, tail, head)

	return a, nil
}

// registerArc wires an engine-owned arc into both incidence lists and
// bumps the active object count. The endpoint agreement panic guards an
// engine bug, not caller input: every caller passes a's own endpoints.
func (g *Graph) registerArc(a *Arc, tail, head *Vertex) {
	if g.checkConsistency && (a.tail != tail || a.head != head) {
		panic("core: registering arc against foreign endpoints")
	}
	tail.inc.addOut(a)
	head.inc.addIn(a)
	g.numArcs++
}

// RemoveArc detaches a from both endpoints and returns it to the pool.
// O(1) via swap-delete in both incidence lists. Removing an arc that a
// bundle currently represents shrinks the bundle instead of touching
// the lists. Returns ErrArcNotFound when a is not active in this graph.
func (g *Graph) RemoveArc(a *Arc) error {
	if !g.ContainsArc(a) {
		return ErrArcNotFound
	}
	tail, head := a.tail, a.head

	// Bundled member: detach from the representing bundle on both
	// sides. The bundle object keeps its (single) numArcs share; the
	// expanded count shrinks through the bundle's size.
	if b := tail.inc.bundleOf[a.id]; b != nil {
		if !b.removeMember(a) {
			panic("core: bundle table out of sync")
		}
		delete(tail.inc.bundleOf, a.id)
		delete(head.inc.bundleOf, a.id)
		g.hibernateArc(a)

		return nil
	}

	if !tail.inc.removeOut(a) || !head.inc.removeIn(a) {
		panic("core: arc incidence out of sync")
	}
	g.numArcs--
	g.hibernateArc(a)

	return nil
}

// RemoveArcBetween is RemoveArc with explicit endpoints, for callers
// tracking arcs by (tail, head) pairs. With consistency checking
// enabled, a recorded tail/head disagreement is reported as
// ErrArcEndpointMismatch instead of corrupting the peers' lists.
func (g *Graph) RemoveArcBetween(a *Arc, tail, head *Vertex) error {
	if g.checkConsistency && (a == nil || a.tail != tail || a.head != head) {
		return ErrArcEndpointMismatch
	}

	return g.RemoveArc(a)
}

// ContainsArc reports whether a is an active member of this graph,
// directly or as a bundled member. O(1).
func (g *Graph) ContainsArc(a *Arc) bool {
	return a != nil && a.valid && a.parent == g.owner &&
		a.tail != nil && a.tail.inc.hasOut(a)
}

// FindArc returns some active arc tail→head, or nil when none exists.
// Linear scan of tail's outgoing lists with early exit; O(out-degree).
func (g *Graph) FindArc(tail, head *Vertex) *Arc {
	var found *Arc
	tail.inc.mapOut(func(a *Arc) {
		if a.head == head {
			found = a
		}
	}, func(*Arc) bool { return found != nil }, true)

	return found
}

// MapOutgoingArcs applies fn to each of v's active outgoing arcs,
// simple arcs first, then multi-arcs. The containers must stay stable
// for the duration of the call.
func (g *Graph) MapOutgoingArcs(v *Vertex, fn ArcMapping) {
	v.inc.mapOut(fn, arcFalse, true)
}

// MapOutgoingArcsUntil is MapOutgoingArcs with a break condition.
func (g *Graph) MapOutgoingArcsUntil(v *Vertex, fn ArcMapping, breakCondition ArcPredicate) {
	v.inc.mapOut(fn, breakCondition, true)
}

// MapIncomingArcs applies fn to each of v's active incoming arcs.
func (g *Graph) MapIncomingArcs(v *Vertex, fn ArcMapping) {
	v.inc.mapIn(fn, arcFalse, true)
}

// MapIncomingArcsUntil is MapIncomingArcs with a break condition.
func (g *Graph) MapIncomingArcsUntil(v *Vertex, fn ArcMapping, breakCondition ArcPredicate) {
	v.inc.mapIn(fn, breakCondition, true)
}

// MapIncidentArcsUntil maps v's arcs in the iteration order a traversal
// running in direction dir expects: outgoing for Forward, incoming for
// Reverse, both for Undirected.
func (g *Graph) MapIncidentArcsUntil(v *Vertex, dir Direction, fn ArcMapping, breakCondition ArcPredicate) {
	switch dir {
	case Reverse:
		v.inc.mapIn(fn, breakCondition, true)
	case Undirected:
		if v.inc.mapOut(fn, breakCondition, true) {
			v.inc.mapIn(fn, breakCondition, true)
		}
	default:
		v.inc.mapOut(fn, breakCondition, true)
	}
}

// MapArcs applies fn to every active arc object exactly once, walking
// each vertex's outgoing lists.
func (g *Graph) MapArcs(fn ArcMapping) {
	g.MapArcsUntil(fn, arcFalse)
}

// MapArcsUntil is MapArcs with a break condition.
func (g *Graph) MapArcsUntil(fn ArcMapping, breakCondition ArcPredicate) {
	for _, v := range g.vertices {
		if !v.inc.mapOut(fn, breakCondition, true) {
			break
		}
	}
}
