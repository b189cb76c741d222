// File: methods_state.go
// Role: soft removal and restoration. Elements move between the active
// and deactivated arrays with identity and incidence preserved; only
// hibernation releases them to the pools.
//
// State machine per element:
//
//	pooled → active        (create/recycle)
//	active → pooled        (hibernate; id eligible for reuse)
//	active ↔ deactivated   (deactivate/activate; identity preserved)
//
// A deactivated element never reaches the pool directly; it must pass
// through the active state first (e.g. ActivateAll before Clear).
package core

// parkArcOnEngine records a as individually deactivated.
func (g *Graph) parkArcOnEngine(a *Arc) {
	a.parking = parkedEngine
	a.parkIndex = len(g.offArcs)
	g.offArcs = append(g.offArcs, a)
}

// parkArcOnVertex records a as suspended by v's deactivation.
func (g *Graph) parkArcOnVertex(a *Arc, v *Vertex) {
	a.parking = parkedVertex
	a.parkedAt = v
	a.parkIndex = len(v.suspended)
	v.suspended = append(v.suspended, a)
}

// unparkArc detaches a deactivated arc from whichever list holds it,
// fixing the park index of the arc swapped into its place.
func (g *Graph) unparkArc(a *Arc) {
	var list *[]*Arc
	switch a.parking {
	case parkedEngine:
		list = &g.offArcs
	case parkedVertex:
		list = &a.parkedAt.suspended
	default:
		return
	}
	l := *list
	if l[a.parkIndex] != a {
		panic("core: deactivated-arc list out of sync")
	}
	last := len(l) - 1
	moved := l[last]
	l[a.parkIndex] = moved
	moved.parkIndex = a.parkIndex
	l[last] = nil
	*list = l[:last]
	a.parking = parkedNone
	a.parkedAt = nil
}

// DeactivateArc soft-removes a: it leaves both endpoints' active lists
// (peers observe the degree drop) but keeps its identity, endpoints,
// and list membership in the deactivated containers. Both endpoints
// must hold the arc in the active state; otherwise nothing changes and
// false is returned.
func (g *Graph) DeactivateArc(a *Arc) bool {
	if a == nil || !a.valid || a.parent != g.owner {
		return false
	}
	if !g.suspendArc(a, nil) {
		return false
	}

	return true
}

// ActivateArc reverses DeactivateArc. It fails (returns false) when a
// was not deactivated individually — arcs suspended by a vertex
// deactivation come back through ActivateVertex or ActivateAll — or
// when one of a's endpoints is itself deactivated.
func (g *Graph) ActivateArc(a *Arc) bool {
	if a == nil || a.valid || a.parent != g.owner || a.parking != parkedEngine {
		return false
	}

	return g.resumeArc(a)
}

// suspendArc deactivates a, parking it on v's suspended list when v is
// non-nil or on the engine list otherwise. All-or-nothing: both
// endpoint states are verified before either side is touched.
func (g *Graph) suspendArc(a *Arc, v *Vertex) bool {
	if off, found := a.tail.inc.outState(a); !found || off {
		return false
	}
	if off, found := a.head.inc.inState(a); !found || off {
		return false
	}
	a.tail.inc.shiftOut(a, true)
	a.head.inc.shiftIn(a, true)
	a.valid = false
	g.numArcs--
	if v != nil {
		g.parkArcOnVertex(a, v)
	} else {
		g.parkArcOnEngine(a)
	}

	return true
}

// resumeArc restores a deactivated arc into both endpoints' active
// containers. An arc whose endpoint is itself deactivated cannot come
// back yet; restoring it would make a valid arc incident to an invalid
// vertex and desync the two arc-counting modes.
func (g *Graph) resumeArc(a *Arc) bool {
	if !a.tail.valid || !a.head.valid {
		return false
	}
	if off, found := a.tail.inc.outState(a); !found || !off {
		return false
	}
	if off, found := a.head.inc.inState(a); !found || !off {
		return false
	}
	a.tail.inc.shiftOut(a, false)
	a.head.inc.shiftIn(a, false)
	a.valid = true
	g.numArcs++
	g.unparkArc(a)

	return true
}

// DeactivateVertex soft-removes v: every incident arc is deactivated
// first (recorded on v, so reactivation can restore exactly those),
// then v itself moves to the deactivated array. Returns false when v is
// not currently active.
func (g *Graph) DeactivateVertex(v *Vertex) bool {
	if !g.ContainsVertex(v) {
		return false
	}

	// Arcs first, so peers see a consistent degree drop before the
	// vertex disappears from the active array. Snapshots guard against
	// mutating a container mid-iteration; a self-loop is suspended by
	// the outgoing pass and skipped by the incoming one.
	for _, a := range snapshotArcs(v.inc.outSimple, v.inc.outMulti) {
		g.suspendArc(a, v)
	}
	for _, a := range snapshotArcs(v.inc.inSimple, v.inc.inMulti) {
		g.suspendArc(a, v)
	}

	last := len(g.vertices) - 1
	moved := g.vertices[last]
	moved.index = v.index
	g.vertices[v.index] = moved
	g.vertices[last] = nil
	g.vertices = g.vertices[:last]

	v.index = len(g.inactive)
	g.inactive = append(g.inactive, v)
	v.valid = false

	return true
}

// ActivateVertex moves v from the deactivated array back to the active
// array. With activateIncidentArcs, every arc suspended by v's
// deactivation is restored into both endpoints' active lists as well —
// except arcs whose other endpoint is still deactivated; those stay
// suspended until that endpoint returns. Returns false when v is not
// in the deactivated set at its recorded index.
func (g *Graph) ActivateVertex(v *Vertex, activateIncidentArcs bool) bool {
	if v == nil || v.valid || v.parent != g.owner {
		return false
	}
	if v.index >= len(g.inactive) || g.inactive[v.index] != v {
		return false
	}

	last := len(g.inactive) - 1
	moved := g.inactive[last]
	moved.index = v.index
	g.inactive[v.index] = moved
	g.inactive[last] = nil
	g.inactive = g.inactive[:last]

	v.index = len(g.vertices)
	g.vertices = append(g.vertices, v)
	v.valid = true

	if activateIncidentArcs {
		// Drain back-to-front; resumeArc swap-deletes out of
		// v.suspended. An arc whose other endpoint is still deactivated
		// stays parked here until that endpoint returns or ActivateAll
		// sweeps it.
		for i := len(v.suspended) - 1; i >= 0; i-- {
			a := v.suspended[i]
			if !a.tail.valid || !a.head.valid {
				continue
			}
			if !g.resumeArc(a) {
				panic("core: suspended arc in unexpected state")
			}
		}
	}

	return true
}

// ActivateAll restores every deactivated vertex and arc to the active
// state, fully reverting any sequence of soft removals.
func (g *Graph) ActivateAll() {
	for len(g.inactive) > 0 {
		g.ActivateVertex(g.inactive[len(g.inactive)-1], true)
	}
	for len(g.offArcs) > 0 {
		g.ActivateArc(g.offArcs[len(g.offArcs)-1])
	}
	// Sweep arcs still parked on active vertices: left behind by
	// ActivateVertex(v, false), or skipped during an interleaved
	// reactivation while their other endpoint was down. Every endpoint
	// is valid by now, so resumption cannot fail.
	for _, v := range g.vertices {
		for len(v.suspended) > 0 {
			if !g.resumeArc(v.suspended[len(v.suspended)-1]) {
				panic("core: suspended arc in unexpected state")
			}
		}
	}
}

// Clear reactivates everything, then hibernates all vertices and arcs.
// With emptyReserves the pools themselves are discarded and identity
// assignment restarts from zero (full memory release). Otherwise, with
// restoreOrder, the pools are re-sorted into reverse-id order so that
// recycling replays ids deterministically across repeated clear/rebuild
// cycles.
func (g *Graph) Clear(emptyReserves, restoreOrder bool) {
	g.ActivateAll()
	for _, v := range g.vertices {
		v.inc.mapOut(func(a *Arc) {
			g.hibernateArc(a)
		}, arcFalse, false)
		g.hibernateVertex(v)
	}
	g.vertices = nil
	g.numArcs = 0

	switch {
	case emptyReserves:
		g.pools.emptyReserves()
	case restoreOrder:
		g.pools.restoreOrder()
	}
}
