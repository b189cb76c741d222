// File: incidence.go
// Role: per-vertex incidence record. Four active containers (outgoing/
// incoming × simple/multi) with deactivated counterparts, one shared
// position table per side, and a side table mapping bundled simple arcs
// to the bundle that currently represents them.
//
// Invariants:
//   - An arc is in exactly one of the active/deactivated containers of a
//     side at a time, so the two share one position table safely.
//   - The position table always agrees with actual array positions; a
//     disagreement is an unrecoverable invariant violation (panic).
package core

// arcSlot locates an arc inside one side of an incidence record:
// which container (simple vs multi, active vs deactivated) and at what
// position.
type arcSlot struct {
	multi bool
	off   bool
	pos   int
}

// incidence is the per-vertex incidence record. All mutation is O(1)
// via swap-with-last plus position-table fixup.
type incidence struct {
	outSimple []*Arc
	outMulti  []*Arc
	inSimple  []*Arc
	inMulti   []*Arc

	outSimpleOff []*Arc
	outMultiOff  []*Arc
	inSimpleOff  []*Arc
	inMultiOff   []*Arc

	// outPos and inPos map arc id → slot for the outgoing and incoming
	// side respectively. A self-loop occupies one slot on each side.
	outPos map[uint64]arcSlot
	inPos  map[uint64]arcSlot

	// bundleOf maps a simple arc's id to the bundle currently
	// representing it, for arcs absorbed by bundling.
	bundleOf map[uint64]*Arc
}

func newIncidence() incidence {
	return incidence{
		outPos:   make(map[uint64]arcSlot),
		inPos:    make(map[uint64]arcSlot),
		bundleOf: make(map[uint64]*Arc),
	}
}

// outList returns the outgoing container a slot refers to.
func (ic *incidence) outList(s arcSlot) *[]*Arc {
	if s.multi {
		if s.off {
			return &ic.outMultiOff
		}
		return &ic.outMulti
	}
	if s.off {
		return &ic.outSimpleOff
	}
	return &ic.outSimple
}

// inList returns the incoming container a slot refers to.
func (ic *incidence) inList(s arcSlot) *[]*Arc {
	if s.multi {
		if s.off {
			return &ic.inMultiOff
		}
		return &ic.inMulti
	}
	if s.off {
		return &ic.inSimpleOff
	}
	return &ic.inSimple
}

// appendArc places a in the container for slot s, completing s with the
// insertion position, and records it in pos.
func appendArc(list *[]*Arc, pos map[uint64]arcSlot, s arcSlot, a *Arc) {
	s.pos = len(*list)
	*list = append(*list, a)
	pos[a.id] = s
}

// swapDelete removes a from the container for its slot s in O(1),
// relocating the container's last arc into the vacated position and
// fixing its table entry.
func swapDelete(list *[]*Arc, pos map[uint64]arcSlot, s arcSlot, a *Arc) {
	l := *list
	if l[s.pos] != a {
		panic("core: incidence position table out of sync")
	}
	last := len(l) - 1
	moved := l[last]
	l[s.pos] = moved
	l[last] = nil
	*list = l[:last]
	if moved != a {
		ms := pos[moved.id]
		ms.pos = s.pos
		pos[moved.id] = ms
	}
	delete(pos, a.id)
}

// addOut registers a in the outgoing side, dispatched by arc kind.
// Registering a bundle also claims its members in bundleOf.
func (ic *incidence) addOut(a *Arc) {
	s := arcSlot{multi: a.kind != Simple}
	appendArc(ic.outList(s), ic.outPos, s, a)
	if a.kind == Bundle {
		for _, m := range a.members {
			ic.bundleOf[m.id] = a
		}
	}
}

// addIn registers a in the incoming side.
func (ic *incidence) addIn(a *Arc) {
	s := arcSlot{multi: a.kind != Simple}
	appendArc(ic.inList(s), ic.inPos, s, a)
	if a.kind == Bundle {
		for _, m := range a.members {
			ic.bundleOf[m.id] = a
		}
	}
}

// removeOut detaches a list entry from the outgoing side. Bundled
// member arcs are not list entries; the engine removes those through
// their bundle. Returns false when a is unknown on this side.
func (ic *incidence) removeOut(a *Arc) bool {
	s, found := ic.outPos[a.id]
	if !found {
		return false
	}
	swapDelete(ic.outList(s), ic.outPos, s, a)
	if a.kind == Bundle {
		for _, m := range a.members {
			delete(ic.bundleOf, m.id)
		}
	}

	return true
}

// removeIn detaches a list entry from the incoming side; see removeOut.
func (ic *incidence) removeIn(a *Arc) bool {
	s, found := ic.inPos[a.id]
	if !found {
		return false
	}
	swapDelete(ic.inList(s), ic.inPos, s, a)
	if a.kind == Bundle {
		for _, m := range a.members {
			delete(ic.bundleOf, m.id)
		}
	}

	return true
}

// shiftOut moves a between the active and deactivated outgoing
// containers. Returns false when a is not on this side or already in
// the requested state.
func (ic *incidence) shiftOut(a *Arc, off bool) bool {
	s, found := ic.outPos[a.id]
	if !found || s.off == off {
		return false
	}
	swapDelete(ic.outList(s), ic.outPos, s, a)
	s.off = off
	appendArc(ic.outList(s), ic.outPos, s, a)

	return true
}

// shiftIn moves a between the active and deactivated incoming
// containers.
func (ic *incidence) shiftIn(a *Arc, off bool) bool {
	s, found := ic.inPos[a.id]
	if !found || s.off == off {
		return false
	}
	swapDelete(ic.inList(s), ic.inPos, s, a)
	s.off = off
	appendArc(ic.inList(s), ic.inPos, s, a)

	return true
}

// outState reports whether a is known on the outgoing side and, if so,
// whether it currently sits in a deactivated container.
func (ic *incidence) outState(a *Arc) (off, found bool) {
	s, found := ic.outPos[a.id]

	return s.off, found
}

// inState reports the incoming-side counterpart of outState.
func (ic *incidence) inState(a *Arc) (off, found bool) {
	s, found := ic.inPos[a.id]

	return s.off, found
}

// hasOut reports active-or-deactivated membership of a on the outgoing
// side, following bundle representation.
func (ic *incidence) hasOut(a *Arc) bool {
	if s, found := ic.outPos[a.id]; found {
		if (*ic.outList(s))[s.pos] != a {
			panic("core: incidence position table out of sync")
		}
		return true
	}
	if b := ic.bundleOf[a.id]; b != nil {
		_, found := ic.outPos[b.id]
		return found
	}

	return false
}

// hasIn reports membership on the incoming side; see hasOut.
func (ic *incidence) hasIn(a *Arc) bool {
	if s, found := ic.inPos[a.id]; found {
		if (*ic.inList(s))[s.pos] != a {
			panic("core: incidence position table out of sync")
		}
		return true
	}
	if b := ic.bundleOf[a.id]; b != nil {
		_, found := ic.inPos[b.id]
		return found
	}

	return false
}

// outDegree counts active outgoing arcs: simple arcs plus either the
// multi-arc object count (multiArcsAsSimple) or the sum of represented
// edges.
func (ic *incidence) outDegree(multiArcsAsSimple bool) uint64 {
	deg := uint64(len(ic.outSimple))
	if multiArcsAsSimple {
		return deg + uint64(len(ic.outMulti))
	}
	for _, ma := range ic.outMulti {
		deg += ma.size
	}

	return deg
}

// inDegree is the incoming counterpart of outDegree.
func (ic *incidence) inDegree(multiArcsAsSimple bool) uint64 {
	deg := uint64(len(ic.inSimple))
	if multiArcsAsSimple {
		return deg + uint64(len(ic.inMulti))
	}
	for _, ma := range ic.inMulti {
		deg += ma.size
	}

	return deg
}

// mapOut applies fn to each active outgoing arc, simple arcs first,
// stopping early when breakCondition fires. Returns false on early
// stop. The containers must stay stable for the duration of the call.
func (ic *incidence) mapOut(fn ArcMapping, breakCondition ArcPredicate, checkValidity bool) bool {
	for _, a := range ic.outSimple {
		if breakCondition(a) {
			return false
		}
		if !checkValidity || a.valid {
			fn(a)
		}
	}
	for _, a := range ic.outMulti {
		if breakCondition(a) {
			return false
		}
		if !checkValidity || a.valid {
			fn(a)
		}
	}

	return true
}

// mapIn is the incoming counterpart of mapOut.
func (ic *incidence) mapIn(fn ArcMapping, breakCondition ArcPredicate, checkValidity bool) bool {
	for _, a := range ic.inSimple {
		if breakCondition(a) {
			return false
		}
		if !checkValidity || a.valid {
			fn(a)
		}
	}
	for _, a := range ic.inMulti {
		if breakCondition(a) {
			return false
		}
		if !checkValidity || a.valid {
			fn(a)
		}
	}

	return true
}

// clearOutActive drops only the active outgoing containers and their
// table entries, leaving deactivated arcs in place; used by bundling,
// which rebuilds the active structure from scratch.
func (ic *incidence) clearOutActive() {
	for _, a := range ic.outSimple {
		delete(ic.outPos, a.id)
	}
	for _, a := range ic.outMulti {
		delete(ic.outPos, a.id)
	}
	ic.outSimple = nil
	ic.outMulti = nil
}

// clearInActive is the incoming counterpart of clearOutActive.
func (ic *incidence) clearInActive() {
	for _, a := range ic.inSimple {
		delete(ic.inPos, a.id)
	}
	for _, a := range ic.inMulti {
		delete(ic.inPos, a.id)
	}
	ic.inSimple = nil
	ic.inMulti = nil
}

// clearOut drops every outgoing container and its table entries.
// Bundle representation entries are left to be overwritten by the
// subsequent rebuild (bundling clears and re-adds in one pass).
func (ic *incidence) clearOut() {
	ic.outSimple = nil
	ic.outMulti = nil
	ic.outSimpleOff = nil
	ic.outMultiOff = nil
	clear(ic.outPos)
}

// clearIn drops every incoming container and its table entries.
func (ic *incidence) clearIn() {
	ic.inSimple = nil
	ic.inMulti = nil
	ic.inSimpleOff = nil
	ic.inMultiOff = nil
	clear(ic.inPos)
}

// reset clears both sides and the bundle table; used on hibernation.
func (ic *incidence) reset() {
	ic.clearOut()
	ic.clearIn()
	clear(ic.bundleOf)
}
