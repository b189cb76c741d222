// File: arc.go
// Role: Arc element — tagged variant over {Simple, Multi, Bundle},
// stable identity, validity flag, bundle membership mechanics.
package core

// arcParking records where a non-active arc is currently held.
type arcParking uint8

const (
	// parkedNone: the arc is active (or pooled).
	parkedNone arcParking = iota
	// parkedEngine: deactivated individually, held on Graph.offArcs.
	parkedEngine
	// parkedVertex: deactivated as a consequence of a vertex
	// deactivation, held on that vertex's suspended list.
	parkedVertex
)

// Arc is a directed edge between two vertices. Its kind tag closes the
// variant set: a Simple arc represents one edge, a Multi arc represents
// size edges, and a Bundle additionally owns the simple arcs it
// absorbed.
//
// Arcs are pooled: hibernation returns an arc to its engine's pool with
// its id attached, and recycling reinitializes it in place with new
// endpoints.
type Arc struct {
	id     uint64
	tail   *Vertex
	head   *Vertex
	valid  bool
	kind   ArcKind
	size   uint64
	parent *Graph

	// members holds the simple arcs a Bundle represents; nil otherwise.
	members []*Arc

	// parking bookkeeping for deactivated arcs; parkIndex is the arc's
	// position in the holding list, parkedAt the holding vertex.
	parking   arcParking
	parkIndex int
	parkedAt  *Vertex
}

// ID returns the arc's stable identity. Ids are never shared by two
// simultaneously live arcs; a pooled arc keeps its id for reuse.
func (a *Arc) ID() uint64 { return a.id }

// Tail returns the arc's source vertex.
func (a *Arc) Tail() *Vertex { return a.tail }

// Head returns the arc's destination vertex.
func (a *Arc) Head() *Vertex { return a.head }

// Kind returns the variant tag.
func (a *Arc) Kind() ArcKind { return a.kind }

// IsValid reports whether the arc is active. Deactivated and pooled
// arcs are invalid.
func (a *Arc) IsValid() bool { return a != nil && a.valid }

// IsLoop reports whether both endpoints coincide.
func (a *Arc) IsLoop() bool { return a.tail == a.head }

// Size returns the number of simple edges the arc represents: 1 for a
// Simple arc, the declared size for a Multi arc, and the sum of member
// sizes for a Bundle.
func (a *Arc) Size() uint64 { return a.size }

// Peer returns the endpoint a traversal moving through v in direction
// dir arrives at: the head when Forward, the tail when Reverse, and the
// opposite endpoint when Undirected.
func (a *Arc) Peer(v *Vertex, dir Direction) *Vertex {
	switch dir {
	case Reverse:
		return a.tail
	case Undirected:
		if v == a.tail {
			return a.head
		}
		return a.tail
	default:
		return a.head
	}
}

// MapBundledArcs applies fn to every simple arc a Bundle represents.
// No-op for non-bundle arcs.
func (a *Arc) MapBundledArcs(fn ArcMapping) {
	for _, m := range a.members {
		fn(m)
	}
}

// NumBundledArcs returns the current member count of a Bundle, zero for
// other kinds.
func (a *Arc) NumBundledArcs() int { return len(a.members) }

// addMember absorbs a simple (or multi) arc into a bundle, growing the
// bundle's represented size.
func (a *Arc) addMember(m *Arc) {
	a.members = append(a.members, m)
	a.size += m.size
}

// removeMember detaches m from the bundle, shrinking its size.
// Returns false if m is not a member.
func (a *Arc) removeMember(m *Arc) bool {
	for i, cand := range a.members {
		if cand == m {
			last := len(a.members) - 1
			a.members[i] = a.members[last]
			a.members[last] = nil
			a.members = a.members[:last]
			a.size -= m.size

			return true
		}
	}

	return false
}

// takeMembers empties the bundle and returns its members; used by
// unbundling before the bundle itself is removed.
func (a *Arc) takeMembers() []*Arc {
	members := a.members
	a.members = nil
	a.size = 0

	return members
}

// hibernate invalidates the arc and clears everything except its id, so
// the id is recycled together with the pooled object.
func (a *Arc) hibernate() {
	a.valid = false
	a.tail = nil
	a.head = nil
	a.kind = Simple
	a.size = 1
	a.members = nil
	a.parking = parkedNone
	a.parkedAt = nil
}

// recycle reinitializes a pooled arc in place with new endpoints.
func (a *Arc) recycle(tail, head *Vertex, kind ArcKind, size uint64) {
	a.tail = tail
	a.head = head
	a.kind = kind
	a.size = size
	a.valid = true
	a.members = nil
	a.parking = parkedNone
	a.parkedAt = nil
}
