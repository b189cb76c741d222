// File: vertex.go
// Role: Vertex element — stable identity, mutable position index,
// validity flag, optional label, and the public incidence queries.
package core

import "fmt"

// Vertex is a graph node owned by its engine. Its id is stable for the
// vertex's whole live span; its index is the vertex's current position
// in the engine's active (or deactivated) array and changes on every
// swap-remove.
type Vertex struct {
	id     uint64
	index  int
	valid  bool
	label  string
	parent *Graph

	// suspended holds arcs deactivated as a consequence of deactivating
	// this vertex, so reactivation can restore exactly those.
	suspended []*Arc

	inc incidence
}

// ID returns the vertex's stable identity.
func (v *Vertex) ID() uint64 { return v.id }

// Index returns the vertex's current position in the engine's active or
// deactivated array.
func (v *Vertex) Index() int { return v.index }

// IsValid reports whether the vertex is active. Deactivated and pooled
// vertices are invalid.
func (v *Vertex) IsValid() bool { return v != nil && v.valid }

// Label returns the optional user label.
func (v *Vertex) Label() string { return v.label }

// SetLabel attaches an optional user label.
func (v *Vertex) SetLabel(label string) { v.label = label }

// String renders the vertex for diagnostics, e.g. "v3" or "v3(gate)".
func (v *Vertex) String() string {
	if v.label == "" {
		return fmt.Sprintf("v%d", v.id)
	}
	return fmt.Sprintf("v%d(%s)", v.id, v.label)
}

// OutDegree counts active outgoing arcs. With multiArcsAsSimple each
// multi-arc or bundle counts as one; otherwise it contributes its
// represented-edge count. O(1) / O(#multi).
func (v *Vertex) OutDegree(multiArcsAsSimple bool) uint64 {
	return v.inc.outDegree(multiArcsAsSimple)
}

// InDegree is the incoming counterpart of OutDegree.
func (v *Vertex) InDegree(multiArcsAsSimple bool) uint64 {
	return v.inc.inDegree(multiArcsAsSimple)
}

// IsSource reports whether the vertex has no active incoming arcs.
func (v *Vertex) IsSource() bool {
	return len(v.inc.inSimple) == 0 && len(v.inc.inMulti) == 0
}

// IsSink reports whether the vertex has no active outgoing arcs.
func (v *Vertex) IsSink() bool {
	return len(v.inc.outSimple) == 0 && len(v.inc.outMulti) == 0
}

// HasOutgoingArc reports whether a is attached to this vertex's
// outgoing side, directly or through a bundle. O(1).
func (v *Vertex) HasOutgoingArc(a *Arc) bool { return v.inc.hasOut(a) }

// HasIncomingArc reports whether a is attached to this vertex's
// incoming side. O(1).
func (v *Vertex) HasIncomingArc(a *Arc) bool { return v.inc.hasIn(a) }

// OutgoingArcAt returns the i-th active outgoing arc: simple arcs
// first, then multi-arcs. With multiArcsAsSimple each multi-arc
// occupies one position; otherwise a multi-arc spans size positions and
// is returned for each of them. Positions beyond the out-degree yield
// ErrIndexOutOfRange.
func (v *Vertex) OutgoingArcAt(i uint64, multiArcsAsSimple bool) (*Arc, error) {
	return arcAt(v.inc.outSimple, v.inc.outMulti, i, multiArcsAsSimple)
}

// IncomingArcAt is the incoming counterpart of OutgoingArcAt.
func (v *Vertex) IncomingArcAt(i uint64, multiArcsAsSimple bool) (*Arc, error) {
	return arcAt(v.inc.inSimple, v.inc.inMulti, i, multiArcsAsSimple)
}

// arcAt implements positional access over a simple container followed
// by a multi container with optional expanded addressing.
func arcAt(simple, multi []*Arc, i uint64, multiArcsAsSimple bool) (*Arc, error) {
	if i < uint64(len(simple)) {
		return simple[i], nil
	}
	i -= uint64(len(simple))
	if multiArcsAsSimple {
		if i < uint64(len(multi)) {
			return multi[i], nil
		}
		return nil, ErrIndexOutOfRange
	}
	for _, ma := range multi {
		if i < ma.size {
			return ma, nil
		}
		i -= ma.size
	}

	return nil, ErrIndexOutOfRange
}

// hibernate invalidates the vertex and clears its incidence and label;
// the id stays attached for recycling.
func (v *Vertex) hibernate() {
	v.valid = false
	v.label = ""
	v.suspended = nil
	v.inc.reset()
}

// recycle reinitializes a pooled vertex in place.
func (v *Vertex) recycle() {
	v.valid = true
}
