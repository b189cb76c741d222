// File: methods_clone.go
// Role: topology cloning and ownership transfer.
package core

import "errors"

// ErrNilGraph indicates a nil source graph was passed to CopyFrom.
var ErrNilGraph = errors.New("core: nil source graph")

// CopyFrom clears the receiver and recreates other's active topology:
// every active vertex and arc gets a local counterpart drawn from the
// receiver's pools, labels included. The id correspondence (other id →
// local id) is recorded in vertexCorr and arcCorr when non-nil.
//
// Only the active topology is cloned; the source's pool order and
// deactivated sets are not mirrored. Capacity is reserved up front so
// the rebuild is pool-only.
func (g *Graph) CopyFrom(other *Graph, vertexCorr, arcCorr map[uint64]uint64) error {
	if other == nil {
		return ErrNilGraph
	}
	if other == g {
		return nil
	}

	g.Clear(false, true)
	g.ReserveVertexCapacity(other.Size())
	g.ReserveArcCapacity(int(other.NumArcs(true)))

	local := make(map[uint64]*Vertex, other.Size())
	other.MapVertices(func(ov *Vertex) {
		nv := g.AddVertex()
		nv.label = ov.label
		local[ov.id] = nv
		if vertexCorr != nil {
			vertexCorr[ov.id] = nv.id
		}
	})

	var copyErr error
	other.MapArcsUntil(func(oa *Arc) {
		tail, head := local[oa.tail.id], local[oa.head.id]
		var (
			na  *Arc
			err error
		)
		if oa.kind == Simple {
			na, err = g.AddArc(tail, head)
		} else {
			// Multi-arcs and bundles clone as multi-arcs of equal size;
			// bundle membership is a local regrouping, not topology.
			na, err = g.AddMultiArc(tail, head, oa.size)
		}
		if err != nil {
			copyErr = err
			return
		}
		if arcCorr != nil {
			arcCorr[oa.id] = na.id
		}
	}, func(*Arc) bool { return copyErr != nil })

	return copyErr
}

// SetOwner reparents every live and pooled element to owner, so that
// membership checks recognize the elements as belonging to the new
// owning graph reference. Topology is unchanged.
func (g *Graph) SetOwner(owner *Graph) {
	g.owner = owner

	reparent := func(v *Vertex) {
		v.parent = owner
		lists := [][]*Arc{
			v.inc.outSimple, v.inc.outMulti,
			v.inc.outSimpleOff, v.inc.outMultiOff,
		}
		for _, list := range lists {
			for _, a := range list {
				a.parent = owner
				for _, m := range a.members {
					m.parent = owner
				}
			}
		}
	}
	for _, v := range g.vertices {
		reparent(v)
	}
	for _, v := range g.inactive {
		reparent(v)
	}
	for _, v := range g.pools.vertices {
		v.parent = owner
	}
	for _, a := range g.pools.arcs {
		a.parent = owner
	}
}
