// File: methods_bundle.go
// Role: parallel-arc bundling. Bundling groups each vertex's active
// outgoing arcs by head and absorbs parallels into ParallelArcsBundle
// objects; unbundling expands every bundle back into its members.
package core

// BundleParallelArcs replaces every group of parallel outgoing arcs
// with a single bundle representing them. The operation always
// unbundles first and rebuilds the active incidence structure from
// scratch, which makes it idempotent. Deactivated arcs keep their
// containers untouched. O(total active out-degree).
func (g *Graph) BundleParallelArcs() {
	g.UnbundleParallelArcs()

	// Incoming lists are rebuilt wholesale from the new outgoing
	// structure.
	for _, v := range g.vertices {
		v.inc.clearInActive()
	}
	for _, v := range g.vertices {
		g.bundleOutgoingArcs(v)
	}
}

// UnbundleParallelArcs expands every bundle back into its constituent
// arcs and hibernates the bundle object. O(total incidence size).
func (g *Graph) UnbundleParallelArcs() {
	for _, v := range g.vertices {
		g.unbundleOutgoingArcs(v)
	}
}

// bundleOutgoingArcs regroups v's active outgoing arcs by head and
// re-registers them, absorbing parallels into bundles. Emission order
// follows first occurrence per head, keeping rebuilds deterministic.
func (g *Graph) bundleOutgoingArcs(v *Vertex) {
	outs := snapshotArcs(v.inc.outSimple, v.inc.outMulti)
	v.inc.clearOutActive()

	byHead := make(map[*Vertex]*Arc, len(outs))
	for _, a := range outs {
		mapped, seen := byHead[a.head]
		switch {
		case !seen:
			byHead[a.head] = a
		case mapped.kind == Bundle:
			mapped.addMember(a)
			g.numArcs--
		default:
			b := g.createArc(v, a.head, Bundle, 0)
			b.addMember(mapped)
			b.addMember(a)
			byHead[a.head] = b
			// Two list objects collapsed into one bundle object.
			g.numArcs--
		}
	}

	emitted := make(map[*Vertex]bool, len(byHead))
	for _, a := range outs {
		if emitted[a.head] {
			continue
		}
		emitted[a.head] = true
		final := byHead[a.head]
		v.inc.addOut(final)
		final.head.inc.addIn(final)
	}
}

// unbundleOutgoingArcs dissolves each bundle in v's outgoing lists:
// the bundle leaves both incidence sides and is pooled, its members are
// re-registered as ordinary arcs.
func (g *Graph) unbundleOutgoingArcs(v *Vertex) {
	var bundles []*Arc
	for _, a := range v.inc.outMulti {
		if a.kind == Bundle {
			bundles = append(bundles, a)
		}
	}

	for _, b := range bundles {
		head := b.head
		if !v.inc.removeOut(b) || !head.inc.removeIn(b) {
			panic("core: bundle incidence out of sync")
		}
		g.numArcs--
		members := b.takeMembers()
		g.hibernateArc(b)
		for _, m := range members {
			g.registerArc(m, v, head)
		}
	}
}
