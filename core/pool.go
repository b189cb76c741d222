// File: pool.go
// Role: element pools. The engine owns all vertex/arc memory: creation
// prefers recycling a pooled element (LIFO, id preserved) over fresh
// construction, and hibernation returns elements to the pools instead
// of freeing them.
package core

import "sort"

// elementPools backs the engine with reusable vertex and arc slots.
// totalVertices/totalArcs count every element ever constructed and
// still owned (live + pooled), which is what capacity reservation
// compares against.
type elementPools struct {
	vertices []*Vertex
	arcs     []*Arc

	nextVertexID uint64
	nextArcID    uint64

	totalVertices int
	totalArcs     int
}

// createVertex draws a vertex from the pool, or constructs a fresh one
// with the next unused id. The returned vertex is valid but not yet
// attached to the active array.
func (g *Graph) createVertex() *Vertex {
	p := &g.pools
	if n := len(p.vertices); n > 0 {
		v := p.vertices[n-1]
		p.vertices[n-1] = nil
		p.vertices = p.vertices[:n-1]
		v.recycle()

		return v
	}
	v := g.constructVertex()
	v.recycle()

	return v
}

// constructVertex allocates a brand-new hibernated vertex.
func (g *Graph) constructVertex() *Vertex {
	p := &g.pools
	v := &Vertex{
		id:     p.nextVertexID,
		parent: g.owner,
		inc:    newIncidence(),
	}
	p.nextVertexID++
	p.totalVertices++

	return v
}

// createArc draws an arc from the pool or constructs a fresh one.
func (g *Graph) createArc(tail, head *Vertex, kind ArcKind, size uint64) *Arc {
	p := &g.pools
	if n := len(p.arcs); n > 0 {
		a := p.arcs[n-1]
		p.arcs[n-1] = nil
		p.arcs = p.arcs[:n-1]
		a.recycle(tail, head, kind, size)

		return a
	}
	a := g.constructArc()
	a.recycle(tail, head, kind, size)

	return a
}

// constructArc allocates a brand-new hibernated arc.
func (g *Graph) constructArc() *Arc {
	p := &g.pools
	a := &Arc{
		id:     p.nextArcID,
		size:   1,
		parent: g.owner,
	}
	p.nextArcID++
	p.totalArcs++

	return a
}

// hibernateVertex clears v and returns it to the pool; v's id becomes
// reusable with the pooled slot.
func (g *Graph) hibernateVertex(v *Vertex) {
	v.hibernate()
	g.pools.vertices = append(g.pools.vertices, v)
}

// hibernateArc clears a and returns it to the pool. A bundle's members
// are hibernated first so no owned arc is stranded.
func (g *Graph) hibernateArc(a *Arc) {
	if a.kind == Bundle {
		for _, m := range a.takeMembers() {
			g.hibernateArc(m)
		}
	}
	a.hibernate()
	g.pools.arcs = append(g.pools.arcs, a)
}

// ReserveVertexCapacity pre-constructs and pre-hibernates vertices
// until the engine owns at least n (live + pooled), making the next
// creations pool-only. No-op if already satisfied.
func (g *Graph) ReserveVertexCapacity(n int) {
	for g.pools.totalVertices < n {
		v := g.constructVertex()
		g.pools.vertices = append(g.pools.vertices, v)
	}
}

// ReserveArcCapacity is the arc counterpart of ReserveVertexCapacity.
func (g *Graph) ReserveArcCapacity(n int) {
	for g.pools.totalArcs < n {
		a := g.constructArc()
		g.pools.arcs = append(g.pools.arcs, a)
	}
}

// emptyReserves discards the pools entirely, releasing all memory and
// restarting identity assignment. Only valid when nothing is live.
func (p *elementPools) emptyReserves() {
	*p = elementPools{}
}

// restoreOrder re-sorts the pools into descending-id order so that LIFO
// recycling replays ids ascending, giving deterministic id reuse across
// repeated clear/rebuild cycles.
func (p *elementPools) restoreOrder() {
	sort.Slice(p.vertices, func(i, j int) bool {
		return p.vertices[i].id > p.vertices[j].id
	})
	sort.Slice(p.arcs, func(i, j int) bool {
		return p.arcs[i].id > p.arcs[j].id
	})
}
