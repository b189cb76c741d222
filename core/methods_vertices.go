// File: methods_vertices.go
// Role: vertex lifecycle and queries on the engine.
//
// Determinism:
//   - The active array preserves insertion order except for swap-remove
//     compaction; MapVertices iterates it front to back.
package core

// AddVertex creates a vertex (recycling a pooled one when available),
// appends it to the active array, and stamps its index. O(1) amortized,
// allocation-free while the pool is non-empty.
func (g *Graph) AddVertex() *Vertex {
	v := g.createVertex()
	v.index = len(g.vertices)
	g.vertices = append(g.vertices, v)
	g.greetVertex(v)

	return v
}

// AddVertexWithLabel is AddVertex plus an initial label.
func (g *Graph) AddVertexWithLabel(label string) *Vertex {
	v := g.AddVertex()
	v.label = label

	return v
}

// RemoveVertex hibernates v and every arc incident to it, active or
// deactivated. The last active vertex is swapped into v's slot, so the
// operation is O(degree(v)) amortized. Returns ErrVertexNotFound when v
// is not active in this graph.
func (g *Graph) RemoveVertex(v *Vertex) error {
	if !g.ContainsVertex(v) {
		return ErrVertexNotFound
	}
	g.dismissVertex(v)

	// Active outgoing arcs: detach from each head's incoming side and
	// pool them. A self-loop disappears from v's incoming side here, so
	// the incoming pass below never sees it.
	v.inc.mapOut(func(a *Arc) {
		a.head.inc.removeIn(a)
		g.numArcs--
		g.hibernateArc(a)
	}, arcFalse, false)

	// Active incoming arcs: detach from each tail's outgoing side.
	v.inc.mapIn(func(a *Arc) {
		a.tail.inc.removeOut(a)
		g.numArcs--
		g.hibernateArc(a)
	}, arcFalse, false)

	// Deactivated incident arcs (individually deactivated, or suspended
	// by a peer's deactivation) are detached from their parking list and
	// pooled as well; their numArcs share was already released when they
	// were deactivated.
	for _, a := range snapshotArcs(v.inc.outSimpleOff, v.inc.outMultiOff) {
		a.head.inc.removeIn(a)
		g.unparkArc(a)
		g.hibernateArc(a)
	}
	for _, a := range snapshotArcs(v.inc.inSimpleOff, v.inc.inMultiOff) {
		a.tail.inc.removeOut(a)
		g.unparkArc(a)
		g.hibernateArc(a)
	}

	// Swap the last active vertex into v's slot and shrink the array.
	last := len(g.vertices) - 1
	moved := g.vertices[last]
	moved.index = v.index
	g.vertices[v.index] = moved
	g.vertices[last] = nil
	g.vertices = g.vertices[:last]

	g.hibernateVertex(v)

	return nil
}

// ContainsVertex reports whether v is an active member of this graph:
// parented here and present in the active array at its recorded index.
// O(1).
func (g *Graph) ContainsVertex(v *Vertex) bool {
	return v != nil && v.valid && v.parent == g.owner &&
		v.index < len(g.vertices) && g.vertices[v.index] == v
}

// VertexAt returns the active vertex at position i, or
// ErrIndexOutOfRange when i exceeds the current size.
func (g *Graph) VertexAt(i int) (*Vertex, error) {
	if i < 0 || i >= len(g.vertices) {
		return nil, ErrIndexOutOfRange
	}

	return g.vertices[i], nil
}

// FirstVertex returns the vertex at position 0, or nil on an empty
// graph.
func (g *Graph) FirstVertex() *Vertex {
	if len(g.vertices) == 0 {
		return nil
	}

	return g.vertices[0]
}

// AnyVertex returns some active vertex, or nil on an empty graph.
func (g *Graph) AnyVertex() *Vertex { return g.FirstVertex() }

// MapVertices applies fn to every active vertex in array order.
// Mutating topology during the call is undefined.
func (g *Graph) MapVertices(fn VertexMapping) {
	g.MapVerticesUntil(fn, vertexFalse)
}

// MapVerticesUntil applies fn to active vertices until breakCondition
// fires.
func (g *Graph) MapVerticesUntil(fn VertexMapping, breakCondition VertexPredicate) {
	for _, v := range g.vertices {
		if breakCondition(v) {
			break
		}
		fn(v)
	}
}

// OutDegree returns v's active out-degree; see Vertex.OutDegree for the
// multiArcsAsSimple contract.
func (g *Graph) OutDegree(v *Vertex, multiArcsAsSimple bool) uint64 {
	return v.inc.outDegree(multiArcsAsSimple)
}

// InDegree returns v's active in-degree.
func (g *Graph) InDegree(v *Vertex, multiArcsAsSimple bool) uint64 {
	return v.inc.inDegree(multiArcsAsSimple)
}

// OnVertexAdd registers a greeting callback fired for every vertex that
// becomes active through AddVertex or CopyFrom.
func (g *Graph) OnVertexAdd(fn VertexMapping) {
	g.greetings = append(g.greetings, fn)
}

// OnVertexRemove registers a farewell callback fired right before a
// vertex is removed.
func (g *Graph) OnVertexRemove(fn VertexMapping) {
	g.farewells = append(g.farewells, fn)
}

func (g *Graph) greetVertex(v *Vertex) {
	for _, fn := range g.greetings {
		fn(v)
	}
}

func (g *Graph) dismissVertex(v *Vertex) {
	for _, fn := range g.farewells {
		fn(v)
	}
}

// snapshotArcs copies containers about to be mutated during iteration.
func snapshotArcs(lists ...[]*Arc) []*Arc {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	if n == 0 {
		return nil
	}
	out := make([]*Arc, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}

	return out
}
