// Package core implements the incidence-list graph storage engine:
// vertex/arc lifecycle with object pooling, O(1) index-based mutation,
// soft activation/deactivation, and parallel-arc bundling.
//
// This file declares the Graph engine type, element kinds, direction
// modes, mapping function types, sentinel errors, and the NewGraph
// constructor.
//
// Errors:
//
//	ErrVertexNotFound      - vertex is not an active member of this graph.
//	ErrArcNotFound         - arc is not an active member of this graph.
//	ErrArcEndpointMismatch - arc's recorded endpoints disagree with the given vertices.
//	ErrIndexOutOfRange     - positional access beyond the current valid range.
//	ErrInvalidArcSize      - multi-arc size below one.
package core

import "errors"

// Sentinel errors for engine operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex that is
	// not active in this graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrArcNotFound indicates an operation referenced an arc that is not
	// active in this graph.
	ErrArcNotFound = errors.New("core: arc not found")

	// ErrArcEndpointMismatch indicates an arc was registered against a
	// vertex that is not its recorded tail or head. Only detected when
	// consistency checking is enabled.
	ErrArcEndpointMismatch = errors.New("core: arc endpoints disagree with given vertices")

	// ErrIndexOutOfRange indicates a positional request exceeded the
	// current valid range.
	ErrIndexOutOfRange = errors.New("core: index out of range")

	// ErrInvalidArcSize indicates a multi-arc was requested with size < 1.
	ErrInvalidArcSize = errors.New("core: multi-arc size must be at least 1")
)

// ArcKind tags the closed set of arc variants.
// A bundle is a multi-arc that additionally owns the simple arcs it
// represents.
type ArcKind uint8

const (
	// Simple is an ordinary arc representing a single edge.
	Simple ArcKind = iota
	// Multi represents several logical edges between one ordered pair.
	Multi
	// Bundle aggregates previously-separate parallel simple arcs.
	Bundle
)

// String returns a short human-readable kind name.
func (k ArcKind) String() string {
	switch k {
	case Simple:
		return "simple"
	case Multi:
		return "multi"
	case Bundle:
		return "bundle"
	default:
		return "unknown"
	}
}

// Direction selects how traversals and incident-arc mapping interpret
// arc orientation.
type Direction uint8

const (
	// Forward follows arcs tail→head.
	Forward Direction = iota
	// Reverse follows arcs head→tail.
	Reverse
	// Undirected follows arcs both ways; the peer is whichever endpoint
	// is not the current vertex.
	Undirected
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	case Undirected:
		return "undirected"
	default:
		return "unknown"
	}
}

// VertexMapping is applied to each vertex during vertex iteration.
type VertexMapping func(*Vertex)

// VertexPredicate reports a per-vertex condition; iteration primitives
// use it as a break condition.
type VertexPredicate func(*Vertex) bool

// ArcMapping is applied to each arc during arc iteration.
type ArcMapping func(*Arc)

// ArcPredicate reports a per-arc condition; iteration primitives use it
// as a break condition.
type ArcPredicate func(*Arc) bool

// vertexFalse and arcFalse are the default (never break) predicates.
func vertexFalse(*Vertex) bool { return false }
func arcFalse(*Arc) bool       { return false }

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithoutConsistencyChecks disables endpoint validation on arc
// registration and membership validation on removal. Violations then
// become undefined behavior instead of reported errors; intended for
// hot paths that have been validated elsewhere.
func WithoutConsistencyChecks() GraphOption {
	return func(g *Graph) { g.checkConsistency = false }
}

// WithVertexCapacity pre-reserves pooled storage for n vertices, so the
// first n creations are allocation-free.
func WithVertexCapacity(n int) GraphOption {
	return func(g *Graph) { g.ReserveVertexCapacity(n) }
}

// WithArcCapacity pre-reserves pooled storage for n arcs.
func WithArcCapacity(n int) GraphOption {
	return func(g *Graph) { g.ReserveArcCapacity(n) }
}

// Graph is the incidence-list storage engine. It exclusively owns all
// vertex and arc memory: elements are drawn from internal pools, handed
// out on creation, and returned on hibernation rather than freed.
//
// The engine is deliberately single-threaded: all operations are
// synchronous and non-blocking, and mutating topology while an iteration
// primitive is running over the same graph is undefined.
type Graph struct {
	// owner is the graph reference recorded as parent on every element.
	// It is the engine itself unless SetOwner reparented the elements to
	// an outer façade.
	owner *Graph

	// vertices holds the active vertices; vertices[v.index] == v.
	vertices []*Vertex
	// inactive holds soft-removed vertices; inactive[v.index] == v.
	inactive []*Vertex

	// offArcs holds arcs deactivated individually (not as a consequence
	// of a vertex deactivation).
	offArcs []*Arc

	// numArcs counts active arc objects; a bundle counts as one.
	numArcs uint64

	pools elementPools

	checkConsistency bool

	greetings []VertexMapping
	farewells []VertexMapping
}

// NewGraph creates an empty engine. Consistency checking is enabled by
// default; use WithoutConsistencyChecks to trade validation for speed.
// Complexity: O(1) plus any requested capacity reservation.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{checkConsistency: true}
	g.owner = g
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Size returns the number of active vertices. O(1).
func (g *Graph) Size() int { return len(g.vertices) }

// IsEmpty reports whether the graph has no active vertices. O(1).
func (g *Graph) IsEmpty() bool { return len(g.vertices) == 0 }

// NumArcs returns the number of active arcs. With multiArcsAsSimple,
// every arc object counts as one regardless of kind; otherwise each
// multi-arc or bundle contributes its represented-edge count.
// Complexity: O(1) in object mode, O(V) in expanded mode.
func (g *Graph) NumArcs(multiArcsAsSimple bool) uint64 {
	if multiArcsAsSimple {
		return g.numArcs
	}
	var total uint64
	for _, v := range g.vertices {
		total += v.inc.outDegree(false)
	}

	return total
}

// ConsistencyChecksEnabled reports whether endpoint and membership
// validation is active.
func (g *Graph) ConsistencyChecksEnabled() bool { return g.checkConsistency }
