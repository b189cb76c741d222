// Package core provides an incidence-list directed-graph storage engine
// built for high-churn mutation: repeated vertex/arc insertion and
// removal, temporary soft removal and restoration, and parallel-arc
// bundling — all without general-purpose allocation on the hot path.
//
// 🔩 Storage model
//
//	Graph      — the engine; owns the active-vertex array and both pools
//	Vertex     — stable id, mutable position index, validity flag, label
//	Arc        — tagged variant {Simple, Multi, Bundle}; stable id
//
// Every vertex carries an incidence record: four dense containers
// (outgoing/incoming × simple/multi) with deactivated counterparts and
// a shared position table per side, so membership tests and removals
// are O(1) via swap-with-last.
//
// ♻️ Lifecycle
//
//	AddVertex / AddArc          — create, recycling pooled elements (LIFO)
//	RemoveVertex / RemoveArc    — hibernate: clear, invalidate, pool
//	DeactivateVertex / -Arc     — soft removal; identity & incidence kept
//	ActivateVertex / -Arc       — restoration; ActivateAll reverts all
//	ReserveVertexCapacity       — pre-hibernate so creation never allocates
//	Clear                       — hibernate everything; optional pool reset
//	                              (emptyReserves) or deterministic id-replay
//	                              ordering (restoreOrder)
//	CopyFrom                    — clone another engine's active topology
//
// 📦 Parallel arcs
//
//	BundleParallelArcs          — absorb parallels into bundles (idempotent,
//	                              always rebuilds from scratch)
//	UnbundleParallelArcs        — expand bundles back into members
//
// 🧭 Iteration
//
// Traversals consume the engine exclusively through its map-style
// primitives — MapVertices, MapOutgoingArcs(Until), MapIncomingArcs(Until),
// MapIncidentArcsUntil(dir) — with break conditions for early exit.
// Topology must stay stable for the duration of a single mapping call.
//
// ⚠️ Concurrency
//
// The engine is single-threaded by contract: all operations are
// synchronous and non-blocking, and no locking is performed. Callers
// requiring concurrent access must serialize externally.
//
// Errors: invalid-argument conditions (ErrVertexNotFound,
// ErrArcNotFound, ErrArcEndpointMismatch, ErrIndexOutOfRange,
// ErrInvalidArcSize) are returned; state-machine misuse of the
// activate/deactivate operations returns false; internal invariant
// violations panic.
package core
