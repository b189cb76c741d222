// Package incgraph is an in-memory incidence-list graph engine built for
// heavy churn — add, remove, pause and resume vertices and arcs at scale
// without losing identities or paying reallocation costs.
//
// 🚀 What is incgraph?
//
//	A storage engine plus restartable traversals:
//		• Core engine: incidence-list Graph, Vertex and Arc with O(1)
//		  insertion, removal, activation and deactivation
//		• Element pooling: removed vertices and arcs hibernate and are
//		  recycled LIFO, replaying their old identifiers
//		• Parallel-arc bundling: collapse parallel arcs into multi-arcs
//		  and expand them back without losing edge multiplicity
//		• Traversals: restartable BFS (run, stop, resume) and low-link
//		  DFS with tree/non-tree arc hooks
//		• Toposort: Kahn's algorithm on active elements only
//		• Builder: deterministic topology generators (path, cycle,
//		  complete, grid, parallel, random sparse)
//
// ✨ Why choose incgraph?
//
//   - Stable identities – an element keeps its id across deactivation,
//     removal and recycling
//   - Soft state – deactivate a vertex or arc and bring it back later,
//     incident structure intact
//   - Hooks everywhere – observe vertex/arc discovery, tree and
//     non-tree arcs, vertex exit
//   - Resumable search – stop a BFS mid-wave and pick it up from the
//     exact frontier later
//
// Under the hood, everything is organized under six subpackages:
//
//	core/     — Graph, Vertex, Arc engine: pooling, activation, bundling
//	props/    — id-keyed property maps with a default fallback
//	bfs/      — restartable breadth-first search with level tracking
//	dfs/      — depth-first search with low-link numbers and post-order
//	toposort/ — topological ordering over the active subgraph
//	builder/  — seeded topology constructors for tests and benchmarks
//
// Quick ASCII example:
//
//	    A──▶B
//	    ▲   │
//	    └───C
//
//	a three-vertex cycle; deactivate C and the cycle opens, activate it
//	back and the cycle is whole again — same ids, same arcs.
//
// The cmd/incgraph binary drives churn-and-traversal benchmarks from a
// TOML scenario file. See README.md for examples.
//
//	go get github.com/katalvlaran/incgraph
package incgraph
