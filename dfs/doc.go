// Package dfs implements depth-first search over a core.Graph with
// classic low-link computation, on an explicit work stack of
// resumable frames instead of true recursion.
//
// What
//
//   - Explore as far as possible along each branch before
//     backtracking, following arcs Forward, Reverse, or Undirected.
//   - Records per vertex:
//   - dfs number: pre-order visitation counter (props.Map[int])
//   - low number: smallest dfs number reachable from the vertex's
//     subtree via at most one non-tree arc (the classic low-link,
//     usable for biconnectivity and SCC-style algorithms)
//   - parent: predecessor in the DFS tree
//   - Supports functional hooks:
//   - OnVertexDiscovered (may decline subtree expansion)
//   - VertexStop / ArcStop (halt the traversal, a normal outcome)
//   - OnArcDiscovered (may ignore the arc)
//   - OnTreeArc / OnNonTreeArc (arc classification)
//   - OnVertexExit (post-order, after the subtree completes)
//
// Low-link folding
//
//	A vertex's low number starts at its dfs number. A non-tree arc to
//	an already-discovered non-parent peer lowers it to the peer's dfs
//	number; when a child's frame pops, the child's low number folds
//	into the parent's. A back arc in a cycle therefore pulls every
//	vertex on the cycle down to the cycle root's dfs number.
//
// Work stack
//
//	Each frame holds a vertex, a snapshot of its incident arcs in
//	direction order, and a cursor. Snapshotting keeps each graph
//	mapping call atomic while the frame outlives it, and graph size
//	bounds memory instead of goroutine stack depth.
//
// Complexity (V = |Vertices|, A = |Arcs|)
//
//   - Time:   O(V + A)
//   - Memory: O(V)   (stack, number containers, parent links)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex is not in the graph.
//   - ErrOptionViolation      if an invalid Option was supplied.
//   - Context errors          if the configured context is cancelled.
//
// Stop conditions are not errors: Run returns nil when halted,
// leaving partial results in place; Halted reports the cut.
package dfs
