// Package bfs provides a production-grade restartable breadth-first
// search over a core.Graph, recording discovery numbers or level
// values through a shared property container.
//
// What
//
//   - Explore vertices in non-decreasing wave distance from a start
//     vertex, following arcs Forward (tail→head), Reverse (head→tail),
//     or Undirected (both).
//   - The FIFO queue carries an explicit level-boundary marker; each
//     time the marker cycles to the front, the completed-level counter
//     advances.
//   - Values written per vertex are either the sequential discovery
//     number (default) or the vertex's level (WithLevelValues),
//     recorded into a props.Map keyed by vertex id.
//   - Supports functional hooks:
//   - OnVertexDiscovered (may decline further expansion)
//   - VertexStop / ArcStop (halt the traversal, a normal outcome)
//   - OnArcDiscovered (may ignore the arc)
//   - OnTreeArc / OnNonTreeArc (arc classification)
//
// Restartability
//
//	Run initializes state and discovers the start vertex; Resume
//	drains the queue. When a stop condition halts Resume, the frontier
//	stays intact: the stopping vertex remains at the front of the
//	queue, and a later Resume re-evaluates the condition and continues
//	from exactly where the search left off. This makes bounded and
//	partial BFS composable without re-running from scratch.
//
// Complexity (V = |Vertices|, A = |Arcs|)
//
//   - Time:   O(V + A)   (each vertex and arc seen at most once)
//   - Memory: O(V)       (queue, discovered set, value container)
//
// Usage
//
//	search, err := bfs.New(g, start,
//	    bfs.WithDirection(core.Undirected),
//	    bfs.WithLevelValues(),
//	    bfs.WithVertexStop(func(v *core.Vertex) bool { return v == goal }),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, or ErrOptionViolation
//	}
//	_ = search.Run()
//	// ... inspect search.Values(), search.NumVerticesReached() ...
//	_ = search.Resume() // continue past the stop, if desired
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex is not in the graph.
//   - ErrOptionViolation      if an invalid Option was supplied.
//   - Context errors          if the configured context is cancelled.
//
// Stop conditions are not errors: Run and Resume return nil when
// halted by VertexStop or ArcStop.
package bfs
