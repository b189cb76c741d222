// File: generators.go
// Role: the deterministic topology constructors. Each validates its
// parameters, adds vertices in ascending index order, and adds arcs
// in a fixed trial order so equal inputs yield identical graphs.
package builder

import (
	"fmt"

	"github.com/katalvlaran/incgraph/core"
)

// Path returns a constructor for a directed path v0→v1→…→v(n-1).
// Requires n ≥ 1.
func Path(n int) Constructor {
	return func(g *core.Graph, _ Config) error {
		if n < 1 {
			return fmt.Errorf("Path: n=%d < 1: %w", n, ErrTooFewVertices)
		}
		vs := addVertices(g, n)
		for i := 0; i+1 < n; i++ {
			if _, err := g.AddArc(vs[i], vs[i+1]); err != nil {
				return fmt.Errorf("Path: %w", err)
			}
		}

		return nil
	}
}

// Cycle returns a constructor for a directed cycle over n vertices.
// Requires n ≥ 1; n == 1 yields a self-loop.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ Config) error {
		if n < 1 {
			return fmt.Errorf("Cycle: n=%d < 1: %w", n, ErrTooFewVertices)
		}
		vs := addVertices(g, n)
		for i := 0; i < n; i++ {
			if _, err := g.AddArc(vs[i], vs[(i+1)%n]); err != nil {
				return fmt.Errorf("Cycle: %w", err)
			}
		}

		return nil
	}
}

// Complete returns a constructor for the complete directed graph on n
// vertices: one arc for every ordered pair of distinct vertices.
// Requires n ≥ 1.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ Config) error {
		if n < 1 {
			return fmt.Errorf("Complete: n=%d < 1: %w", n, ErrTooFewVertices)
		}
		vs := addVertices(g, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if _, err := g.AddArc(vs[i], vs[j]); err != nil {
					return fmt.Errorf("Complete: %w", err)
				}
			}
		}

		return nil
	}
}

// Grid returns a constructor for a rows×cols grid with arcs pointing
// right and down. Requires rows ≥ 1 and cols ≥ 1.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ Config) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
		}
		vs := addVertices(g, rows*cols)
		at := func(r, c int) *core.Vertex { return vs[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if _, err := g.AddArc(at(r, c), at(r, c+1)); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
				if r+1 < rows {
					if _, err := g.AddArc(at(r, c), at(r+1, c)); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
			}
		}

		return nil
	}
}

// Parallel returns a constructor for two vertices joined by k parallel
// simple arcs, the natural fixture for bundling. Requires k ≥ 1.
func Parallel(k int) Constructor {
	return func(g *core.Graph, _ Config) error {
		if k < 1 {
			return fmt.Errorf("Parallel: k=%d < 1: %w", k, ErrTooFewVertices)
		}
		tail, head := g.AddVertex(), g.AddVertex()
		for i := 0; i < k; i++ {
			if _, err := g.AddArc(tail, head); err != nil {
				return fmt.Errorf("Parallel: %w", err)
			}
		}

		return nil
	}
}

// RandomSparse returns a constructor sampling an Erdős–Rényi-like
// directed graph over n vertices: each ordered pair of distinct
// vertices gets an arc independently with probability p, in fixed
// trial order (i asc, then j asc) for determinism under one seed.
// Requires n ≥ 1 and 0 ≤ p ≤ 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg Config) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse: n=%d < 1: %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%g not in [0,1]: %w", p, ErrInvalidProbability)
		}
		vs := addVertices(g, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.Rand().Float64() < p {
					if _, err := g.AddArc(vs[i], vs[j]); err != nil {
						return fmt.Errorf("RandomSparse: %w", err)
					}
				}
			}
		}

		return nil
	}
}
