// Package builder provides deterministic graph constructors for
// tests, benchmarks, and the bench driver.
//
// One orchestrator, Build(gopts, bopts, cons...), creates the graph,
// resolves the builder configuration, and applies constructors in
// order. Same inputs, options, seed, and constructor order produce
// identical graphs. Constructors validate early, return sentinel
// errors, and never panic.
package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/incgraph/core"
)

// Sentinel errors for builder validation.
var (
	// ErrTooFewVertices indicates a size parameter below the
	// constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrConstructFailed indicates a nil or otherwise unusable
	// constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// defaultSeed keeps unseeded stochastic constructors reproducible.
const defaultSeed = 1

// Constructor applies one deterministic graph mutation using the
// resolved configuration.
type Constructor func(g *core.Graph, cfg Config) error

// Config is the immutable resolved builder configuration.
type Config struct {
	seed int64
	rng  *rand.Rand
}

// Rand exposes the seeded source stochastic constructors draw from.
func (c Config) Rand() *rand.Rand { return c.rng }

// Option adjusts the builder configuration.
type Option func(*Config)

// WithSeed freezes the stochastic constructors' random source.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.seed = seed }
}

// Build creates a graph with the given core options, resolves the
// builder options, and applies all constructors in order. The first
// constructor error aborts the build; no partial cleanup is
// attempted.
func Build(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)

	cfg := Config{seed: defaultSeed}
	for _, opt := range bopts {
		opt(&cfg)
	}
	cfg.rng = rand.New(rand.NewSource(cfg.seed))

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// addVertices appends n fresh vertices and returns them.
func addVertices(g *core.Graph, n int) []*core.Vertex {
	vs := make([]*core.Vertex, n)
	for i := range vs {
		vs[i] = g.AddVertex()
	}

	return vs
}
