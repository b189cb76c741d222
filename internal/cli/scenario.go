package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/incgraph/builder"
	"github.com/katalvlaran/incgraph/core"
)

// ErrInvalidScenario reports a scenario file that decoded but failed
// validation.
var ErrInvalidScenario = errors.New("cli: invalid scenario")

// Scenario is the TOML bench description: the topology to build, the
// mutation workload to run against it, and the traversal sweeps.
type Scenario struct {
	Graph     GraphSpec     `toml:"graph"`
	Workload  WorkloadSpec  `toml:"workload"`
	Traversal TraversalSpec `toml:"traversal"`
}

// GraphSpec selects one of the builder topologies.
type GraphSpec struct {
	// Topology is one of path, cycle, complete, grid, parallel,
	// random.
	Topology string `toml:"topology"`

	Vertices    int     `toml:"vertices"`
	Rows        int     `toml:"rows"`
	Cols        int     `toml:"cols"`
	Parallelism int     `toml:"parallelism"`
	Probability float64 `toml:"probability"`
	Seed        int64   `toml:"seed"`
}

// WorkloadSpec sizes the mutation churn applied per round.
type WorkloadSpec struct {
	Rounds          int  `toml:"rounds"`
	ChurnVertices   int  `toml:"churn_vertices"`
	DeactivateArcs  int  `toml:"deactivate_arcs"`
	BundleEachRound bool `toml:"bundle_each_round"`
}

// TraversalSpec toggles the sweeps run after the workload.
type TraversalSpec struct {
	BFS       bool   `toml:"bfs"`
	DFS       bool   `toml:"dfs"`
	Direction string `toml:"direction"`
}

// LoadScenario reads and validates a TOML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cli: read scenario: %w", err)
	}

	var s Scenario
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("cli: decode scenario: %w", err)
	}
	s.applyDefaults()
	if err := s.validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

func (s *Scenario) applyDefaults() {
	if s.Graph.Topology == "" {
		s.Graph.Topology = "random"
	}
	if s.Graph.Vertices == 0 {
		s.Graph.Vertices = 1000
	}
	if s.Graph.Probability == 0 {
		s.Graph.Probability = 0.01
	}
	if s.Graph.Seed == 0 {
		s.Graph.Seed = 1
	}
	if s.Workload.Rounds == 0 {
		s.Workload.Rounds = 1
	}
	if s.Traversal.Direction == "" {
		s.Traversal.Direction = "forward"
	}
}

func (s *Scenario) validate() error {
	switch s.Graph.Topology {
	case "path", "cycle", "complete", "random":
		if s.Graph.Vertices < 1 {
			return fmt.Errorf("%w: vertices=%d", ErrInvalidScenario, s.Graph.Vertices)
		}
	case "grid":
		if s.Graph.Rows < 1 || s.Graph.Cols < 1 {
			return fmt.Errorf("%w: grid %dx%d", ErrInvalidScenario, s.Graph.Rows, s.Graph.Cols)
		}
	case "parallel":
		if s.Graph.Parallelism < 1 {
			return fmt.Errorf("%w: parallelism=%d", ErrInvalidScenario, s.Graph.Parallelism)
		}
	default:
		return fmt.Errorf("%w: unknown topology %q", ErrInvalidScenario, s.Graph.Topology)
	}

	if s.Graph.Probability < 0 || s.Graph.Probability > 1 {
		return fmt.Errorf("%w: probability=%g", ErrInvalidScenario, s.Graph.Probability)
	}
	if s.Workload.Rounds < 0 || s.Workload.ChurnVertices < 0 || s.Workload.DeactivateArcs < 0 {
		return fmt.Errorf("%w: negative workload size", ErrInvalidScenario)
	}
	if _, err := s.direction(); err != nil {
		return err
	}

	return nil
}

// direction maps the scenario's direction string onto the engine type.
func (s *Scenario) direction() (core.Direction, error) {
	switch s.Traversal.Direction {
	case "forward":
		return core.Forward, nil
	case "reverse":
		return core.Reverse, nil
	case "undirected":
		return core.Undirected, nil
	default:
		return core.Forward, fmt.Errorf("%w: unknown direction %q", ErrInvalidScenario, s.Traversal.Direction)
	}
}

// constructor maps the scenario's topology onto a builder constructor.
func (s *Scenario) constructor() builder.Constructor {
	switch s.Graph.Topology {
	case "path":
		return builder.Path(s.Graph.Vertices)
	case "cycle":
		return builder.Cycle(s.Graph.Vertices)
	case "complete":
		return builder.Complete(s.Graph.Vertices)
	case "grid":
		return builder.Grid(s.Graph.Rows, s.Graph.Cols)
	case "parallel":
		return builder.Parallel(s.Graph.Parallelism)
	default:
		return builder.RandomSparse(s.Graph.Vertices, s.Graph.Probability)
	}
}

// build materializes the scenario graph.
func (s *Scenario) build() (*core.Graph, error) {
	return builder.Build(
		nil,
		[]builder.Option{builder.WithSeed(s.Graph.Seed)},
		s.constructor(),
	)
}
