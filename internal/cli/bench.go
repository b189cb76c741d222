package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/incgraph/bfs"
	"github.com/katalvlaran/incgraph/core"
	"github.com/katalvlaran/incgraph/dfs"
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleLabel  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleNumber = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	styleBox    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
)

// benchReport collects the figures the summary block prints.
type benchReport struct {
	vertices   int
	arcObjects uint64
	arcEdges   uint64
	bfsReached uint64
	bfsLevels  uint64
	dfsReached int
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench <scenario.toml>",
		Short: "Run a bench scenario against the graph engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			scenario, err := LoadScenario(args[0])
			if err != nil {
				return err
			}

			p := newProgress(logger)
			g, err := scenario.build()
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Built %s graph: %d vertices, %d arcs",
				scenario.Graph.Topology, g.Size(), g.NumArcs(true)))

			if err := runWorkload(logger, g, scenario.Workload); err != nil {
				return err
			}

			report := benchReport{
				vertices:   g.Size(),
				arcObjects: g.NumArcs(true),
				arcEdges:   g.NumArcs(false),
			}
			if err := runSweeps(cmd, g, scenario, &report); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderSummary(scenario, report))
			return nil
		},
	}
}

// runWorkload churns the graph: vertex add/remove cycles, arc
// deactivate/activate cycles, and optional bundle rebuilds.
func runWorkload(logger *log.Logger, g *core.Graph, w WorkloadSpec) error {
	for round := 0; round < w.Rounds; round++ {
		anchor := g.FirstVertex()

		// vertex churn exercises the pools: every removal feeds the
		// next round's additions
		churned := make([]*core.Vertex, 0, w.ChurnVertices)
		for i := 0; i < w.ChurnVertices; i++ {
			v := g.AddVertex()
			if anchor != nil {
				if _, err := g.AddArc(v, anchor); err != nil {
					return err
				}
			}
			churned = append(churned, v)
		}
		for _, v := range churned {
			if err := g.RemoveVertex(v); err != nil {
				return err
			}
		}

		// arc soft-removal round trip
		var parked []*core.Arc
		g.MapArcsUntil(
			func(a *core.Arc) { parked = append(parked, a) },
			func(*core.Arc) bool { return len(parked) >= w.DeactivateArcs },
		)
		for _, a := range parked {
			g.DeactivateArc(a)
		}
		for _, a := range parked {
			g.ActivateArc(a)
		}

		if w.BundleEachRound {
			g.BundleParallelArcs()
			g.UnbundleParallelArcs()
		}

		logger.Debugf("round %d: churned %d vertices, cycled %d arcs",
			round, len(churned), len(parked))
	}

	return nil
}

// runSweeps runs the configured traversals from the first vertex.
func runSweeps(cmd *cobra.Command, g *core.Graph, s *Scenario, report *benchReport) error {
	start := g.FirstVertex()
	if start == nil {
		return nil
	}
	dir, err := s.direction()
	if err != nil {
		return err
	}
	logger := loggerFromContext(cmd.Context())

	if s.Traversal.BFS {
		p := newProgress(logger)
		search, err := bfs.New(g, start,
			bfs.WithDirection(dir),
			bfs.WithLevelValues(),
			bfs.WithContext(cmd.Context()),
		)
		if err != nil {
			return err
		}
		if err := search.Run(); err != nil {
			return err
		}
		report.bfsReached = search.NumVerticesReached()
		report.bfsLevels = search.MaxLevel()
		p.done(fmt.Sprintf("BFS reached %d vertices across %d levels",
			report.bfsReached, report.bfsLevels))
	}

	if s.Traversal.DFS {
		p := newProgress(logger)
		search, err := dfs.New(g, start,
			dfs.WithDirection(dir),
			dfs.WithContext(cmd.Context()),
		)
		if err != nil {
			return err
		}
		if err := search.Run(); err != nil {
			return err
		}
		report.dfsReached = search.NumVerticesReached()
		p.done(fmt.Sprintf("DFS reached %d vertices", report.dfsReached))
	}

	return nil
}

// renderSummary lays out the styled result block.
func renderSummary(s *Scenario, r benchReport) string {
	row := func(label string, value any) string {
		return fmt.Sprintf("%s %s",
			styleLabel.Render(fmt.Sprintf("%-14s", label)),
			styleNumber.Render(fmt.Sprint(value)))
	}

	lines := []string{
		styleTitle.Render(fmt.Sprintf("incgraph bench — %s", s.Graph.Topology)),
		row("vertices", r.vertices),
		row("arc objects", r.arcObjects),
		row("arc edges", r.arcEdges),
	}
	if s.Traversal.BFS {
		lines = append(lines,
			row("bfs reached", r.bfsReached),
			row("bfs levels", r.bfsLevels))
	}
	if s.Traversal.DFS {
		lines = append(lines, row("dfs reached", r.dfsReached))
	}

	return styleBox.Render(strings.Join(lines, "\n"))
}
