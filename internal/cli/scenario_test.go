package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/incgraph/core"
)

// writeScenario drops a scenario file into a temp dir.
func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadScenario_Full(t *testing.T) {
	path := writeScenario(t, `
[graph]
topology = "grid"
rows = 10
cols = 20
seed = 7

[workload]
rounds = 3
churn_vertices = 50
deactivate_arcs = 25
bundle_each_round = true

[traversal]
bfs = true
dfs = true
direction = "undirected"
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	require.Equal(t, "grid", s.Graph.Topology)
	require.Equal(t, 10, s.Graph.Rows)
	require.Equal(t, 20, s.Graph.Cols)
	require.Equal(t, 3, s.Workload.Rounds)
	require.True(t, s.Workload.BundleEachRound)

	dir, err := s.direction()
	require.NoError(t, err)
	require.Equal(t, core.Undirected, dir)

	g, err := s.build()
	require.NoError(t, err)
	require.Equal(t, 200, g.Size())
}

func TestLoadScenario_Defaults(t *testing.T) {
	path := writeScenario(t, `
[traversal]
bfs = true
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	require.Equal(t, "random", s.Graph.Topology)
	require.Equal(t, 1000, s.Graph.Vertices)
	require.Equal(t, 1, s.Workload.Rounds)
	require.Equal(t, "forward", s.Traversal.Direction)
}

func TestLoadScenario_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown topology": `
[graph]
topology = "torus"
`,
		"bad grid": `
[graph]
topology = "grid"
rows = 0
cols = 5
`,
		"bad probability": `
[graph]
topology = "random"
vertices = 10
probability = 2.5
`,
		"bad direction": `
[traversal]
direction = "sideways"
`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, body))
			require.ErrorIs(t, err, ErrInvalidScenario)
		})
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
