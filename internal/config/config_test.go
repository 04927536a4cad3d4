package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadExperiment(t *testing.T) {
	path := writeConfig(t, `
model: seiz-bm
parameters:
  beta: 0.2
  b: 0.1
  rho: 0.3
  epsilon: 0.15
  p: 0.7
  l: 0.6
  mu: 0.2
  m: 0.8
network:
  type: ring
  nodes: 50
  k: 2
run:
  steps: 100
  infected_frac: 0.05
  skeptic_frac: 0.05
  seed: 42
`)
	exp, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exp.Model != ModelBasicModerator {
		t.Errorf("model = %q, want seiz-bm", exp.Model)
	}
	if exp.Parameters.epsilon() != 0.15 {
		t.Errorf("epsilon = %v, want 0.15", exp.Parameters.epsilon())
	}
	if exp.Run.Steps != 100 || exp.Run.Seed != 42 {
		t.Errorf("run settings wrong: %+v", exp.Run)
	}

	g, err := exp.Network.Build()
	if err != nil {
		t.Fatalf("build network: %v", err)
	}
	if g.NumNodes() != 50 {
		t.Errorf("network has %d nodes, want 50", g.NumNodes())
	}

	m, err := exp.BuildModel(g)
	if err != nil {
		t.Fatalf("build model: %v", err)
	}
	if m.Type() != "SEIZ-BM" {
		t.Errorf("model type = %q, want SEIZ-BM", m.Type())
	}
}

func TestLoadExperimentEpsAlias(t *testing.T) {
	path := writeConfig(t, `
model: seiz
parameters:
  beta: 0.2
  b: 0.1
  rho: 0.3
  eps: 0.15
  p: 0.7
  l: 0.6
  dt: 1.0
network:
  type: path
  nodes: 4
run:
  steps: 10
`)
	exp, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exp.Parameters.epsilon() != 0.15 {
		t.Errorf("eps alias not honored: %v", exp.Parameters.epsilon())
	}
}

func TestLoadExperimentErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"unknown model", "model: sir\nnetwork: {type: path, nodes: 4}\nrun: {steps: 1}\n"},
		{"negative steps", "model: seiz\nnetwork: {type: path, nodes: 4}\nrun: {steps: -1}\n"},
		{"bad yaml", "model: [unterminated\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.content)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNetworkBuildUnknownType(t *testing.T) {
	n := Network{Type: "small-world"}
	if _, err := n.Build(); err == nil {
		t.Fatal("expected error for unknown network type")
	}
}

func TestLoadSweep(t *testing.T) {
	path := writeConfig(t, `
model: seiz
parameters:
  beta: 0.2
  b: 0.1
  rho: 0.3
  eps: 0.1
  p: 0.7
  l: 0.6
  dt: 1.0
network:
  type: ring
  nodes: 30
  k: 2
run:
  steps: 50
  infected_frac: 0.1
  skeptic_frac: 0.1
seeds: [1, 2, 3]
workers: 2
database: runs.db
`)
	sw, err := LoadSweep(path)
	if err != nil {
		t.Fatalf("LoadSweep: %v", err)
	}
	if len(sw.Seeds) != 3 {
		t.Errorf("seeds = %v, want 3 entries", sw.Seeds)
	}
	if sw.Workers != 2 || sw.Database != "runs.db" {
		t.Errorf("sweep settings wrong: workers=%d database=%q", sw.Workers, sw.Database)
	}
}

func TestLoadSweepRequiresSeedsAndDatabase(t *testing.T) {
	base := `
model: seiz
network: {type: path, nodes: 4}
run: {steps: 1}
`
	if _, err := LoadSweep(writeConfig(t, base+"database: x.db\n")); err == nil {
		t.Error("expected error for missing seeds")
	}
	if _, err := LoadSweep(writeConfig(t, base+"seeds: [1]\n")); err == nil {
		t.Error("expected error for missing database")
	}
}
