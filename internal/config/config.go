// Package config loads experiment definitions from YAML: which model variant
// to run, its parameters, how to build the network, and the run settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osnlab/seizsim/internal/graph"
	"github.com/osnlab/seizsim/internal/seiz"
)

// Model variant names accepted in the "model" field.
const (
	ModelBase           = "seiz"
	ModelBasicModerator = "seiz-bm"
	ModelSmartModerator = "seiz-sm"
)

// Parameters is the union of all variant parameters as they appear in YAML.
// Each variant reads only the fields it defines; eps and epsilon are
// aliases (the base variant historically spells it eps).
type Parameters struct {
	Beta    float64  `yaml:"beta"`
	B       float64  `yaml:"b"`
	Rho     float64  `yaml:"rho"`
	Eps     float64  `yaml:"eps"`
	Epsilon *float64 `yaml:"epsilon"`
	P       float64  `yaml:"p"`
	L       float64  `yaml:"l"`
	Dt      float64  `yaml:"dt"`
	Mu      float64  `yaml:"mu"`
	M       float64  `yaml:"m"`
	N       int      `yaml:"n"`
	Theta   int      `yaml:"theta"`
	T       float64  `yaml:"T"`
	Eta     float64  `yaml:"eta"`
	Lambd   float64  `yaml:"lambd"`
}

func (p Parameters) epsilon() float64 {
	if p.Epsilon != nil {
		return *p.Epsilon
	}
	return p.Eps
}

// Network describes how to obtain the graph.
type Network struct {
	Type  string  `yaml:"type"` // erdos-renyi | barabasi-albert | ring | path | edgelist
	Nodes int     `yaml:"nodes"`
	P     float64 `yaml:"p"`
	M     int     `yaml:"m"`
	K     int     `yaml:"k"`
	Path  string  `yaml:"path"`
	Seed  int64   `yaml:"seed"`
}

// Build constructs the configured graph.
func (n Network) Build() (*graph.Graph, error) {
	switch n.Type {
	case "erdos-renyi":
		return graph.ErdosRenyi(n.Nodes, n.P, n.Seed)
	case "barabasi-albert":
		return graph.BarabasiAlbert(n.Nodes, n.M, n.Seed)
	case "ring":
		return graph.RingLattice(n.Nodes, n.K)
	case "path":
		return graph.Path(n.Nodes)
	case "edgelist":
		return graph.LoadEdgeListFile(n.Path)
	default:
		return nil, fmt.Errorf("unknown network type %q", n.Type)
	}
}

// Run holds the run-phase settings.
type Run struct {
	Steps        int     `yaml:"steps"`
	InfectedFrac float64 `yaml:"infected_frac"`
	SkepticFrac  float64 `yaml:"skeptic_frac"`
	Seed         int64   `yaml:"seed"`
}

// Experiment is one complete simulation definition.
type Experiment struct {
	Model      string     `yaml:"model"`
	Parameters Parameters `yaml:"parameters"`
	Network    Network    `yaml:"network"`
	Run        Run        `yaml:"run"`
}

// Load reads and validates an experiment file.
func Load(path string) (*Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var exp Experiment
	if err := yaml.Unmarshal(data, &exp); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := exp.validate(); err != nil {
		return nil, err
	}
	return &exp, nil
}

func (e *Experiment) validate() error {
	switch e.Model {
	case ModelBase, ModelBasicModerator, ModelSmartModerator:
	default:
		return fmt.Errorf("unknown model %q (use %s, %s, or %s)",
			e.Model, ModelBase, ModelBasicModerator, ModelSmartModerator)
	}
	if e.Run.Steps < 0 {
		return fmt.Errorf("run.steps must be non-negative, got %d", e.Run.Steps)
	}
	return nil
}

// BuildModel constructs the configured model variant over g. Parameter
// domain errors surface from the model constructors.
func (e *Experiment) BuildModel(g *graph.Graph) (*seiz.Model, error) {
	p := e.Parameters
	switch e.Model {
	case ModelBase:
		return seiz.NewBaseModel(g, seiz.BaseParams{
			Beta: p.Beta, B: p.B, Rho: p.Rho, Eps: p.epsilon(),
			P: p.P, L: p.L, Dt: p.Dt,
		})
	case ModelBasicModerator:
		return seiz.NewBasicModeratorModel(g, seiz.BasicModeratorParams{
			Beta: p.Beta, B: p.B, Rho: p.Rho, Epsilon: p.epsilon(),
			P: p.P, L: p.L, Mu: p.Mu, M: p.M, Dt: p.Dt,
		})
	case ModelSmartModerator:
		return seiz.NewSmartModeratorModel(g, seiz.SmartModeratorParams{
			Beta: p.Beta, B: p.B, Rho: p.Rho, Epsilon: p.epsilon(),
			P: p.P, L: p.L, N: p.N, Theta: p.Theta, T: p.T,
			Eta: p.Eta, Lambd: p.Lambd,
		})
	default:
		return nil, fmt.Errorf("unknown model %q", e.Model)
	}
}

// Sweep runs one experiment definition across many seeds.
type Sweep struct {
	Experiment `yaml:",inline"`

	// Seeds are the initialization seeds to sweep over; the per-experiment
	// run.seed is ignored.
	Seeds []int64 `yaml:"seeds"`

	// Workers bounds concurrent runs. Zero means one worker per CPU.
	Workers int `yaml:"workers"`

	// Database is the SQLite file collecting the swept runs.
	Database string `yaml:"database"`
}

// LoadSweep reads and validates a sweep file.
func LoadSweep(path string) (*Sweep, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sweep config: %w", err)
	}
	var sw Sweep
	if err := yaml.Unmarshal(data, &sw); err != nil {
		return nil, fmt.Errorf("parse sweep config: %w", err)
	}
	if err := sw.validate(); err != nil {
		return nil, err
	}
	if len(sw.Seeds) == 0 {
		return nil, fmt.Errorf("sweep requires at least one seed")
	}
	if sw.Database == "" {
		return nil, fmt.Errorf("sweep requires a database path")
	}
	return &sw, nil
}
