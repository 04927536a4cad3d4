// Package export renders simulation results in the formats consumed by
// downstream tooling: the JSON run-output schema and Graphviz DOT.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/osnlab/seizsim/internal/graph"
	"github.com/osnlab/seizsim/internal/seiz"
)

// NetworkInfo describes the simulated network.
type NetworkInfo struct {
	NumNodes int `json:"num_nodes"`
	NumEdges int `json:"num_edges"`
}

// RunOutput is the serialized form of a completed run. The field names and
// nesting are a compatibility contract with downstream tooling and must not
// change.
type RunOutput struct {
	ModelType   string            `json:"model_type"`
	Parameters  any               `json:"parameters"`
	NetworkInfo NetworkInfo       `json:"network_info"`
	History     []seiz.StepRecord `json:"history"`
}

// NewRunOutput assembles the output record for a model's accumulated history.
func NewRunOutput(m *seiz.Model) RunOutput {
	g := m.Graph()
	return RunOutput{
		ModelType:  m.Type(),
		Parameters: m.Params(),
		NetworkInfo: NetworkInfo{
			NumNodes: g.NumNodes(),
			NumEdges: g.NumEdges(),
		},
		History: m.History(),
	}
}

// WriteJSON writes the indented JSON encoding to w.
func (o RunOutput) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(o); err != nil {
		return fmt.Errorf("encode run output: %w", err)
	}
	return nil
}

// SaveJSON writes the output to a file path.
func (o RunOutput) SaveJSON(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()
	if err := o.WriteJSON(f); err != nil {
		return err
	}
	return f.Close()
}

// GraphJSON is the node-link encoding of a network used by the graph command.
type GraphJSON struct {
	Nodes []GraphNodeJSON `json:"nodes"`
	Edges []GraphEdgeJSON `json:"edges"`
}

// GraphNodeJSON is one node with its compartment label (empty when the graph
// is rendered without a run).
type GraphNodeJSON struct {
	ID          int    `json:"id"`
	Compartment string `json:"compartment,omitempty"`
}

// GraphEdgeJSON is one undirected edge.
type GraphEdgeJSON struct {
	Source int `json:"source"`
	Target int `json:"target"`
}

// RenderJSON produces the node-link encoding of g, labeling nodes with their
// compartment when states is non-nil.
func RenderJSON(g *graph.Graph, states seiz.State) GraphJSON {
	out := GraphJSON{
		Nodes: make([]GraphNodeJSON, 0, g.NumNodes()),
		Edges: make([]GraphEdgeJSON, 0, g.NumEdges()),
	}
	for _, node := range g.Nodes() {
		n := GraphNodeJSON{ID: node}
		if states != nil {
			n.Compartment = states[node].String()
		}
		out.Nodes = append(out.Nodes, n)
		for _, nb := range g.Neighbors(node) {
			if node < nb {
				out.Edges = append(out.Edges, GraphEdgeJSON{Source: node, Target: nb})
			}
		}
	}
	return out
}
