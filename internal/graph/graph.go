// Package graph provides the undirected social network the simulation runs
// over. The simulation core treats a Graph as a read-only adjacency view;
// construction happens up front via AddEdge, the edge-list loader, or one of
// the seeded generators.
package graph

import (
	"fmt"
	"sort"
)

// Graph is a simple undirected graph over integer node IDs.
// It is not safe for concurrent mutation; once handed to a model it must be
// treated as read-only.
type Graph struct {
	adj   map[int]map[int]struct{}
	edges int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{adj: make(map[int]map[int]struct{})}
}

// AddNode adds an isolated node. Adding an existing node is a no-op.
func (g *Graph) AddNode(id int) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[int]struct{})
	}
}

// AddEdge adds an undirected edge between u and v, creating either endpoint
// if needed. Self-loops are rejected; duplicate edges are collapsed.
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return fmt.Errorf("add edge: self-loop on node %d", u)
	}
	g.AddNode(u)
	g.AddNode(v)
	if _, ok := g.adj[u][v]; ok {
		return nil
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edges++
	return nil
}

// HasNode reports whether id is present in the graph.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.adj[id]
	return ok
}

// HasEdge reports whether an edge between u and v exists.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.adj[u][v]
	return ok
}

// Nodes returns all node IDs in ascending order.
// Ascending order is a contract: the simulation's random draw sequence is
// defined in terms of it.
func (g *Graph) Nodes() []int {
	nodes := make([]int, 0, len(g.adj))
	for id := range g.adj {
		nodes = append(nodes, id)
	}
	sort.Ints(nodes)
	return nodes
}

// Neighbors returns the neighbor IDs of a node in ascending order.
// Returns nil for unknown nodes.
func (g *Graph) Neighbors(id int) []int {
	set, ok := g.adj[id]
	if !ok {
		return nil
	}
	nbs := make([]int, 0, len(set))
	for nb := range set {
		nbs = append(nbs, nb)
	}
	sort.Ints(nbs)
	return nbs
}

// Degree returns the number of neighbors of a node.
func (g *Graph) Degree(id int) int {
	return len(g.adj[id])
}

// NumNodes returns the node count.
func (g *Graph) NumNodes() int { return len(g.adj) }

// NumEdges returns the undirected edge count.
func (g *Graph) NumEdges() int { return g.edges }
