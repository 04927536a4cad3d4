package graph

import (
	"fmt"
	"math/rand"
)

// ErdosRenyi generates a G(n, p) random graph: every node pair is connected
// independently with probability p. Deterministic under a fixed seed.
func ErdosRenyi(n int, p float64, seed int64) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("erdos-renyi: n must be positive, got %d", n)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("erdos-renyi: p must be in [0,1], got %v", p)
	}
	rng := rand.New(rand.NewSource(seed))
	g := New()
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				g.AddEdge(i, j)
			}
		}
	}
	return g, nil
}

// BarabasiAlbert generates a preferential-attachment graph: starting from a
// clique of m+1 nodes, each new node attaches to m existing nodes chosen with
// probability proportional to their degree. Deterministic under a fixed seed.
func BarabasiAlbert(n, m int, seed int64) (*Graph, error) {
	if m < 1 {
		return nil, fmt.Errorf("barabasi-albert: m must be at least 1, got %d", m)
	}
	if n <= m {
		return nil, fmt.Errorf("barabasi-albert: n must exceed m, got n=%d m=%d", n, m)
	}
	rng := rand.New(rand.NewSource(seed))
	g := New()

	// Initial clique over nodes 0..m.
	for i := 0; i <= m; i++ {
		for j := i + 1; j <= m; j++ {
			g.AddEdge(i, j)
		}
	}

	// Repeated-node list: each node appears once per unit of degree, so a
	// uniform pick over it is a degree-proportional pick.
	var repeated []int
	for i := 0; i <= m; i++ {
		for k := 0; k < g.Degree(i); k++ {
			repeated = append(repeated, i)
		}
	}

	for v := m + 1; v < n; v++ {
		targets := make(map[int]struct{}, m)
		for len(targets) < m {
			targets[repeated[rng.Intn(len(repeated))]] = struct{}{}
		}
		for t := range targets {
			g.AddEdge(v, t)
		}
		// Rebuild the additions deterministically: append in ascending order.
		for _, t := range sortedKeys(targets) {
			repeated = append(repeated, t, v)
		}
	}
	return g, nil
}

// RingLattice generates a ring where each node connects to its k nearest
// neighbors on each side.
func RingLattice(n, k int) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("ring: n must be positive, got %d", n)
	}
	if k < 1 || 2*k >= n {
		return nil, fmt.Errorf("ring: k must satisfy 1 <= k < n/2, got n=%d k=%d", n, k)
	}
	g := New()
	for i := 0; i < n; i++ {
		for d := 1; d <= k; d++ {
			g.AddEdge(i, (i+d)%n)
		}
	}
	return g, nil
}

// Path generates a path graph 0-1-...-(n-1).
func Path(n int) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("path: n must be positive, got %d", n)
	}
	g := New()
	g.AddNode(0)
	for i := 1; i < n; i++ {
		g.AddEdge(i-1, i)
	}
	return g, nil
}

func sortedKeys(set map[int]struct{}) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	// Insertion sort; target sets are tiny (size m).
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}
