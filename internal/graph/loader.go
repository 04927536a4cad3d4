package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadEdgeList parses a whitespace-separated edge list. Each non-empty line
// holds either "u v" (an edge) or a single "u" (an isolated node). Lines
// starting with '#' are comments. Duplicate edges are collapsed.
func LoadEdgeList(r io.Reader) (*Graph, error) {
	g := New()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch len(fields) {
		case 1:
			id, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("edge list line %d: bad node %q: %w", lineNo, fields[0], err)
			}
			g.AddNode(id)
		case 2:
			u, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("edge list line %d: bad node %q: %w", lineNo, fields[0], err)
			}
			v, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("edge list line %d: bad node %q: %w", lineNo, fields[1], err)
			}
			if err := g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("edge list line %d: %w", lineNo, err)
			}
		default:
			return nil, fmt.Errorf("edge list line %d: expected 1 or 2 fields, got %d", lineNo, len(fields))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read edge list: %w", err)
	}
	return g, nil
}

// LoadEdgeListFile loads an edge list from a file path.
func LoadEdgeListFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open edge list: %w", err)
	}
	defer f.Close()
	return LoadEdgeList(f)
}
