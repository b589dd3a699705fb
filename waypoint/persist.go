package waypoint

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/searchkit/astar"
)

// graphFile is the on-disk shape of a waypoint graph.
type graphFile struct {
	Nodes []Node             `json:"nodes"`
	Edges []astar.Connection `json:"edges"`
}

// Save writes the graph to a JSON file.
func (graph *Graph) Save(path string) error {
	file := graphFile{Nodes: graph.nodes}
	for _, connections := range graph.edges {
		file.Edges = append(file.Edges, connections...)
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal waypoint graph: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write waypoint graph: %w", err)
	}
	return nil
}

// Load reads a graph previously written with Save. Node indices in the
// file must be dense and start at zero; edges referencing unknown nodes
// fail the load.
func Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read waypoint graph: %w", err)
	}
	var file graphFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse waypoint graph: %w", err)
	}

	graph := New()
	for i, node := range file.Nodes {
		if node.Index != i {
			return nil, fmt.Errorf("parse waypoint graph: node %d stored with index %d", i, node.Index)
		}
		graph.AddNode(node.Position)
	}
	for _, edge := range file.Edges {
		if err := graph.Connect(edge.From, edge.To, edge.Cost); err != nil {
			return nil, fmt.Errorf("parse waypoint graph: %w", err)
		}
	}
	return graph, nil
}
