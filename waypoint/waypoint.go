// Package waypoint implements an explicit directed waypoint graph for
// the astar engine. Nodes carry planar positions, connections are
// added one by one with validation, and an R-tree index supports
// snapping arbitrary coordinates onto the nearest waypoint.
package waypoint

import (
	"errors"
	"fmt"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/searchkit/astar"
)

// Sentinel errors for graph construction.
var (
	// ErrUnknownNode is returned when a connection references an index
	// that has not been added to the graph.
	ErrUnknownNode = errors.New("unknown waypoint index")

	// ErrNegativeCost is returned when a connection is given a negative
	// cost.
	ErrNegativeCost = errors.New("connection cost must be non-negative")
)

// pointExtent is the side length of the degenerate rectangle used to
// store points in the R-tree, which rejects zero-extent rectangles.
const pointExtent = 1e-9

// Node is a waypoint: a stable index plus a planar position.
type Node struct {
	Index    int       `json:"index"`
	Position orb.Point `json:"position"`
}

// nodeEntry adapts a Node to rtreego.Spatial.
type nodeEntry struct {
	node Node
	rect rtreego.Rect
}

func (entry *nodeEntry) Bounds() rtreego.Rect { return entry.rect }

// Graph is a directed waypoint graph. The zero value is not usable;
// create graphs with New. Build the graph fully before searching over
// it: the engine assumes read-only access.
type Graph struct {
	nodes []Node
	edges [][]astar.Connection
	tree  *rtreego.Rtree
}

// New creates an empty waypoint graph.
func New() *Graph {
	return &Graph{
		tree: rtreego.NewTree(2, 25, 50),
	}
}

// Len returns the number of waypoints.
func (graph *Graph) Len() int { return len(graph.nodes) }

// AddNode appends a waypoint at the given position and returns it. The
// assigned index is stable for the lifetime of the graph.
func (graph *Graph) AddNode(position orb.Point) Node {
	node := Node{Index: len(graph.nodes), Position: position}
	graph.nodes = append(graph.nodes, node)
	graph.edges = append(graph.edges, nil)

	rect, err := rtreego.NewRect(
		rtreego.Point{position.X(), position.Y()},
		[]float64{pointExtent, pointExtent},
	)
	if err == nil {
		graph.tree.Insert(&nodeEntry{node: node, rect: rect})
	}
	return node
}

// Connect adds a directed connection between two waypoints with an
// explicit cost.
func (graph *Graph) Connect(from, to int, cost float64) error {
	if from < 0 || from >= len(graph.nodes) {
		return fmt.Errorf("%w: from=%d", ErrUnknownNode, from)
	}
	if to < 0 || to >= len(graph.nodes) {
		return fmt.Errorf("%w: to=%d", ErrUnknownNode, to)
	}
	if cost < 0 {
		return fmt.Errorf("%w: %f", ErrNegativeCost, cost)
	}
	graph.edges[from] = append(graph.edges[from], astar.Connection{
		From: from,
		To:   to,
		Cost: cost,
	})
	return nil
}

// ConnectByDistance adds a directed connection whose cost is the planar
// distance between the two waypoints.
func (graph *Graph) ConnectByDistance(from, to int) error {
	if from < 0 || from >= len(graph.nodes) {
		return fmt.Errorf("%w: from=%d", ErrUnknownNode, from)
	}
	if to < 0 || to >= len(graph.nodes) {
		return fmt.Errorf("%w: to=%d", ErrUnknownNode, to)
	}
	cost := planar.Distance(graph.nodes[from].Position, graph.nodes[to].Position)
	return graph.Connect(from, to, cost)
}

// Nearest returns the waypoint closest to a position, for snapping
// query coordinates onto the graph. ok is false for an empty graph.
func (graph *Graph) Nearest(position orb.Point) (Node, bool) {
	if len(graph.nodes) == 0 {
		return Node{}, false
	}
	spatial := graph.tree.NearestNeighbor(rtreego.Point{position.X(), position.Y()})
	entry, ok := spatial.(*nodeEntry)
	if !ok {
		return Node{}, false
	}
	return entry.node, true
}

// NodeAt implements astar.Graph.
func (graph *Graph) NodeAt(index int) (Node, error) {
	if index < 0 || index >= len(graph.nodes) {
		return Node{}, fmt.Errorf("%w: %d", ErrUnknownNode, index)
	}
	return graph.nodes[index], nil
}

// ConnectionsFrom implements astar.Graph.
func (graph *Graph) ConnectionsFrom(index int) []astar.Connection {
	if index < 0 || index >= len(graph.edges) {
		return nil
	}
	return graph.edges[index]
}

// PositionOf implements astar.Graph.
func (graph *Graph) PositionOf(node Node) (float64, float64) {
	return node.Position.X(), node.Position.Y()
}

var _ astar.Graph[Node] = (*Graph)(nil)
