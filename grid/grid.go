// Package grid implements a bounded 2D grid graph for the astar engine.
// Cells are addressed by (x, y) coordinates or by the flat node index
// y*Width + x; blocked cells stay part of the grid but have no
// connections in or out.
package grid

import (
	"fmt"
	"math"

	"github.com/searchkit/astar"
)

// Connectivity selects which neighbors a cell connects to.
type Connectivity int

const (
	// Four connects horizontal and vertical neighbors at cost 1.
	Four Connectivity = iota
	// Eight additionally connects diagonal neighbors at cost √2.
	Eight
)

// Cell is a grid coordinate, the node handle returned in paths.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid is a W×H grid graph. The zero value is not usable; create grids
// with New.
type Grid struct {
	width        int
	height       int
	connectivity Connectivity
	walls        map[Cell]bool
}

// New creates an empty grid of the given dimensions.
func New(width, height int, connectivity Connectivity) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("grid: invalid dimensions %dx%d", width, height))
	}
	return &Grid{
		width:        width,
		height:       height,
		connectivity: connectivity,
		walls:        make(map[Cell]bool),
	}
}

// Width returns the horizontal cell count.
func (grid *Grid) Width() int { return grid.width }

// Height returns the vertical cell count.
func (grid *Grid) Height() int { return grid.height }

// In reports whether a cell lies inside the grid bounds.
func (grid *Grid) In(cell Cell) bool {
	return cell.X >= 0 && cell.X < grid.width && cell.Y >= 0 && cell.Y < grid.height
}

// Block marks a cell as impassable. Blocking a cell outside the grid is
// a no-op.
func (grid *Grid) Block(cell Cell) {
	if grid.In(cell) {
		grid.walls[cell] = true
	}
}

// Unblock clears a wall.
func (grid *Grid) Unblock(cell Cell) {
	delete(grid.walls, cell)
}

// Blocked reports whether a cell is a wall.
func (grid *Grid) Blocked(cell Cell) bool {
	return grid.walls[cell]
}

// Walls returns the blocked cells in unspecified order.
func (grid *Grid) Walls() []Cell {
	cells := make([]Cell, 0, len(grid.walls))
	for cell := range grid.walls {
		cells = append(cells, cell)
	}
	return cells
}

// Index returns the flat node index of a cell.
func (grid *Grid) Index(cell Cell) int {
	return cell.Y*grid.width + cell.X
}

// Cell returns the cell addressed by a flat node index. The index must
// be in range; use NodeAt for validated resolution.
func (grid *Grid) Cell(index int) Cell {
	return Cell{X: index % grid.width, Y: index / grid.width}
}

// NodeAt implements astar.Graph.
func (grid *Grid) NodeAt(index int) (Cell, error) {
	if index < 0 || index >= grid.width*grid.height {
		return Cell{}, fmt.Errorf("index %d outside %dx%d grid", index, grid.width, grid.height)
	}
	return grid.Cell(index), nil
}

// PositionOf implements astar.Graph.
func (grid *Grid) PositionOf(cell Cell) (float64, float64) {
	return float64(cell.X), float64(cell.Y)
}

// ConnectionsFrom implements astar.Graph. Blocked source cells have no
// outgoing connections, and connections never lead into a wall.
func (grid *Grid) ConnectionsFrom(index int) []astar.Connection {
	if index < 0 || index >= grid.width*grid.height {
		return nil
	}
	from := grid.Cell(index)
	if grid.Blocked(from) {
		return nil
	}

	type offset struct {
		dx, dy int
		cost   float64
	}
	straight := []offset{
		{1, 0, 1}, {-1, 0, 1}, {0, 1, 1}, {0, -1, 1},
	}
	diagonal := []offset{
		{1, 1, math.Sqrt2}, {1, -1, math.Sqrt2}, {-1, 1, math.Sqrt2}, {-1, -1, math.Sqrt2},
	}

	offsets := straight
	if grid.connectivity == Eight {
		offsets = append(offsets, diagonal...)
	}

	connections := make([]astar.Connection, 0, len(offsets))
	for _, o := range offsets {
		to := Cell{X: from.X + o.dx, Y: from.Y + o.dy}
		if !grid.In(to) || grid.Blocked(to) {
			continue
		}
		connections = append(connections, astar.Connection{
			From: index,
			To:   grid.Index(to),
			Cost: o.cost,
		})
	}
	return connections
}

var _ astar.Graph[Cell] = (*Grid)(nil)
