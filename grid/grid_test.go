package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchkit/astar/grid"
)

func TestIndexCellRoundTrip(t *testing.T) {
	world := grid.New(7, 5, grid.Four)
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			cell := grid.Cell{X: x, Y: y}
			require.Equal(t, cell, world.Cell(world.Index(cell)))
		}
	}
}

func TestNodeAtRange(t *testing.T) {
	world := grid.New(4, 4, grid.Four)

	cell, err := world.NodeAt(0)
	require.NoError(t, err)
	require.Equal(t, grid.Cell{}, cell)

	_, err = world.NodeAt(-1)
	require.Error(t, err)
	_, err = world.NodeAt(16)
	require.Error(t, err)
}

func TestConnectionsFourWay(t *testing.T) {
	world := grid.New(3, 3, grid.Four)
	center := world.Index(grid.Cell{X: 1, Y: 1})

	connections := world.ConnectionsFrom(center)
	require.Len(t, connections, 4)
	for _, connection := range connections {
		assert.Equal(t, center, connection.From)
		assert.Equal(t, 1.0, connection.Cost)
	}

	// A corner only has two neighbors.
	corner := world.Index(grid.Cell{X: 0, Y: 0})
	require.Len(t, world.ConnectionsFrom(corner), 2)
}

func TestConnectionsEightWay(t *testing.T) {
	world := grid.New(3, 3, grid.Eight)
	center := world.Index(grid.Cell{X: 1, Y: 1})

	connections := world.ConnectionsFrom(center)
	require.Len(t, connections, 8)

	diagonals := 0
	for _, connection := range connections {
		if connection.Cost > 1 {
			diagonals++
			assert.InDelta(t, math.Sqrt2, connection.Cost, 1e-12)
		}
	}
	assert.Equal(t, 4, diagonals)
}

func TestWallsCutConnections(t *testing.T) {
	world := grid.New(3, 3, grid.Four)
	wall := grid.Cell{X: 1, Y: 1}
	world.Block(wall)

	require.True(t, world.Blocked(wall))
	require.Empty(t, world.ConnectionsFrom(world.Index(wall)))

	// Neighbors no longer connect into the wall.
	for _, connection := range world.ConnectionsFrom(world.Index(grid.Cell{X: 0, Y: 1})) {
		require.NotEqual(t, world.Index(wall), connection.To)
	}

	world.Unblock(wall)
	require.False(t, world.Blocked(wall))
	require.Len(t, world.ConnectionsFrom(world.Index(wall)), 4)
}

func TestScatterDeterministicAndKeepsCellsClear(t *testing.T) {
	build := func() *grid.Grid {
		world := grid.New(20, 20, grid.Four)
		world.Scatter(5, 6, 120, 0.3, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 19, Y: 19})
		return world
	}

	first, second := build(), build()
	require.ElementsMatch(t, first.Walls(), second.Walls())
	require.NotEmpty(t, first.Walls())

	require.False(t, first.Blocked(grid.Cell{X: 0, Y: 0}))
	require.False(t, first.Blocked(grid.Cell{X: 19, Y: 19}))
}

func TestPositionMatchesCoordinates(t *testing.T) {
	world := grid.New(10, 10, grid.Four)
	x, y := world.PositionOf(grid.Cell{X: 3, Y: 8})
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 8.0, y)
}
