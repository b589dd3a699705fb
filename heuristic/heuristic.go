// Package heuristic provides ready-made distance heuristics for the
// astar engine. Each function receives the absolute coordinate deltas
// |Δx| and |Δy| between a node and the goal, already computed by the
// engine, and returns a non-negative estimate of the remaining cost.
package heuristic

import (
	"math"

	"github.com/searchkit/astar"
)

// Compile-time checks that these satisfy the engine's heuristic shape.
var (
	_ astar.Heuristic = Manhattan
	_ astar.Heuristic = Euclidean
	_ astar.Heuristic = Chebyshev
	_ astar.Heuristic = Octile
	_ astar.Heuristic = Zero
)

// Manhattan is the L1 distance, admissible for 4-connected grids with
// unit step cost.
func Manhattan(absDX, absDY float64) float64 {
	return absDX + absDY
}

// Euclidean is the straight-line L2 distance, admissible whenever
// connection costs are at least the geometric distance between
// endpoints.
func Euclidean(absDX, absDY float64) float64 {
	return math.Hypot(absDX, absDY)
}

// Chebyshev is the L∞ distance, admissible for 8-connected grids where
// diagonal steps cost the same as straight ones.
func Chebyshev(absDX, absDY float64) float64 {
	return math.Max(absDX, absDY)
}

// Octile estimates movement on an 8-connected grid with unit straight
// cost and √2 diagonal cost; it is exact for an unobstructed grid.
func Octile(absDX, absDY float64) float64 {
	short, long := absDX, absDY
	if short > long {
		short, long = long, short
	}
	return long + (math.Sqrt2-1)*short
}

// Zero estimates nothing, degrading the search to Dijkstra's algorithm.
// Useful as a baseline and for graphs whose costs are unrelated to
// geometry.
func Zero(absDX, absDY float64) float64 {
	return 0
}
