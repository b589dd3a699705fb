package astar

import "github.com/searchkit/astar/internal/floats"

// Graph is the capability set the engine requires from a graph.
// Nodes are addressed by stable integer indices; N is the caller's node
// handle type, returned in paths and used only for position lookups.
//
// Implementations must be read-only for the duration of a search.
type Graph[N any] interface {
	// NodeAt resolves an index to the node it addresses. An error means
	// the index does not belong to this graph.
	NodeAt(index int) (N, error)

	// ConnectionsFrom returns all outgoing connections of a node. The
	// result may be empty (dead end) and must be finite.
	ConnectionsFrom(index int) []Connection

	// PositionOf returns the 2D position of a node. The engine uses it
	// only to feed the heuristic.
	PositionOf(node N) (x, y float64)
}

// Connection is a directed, weighted edge between two node indices.
// Cost must be non-negative.
type Connection struct {
	From int     `json:"from"`
	To   int     `json:"to"`
	Cost float64 `json:"cost"`
}

// Heuristic estimates the remaining cost to the goal from the absolute
// coordinate deltas |Δx| and |Δy|. It must be pure, deterministic and
// non-negative; it never sees raw coordinates or node identities.
// An admissible heuristic (one that never overestimates) makes FindPath
// return cost-minimal paths.
type Heuristic func(absDX, absDY float64) float64

// Result contains the outcome of a completed search.
type Result[N any] struct {
	// Path is the ordered node sequence from start to goal inclusive.
	Path []N
	// TotalCost is the accumulated connection cost along Path.
	TotalCost float64
	// Expanded is the number of nodes finalized during the search.
	Expanded int
}

// Options defines parameters for the search.
type Options struct {
	// MaxExpansions bounds how many nodes a single FindPath call may
	// finalize; zero means unbounded.
	MaxExpansions int
	// CostEpsilon is the tolerance under which two g-costs are
	// considered equal.
	CostEpsilon float64
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithMaxExpansions caps the number of node expansions per search.
// Exceeding the cap fails the search with ErrExpansionLimit.
func WithMaxExpansions(n int) Option {
	return func(options *Options) { options.MaxExpansions = n }
}

// WithCostEpsilon sets the tolerance used when comparing g-costs for
// equality. Candidate routes must beat an incumbent by more than the
// tolerance to count as an improvement.
func WithCostEpsilon(eps float64) Option {
	return func(options *Options) { options.CostEpsilon = eps }
}

func defaultOptions() Options {
	return Options{CostEpsilon: floats.DefaultEpsilon}
}
