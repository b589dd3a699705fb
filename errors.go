package astar

import "errors"

// Sentinel errors for search outcomes.
var (
	// ErrNoPath is returned when the goal is unreachable from the start
	// given the graph's connectivity. It is an expected, recoverable
	// outcome, not a contract violation.
	ErrNoPath = errors.New("no path found")

	// ErrInvalidReference is returned when the start or goal index does
	// not resolve in the graph the engine was constructed with. It
	// indicates a defect in the calling code.
	ErrInvalidReference = errors.New("node does not resolve in graph")

	// ErrMalformedGraph is returned when a connection reported by the
	// graph references an index with no resolvable node. It indicates a
	// contract violation by the graph implementation.
	ErrMalformedGraph = errors.New("graph returned unresolvable reference")

	// ErrExpansionLimit is returned when a search exceeds the expansion
	// cap set with WithMaxExpansions.
	ErrExpansionLimit = errors.New("expansion limit reached")
)
