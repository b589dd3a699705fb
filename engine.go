package astar

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/searchkit/astar/internal/floats"
)

// Engine runs A* searches over one graph with one heuristic, both bound
// at construction time. An Engine holds no mutable state of its own, so
// a single instance may serve concurrent FindPath calls as long as the
// graph is safe for concurrent reads.
type Engine[N any] struct {
	graph     Graph[N]
	heuristic Heuristic
	options   Options
}

// New binds an engine to a graph and a heuristic.
func New[N any](graph Graph[N], heuristic Heuristic, options ...Option) *Engine[N] {
	engineOptions := defaultOptions()
	for _, option := range options {
		option(&engineOptions)
	}
	return &Engine[N]{
		graph:     graph,
		heuristic: heuristic,
		options:   engineOptions,
	}
}

// FindPath returns a least-cost path from start to goal, both given as
// node indices. The path includes both endpoints; when start == goal it
// is a single-node path.
//
// An unreachable goal reports ErrNoPath. A start or goal index that does
// not resolve reports ErrInvalidReference, and a connection endpoint
// that does not resolve mid-search reports ErrMalformedGraph; neither is
// ever folded into ErrNoPath. Cancellation of ctx aborts the search with
// the context's error.
func (engine *Engine[N]) FindPath(ctx context.Context, start, goal int) (Result[N], error) {
	state, err := engine.newSearch(start, goal)
	if err != nil {
		return Result[N]{}, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return Result[N]{Expanded: state.expanded}, fmt.Errorf("search cancelled: %w", err)
		}
		if engine.options.MaxExpansions > 0 && state.expanded >= engine.options.MaxExpansions {
			return Result[N]{Expanded: state.expanded},
				fmt.Errorf("%w after %d node expansions", ErrExpansionLimit, state.expanded)
		}

		current, done, err := state.step()
		if err != nil {
			return Result[N]{Expanded: state.expanded}, err
		}
		if !done {
			continue
		}
		if current == nil {
			return Result[N]{Expanded: state.expanded},
				fmt.Errorf("no path from node %d to node %d: %w", start, goal, ErrNoPath)
		}

		path, err := state.reconstruct(current)
		if err != nil {
			return Result[N]{Expanded: state.expanded}, err
		}
		return Result[N]{
			Path:      path,
			TotalCost: current.gCost,
			Expanded:  state.expanded,
		}, nil
	}
}

// searchState holds the call-local bookkeeping of one search run. It is
// shared by FindPath and Stepper so both follow identical admission and
// relaxation rules.
type searchState[N any] struct {
	engine       *Engine[N]
	start, goal  int
	goalX, goalY float64

	open       recordQueue
	openByNode map[int]*nodeRecord
	closed     map[int]*nodeRecord
	expanded   int
}

// newSearch validates the endpoints and seeds the open set with the
// start record.
func (engine *Engine[N]) newSearch(start, goal int) (*searchState[N], error) {
	startNode, err := engine.graph.NodeAt(start)
	if err != nil {
		return nil, fmt.Errorf("%w: start index %d: %v", ErrInvalidReference, start, err)
	}
	goalNode, err := engine.graph.NodeAt(goal)
	if err != nil {
		return nil, fmt.Errorf("%w: goal index %d: %v", ErrInvalidReference, goal, err)
	}

	state := &searchState[N]{
		engine:     engine,
		start:      start,
		goal:       goal,
		open:       make(recordQueue, 0),
		openByNode: make(map[int]*nodeRecord),
		closed:     make(map[int]*nodeRecord),
	}
	state.goalX, state.goalY = engine.graph.PositionOf(goalNode)

	startX, startY := engine.graph.PositionOf(startNode)
	startRecord := &nodeRecord{
		node:  start,
		fCost: engine.heuristic(math.Abs(startX-state.goalX), math.Abs(startY-state.goalY)),
	}
	heap.Init(&state.open)
	heap.Push(&state.open, startRecord)
	state.openByNode[start] = startRecord

	return state, nil
}

// step finalizes the cheapest open record and expands its connections.
// It returns the finalized record together with done=true when that
// record is the goal, (nil, true) when the open set is exhausted, and
// done=false while the search is still in progress.
func (state *searchState[N]) step() (*nodeRecord, bool, error) {
	if state.open.Len() == 0 {
		return nil, true, nil
	}

	current := heap.Pop(&state.open).(*nodeRecord)
	delete(state.openByNode, current.node)
	state.closed[current.node] = current
	state.expanded++

	if current.node == state.goal {
		return current, true, nil
	}

	for _, connection := range state.engine.graph.ConnectionsFrom(current.node) {
		candidateG := current.gCost + connection.Cost
		destination := connection.To

		if settled, ok := state.closed[destination]; ok {
			if !state.improves(candidateG, settled.gCost) {
				continue
			}
			// A strictly cheaper route to a finalized node: reopen it
			// below with the new record.
			delete(state.closed, destination)
		} else if pending, ok := state.openByNode[destination]; ok {
			if state.improves(candidateG, pending.gCost) {
				pending.incoming = connection
				pending.hasIncoming = true
				pending.fCost += candidateG - pending.gCost
				pending.gCost = candidateG
				heap.Fix(&state.open, pending.indexInQueue)
			}
			continue
		}

		estimate, err := state.estimate(destination)
		if err != nil {
			return nil, false, fmt.Errorf("%w: connection %d->%d: %v",
				ErrMalformedGraph, connection.From, connection.To, err)
		}
		record := &nodeRecord{
			node:        destination,
			incoming:    connection,
			hasIncoming: true,
			gCost:       candidateG,
			fCost:       candidateG + estimate,
		}
		heap.Push(&state.open, record)
		state.openByNode[destination] = record
	}

	return current, false, nil
}

// improves reports whether a candidate g-cost beats an incumbent by more
// than the configured tolerance.
func (state *searchState[N]) improves(candidate, incumbent float64) bool {
	return candidate < incumbent &&
		!floats.Equal(candidate, incumbent, state.engine.options.CostEpsilon)
}

// estimate resolves a node index and evaluates the heuristic against the
// goal position.
func (state *searchState[N]) estimate(index int) (float64, error) {
	node, err := state.engine.graph.NodeAt(index)
	if err != nil {
		return 0, err
	}
	x, y := state.engine.graph.PositionOf(node)
	return state.engine.heuristic(math.Abs(x-state.goalX), math.Abs(y-state.goalY)), nil
}

// reconstruct walks incoming connections from the finalized goal record
// back through the closed set and returns the start-to-goal node
// sequence.
func (state *searchState[N]) reconstruct(goalRecord *nodeRecord) ([]N, error) {
	indices := []int{goalRecord.node}
	current := goalRecord
	for current.node != state.start {
		if !current.hasIncoming {
			return nil, fmt.Errorf("%w: record for node %d has no incoming connection",
				ErrMalformedGraph, current.node)
		}
		predecessor, ok := state.closed[current.incoming.From]
		if !ok {
			return nil, fmt.Errorf("%w: predecessor %d of node %d was never finalized",
				ErrMalformedGraph, current.incoming.From, current.node)
		}
		if len(indices) > len(state.closed) {
			return nil, fmt.Errorf("%w: cycle while reconstructing path at node %d",
				ErrMalformedGraph, current.node)
		}
		indices = append(indices, predecessor.node)
		current = predecessor
	}

	for i, j := 0, len(indices)-1; i < j; i, j = i+1, j-1 {
		indices[i], indices[j] = indices[j], indices[i]
	}

	path := make([]N, len(indices))
	for i, index := range indices {
		node, err := state.engine.graph.NodeAt(index)
		if err != nil {
			return nil, fmt.Errorf("%w: node %d vanished during reconstruction: %v",
				ErrMalformedGraph, index, err)
		}
		path[i] = node
	}
	return path, nil
}
