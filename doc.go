// Package astar provides a generic A* shortest-path engine over an
// abstract graph contract.
//
// It exposes two main entry points:
//
//   - Engine.FindPath: run the search to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs
//     or debugging tools.
//
// The engine is generic over the caller's node handle type and touches a
// graph only through the Graph interface: resolving indices to nodes,
// listing outgoing connections, and reading node positions for heuristic
// evaluation. It never mutates the graph, and all search state is local
// to a single call, so concurrent searches over a read-only graph are
// safe.
package astar
