// Package search finds a path between the start and goal of a grid.Grid with
// one of four interchangeable strategies.
//
// What
//
//   - DepthFirst (1):   LIFO frontier, no reordering.
//   - BreadthFirst (2): FIFO frontier, no reordering.
//   - Greedy (3):       LIFO frontier; the children produced by each
//     expansion are reordered by Score before being pushed.
//   - AStar (4):        LIFO frontier; after the children are pushed the
//     whole frontier is reordered by Score.
//
// Score is Row + Col - Movement. Reorder is a stable exchange sort, so nodes
// with equal score keep the order in which they were generated. Neither
// informed strategy is guaranteed to return a shortest path.
//
// Determinism
//
//	Neighbors are generated up, down, left, right and the reorder is
//	stable, so two engines run on the same grid with the same strategy
//	return identical solutions and explored counts.
//
// Nodes
//
//	Every node created during a run lives in a per-run arena and refers to
//	its parent by handle. The solution is rebuilt by walking those handles
//	from the goal node back to the root.
//
// Step mode
//
//	WithStepHook installs a callback invoked once per iteration, before the
//	next node is removed, with a snapshot of the frontier. The engine waits
//	for the callback to return; a non-nil error aborts the run.
//
// Errors
//
//   - ErrNoSolution:      the frontier ran dry before the goal was reached.
//   - ErrEmptyFrontier:   Remove was called on an empty frontier.
//   - ErrEngineSpent:     Solve was called twice on one Engine.
//   - ErrUnknownStrategy: the strategy selector is not 1..4.
//   - ErrGridNil:         NewEngine received a nil grid.
//   - ErrStepAborted:     the step hook returned an error.
package search
