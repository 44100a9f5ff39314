package search

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/gosearch/grid"
)

// Engine runs one search over an immutable grid. An Engine is single-use:
// NumExplored, Explored and Solution describe its only run, and a second
// Solve returns ErrEngineSpent. Engines are not safe for concurrent use.
type Engine struct {
	grid        *grid.Grid
	opts        Options
	state       State
	ran         bool
	numExplored int
	explored    map[grid.Position]struct{}
	solution    *Solution
}

// NewEngine prepares an engine for g, applying any number of Options.
// Returns ErrGridNil if g is nil.
func NewEngine(g *grid.Grid, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{
		grid:     g,
		opts:     o,
		state:    Running,
		explored: make(map[grid.Position]struct{}),
	}, nil
}

// walker carries the mutable state of one Solve call.
type walker struct {
	e        *Engine
	strategy Strategy
	frontier *Frontier
	nodes    *arena
}

// Solve searches from the grid's start to its goal with strategy s.
// On success the engine is Solved and the returned Solution is also kept in
// Solution(). Otherwise the engine is Failed and the error is ErrNoSolution,
// ErrStepAborted (wrapping the hook error), the context error, or a wrapped
// ErrEmptyFrontier.
func (e *Engine) Solve(s Strategy) (*Solution, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	if e.ran {
		return nil, ErrEngineSpent
	}
	e.ran = true

	w := &walker{
		e:        e,
		strategy: s,
		frontier: NewFrontier(s.Discipline()),
		nodes:    newArena(e.grid.OpenCells()),
	}
	w.frontier.Add(w.nodes.root(e.grid.Start))

	log := e.opts.Logger.With("strategy", s.String())
	log.Debug("search started", "start", e.grid.Start, "goal", e.grid.Goal)

	sol, err := w.loop()
	if err != nil {
		e.state = Failed
		log.Info("search failed", "explored", e.numExplored, "error", err)
		return nil, err
	}
	e.state = Solved
	e.solution = sol
	log.Info("search solved", "explored", e.numExplored, "length", sol.Len())
	return sol, nil
}

// loop repeats step-pause, remove, goal check and expansion until the goal
// is removed or the frontier runs dry.
func (w *walker) loop() (*Solution, error) {
	e := w.e
	for iter := 0; ; iter++ {
		select {
		case <-e.opts.Ctx.Done():
			return nil, e.opts.Ctx.Err()
		default:
		}

		if e.opts.OnStep != nil {
			view := StepView{Iteration: iter, NumExplored: e.numExplored, Frontier: w.frontier.Snapshot()}
			if err := e.opts.OnStep(view); err != nil {
				return nil, fmt.Errorf("%w at iteration %d: %w", ErrStepAborted, iter, err)
			}
		}

		if w.frontier.Empty() {
			return nil, ErrNoSolution
		}
		node, err := w.frontier.Remove()
		if err != nil {
			return nil, fmt.Errorf("search: iteration %d: %w", iter, err)
		}
		e.numExplored++
		e.opts.OnDequeue(node)
		e.opts.Logger.Debug("node removed", "state", node.State, "movement", node.Movement, "pending", w.frontier.Len())

		if node.State == e.grid.Goal {
			return w.nodes.solution(node), nil
		}
		e.explored[node.State] = struct{}{}

		children := w.expand(node)
		w.strategy.reorderChildren(children)
		for _, c := range children {
			w.frontier.Add(c)
			e.opts.OnEnqueue(c)
		}
		w.strategy.reorderFrontier(w.frontier)
	}
}

// expand creates a child for every open neighbour that is neither pending
// nor already explored, in up, down, left, right order.
func (w *walker) expand(n Node) []Node {
	moves := w.e.grid.Neighbors(n.State)
	children := make([]Node, 0, len(moves))
	for _, m := range moves {
		if w.frontier.ContainsState(m.To) {
			continue
		}
		if _, done := w.e.explored[m.To]; done {
			continue
		}
		children = append(children, w.nodes.child(n, m))
	}
	return children
}

// State reports the engine's lifecycle state.
func (e *Engine) State() State { return e.state }

// NumExplored returns how many nodes were removed from the frontier,
// including the goal node on success.
func (e *Engine) NumExplored() int { return e.numExplored }

// Solution returns the path of a Solved engine, or nil.
func (e *Engine) Solution() *Solution { return e.solution }

// Grid returns the grid being searched.
func (e *Engine) Grid() *grid.Grid { return e.grid }

// Explored returns the fully expanded cells in row-major order.
func (e *Engine) Explored() []grid.Position {
	out := make([]grid.Position, 0, len(e.explored))
	for p := range e.explored {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b grid.Position) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})
	return out
}

// IsExplored reports whether p was fully expanded.
func (e *Engine) IsExplored(p grid.Position) bool {
	_, ok := e.explored[p]
	return ok
}

// Solve is a convenience wrapper that builds a fresh Engine for g and runs
// strategy s on it.
func Solve(g *grid.Grid, s Strategy, opts ...Option) (*Engine, *Solution, error) {
	e, err := NewEngine(g, opts...)
	if err != nil {
		return nil, nil, err
	}
	sol, err := e.Solve(s)
	return e, sol, err
}
