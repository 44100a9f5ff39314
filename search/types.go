package search

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/gosearch/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNoSolution is returned when every reachable cell was expanded
	// without meeting the goal. It is a normal outcome, not a fault.
	ErrNoSolution = errors.New("search: no solution")

	// ErrEmptyFrontier is returned by Frontier.Remove on an empty frontier.
	ErrEmptyFrontier = errors.New("search: empty frontier")

	// ErrEngineSpent is returned when Solve is called on an Engine that has
	// already run.
	ErrEngineSpent = errors.New("search: engine already ran; construct a new one")

	// ErrUnknownStrategy is returned for a selector outside 1..4.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrGridNil is returned when a nil grid is passed to NewEngine.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrStepAborted wraps an error returned by the step hook.
	ErrStepAborted = errors.New("search: aborted by step hook")
)

// State is the lifecycle of a single Solve call.
type State int

const (
	Running State = iota
	Solved
	Failed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Solved:
		return "solved"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// StepView is handed to the step hook once per iteration.
type StepView struct {
	// Iteration counts loop turns from 0.
	Iteration int
	// NumExplored is the number of nodes removed so far.
	NumExplored int
	// Frontier is a copy of the pending nodes, oldest first.
	Frontier []Node
}

// Option configures an Engine via functional arguments.
type Option func(*Options)

// Options holds hooks and collaborators for an Engine.
type Options struct {
	// Ctx is checked once per iteration; defaults to context.Background().
	Ctx context.Context

	// Logger receives debug records per expansion and one record per
	// outcome. Defaults to a logger that discards everything.
	Logger *slog.Logger

	// OnStep enables step mode when non-nil.
	OnStep func(view StepView) error

	// OnDequeue is called with each node right after removal.
	OnDequeue func(n Node)

	// OnEnqueue is called with each child right after it is pushed.
	OnEnqueue func(n Node)
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a discarding logger
//   - step mode off
//   - no-op OnDequeue and OnEnqueue hooks
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnStep:    nil,
		OnDequeue: func(Node) {},
		OnEnqueue: func(Node) {},
	}
}

// WithContext sets a context checked once per iteration.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes engine logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStepHook turns on step mode. fn runs before every removal and the
// engine does not continue until it returns.
func WithStepHook(fn func(view StepView) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithOnDequeue registers a callback for every removed node.
func WithOnDequeue(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnEnqueue registers a callback for every pushed child.
func WithOnEnqueue(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// Solution is the path found by a successful run. Actions and Cells run
// from the cell adjacent to the start up to and including the goal; the
// start itself is not listed.
type Solution struct {
	Actions []grid.Action
	Cells   []grid.Position
	// Movement is the goal node's path length and always equals len(Actions).
	Movement int
}

// Len returns the number of moves in the path.
func (s *Solution) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Actions)
}

// Contains reports whether p lies on the path.
func (s *Solution) Contains(p grid.Position) bool {
	if s == nil {
		return false
	}
	for _, c := range s.Cells {
		if c == p {
			return true
		}
	}
	return false
}
