package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/gosearch/grid"
	"github.com/katalvlaran/gosearch/internal/server"
	"github.com/katalvlaran/gosearch/render"
	"github.com/katalvlaran/gosearch/search"
)

// App runs one gosearch invocation.
type App struct {
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
	cfg    *Config
}

// NewApp creates an App that prompts on in, prints to out and logs to logW.
func NewApp(in io.Reader, out, logW io.Writer, cfg *Config) *App {
	return &App{
		in:     bufio.NewReader(in),
		out:    out,
		logger: cfg.logger(logW),
		cfg:    cfg,
	}
}

// Run executes the configured invocation. A maze without a path yields
// search.ErrNoSolution after the outcome has been printed.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Listen != "" {
		return server.New(server.WithLogger(a.logger)).Run(ctx, a.cfg.Listen)
	}

	fmt.Fprintln(a.out, "\nWelcome to Go Search...")
	path, err := a.mazePath()
	if err != nil {
		return err
	}
	g, err := grid.Load(path)
	if err != nil {
		return err
	}
	a.logger.Debug("Maze loaded.", "path", path, "height", g.Height, "width", g.Width, "reachable", g.Reachable())

	fmt.Fprintln(a.out, "\nMaze:")
	if err := render.Text(a.out, g, nil); err != nil {
		return err
	}

	strategy, err := a.strategy()
	if err != nil {
		return err
	}
	step, err := a.stepMode()
	if err != nil {
		return err
	}

	opts := []search.Option{search.WithContext(ctx), search.WithLogger(a.logger)}
	if step {
		opts = append(opts, search.WithStepHook(a.pause))
	}

	fmt.Fprintln(a.out, "\nSolving... (please wait)")
	e, sol, solveErr := search.Solve(g, strategy, opts...)
	if solveErr != nil && !errors.Is(solveErr, search.ErrNoSolution) {
		return solveErr
	}

	if !a.cfg.NoImage {
		img := a.cfg.imagePath(path)
		if err := render.SavePNG(img, g, sol, e.Explored(), render.DefaultImageOptions()); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "image %s created\n", img)
	}

	if solveErr != nil {
		fmt.Fprintln(a.out, "No solution.")
	} else {
		fmt.Fprintln(a.out, "Solution:")
		if err := render.Text(a.out, g, sol); err != nil {
			return err
		}
	}
	fmt.Fprintln(a.out, "States Explored:", e.NumExplored())

	return solveErr
}
