package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/gosearch/internal/app"
	"github.com/katalvlaran/gosearch/internal/config"
	"github.com/katalvlaran/gosearch/search"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Flags given explicitly override the profile named by -config.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gosearch", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gosearch - find a path through a text maze.

Usage:
  gosearch [options] [MAZE_PATH]

Arguments:
  MAZE_PATH
    Text maze: 'A' start, 'B' goal, ' ' open, anything else a wall.
    Prompted for when omitted.

Strategies:
  1 dfs, 2 bfs, 3 greedy, 4 a-star

Options:
`)
		flagSet.PrintDefaults()
	}

	mazeFlag := flagSet.String("maze", "", "Path to the maze text file.")
	strategyFlag := flagSet.String("strategy", "", "Search strategy: 1-4 or dfs, bfs, greedy, a-star. Prompted for when empty.")
	stepFlag := flagSet.Bool("step", false, "Pause before every expansion and print the frontier.")
	imageFlag := flagSet.String("image", "", "PNG output path. Defaults to the maze path with a .png extension.")
	noImageFlag := flagSet.Bool("no-image", false, "Do not write a PNG.")
	configFlag := flagSet.String("config", "", "HCL run profile.")
	listenFlag := flagSet.String("listen", "", "Serve the HTTP API on this address instead of solving once.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	if flagSet.NArg() > 1 {
		return nil, false, usageError("expected at most one maze path, got %d", flagSet.NArg())
	}

	set := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg := app.Config{}
	if *configFlag != "" {
		p, err := config.LoadProfile(*configFlag)
		if err != nil {
			return nil, false, usageError("%s", err.Error())
		}
		slog.Debug("Run profile loaded.", "path", *configFlag)
		cfg = app.Config{
			MazePath:  p.Maze,
			Strategy:  p.Strategy,
			Step:      p.Step,
			ImagePath: p.Image,
			NoImage:   p.NoImage,
			Listen:    p.Listen,
			LogLevel:  p.LogLevel,
			LogFormat: p.LogFormat,
		}
	}

	if set["maze"] {
		cfg.MazePath = *mazeFlag
	} else if flagSet.NArg() == 1 {
		cfg.MazePath = flagSet.Arg(0)
	}
	if set["strategy"] {
		s, err := search.ParseStrategy(*strategyFlag)
		if err != nil {
			return nil, false, usageError("invalid strategy %q: must be 1-4 or dfs, bfs, greedy, a-star", *strategyFlag)
		}
		cfg.Strategy = s
	}
	if set["step"] {
		cfg.Step = *stepFlag
	}
	if set["image"] {
		cfg.ImagePath = *imageFlag
	}
	if set["no-image"] {
		cfg.NoImage = *noImageFlag
	}
	if set["listen"] {
		cfg.Listen = *listenFlag
	}
	if set["log-level"] || cfg.LogLevel == "" {
		cfg.LogLevel = strings.ToLower(*logLevelFlag)
	}
	if set["log-format"] || cfg.LogFormat == "" {
		cfg.LogFormat = strings.ToLower(*logFormatFlag)
	}
	cfg.AskStep = cfg.MazePath == "" && !set["step"]

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	slog.Debug("CLI parameter validation complete.")

	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", appConfig)
	return appConfig, false, nil
}
