package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/gosearch/search"
)

// ErrInputClosed is returned when a prompt hits the end of input.
var ErrInputClosed = errors.New("app: input closed while waiting for an answer")

// readLine reads one trimmed answer.
func (a *App) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// mazePath returns the configured maze or asks until an existing file is
// named.
func (a *App) mazePath() (string, error) {
	if a.cfg.MazePath != "" {
		if _, err := os.Stat(a.cfg.MazePath); err != nil {
			return "", fmt.Errorf("app: maze file: %w", err)
		}
		return a.cfg.MazePath, nil
	}
	for {
		fmt.Fprint(a.out, "\nEnter maze text file name (sample : maze1.txt): ")
		name, err := a.readLine()
		if err != nil {
			return "", err
		}
		if name == "" {
			continue
		}
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
		a.logger.Debug("Maze file not found.", "path", name)
	}
}

// strategy returns the configured strategy or asks until a valid one is
// chosen.
func (a *App) strategy() (search.Strategy, error) {
	if a.cfg.Strategy != 0 {
		return a.cfg.Strategy, nil
	}
	for {
		fmt.Fprintln(a.out, "Enter 1 for DFS\nEnter 2 for BFS\nEnter 3 for GB-FS\nEnter 4 for A* search")
		fmt.Fprint(a.out, "select search mode: ")
		answer, err := a.readLine()
		if err != nil {
			return 0, err
		}
		s, err := search.ParseStrategy(answer)
		if err == nil {
			return s, nil
		}
		a.logger.Debug("Rejected strategy.", "answer", answer)
	}
}

// stepMode returns whether to pause before every removal.
func (a *App) stepMode() (bool, error) {
	if a.cfg.Step || !a.cfg.AskStep {
		return a.cfg.Step, nil
	}
	fmt.Fprint(a.out, "\nselect 1 to stop after each progress, press Enter to continue: ")
	answer, err := a.readLine()
	if err != nil {
		return false, err
	}
	return answer == "1", nil
}

// pause prints the frontier and waits for Enter.
func (a *App) pause(view search.StepView) error {
	parts := make([]string, len(view.Frontier))
	for i, n := range view.Frontier {
		parts[i] = n.String()
	}
	fmt.Fprintf(a.out, "step %d, explored %d, frontier: %s ", view.Iteration, view.NumExplored, strings.Join(parts, ", "))
	_, err := a.readLine()
	return err
}
