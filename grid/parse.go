package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// maxLineBytes bounds a single maze line read by Parse.
const maxLineBytes = 1 << 20

// Parse reads a maze from r. Every line is a row (see scanRows for what ends
// a line); the maze is as wide as its
// longest line and shorter lines are padded with open cells. 'A' marks the
// start, 'B' the goal, ' ' an open cell and every other character a wall.
// Returns ErrMalformedMaze unless the text holds exactly one 'A' and one 'B'.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	sc.Split(scanRows)

	var lines [][]rune
	starts, goals := 0, 0
	for sc.Scan() {
		line := []rune(sc.Text())
		for _, ch := range line {
			switch ch {
			case StartMarker:
				starts++
			case GoalMarker:
				goals++
			}
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read maze: %w", err)
	}

	if starts != 1 {
		return nil, fmt.Errorf("%w: maze must have exactly one start point, found %d", ErrMalformedMaze, starts)
	}
	if goals != 1 {
		return nil, fmt.Errorf("%w: maze must have exactly one goal, found %d", ErrMalformedMaze, goals)
	}

	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}

	var start, goal Position
	walls := make([][]bool, len(lines))
	for r, line := range lines {
		walls[r] = make([]bool, width)
		for c, ch := range line {
			switch ch {
			case StartMarker:
				start = Position{Row: r, Col: c}
			case GoalMarker:
				goal = Position{Row: r, Col: c}
			case OpenMarker:
			default:
				walls[r][c] = true
			}
		}
	}

	return New(walls, start, goal)
}

// isRowBreak reports whether r ends a maze row. Besides '\n' and '\r' these
// are VT, FF, the file/group/record separators, NEL and the Unicode line and
// paragraph separators.
func isRowBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// scanRows is a bufio.SplitFunc yielding one row per line. "\r\n" counts as
// a single break. The final row needs no terminator.
func scanRows(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	for i := 0; i < len(data); {
		if !atEOF && !utf8.FullRune(data[i:]) {
			return 0, nil, nil
		}
		r, size := utf8.DecodeRune(data[i:])
		if !isRowBreak(r) {
			i += size
			continue
		}
		if r == '\r' {
			if i+1 == len(data) && !atEOF {
				return 0, nil, nil
			}
			if i+1 < len(data) && data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
		}
		return i + size, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// ParseString is Parse over an in-memory maze.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// Load reads the maze stored at path.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open maze: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
