package grid

import "fmt"

// New constructs a Grid from a non-empty rectangular wall mask.
// The mask is deep-copied so later changes by the caller are not observed.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrOutOfBounds or
// ErrBlockedEndpoint for invalid input.
// Complexity: O(W×H) time and memory.
func New(walls [][]bool, start, goal Position) (*Grid, error) {
	if len(walls) == 0 || len(walls[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(walls), len(walls[0])
	cells := make([][]bool, h)
	for r, row := range walls {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells[r] = make([]bool, w)
		copy(cells[r], row)
	}

	g := &Grid{Height: h, Width: w, Start: start, Goal: goal, walls: cells}
	for _, p := range []Position{start, goal} {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: %v in %dx%d maze", ErrOutOfBounds, p, h, w)
		}
		if g.walls[p.Row][p.Col] {
			return nil, fmt.Errorf("%w: %v", ErrBlockedEndpoint, p)
		}
	}

	return g, nil
}

// InBounds reports whether p lies within the maze.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// IsWall reports whether p is impassable. Out-of-bounds cells count as walls.
func (g *Grid) IsWall(p Position) bool {
	if !g.InBounds(p) {
		return true
	}
	return g.walls[p.Row][p.Col]
}

// Neighbors returns the open cells reachable from p in one move, in the
// order up, down, left, right. Search tie-breaking depends on this order.
func (g *Grid) Neighbors(p Position) []Move {
	moves := make([]Move, 0, len(offsets))
	for _, o := range offsets {
		next := Position{Row: p.Row + o.dRow, Col: p.Col + o.dC}
		if g.IsWall(next) {
			continue
		}
		moves = append(moves, Move{Action: o.action, To: next})
	}
	return moves
}

// Walls returns a deep copy of the wall mask.
func (g *Grid) Walls() [][]bool {
	out := make([][]bool, g.Height)
	for r := range g.walls {
		out[r] = make([]bool, g.Width)
		copy(out[r], g.walls[r])
	}
	return out
}

// OpenCells counts the cells that are not walls.
func (g *Grid) OpenCells() int {
	n := 0
	for _, row := range g.walls {
		for _, wall := range row {
			if !wall {
				n++
			}
		}
	}
	return n
}
