package grid

// Components finds all contiguous regions of open cells under 4-connectivity.
// Each region lists its cells in breadth-first order from its first cell in
// row-major order; regions themselves are ordered by that first cell.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]Position {
	seen := make([][]bool, g.Height)
	for r := range seen {
		seen[r] = make([]bool, g.Width)
	}

	var comps [][]Position
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if g.walls[r][c] || seen[r][c] {
				continue
			}
			seen[r][c] = true
			queue := []Position{{Row: r, Col: c}}
			for qi := 0; qi < len(queue); qi++ {
				for _, m := range g.Neighbors(queue[qi]) {
					if !seen[m.To.Row][m.To.Col] {
						seen[m.To.Row][m.To.Col] = true
						queue = append(queue, m.To)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// Reachable reports whether Goal lies in the same open region as Start.
// A false result means every strategy ends in failure.
func (g *Grid) Reachable() bool {
	for _, comp := range g.Components() {
		hasStart, hasGoal := false, false
		for _, p := range comp {
			hasStart = hasStart || p == g.Start
			hasGoal = hasGoal || p == g.Goal
		}
		if hasStart || hasGoal {
			return hasStart && hasGoal
		}
	}
	return false
}
