package render

import (
	"bufio"
	"io"

	"github.com/katalvlaran/gosearch/grid"
	"github.com/katalvlaran/gosearch/search"
)

// Glyphs used by Text.
const (
	WallGlyph  = '█'
	PathGlyph  = '*'
	EmptyGlyph = ' '
)

// Text writes g to w, one line per row. Cells on sol are drawn with
// PathGlyph; sol may be nil.
func Text(w io.Writer, g *grid.Grid, sol *search.Solution) error {
	onPath := pathSet(sol)
	bw := bufio.NewWriter(w)
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := grid.Position{Row: r, Col: c}
			var ch rune
			switch {
			case g.IsWall(p):
				ch = WallGlyph
			case p == g.Start:
				ch = grid.StartMarker
			case p == g.Goal:
				ch = grid.GoalMarker
			case onPath[p]:
				ch = PathGlyph
			default:
				ch = EmptyGlyph
			}
			if _, err := bw.WriteRune(ch); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func pathSet(sol *search.Solution) map[grid.Position]bool {
	set := make(map[grid.Position]bool, sol.Len())
	if sol != nil {
		for _, p := range sol.Cells {
			set[p] = true
		}
	}
	return set
}
