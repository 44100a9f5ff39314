package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gosearch/grid"
	"github.com/katalvlaran/gosearch/search"
)

// sameColor compares two colours after conversion to 16-bit RGBA.
func sameColor(t *testing.T, want, got color.Color, msgAndArgs ...interface{}) {
	t.Helper()
	wr, wg, wb, wa := want.RGBA()
	gr, gn, gb, ga := got.RGBA()
	assert.Equal(t, [4]uint32{wr, wg, wb, wa}, [4]uint32{gr, gn, gb, ga}, msgAndArgs...)
}

func centre(img image.Image, p grid.Position, size int) color.Color {
	return img.At(p.Col*size+size/2, p.Row*size+size/2)
}

// TestImage_CellClasses solves a small maze breadth-first and checks the
// colour at the centre of every kind of cell.
//
//	A . . #
//	# # . #
//	B . . .
func TestImage_CellClasses(t *testing.T) {
	g, err := grid.ParseString("A  #\n## #\nB   \n")
	require.NoError(t, err)
	e, sol, err := search.Solve(g, search.BreadthFirst)
	require.NoError(t, err)

	opts := DefaultImageOptions()
	opts.Labels = false
	img, err := Image(g, sol, e.Explored(), opts)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 4*50, 3*50), img.Bounds())
	pal := opts.Palette
	sameColor(t, pal.Start, centre(img, g.Start, 50), "start")
	sameColor(t, pal.Goal, centre(img, g.Goal, 50), "goal")
	sameColor(t, pal.Wall, centre(img, grid.Position{Row: 0, Col: 3}, 50), "wall")
	for _, p := range sol.Cells[:len(sol.Cells)-1] {
		sameColor(t, pal.Path, centre(img, p, 50), "path %v", p)
	}
	// (2,3) is expanded by breadth-first search but is not on the path.
	require.True(t, e.IsExplored(grid.Position{Row: 2, Col: 3}))
	sameColor(t, pal.Explored, centre(img, grid.Position{Row: 2, Col: 3}, 50), "explored")
	// the border between cells keeps the background colour
	sameColor(t, pal.Background, img.At(0, 0), "border")
}

// TestImage_Unexplored uses no solution and no explored set.
func TestImage_Unexplored(t *testing.T) {
	g, err := grid.ParseString("A B\n")
	require.NoError(t, err)

	opts := DefaultImageOptions()
	img, err := Image(g, nil, nil, opts)
	require.NoError(t, err)
	sameColor(t, opts.Palette.Empty, centre(img, grid.Position{Row: 0, Col: 1}, 50))
}

func TestImage_BadGeometry(t *testing.T) {
	g, err := grid.ParseString("AB")
	require.NoError(t, err)

	for _, o := range []ImageOptions{{CellSize: 0}, {CellSize: 4, Border: 2}, {CellSize: 10, Border: -1}} {
		_, err := Image(g, nil, nil, o)
		assert.Error(t, err)
	}
}

func TestWritePNGAndSave(t *testing.T) {
	g, err := grid.ParseString("A B\n")
	require.NoError(t, err)
	opts := DefaultImageOptions()
	opts.CellSize = 20

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, g, nil, nil, opts))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 60, 20), decoded.Bounds())

	path := filepath.Join(t.TempDir(), "maze.png")
	require.NoError(t, SavePNG(path, g, nil, nil, opts))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
