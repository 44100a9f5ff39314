package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gosearch/grid"
	"github.com/katalvlaran/gosearch/search"
)

// Palette holds the fill colour of every cell class.
type Palette struct {
	Background color.Color
	Wall       color.Color
	Start      color.Color
	Goal       color.Color
	Path       color.Color
	Explored   color.Color
	Empty      color.Color
}

// DefaultPalette returns the standard colours.
func DefaultPalette() Palette {
	return Palette{
		Background: color.Black,
		Wall:       color.RGBA{40, 40, 40, 255},
		Start:      color.RGBA{255, 0, 0, 255},
		Goal:       color.RGBA{0, 171, 28, 255},
		Path:       color.RGBA{220, 235, 113, 255},
		Explored:   color.RGBA{212, 97, 85, 255},
		Empty:      color.RGBA{237, 240, 252, 255},
	}
}

// ImageOptions controls cell geometry, labels and colours.
type ImageOptions struct {
	// CellSize is the side of a cell in pixels.
	CellSize int
	// Border is the gap left around each cell's square.
	Border int
	// Labels draws "row-col" in every cell.
	Labels  bool
	Palette Palette
}

// DefaultImageOptions returns 50px cells with a 2px border and labels on.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{CellSize: 50, Border: 2, Labels: true, Palette: DefaultPalette()}
}

// Image renders g with the solution path and the explored cells of a
// finished run. sol and explored may be nil.
func Image(g *grid.Grid, sol *search.Solution, explored []grid.Position, opts ImageOptions) (image.Image, error) {
	if opts.CellSize <= 0 || opts.Border < 0 || 2*opts.Border >= opts.CellSize {
		return nil, fmt.Errorf("render: invalid cell geometry size=%d border=%d", opts.CellSize, opts.Border)
	}
	size, border := opts.CellSize, opts.Border
	pal := opts.Palette

	onPath := pathSet(sol)
	seen := make(map[grid.Position]bool, len(explored))
	for _, p := range explored {
		seen[p] = true
	}

	dc := gg.NewContext(g.Width*size, g.Height*size)
	dc.SetColor(pal.Background)
	dc.Clear()

	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := grid.Position{Row: r, Col: c}
			fill, ink := pal.Empty, color.Color(color.RGBA{255, 0, 0, 255})
			switch {
			case g.IsWall(p):
				fill, ink = pal.Wall, color.White
			case p == g.Start:
				fill, ink = pal.Start, color.Black
			case p == g.Goal:
				fill, ink = pal.Goal, color.Black
			case onPath[p]:
				fill, ink = pal.Path, color.Black
			case seen[p]:
				fill, ink = pal.Explored, color.Black
			}

			x, y := float64(c*size+border), float64(r*size+border)
			side := float64(size - 2*border)
			dc.SetColor(fill)
			dc.DrawRectangle(x, y, side, side)
			dc.Fill()

			if opts.Labels {
				dc.SetColor(ink)
				dc.DrawStringAnchored(fmt.Sprintf("%d-%d", r, c), x+2, y+2, 0, 1)
			}
		}
	}
	return dc.Image(), nil
}

// WritePNG renders with Image and encodes the result as PNG to w.
func WritePNG(w io.Writer, g *grid.Grid, sol *search.Solution, explored []grid.Position, opts ImageOptions) error {
	img, err := Image(g, sol, explored, opts)
	if err != nil {
		return err
	}
	dc := gg.NewContextForImage(img)
	return dc.EncodePNG(w)
}

// SavePNG renders with Image and writes the PNG to path.
func SavePNG(path string, g *grid.Grid, sol *search.Solution, explored []grid.Position, opts ImageOptions) error {
	img, err := Image(g, sol, explored, opts)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}
