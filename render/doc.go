// Package render draws a grid and the outcome of a search, either as text
// with one glyph per cell or as a PNG with one coloured square per cell.
//
// Cells are classified with the same precedence in both outputs:
// wall, start, goal, path, explored (image only), empty.
package render
