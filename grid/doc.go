// Package grid models a rectangular maze of open and wall cells with a single
// start and a single goal, and reads such mazes from plain text.
//
// What:
//
//   - Grid wraps an H×W wall mask together with Start and Goal positions.
//   - Neighbors yields the open orthogonal moves of a cell in the fixed
//     order up, down, left, right.
//   - Parse/Load build a Grid from text where 'A' marks the start, 'B' the
//     goal, ' ' an open cell and any other character a wall.
//
// Why:
//
//   - The search engine only ever asks three questions of the maze: is the
//     cell inside, is it a wall, and where can I move from here.
//
// Complexity:
//
//   - New, Parse:   O(W×H) time and memory.
//   - InBounds:     O(1).
//   - Neighbors:    O(1), at most four moves.
//
// Errors:
//
//   - ErrEmptyGrid:       mask has no rows or no columns.
//   - ErrNonRectangular:  mask rows differ in length.
//   - ErrOutOfBounds:     start or goal outside the mask.
//   - ErrBlockedEndpoint: start or goal placed on a wall.
//   - ErrMalformedMaze:   text does not hold exactly one 'A' and one 'B'.
package grid
