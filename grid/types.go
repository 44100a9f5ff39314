package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates the wall mask has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: maze must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a start or goal position outside the mask.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrBlockedEndpoint indicates a start or goal position on a wall.
	ErrBlockedEndpoint = errors.New("grid: start and goal must be open cells")
	// ErrMalformedMaze indicates the text does not carry exactly one start
	// marker and exactly one goal marker.
	ErrMalformedMaze = errors.New("grid: malformed maze")
)

// Maze text markers.
const (
	StartMarker = 'A'
	GoalMarker  = 'B'
	OpenMarker  = ' '
)

// Position addresses a cell by row and column. Equality is structural.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String renders the position as "(row, col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Action is a single orthogonal move.
type Action int

const (
	// NoAction is carried only by the root of a search tree.
	NoAction Action = iota
	Up
	Down
	Left
	Right
)

var actionNames = [...]string{
	NoAction: "",
	Up:       "up",
	Down:     "down",
	Left:     "left",
	Right:    "right",
}

// String returns the lower-case direction label, or "" for NoAction.
func (a Action) String() string {
	if a < NoAction || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// MarshalText encodes the action as its direction label.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText accepts a direction label.
func (a *Action) UnmarshalText(text []byte) error {
	for i, name := range actionNames {
		if i != int(NoAction) && name == string(text) {
			*a = Action(i)
			return nil
		}
	}
	return fmt.Errorf("grid: unknown action %q", text)
}

// Move pairs an action with the cell it leads to.
type Move struct {
	Action Action
	To     Position
}

// Grid is an immutable maze. walls[r][c] == true marks an impassable cell.
type Grid struct {
	Height, Width int
	Start, Goal   Position
	walls         [][]bool
}

// offsets lists the candidate moves in the order they are generated.
var offsets = [...]struct {
	action   Action
	dRow, dC int
}{
	{Up, -1, 0},
	{Down, 1, 0},
	{Left, 0, -1},
	{Right, 0, 1},
}
