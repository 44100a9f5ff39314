package grid

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_Basic covers marker placement, wall detection and padding of
// short lines.
//
//	##A#
//	#  B
//	#
func TestParse_Basic(t *testing.T) {
	g, err := ParseString("##A#\n#  B\n#\n")
	require.NoError(t, err)

	assert.Equal(t, 3, g.Height)
	assert.Equal(t, 4, g.Width)
	assert.Equal(t, Position{0, 2}, g.Start)
	assert.Equal(t, Position{1, 3}, g.Goal)

	want := [][]bool{
		{true, true, false, true},
		{true, false, false, false},
		{true, false, false, false},
	}
	assert.Equal(t, want, g.Walls())
}

// TestParse_CRLF accepts Windows line endings.
func TestParse_CRLF(t *testing.T) {
	g, err := ParseString("A #\r\n  B\r\n")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, Position{1, 2}, g.Goal)
}

// TestParse_RowBreaks treats every line separator, not only '\n', as the end
// of a row.
func TestParse_RowBreaks(t *testing.T) {
	cases := map[string]struct {
		text   string
		height int
		goal   Position
	}{
		"lone CR":     {"A \r B", 2, Position{1, 1}},
		"VT and FS":   {"A \x0b\x1c B", 3, Position{2, 1}},
		"form feed":   {"A\fB\f", 2, Position{1, 0}},
		"NEL":         {"A \u0085 B\n", 2, Position{1, 1}},
		"LS and PS":   {"A\u2028 \u2029B", 3, Position{2, 0}},
		"CR then LF":  {"A\r\rB\r\n", 3, Position{2, 0}},
		"no trailing": {"A\n B", 2, Position{1, 1}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := ParseString(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.height, g.Height)
			assert.Equal(t, tc.goal, g.Goal)
		})
	}
}

// TestParse_ByteAtATime splits CRLF and multi-byte separators across reads.
func TestParse_ByteAtATime(t *testing.T) {
	g, err := Parse(iotest.OneByteReader(strings.NewReader("A #\r\n \u2028  B\r\n")))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, Position{2, 2}, g.Goal)
	assert.False(t, g.IsWall(Position{1, 0}))
}

// TestParse_Malformed checks the marker count rules.
func TestParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"no start":   "  B\n",
		"two starts": "A A B\n",
		"no goal":    "A  \n",
		"two goals":  "AB\nB \n",
		"empty":      "",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseString(text)
			assert.ErrorIs(t, err, ErrMalformedMaze)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte("A B\n"), 0o600))

	g, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Position{0, 0}, g.Start)
	assert.Equal(t, Position{0, 2}, g.Goal)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
