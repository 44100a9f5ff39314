package search

import (
	"strings"

	"github.com/katalvlaran/gosearch/grid"
)

// Discipline selects which pending node Remove returns.
type Discipline int

const (
	// LIFO removes the most recently added node (stack).
	LIFO Discipline = iota
	// FIFO removes the least recently added node (queue).
	FIFO
)

func (d Discipline) String() string {
	if d == FIFO {
		return "fifo"
	}
	return "lifo"
}

// Frontier is the ordered set of discovered but unexpanded nodes.
// Add always appends and never deduplicates; callers check ContainsState
// first.
type Frontier struct {
	discipline Discipline
	nodes      []Node
}

// NewFrontier returns an empty frontier with the given discipline.
func NewFrontier(d Discipline) *Frontier {
	return &Frontier{discipline: d}
}

// Discipline reports the removal discipline.
func (f *Frontier) Discipline() Discipline { return f.discipline }

// Add appends n.
func (f *Frontier) Add(n Node) {
	f.nodes = append(f.nodes, n)
}

// ContainsState reports whether a pending node sits on p.
// Complexity: O(len) per call.
func (f *Frontier) ContainsState(p grid.Position) bool {
	for _, n := range f.nodes {
		if n.State == p {
			return true
		}
	}
	return false
}

// Empty reports whether no node is pending.
func (f *Frontier) Empty() bool { return len(f.nodes) == 0 }

// Len returns the number of pending nodes.
func (f *Frontier) Len() int { return len(f.nodes) }

// Remove takes one node off the frontier according to the discipline.
// Returns ErrEmptyFrontier when nothing is pending.
func (f *Frontier) Remove() (Node, error) {
	if f.Empty() {
		return Node{}, ErrEmptyFrontier
	}
	var n Node
	if f.discipline == FIFO {
		n = f.nodes[0]
		f.nodes = f.nodes[1:]
	} else {
		last := len(f.nodes) - 1
		n = f.nodes[last]
		f.nodes = f.nodes[:last]
	}
	return n, nil
}

// Nodes exposes the backing slice, oldest first. It is valid until the next
// Add or Remove and may be reordered in place.
func (f *Frontier) Nodes() []Node { return f.nodes }

// Snapshot returns a copy of the pending nodes, oldest first.
func (f *Frontier) Snapshot() []Node {
	out := make([]Node, len(f.nodes))
	copy(out, f.nodes)
	return out
}

// String lists the pending nodes, oldest first.
func (f *Frontier) String() string {
	var sb strings.Builder
	for i, n := range f.nodes {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(n.String())
	}
	return sb.String()
}
