package search

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Strategy selects how the engine orders its frontier. The numeric values
// are the selectors accepted from users.
type Strategy int

const (
	DepthFirst Strategy = iota + 1
	BreadthFirst
	Greedy
	AStar
)

// strategyTraits is the closed table behind every Strategy: which removal
// discipline it uses and where, if anywhere, it reorders.
type strategyTraits struct {
	name            string
	aliases         []string
	discipline      Discipline
	reorderChildren bool
	reorderFrontier bool
}

var strategies = map[Strategy]strategyTraits{
	DepthFirst:   {name: "depth-first", aliases: []string{"dfs"}, discipline: LIFO},
	BreadthFirst: {name: "breadth-first", aliases: []string{"bfs"}, discipline: FIFO},
	Greedy:       {name: "greedy", aliases: []string{"gbfs", "gb-fs", "greedy-best-first"}, discipline: LIFO, reorderChildren: true},
	AStar:        {name: "a-star", aliases: []string{"astar", "a*"}, discipline: LIFO, reorderFrontier: true},
}

// Strategies lists every valid strategy in selector order.
func Strategies() []Strategy {
	return []Strategy{DepthFirst, BreadthFirst, Greedy, AStar}
}

// Valid reports whether s is one of the four strategies.
func (s Strategy) Valid() bool {
	_, ok := strategies[s]
	return ok
}

// String returns the canonical name, e.g. "breadth-first".
func (s Strategy) String() string {
	if t, ok := strategies[s]; ok {
		return t.name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Discipline is the frontier removal order used by s.
func (s Strategy) Discipline() Discipline {
	return strategies[s].discipline
}

// reorderChildren runs the Greedy hook on freshly generated children.
func (s Strategy) reorderChildren(children []Node) {
	if strategies[s].reorderChildren {
		Reorder(children)
	}
}

// reorderFrontier runs the AStar hook on the whole pending sequence.
func (s Strategy) reorderFrontier(f *Frontier) {
	if strategies[s].reorderFrontier {
		Reorder(f.Nodes())
	}
}

// ParseStrategy accepts a selector ("1".."4"), a canonical name or an alias,
// case-insensitively. Returns ErrUnknownStrategy otherwise.
func ParseStrategy(text string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(text))
	if n, err := strconv.Atoi(key); err == nil {
		if s := Strategy(n); s.Valid() {
			return s, nil
		}
		return 0, fmt.Errorf("%w: %d", ErrUnknownStrategy, n)
	}
	for _, s := range Strategies() {
		t := strategies[s]
		if key == t.name {
			return s, nil
		}
		for _, a := range t.aliases {
			if key == a {
				return s, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, text)
}

// MarshalText encodes the canonical name.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText accepts anything ParseStrategy does.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// UnmarshalJSON accepts a selector number or any string ParseStrategy does.
func (s *Strategy) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		return s.UnmarshalText([]byte(text))
	}
	return s.UnmarshalText(bytes.TrimSpace(data))
}
