package search

import (
	"fmt"

	"github.com/katalvlaran/gosearch/grid"
)

// NodeID is a handle into the arena of a single run.
type NodeID int

// NoParent is the parent handle of the root node.
const NoParent NodeID = -1

// Node is one discovered cell together with how it was reached.
// Nodes are created by the engine and never modified afterwards.
type Node struct {
	ID       NodeID
	State    grid.Position
	Parent   NodeID
	Action   grid.Action
	Movement int
}

// Score is the ordering key of the informed strategies: Row + Col - Movement.
// Lower scores are expanded first.
func (n Node) Score() int {
	return n.State.Row + n.State.Col - n.Movement
}

// String renders the node as "[(r, c) m=M w=S]".
func (n Node) String() string {
	return fmt.Sprintf("[%v m=%d w=%d]", n.State, n.Movement, n.Score())
}

// arena owns every node of one run; a NodeID is an index into nodes.
type arena struct {
	nodes []Node
}

func newArena(capacity int) *arena {
	return &arena{nodes: make([]Node, 0, capacity)}
}

// root allocates the parentless start node.
func (a *arena) root(p grid.Position) Node {
	n := Node{ID: NodeID(len(a.nodes)), State: p, Parent: NoParent, Action: grid.NoAction}
	a.nodes = append(a.nodes, n)
	return n
}

// child allocates a node one move away from parent.
func (a *arena) child(parent Node, m grid.Move) Node {
	n := Node{
		ID:       NodeID(len(a.nodes)),
		State:    m.To,
		Parent:   parent.ID,
		Action:   m.Action,
		Movement: parent.Movement + 1,
	}
	a.nodes = append(a.nodes, n)
	return n
}

// get returns the node behind id.
func (a *arena) get(id NodeID) Node {
	return a.nodes[id]
}

// solution walks parent handles from n back to the root and returns the
// actions and cells in start-to-goal order. The root is excluded.
func (a *arena) solution(n Node) *Solution {
	sol := &Solution{
		Actions:  make([]grid.Action, 0, n.Movement),
		Cells:    make([]grid.Position, 0, n.Movement),
		Movement: n.Movement,
	}
	for cur := n; cur.Parent != NoParent; cur = a.get(cur.Parent) {
		sol.Actions = append(sol.Actions, cur.Action)
		sol.Cells = append(sol.Cells, cur.State)
	}
	for i, j := 0, len(sol.Actions)-1; i < j; i, j = i+1, j-1 {
		sol.Actions[i], sol.Actions[j] = sol.Actions[j], sol.Actions[i]
		sol.Cells[i], sol.Cells[j] = sol.Cells[j], sol.Cells[i]
	}
	return sol
}
