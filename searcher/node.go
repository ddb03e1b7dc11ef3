package searcher

import (
	"fmt"
	"math"
	"threechess/game"
)

type status int

const (
	unexpanded status = iota
	expanded
	terminal // Game over, or no legal move for the player on turn
)

type node struct {
	parent   *node
	player   game.Colour // Player on turn at this node
	move     game.Move   // Move from the parent into this node, zero for the root
	children []*node
	status   status
	rewards  float64
	visits   int
}

func newNode(parent *node, player game.Colour, move game.Move) *node {
	return &node{
		parent: parent,
		player: player,
		move:   move,
		status: unexpanded,
	}
}

func (n *node) addChild(child *node) {
	n.children = append(n.children, child)
}

// expand adds a child for every legal move of n.player. state must be positioned at n and is
// left unchanged. Returns the number of children added.
func (n *node) expand(state game.State) int {
	if state.GameOver() {
		n.status = terminal
		return 0
	}

	for _, start := range state.Positions(n.player) {
		piece, ok := state.PieceAt(start)
		if !ok {
			continue
		}
		for _, step := range piece.Type.Steps() {
			end := start
			for i := 0; i < piece.Type.StepReps(); i++ {
				next, err := state.Step(piece, step, end, start.Colour != end.Colour)
				if err != nil { // Further repetitions are off the board too
					break
				}
				end = next
				if !state.IsLegalMove(start, end) {
					continue
				}
				n.addChild(newNode(n, probeTurn(state, start, end), game.Move{Start: start, End: end}))
			}
		}
	}

	if len(n.children) == 0 {
		n.status = terminal
	} else {
		n.status = expanded
	}
	return len(n.children)
}

// probeTurn plays a legal move, reads who is on turn next and takes the move back
func probeTurn(state game.State, start, end game.Position) game.Colour {
	if err := state.Move(start, end); err != nil {
		panic(fmt.Sprintf("legal move %s-%s rejected: %v", start, end, err))
	}
	next := state.Turn()
	if err := state.Undo(); err != nil {
		panic(fmt.Sprintf("cannot undo %s-%s: %v", start, end, err))
	}
	return next
}

// pickChild returns the first unvisited child, otherwise the child with the highest UCB1
// score. A node without children returns itself.
func (n *node) pickChild() *node {
	if len(n.children) == 0 {
		return n
	}

	for _, child := range n.children {
		if child.visits == 0 {
			return child
		}
	}

	policy := newUCT(CSquared, float64(n.visits))
	best := n.children[0]
	maxScore := math.Inf(-1)
	for _, child := range n.children {
		if score := policy.evaluate(child.rewards, float64(child.visits)); score > maxScore {
			maxScore = score
			best = child
		}
	}
	return best
}

func (n *node) update(reward float64) {
	n.rewards += reward
	n.visits++
}

func (n *node) average() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.rewards / float64(n.visits)
}

// backup credits reward to leaf and every ancestor up to the root. The reward keeps its sign
// at every level.
func backup(leaf *node, reward float64) {
	for node := leaf; node != nil; node = node.parent {
		node.update(reward)
	}
}

// bestChild picks the visited child with the highest average reward, keeping the first on
// ties. If no child has been visited yet it falls back to the first child.
func (n *node) bestChild() *node {
	if len(n.children) == 0 {
		return nil
	}

	var best *node
	for _, child := range n.children {
		if child.visits == 0 {
			continue
		}
		if best == nil || child.average() > best.average() {
			best = child
		}
	}
	if best == nil {
		return n.children[0]
	}
	return best
}
