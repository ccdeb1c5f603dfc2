package searcher

import (
	"fmt"
	"isolation/game"
	"math"
)

type mockAction struct {
	id int
}

func (m mockAction) String() string {
	return fmt.Sprintf("action%d", m.id)
}

// mockNode is a node of an explicit game tree. Leaves are terminal with value
// as utility for player 0; interior values are heuristic scores for player 0.
type mockNode struct {
	children []*mockNode
	value    float64
}

type mockState struct {
	node *mockNode
	ply  int
}

func (m mockState) Actions() []game.Action {
	actions := make([]game.Action, len(m.node.children))
	for i := range m.node.children {
		actions[i] = mockAction{id: i}
	}
	return actions
}

func (m mockState) Result(action game.Action) game.State {
	return mockState{node: m.node.children[action.(mockAction).id], ply: m.ply + 1}
}

func (m mockState) TerminalTest() bool {
	return len(m.node.children) == 0
}

func (m mockState) Utility(player int) float64 {
	if player == 0 {
		return m.node.value
	}
	return -m.node.value
}

func (m mockState) Player() int                { return m.ply % 2 }
func (m mockState) PlyCount() int              { return m.ply }
func (m mockState) Loc(player int) int         { return game.NoLocation }
func (m mockState) Liberties(int) []game.Action { return nil }

func mockEvaluate(s game.State, player int) float64 {
	value := s.(mockState).node.value
	if player == 0 {
		return value
	}
	return -value
}

func leaf(value float64) *mockNode {
	return &mockNode{value: value}
}

func win() *mockNode {
	return &mockNode{value: math.Inf(1)}
}

// scored gives an interior node a heuristic value
func scored(value float64, children ...*mockNode) *mockNode {
	return &mockNode{children: children, value: value}
}

func branch(children ...*mockNode) *mockNode {
	return &mockNode{children: children}
}

// minimax is an unpruned reference search used to check alpha-beta
func minimax(state game.State, depth int, maximizing bool, player int, evaluate game.Evaluate) float64 {
	if state.TerminalTest() {
		return state.Utility(player)
	}
	if depth <= 0 {
		return evaluate(state, player)
	}
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for _, action := range state.Actions() {
		v := minimax(state.Result(action), depth-1, !maximizing, player, evaluate)
		if maximizing {
			best = max(best, v)
		} else {
			best = min(best, v)
		}
	}
	return best
}

func minimaxSearch(state game.State, depth int, evaluate game.Evaluate) game.Action {
	player := state.Player()
	var bestMove game.Action
	var bestValue float64
	for i, action := range state.Actions() {
		value := minimax(state.Result(action), depth-1, false, player, evaluate)
		if i == 0 || value > bestValue {
			bestValue = value
			bestMove = action
		}
	}
	return bestMove
}
