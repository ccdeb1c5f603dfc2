package builder

import (
	"isolation/game"
	"math"
)

type chainAction struct{}

func (chainAction) String() string { return "next" }

// chain is a game with a single move per turn that ends after length plies.
// The player to move at the end loses.
type chain struct {
	ply    int
	length int
}

func (c chain) Actions() []game.Action {
	if c.TerminalTest() {
		return nil
	}
	return []game.Action{chainAction{}}
}

func (c chain) Result(game.Action) game.State {
	return chain{ply: c.ply + 1, length: c.length}
}

func (c chain) TerminalTest() bool {
	return c.ply >= c.length
}

func (c chain) Utility(player int) float64 {
	if !c.TerminalTest() {
		return 0
	}
	if player == c.Player() {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

func (c chain) Player() int                { return c.ply % 2 }
func (c chain) PlyCount() int              { return c.ply }
func (c chain) Loc(int) int                { return game.NoLocation }
func (c chain) Liberties(int) []game.Action { return nil }
