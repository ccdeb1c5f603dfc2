package game

import (
	"fmt"
	"isolation/meta"
	"math"
)

// Each row is padded with two blocked columns so knight jumps never wrap
const stride = meta.BOARD_WIDTH + 2
const size = stride*meta.BOARD_HEIGHT - 2

type bitboard [2]uint64

func (b bitboard) open(cell int) bool {
	if cell < 0 || cell >= size {
		return false
	}
	return b[cell>>6]&(1<<(uint(cell)&63)) != 0
}

func (b bitboard) close(cell int) bitboard {
	b[cell>>6] &^= 1 << (uint(cell) & 63)
	return b
}

var blankBoard = func() bitboard {
	var b bitboard
	for cell := 0; cell < size; cell++ {
		if cell%stride < meta.BOARD_WIDTH {
			b[cell>>6] |= 1 << (uint(cell) & 63)
		}
	}
	return b
}()

// Isolation is the state of a knight's Isolation game. It is a comparable
// value: equal positions hash equally when used as map keys.
type Isolation struct {
	board bitboard // Open cells
	ply   int
	locs  [2]int
}

// NewIsolation returns the initial state: a blank board with both players unplaced.
func NewIsolation() Isolation {
	return Isolation{
		board: blankBoard,
		locs:  [2]int{NoLocation, NoLocation},
	}
}

// Restore rebuilds a state from its persisted parts.
func Restore(board [2]uint64, ply int, locs [2]int) Isolation {
	return Isolation{board: bitboard(board), ply: ply, locs: locs}
}

func (s Isolation) Board() [2]uint64 {
	return s.board
}

func (s Isolation) PlyCount() int {
	return s.ply
}

func (s Isolation) Player() int {
	return s.ply % 2
}

func (s Isolation) Loc(player int) int {
	return s.locs[player]
}

func (s Isolation) Actions() []Action {
	return s.Liberties(s.locs[s.Player()])
}

func (s Isolation) Liberties(loc int) []Action {
	moves := []Action{}
	if loc == NoLocation {
		for cell := 0; cell < size; cell++ {
			if s.board.open(cell) {
				moves = append(moves, Move{Kind: PlaceMove, Value: cell})
			}
		}
		return moves
	}
	for _, offset := range jumps {
		if s.board.open(loc + offset) {
			moves = append(moves, Move{Kind: JumpMove, Value: offset})
		}
	}
	return moves
}

func (s Isolation) hasLiberties(player int) bool {
	loc := s.locs[player]
	if loc == NoLocation {
		return s.board != bitboard{}
	}
	for _, offset := range jumps {
		if s.board.open(loc + offset) {
			return true
		}
	}
	return false
}

func (s Isolation) Result(action Action) State {
	move, ok := action.(Move)
	if !ok {
		panic(fmt.Sprintf("unexpected action type %T", action))
	}

	player := s.Player()
	loc := s.locs[player]
	var dest int
	switch {
	case move.Kind == PlaceMove && loc == NoLocation:
		dest = move.Value
	case move.Kind == JumpMove && loc != NoLocation && isJump(move.Value):
		dest = loc + move.Value
	default:
		panic(fmt.Sprintf("illegal move %v for player %d", move, player))
	}
	if !s.board.open(dest) {
		panic(fmt.Sprintf("illegal move %v for player %d: cell %d is blocked", move, player, dest))
	}

	next := Isolation{board: s.board.close(dest), ply: s.ply + 1, locs: s.locs}
	next.locs[player] = dest
	return next
}

func isJump(offset int) bool {
	for _, jump := range jumps {
		if jump == offset {
			return true
		}
	}
	return false
}

// TerminalTest reports whether the player to move is out of liberties
func (s Isolation) TerminalTest() bool {
	return !s.hasLiberties(s.Player())
}

// Utility is +Inf if player has won, -Inf if player has lost and 0 otherwise.
// The player to move without liberties loses.
func (s Isolation) Utility(player int) float64 {
	if !s.TerminalTest() {
		return 0
	}
	if player == s.Player() {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// Coordinates converts a cell index to board column and row
func Coordinates(cell int) (x, y int) {
	return cell % stride, cell / stride
}

// Cell converts board column and row to a cell index
func Cell(x, y int) int {
	return y*stride + x
}
