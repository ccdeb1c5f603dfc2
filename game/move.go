package game

import "fmt"

type MoveKind int8

const (
	PlaceMove MoveKind = iota // Initial placement on any open cell
	JumpMove                  // Knight jump relative to the current location
)

// Move represents a move in the game. Value is the destination cell for a
// placement and the cell offset for a jump.
type Move struct {
	Kind  MoveKind
	Value int
}

// Knight offsets on the padded board, in enumeration order
var jumps = [...]int{
	2*stride + 1, 2*stride - 1,
	-2*stride + 1, -2*stride - 1,
	stride + 2, stride - 2,
	-stride + 2, -stride - 2,
}

func (m Move) String() string {
	if m.Kind == PlaceMove {
		x, y := Coordinates(m.Value)
		return fmt.Sprintf("place(%d,%d)", x, y)
	}
	dx, dy := offsetCoordinates(m.Value)
	return fmt.Sprintf("jump(%+d,%+d)", dx, dy)
}

func offsetCoordinates(offset int) (dx, dy int) {
	for _, row := range []int{-2, -1, 1, 2} {
		for _, col := range []int{-2, -1, 1, 2} {
			if row*stride+col == offset {
				return col, row
			}
		}
	}
	return 0, 0
}
