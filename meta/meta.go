// meta/meta.go
package meta

import "time"

// BOARD_WIDTH and BOARD_HEIGHT define the playable area of the board.
const BOARD_WIDTH = 11
const BOARD_HEIGHT = 9

// BOOK_PLY_LIMIT defines the plies below which the opening book is consulted.
const BOOK_PLY_LIMIT = 6

// BOOK_ROUNDS defines the default number of rollouts when building the book.
const BOOK_ROUNDS = 100000

// BOOK_DEPTH defines the default depth explored before a rollout.
const BOOK_DEPTH = 6

// TIME_LIMIT defines the search budget per move.
const TIME_LIMIT = 150 * time.Millisecond

// MAX_TURNS caps a single match.
const MAX_TURNS = BOARD_WIDTH * BOARD_HEIGHT
