package game

// EvaluateLiberties scores a state as the number of the player's own
// liberties minus the opponent's liberties
func EvaluateLiberties(s State, player int) float64 {
	own, opponent := liberties(s, player)
	return float64(own - opponent)
}

// EvaluateAggressive weighs the opponent's liberties twice, favoring moves that
// chase the opponent over moves that keep options open
func EvaluateAggressive(s State, player int) float64 {
	own, opponent := liberties(s, player)
	return float64(own - 2*opponent)
}

func liberties(s State, player int) (own, opponent int) {
	own = len(s.Liberties(s.Loc(player)))
	opponent = len(s.Liberties(s.Loc(1 - player)))
	return own, opponent
}
