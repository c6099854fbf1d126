package engine

import "github.com/hailam/chesscore/internal/board"

// Perft counts the legal leaf nodes reachable from pos at the given
// depth, the standard regression oracle for move generator correctness.
// It walks legal move generation, make, recurse, unmake — no
// transposition table or ordering, since the count must be exact.
func Perft(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := pos.GenerateLegalMoves()
	if depth == 1 {
		return uint64(moves.Len())
	}

	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := pos.MakeMove(m)
		nodes += Perft(pos, depth-1)
		pos.UnmakeMove(m, undo)
	}
	return nodes
}
