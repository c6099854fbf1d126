// Package engine implements the alpha-beta search engine.
package engine

import (
	"github.com/hailam/chesscore/internal/board"
)

// Piece values (centipawns), duplicated here from board.PieceValue for
// MVV-LVA move ordering, which indexes pieceValues by board.PieceType.
const (
	PawnValue   = 100
	KnightValue = 320
	BishopValue = 330
	RookValue   = 500
	QueenValue  = 900
)

var pieceValues = [7]int{PawnValue, KnightValue, BishopValue, RookValue, QueenValue, 0, 0}

// Evaluate scores pos from the viewpoint of the side to move, in
// centipawns. Terminal conditions are checked first, in the order draw
// detection (insufficient material, fifty-move rule), then no-legal-move
// outcomes (mate, stalemate); otherwise the position's incrementally
// maintained material-plus-PSQT totals decide the score.
func Evaluate(pos *board.Position) int {
	if pos.IsInsufficientMaterial() {
		return 0
	}
	if pos.HalfMoveClock >= 100 {
		return 0
	}
	if !pos.HasLegalMoves() {
		if pos.InCheck() {
			return -MateScore
		}
		return 0
	}

	us, them := pos.SideToMove, pos.SideToMove.Other()
	ph := pos.Phase
	ours := pos.PieceScore[us] + pos.SqScore[us][ph]
	theirs := pos.PieceScore[them] + pos.SqScore[them][ph]
	return ours - theirs
}
