package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateLegalMoves_StartingPositionCount(t *testing.T) {
	pos := NewPosition()
	moves := pos.GenerateLegalMoves()
	assert.Equal(t, 20, moves.Len())
}

func TestGenerateLegalMoves_FiltersIllegalMoves(t *testing.T) {
	// Black king on e8, white queen pins nothing but checks along the
	// e-file; only evasions should appear, never a move that leaves the
	// king in check.
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4Q1K1 b - - 0 1")
	assert.NoError(t, err)

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := pos.MakeMove(m)
		enemyAttack := pos.AttackersByColor(pos.KingSquare[Black], White, pos.AllOccupied)
		pos.UnmakeMove(m, undo)
		assert.Equal(t, Bitboard(0), enemyAttack, "move %s left black king in check", m)
	}
}

func TestGenerateLegalMoves_PinnedPieceCannotMoveOffRay(t *testing.T) {
	// White king e1, white rook e2 pinned to it by black rook e8; black
	// king sits off to the side so it doesn't interfere with the pin.
	pos, err := ParseFEN("4r3/8/8/k7/8/8/4R3/4K3 w - - 0 1")
	assert.NoError(t, err)

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.From() == E2 {
			assert.Equal(t, E2.File(), m.To().File(), "pinned rook left the e-file: %s", m)
		}
	}
}

func TestGenerateLegalMoves_KingCannotCaptureDefendedPiece(t *testing.T) {
	// Black knight f2 is defended by black rook f8; white king e1 must
	// not be allowed to capture it and step into the rook's attack.
	pos, err := ParseFEN("k4r2/8/8/8/8/8/5n2/4K3 w - - 0 1")
	assert.NoError(t, err)

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		assert.NotEqual(t, F2, moves.Get(i).To(), "king captured a rook-defended piece")
	}
}

func TestComputeCheckInfo_SingleCheckerFromSlider(t *testing.T) {
	// Black king e8 is checked by the white bishop on h5 along the
	// h5-g6-f7-e8 diagonal; the rook on a1 is not aligned with e8 at all.
	pos, err := ParseFEN("4k3/8/8/7B/8/8/8/R3K3 b - - 0 1")
	assert.NoError(t, err)
	info := ComputeCheckInfo(pos)
	assert.Equal(t, 1, info.Checkers.PopCount())
}

func TestGenerateEvasions_MatchesLegalMovesWhenInCheck(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4Q1K1 b - - 0 1")
	assert.NoError(t, err)
	assert.True(t, pos.InCheck())

	legal := pos.GenerateLegalMoves()
	evasions := pos.GenerateEvasions()
	assert.Equal(t, legal.Len(), evasions.Len())
	for i := 0; i < legal.Len(); i++ {
		assert.True(t, evasions.Contains(legal.Get(i)))
	}
}

func TestGenerateCaptures_OnlyProducesCapturesAndPromotions(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	loud := pos.GenerateLoudMoves()
	for i := 0; i < loud.Len(); i++ {
		m := loud.Get(i)
		assert.True(t, m.IsCapture(pos) || m.IsPromotion() || m.IsEnPassant(),
			"loud move %s is neither capture, promotion, nor en passant", m)
	}
}

func TestIsCheckmate_BackRankMate(t *testing.T) {
	pos, err := ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	assert.NoError(t, err)
	assert.True(t, pos.IsCheckmate())
}

func TestIsCheckmate_NotMateWhenEscapeExists(t *testing.T) {
	pos, err := ParseFEN("6Rk/8/8/8/8/8/8/K7 b - - 0 1")
	assert.NoError(t, err)
	assert.False(t, pos.IsCheckmate())
}

func TestIsStalemate(t *testing.T) {
	// Classic stalemate: black king a8 boxed in, no checks, no moves.
	pos, err := ParseFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	assert.NoError(t, err)
	assert.True(t, pos.IsStalemate())
	assert.False(t, pos.InCheck())
}

func TestIsInsufficientMaterial_KvK(t *testing.T) {
	pos, err := ParseFEN("8/8/8/4k3/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, pos.IsInsufficientMaterial())
}

func TestIsInsufficientMaterial_KBvK(t *testing.T) {
	pos, err := ParseFEN("8/8/8/4k3/8/8/8/3KB3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, pos.IsInsufficientMaterial())
}

func TestIsInsufficientMaterial_KBvKB(t *testing.T) {
	pos, err := ParseFEN("8/8/3b4/4k3/8/8/8/3KB3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, pos.IsInsufficientMaterial())
}

func TestIsInsufficientMaterial_KNNvKIsSufficientIfTwoMinorsOneSide(t *testing.T) {
	// Two knights vs bare king is not covered by the simple <=1 rule on
	// either side with zero on the other, so it must report sufficient.
	pos, err := ParseFEN("8/8/8/4k3/8/8/8/2NNK3 w - - 0 1")
	assert.NoError(t, err)
	assert.False(t, pos.IsInsufficientMaterial())
}

func TestIsInsufficientMaterial_PawnPresentIsSufficient(t *testing.T) {
	pos, err := ParseFEN("8/8/8/4k3/8/4P3/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.False(t, pos.IsInsufficientMaterial())
}
