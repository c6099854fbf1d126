package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertRoundTrip makes m on pos, asserts the resulting hash matches a
// from-scratch recompute, then unmakes it and asserts every field is
// restored byte-for-byte. pos is left in its pre-move state.
func assertRoundTrip(t *testing.T, pos *Position, m Move) *Position {
	t.Helper()
	before := *pos

	undo := pos.MakeMove(m)
	assert.True(t, undo.Valid)
	assert.Equal(t, pos.ComputeHash(), pos.Hash, "hash drifted from a fresh recompute after MakeMove")

	after := *pos
	pos.UnmakeMove(m, undo)
	assert.Equal(t, before, *pos, "UnmakeMove did not restore the position exactly")

	// Return the post-move state as a separate copy so callers can
	// inspect it without disturbing pos.
	return &after
}

func TestMakeMove_SimplePush(t *testing.T) {
	pos := NewPosition()
	m := NewMove(E2, E4)
	assertRoundTrip(t, pos, m)

	pos.MakeMove(m)
	assert.Equal(t, NoPiece, pos.PieceAt(E2))
	assert.Equal(t, NewPiece(Pawn, White), pos.PieceAt(E4))
	assert.Equal(t, Black, pos.SideToMove)
	assert.Equal(t, E3, pos.EnPassant)
}

func TestMakeMove_Capture(t *testing.T) {
	pos, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	assert.NoError(t, err)

	m := NewMove(E4, D5)
	before := pos.Material()
	assertRoundTrip(t, pos, m)

	undo := pos.MakeMove(m)
	assert.Equal(t, NewPiece(Pawn, Black), undo.CapturedPiece)
	assert.Equal(t, NewPiece(Pawn, White), pos.PieceAt(D5))
	assert.Greater(t, pos.Material(), before)
}

func TestMakeMove_DoublePawnPushSetsEnPassant(t *testing.T) {
	pos := NewPosition()
	m := NewMove(D2, D4)
	pos.MakeMove(m)
	assert.Equal(t, D3, pos.EnPassant)
}

func TestMakeMove_EnPassant(t *testing.T) {
	pos, err := ParseFEN("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 2")
	assert.NoError(t, err)

	m := NewEnPassant(D4, E3)
	assertRoundTrip(t, pos, m)

	undo := pos.MakeMove(m)
	assert.Equal(t, NewPiece(Pawn, White), undo.CapturedPiece)
	assert.Equal(t, NoPiece, pos.PieceAt(E4))
	assert.Equal(t, NewPiece(Pawn, Black), pos.PieceAt(E3))
}

func TestMakeMove_Promotion(t *testing.T) {
	pos, err := ParseFEN("8/P7/8/8/8/8/2k5/K7 w - - 0 1")
	assert.NoError(t, err)

	m := NewPromotion(A7, A8, Queen)
	assertRoundTrip(t, pos, m)

	pos.MakeMove(m)
	assert.Equal(t, NewPiece(Queen, White), pos.PieceAt(A8))
}

func TestMakeMove_CastlingKingside(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	m := NewCastling(E1, G1)
	assertRoundTrip(t, pos, m)

	pos.MakeMove(m)
	assert.Equal(t, NewPiece(King, White), pos.PieceAt(G1))
	assert.Equal(t, NewPiece(Rook, White), pos.PieceAt(F1))
	assert.Equal(t, NoPiece, pos.PieceAt(E1))
	assert.Equal(t, NoPiece, pos.PieceAt(H1))
	assert.False(t, pos.CastlingRights.CanCastle(White, true))
	assert.False(t, pos.CastlingRights.CanCastle(White, false))
}

func TestMakeMove_CastlingQueenside(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1")
	assert.NoError(t, err)

	m := NewCastling(E8, C8)
	assertRoundTrip(t, pos, m)

	pos.MakeMove(m)
	assert.Equal(t, NewPiece(King, Black), pos.PieceAt(C8))
	assert.Equal(t, NewPiece(Rook, Black), pos.PieceAt(D8))
	assert.False(t, pos.CastlingRights.CanCastle(Black, true))
	assert.False(t, pos.CastlingRights.CanCastle(Black, false))
}

func TestMakeMove_RookCaptureRemovesCastlingRights(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/6N1/8/8/8/8/R3K2R w kq - 0 1")
	assert.NoError(t, err)

	// White knight captures the black rook on h8, which must strip black's
	// kingside right even though the white piece that moved was not a king.
	m := NewMove(G6, H8)
	pos.MakeMove(m)
	assert.False(t, pos.CastlingRights.CanCastle(Black, true))

	// The a8 rook was not touched, so the queenside right stays intact.
	assert.True(t, pos.CastlingRights.CanCastle(Black, false))
}

func TestMakeMove_HalfMoveClockResetsOnPawnMoveOrCapture(t *testing.T) {
	pos, err := ParseFEN("8/8/8/3p4/4P3/8/k6K/8 w - - 12 20")
	assert.NoError(t, err)

	undo := pos.MakeMove(NewMove(E4, D5))
	assert.Equal(t, 0, pos.HalfMoveClock)
	assert.Equal(t, 12, undo.HalfMoveClock)
}

func TestMakeMove_FullMoveNumberIncrementsAfterBlack(t *testing.T) {
	pos := NewPosition()
	pos.MakeMove(NewMove(E2, E4))
	assert.Equal(t, 1, pos.FullMoveNumber)
	pos.MakeMove(NewMove(E7, E5))
	assert.Equal(t, 2, pos.FullMoveNumber)
}

func TestMakeMove_ZobristMatchesFreshComputeAcrossGame(t *testing.T) {
	pos := NewPosition()
	moves := []Move{
		NewMove(E2, E4),
		NewMove(E7, E5),
		NewMove(G1, F3),
		NewMove(B8, C6),
		NewMove(F1, B5),
	}
	for _, m := range moves {
		pos.MakeMove(m)
		assert.Equal(t, pos.ComputeHash(), pos.Hash)
	}
}

func TestMakeMove_PreservesPositionAfterMakeUnmakeSequence(t *testing.T) {
	pos := NewPosition()
	snapshot := *pos

	seq := []Move{
		NewMove(D2, D4),
		NewMove(D7, D5),
		NewMove(C2, C4),
	}
	var undos []UndoInfo
	for _, m := range seq {
		undos = append(undos, pos.MakeMove(m))
	}
	for i := len(seq) - 1; i >= 0; i-- {
		pos.UnmakeMove(seq[i], undos[i])
	}
	assert.Equal(t, snapshot, *pos)
}

func TestMakeMove_IncrementalScoreMatchesFreshCompute(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := pos.MakeMove(m)
		wantScore, wantSq := computeScores(pos)
		assert.Equal(t, wantScore, pos.PieceScore, "PieceScore drifted for move %s", m)
		assert.Equal(t, wantSq, pos.SqScore, "SqScore drifted for move %s", m)
		pos.UnmakeMove(m, undo)
	}
}
