package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFEN_StartingPositionRoundTrip(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	assert.NoError(t, err)
	assert.Equal(t, StartFEN, pos.ToFEN())
}

func TestParseFEN_RoundTripsArbitraryPositions(t *testing.T) {
	fens := []string{
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"r4rk1/1pp1qppp/p1np2n1/2b1p3/4P3/2PP1N1P/PP1N1PP1/R1BQR1K1 w - - 0 10",
		"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		assert.NoError(t, err, fen)
		assert.Equal(t, fen, pos.ToFEN(), "round trip mismatch for %s", fen)
	}
}

func TestParseFEN_ComputedHashMatchesIncremental(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	pos.MakeMove(NewCastling(E1, G1))
	assert.Equal(t, pos.ComputeHash(), pos.Hash)
}

func TestParseFEN_RejectsTooFewFields(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq")
	assert.Error(t, err)
}

func TestParseFEN_RejectsBadSideToMove(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	assert.Error(t, err)
}

func TestParseFEN_RejectsWrongRankCount(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1")
	assert.Error(t, err)
}

func TestParseFEN_RejectsInvalidPieceChar(t *testing.T) {
	_, err := ParseFEN("rnbqkbnx/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	assert.Error(t, err)
}

func TestParseFEN_DefaultsHalfAndFullMoveWhenOmitted(t *testing.T) {
	pos, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	assert.NoError(t, err)
	assert.Equal(t, 0, pos.HalfMoveClock)
	assert.Equal(t, 1, pos.FullMoveNumber)
}

func TestParseFEN_EnPassantHashedOnlyWhenCapturable(t *testing.T) {
	// e3 ep target but no black pawn adjacent on rank 4 to capture it:
	// the ep file must not be hashed, so this position's hash should
	// equal the same position with "-" in the ep field.
	withEp, err := ParseFEN("rnbqkbnr/pppp1ppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	assert.NoError(t, err)
	withoutEp, err := ParseFEN("rnbqkbnr/pppp1ppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, withoutEp.Hash, withEp.Hash)
}
