package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hailam/chesscore/internal/board"
)

func newSearcher() *Searcher {
	return NewSearcher(NewTranspositionTable(1))
}

func TestSearch_FindsWinningQueenSacrifice(t *testing.T) {
	pos, err := board.ParseFEN("r3rk2/pb4p1/4QbBp/1p1q4/2pP4/2P5/PP3PPP/R3R1K1 w - - 0 21")
	assert.NoError(t, err)

	s := newSearcher()
	best, _ := s.Search(pos, 5)
	assert.Equal(t, "e6e8", best.String())
}

func TestSearch_FindsForcedMateAndReportsMateScore(t *testing.T) {
	pos, err := board.ParseFEN("r1bqr2k/ppp3bp/2np2p1/8/2BnPQ2/2N2N2/PPPB1PP1/2KR3R w - - 0 0")
	assert.NoError(t, err)

	s := newSearcher()
	best, score := s.Search(pos, 5)
	assert.Equal(t, "h1h7", best.String())
	assert.Equal(t, MateScore-9, score)
}

func TestSearch_ReturnsWhitePositiveScoreRegardlessOfSideToMove(t *testing.T) {
	// A position with an obvious material edge for white; searching it
	// from black to move should report a positive (white-favorable)
	// score once converted to the white-positive convention.
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	assert.NoError(t, err)

	s := newSearcher()
	_, score := s.Search(pos, 3)
	assert.Positive(t, score)
}

func TestSearch_DetectsStalemateAsDraw(t *testing.T) {
	pos, err := board.ParseFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	assert.NoError(t, err)
	assert.True(t, pos.IsStalemate())

	s := newSearcher()
	_, score := s.Search(pos, 2)
	assert.Equal(t, 0, score)
}

func TestSearch_MateScoresAreCloserToMateAtShallowerPly(t *testing.T) {
	// Mate-in-1: Ra8 mates at ply 1, so the root score is MateScore-1.
	// Mate scores lose one point per ply from the root, so a shallower
	// mate always scores closer to MateScore than a deeper one.
	pos, err := board.ParseFEN("6k1/5ppp/8/8/8/8/8/R6K w - - 0 1")
	assert.NoError(t, err)

	s := newSearcher()
	_, rootScore := s.Search(pos, 1)
	assert.Equal(t, MateScore-1, rootScore)

	move, err := board.ParseMove("a1a8", pos)
	assert.NoError(t, err)
	undo := pos.MakeMove(move)
	defer pos.UnmakeMove(move, undo)
	assert.True(t, pos.IsCheckmate())
}

func TestAdjustScoreRoundTripsThroughTT(t *testing.T) {
	score := MateScore - 3
	stored := AdjustScoreToTT(score, 5)
	restored := AdjustScoreFromTT(stored, 5)
	assert.Equal(t, score, restored)
}

func TestTranspositionTable_StoreAndProbe(t *testing.T) {
	tt := NewTranspositionTable(1)
	pos := board.NewPosition()
	m := board.NewMove(board.E2, board.E4)

	tt.Store(pos.Hash, 4, 25, TTExact, m)
	entry, found := tt.Probe(pos.Hash)
	assert.True(t, found)
	assert.Equal(t, m, entry.BestMove)
	assert.Equal(t, int16(25), entry.Score)
}

func TestEvaluate_SymmetricStartingPositionIsZero(t *testing.T) {
	pos := board.NewPosition()
	assert.Equal(t, 0, Evaluate(pos))
}

func TestEvaluate_MaterialAdvantageFavorsSideToMove(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Positive(t, Evaluate(pos))
}
