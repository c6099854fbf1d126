package board

// MakeMove applies m to p, returning an UndoInfo that UnmakeMove restores
// from wholesale. Every fact make/unmake touches — bitboards, the
// Zobrist hash, incremental material/PSQT scores, phase, castling
// rights, en passant, and the two move counters — is updated here in
// one pass. If there is no piece on m's from square, p is left untouched
// and the returned UndoInfo has Valid false.
func (p *Position) MakeMove(m Move) UndoInfo {
	us := p.SideToMove
	them := us.Other()
	from, to := m.From(), m.To()

	if p.IsEmpty(from) {
		return UndoInfo{}
	}

	undo := UndoInfo{
		CastlingRights: p.CastlingRights,
		EnPassant:      p.EnPassant,
		HalfMoveClock:  p.HalfMoveClock,
		FullMoveNumber: p.FullMoveNumber,
		Hash:           p.Hash,
		Checkers:       p.Checkers,
		KingSquare:     p.KingSquare,
		Pieces:         p.Pieces,
		Occupied:       p.Occupied,
		AllOccupied:    p.AllOccupied,
		PieceScore:     p.PieceScore,
		SqScore:        p.SqScore,
		Phase:          p.Phase,
		Valid:          true,
	}

	// The previous ep target was only ever hashed in if it was genuinely
	// capturable; hash it back out the same way before it is replaced.
	if p.EnPassant != NoSquare && epCapturable(p, p.EnPassant, them) {
		p.Hash ^= zobristEnPassant[p.EnPassant.File()]
	}

	movingPiece := p.PieceAt(from)
	movingType := movingPiece.Type()
	isPawnMove := movingType == Pawn

	capturedSq := NoSquare
	if m.IsEnPassant() {
		if us == White {
			capturedSq = to - 8
		} else {
			capturedSq = to + 8
		}
		captured := p.removePiece(capturedSq)
		p.hashPiece(captured, capturedSq)
		p.subtractScore(captured, capturedSq)
		undo.CapturedPiece = captured
	} else if !p.IsEmpty(to) {
		captured := p.removePiece(to)
		p.hashPiece(captured, to)
		p.subtractScore(captured, to)
		undo.CapturedPiece = captured
		capturedSq = to
	} else {
		undo.CapturedPiece = NoPiece
	}
	isCapture := undo.CapturedPiece != NoPiece

	p.removePiece(from)
	p.hashPiece(movingPiece, from)
	p.subtractScore(movingPiece, from)

	placedType := movingType
	if m.IsPromotion() {
		placedType = m.Promotion()
	}
	placedPiece := NewPiece(placedType, us)
	p.setPiece(placedPiece, to)
	p.hashPiece(placedPiece, to)
	p.addScore(placedPiece, to)

	if m.IsCastling() {
		rookFrom, rookTo := castleRookSquares(to)
		rook := p.removePiece(rookFrom)
		p.hashPiece(rook, rookFrom)
		p.subtractScore(rook, rookFrom)
		p.setPiece(rook, rookTo)
		p.hashPiece(rook, rookTo)
		p.addScore(rook, rookTo)
	}

	p.Hash ^= zobristCastling[p.CastlingRights]
	lost := castleRightsLostFrom(from)
	if isCapture {
		lost |= castleRightsLostFrom(capturedSq)
	}
	p.CastlingRights &^= lost
	p.Hash ^= zobristCastling[p.CastlingRights]

	if isPawnMove || isCapture {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	if us == Black {
		p.FullMoveNumber++
	}

	p.EnPassant = NoSquare
	if isPawnMove {
		diff := int(to) - int(from)
		if diff == 16 || diff == -16 {
			var epSq Square
			if us == White {
				epSq = from + 8
			} else {
				epSq = from - 8
			}
			p.EnPassant = epSq
		}
	}

	p.SideToMove = them
	p.Hash ^= zobristSideToMove

	if p.EnPassant != NoSquare && epCapturable(p, p.EnPassant, us) {
		p.Hash ^= zobristEnPassant[p.EnPassant.File()]
	}

	p.Phase = computePhase(p)
	p.UpdateCheckers()

	return undo
}

// UnmakeMove restores p to the state captured in undo, reversing the
// effect of the Move that produced it.
func (p *Position) UnmakeMove(m Move, undo UndoInfo) {
	p.Pieces = undo.Pieces
	p.Occupied = undo.Occupied
	p.AllOccupied = undo.AllOccupied
	p.KingSquare = undo.KingSquare
	p.CastlingRights = undo.CastlingRights
	p.EnPassant = undo.EnPassant
	p.HalfMoveClock = undo.HalfMoveClock
	p.FullMoveNumber = undo.FullMoveNumber
	p.Hash = undo.Hash
	p.Checkers = undo.Checkers
	p.PieceScore = undo.PieceScore
	p.SqScore = undo.SqScore
	p.Phase = undo.Phase
	p.SideToMove = p.SideToMove.Other()
}

// hashPiece XORs a piece's Zobrist key at sq into p.Hash. XOR is its own
// inverse, so the same call removes or adds a piece depending on whether
// it was present before or after.
func (p *Position) hashPiece(piece Piece, sq Square) {
	if piece == NoPiece {
		return
	}
	p.Hash ^= zobristPiece[piece.Color()][piece.Type()][sq]
}

func (p *Position) addScore(piece Piece, sq Square) {
	if piece == NoPiece {
		return
	}
	c, pt := piece.Color(), piece.Type()
	p.PieceScore[c] += PieceValue[pt]
	for ph := Opening; ph <= End; ph++ {
		p.SqScore[c][ph] += PSQT(c, pt, sq, ph)
	}
}

func (p *Position) subtractScore(piece Piece, sq Square) {
	if piece == NoPiece {
		return
	}
	c, pt := piece.Color(), piece.Type()
	p.PieceScore[c] -= PieceValue[pt]
	for ph := Opening; ph <= End; ph++ {
		p.SqScore[c][ph] -= PSQT(c, pt, sq, ph)
	}
}

// computeScores computes PieceScore/SqScore from scratch, used when a
// Position is built directly from FEN rather than via MakeMove.
func computeScores(p *Position) (pieceScore [2]int, sqScore [2][3]int) {
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			for bb != 0 {
				sq := bb.PopLSB()
				pieceScore[c] += PieceValue[pt]
				for ph := Opening; ph <= End; ph++ {
					sqScore[c][ph] += PSQT(c, pt, sq, ph)
				}
			}
		}
	}
	return pieceScore, sqScore
}

// castleRookSquares returns the rook's from/to squares for a castling
// move whose king destination is to.
func castleRookSquares(to Square) (from, to2 Square) {
	switch to {
	case G1:
		return H1, F1
	case C1:
		return A1, D1
	case G8:
		return H8, F8
	case C8:
		return A8, D8
	}
	return NoSquare, NoSquare
}

// castleRightsLostFrom returns the castling rights that are forfeited
// when a piece moves away from, or is captured on, sq. Only the four
// king/rook home squares matter; any other square returns NoCastling.
func castleRightsLostFrom(sq Square) CastlingRights {
	switch sq {
	case E1:
		return WhiteKingSideCastle | WhiteQueenSideCastle
	case A1:
		return WhiteQueenSideCastle
	case H1:
		return WhiteKingSideCastle
	case E8:
		return BlackKingSideCastle | BlackQueenSideCastle
	case A8:
		return BlackQueenSideCastle
	case H8:
		return BlackKingSideCastle
	}
	return NoCastling
}

// epCapturable reports whether the pawn that just double-pushed to
// target's adjacent square (pushed by mover) can actually be captured en
// passant by one of mover's opponent's pawns. The ep-file is hashed
// only when this holds, independent of whether EnPassant itself is set.
func epCapturable(p *Position, target Square, mover Color) bool {
	them := mover.Other()
	var pawnSq Square
	if mover == White {
		pawnSq = target + 8
	} else {
		pawnSq = target - 8
	}
	f := pawnSq.File()
	r := pawnSq.Rank()
	bb := p.Pieces[them][Pawn]
	if f > 0 && bb.IsSet(NewSquare(f-1, r)) {
		return true
	}
	if f < 7 && bb.IsSet(NewSquare(f+1, r)) {
		return true
	}
	return false
}
