package board

// IsLegal decides whether a pseudo-legal move is legal given the
// precomputed CheckInfo for the position it was generated in. This
// replaces testing legality by playing the move and checking the
// resulting position: every fact it needs (checkers, pins, king danger
// squares) was already computed once for the node.
func IsLegal(p *Position, m Move, info CheckInfo) bool {
	us := p.SideToMove
	from, to := m.From(), m.To()

	if m.IsCastling() {
		return castlingLegal(p, m, info)
	}

	if p.PieceAt(from).Type() == King {
		if info.KingDangerSquares&SquareBB(to) != 0 {
			return false
		}
		// A king move that is itself a capture removes the captured
		// piece, so no further ray check is needed: KingDangerSquares
		// already accounts for every attacker under the king-removed
		// occupancy, which dominates the post-move occupancy for
		// sliders aimed through the king's own square.
		return true
	}

	switch info.Checkers.PopCount() {
	case 2:
		// Double check: only the king can move.
		return false
	case 1:
		checkerSq := info.Checkers.LSB()
		mustHit := SquareBB(checkerSq) | Between(checkerSq, p.KingSquare[us])
		if m.IsEnPassant() && isEnPassantCheckerCapture(p, m, checkerSq) {
			// handled below
		} else if mustHit&SquareBB(to) == 0 {
			return false
		}
	}

	if info.Pinned&SquareBB(from) != 0 {
		if !Aligned(p.KingSquare[us], from, to) {
			return false
		}
	}

	if m.IsEnPassant() {
		return enPassantLegal(p, m, info)
	}

	return true
}

// isEnPassantCheckerCapture reports whether an en passant capture takes
// the checking pawn itself.
func isEnPassantCheckerCapture(p *Position, m Move, checkerSq Square) bool {
	capturedSq := m.To()
	if p.SideToMove == White {
		capturedSq = Square(int(capturedSq) - 8)
	} else {
		capturedSq = Square(int(capturedSq) + 8)
	}
	return capturedSq == checkerSq
}

// enPassantLegal runs a mandatory second legality pass: an en passant
// capture removes two pawns from the same rank as the
// king in one move, which can expose a horizontal discovered check that
// the ordinary pin bitboard (computed against the pre-move occupancy)
// never anticipates.
func enPassantLegal(p *Position, m Move, info CheckInfo) bool {
	us := p.SideToMove
	them := us.Other()
	ksq := p.KingSquare[us]

	capturedSq := m.To()
	if us == White {
		capturedSq = Square(int(capturedSq) - 8)
	} else {
		capturedSq = Square(int(capturedSq) + 8)
	}

	occ := p.AllOccupied
	occ &^= SquareBB(m.From())
	occ &^= SquareBB(capturedSq)
	occ |= SquareBB(m.To())

	attackers := RookAttacks(ksq, occ) & (p.Pieces[them][Rook] | p.Pieces[them][Queen])
	attackers |= BishopAttacks(ksq, occ) & (p.Pieces[them][Bishop] | p.Pieces[them][Queen])
	return attackers == 0
}

// castlingLegal requires the king not currently in check and the squares
// it passes through (including the destination) free of enemy attack.
// It does not check that the squares between king and rook are empty;
// generateCastlingMoves only emits castling moves when they are.
func castlingLegal(p *Position, m Move, info CheckInfo) bool {
	if info.Checkers != 0 {
		return false
	}
	from, to := m.From(), m.To()
	step := 1
	if to < from {
		step = -1
	}
	for sq := int(from); sq != int(to)+step; sq += step {
		if info.KingDangerSquares&SquareBB(Square(sq)) != 0 {
			return false
		}
	}
	return true
}
