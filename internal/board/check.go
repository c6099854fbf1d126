package board

// CheckInfo bundles every per-side-to-move fact legality testing needs,
// computed once per node instead of re-derived per candidate move.
// Checkers, Pinners, and Pinned are bitboards. Pinned only marks which
// pieces are pinned; IsLegal lets a pinned piece move only along the
// line through its king, since it may still slide toward or away from
// its pinner.
type CheckInfo struct {
	Checkers Bitboard // enemy pieces currently giving check to the side to move

	Pinners Bitboard // enemy sliders that would give check if their pinned victim stepped off the ray
	Pinned  Bitboard // side-to-move pieces pinned to their own king

	// KingDangerSquares is the set of squares the side-to-move king may
	// not step onto: squares attacked by the enemy with the king itself
	// removed from the occupancy, so that moving straight back along a
	// checking ray is correctly rejected.
	KingDangerSquares Bitboard
}

// ComputeCheckInfo builds a CheckInfo for the side to move.
func ComputeCheckInfo(p *Position) CheckInfo {
	us := p.SideToMove
	them := us.Other()
	ksq := p.KingSquare[us]

	var info CheckInfo
	info.Checkers = p.AttackersByColor(ksq, them, p.AllOccupied)
	info.Pinners, info.Pinned = computePins(p, us, them, ksq)
	info.KingDangerSquares = kingDangerSquares(p, them, ksq)
	return info
}

// computePins finds, via x-ray sniper scan from the king outward, every
// enemy slider that would check the king if exactly one of our own
// pieces stood alone between it and the king.
func computePins(p *Position, us, them Color, ksq Square) (pinners, pinned Bitboard) {
	snipers := (RookAttacks(ksq, Empty) & (p.Pieces[them][Rook] | p.Pieces[them][Queen])) |
		(BishopAttacks(ksq, Empty) & (p.Pieces[them][Bishop] | p.Pieces[them][Queen]))

	for snipers != 0 {
		sq := snipers.PopLSB()
		between := Between(sq, ksq) & p.AllOccupied
		if between.PopCount() == 1 && between&p.Occupied[us] != 0 {
			pinners |= SquareBB(sq)
			pinned |= between
		}
	}
	return pinners, pinned
}

// kingDangerSquares computes every square attacked by byColor with the
// defending king removed from the occupancy, so sliding checkers are
// seen to extend through the king's own square: a king may not
// "retreat" along the line of an existing check.
func kingDangerSquares(p *Position, byColor Color, defendingKing Square) Bitboard {
	occWithoutKing := p.AllOccupied &^ SquareBB(defendingKing)

	var danger Bitboard
	pawns := p.Pieces[byColor][Pawn]
	for bb := pawns; bb != 0; {
		sq := bb.PopLSB()
		danger |= PawnAttacks(sq, byColor)
	}
	for bb := p.Pieces[byColor][Knight]; bb != 0; {
		danger |= KnightAttacks(bb.PopLSB())
	}
	for bb := p.Pieces[byColor][Bishop] | p.Pieces[byColor][Queen]; bb != 0; {
		danger |= BishopAttacks(bb.PopLSB(), occWithoutKing)
	}
	for bb := p.Pieces[byColor][Rook] | p.Pieces[byColor][Queen]; bb != 0; {
		danger |= RookAttacks(bb.PopLSB(), occWithoutKing)
	}
	danger |= KingAttacks(p.KingSquare[byColor])
	return danger
}

// UpdateCheckers refreshes the cached Checkers bitboard for the side to
// move after a side flip (make/unmake, FEN load) without running the
// full CheckInfo computation legality testing needs.
func (p *Position) UpdateCheckers() {
	us := p.SideToMove
	them := us.Other()
	p.Checkers = p.AttackersByColor(p.KingSquare[us], them, p.AllOccupied)
}
