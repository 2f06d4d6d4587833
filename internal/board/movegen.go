package board

// PseudoLegalMoves writes every pseudo-legal move for the side to move into
// sink. "Pseudo-legal" means the piece's movement rules are obeyed and the
// destination is not friendly-occupied, but the move may leave the mover in
// check — the caller filters those out by calling IsChecked on the
// resulting position after a trial MakeMove.
//
// Promotions are expanded into all four piece kinds; under-promotions are
// never omitted. Castle moves are generated separately via IsCastleLegal,
// with the king-captures-rook internal encoding.
func (p *Position) PseudoLegalMoves(sink MoveSink) {
	army := p.ActiveArmy
	enemy := army.Other()
	friends := p.ColorBB[army]
	enemies := p.ColorBB[enemy]
	occupied := p.occupied()

	for it := (p.PieceBB[Knight] & friends).Iter(); ; {
		sq, ok := it.Next()
		if !ok {
			break
		}
		p.emitLeaperMoves(sink, Knight, sq, KnightAttacks(sq)&^friends)
	}

	for it := (p.PieceBB[Bishop] & friends).Iter(); ; {
		sq, ok := it.Next()
		if !ok {
			break
		}
		p.emitLeaperMoves(sink, Bishop, sq, BishopAttacks(sq, occupied)&^friends)
	}

	for it := (p.PieceBB[Rook] & friends).Iter(); ; {
		sq, ok := it.Next()
		if !ok {
			break
		}
		p.emitLeaperMoves(sink, Rook, sq, RookAttacks(sq, occupied)&^friends)
	}

	for it := (p.PieceBB[Queen] & friends).Iter(); ; {
		sq, ok := it.Next()
		if !ok {
			break
		}
		p.emitLeaperMoves(sink, Queen, sq, QueenAttacks(sq, occupied)&^friends)
	}

	for it := (p.PieceBB[King] & friends).Iter(); ; {
		sq, ok := it.Next()
		if !ok {
			break
		}
		p.emitLeaperMoves(sink, King, sq, KingAttacks(sq)&^friends)
	}

	for it := (p.PieceBB[Pawn] & friends).Iter(); ; {
		sq, ok := it.Next()
		if !ok {
			break
		}
		p.generatePawnMoves(sink, army, sq, enemies, occupied)
	}

	if p.IsCastleLegal(army, KingSide) {
		sink.GeneratePotential(p.castleMove(army, KingSide))
	}
	if p.IsCastleLegal(army, QueenSide) {
		sink.GeneratePotential(p.castleMove(army, QueenSide))
	}
}

func (p *Position) emitLeaperMoves(sink MoveSink, pt PieceType, from Square, targets Bitboard) {
	for it := targets.Iter(); ; {
		to, ok := it.Next()
		if !ok {
			break
		}
		sink.GeneratePotential(NewMove(from, to).WithPiece(pt))
	}
}

func (p *Position) castleMove(army Color, side CastleSide) Move {
	king := p.kingSquare(army)
	rank := homeRank(army)
	rookSq := NewSquare(p.fileOfRook(side), rank)
	return NewMove(king, rookSq).WithPiece(King).WithCastle(true).WithCastleSide(side)
}

// generatePawnMoves enumerates single/double pushes and diagonal captures
// (including en passant) from one pawn square. The double-push blocker
// check (neither the one-ahead nor two-ahead square may be occupied) is
// done here rather than in the attack tables, since it depends on the
// whole-board occupancy, not just the attacked square.
func (p *Position) generatePawnMoves(sink MoveSink, army Color, sq Square, enemies, occupied Bitboard) {
	pushDir := 8
	lastRank := 7
	doubleRank := 1
	if army == Black {
		pushDir = -8
		lastRank = 0
		doubleRank = 6
	}

	oneAhead := Square(int(sq) + pushDir)
	if oneAhead.IsValid() && !occupied.Test(oneAhead) {
		p.emitPawnMove(sink, sq, oneAhead, lastRank)
		if sq.Rank() == doubleRank {
			twoAhead := Square(int(sq) + 2*pushDir)
			if !occupied.Test(twoAhead) {
				sink.GeneratePotential(NewMove(sq, twoAhead).WithPiece(Pawn))
			}
		}
	}

	for it := (PawnAttacks(sq, army) & enemies).Iter(); ; {
		to, ok := it.Next()
		if !ok {
			break
		}
		p.emitPawnMove(sink, sq, to, lastRank)
	}

	if p.EnPassantTarget.IsValid() && PawnAttacks(sq, army).Test(p.EnPassantTarget) {
		sink.GeneratePotential(NewMove(sq, p.EnPassantTarget).WithPiece(Pawn).WithEnPassant(true))
	}
}

func (p *Position) emitPawnMove(sink MoveSink, from, to Square, lastRank int) {
	if to.Rank() == lastRank {
		for _, promo := range [4]PieceType{Queen, Knight, Rook, Bishop} {
			sink.GeneratePotential(NewMove(from, to).WithPiece(Pawn).WithPromotion(promo))
		}
		return
	}
	sink.GeneratePotential(NewMove(from, to).WithPiece(Pawn))
}

// fillInMove completes a partially specified move before MakeMove applies
// it: synthesizes a castle's outer-encoding end square if missing (a
// caller signals "no end square yet" by setting start == end, since both
// fields are plain 6-bit square values with no room for a sentinel), reads
// the moving piece kind from the start square, defaults an unspecified
// promotion to Queen, recognizes the en-passant target, and recognizes a
// two-file king move (or, in Chess960, a king move onto its own rook) as a
// castle attempt.
func (p *Position) fillInMove(m Move) (Move, bool) {
	army := p.ActiveArmy

	if m.IsCastle() && m.Start() == m.End() {
		file := 6
		if m.CastleSide() == QueenSide {
			file = 2
		}
		m = m.WithEnd(NewSquare(file, homeRank(army)))
	}

	if m.Piece() == NoPieceType {
		piece := p.PieceAt(m.Start())
		if piece == NoPiece {
			return m, false
		}
		m = m.WithPiece(piece.Type())
	}

	end := m.End()

	if m.Piece() == Pawn && !m.IsPromotion() {
		lastRank := 7
		if army == Black {
			lastRank = 0
		}
		if end.Rank() == lastRank {
			m = m.WithPromotion(Queen)
		}
	}

	if m.Piece() == Pawn && p.EnPassantTarget.IsValid() && end == p.EnPassantTarget {
		m = m.WithEnPassant(true)
	}

	if m.Piece() == King && !m.IsCastle() {
		rank := homeRank(army)
		if m.Start().Rank() == rank && end.Rank() == rank {
			fileStart, fileEnd := m.Start().File(), end.File()
			switch {
			case fileStart == 4 && fileEnd == 6:
				m = m.WithCastle(true).WithCastleSide(KingSide)
			case fileStart == 4 && fileEnd == 2:
				m = m.WithCastle(true).WithCastleSide(QueenSide)
			case GlobalOptions().Chess960() && SquareBB(end)&p.PieceBB[Rook]&p.ColorBB[army] != 0:
				if fileEnd == int(p.FileOfKingsRook) {
					m = m.WithCastle(true).WithCastleSide(KingSide)
				} else if fileEnd == int(p.FileOfQueensRook) {
					m = m.WithCastle(true).WithCastleSide(QueenSide)
				}
			}
		}
	}

	return m, true
}

// MakeMove fills in any unset fields of m (see fillInMove) and applies it to
// p in place. Returns false, leaving p unchanged, if fill-in fails or the
// start square does not hold a piece of the side to move. MakeMove does not
// check whether the resulting position leaves the mover in check — that
// filtering is the caller's responsibility via IsChecked.
func (p *Position) MakeMove(m Move) bool {
	filled, ok := p.fillInMove(m)
	if !ok {
		return false
	}
	m = filled

	army := p.ActiveArmy
	enemy := army.Other()
	start, end := m.Start(), m.End()

	mover := p.PieceAt(start)
	if mover == NoPiece || mover.Color() != army {
		return false
	}

	// a. en passant target
	p.EnPassantTarget = NoSquare
	if m.Piece() == Pawn && abs(end.Rank()-start.Rank()) == 2 {
		epRank := (start.Rank() + end.Rank()) / 2
		p.EnPassantTarget = NewSquare(start.File(), epRank)
	}

	// b. castle rights from king/rook move
	if m.Piece() == King {
		p.setCastleRight(army, KingSide, false)
		p.setCastleRight(army, QueenSide, false)
	} else if m.Piece() == Rook {
		rank := homeRank(army)
		if start == NewSquare(int(p.FileOfQueensRook), rank) {
			p.setCastleRight(army, QueenSide, false)
		} else if start == NewSquare(int(p.FileOfKingsRook), rank) {
			p.setCastleRight(army, KingSide, false)
		}
	}

	// c. determine and apply capture, clearing the opponent's castle right
	// when the captured piece is a rook standing on their recorded file
	capture := false
	capturedType := NoPieceType
	if m.IsEnPassant() {
		capture = true
		capSq := NewSquare(end.File(), start.Rank())
		capturedType = p.removePiece(capSq).Type()
	} else if !m.IsCastle() {
		if occ := p.PieceAt(end); occ != NoPiece {
			capture = true
			capturedType = p.removePiece(end).Type()
		}
	}
	if capture && capturedType == Rook {
		if end.File() == int(p.FileOfKingsRook) {
			p.setCastleRight(enemy, KingSide, false)
		} else if end.File() == int(p.FileOfQueensRook) {
			p.setCastleRight(enemy, QueenSide, false)
		}
	}

	// d. half-move clock
	if m.Piece() == Pawn || capture {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	// e. board mutation
	if m.IsCastle() {
		rank := homeRank(army)
		side := m.CastleSide()
		rookFrom := NewSquare(p.fileOfRook(side), rank)
		var kingTo, rookTo Square
		if side == KingSide {
			kingTo, rookTo = NewSquare(6, rank), NewSquare(5, rank)
		} else {
			kingTo, rookTo = NewSquare(2, rank), NewSquare(3, rank)
		}
		// Clear both source squares before setting destinations: in
		// Chess960 the king's destination may be the rook's source and
		// vice versa.
		p.removePiece(start)
		p.removePiece(rookFrom)
		p.setPiece(NewPiece(King, army), kingTo)
		p.setPiece(NewPiece(Rook, army), rookTo)
	} else {
		p.removePiece(start)
		destType := m.Piece()
		if m.IsPromotion() {
			destType = m.Promotion()
		}
		p.setPiece(NewPiece(destType, army), end)
	}

	// f. advance state
	p.Repetitions = -1
	p.ActiveArmy = enemy
	p.HalfMoveNumber++

	p.LastMove = m.WithCapture(capture)

	if DebugMoveValidation {
		assertf(p.kingSquare(White).IsValid() && p.kingSquare(Black).IsValid(),
			"board: MakeMove(%v) produced a position missing a king", m)
		assertf(p.ActiveArmy != army, "board: MakeMove(%v) left ActiveArmy unchanged", m)
	}

	return true
}
