package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a Position. The castling field accepts
// both standard KQkq notation and Chess960/Shredder file-letter notation
// (e.g. "HAha"); a bare K/Q/k/q in Chess960 mode means "the outermost rook
// on that side", per the X-FEN convention. Half-move clock and full-move
// number are optional, defaulting to 0 and 1.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, newParseError(ErrTooFewFields, "", fmt.Sprintf("need at least 4 fields, got %d", len(parts)))
	}

	pos := &Position{
		EnPassantTarget: NoSquare,
		HalfMoveNumber:  0,
		Repetitions:     -1,
	}

	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, err
	}

	if pos.PieceBB[King]&pos.ColorBB[White] == 0 || pos.PieceBB[King]&pos.ColorBB[Black] == 0 {
		return nil, newParseError(ErrMissingKing, "placement", "both armies must have exactly one king")
	}

	switch parts[1] {
	case "w":
		pos.ActiveArmy = White
	case "b":
		pos.ActiveArmy = Black
	default:
		return nil, newParseError(ErrBadField, "side to move", fmt.Sprintf("expected w or b, got %q", parts[1]))
	}

	if err := parseCastlingRights(pos, parts[2]); err != nil {
		return nil, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, newParseError(ErrBadField, "en passant", err.Error())
		}
		pos.EnPassantTarget = sq
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil {
			return nil, newParseError(ErrBadField, "half-move clock", err.Error())
		}
		pos.HalfMoveClock = uint16(hmc)
	}

	fullMove := 1
	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil {
			return nil, newParseError(ErrBadField, "full-move number", err.Error())
		}
		fullMove = fmn
	}
	// half_move_number is a 1-indexed ply count; full-move number is
	// ceil(half_move_number/2), so it takes two distinct ply values (White's
	// move, then Black's reply) to advance by one full move.
	pos.HalfMoveNumber = uint16(2 * fullMove)
	if pos.ActiveArmy == White {
		pos.HalfMoveNumber--
	}

	return pos, nil
}

func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return newParseError(ErrWrongRankCount, "placement", fmt.Sprintf("need 8 ranks, got %d", len(ranks)))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return newParseError(ErrBadPlacement, "placement", fmt.Sprintf("too many squares in rank %d", rank+1))
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece := PieceFromChar(byte(c))
			if piece == NoPiece {
				return newParseError(ErrBadPlacement, "placement", fmt.Sprintf("unrecognized character %q", c))
			}
			pos.setPiece(piece, NewSquare(file, rank))
			file++
		}

		if file != 8 {
			return newParseError(ErrBadPlacement, "placement", fmt.Sprintf("rank %d has %d squares, want 8", rank+1, file))
		}
	}

	return nil
}

// parseCastlingRights reads the castling field, tracking which file each
// army's castling rook stands on. FileOfKingsRook/FileOfQueensRook are
// shared across colors, since any legal starting position has both armies'
// rooks mirrored onto the same files.
func parseCastlingRights(pos *Position, field string) error {
	pos.FileOfKingsRook = 7
	pos.FileOfQueensRook = 0

	if field == "-" {
		return nil
	}

	whiteKingFile := pos.kingSquare(White).File()
	blackKingFile := pos.kingSquare(Black).File()

	for _, c := range field {
		switch {
		case c == 'K':
			pos.WhiteCastleKing = true
			pos.FileOfKingsRook = outermostRookFile(pos, White, true, whiteKingFile)
		case c == 'Q':
			pos.WhiteCastleQueen = true
			pos.FileOfQueensRook = outermostRookFile(pos, White, false, whiteKingFile)
		case c == 'k':
			pos.BlackCastleKing = true
			pos.FileOfKingsRook = outermostRookFile(pos, Black, true, blackKingFile)
		case c == 'q':
			pos.BlackCastleQueen = true
			pos.FileOfQueensRook = outermostRookFile(pos, Black, false, blackKingFile)
		case c >= 'A' && c <= 'H':
			file := int(c - 'A')
			side := KingSide
			if file < whiteKingFile {
				side = QueenSide
			}
			pos.setCastleRight(White, side, true)
			if side == KingSide {
				pos.FileOfKingsRook = byte(file)
			} else {
				pos.FileOfQueensRook = byte(file)
			}
		case c >= 'a' && c <= 'h':
			file := int(c - 'a')
			side := KingSide
			if file < blackKingFile {
				side = QueenSide
			}
			pos.setCastleRight(Black, side, true)
			if side == KingSide {
				pos.FileOfKingsRook = byte(file)
			} else {
				pos.FileOfQueensRook = byte(file)
			}
		default:
			return newParseError(ErrBadField, "castling", fmt.Sprintf("unrecognized character %q", c))
		}
	}

	return nil
}

// outermostRookFile implements the X-FEN rule for a bare K/Q/k/q letter in
// Chess960 mode: the rook nearest the edge of the board on that side of the
// king. Falls back to the standard corner file if no such rook is found.
func outermostRookFile(pos *Position, army Color, kingSide bool, kingFile int) byte {
	rank := homeRank(army)
	rooks := pos.PieceBB[Rook] & pos.ColorBB[army]

	if kingSide {
		for f := 7; f > kingFile; f-- {
			if rooks.Test(NewSquare(f, rank)) {
				return byte(f)
			}
		}
		return 7
	}
	for f := 0; f < kingFile; f++ {
		if rooks.Test(NewSquare(f, rank)) {
			return byte(f)
		}
	}
	return 0
}

// ToFEN renders p in full FEN, including the half-move clock and a
// full-move number derived from HalfMoveNumber and ActiveArmy.
func (p *Position) ToFEN() string {
	return p.StateToFEN(true)
}

// StateToFEN renders p as FEN. When includeMoveNumbers is false, the
// half-move clock and full-move number fields are omitted, producing the
// minimal 4-field form some consumers (e.g. repetition-table keys) prefer.
func (p *Position) StateToFEN(includeMoveNumbers bool) string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.ActiveArmy == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.castlingFENField())

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassantTarget.String())

	if includeMoveNumbers {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(int(p.HalfMoveClock)))
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa((int(p.HalfMoveNumber) + 1) / 2))
	}

	return sb.String()
}

// isOutermostRookFile reports whether file is the rook nearest the edge of
// the board on that side of army's king: no other rook of army sits
// between it and the edge. Mirrors parseCastlingRights' outermostRookFile
// in reverse, per the original source's fenFromCastling — this is what
// makes a bare K/Q/k/q letter unambiguous for emission, not merely
// whether the file happens to be the board edge.
func isOutermostRookFile(pos *Position, army Color, kingSide bool, file int) bool {
	rank := homeRank(army)
	rooks := pos.PieceBB[Rook] & pos.ColorBB[army]

	if kingSide {
		for f := file + 1; f <= 7; f++ {
			if rooks.Test(NewSquare(f, rank)) {
				return false
			}
		}
		return true
	}
	for f := file - 1; f >= 0; f-- {
		if rooks.Test(NewSquare(f, rank)) {
			return false
		}
	}
	return true
}

// castlingFENField emits K/Q/k/q for whichever rights are unambiguous (their
// rook is the outermost one on that side), and the Shredder-FEN file letter
// otherwise. Each of the four rights is judged independently, since one
// army's rook can be outermost while the other's isn't.
func (p *Position) castlingFENField() string {
	if !p.WhiteCastleKing && !p.WhiteCastleQueen && !p.BlackCastleKing && !p.BlackCastleQueen {
		return "-"
	}

	var sb strings.Builder

	if p.WhiteCastleKing {
		if isOutermostRookFile(p, White, true, int(p.FileOfKingsRook)) {
			sb.WriteByte('K')
		} else {
			sb.WriteByte('A' + p.FileOfKingsRook)
		}
	}
	if p.WhiteCastleQueen {
		if isOutermostRookFile(p, White, false, int(p.FileOfQueensRook)) {
			sb.WriteByte('Q')
		} else {
			sb.WriteByte('A' + p.FileOfQueensRook)
		}
	}
	if p.BlackCastleKing {
		if isOutermostRookFile(p, Black, true, int(p.FileOfKingsRook)) {
			sb.WriteByte('k')
		} else {
			sb.WriteByte('a' + p.FileOfKingsRook)
		}
	}
	if p.BlackCastleQueen {
		if isOutermostRookFile(p, Black, false, int(p.FileOfQueensRook)) {
			sb.WriteByte('q')
		} else {
			sb.WriteByte('a' + p.FileOfQueensRook)
		}
	}
	return sb.String()
}
