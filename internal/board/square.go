// Package board implements the position core of a chess engine: square and
// move primitives, bitboards, attack tables, and the mutable Position type
// with FEN I/O, move application, and pseudo-legal move generation.
package board

import "fmt"

// Square names one of the 64 board cells. Encoding is file + 8*rank with
// file, rank in [0,7] (Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56,
// H8=63). NoSquare is the sentinel for "no square".
type Square uint8

// Named squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8

	// NoSquare is the invalid-square sentinel. IsValid holds iff data < 64.
	NoSquare Square = 64
)

// NewSquare builds a square from 0-indexed file and rank.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the file (0=a .. 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (0=1st .. 7=8th).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// IsValid reports whether sq names one of the 64 real squares.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// Mirror flips the square vertically: rank becomes 7-rank, file unchanged.
// Used to view a square from the opposite color's perspective.
func (sq Square) Mirror() Square {
	return sq ^ 56
}

// ParseSquare reads algebraic notation ("e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("board: invalid square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("board: invalid square %q", s)
	}
	return NewSquare(file, rank), nil
}

// String returns algebraic notation, or "-" for NoSquare.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}
