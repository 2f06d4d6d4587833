package board

import "testing"

func TestStartingPositionPseudoLegalCount(t *testing.T) {
	pos := NewPosition()
	if pos.ActiveArmy != White {
		t.Errorf("ActiveArmy = %v, want White", pos.ActiveArmy)
	}

	var moves MoveList
	pos.PseudoLegalMoves(&moves)
	if moves.Len() != 20 {
		t.Errorf("pseudo-legal move count = %d, want 20", moves.Len())
	}
}

func TestFENRoundTripCanonical(t *testing.T) {
	canonical := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K2B w - - 0 1",
	}

	for _, fen := range canonical {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
		}
		if got := pos.ToFEN(); got != fen {
			t.Errorf("ToFEN() = %q, want %q", got, fen)
		}
	}
}

func TestFENRoundTripStructural(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
		}
		reparsed, err := ParseFEN(pos.ToFEN())
		if err != nil {
			t.Fatalf("ParseFEN(ToFEN(%q)) failed: %v", fen, err)
		}
		if !pos.IsSamePosition(reparsed) {
			t.Errorf("round trip through FEN lost structural state for %q", fen)
		}
	}
}

func TestParseFENRejectsMissingKing(t *testing.T) {
	_, err := ParseFEN("8/8/8/8/8/8/8/4K3 w - - 0 1")
	if err == nil {
		t.Fatal("expected an error for a FEN missing the black king")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Kind != ErrMissingKing {
		t.Errorf("Kind = %v, want ErrMissingKing", pe.Kind)
	}
}

func TestParseFENTooFewFields(t *testing.T) {
	_, err := ParseFEN("8/8/8/8/8/8/8/8 w")
	if err == nil {
		t.Fatal("expected an error for a FEN with too few fields")
	}
}
