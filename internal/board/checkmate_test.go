package board

import "testing"

// isCheckmate and isStalemate demonstrate how a search collaborator
// combines legalMoves and IsChecked to classify a position with no moves;
// Position itself exposes neither judgment directly.
func isCheckmate(p *Position) bool {
	return len(legalMoves(p)) == 0 && p.IsChecked(p.ActiveArmy)
}

func isStalemate(p *Position) bool {
	return len(legalMoves(p)) == 0 && !p.IsChecked(p.ActiveArmy)
}

func TestCheckmate(t *testing.T) {
	// White: Ka1, Ra8. Black: Kh8 boxed in by its own pawns on g7/h7.
	// Black to move, already mated.
	pos, err := ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatalf("failed to parse FEN: %v", err)
	}

	if !pos.IsChecked(Black) {
		t.Error("expected black king to be in check")
	}
	if moves := legalMoves(pos); len(moves) != 0 {
		t.Errorf("expected no legal moves, got %d", len(moves))
	}
	if !isCheckmate(pos) {
		t.Error("expected checkmate")
	}
}

func TestNotCheckmateKingCanCapture(t *testing.T) {
	// Black king on h8 can simply take the undefended rook on g8.
	pos, err := ParseFEN("6Rk/8/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatalf("failed to parse FEN: %v", err)
	}

	if isCheckmate(pos) {
		t.Error("expected not checkmate: king can capture the checking rook")
	}
}

func TestStalemate(t *testing.T) {
	// Classic stalemate: black king boxed into a corner with no checks and
	// no legal moves.
	pos, err := ParseFEN("k7/8/1Q6/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatalf("failed to parse FEN: %v", err)
	}

	if pos.IsChecked(Black) {
		t.Error("expected black king not to be in check")
	}
	if !isStalemate(pos) {
		t.Error("expected stalemate")
	}
}
