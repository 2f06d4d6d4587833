// Package history tracks the sequence of positions reached in a game so a
// search collaborator can detect threefold repetition. It owns no rules
// knowledge of its own: a position's Zobrist hash buckets candidates for
// comparison, and structural equality (board.Position.IsSamePosition)
// settles ties, guarding against a hash collision miscounting as a
// repetition.
package history

import "github.com/corvidchess/enginecore/internal/board"

// History is an append-only record of positions reached so far; each New
// call returns an independent one. Positions are bucketed by Zobrist hash for O(1) average lookup;
// within a bucket, IsSamePosition decides which entries actually repeat.
type History struct {
	positions []*board.Position
	buckets   map[uint64][]*board.Position
}

// New returns an empty History.
func New() *History {
	return &History{buckets: make(map[uint64][]*board.Position)}
}

// Add records pos (a copy is kept; the caller's Position is not retained)
// and returns the repetition count this position has now reached — 1 the
// first time a structurally matching position is seen, 2 the second, and
// so on. The count is also cached on the stored copy's Repetitions field.
func (h *History) Add(pos *board.Position) int {
	hash := pos.Hash()
	bucket := h.buckets[hash]

	count := 1
	for _, prior := range bucket {
		if prior.IsSamePosition(pos) {
			count++
		}
	}

	cp := pos.Copy()
	cp.Repetitions = count
	h.buckets[hash] = append(bucket, cp)
	h.positions = append(h.positions, cp)

	return count
}

// Clear empties the history, e.g. at the start of a new game or whenever
// an irreversible move (capture, pawn move, loss of all castling rights)
// makes earlier positions unreachable and therefore irrelevant to
// repetition counting.
func (h *History) Clear() {
	h.positions = nil
	h.buckets = make(map[uint64][]*board.Position)
}

// Current returns the most recently added position, or nil if history is
// empty.
func (h *History) Current() *board.Position {
	if len(h.positions) == 0 {
		return nil
	}
	return h.positions[len(h.positions)-1]
}

// Len returns the number of positions recorded.
func (h *History) Len() int {
	return len(h.positions)
}

// IsThreefoldRepetition reports whether the most recently added position
// has now been reached three or more times.
func (h *History) IsThreefoldRepetition() bool {
	cur := h.Current()
	return cur != nil && cur.Repetitions >= 3
}
