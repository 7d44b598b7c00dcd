package hashing

import "github.com/lgbarn/chess-go/internal/chess"

// RepetitionCounter counts how often each position occurs in one game.
type RepetitionCounter struct {
	seen map[uint64]int
	max  int
}

// NewRepetitionCounter returns an empty counter.
func NewRepetitionCounter() *RepetitionCounter {
	return &RepetitionCounter{seen: make(map[uint64]int)}
}

// Record counts one occurrence of the position. It can be passed to
// session.WithPositionObserver.
func (r *RepetitionCounter) Record(board *chess.Board, turn chess.Colour) {
	key := Key(board, turn)
	n := r.seen[key] + 1
	r.seen[key] = n
	if n > r.max {
		r.max = n
	}
}

// Count returns how many times the position has occurred.
func (r *RepetitionCounter) Count(board *chess.Board, turn chess.Colour) int {
	return r.seen[Key(board, turn)]
}

// MaxRepeats returns the highest occurrence count of any position.
func (r *RepetitionCounter) MaxRepeats() int { return r.max }

// Positions returns the number of distinct positions recorded.
func (r *RepetitionCounter) Positions() int { return len(r.seen) }
