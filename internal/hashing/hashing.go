// Package hashing computes position keys and uses them to detect repeated
// positions within a game and duplicate games within a batch.
package hashing

import (
	"github.com/lgbarn/chess-go/internal/chess"
)

var (
	pieceKeys   [2][chess.King + 1][chess.NumSquares]uint64
	blackToMove uint64
)

func init() {
	// splitmix64 from a fixed seed, so keys are stable across runs
	state := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
	for c := range pieceKeys {
		for k := chess.Pawn; k <= chess.King; k++ {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = next()
			}
		}
	}
	blackToMove = next()
}

// Key returns the Zobrist key of board with turn to move. Move counters are
// not part of the key, so the same placement reached by different routes
// has the same key.
func Key(board *chess.Board, turn chess.Colour) uint64 {
	var key uint64
	for sq, p := range board {
		if p.IsEmpty() {
			continue
		}
		key ^= pieceKeys[p.Colour][p.Kind][sq]
	}
	if turn == chess.Black {
		key ^= blackToMove
	}
	return key
}

// WeakHash is a cheap secondary hash of the placement alone.
func WeakHash(board *chess.Board) uint32 {
	var h uint32
	for sq, p := range board {
		if p.IsEmpty() {
			continue
		}
		h += uint32(sq+1) * uint32(p.Symbol())
	}
	return h
}

// Signature identifies a finished game for duplicate detection.
type Signature struct {
	Name  string
	Key   uint64
	Weak  uint32
	Plies int
}

// NewSignature describes the game called name that ended on board with
// turn to move after plies half-moves.
func NewSignature(name string, board *chess.Board, turn chess.Colour, plies int) Signature {
	return Signature{
		Name:  name,
		Key:   Key(board, turn),
		Weak:  WeakHash(board),
		Plies: plies,
	}
}

// DuplicateDetector remembers the final positions of games it has seen.
type DuplicateDetector struct {
	table map[uint64][]Signature
	// exactMatch also requires equal ply counts
	exactMatch  bool
	maxCapacity int
	count       int
	duplicates  int
}

// NewDuplicateDetector creates a detector. maxCapacity of 0 means unlimited.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		table:       make(map[uint64][]Signature),
		exactMatch:  exactMatch,
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd reports whether sig matches a game seen earlier, returning
// that game's name. Unmatched signatures are remembered while there is
// capacity.
func (d *DuplicateDetector) CheckAndAdd(sig Signature) (string, bool) {
	for _, seen := range d.table[sig.Key] {
		if d.matches(sig, seen) {
			d.duplicates++
			return seen.Name, true
		}
	}
	if d.IsFull() {
		return "", false
	}
	d.table[sig.Key] = append(d.table[sig.Key], sig)
	d.count++
	return "", false
}

func (d *DuplicateDetector) matches(a, b Signature) bool {
	if a.Weak != b.Weak {
		return false
	}
	return !d.exactMatch || a.Plies == b.Plies
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int { return d.duplicates }

// UniqueCount returns the number of games remembered.
func (d *DuplicateDetector) UniqueCount() int { return d.count }

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.count >= d.maxCapacity
}

// Reset forgets every game.
func (d *DuplicateDetector) Reset() {
	d.table = make(map[uint64][]Signature)
	d.count = 0
	d.duplicates = 0
}
