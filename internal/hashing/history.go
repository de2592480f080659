package hashing

import "github.com/lgbarn/chess-rules-go/internal/chess"

// RepetitionLimit is the number of occurrences that make a repetition draw.
const RepetitionLimit = 3

// History records the keys of every position reached in a game and counts
// repeats. It is not safe for concurrent use.
type History struct {
	key    KeyFunc
	keys   []uint64
	counts map[uint64]int
}

// NewHistory creates an empty history that identifies positions with key,
// or with Key when key is nil.
func NewHistory(key KeyFunc) *History {
	if key == nil {
		key = Key
	}
	return &History{key: key, counts: make(map[uint64]int)}
}

// Push records a position.
func (h *History) Push(board *chess.Board) uint64 {
	key := h.key(board)
	h.keys = append(h.keys, key)
	h.counts[key]++
	return key
}

// Pop removes the most recently recorded position. It reports false when
// the history is empty.
func (h *History) Pop() bool {
	if len(h.keys) == 0 {
		return false
	}
	key := h.keys[len(h.keys)-1]
	h.keys = h.keys[:len(h.keys)-1]
	if h.counts[key]--; h.counts[key] == 0 {
		delete(h.counts, key)
	}
	return true
}

// Count returns how many times the position has been recorded.
func (h *History) Count(board *chess.Board) int {
	return h.counts[h.key(board)]
}

// IsThreefold reports whether the position has been recorded at least three
// times. The current position must already have been pushed.
func (h *History) IsThreefold(board *chess.Board) bool {
	return h.Count(board) >= RepetitionLimit
}

// Len returns the number of recorded positions.
func (h *History) Len() int {
	return len(h.keys)
}

// Reset clears the history.
func (h *History) Reset() {
	h.keys = h.keys[:0]
	h.counts = make(map[uint64]int)
}
