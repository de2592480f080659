package hashing

import (
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// PositionSet collects distinct position keys with mutex protection for
// concurrent access.
type PositionSet struct {
	key  KeyFunc
	mu   sync.RWMutex
	seen map[uint64]struct{}
}

// NewPositionSet creates an empty set keyed by key, or by Key when key is
// nil.
func NewPositionSet(key KeyFunc) *PositionSet {
	if key == nil {
		key = Key
	}
	return &PositionSet{key: key, seen: make(map[uint64]struct{})}
}

// Add records a position and reports whether it was new.
func (s *PositionSet) Add(board *chess.Board) bool {
	key := s.key(board)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	return true
}

// Contains reports whether a position has been recorded.
func (s *PositionSet) Contains(board *chess.Board) bool {
	key := s.key(board)
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.seen[key]
	return ok
}

// Len returns the number of distinct positions recorded.
func (s *PositionSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.seen)
}
