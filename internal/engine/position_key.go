package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// PositionKey returns the repetition key of a position. It is hashing.Key,
// except that an en passant target no legal move can capture on is left
// out, so a pinned pawn beside the double-stepped one does not make two
// identical positions differ.
func PositionKey(board *chess.Board) uint64 {
	if _, ok := board.EnPassantTarget(); ok && !canCaptureEnPassant(board) {
		scratch := *board
		scratch.ClearEnPassant()
		return hashing.Key(&scratch)
	}
	return hashing.Key(board)
}

// canCaptureEnPassant reports whether the side to move has a legal en
// passant capture.
func canCaptureEnPassant(board *chess.Board) bool {
	target, ok := board.EnPassantTarget()
	if !ok {
		return false
	}
	mover := board.ToMove
	victim := chess.Sq(target.Row-mover.PawnDirection(), target.Col)
	for _, dc := range []int{-1, 1} {
		from := victim.Offset(0, dc)
		if !board.Get(from).Is(mover, chess.Pawn) {
			continue
		}
		for _, m := range legalMovesFrom(board, from) {
			if m.EnPassant {
				return true
			}
		}
	}
	return false
}
