// Package hashing computes position keys and tracks position history for
// repetition detection.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

const numSquares = chess.BoardSize * chess.BoardSize

var (
	pieceKeys    [2][7][numSquares]uint64
	castlingKeys [4]uint64
	epFileKeys   [chess.BoardSize]uint64
	whiteToMove  uint64
)

func init() {
	r := rand.New(rand.NewSource(7))
	for _, c := range []chess.Colour{chess.Black, chess.White} {
		for k := chess.Pawn; k <= chess.King; k++ {
			for i := 0; i < numSquares; i++ {
				pieceKeys[c][k][i] = r.Uint64()
			}
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = r.Uint64()
	}
	for i := range epFileKeys {
		epFileKeys[i] = r.Uint64()
	}
	whiteToMove = r.Uint64()
}

// KeyFunc maps a position to its key.
type KeyFunc func(board *chess.Board) uint64

// Key returns the Zobrist key of a position: occupancy, side to move,
// castling rights and en passant target. Clocks are not part of the key.
//
// The en passant file is included only when a pawn of the side to move stands
// next to the double-stepped pawn, so positions that differ only by an
// unusable target hash alike. Whether that pawn may legally capture is not
// checked here; callers that need it pass a KeyFunc that does.
func Key(board *chess.Board) uint64 {
	var key uint64

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			if p.IsEmpty() {
				continue
			}
			key ^= pieceKeys[p.Colour][p.Kind][row*chess.BoardSize+col]
		}
	}

	if board.ToMove == chess.White {
		key ^= whiteToMove
	}

	rights := []bool{
		board.Castling.WhiteKingside,
		board.Castling.WhiteQueenside,
		board.Castling.BlackKingside,
		board.Castling.BlackQueenside,
	}
	for i, has := range rights {
		if has {
			key ^= castlingKeys[i]
		}
	}

	if target, ok := board.EnPassantTarget(); ok && enPassantCapturable(board, target) {
		key ^= epFileKeys[target.Col]
	}

	return key
}

// enPassantCapturable reports whether a pawn of the side to move is beside
// the pawn that just double-stepped past target.
func enPassantCapturable(board *chess.Board, target chess.Square) bool {
	mover := board.ToMove
	victim := chess.Sq(target.Row-mover.PawnDirection(), target.Col)
	for _, dc := range []int{-1, 1} {
		if board.Get(victim.Offset(0, dc)).Is(mover, chess.Pawn) {
			return true
		}
	}
	return false
}
