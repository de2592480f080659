package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// LegalMoves returns the legal moves of the piece on sq. The result is empty
// when the square is empty or holds a piece of the side not to move; this is a
// normal selection outcome, not an error. Use CheckSelectable to tell the cases apart.
//
// A pawn move to the last row is returned once, with Promotion set to Queen;
// PromotionChoices lists the alternatives.
func LegalMoves(board *chess.Board, sq chess.Square) []chess.Move {
	piece := board.Get(sq)
	if piece.IsEmpty() || piece.Colour != board.ToMove {
		return nil
	}
	return legalMovesFrom(board, sq)
}

// CheckSelectable returns nil if sq holds a piece of the side to move, and an
// error wrapping ErrInvalidSquare, ErrEmptySquare or ErrWrongSide otherwise.
func CheckSelectable(board *chess.Board, sq chess.Square) error {
	if !sq.Valid() {
		return &errors.SquareError{Err: errors.ErrInvalidSquare, Square: sq.String()}
	}
	piece := board.Get(sq)
	if piece.IsEmpty() {
		return &errors.SquareError{Err: errors.ErrEmptySquare, Square: sq.String()}
	}
	if piece.Colour != board.ToMove {
		return &errors.SquareError{Err: errors.ErrWrongSide, Square: sq.String()}
	}
	return nil
}

// AllLegalMoves returns every legal move of the side to move, in board order.
func AllLegalMoves(board *chess.Board) []chess.Move {
	var moves []chess.Move
	for _, sq := range board.PieceSquares(board.ToMove) {
		moves = append(moves, legalMovesFrom(board, sq)...)
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
// It stops at the first legal move found.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, sq := range board.PieceSquares(colour) {
		for _, m := range pseudoLegalMoves(board, sq) {
			if leavesKingSafe(board, m) {
				return true
			}
		}
	}
	return false
}

// legalMovesFrom filters the pseudo-legal moves of the piece on sq.
func legalMovesFrom(board *chess.Board, sq chess.Square) []chess.Move {
	var legal []chess.Move
	for _, m := range pseudoLegalMoves(board, sq) {
		if leavesKingSafe(board, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// leavesKingSafe plays the move on a scratch copy of the board and checks if
// the mover's king is attacked afterwards. The original board is never touched.
// A side without a king cannot be left in check.
func leavesKingSafe(board *chess.Board, m chess.Move) bool {
	colour := board.Get(m.From).Colour

	scratch := *board
	placePieces(&scratch, m)

	kingSq, ok := KingSquare(&scratch, colour)
	if !ok {
		return true
	}
	return !IsAttacked(&scratch, colour, kingSq)
}
