package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ApplyMove applies a move to the board and updates all derived state.
//
// The move is matched by origin and destination against LegalMoves for its
// origin; the generator's flags are used, not the caller's. For a promotion the
// caller's Promotion kind is honoured, and NoKind selects a Queen. A move that
// is not in the legal set returns an *errors.IllegalMoveError and leaves the
// board unchanged.
func ApplyMove(board *chess.Board, move chess.Move) (chess.MoveResult, error) {
	legal, err := resolveMove(board, move)
	if err != nil {
		return chess.MoveResult{}, err
	}
	return applyLegalMove(board, legal), nil
}

// resolveMove finds the generator's version of move.
func resolveMove(board *chess.Board, move chess.Move) (chess.Move, error) {
	if err := CheckSelectable(board, move.From); err != nil {
		return chess.Move{}, &errors.IllegalMoveError{Move: move.UCI(), Reason: err.Error()}
	}

	for _, candidate := range LegalMoves(board, move.From) {
		if !candidate.SameSquares(move) {
			continue
		}
		if !candidate.IsPromotion() {
			if move.IsPromotion() {
				return chess.Move{}, &errors.IllegalMoveError{Move: move.UCI(), Reason: "not a promotion"}
			}
			return candidate, nil
		}
		if move.IsPromotion() {
			if !isPromotionKind(move.Promotion) {
				return chess.Move{}, &errors.IllegalMoveError{
					Move:   move.UCI(),
					Reason: fmt.Sprintf("cannot promote to %v", move.Promotion),
				}
			}
			candidate.Promotion = move.Promotion
		}
		return candidate, nil
	}

	return chess.Move{}, &errors.IllegalMoveError{Move: move.UCI(), Reason: "not a legal destination"}
}

// applyLegalMove performs an already-legal move.
func applyLegalMove(board *chess.Board, move chess.Move) chess.MoveResult {
	mover := board.Get(move.From)
	target := board.Get(move.To)

	result := chess.MoveResult{
		Move:    move,
		Piece:   mover,
		Castled: move.Castle,
	}
	if !target.IsEmpty() {
		result.Captured = target
		result.CapturedOn = move.To
	}
	if move.EnPassant {
		victim := chess.Sq(move.From.Row, move.To.Col)
		result.Captured = board.Get(victim)
		result.CapturedOn = victim
		result.EnPassant = true
	}

	result.PromotedTo = placePieces(board, move)

	updateCastlingRights(board, move, mover, target)

	if move.DoubleStep {
		board.SetEnPassant(chess.Sq((move.From.Row+move.To.Row)/2, move.From.Col))
	} else {
		board.ClearEnPassant()
	}

	if mover.Kind == chess.Pawn || result.IsCapture() {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}

	if mover.Colour == chess.Black {
		board.FullmoveNumber++
	}
	board.ToMove = mover.Colour.Opposite()
	result.ToMove = board.ToMove

	return result
}

// placePieces relocates the pieces a move touches: the mover, an en passant
// victim, the castling rook and a promoted pawn. It changes no other field, so
// the legality filter can use it on a scratch board. It returns the promoted kind.
func placePieces(board *chess.Board, move chess.Move) chess.Kind {
	mover := board.Get(move.From)

	board.Set(move.From, chess.Empty)
	if move.EnPassant {
		board.Set(chess.Sq(move.From.Row, move.To.Col), chess.Empty)
	}
	board.Set(move.To, mover)

	if move.Castle != chess.NoCastle {
		rookFrom, rookTo := move.Castle.RookCols()
		row := move.From.Row
		rook := board.Get(chess.Sq(row, rookFrom))
		board.Set(chess.Sq(row, rookFrom), chess.Empty)
		board.Set(chess.Sq(row, rookTo), rook)
	}

	if mover.Kind == chess.Pawn && move.To.Row == mover.Colour.PromotionRow() {
		kind := move.Promotion
		if kind == chess.NoKind {
			kind = chess.Queen // Default to queen
		}
		board.Set(move.To, chess.Piece{Colour: mover.Colour, Kind: kind})
		return kind
	}
	return chess.NoKind
}
