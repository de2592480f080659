package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castleMoves generates the castling candidates for the king on from. The king
// must stand on its home square and the rook on its home corner; every square
// strictly between them must be empty, and the king may not start on, pass
// through, or land on an attacked square.
func castleMoves(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Move {
	home := chess.Sq(colour.HomeRow(), chess.KingStartCol)
	if from != home {
		return nil
	}

	var moves []chess.Move
	for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
		if !board.Castling.Has(colour, side) {
			continue
		}
		rookCol, _ := side.RookCols()
		if !board.Get(chess.Sq(home.Row, rookCol)).Is(colour, chess.Rook) {
			continue
		}
		if !pathEmpty(board, home.Row, home.Col, rookCol) {
			continue
		}
		if !kingPathSafe(board, colour, home, side.KingDestCol()) {
			continue
		}
		moves = append(moves, chess.Move{
			From:   from,
			To:     chess.Sq(home.Row, side.KingDestCol()),
			Castle: side,
		})
	}
	return moves
}

// pathEmpty reports whether every square strictly between two columns of a row is empty.
func pathEmpty(board *chess.Board, row, fromCol, toCol int) bool {
	step := sign(toCol - fromCol)
	for col := fromCol + step; col != toCol; col += step {
		if !board.Get(chess.Sq(row, col)).IsEmpty() {
			return false
		}
	}
	return true
}

// kingPathSafe reports whether the king's square, every square it crosses, and
// its landing square are all unattacked.
func kingPathSafe(board *chess.Board, colour chess.Colour, king chess.Square, destCol int) bool {
	step := sign(destCol - king.Col)
	for col := king.Col; ; col += step {
		if IsAttacked(board, colour, chess.Sq(king.Row, col)) {
			return false
		}
		if col == destCol {
			return true
		}
	}
}

// updateCastlingRights revokes rights lost by a move: any king move loses both
// wings, and a rook leaving or being captured on its home corner loses that wing.
// mover is the moving piece and captured the pre-move occupant of the destination.
func updateCastlingRights(board *chess.Board, move chess.Move, mover, captured chess.Piece) {
	if mover.Kind == chess.King {
		board.Castling.RevokeAll(mover.Colour)
	}
	if mover.Kind == chess.Rook {
		revokeRookCorner(board, mover.Colour, move.From)
	}
	if captured.Kind == chess.Rook {
		revokeRookCorner(board, captured.Colour, move.To)
	}
}

// revokeRookCorner clears the wing whose rook starts on sq.
func revokeRookCorner(board *chess.Board, colour chess.Colour, sq chess.Square) {
	if sq.Row != colour.HomeRow() {
		return
	}
	switch sq.Col {
	case chess.KingsideRookCol:
		board.Castling.Revoke(colour, chess.Kingside)
	case chess.QueensideRookCol:
		board.Castling.Revoke(colour, chess.Queenside)
	}
}
