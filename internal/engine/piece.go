package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// stepMoves generates single-step moves (knight, king) to empty or opposing squares.
func stepMoves(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Move {
	var moves []chess.Move
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !to.Valid() {
			continue
		}
		target := board.Get(to)
		if target.IsEmpty() {
			moves = append(moves, chess.Move{From: from, To: to})
		} else if target.Colour != colour {
			moves = append(moves, chess.Move{From: from, To: to, Capture: true})
		}
	}
	return moves
}

// slideMoves walks each ray until the first occupant, which is included only
// when it is an opposing piece.
func slideMoves(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.Valid() {
			target := board.Get(to)
			if !target.IsEmpty() {
				if target.Colour != colour {
					moves = append(moves, chess.Move{From: from, To: to, Capture: true})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{From: from, To: to})
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// queenDirs is the union of diagonal and orthogonal rays.
var queenDirs = append(append([][2]int{}, diagonalDirs...), orthogonalDirs...)

// pseudoLegalMoves generates the piece-specific moves of the piece on from,
// ignoring whether they leave the mover's king attacked.
func pseudoLegalMoves(board *chess.Board, from chess.Square) []chess.Move {
	piece := board.Get(from)
	colour := piece.Colour

	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(board, from, colour)
	case chess.Knight:
		return stepMoves(board, from, colour, knightOffsets)
	case chess.Bishop:
		return slideMoves(board, from, colour, diagonalDirs)
	case chess.Rook:
		return slideMoves(board, from, colour, orthogonalDirs)
	case chess.Queen:
		return slideMoves(board, from, colour, queenDirs)
	case chess.King:
		moves := stepMoves(board, from, colour, kingOffsets)
		return append(moves, castleMoves(board, from, colour)...)
	}
	return nil
}
