package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

var (
	knightOffsets   = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	orthogonalDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	pawnCaptureCols = []int{-1, 1}
)

// IsAttacked returns true if any piece of the opponent of side attacks sq.
// It is a raw attack map: whose turn it is and pins are ignored, and sq may be empty.
func IsAttacked(board *chess.Board, side chess.Colour, sq chess.Square) bool {
	return isSquareAttacked(board, sq, side.Opposite())
}

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := KingSquare(board, colour)
	if !ok {
		return false
	}
	return IsAttacked(board, colour, kingSq)
}

// KingSquare finds the king of the given colour on the board.
func KingSquare(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	return board.Find(chess.Piece{Colour: colour, Kind: chess.King})
}

// isSquareAttacked returns true if the square is attacked by the given colour.
// The scan runs outward from sq, so it needs no knowledge of where the attackers are.
func isSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Check pawn attacks: an attacking pawn sits one row behind sq from its own
	// direction of travel.
	pawnRow := sq.Row - byColour.PawnDirection()
	for _, dc := range pawnCaptureCols {
		if board.Get(chess.Sq(pawnRow, sq.Col+dc)).Is(byColour, chess.Pawn) {
			return true
		}
	}

	for _, off := range knightOffsets {
		if board.Get(sq.Offset(off[0], off[1])).Is(byColour, chess.Knight) {
			return true
		}
	}

	for _, off := range kingOffsets {
		if board.Get(sq.Offset(off[0], off[1])).Is(byColour, chess.King) {
			return true
		}
	}

	if rayAttacked(board, sq, byColour, diagonalDirs, chess.Bishop) {
		return true
	}
	return rayAttacked(board, sq, byColour, orthogonalDirs, chess.Rook)
}

// rayAttacked walks each direction from sq until the first occupant. The ray
// attacks sq only if that occupant is an enemy slider (or queen) of the given kind.
func rayAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour, dirs [][2]int, slider chess.Kind) bool {
	for _, dir := range dirs {
		cur := sq.Offset(dir[0], dir[1])
		for cur.Valid() {
			piece := board.Get(cur)
			if !piece.IsEmpty() {
				if piece.Colour == byColour && (piece.Kind == slider || piece.Kind == chess.Queen) {
					return true
				}
				break // Blocked
			}
			cur = cur.Offset(dir[0], dir[1])
		}
	}
	return false
}
