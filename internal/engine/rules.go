package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side. It is informational and does not affect
// Evaluate.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			piece := board.Get(sq)
			if piece.IsEmpty() || piece.Kind == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if piece.Kind == chess.Pawn || piece.Kind == chess.Rook || piece.Kind == chess.Queen {
				return false
			}

			if piece.Colour == chess.White {
				whitePieces = append(whitePieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					whiteBishopOnLight = sq.IsLight()
				}
			} else {
				blackPieces = append(blackPieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					blackBishopOnLight = sq.IsLight()
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return true
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return true
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// IsStandardMaterial checks if the board has standard starting material:
// 8 pawns, 2 rooks, 2 knights, 2 bishops, 1 queen, 1 king per side.
func IsStandardMaterial(board *chess.Board) bool {
	expected := map[chess.Kind]int{
		chess.Pawn:   8,
		chess.Rook:   2,
		chess.Knight: 2,
		chess.Bishop: 2,
		chess.Queen:  1,
		chess.King:   1,
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for kind, n := range expected {
			if board.Count(colour, kind) != n {
				return false
			}
		}
	}
	return true
}

// HasSingleKings reports whether each side has exactly one king, the
// precondition for check and checkmate to be meaningful.
func HasSingleKings(board *chess.Board) bool {
	return board.Count(chess.White, chess.King) == 1 && board.Count(chess.Black, chess.King) == 1
}
