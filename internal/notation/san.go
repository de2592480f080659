// Package notation converts between moves and their text forms: Standard
// Algebraic Notation, coordinate (UCI) notation and PGN movetext.
package notation

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// SAN returns the Standard Algebraic Notation of move, which must be legal on
// board. board is the position before the move and is not modified.
//
// When several pieces of the same kind can reach the destination, the origin
// file is added if it is unique among them, else the origin rank, else both.
func SAN(board *chess.Board, move chess.Move) (string, error) {
	after := *board
	res, err := engine.ApplyMove(&after, move)
	if err != nil {
		return "", err
	}
	legal := res.Move

	var sb strings.Builder
	piece := board.Get(legal.From)

	switch {
	case legal.Castle != chess.NoCastle:
		sb.WriteString(legal.Castle.String())
	case piece.Kind == chess.Pawn:
		if isCapture(board, legal) {
			sb.WriteByte(legal.From.File())
			sb.WriteByte('x')
		}
		sb.WriteString(legal.To.String())
		if legal.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(legal.Promotion.Letter())
		}
	default:
		sb.WriteByte(piece.Kind.Letter())
		sb.WriteString(disambiguation(board, legal))
		if isCapture(board, legal) {
			sb.WriteByte('x')
		}
		sb.WriteString(legal.To.String())
	}

	sb.WriteString(checkSuffix(&after))
	return sb.String(), nil
}

func isCapture(board *chess.Board, m chess.Move) bool {
	return m.EnPassant || !board.Get(m.To).IsEmpty()
}

// disambiguation returns the origin qualifier needed to tell m apart from
// other moves of the same piece kind to the same square.
func disambiguation(board *chess.Board, m chess.Move) string {
	piece := board.Get(m.From)

	var rivals []chess.Square
	for _, other := range engine.AllLegalMoves(board) {
		if other.To == m.To && other.From != m.From && board.Get(other.From) == piece {
			rivals = append(rivals, other.From)
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range rivals {
		if sq.Col == m.From.Col {
			sameFile = true
		}
		if sq.Row == m.From.Row {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return string(m.From.File())
	case !sameRank:
		return string(m.From.Rank())
	default:
		return m.From.String()
	}
}

// checkSuffix returns "#", "+" or "" for the position after a move.
func checkSuffix(after *chess.Board) string {
	if !engine.IsInCheck(after, after.ToMove) {
		return ""
	}
	if engine.HasLegalMoves(after, after.ToMove) {
		return "+"
	}
	return "#"
}
