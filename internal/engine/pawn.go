package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves generates the pseudo-legal moves of the pawn on from.
func pawnMoves(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	dir := colour.PawnDirection()

	// Forward move
	one := from.Offset(dir, 0)
	if one.Valid() && board.Get(one).IsEmpty() {
		moves = append(moves, pawnMove(colour, chess.Move{From: from, To: one}))

		// Double push from starting row, both squares empty
		if from.Row == colour.PawnStartRow() {
			two := from.Offset(2*dir, 0)
			if board.Get(two).IsEmpty() {
				moves = append(moves, chess.Move{From: from, To: two, DoubleStep: true})
			}
		}
	}

	// Captures
	epSq, hasEP := board.EnPassantTarget()
	for _, dc := range pawnCaptureCols {
		to := from.Offset(dir, dc)
		if !to.Valid() {
			continue
		}
		target := board.Get(to)
		if !target.IsEmpty() && target.Colour != colour {
			moves = append(moves, pawnMove(colour, chess.Move{From: from, To: to, Capture: true}))
			continue
		}
		// En passant: the destination is empty, the victim stands beside us.
		if hasEP && to == epSq && target.IsEmpty() &&
			board.Get(chess.Sq(from.Row, to.Col)).Is(colour.Opposite(), chess.Pawn) {
			moves = append(moves, chess.Move{From: from, To: to, Capture: true, EnPassant: true})
		}
	}

	return moves
}

// pawnMove marks a move reaching the last row as a promotion candidate.
// Queen is the default choice; PromotionChoices expands the alternatives.
func pawnMove(colour chess.Colour, m chess.Move) chess.Move {
	if m.To.Row == colour.PromotionRow() {
		m.Promotion = chess.Queen
	}
	return m
}

// PromotionChoices expands a promotion candidate into one move per promotable kind.
// Any other move is returned unchanged as a single-element slice.
func PromotionChoices(m chess.Move) []chess.Move {
	if !m.IsPromotion() {
		return []chess.Move{m}
	}
	out := make([]chess.Move, 0, len(chess.PromotionKinds))
	for _, kind := range chess.PromotionKinds {
		c := m
		c.Promotion = kind
		out = append(out, c)
	}
	return out
}

// ExpandPromotions applies PromotionChoices to every move.
func ExpandPromotions(moves []chess.Move) []chess.Move {
	out := make([]chess.Move, 0, len(moves))
	for _, m := range moves {
		out = append(out, PromotionChoices(m)...)
	}
	return out
}

// isPromotionKind reports whether a pawn may become kind.
func isPromotionKind(kind chess.Kind) bool {
	for _, k := range chess.PromotionKinds {
		if k == kind {
			return true
		}
	}
	return false
}
