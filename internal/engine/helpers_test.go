package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// mustBoard parses fen or fails the test.
func mustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

// uci builds a bare move from coordinate text such as "e2e4" or "e7e8n".
func uci(text string) chess.Move {
	m := chess.Move{From: chess.MustSquare(text[0:2]), To: chess.MustSquare(text[2:4])}
	if len(text) == 5 {
		m.Promotion = chess.KindFromLetter(text[4])
	}
	return m
}

// play applies a sequence of coordinate moves or fails the test.
func play(t testing.TB, board *chess.Board, moves ...string) chess.MoveResult {
	t.Helper()
	var last chess.MoveResult
	for _, text := range moves {
		res, err := ApplyMove(board, uci(text))
		if err != nil {
			t.Fatalf("ApplyMove(%s) failed: %v", text, err)
		}
		last = res
	}
	return last
}

// destinations returns the target squares of moves as algebraic strings.
func destinations(moves []chess.Move) map[string]chess.Move {
	out := make(map[string]chess.Move, len(moves))
	for _, m := range moves {
		out[m.To.String()] = m
	}
	return out
}
