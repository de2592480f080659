package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// MustBoard parses a FEN string or fails the test.
func MustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

// UCI builds a bare move from coordinate text such as "e2e4" or "e7e8n".
// Flags are left for the engine to resolve.
func UCI(t testing.TB, text string) chess.Move {
	t.Helper()
	if len(text) != 4 && len(text) != 5 {
		t.Fatalf("bad coordinate move %q", text)
	}
	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		t.Fatalf("bad coordinate move %q: %v", text, err)
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		t.Fatalf("bad coordinate move %q: %v", text, err)
	}
	m := chess.Move{From: from, To: to}
	if len(text) == 5 {
		m.Promotion = chess.KindFromLetter(text[4])
	}
	return m
}

// MustApply plays coordinate moves on board or fails the test. It returns the
// result of the last move.
func MustApply(t testing.TB, board *chess.Board, moves ...string) chess.MoveResult {
	t.Helper()
	var last chess.MoveResult
	for _, text := range moves {
		res, err := engine.ApplyMove(board, UCI(t, text))
		if err != nil {
			t.Fatalf("ApplyMove(%s) on %s failed: %v", text, engine.BoardToFEN(board), err)
		}
		last = res
	}
	return last
}

// AssertFEN fails if the board does not serialise to want.
func AssertFEN(t testing.TB, board *chess.Board, want string) {
	t.Helper()
	if got := engine.BoardToFEN(board); got != want {
		t.Errorf("FEN mismatch:\n got: %s\nwant: %s", got, want)
	}
}
