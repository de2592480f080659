package engine

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	notnil "github.com/notnil/chess"
)

// referenceMoves lists the legal moves of fen according to an independent
// move generator, in coordinate notation.
func referenceMoves(t *testing.T, fen string) []string {
	t.Helper()
	opt, err := notnil.FEN(fen)
	if err != nil {
		t.Fatalf("reference generator rejected %q: %v", fen, err)
	}
	game := notnil.NewGame(opt, notnil.UseNotation(notnil.UCINotation{}))
	var out []string
	for _, m := range game.ValidMoves() {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

func TestLegalMoves_MatchReferenceGenerator(t *testing.T) {
	fens := append([]string{}, suiteFENs...)
	fens = append(fens,
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1",
		"R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 30",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1",
		"8/8/8/K2pP2r/8/8/8/7k w - d6 0 1",
	)

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			board := mustBoard(t, fen)
			got := sortedUCI(ExpandPromotions(AllLegalMoves(board)))
			if diff := cmp.Diff(referenceMoves(t, fen), got, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("moves mismatch (-reference +got):\n%s", diff)
			}

			// One ply deeper catches errors in the state a move leaves behind.
			for _, m := range ExpandPromotions(AllLegalMoves(board)) {
				child := *board
				if _, err := ApplyMove(&child, m); err != nil {
					t.Fatalf("ApplyMove(%s): %v", m.UCI(), err)
				}
				childFEN := BoardToFEN(&child)
				got := sortedUCI(ExpandPromotions(AllLegalMoves(&child)))
				if diff := cmp.Diff(referenceMoves(t, childFEN), got, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("after %s (%s) mismatch (-reference +got):\n%s", m.UCI(), childFEN, diff)
				}
			}
		})
	}
}
