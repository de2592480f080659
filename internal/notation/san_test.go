package notation

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

const scholarsPrelude = "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4"

func TestSAN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want string
	}{
		{"pawn push", engine.InitialFEN, "e2e4", "e4"},
		{"knight", engine.InitialFEN, "g1f3", "Nf3"},
		{"mate", scholarsPrelude, "h5f7", "Qxf7#"},
		{"kingside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", "O-O"},
		{"queenside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", "O-O-O"},
		{"pawn capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4d5", "exd5"},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "e5d6", "exd6"},
		{"promotion default", "k7/4P3/8/8/8/8/8/4K3 w - - 0 1", "e7e8", "e8=Q+"},
		{"underpromotion", "k7/4P3/8/8/8/8/8/4K3 w - - 0 1", "e7e8n", "e8=N"},
		{"file disambiguation", "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1", "b1d2", "Nbd2"},
		{"rank disambiguation", "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", "a1a3", "R1a3"},
		{"other rank", "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", "a5a3", "R5a3"},
		{"square disambiguation", "k7/8/8/8/8/3Q4/8/3Q1Q1K w - - 0 1", "d1e2", "Qd1e2"},
		{"pinned rival ignored", "4k3/8/8/b7/8/2N5/8/4K1N1 w - - 0 1", "g1e2", "Ne2"},
		{"check", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1a8", "Ra8+"},
		{"piece capture", "4k3/8/8/3p4/8/4N3/8/4K3 w - - 0 1", "e3d5", "Nxd5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoard(t, tt.fen)
			before := *board
			got, err := SAN(board, testutil.UCI(t, tt.move))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
			testutil.AssertEqual(t, *board, before, "SAN modified the board")
		})
	}
}

func TestSAN_Illegal(t *testing.T) {
	_, err := SAN(engine.NewInitialBoard(), testutil.UCI(t, "e2e5"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
}

func TestSAN_RoundTrip(t *testing.T) {
	for _, fen := range []string{
		engine.InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	} {
		board := testutil.MustBoard(t, fen)
		for _, m := range engine.ExpandPromotions(engine.AllLegalMoves(board)) {
			san, err := SAN(board, m)
			if err != nil {
				t.Fatalf("SAN(%s): %v", m.UCI(), err)
			}
			back, err := ParseMove(board, san)
			if err != nil {
				t.Fatalf("ParseMove(%q) for %s: %v", san, m.UCI(), err)
			}
			if back.UCI() != m.UCI() {
				t.Errorf("ParseMove(SAN(%s) = %q) = %s", m.UCI(), san, back.UCI())
			}
		}
	}
}
