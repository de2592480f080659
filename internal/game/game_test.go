package game

import (
	"sort"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

const afterE4 = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"

func newGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g
}

func playAll(t *testing.T, g *Game, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if _, _, err := g.Play(m); err != nil {
			t.Fatalf("Play(%q) error = %v", m, err)
		}
	}
}

func squareNames(sqs []chess.Square) []string {
	names := make([]string, len(sqs))
	for i, sq := range sqs {
		names[i] = sq.String()
	}
	sort.Strings(names)
	return names
}

func sans(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.SAN
	}
	return out
}

func TestNew(t *testing.T) {
	g := newGame(t, WithID("table-1"))

	testutil.AssertEqual(t, g.ID(), "table-1")
	testutil.AssertEqual(t, g.FEN(), engine.InitialFEN)
	testutil.AssertEqual(t, g.StartFEN(), engine.InitialFEN)
	testutil.AssertEqual(t, g.ToMove(), chess.White)
	testutil.AssertEqual(t, g.Verdict(), engine.Verdict{Status: engine.Ongoing})
	testutil.AssertEqual(t, len(g.History()), 0)
	testutil.AssertEqual(t, len(g.LegalMoves()), 20)
	testutil.AssertFalse(t, g.CanUndo())
	testutil.AssertFalse(t, g.CanRedo())
}

func TestNew_InvalidFEN(t *testing.T) {
	g, err := New(WithFEN("not a fen"))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
	testutil.AssertTrue(t, g == nil, "game should be nil on error")
}

func TestSelectSquare(t *testing.T) {
	tests := []struct {
		name   string
		square string
		want   []string
	}{
		{"pawn", "e2", []string{"e3", "e4"}},
		{"knight", "g1", []string{"f3", "h3"}},
		{"blocked bishop", "c1", nil},
		{"empty square", "e4", nil},
		{"opponent piece", "e7", nil},
	}

	g := newGame(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.SelectSquare(chess.MustSquare(tt.square))
			testutil.AssertEqual(t, squareNames(got), tt.want)
		})
	}
}

func TestSubmitMove(t *testing.T) {
	g := newGame(t)

	res, verdict, err := g.SubmitMove(chess.MustSquare("e2"), chess.MustSquare("e4"), chess.NoKind)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, res.Move.DoubleStep, "e2e4 should be a double step")
	testutil.AssertEqual(t, res.ToMove, chess.Black)
	testutil.AssertEqual(t, verdict.Status, engine.Ongoing)
	testutil.AssertEqual(t, g.FEN(), afterE4)

	history := g.History()
	testutil.AssertEqual(t, len(history), 1)
	testutil.AssertEqual(t, history[0].SAN, "e4")
	testutil.AssertEqual(t, history[0].UCI, "e2e4")
	testutil.AssertEqual(t, history[0].FEN, afterE4)
}

func TestSubmitMove_Illegal(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
	}{
		{"unreachable", "e2", "e5"},
		{"wrong side", "e7", "e5"},
		{"empty square", "e4", "e5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame(t)
			_, verdict, err := g.SubmitMove(chess.MustSquare(tt.from), chess.MustSquare(tt.to), chess.NoKind)
			testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
			testutil.AssertEqual(t, verdict.Status, engine.Ongoing)
			testutil.AssertEqual(t, g.FEN(), engine.InitialFEN)
			testutil.AssertEqual(t, len(g.History()), 0)
		})
	}
}

func TestSubmitMove_Promotion(t *testing.T) {
	const fen = "8/P7/8/8/8/8/8/k6K w - - 0 1"
	tests := []struct {
		name  string
		promo chess.Kind
		want  chess.Kind
		san   string
	}{
		{"default queen", chess.NoKind, chess.Queen, "a8=Q+"},
		{"knight", chess.Knight, chess.Knight, "a8=N"},
		{"rook", chess.Rook, chess.Rook, "a8=R+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame(t, WithFEN(fen))
			res, _, err := g.SubmitMove(chess.MustSquare("a7"), chess.MustSquare("a8"), tt.promo)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, res.PromotedTo, tt.want)

			board := g.Snapshot()
			testutil.AssertEqual(t, board.Get(chess.MustSquare("a8")), chess.W(tt.want))
			testutil.AssertEqual(t, g.History()[0].SAN, tt.san)
		})
	}
}

func TestPlay_ScholarsMate(t *testing.T) {
	g := newGame(t)
	playAll(t, g, "e4", "e5", "Bc4", "Nc6", "Qh5", "Nf6", "Qxf7#")

	want := engine.Verdict{Status: engine.Checkmate, Winner: chess.White}
	testutil.AssertEqual(t, g.Verdict(), want)
	testutil.AssertEqual(t, sans(g.History()), []string{"e4", "e5", "Bc4", "Nc6", "Qh5", "Nf6", "Qxf7#"})
	testutil.AssertEqual(t, len(g.LegalMoves()), 0)
	testutil.AssertEqual(t, len(g.SelectSquare(chess.MustSquare("e8"))), 0)

	_, verdict, err := g.Play("Ke7")
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)
	testutil.AssertEqual(t, verdict, want)

	_, _, err = g.SubmitMove(chess.MustSquare("a7"), chess.MustSquare("a6"), chess.NoKind)
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)
}

func TestPlay_Repetition(t *testing.T) {
	g := newGame(t)
	playAll(t, g, "Nf3", "Nf6", "Ng1", "Ng8")
	testutil.AssertEqual(t, g.Verdict().Status, engine.Ongoing)

	playAll(t, g, "Nf3", "Nf6", "Ng1", "Ng8")
	testutil.AssertEqual(t, g.Verdict().Status, engine.DrawRepetition)
	testutil.AssertContains(t, g.PGN(), "[Result \"1/2-1/2\"]")
}

func TestPlay_RepetitionWithPinnedEnPassant(t *testing.T) {
	// exd6 would expose the king on a5 to the rook, so the d6 target does
	// not distinguish the start from its later occurrences.
	g := newGame(t, WithFEN("7k/8/8/K2pP2r/8/8/8/8 w - d6 0 1"))
	playAll(t, g, "Ka4", "Kg8", "Ka5", "Kh8")
	testutil.AssertEqual(t, g.Verdict().Status, engine.Ongoing)

	playAll(t, g, "Ka4", "Kg8", "Ka5", "Kh8")
	testutil.AssertEqual(t, g.Verdict().Status, engine.DrawRepetition)
}

func TestPlay_Rejected(t *testing.T) {
	g := newGame(t)
	_, _, err := g.Play("e5")
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	testutil.AssertEqual(t, g.FEN(), engine.InitialFEN)
}

func TestUndoRedo(t *testing.T) {
	g := newGame(t)
	playAll(t, g, "e4", "e5")
	afterE5 := g.FEN()

	testutil.AssertNoError(t, g.Undo())
	testutil.AssertEqual(t, g.FEN(), afterE4)
	testutil.AssertTrue(t, g.CanRedo())
	testutil.AssertEqual(t, sans(g.History()), []string{"e4"})

	testutil.AssertNoError(t, g.Redo())
	testutil.AssertEqual(t, g.FEN(), afterE5)
	testutil.AssertFalse(t, g.CanRedo())

	testutil.AssertNoError(t, g.Undo())
	testutil.AssertNoError(t, g.Undo())
	testutil.AssertEqual(t, g.FEN(), engine.InitialFEN)
	testutil.AssertErrorIs(t, g.Undo(), errors.ErrNoHistory)

	testutil.AssertNoError(t, g.Redo())
	testutil.AssertEqual(t, g.FEN(), afterE4)
}

func TestUndo_NewMoveClearsRedo(t *testing.T) {
	g := newGame(t)
	playAll(t, g, "e4", "e5")
	testutil.AssertNoError(t, g.Undo())

	playAll(t, g, "c5")
	testutil.AssertFalse(t, g.CanRedo())
	testutil.AssertErrorIs(t, g.Redo(), errors.ErrNoHistory)
	testutil.AssertEqual(t, sans(g.History()), []string{"e4", "c5"})
}

func TestUndo_AfterCheckmate(t *testing.T) {
	g := newGame(t)
	playAll(t, g, "f3", "e5", "g4", "Qh4#")
	testutil.AssertEqual(t, g.Verdict(), engine.Verdict{Status: engine.Checkmate, Winner: chess.Black})

	testutil.AssertNoError(t, g.Undo())
	testutil.AssertEqual(t, g.Verdict().Status, engine.Ongoing)
	playAll(t, g, "Nc6")
	testutil.AssertEqual(t, g.ToMove(), chess.White)
}

func TestUndo_RestoresCastlingAndEnPassant(t *testing.T) {
	g := newGame(t, WithFEN("r3k2r/8/8/8/3p4/8/4P3/R3K2R w KQkq - 0 1"))
	start := g.FEN()

	playAll(t, g, "e4")
	testutil.AssertContains(t, g.FEN(), " e3 ")
	playAll(t, g, "dxe3")
	playAll(t, g, "O-O")

	for i := 0; i < 3; i++ {
		testutil.AssertNoError(t, g.Undo())
	}
	testutil.AssertEqual(t, g.FEN(), start)
}

func TestCaptured(t *testing.T) {
	g := newGame(t)
	playAll(t, g, "e4", "d5", "exd5", "Qxd5")

	testutil.AssertEqual(t, g.Captured(chess.Black), []chess.Piece{chess.B(chess.Pawn)})
	testutil.AssertEqual(t, g.Captured(chess.White), []chess.Piece{chess.W(chess.Pawn)})

	testutil.AssertNoError(t, g.Undo())
	testutil.AssertEqual(t, g.Captured(chess.White), []chess.Piece(nil))
}

func TestOnTurnChange(t *testing.T) {
	g := newGame(t)
	var turns []chess.Colour
	g.OnTurnChange(func(c chess.Colour) {
		turns = append(turns, c)
	})

	playAll(t, g, "e4", "e5")
	testutil.AssertNoError(t, g.Undo())
	testutil.AssertNoError(t, g.Redo())
	g.Reset()

	want := []chess.Colour{chess.Black, chess.White, chess.Black, chess.White, chess.White}
	testutil.AssertEqual(t, turns, want)

	_, _, err := g.Play("e5")
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	testutil.AssertEqual(t, len(turns), len(want), "rejected moves should not notify")
}

func TestReset(t *testing.T) {
	const fen = "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"
	g := newGame(t, WithFEN(fen))
	playAll(t, g, "e4", "Kd7")
	testutil.AssertNoError(t, g.Undo())

	g.Reset()
	testutil.AssertEqual(t, g.FEN(), fen)
	testutil.AssertEqual(t, len(g.History()), 0)
	testutil.AssertFalse(t, g.CanRedo())
}

func TestPGN(t *testing.T) {
	g := newGame(t, WithTag("White", "Ann"), WithTag("Event", "Club night"))
	playAll(t, g, "e4", "e5", "Bc4", "Nc6", "Qh5", "Nf6", "Qxf7#")

	pgn := g.PGN()
	testutil.AssertContains(t, pgn, "[Event \"Club night\"]")
	testutil.AssertContains(t, pgn, "[White \"Ann\"]")
	testutil.AssertContains(t, pgn, "[Result \"1-0\"]")
	testutil.AssertContains(t, pgn, "1. e4 e5 2. Bc4 Nc6 3. Qh5 Nf6 4. Qxf7# 1-0\n")
	testutil.AssertNotContains(t, pgn, "[FEN")
}

func TestPGN_SetUp(t *testing.T) {
	const fen = "4k3/8/8/8/8/8/8/4K2R b K - 0 12"
	g := newGame(t, WithFEN(fen))
	playAll(t, g, "Kd7", "Rh7+")

	pgn := g.PGN()
	testutil.AssertContains(t, pgn, "[SetUp \"1\"]")
	testutil.AssertContains(t, pgn, "[FEN \""+fen+"\"]")
	testutil.AssertContains(t, pgn, "12... Kd7 13. Rh7+ *\n")
}

func TestPGN_LineLength(t *testing.T) {
	g := newGame(t, WithLineLength(20))
	playAll(t, g, "e4", "e5", "Nf3", "Nc6", "Bb5", "a6", "Ba4", "Nf6")

	pgn := g.PGN()
	movetext := pgn[strings.Index(pgn, "\n\n")+2:]
	for _, line := range strings.Split(strings.TrimRight(movetext, "\n"), "\n") {
		if len(line) > 20 {
			t.Errorf("line %q longer than 20", line)
		}
	}
}

func TestWithRecord(t *testing.T) {
	games, err := notation.ReadPGN(strings.NewReader(
		"[White \"Ann\"]\n[Black \"Bob\"]\n\n1. e4 e5 2. Bc4 Nc6 3. Qh5 Nf6?? 4. Qxf7# 1-0\n"))
	testutil.AssertNoError(t, err)

	g := newGame(t, WithRecord(games[0]))
	testutil.AssertEqual(t, len(g.History()), 7)
	testutil.AssertEqual(t, g.Verdict(), engine.Verdict{Status: engine.Checkmate, Winner: chess.White})

	pgn := g.PGN()
	testutil.AssertContains(t, pgn, "[White \"Ann\"]")
	testutil.AssertContains(t, pgn, "4. Qxf7# 1-0\n")
}

func TestWithRecord_SetUp(t *testing.T) {
	rec := notation.Record{
		StartFEN: "4k3/8/8/8/8/8/8/4K2R b K - 0 12",
		SAN:      []string{"Kd7", "Rh7+"},
	}
	g := newGame(t, WithRecord(rec))
	testutil.AssertEqual(t, g.StartFEN(), rec.StartFEN)
	testutil.AssertEqual(t, len(g.History()), 2)
	testutil.AssertTrue(t, g.CanUndo())
	testutil.AssertNoError(t, g.Undo())
	testutil.AssertEqual(t, g.History()[0].SAN, "Kd7")
}

func TestWithRecord_IllegalMove(t *testing.T) {
	rec := notation.Record{SAN: []string{"e4", "e5", "Ke3"}}
	_, err := New(WithRecord(rec))
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	testutil.AssertContains(t, err.Error(), "recorded move 3")
}

func TestWithRecord_KeepsResult(t *testing.T) {
	rec := notation.Record{SAN: []string{"e4", "e5", "Nf3"}, Result: "1-0"}

	tests := []struct {
		name   string
		change func(g *Game) error
		want   string
	}{
		{"as loaded", func(g *Game) error { return nil }, "1-0"},
		{"move played", func(g *Game) error {
			_, _, err := g.Play("Nc6")
			return err
		}, "*"},
		{"move undone", func(g *Game) error { return g.Undo() }, "*"},
		{"reset", func(g *Game) error {
			g.Reset()
			return nil
		}, "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame(t, WithRecord(rec))
			testutil.AssertNoError(t, tt.change(g))
			testutil.AssertEqual(t, g.Result(), tt.want)
			testutil.AssertContains(t, g.PGN(), "[Result \""+tt.want+"\"]")
		})
	}

	g := newGame(t, WithRecord(rec))
	testutil.AssertContains(t, g.PGN(), "1. e4 e5 2. Nf3 1-0\n")
}

func TestWithRecord_VerdictWins(t *testing.T) {
	rec := notation.Record{SAN: []string{"f3", "e5", "g4", "Qh4#"}, Result: "1-0"}
	g := newGame(t, WithRecord(rec))
	testutil.AssertEqual(t, g.Result(), "0-1")
}
