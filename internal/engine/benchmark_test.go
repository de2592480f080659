package engine

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Positions from the standard perft suite plus a quiet middlegame.
var benchPositions = []struct {
	name string
	fen  string
}{
	{"start", InitialFEN},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"},
	{"italian", "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4"},
	{"rook ending", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"},
}

func BenchmarkFEN(b *testing.B) {
	for _, p := range benchPositions {
		b.Run(p.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				board, err := NewBoardFromFEN(p.fen)
				if err != nil {
					b.Fatal(err)
				}
				_ = BoardToFEN(board)
			}
		})
	}
}

func BenchmarkAllLegalMoves(b *testing.B) {
	for _, p := range benchPositions {
		b.Run(p.name, func(b *testing.B) {
			board := mustBoard(b, p.fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				AllLegalMoves(board)
			}
		})
	}
}

func BenchmarkApplyMove(b *testing.B) {
	cases := []struct {
		name, fen, move string
	}{
		{"quiet", InitialFEN, "g1f3"},
		{"castle", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1", "e1c1"},
		{"en passant", "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3", "f5e6"},
		{"promotion", "8/P7/8/8/8/8/8/4K2k w - - 0 1", "a7a8q"},
	}
	for _, tt := range cases {
		b.Run(tt.name, func(b *testing.B) {
			board := mustBoard(b, tt.fen)
			move := uci(tt.move)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				scratch := *board
				if _, err := ApplyMove(&scratch, move); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEvaluate(b *testing.B) {
	for _, fen := range []string{
		InitialFEN,
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
	} {
		board := mustBoard(b, fen)
		b.Run(fmt.Sprintf("to_move_%s", board.ToMove), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Evaluate(board, nil)
			}
		})
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	board := mustBoard(b, benchPositions[1].fen)
	for i := 0; i < b.N; i++ {
		IsInCheck(board, chess.White)
	}
}

func BenchmarkPerft(b *testing.B) {
	board := mustBoard(b, benchPositions[1].fen)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Perft(board, 3)
	}
}

func BenchmarkPerftDivide(b *testing.B) {
	board := mustBoard(b, InitialFEN)
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers_%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				PerftDivide(board, 4, PerftOptions{Workers: workers})
			}
		})
	}
}
