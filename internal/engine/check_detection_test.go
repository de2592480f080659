package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestIsAttacked(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		side chess.Colour
		sq   string
		want bool
	}{
		{"black pawn attacks diagonally down", "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", chess.White, "e1", true},
		{"black pawn does not attack ahead", "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", chess.White, "d1", false},
		{"white pawn attacks diagonally up", "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1", chess.Black, "d5", true},
		{"white pawn does not attack ahead", "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1", chess.Black, "e5", false},
		{"white pawn does not attack behind", "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1", chess.Black, "d3", false},
		{"knight", "4k3/8/8/8/8/5n2/8/4K3 w - - 0 1", chess.White, "e1", true},
		{"knight other square", "4k3/8/8/8/8/5n2/8/4K3 w - - 0 1", chess.White, "g1", true},
		{"knight not adjacent", "4k3/8/8/8/8/5n2/8/4K3 w - - 0 1", chess.White, "f2", false},
		{"rook blocked", "4k3/8/8/8/4r3/8/4P3/4K3 w - - 0 1", chess.White, "e1", false},
		{"rook hits blocker", "4k3/8/8/8/4r3/8/4P3/4K3 w - - 0 1", chess.White, "e2", true},
		{"rook empty square", "4k3/8/8/8/4r3/8/4P3/4K3 w - - 0 1", chess.White, "e3", true},
		{"rook does not attack diagonally", "4k3/8/8/8/4r3/8/4P3/4K3 w - - 0 1", chess.White, "d3", false},
		{"bishop long diagonal", "4k3/8/8/b7/8/8/8/4K3 w - - 0 1", chess.White, "e1", true},
		{"bishop does not attack orthogonally", "4k3/8/8/b7/8/8/8/4K3 w - - 0 1", chess.White, "a1", false},
		{"queen diagonal blocked", "4k3/8/8/q7/8/2N5/8/4K3 w - - 0 1", chess.White, "e1", false},
		{"queen hits blocker", "4k3/8/8/q7/8/2N5/8/4K3 w - - 0 1", chess.White, "c3", true},
		{"queen orthogonal", "4k3/8/8/q7/8/2N5/8/4K3 w - - 0 1", chess.White, "h5", true},
		{"own piece does not attack", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", chess.White, "a8", false},
		{"king adjacency", "8/8/8/8/8/8/3k4/8 w - - 0 1", chess.White, "e1", true},
		{"king two squares away", "8/8/8/8/8/8/3k4/8 w - - 0 1", chess.White, "f3", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			if got := IsAttacked(board, tt.side, chess.MustSquare(tt.sq)); got != tt.want {
				t.Errorf("IsAttacked(%v, %s) = %v, want %v", tt.side, tt.sq, got, tt.want)
			}
		})
	}
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial", InitialFEN, chess.White, false},
		{"rook check", "4k3/8/8/8/8/8/8/4K2r w - - 0 1", chess.White, true},
		{"knight check on black", "4k3/8/3N4/8/8/8/8/4K3 b - - 0 1", chess.Black, true},
		{"no king", "8/8/8/8/8/8/8/7r w - - 0 1", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInCheck(mustBoard(t, tt.fen), tt.colour); got != tt.want {
				t.Errorf("IsInCheck() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKingSquare(t *testing.T) {
	board := NewInitialBoard()
	for colour, want := range map[chess.Colour]string{chess.White: "e1", chess.Black: "e8"} {
		sq, ok := KingSquare(board, colour)
		if !ok || sq.String() != want {
			t.Errorf("KingSquare(%v) = %v, %v; want %s", colour, sq, ok, want)
		}
	}
}
