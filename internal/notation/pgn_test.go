package notation

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestMovetext(t *testing.T) {
	tests := []struct {
		name   string
		number uint
		colour chess.Colour
		sans   []string
		want   string
	}{
		{"white start", 1, chess.White, []string{"e4", "e5", "Nf3"}, "1. e4 e5 2. Nf3"},
		{"black start", 5, chess.Black, []string{"Nf6", "e5", "Nd5"}, "5... Nf6 6. e5 Nd5"},
		{"zero number", 0, chess.White, []string{"d4"}, "1. d4"},
		{"empty", 1, chess.White, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, Movetext(tt.number, tt.colour, tt.sans), tt.want)
		})
	}
}

func TestWritePGN(t *testing.T) {
	var buf bytes.Buffer
	rec := Record{
		Tags:          map[string]string{"White": "Ann \"The Rook\"", "Annotator": "zed"},
		StartFullmove: 1,
		StartColour:   chess.White,
		SAN:           []string{"e4", "e5", "Bc4", "Nc6", "Qh5", "Nf6", "Qxf7#"},
		Result:        "1-0",
	}
	testutil.AssertNoError(t, WritePGN(&buf, rec, 0))
	out := buf.String()

	testutil.AssertContains(t, out, "[Event \"?\"]\n[Site \"?\"]")
	testutil.AssertContains(t, out, `[White "Ann \"The Rook\""]`)
	testutil.AssertContains(t, out, "[Result \"1-0\"]\n[Annotator \"zed\"]\n\n")
	testutil.AssertContains(t, out, "1. e4 e5 2. Bc4 Nc6 3. Qh5 Nf6 4. Qxf7# 1-0\n")
	testutil.AssertNotContains(t, out, "[FEN")
}

func TestWritePGN_SetUpAndWrapping(t *testing.T) {
	var buf bytes.Buffer
	rec := Record{
		StartFEN:      "4k3/8/8/8/8/8/8/4K2R b K - 0 12",
		StartFullmove: 12,
		StartColour:   chess.Black,
		SAN:           []string{"Kd7", "Rh7+", "Kc6", "Rh6+", "Kb5", "Rh5+", "Ka4"},
	}
	testutil.AssertNoError(t, WritePGN(&buf, rec, 20))
	out := buf.String()

	testutil.AssertContains(t, out, "[Result \"*\"]")
	testutil.AssertContains(t, out, "[SetUp \"1\"]")
	testutil.AssertContains(t, out, "[FEN \"4k3/8/8/8/8/8/8/4K2R b K - 0 12\"]")
	testutil.AssertContains(t, out, "12... Kd7")

	movetext := out[strings.Index(out, "\n\n")+2:]
	for _, line := range strings.Split(strings.TrimRight(movetext, "\n"), "\n") {
		if len(line) > 20 {
			t.Errorf("line %q longer than 20", line)
		}
	}
	testutil.AssertTrue(t, strings.HasSuffix(out, "Ka4 *\n"), "movetext should end with the result")
}
