package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// TextRenderer draws an ASCII board. With colour enabled squares and pieces
// use ANSI colours; otherwise empty light squares are '.' and dark ones '+'.
type TextRenderer struct {
	colour      bool
	coordinates bool
	printer     *message.Printer

	light, dark, highlight color.Attribute
	whitePiece, blackPiece color.Attribute
}

// NewTextRenderer creates a text renderer.
func NewTextRenderer(colour, coordinates bool) *TextRenderer {
	return &TextRenderer{
		colour:      colour,
		coordinates: coordinates,
		printer:     message.NewPrinter(language.English),
		light:       color.BgHiYellow,
		dark:        color.BgGreen,
		highlight:   color.BgCyan,
		whitePiece:  color.FgHiWhite,
		blackPiece:  color.FgBlack,
	}
}

// RenderPosition writes the board followed by FEN, side to move, status
// and the legal moves in SAN.
func (r *TextRenderer) RenderPosition(w io.Writer, pos *Position) error {
	var sb strings.Builder
	r.drawBoard(&sb, pos)

	fmt.Fprintf(&sb, "FEN: %s\n", pos.FEN())
	fmt.Fprintf(&sb, "To move: %s", pos.Board.ToMove)
	if pos.InCheck && !pos.Verdict.IsOver() {
		sb.WriteString(" (check)")
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Status: %s\n", pos.Verdict)
	if len(pos.Notes) > 0 {
		fmt.Fprintf(&sb, "Note: %s\n", strings.Join(pos.Notes, "; "))
	}

	sans := make([]string, len(pos.Moves))
	for i, m := range pos.Moves {
		sans[i] = m.SAN
	}
	fmt.Fprintf(&sb, "Moves (%d): %s\n", len(sans), strings.Join(sans, " "))

	_, err := io.WriteString(w, sb.String())
	return err
}

func (r *TextRenderer) drawBoard(sb *strings.Builder, pos *Position) {
	if r.coordinates {
		sb.WriteString("  a b c d e f g h\n")
	}
	for row := 0; row < chess.BoardSize; row++ {
		rank := byte('8' - row)
		if r.coordinates {
			sb.WriteByte(rank)
			sb.WriteByte(' ')
		}
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			sb.WriteString(r.cell(pos, sq))
			if !r.colour && col < chess.BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		if r.coordinates {
			sb.WriteByte(' ')
			sb.WriteByte(rank)
		}
		sb.WriteByte('\n')
	}
	if r.coordinates {
		sb.WriteString("  a b c d e f g h\n")
	}
}

// cell renders one square; coloured cells are two characters wide.
func (r *TextRenderer) cell(pos *Position, sq chess.Square) string {
	piece := pos.Board.Get(sq)
	if !r.colour {
		switch {
		case !piece.IsEmpty():
			return string(piece.Letter())
		case sq.IsLight():
			return "."
		default:
			return "+"
		}
	}

	bg := r.dark
	switch {
	case pos.highlighted(sq):
		bg = r.highlight
	case sq.IsLight():
		bg = r.light
	}
	if piece.IsEmpty() {
		return paint("  ", bg)
	}
	fg := r.whitePiece
	if piece.Colour == chess.Black {
		fg = r.blackPiece
	}
	return paint(string(piece.Kind.Letter())+" ", bg, fg, color.Bold)
}

// paint colours text regardless of color.NoColor.
func paint(text string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(text)
}

// RenderPerft writes the divide lines, then totals with digit grouping.
func (r *TextRenderer) RenderPerft(w io.Writer, report engine.PerftReport) error {
	var sb strings.Builder
	for _, d := range report.Divide {
		sb.WriteString(r.printer.Sprintf("%s: %d\n", d.Move.UCI(), d.Nodes))
	}
	if len(report.Divide) > 0 {
		sb.WriteByte('\n')
	}
	sb.WriteString(r.printer.Sprintf("Depth: %d\n", report.Depth))
	sb.WriteString(r.printer.Sprintf("Nodes: %d\n", report.Nodes))
	if report.UniqueLeaves > 0 {
		sb.WriteString(r.printer.Sprintf("Unique positions: %d\n", report.UniqueLeaves))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
