package output

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

var glyphs = map[chess.Piece]string{
	chess.W(chess.King): "♔", chess.W(chess.Queen): "♕", chess.W(chess.Rook): "♖",
	chess.W(chess.Bishop): "♗", chess.W(chess.Knight): "♘", chess.W(chess.Pawn): "♙",
	chess.B(chess.King): "♚", chess.B(chess.Queen): "♛", chess.B(chess.Rook): "♜",
	chess.B(chess.Bishop): "♝", chess.B(chess.Knight): "♞", chess.B(chess.Pawn): "♟",
}

const (
	lightFill     = "fill:#f0d9b5"
	darkFill      = "fill:#b58863"
	highlightFill = "fill:#cdd16a"
	checkFill     = "fill:#e06666"
)

// SVGRenderer draws a board diagram. Perft reports have no diagram and are
// written as plain text.
type SVGRenderer struct {
	squareSize  int
	coordinates bool
	text        *TextRenderer
}

// NewSVGRenderer creates an SVG renderer with squares of squareSize pixels.
func NewSVGRenderer(squareSize int, coordinates bool) *SVGRenderer {
	return &SVGRenderer{
		squareSize:  squareSize,
		coordinates: coordinates,
		text:        NewTextRenderer(false, false),
	}
}

// RenderPosition writes a standalone SVG document. The last move's squares
// are tinted and a king in check is marked red.
func (r *SVGRenderer) RenderPosition(w io.Writer, pos *Position) error {
	cw := &errWriter{w: w}
	size := r.squareSize
	margin := 0
	if r.coordinates {
		margin = size / 2
	}
	edge := 8*size + 2*margin

	canvas := svg.New(cw)
	canvas.Start(edge, edge)
	canvas.Title(pos.FEN())

	var checked chess.Square
	inCheck := false
	if pos.InCheck {
		checked, inCheck = engine.KingSquare(&pos.Board, pos.Board.ToMove)
	}

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			x, y := margin+col*size, margin+row*size

			fill := darkFill
			switch {
			case inCheck && sq == checked:
				fill = checkFill
			case pos.highlighted(sq):
				fill = highlightFill
			case sq.IsLight():
				fill = lightFill
			}
			canvas.Rect(x, y, size, size, fill)

			if g, ok := glyphs[pos.Board.Get(sq)]; ok {
				canvas.Text(x+size/2, y+size*4/5, g,
					fmt.Sprintf("text-anchor:middle;font-size:%dpx", size*4/5))
			}
		}
	}

	if r.coordinates {
		style := fmt.Sprintf("text-anchor:middle;font-size:%dpx;fill:#555", margin*3/4)
		for i := 0; i < chess.BoardSize; i++ {
			centre := margin + i*size + size/2
			canvas.Text(centre, edge-margin/4, string(rune('a'+i)), style)
			canvas.Text(margin/2, centre+margin/4, string(rune('8'-i)), style)
		}
	}

	canvas.End()
	return cw.err
}

// RenderPerft writes the report as plain text.
func (r *SVGRenderer) RenderPerft(w io.Writer, report engine.PerftReport) error {
	return r.text.RenderPerft(w, report)
}

// errWriter keeps the first write error, since svgo drops them.
type errWriter struct {
	w   io.Writer
	err error
}

func (c *errWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.err = err
	return n, err
}
