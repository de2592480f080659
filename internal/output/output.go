// Package output renders positions and perft reports as text, JSON or SVG.
package output

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// Renderer is the interface for writing positions and perft results.
// Different implementations handle different output formats.
type Renderer interface {
	// RenderPosition writes a position with its legal moves.
	RenderPosition(w io.Writer, pos *Position) error

	// RenderPerft writes a perft report.
	RenderPerft(w io.Writer, report engine.PerftReport) error
}

// NewRenderer returns the renderer for cfg.Format.
func NewRenderer(cfg *config.OutputConfig) Renderer {
	switch cfg.Format {
	case config.JSON:
		return NewJSONRenderer()
	case config.SVG:
		return NewSVGRenderer(cfg.SquareSize, cfg.Coordinates)
	default:
		return NewTextRenderer(cfg.Color, cfg.Coordinates)
	}
}

// MoveInfo is one legal move in both notations.
type MoveInfo struct {
	Move chess.Move
	UCI  string
	SAN  string
}

// Position is everything a renderer shows about one position.
type Position struct {
	Board    chess.Board
	Verdict  engine.Verdict
	InCheck  bool
	LastMove *chess.Move
	Moves    []MoveInfo
	Notes    []string // facts about the material that are not part of the verdict
}

// NewPosition evaluates board and lists its legal moves, one per
// promotion piece. lastMove may be nil.
func NewPosition(board *chess.Board, verdict engine.Verdict, lastMove *chess.Move) *Position {
	pos := &Position{
		Board:    *board,
		Verdict:  verdict,
		InCheck:  engine.IsInCheck(board, board.ToMove),
		LastMove: lastMove,
	}
	for _, m := range engine.ExpandPromotions(engine.AllLegalMoves(board)) {
		san, err := notation.SAN(board, m)
		if err != nil {
			continue
		}
		pos.Moves = append(pos.Moves, MoveInfo{Move: m, UCI: m.UCI(), SAN: san})
	}
	if !engine.HasSingleKings(board) {
		pos.Notes = append(pos.Notes, NoteKings)
	} else if engine.HasInsufficientMaterial(board) {
		pos.Notes = append(pos.Notes, NoteInsufficientMaterial)
	}
	return pos
}

// Notes attached to a Position.
const (
	NoteKings                = "not exactly one king per side"
	NoteInsufficientMaterial = "insufficient material to mate"
)

// FEN returns the position in FEN.
func (p *Position) FEN() string {
	return engine.BoardToFEN(&p.Board)
}

func (p *Position) highlighted(sq chess.Square) bool {
	return p.LastMove != nil && (p.LastMove.From == sq || p.LastMove.To == sq)
}
