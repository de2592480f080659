package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// JSONPosition represents a position in JSON format.
type JSONPosition struct {
	FEN      string     `json:"fen"`
	ToMove   string     `json:"toMove"` // "white" or "black"
	Status   string     `json:"status"`
	Winner   string     `json:"winner,omitempty"`
	Result   string     `json:"result"`
	InCheck  bool       `json:"inCheck"`
	Board    []string   `json:"board"` // ranks 8 to 1, '.' for empty
	LastMove string     `json:"lastMove,omitempty"`
	Moves    []JSONMove `json:"moves"`
	Notes    []string   `json:"notes,omitempty"`
}

// JSONMove represents a legal move in JSON format.
type JSONMove struct {
	UCI       string `json:"uci"`
	SAN       string `json:"san"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Captured  bool   `json:"capture,omitempty"`
	Castle    string `json:"castle,omitempty"`
	Promotion string `json:"promotion,omitempty"`
}

// JSONPerft represents a perft report in JSON format.
type JSONPerft struct {
	Depth        int            `json:"depth"`
	Nodes        uint64         `json:"nodes"`
	UniqueLeaves int            `json:"uniqueLeaves,omitempty"`
	Divide       []JSONPerftRow `json:"divide,omitempty"`
}

// JSONPerftRow is the node count below one root move.
type JSONPerftRow struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// JSONRenderer writes indented JSON documents.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSON renderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// RenderPosition writes PositionToJSON(pos).
func (JSONRenderer) RenderPosition(w io.Writer, pos *Position) error {
	return encode(w, PositionToJSON(pos))
}

// RenderPerft writes PerftToJSON(report).
func (JSONRenderer) RenderPerft(w io.Writer, report engine.PerftReport) error {
	return encode(w, PerftToJSON(report))
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PositionToJSON converts a position to JSON format.
func PositionToJSON(pos *Position) *JSONPosition {
	jp := &JSONPosition{
		FEN:     pos.FEN(),
		ToMove:  colourName(pos.Board.ToMove),
		Status:  pos.Verdict.Status.String(),
		Result:  pos.Verdict.Result(),
		InCheck: pos.InCheck,
		Board:   make([]string, 0, chess.BoardSize),
		Moves:   make([]JSONMove, 0, len(pos.Moves)),
		Notes:   pos.Notes,
	}
	if pos.Verdict.Status == engine.Checkmate {
		jp.Winner = colourName(pos.Verdict.Winner)
	}
	if pos.LastMove != nil {
		jp.LastMove = pos.LastMove.UCI()
	}

	for row := 0; row < chess.BoardSize; row++ {
		rank := make([]byte, chess.BoardSize)
		for col := range rank {
			rank[col] = pos.Board.Get(chess.Sq(row, col)).Letter()
		}
		jp.Board = append(jp.Board, string(rank))
	}

	for _, m := range pos.Moves {
		jm := JSONMove{
			UCI:      m.UCI,
			SAN:      m.SAN,
			From:     m.Move.From.String(),
			To:       m.Move.To.String(),
			Piece:    pos.Board.Get(m.Move.From).Kind.String(),
			Captured: m.Move.Capture,
		}
		if m.Move.Castle != chess.NoCastle {
			jm.Castle = m.Move.Castle.String()
		}
		if m.Move.IsPromotion() {
			jm.Promotion = m.Move.Promotion.String()
		}
		jp.Moves = append(jp.Moves, jm)
	}
	return jp
}

// PerftToJSON converts a perft report to JSON format.
func PerftToJSON(report engine.PerftReport) *JSONPerft {
	jp := &JSONPerft{
		Depth:        report.Depth,
		Nodes:        report.Nodes,
		UniqueLeaves: report.UniqueLeaves,
	}
	for _, d := range report.Divide {
		jp.Divide = append(jp.Divide, JSONPerftRow{Move: d.Move.UCI(), Nodes: d.Nodes})
	}
	return jp
}

func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}
