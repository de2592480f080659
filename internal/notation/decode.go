package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// isCol returns true if c is a valid file character.
func isCol(c byte) bool {
	return c >= 'a' && c <= 'h'
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= '1' && c <= '8'
}

// isCaptureChar returns true if c is a capture or separator character.
func isCaptureChar(c byte) bool {
	return c == 'x' || c == 'X' || c == ':' || c == '-'
}

// pieceKind returns the kind named by an uppercase piece letter. Lowercase
// letters are files, so they never name a piece here.
func pieceKind(c byte) chess.Kind {
	switch c {
	case 'K', 'Q', 'R', 'B', 'N':
		return chess.KindFromLetter(c)
	}
	return chess.NoKind
}

// decoded is the information read from SAN text before it is matched against
// the legal moves.
type decoded struct {
	kind      chess.Kind
	fromCol   int // -1 if not given
	fromRow   int // -1 if not given
	to        chess.Square
	promotion chess.Kind
	castle    chess.CastleSide
}

// ParseMove reads a move in SAN ("Nf3", "exd5", "e8=Q", "O-O", "0-0-0") or
// coordinate form ("g1f3", "e7e8n") and returns the matching legal move on
// board. Check and annotation suffixes are ignored.
//
// Text that cannot be read returns a *errors.ParseError wrapping
// ErrParseFailure; readable text that names no legal move returns an
// *errors.IllegalMoveError.
func ParseMove(board *chess.Board, text string) (chess.Move, error) {
	s := strings.TrimRight(strings.TrimSpace(text), "+#!?")
	if s == "" {
		return chess.Move{}, &errors.ParseError{Err: errors.ErrParseFailure, Input: text, Expected: "move"}
	}

	if m, ok := decodeCoordinate(s); ok {
		return matchCoordinate(board, text, m)
	}

	d, err := decodeSAN(s)
	if err != nil {
		err.Input = text
		return chess.Move{}, err
	}
	return matchSAN(board, text, d)
}

// decodeCoordinate reads "e2e4" or "e7e8q".
func decodeCoordinate(s string) (chess.Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return chess.Move{}, false
	}
	if !isCol(s[0]) || !isRank(s[1]) || !isCol(s[2]) || !isRank(s[3]) {
		return chess.Move{}, false
	}
	m := chess.Move{
		From: chess.Sq(int('8'-s[1]), int(s[0]-'a')),
		To:   chess.Sq(int('8'-s[3]), int(s[2]-'a')),
	}
	if len(s) == 5 {
		m.Promotion = chess.KindFromLetter(s[4])
		if m.Promotion == chess.NoKind {
			return chess.Move{}, false
		}
	}
	return m, true
}

// decodeSAN reads the parts of a SAN move with a single forward cursor.
func decodeSAN(s string) (decoded, *errors.ParseError) {
	d := decoded{fromCol: -1, fromRow: -1}

	switch strings.NewReplacer("0", "O", "o", "O").Replace(s) {
	case "O-O":
		d.castle = chess.Kingside
		return d, nil
	case "O-O-O":
		d.castle = chess.Queenside
		return d, nil
	}

	pos := 0
	currentChar := func() byte {
		if pos >= len(s) {
			return 0
		}
		return s[pos]
	}
	fail := func(expected string) (decoded, *errors.ParseError) {
		got := "end of input"
		if pos < len(s) {
			got = fmt.Sprintf("%q", s[pos])
		}
		return decoded{}, &errors.ParseError{Err: errors.ErrParseFailure, Pos: pos + 1, Expected: expected, Got: got}
	}

	d.kind = chess.Pawn
	if k := pieceKind(currentChar()); k != chess.NoKind {
		d.kind = k
		pos++
	}

	// Everything up to the destination: optional origin file, origin rank
	// and capture mark, in that order.
	var squares []chess.Square
	var cols, rows []int
scan:
	for pos < len(s) {
		c := currentChar()
		switch {
		case isCol(c) && pos+1 < len(s) && isRank(s[pos+1]):
			squares = append(squares, chess.Sq(int('8'-s[pos+1]), int(c-'a')))
			pos += 2
		case isCol(c):
			cols = append(cols, int(c-'a'))
			pos++
		case isRank(c):
			rows = append(rows, int('8'-c))
			pos++
		case isCaptureChar(c):
			pos++
		default:
			break scan
		}
	}

	if pos < len(s) {
		if currentChar() == '=' {
			pos++
		}
		d.promotion = chess.KindFromLetter(currentChar())
		if d.promotion == chess.NoKind || d.promotion == chess.Pawn || d.promotion == chess.King {
			return fail("promotion piece")
		}
		pos++
		if pos < len(s) {
			return fail("end of move")
		}
	}

	switch len(squares) {
	case 1:
		d.to = squares[0]
	case 2:
		// Long form such as "Ng1f3" or "e2-e4".
		d.fromCol, d.fromRow = squares[0].Col, squares[0].Row
		d.to = squares[1]
	default:
		return fail("destination square")
	}
	if len(cols) > 1 || len(rows) > 1 || (len(squares) == 2 && (len(cols) > 0 || len(rows) > 0)) {
		return fail("single origin hint")
	}
	if len(cols) == 1 {
		d.fromCol = cols[0]
	}
	if len(rows) == 1 {
		d.fromRow = rows[0]
	}
	if d.promotion != chess.NoKind && d.kind != chess.Pawn {
		return fail("pawn for promotion")
	}
	return d, nil
}

// matchCoordinate finds the legal move with the given squares.
func matchCoordinate(board *chess.Board, text string, m chess.Move) (chess.Move, error) {
	after := *board
	res, err := engine.ApplyMove(&after, m)
	if err != nil {
		return chess.Move{}, &errors.IllegalMoveError{Move: text, Reason: reason(err)}
	}
	return res.Move, nil
}

// matchSAN finds the single legal move that fits d.
func matchSAN(board *chess.Board, text string, d decoded) (chess.Move, error) {
	var matches []chess.Move
	for _, m := range engine.AllLegalMoves(board) {
		if d.castle != chess.NoCastle {
			if m.Castle == d.castle {
				matches = append(matches, m)
			}
			continue
		}
		if board.Get(m.From).Kind != d.kind || m.To != d.to || m.Castle != chess.NoCastle {
			continue
		}
		if (d.fromCol >= 0 && m.From.Col != d.fromCol) || (d.fromRow >= 0 && m.From.Row != d.fromRow) {
			continue
		}
		if d.promotion != chess.NoKind {
			if !m.IsPromotion() {
				continue
			}
			m.Promotion = d.promotion
		}
		matches = append(matches, m)
	}

	switch len(matches) {
	case 0:
		return chess.Move{}, &errors.IllegalMoveError{Move: text, Reason: "no legal move matches"}
	case 1:
		return matches[0], nil
	default:
		return chess.Move{}, &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Input:    text,
			Expected: "unambiguous move",
			Got:      fmt.Sprintf("%d candidates", len(matches)),
		}
	}
}

// reason extracts the executor's explanation from an illegal-move error.
func reason(err error) string {
	if ime, ok := err.(*errors.IllegalMoveError); ok {
		return ime.Reason
	}
	return err.Error()
}
