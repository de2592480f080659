package notation

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// symbol classifies the first byte of a PGN token.
type symbol int

const (
	symError symbol = iota
	symSpace
	symTagStart
	symTagEnd
	symQuote
	symCommentStart
	symLineComment
	symNAG
	symAnnotate
	symRAVStart
	symRAVEnd
	symDot
	symStar
	symDigit
	symMove
)

var symTab [256]symbol

func init() {
	for _, c := range []byte{' ', '\t', '\r', '\n', '\f'} {
		symTab[c] = symSpace
	}
	symTab['['] = symTagStart
	symTab[']'] = symTagEnd
	symTab['"'] = symQuote
	symTab['{'] = symCommentStart
	symTab[';'] = symLineComment
	symTab['$'] = symNAG
	symTab['!'] = symAnnotate
	symTab['?'] = symAnnotate
	symTab['('] = symRAVStart
	symTab[')'] = symRAVEnd
	symTab['.'] = symDot
	symTab['*'] = symStar
	for c := byte('0'); c <= '9'; c++ {
		symTab[c] = symDigit
	}
	for c := byte('a'); c <= 'z'; c++ {
		symTab[c] = symMove
		symTab[c-32] = symMove
	}
}

// isMoveChar reports whether c may continue a move token.
func isMoveChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("-=+#:", c) >= 0
}

// Reader reads games from PGN text one at a time. Only the main line is
// kept: comments, NAGs, annotation glyphs and variations are skipped.
type Reader struct {
	r       *bufio.Reader
	line    string
	pos     int
	lineNum int
	eof     bool

	// a tag pair read while finishing the previous game
	pendingName, pendingValue string
	pending                   bool
}

// NewReader creates a PGN reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// LineNumber returns the number of the line being read.
func (p *Reader) LineNumber() int {
	return p.lineNum
}

// readLine loads the next input line. Lines starting with '%' are escapes
// and are dropped whole.
func (p *Reader) readLine() bool {
	for !p.eof {
		line, err := p.r.ReadString('\n')
		if err != nil {
			p.eof = true
			if line == "" {
				return false
			}
		}
		p.lineNum++
		if strings.HasPrefix(line, "%") {
			continue
		}
		p.line, p.pos = line, 0
		return true
	}
	return false
}

// next returns the next significant byte, reading lines as needed.
func (p *Reader) next() (byte, bool) {
	for p.pos >= len(p.line) {
		if !p.readLine() {
			return 0, false
		}
	}
	c := p.line[p.pos]
	p.pos++
	return c, true
}

func (p *Reader) errorf(expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		Input:    strings.TrimSpace(p.line),
		Pos:      p.pos,
		Expected: expected,
		Got:      got,
	}
}

// token kinds produced by scan.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokTag
	tokMove
	tokResult
)

type token struct {
	kind  tokenKind
	text  string // move text, result or tag name
	value string // tag value
}

// scan returns the next token of interest. ravDepth counts open variations
// so that moves inside them can be dropped by the caller.
func (p *Reader) scan(ravDepth *int) (token, error) {
	for {
		c, ok := p.next()
		if !ok {
			return token{kind: tokEOF}, nil
		}
		start := p.pos - 1

		switch symTab[c] {
		case symSpace, symDot, symAnnotate:
		case symTagStart:
			return p.gatherTag()
		case symCommentStart:
			if err := p.skipComment(); err != nil {
				return token{}, err
			}
		case symLineComment:
			p.pos = len(p.line)
		case symNAG:
			for p.pos < len(p.line) && symTab[p.line[p.pos]] == symDigit {
				p.pos++
			}
		case symRAVStart:
			*ravDepth++
		case symRAVEnd:
			if *ravDepth == 0 {
				return token{}, p.errorf("", "unmatched ')'")
			}
			*ravDepth--
		case symStar:
			return token{kind: tokResult, text: "*"}, nil
		case symDigit:
			if tok, ok := p.gatherNumeric(start); ok {
				return tok, nil
			}
		case symMove:
			for p.pos < len(p.line) && isMoveChar(p.line[p.pos]) {
				p.pos++
			}
			return token{kind: tokMove, text: p.line[start:p.pos]}, nil
		default:
			return token{}, p.errorf("", "character "+string(c))
		}
	}
}

// gatherNumeric reads a result, a zero-style castle or a move number
// starting at start. Move numbers yield no token.
func (p *Reader) gatherNumeric(start int) (token, bool) {
	rest := p.line[start:]
	for _, result := range []string{"1-0", "0-1", "1/2-1/2"} {
		if strings.HasPrefix(rest, result) {
			p.pos = start + len(result)
			return token{kind: tokResult, text: result}, true
		}
	}
	for _, castle := range []string{"0-0-0", "0-0"} {
		if strings.HasPrefix(rest, castle) {
			p.pos = start + len(castle)
			for p.pos < len(p.line) && isMoveChar(p.line[p.pos]) {
				p.pos++
			}
			return token{kind: tokMove, text: p.line[start:p.pos]}, true
		}
	}
	for p.pos < len(p.line) && symTab[p.line[p.pos]] == symDigit {
		p.pos++
	}
	return token{}, false
}

// gatherTag reads `Name "value"]` after the opening bracket.
func (p *Reader) gatherTag() (token, error) {
	for p.pos < len(p.line) && symTab[p.line[p.pos]] == symSpace {
		p.pos++
	}
	start := p.pos
	for p.pos < len(p.line) && (symTab[p.line[p.pos]] == symMove || symTab[p.line[p.pos]] == symDigit || p.line[p.pos] == '_') {
		p.pos++
	}
	name := p.line[start:p.pos]
	if name == "" {
		return token{}, p.errorf("tag name", "")
	}

	for p.pos < len(p.line) && symTab[p.line[p.pos]] == symSpace {
		p.pos++
	}
	if p.pos >= len(p.line) || p.line[p.pos] != '"' {
		return token{}, p.errorf("tag value", "")
	}
	p.pos++

	var sb strings.Builder
	for {
		if p.pos >= len(p.line) {
			return token{}, p.errorf("closing quote", "end of line")
		}
		c := p.line[p.pos]
		p.pos++
		if c == '"' {
			break
		}
		if c == '\\' && p.pos < len(p.line) {
			c = p.line[p.pos]
			p.pos++
		}
		sb.WriteByte(c)
	}

	for p.pos < len(p.line) && symTab[p.line[p.pos]] == symSpace {
		p.pos++
	}
	if p.pos >= len(p.line) || p.line[p.pos] != ']' {
		return token{}, p.errorf("']'", "")
	}
	p.pos++
	return token{kind: tokTag, text: name, value: sb.String()}, nil
}

// skipComment skips a brace comment, which may span lines.
func (p *Reader) skipComment() error {
	for {
		if end := strings.IndexByte(p.line[p.pos:], '}'); end >= 0 {
			p.pos += end + 1
			return nil
		}
		if !p.readLine() {
			return p.errorf("'}'", "end of input")
		}
	}
}

// Next reads the next game. It returns io.EOF when the input holds no
// further games. Moves are returned as written; they are checked only
// when the game is replayed.
func (p *Reader) Next() (Record, error) {
	rec := Record{Tags: make(map[string]string)}
	started := false
	ravDepth := 0

	if p.pending {
		p.pending = false
		rec.Tags[p.pendingName] = p.pendingValue
		started = true
	}

	for {
		tok, err := p.scan(&ravDepth)
		if err != nil {
			return Record{}, err
		}

		switch tok.kind {
		case tokEOF:
			if !started {
				return Record{}, io.EOF
			}
			if ravDepth > 0 {
				return Record{}, p.errorf("')'", "end of input")
			}
			return finish(rec)
		case tokTag:
			// Tags after movetext, or a repeated tag name, start the next
			// game. The second case closes a game that has no moves.
			if _, seen := rec.Tags[tok.text]; len(rec.SAN) > 0 || seen {
				p.pending, p.pendingName, p.pendingValue = true, tok.text, tok.value
				return finish(rec)
			}
			rec.Tags[tok.text] = tok.value
			started = true
		case tokMove:
			if ravDepth == 0 {
				rec.SAN = append(rec.SAN, tok.text)
			}
			started = true
		case tokResult:
			if ravDepth > 0 {
				continue
			}
			rec.Result = tok.text
			return finish(rec)
		}
	}
}

// finish moves setup tags into the record's fields.
func finish(rec Record) (Record, error) {
	if rec.Result == "" {
		rec.Result = rec.Tags["Result"]
	}
	if rec.Result == "" {
		rec.Result = "*"
	}
	delete(rec.Tags, "Result")

	rec.StartFullmove, rec.StartColour = 1, chess.White
	if fen, ok := rec.Tags["FEN"]; ok {
		board, err := engine.NewBoardFromFEN(fen)
		if err != nil {
			return Record{}, errors.Wrap(err, "FEN tag")
		}
		rec.StartFEN = fen
		rec.StartFullmove, rec.StartColour = board.FullmoveNumber, board.ToMove
	}
	delete(rec.Tags, "FEN")
	delete(rec.Tags, "SetUp")
	return rec, nil
}

// ReadPGN reads every game from r.
func ReadPGN(r io.Reader) ([]Record, error) {
	pr := NewReader(r)
	var games []Record
	for {
		rec, err := pr.Next()
		if err == io.EOF {
			return games, nil
		}
		if err != nil {
			return games, errors.Wrapf(err, "line %d", pr.LineNumber())
		}
		games = append(games, rec)
	}
}
