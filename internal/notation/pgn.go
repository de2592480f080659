package notation

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// SevenTagRoster lists the tags every PGN game carries, in export order.
var SevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// DefaultLineLength is the PGN export line limit.
const DefaultLineLength = 80

// Record is the data needed to export one game.
type Record struct {
	Tags          map[string]string
	StartFEN      string // empty or the standard start for a normal game
	StartFullmove uint
	StartColour   chess.Colour
	SAN           []string
	Result        string // "1-0", "0-1", "1/2-1/2" or "*"
}

// lineWriter writes space separated tokens, wrapping before maxLineLength.
type lineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

func newLineWriter(w io.Writer, maxLineLength int) *lineWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &lineWriter{w: w, maxLineLength: maxLineLength}
}

// write writes a token, adding a space separator or a line break if needed.
func (o *lineWriter) write(s string) {
	if o.err != nil || len(s) == 0 {
		return
	}
	if o.needsSpace {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}
	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

func (o *lineWriter) newLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

func (o *lineWriter) print(s string) {
	if o.err == nil {
		_, o.err = io.WriteString(o.w, s)
	}
}

// movetextTokens returns move numbers and moves as separate tokens.
func movetextTokens(startFullmove uint, startColour chess.Colour, sans []string) []string {
	if startFullmove == 0 {
		startFullmove = 1
	}
	tokens := make([]string, 0, len(sans)*3/2+1)
	number, colour := startFullmove, startColour
	for i, san := range sans {
		if colour == chess.White {
			tokens = append(tokens, fmt.Sprintf("%d.", number))
		} else if i == 0 {
			tokens = append(tokens, fmt.Sprintf("%d...", number))
		}
		tokens = append(tokens, san)
		if colour == chess.Black {
			number++
		}
		colour = colour.Opposite()
	}
	return tokens
}

// Movetext renders SAN moves with move numbers on one line, e.g.
// "1. e4 e5 2. Nf3". A game starting with Black begins "1... e5".
func Movetext(startFullmove uint, startColour chess.Colour, sans []string) string {
	return strings.Join(movetextTokens(startFullmove, startColour, sans), " ")
}

// WritePGN exports a game: the seven tag roster, any other tags in name
// order, SetUp and FEN tags for a non-standard start, then wrapped movetext
// ending in the result.
func WritePGN(w io.Writer, rec Record, maxLineLength int) error {
	result := rec.Result
	if result == "" {
		result = "*"
	}

	tags := make(map[string]string, len(rec.Tags)+3)
	for k, v := range rec.Tags {
		tags[k] = v
	}
	tags["Result"] = result
	if rec.StartFEN != "" {
		tags["SetUp"] = "1"
		tags["FEN"] = rec.StartFEN
	}

	ow := newLineWriter(w, maxLineLength)
	for _, name := range SevenTagRoster {
		value := tags[name]
		if value == "" {
			value = "?"
		}
		ow.print(fmt.Sprintf("[%s \"%s\"]\n", name, escapeTagValue(value)))
	}

	var extra []string
	for name := range tags {
		if !isSevenTagRosterTag(name) {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		ow.print(fmt.Sprintf("[%s \"%s\"]\n", name, escapeTagValue(tags[name])))
	}
	ow.print("\n")

	for _, token := range movetextTokens(rec.StartFullmove, rec.StartColour, rec.SAN) {
		ow.write(token)
	}
	ow.write(result)
	ow.newLine()
	return ow.err
}

func isSevenTagRosterTag(name string) bool {
	for _, t := range SevenTagRoster {
		if t == name {
			return true
		}
	}
	return false
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
