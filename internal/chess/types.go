// Package chess provides core chess types and operations.
package chess

import (
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns the row delta of a pawn advance: -1 for White, +1 for Black.
// Row 0 is Black's home rank.
func (c Colour) PawnDirection() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRow returns the row holding the colour's king and rooks in the initial position.
func (c Colour) HomeRow() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// PawnStartRow returns the row the colour's pawns start on.
func (c Colour) PawnStartRow() int {
	return c.HomeRow() + c.PawnDirection()
}

// PromotionRow returns the farthest row from the colour's pawn start.
func (c Colour) PromotionRow() int {
	return c.Opposite().HomeRow()
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter (either case) to a kind.
// It returns NoKind for anything else.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// PromotionKinds lists the kinds a pawn may promote to, strongest first.
var PromotionKinds = []Kind{Queen, Rook, Bishop, Knight}

// Piece is a coloured piece. The zero value (Kind == NoKind) is an empty square.
type Piece struct {
	Colour Colour
	Kind   Kind
}

// Empty is the occupant of an empty square.
var Empty = Piece{}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Colour: White, Kind: kind}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Colour: Black, Kind: kind}
}

// IsEmpty reports whether p represents no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p.Kind == kind && p.Kind != NoKind && p.Colour == colour
}

// Letter returns the FEN letter of the piece: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// BoardSize is the number of rows and columns.
const BoardSize = 8

// Square is a (row, col) coordinate. Row 0 is rank 8, col 0 is file a.
type Square struct {
	Row int
	Col int
}

// Sq builds a square from row and column.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square shifted by dr rows and dc columns. The result may be off the board.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// File returns the file letter ('a'..'h').
func (s Square) File() byte {
	return byte('a' + s.Col)
}

// Rank returns the rank digit ('1'..'8').
func (s Square) Rank() byte {
	return byte('8' - s.Row)
}

// String returns the algebraic name of the square (e.g. "e4").
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// IsLight reports whether the square is a light square (a1 is dark).
func (s Square) IsLight() bool {
	return (s.Row+s.Col)%2 == 0
}

// ParseSquare converts algebraic text ("e4") to a square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, &errors.SquareError{Err: errors.ErrInvalidSquare, Square: text}
	}
	file, rank := text[0], text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, &errors.SquareError{Err: errors.ErrInvalidSquare, Square: text}
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, nil
}

// MustSquare is ParseSquare for compile-time constants; it panics on bad input.
func MustSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// CastleSide identifies a castling wing.
type CastleSide int

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// String returns the castling notation for the wing.
func (c CastleSide) String() string {
	switch c {
	case Kingside:
		return "O-O"
	case Queenside:
		return "O-O-O"
	default:
		return ""
	}
}

// Castling geometry on the home row.
const (
	KingStartCol         = 4
	KingsideRookCol      = 7
	QueensideRookCol     = 0
	KingsideKingDestCol  = 6
	QueensideKingDestCol = 2
	KingsideRookDestCol  = 5
	QueensideRookDestCol = 3
)

// RookCols returns the rook's home column and its post-castle column for the wing.
func (c CastleSide) RookCols() (from, to int) {
	if c == Queenside {
		return QueensideRookCol, QueensideRookDestCol
	}
	return KingsideRookCol, KingsideRookDestCol
}

// KingDestCol returns the king's landing column for the wing.
func (c CastleSide) KingDestCol() int {
	if c == Queenside {
		return QueensideKingDestCol
	}
	return KingsideKingDestCol
}

// CastlingRights holds the four independent castling permissions.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights is the rights set of the initial position.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Has reports whether colour may still castle on side.
func (r CastlingRights) Has(colour Colour, side CastleSide) bool {
	switch {
	case colour == White && side == Kingside:
		return r.WhiteKingside
	case colour == White && side == Queenside:
		return r.WhiteQueenside
	case colour == Black && side == Kingside:
		return r.BlackKingside
	case colour == Black && side == Queenside:
		return r.BlackQueenside
	}
	return false
}

// Revoke permanently clears one right.
func (r *CastlingRights) Revoke(colour Colour, side CastleSide) {
	switch {
	case colour == White && side == Kingside:
		r.WhiteKingside = false
	case colour == White && side == Queenside:
		r.WhiteQueenside = false
	case colour == Black && side == Kingside:
		r.BlackKingside = false
	case colour == Black && side == Queenside:
		r.BlackQueenside = false
	}
}

// RevokeAll clears both rights of a colour.
func (r *CastlingRights) RevokeAll(colour Colour) {
	r.Revoke(colour, Kingside)
	r.Revoke(colour, Queenside)
}

// String returns the FEN castling field ("KQkq", "-").
func (r CastlingRights) String() string {
	var b []byte
	if r.WhiteKingside {
		b = append(b, 'K')
	}
	if r.WhiteQueenside {
		b = append(b, 'Q')
	}
	if r.BlackKingside {
		b = append(b, 'k')
	}
	if r.BlackQueenside {
		b = append(b, 'q')
	}
	if len(b) == 0 {
		return "-"
	}
	return string(b)
}
