package chess

// Board represents a chess position with all state needed for rules queries.
// It holds no pointers, so a plain assignment is a full independent copy.
type Board struct {
	// Squares[row][col]; row 0 is rank 8, col 0 is file a.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Remaining castling permissions. Rights are only ever revoked.
	Castling CastlingRights

	// Is an en passant capture possible? If so then EPSquare is the
	// square the double-stepping pawn passed over.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number, incremented after Black moves.
	FullmoveNumber uint
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:         White,
		FullmoveNumber: 1,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Piece{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[Black.HomeRow()][col] = B(backRank[col])
		b.Squares[Black.PawnStartRow()][col] = B(Pawn)
		b.Squares[White.PawnStartRow()][col] = W(Pawn)
		b.Squares[White.HomeRow()][col] = W(backRank[col])
	}

	b.ToMove = White
	b.Castling = AllCastlingRights
	b.EnPassant = false
	b.EPSquare = Square{}
	b.HalfmoveClock = 0
	b.FullmoveNumber = 1
}

// Get returns the piece on sq, or Empty for squares off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece on sq. Squares off the board are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if sq.Valid() {
		b.Squares[sq.Row][sq.Col] = p
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// EnPassantTarget returns the en passant square and whether one is set.
func (b *Board) EnPassantTarget() (Square, bool) {
	return b.EPSquare, b.EnPassant
}

// SetEnPassant sets the en passant target.
func (b *Board) SetEnPassant(sq Square) {
	b.EnPassant = true
	b.EPSquare = sq
}

// ClearEnPassant removes the en passant target.
func (b *Board) ClearEnPassant() {
	b.EnPassant = false
	b.EPSquare = Square{}
}

// Find returns the first square holding p, scanning from a8 to h1.
func (b *Board) Find(p Piece) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == p {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// PieceSquares returns every square occupied by the given colour, in board order.
func (b *Board) PieceSquares(colour Colour) []Square {
	var out []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if !p.IsEmpty() && p.Colour == colour {
				out = append(out, Square{Row: row, Col: col})
			}
		}
	}
	return out
}

// Count returns how many pieces of the given colour and kind are on the board.
func (b *Board) Count(colour Colour, kind Kind) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col].Is(colour, kind) {
				n++
			}
		}
	}
	return n
}
