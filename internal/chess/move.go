package chess

// Move is a transient move value produced by the move generator.
type Move struct {
	From Square
	To   Square

	// DoubleStep is set for a two-square pawn advance.
	DoubleStep bool

	// Capture is set when an opposing piece is taken, including en passant.
	Capture bool

	// EnPassant is set for an en passant capture; the destination is empty and
	// the captured pawn stands on From's row at To's column.
	EnPassant bool

	// Castle is the wing for a castling move; the rook relocation is implied.
	Castle CastleSide

	// Promotion is the kind a pawn becomes on the last rank, NoKind otherwise.
	Promotion Kind
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

// SameSquares reports whether two moves share origin and destination.
func (m Move) SameSquares(other Move) bool {
	return m.From == other.From && m.To == other.To
}

// UCI returns the move in coordinate notation (e.g. "e2e4", "e7e8q").
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(Piece{Colour: Black, Kind: m.Promotion}.Letter())
	}
	return s
}

// String returns the coordinate form of the move.
func (m Move) String() string {
	return m.UCI()
}

// MoveResult describes what an applied move did, for captured-piece trays,
// sound cues and notation.
type MoveResult struct {
	Move Move

	// Piece is the piece that moved, as it was before any promotion.
	Piece Piece

	// Captured is the piece removed from the board (Empty if none) and
	// CapturedOn the square it stood on.
	Captured   Piece
	CapturedOn Square

	Castled    CastleSide
	EnPassant  bool
	PromotedTo Kind

	// ToMove is the side to move after the move.
	ToMove Colour
}

// IsCapture reports whether a piece was captured.
func (r MoveResult) IsCapture() bool {
	return !r.Captured.IsEmpty()
}

// IsPromotion reports whether a pawn was promoted.
func (r MoveResult) IsPromotion() bool {
	return r.PromotedTo != NoKind
}
