package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// FiftyMoveLimit is the halfmove clock value at which the game is drawn.
const FiftyMoveLimit = 100

// Status is the kind of verdict reached by a position.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	DrawFiftyMove
	DrawRepetition
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{"Ongoing", "Checkmate", "Stalemate", "DrawFiftyMove", "DrawRepetition"}
	if int(s) >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// Verdict is the terminal status of a position. Winner is meaningful only for Checkmate.
type Verdict struct {
	Status Status
	Winner chess.Colour
}

// IsOver reports whether the game has ended.
func (v Verdict) IsOver() bool {
	return v.Status != Ongoing
}

// IsDraw reports whether the game ended without a winner.
func (v Verdict) IsDraw() bool {
	return v.Status == Stalemate || v.Status == DrawFiftyMove || v.Status == DrawRepetition
}

// Result returns the PGN result token: "1-0", "0-1", "1/2-1/2" or "*".
func (v Verdict) Result() string {
	switch {
	case v.Status == Checkmate && v.Winner == chess.White:
		return "1-0"
	case v.Status == Checkmate:
		return "0-1"
	case v.IsDraw():
		return "1/2-1/2"
	default:
		return "*"
	}
}

// String returns a readable verdict such as "Checkmate (White wins)".
func (v Verdict) String() string {
	if v.Status == Checkmate {
		return v.Status.String() + " (" + v.Winner.String() + " wins)"
	}
	return v.Status.String()
}

// RepetitionChecker reports whether the current position has occurred three
// times. Position history lives outside the engine; see hashing.History.
type RepetitionChecker interface {
	IsThreefold(board *chess.Board) bool
}

// Evaluate reports the verdict for the side to move. Checkmate and stalemate
// take precedence over the fifty-move rule, which takes precedence over
// repetition. rep may be nil, in which case repetition is never reported.
//
// A board with no king for the side to move is treated as Ongoing.
func Evaluate(board *chess.Board, rep RepetitionChecker) Verdict {
	side := board.ToMove

	kingSq, ok := KingSquare(board, side)
	if !ok {
		return Verdict{Status: Ongoing}
	}

	inCheck := IsAttacked(board, side, kingSq)
	anyLegalMove := HasLegalMoves(board, side)

	switch {
	case inCheck && !anyLegalMove:
		return Verdict{Status: Checkmate, Winner: side.Opposite()}
	case !anyLegalMove:
		return Verdict{Status: Stalemate}
	case board.HalfmoveClock >= FiftyMoveLimit:
		return Verdict{Status: DrawFiftyMove}
	case rep != nil && rep.IsThreefold(board):
		return Verdict{Status: DrawRepetition}
	}
	return Verdict{Status: Ongoing}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	colour := board.ToMove
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	colour := board.ToMove
	if _, ok := KingSquare(board, colour); !ok {
		return false
	}
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}
