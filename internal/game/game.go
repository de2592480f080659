// Package game holds interactive game sessions: a board plus the move
// record, undo/redo, captured-piece trays and turn-change observers that
// a user interface needs. Rules come from the engine package.
package game

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// Record is one played move.
type Record struct {
	SAN     string
	UCI     string
	FEN     string // position after the move
	Result  chess.MoveResult
	Verdict engine.Verdict
}

// Option configures a Game.
type Option func(*options)

type options struct {
	fen        string
	id         string
	log        zerolog.Logger
	tags       map[string]string
	lineLength int
	moves      []string
	result     string
}

// WithFEN starts the game from a position other than the initial one.
func WithFEN(fen string) Option {
	return func(o *options) {
		o.fen = fen
	}
}

// WithLogger sets the session logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithID names the game.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

// WithLineLength sets the PGN line limit.
func WithLineLength(n int) Option {
	return func(o *options) {
		o.lineLength = n
	}
}

// WithTag sets a PGN tag used by PGN.
func WithTag(name, value string) Option {
	return func(o *options) {
		if o.tags == nil {
			o.tags = make(map[string]string)
		}
		o.tags[name] = value
	}
}

// WithRecord starts from a recorded game: its start position and tags,
// then its moves, which New replays. The recorded result is exported by PGN
// until the game moves on.
func WithRecord(rec notation.Record) Option {
	return func(o *options) {
		if rec.StartFEN != "" {
			o.fen = rec.StartFEN
		}
		for name, value := range rec.Tags {
			WithTag(name, value)(o)
		}
		o.moves = append(o.moves, rec.SAN...)
		o.result = rec.Result
	}
}

// Game is a single game session. It is not safe for concurrent use.
type Game struct {
	id         string
	log        zerolog.Logger
	tags       map[string]string
	lineLength int
	startFEN   string
	start      chess.Board

	board     chess.Board
	verdict   engine.Verdict
	positions *hashing.History
	records   []Record
	redo      []chess.Move
	recorded  string // result of a WithRecord game, until any change

	observers []func(chess.Colour)
}

// New creates a game in the initial position, or the WithFEN position, and
// replays any WithRecord moves.
func New(opts ...Option) (*Game, error) {
	o := options{fen: engine.InitialFEN, log: zerolog.Nop(), lineLength: notation.DefaultLineLength}
	for _, opt := range opts {
		opt(&o)
	}

	start, err := engine.NewBoardFromFEN(o.fen)
	if err != nil {
		return nil, err
	}

	g := &Game{
		id:         o.id,
		tags:       o.tags,
		lineLength: o.lineLength,
		startFEN:   engine.BoardToFEN(start),
		start:      *start,
		positions:  hashing.NewHistory(engine.PositionKey),
	}
	g.log = o.log.With().Str("game", o.id).Logger()
	g.restart()
	g.log.Debug().
		Str("fen", g.startFEN).
		Bool("standard_material", engine.IsStandardMaterial(start)).
		Msg("game created")

	for i, text := range o.moves {
		if _, _, err := g.Play(text); err != nil {
			return nil, errors.Wrapf(err, "recorded move %d", i+1)
		}
	}
	g.recorded = o.result
	return g, nil
}

// restart returns to the start position without touching the redo stack.
func (g *Game) restart() {
	g.board = g.start
	g.records = g.records[:0]
	g.recorded = ""
	g.positions.Reset()
	g.positions.Push(&g.board)
	g.verdict = engine.Evaluate(&g.board, g.positions)
}

// ID returns the game's name.
func (g *Game) ID() string {
	return g.id
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.board.ToMove
}

// Snapshot returns a copy of the current board.
func (g *Game) Snapshot() chess.Board {
	return g.board
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return engine.BoardToFEN(&g.board)
}

// StartFEN returns the position the game started from.
func (g *Game) StartFEN() string {
	return g.startFEN
}

// Verdict returns the status of the current position.
func (g *Game) Verdict() engine.Verdict {
	return g.verdict
}

// SelectSquare returns the destinations of the piece on sq. It is empty for
// an empty square, an opponent's piece, or once the game is over.
func (g *Game) SelectSquare(sq chess.Square) []chess.Square {
	if g.verdict.IsOver() {
		return nil
	}
	if err := engine.CheckSelectable(&g.board, sq); err != nil {
		g.log.Debug().Err(err).Msg("selection ignored")
		return nil
	}
	moves := engine.LegalMoves(&g.board, sq)
	dests := make([]chess.Square, 0, len(moves))
	for _, m := range moves {
		dests = append(dests, m.To)
	}
	g.log.Debug().Str("square", sq.String()).Int("moves", len(dests)).Msg("square selected")
	return dests
}

// LegalMoves returns every legal move in the current position.
func (g *Game) LegalMoves() []chess.Move {
	if g.verdict.IsOver() {
		return nil
	}
	return engine.AllLegalMoves(&g.board)
}

// SubmitMove plays from-to for the side to move. promo picks the promotion
// piece; NoKind means a queen. Playing a move discards any undone moves.
func (g *Game) SubmitMove(from, to chess.Square, promo chess.Kind) (chess.MoveResult, engine.Verdict, error) {
	res, err := g.play(chess.Move{From: from, To: to, Promotion: promo})
	if err == nil {
		g.redo = g.redo[:0]
	}
	return res, g.verdict, err
}

// Play parses a move in SAN or coordinate notation and submits it.
func (g *Game) Play(text string) (chess.MoveResult, engine.Verdict, error) {
	if g.verdict.IsOver() {
		return chess.MoveResult{}, g.verdict, g.gameOver()
	}
	move, err := notation.ParseMove(&g.board, text)
	if err != nil {
		g.log.Warn().Err(err).Str("input", text).Msg("move rejected")
		return chess.MoveResult{}, g.verdict, err
	}
	return g.SubmitMove(move.From, move.To, move.Promotion)
}

func (g *Game) gameOver() error {
	return errors.Wrapf(errors.ErrGameOver, "game %s", strings.ToLower(g.verdict.String()))
}

// play applies a move for the side to move.
func (g *Game) play(move chess.Move) (chess.MoveResult, error) {
	if g.verdict.IsOver() {
		return chess.MoveResult{}, g.gameOver()
	}
	rec, err := g.apply(move)
	if err != nil {
		g.log.Warn().Err(err).Str("move", move.UCI()).Msg("move rejected")
		return chess.MoveResult{}, err
	}
	g.log.Info().Str("move", rec.SAN).Str("verdict", rec.Verdict.String()).Msg("move played")
	g.recorded = ""
	g.notify()
	return rec.Result, nil
}

// apply performs the move and appends its record.
func (g *Game) apply(move chess.Move) (Record, error) {
	san, err := notation.SAN(&g.board, move)
	if err != nil {
		return Record{}, err
	}
	res, err := engine.ApplyMove(&g.board, move)
	if err != nil {
		return Record{}, err
	}
	g.positions.Push(&g.board)
	g.verdict = engine.Evaluate(&g.board, g.positions)

	rec := Record{
		SAN:     san,
		UCI:     res.Move.UCI(),
		FEN:     engine.BoardToFEN(&g.board),
		Result:  res,
		Verdict: g.verdict,
	}
	g.records = append(g.records, rec)
	return rec, nil
}

// History returns the moves played so far.
func (g *Game) History() []Record {
	out := make([]Record, len(g.records))
	copy(out, g.records)
	return out
}

// CanUndo reports whether there is a move to take back.
func (g *Game) CanUndo() bool {
	return len(g.records) > 0
}

// CanRedo reports whether there is an undone move to replay.
func (g *Game) CanRedo() bool {
	return len(g.redo) > 0
}

// Undo takes back the last move by replaying the game from its start.
func (g *Game) Undo() error {
	if len(g.records) == 0 {
		return errors.Wrap(errors.ErrNoHistory, "undo")
	}
	last := g.records[len(g.records)-1]
	kept := make([]chess.Move, len(g.records)-1)
	for i := range kept {
		kept[i] = g.records[i].Result.Move
	}

	g.redo = append(g.redo, last.Result.Move)
	if err := g.replay(kept); err != nil {
		return err
	}
	g.log.Info().Str("move", last.SAN).Msg("move undone")
	g.notify()
	return nil
}

// Redo replays the most recently undone move.
func (g *Game) Redo() error {
	if len(g.redo) == 0 {
		return errors.Wrap(errors.ErrNoHistory, "redo")
	}
	move := g.redo[len(g.redo)-1]
	if _, err := g.play(move); err != nil {
		return err
	}
	g.redo = g.redo[:len(g.redo)-1]
	return nil
}

// replay rebuilds the game from the start position.
func (g *Game) replay(moves []chess.Move) error {
	g.restart()
	for _, m := range moves {
		if _, err := g.apply(m); err != nil {
			return err
		}
	}
	return nil
}

// Captured returns the pieces of the given colour taken so far, in the
// order they were captured.
func (g *Game) Captured(colour chess.Colour) []chess.Piece {
	var pieces []chess.Piece
	for _, r := range g.records {
		if r.Result.IsCapture() && r.Result.Captured.Colour == colour {
			pieces = append(pieces, r.Result.Captured)
		}
	}
	return pieces
}

// OnTurnChange registers fn to be called with the side to move after every
// move, undo, redo and reset.
func (g *Game) OnTurnChange(fn func(chess.Colour)) {
	g.observers = append(g.observers, fn)
}

func (g *Game) notify() {
	for _, fn := range g.observers {
		fn(g.board.ToMove)
	}
}

// Reset returns to the start position and forgets every move.
func (g *Game) Reset() {
	g.redo = g.redo[:0]
	g.restart()
	g.log.Info().Msg("game reset")
	g.notify()
}

// Result returns the game's PGN result: the verdict's, or for an unfinished
// game loaded WithRecord and not changed since, the recorded one.
func (g *Game) Result() string {
	if !g.verdict.IsOver() && g.recorded != "" {
		return g.recorded
	}
	return g.verdict.Result()
}

// PGN exports the game.
func (g *Game) PGN() string {
	rec := notation.Record{
		Tags:          g.tags,
		StartFullmove: g.start.FullmoveNumber,
		StartColour:   g.start.ToMove,
		Result:        g.Result(),
	}
	if g.startFEN != engine.InitialFEN {
		rec.StartFEN = g.startFEN
	}
	for _, r := range g.records {
		rec.SAN = append(rec.SAN, r.SAN)
	}

	var sb strings.Builder
	if err := notation.WritePGN(&sb, rec, g.lineLength); err != nil {
		g.log.Error().Err(err).Msg("pgn export failed")
	}
	return sb.String()
}
