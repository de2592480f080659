package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// newGame starts a game at the configured position, or the configured
// recorded game, and plays moves.
func newGame(e *env, reg *game.Registry, moves []string) (*game.Game, error) {
	opts := []game.Option{
		game.WithFEN(e.cfg.StartFEN),
		game.WithLineLength(e.cfg.Output.MaxLineLength),
	}
	if e.cfg.PGNFile != "" {
		rec, err := loadRecord(e.cfg.PGNFile, e.cfg.PGNGame)
		if err != nil {
			return nil, err
		}
		opts = append(opts, game.WithRecord(rec))
	}

	g, err := reg.Create(opts...)
	if err != nil {
		return nil, err
	}
	for _, m := range moves {
		if err := step(g, m); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// loadRecord reads game n (1-based) from a PGN file.
func loadRecord(path string, n int) (notation.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return notation.Record{}, fmt.Errorf("opening PGN file: %w", err)
	}
	defer f.Close()

	games, err := notation.ReadPGN(f)
	if err != nil {
		return notation.Record{}, errors.Wrap(err, path)
	}
	if n < 1 || n > len(games) {
		return notation.Record{}, errors.Wrapf(errors.ErrGameNotFound, "game %d of %d in %s", n, len(games), path)
	}
	return games[n-1], nil
}

// step plays one token: a move or one of undo, redo and reset.
func step(g *game.Game, token string) error {
	switch strings.ToLower(token) {
	case "undo":
		return g.Undo()
	case "redo":
		return g.Redo()
	case "reset":
		g.Reset()
		return nil
	}
	_, _, err := g.Play(token)
	return err
}

// currentPosition builds the renderer's view of the game.
func currentPosition(g *game.Game) *output.Position {
	board := g.Snapshot()
	var last *chess.Move
	if history := g.History(); len(history) > 0 {
		m := history[len(history)-1].Result.Move
		last = &m
	}
	return output.NewPosition(&board, g.Verdict(), last)
}

// runPlay plays moves from the arguments, or from stdin when there are
// none, then prints the final position. Text output ends with the PGN.
func runPlay(ctx context.Context, e *env, args []string) error {
	reg := game.NewRegistry(e.log)
	g, err := newGame(e, reg, nil)
	if err != nil {
		return err
	}
	g.OnTurnChange(func(c chess.Colour) {
		e.log.Debug().Str("game", g.ID()).Str("to_move", c.String()).Msg("turn")
	})

	if len(args) > 0 {
		for _, token := range args {
			if err := step(g, token); err != nil {
				return err
			}
		}
	} else if err := playStream(e, g, e.stdin); err != nil {
		return err
	}

	if err := e.render.RenderPosition(e.out, currentPosition(g)); err != nil {
		return err
	}
	if e.cfg.Output.Format == config.Text {
		_, err = fmt.Fprintf(e.out, "\n%s", g.PGN())
	}
	return err
}

// playStream reads whitespace separated tokens line by line. A rejected
// token is reported and skipped so a typo does not end the game.
func playStream(e *env, g *game.Game, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		for _, token := range strings.Fields(scanner.Text()) {
			if err := step(g, token); err != nil {
				e.log.Error().Err(err).Str("input", token).Msg("skipped")
			}
		}
	}
	return scanner.Err()
}

// runMoves prints the position reached by the moves and its legal moves.
func runMoves(ctx context.Context, e *env, args []string) error {
	g, err := newGame(e, game.NewRegistry(e.log), args)
	if err != nil {
		return err
	}
	return e.render.RenderPosition(e.out, currentPosition(g))
}

// runFEN prints the FEN reached by the moves.
func runFEN(ctx context.Context, e *env, args []string) error {
	g, err := newGame(e, game.NewRegistry(e.log), args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.out, g.FEN())
	return err
}

// runPerft counts the move tree below the position reached by the moves.
func runPerft(ctx context.Context, e *env, args []string) error {
	g, err := newGame(e, game.NewRegistry(e.log), args)
	if err != nil {
		return err
	}
	board := g.Snapshot()
	opts := engine.PerftOptions{
		Workers:     e.cfg.Perft.Workers,
		CountUnique: e.cfg.Perft.CountUnique,
	}

	if timeout := e.cfg.Perft.Timeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	report, err := engine.PerftDivideContext(ctx, &board, e.cfg.Perft.Depth, opts)
	elapsed := time.Since(start)
	if err != nil {
		e.log.Warn().Err(err).
			Uint64("nodes", report.Nodes).
			Dur("elapsed", elapsed).
			Msg("perft abandoned")
		return err
	}

	e.log.Info().
		Int("depth", report.Depth).
		Uint64("nodes", report.Nodes).
		Dur("elapsed", elapsed).
		Int("workers", report.Workers).
		Msg("perft finished")

	if !e.cfg.Perft.Divide {
		report.Divide = nil
	}
	return e.render.RenderPerft(e.out, report)
}

// runPGN replays every game in the named PGN files, or stdin, and reports
// one line per game. A game with an illegal move, or whose recorded result
// contradicts a finished position, counts as invalid.
func runPGN(ctx context.Context, e *env, args []string) error {
	if len(args) == 0 {
		return checkGames(ctx, e, "stdin", e.stdin)
	}
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening PGN file: %w", err)
		}
		err = checkGames(ctx, e, path, f)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func checkGames(ctx context.Context, e *env, name string, r io.Reader) error {
	games, err := notation.ReadPGN(r)
	if err != nil {
		return errors.Wrap(err, name)
	}

	reg := game.NewRegistry(e.log)
	invalid := 0
	for i, rec := range games {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "%s game %d", name, i+1)
		}
		players := rec.Tags["White"] + " - " + rec.Tags["Black"]
		g, err := reg.Create(game.WithRecord(rec))
		if err == nil {
			err = checkResult(g, rec.Result)
		}
		if err != nil {
			invalid++
			e.log.Warn().Err(err).Str("file", name).Int("game", i+1).Msg("invalid game")
			fmt.Fprintf(e.out, "%s:%d %s: invalid: %v\n", name, i+1, players, err)
			continue
		}
		fmt.Fprintf(e.out, "%s:%d %s: %d moves, %s %s\n",
			name, i+1, players, len(g.History()), g.Verdict(), rec.Result)
	}

	if invalid > 0 {
		return fmt.Errorf("%s: %d of %d games invalid", name, invalid, len(games))
	}
	return nil
}

// checkResult compares a recorded result with the final position. Games
// still in progress may carry any result.
func checkResult(g *game.Game, recorded string) error {
	v := g.Verdict()
	if v.IsOver() && recorded != "*" && recorded != v.Result() {
		return fmt.Errorf("result %s recorded, position is %s", recorded, v)
	}
	return nil
}
