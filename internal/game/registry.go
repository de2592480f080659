package game

import (
	"fmt"
	"sort"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Registry keeps independent games by ID. The registry guards only its
// map; each Game must still be driven from one goroutine at a time.
type Registry struct {
	sync.RWMutex
	games map[string]*Game
	log   zerolog.Logger
}

// NewRegistry creates an empty registry whose games log to log.
func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{
		games: make(map[string]*Game),
		log:   log,
	}
}

// Create starts a game under a fresh generated ID such as "brave-otter".
// Any WithID option is overridden.
func (r *Registry) Create(opts ...Option) (*Game, error) {
	r.Lock()
	defer r.Unlock()

	id := r.freeID()
	all := make([]Option, 0, len(opts)+2)
	all = append(all, WithLogger(r.log))
	all = append(all, opts...)
	all = append(all, WithID(id))

	g, err := New(all...)
	if err != nil {
		return nil, err
	}
	r.games[id] = g
	r.log.Info().Str("game", id).Int("games", len(r.games)).Msg("game registered")
	return g, nil
}

// freeID generates an unused ID. Callers hold the lock.
func (r *Registry) freeID() string {
	base := petname.Generate(2, "-")
	id := base
	for n := 2; ; n++ {
		if _, taken := r.games[id]; !taken {
			return id
		}
		id = fmt.Sprintf("%s-%d", base, n)
	}
}

// Get returns the game with the given ID.
func (r *Registry) Get(id string) (*Game, error) {
	r.RLock()
	defer r.RUnlock()

	g, ok := r.games[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "game %q", id)
	}
	return g, nil
}

// Remove forgets the game with the given ID.
func (r *Registry) Remove(id string) error {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.games[id]; !ok {
		return errors.Wrapf(errors.ErrGameNotFound, "game %q", id)
	}
	delete(r.games, id)
	r.log.Info().Str("game", id).Msg("game removed")
	return nil
}

// List returns the IDs of all games in sorted order.
func (r *Registry) List() []string {
	r.RLock()
	defer r.RUnlock()

	ids := make([]string, 0, len(r.games))
	for id := range r.games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of games.
func (r *Registry) Len() int {
	r.RLock()
	defer r.RUnlock()
	return len(r.games)
}
