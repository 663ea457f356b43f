// Package memory is the default GameRepository: games live in process memory for the lifetime
// of the server.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/maxviazov/courtside-stats/internal/model"
	"github.com/maxviazov/courtside-stats/internal/repository"
)

// Store keeps games keyed by id and remembers insertion order. Every game crossing the boundary
// is deep-copied, so callers never share slices or maps with the store.
type Store struct {
	mu    sync.RWMutex
	games map[string]*model.Game
	order []string
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{
		games: make(map[string]*model.Game),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) Create(_ context.Context, g model.Game) (model.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.games[g.ID]; exists {
		return model.Game{}, repository.ErrAlreadyExists
	}
	now := s.now()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	g.UpdatedAt = now
	stored := g.Clone()
	s.games[g.ID] = &stored
	s.order = append(s.order, g.ID)
	return stored.Clone(), nil
}

func (s *Store) GetByID(_ context.Context, id string) (model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[id]
	if !ok {
		return model.Game{}, repository.ErrNotFound
	}
	return g.Clone(), nil
}

func (s *Store) List(_ context.Context, p repository.Page) (repository.PageResult[model.Game], error) {
	p = p.Normalize()
	s.mu.RLock()
	all := s.snapshot()
	s.mu.RUnlock()

	sort.SliceStable(all, func(i, j int) bool { return all[i].Date.After(all[j].Date) })
	res := repository.PageResult[model.Game]{Items: []model.Game{}, Total: len(all)}
	if p.Offset >= len(all) {
		return res, nil
	}
	end := p.Offset + p.Limit
	if end > len(all) {
		end = len(all)
	}
	res.Items = all[p.Offset:end]
	return res, nil
}

func (s *Store) All(_ context.Context) ([]model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(), nil
}

// snapshot copies every game in insertion order. Callers hold at least the read lock.
func (s *Store) snapshot() []model.Game {
	out := make([]model.Game, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.games[id].Clone())
	}
	return out
}

// Update runs fn on a private copy and swaps it in only when fn succeeds, which makes every
// mutation all-or-nothing.
func (s *Store) Update(_ context.Context, id string, fn repository.MutateFunc) (model.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.games[id]
	if !ok {
		return model.Game{}, repository.ErrNotFound
	}
	next := current.Clone()
	if err := fn(&next); err != nil {
		return model.Game{}, err
	}
	if err := repository.CheckAppendOnly(len(current.Shots), len(next.Shots)); err != nil {
		return model.Game{}, err
	}
	next.ID = id
	next.UpdatedAt = s.now()
	s.games[id] = &next
	return next.Clone(), nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.games, id)
	for i, gid := range s.order {
		if gid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Ping always succeeds; the store is ready as soon as it exists.
func (s *Store) Ping(context.Context) error { return nil }

var (
	_ repository.GameRepository = (*Store)(nil)
	_ repository.Pinger         = (*Store)(nil)
)
