package repository

import (
	"context"

	"github.com/maxviazov/courtside-stats/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// MutateFunc edits a game in place. Returning an error discards every change it made.
type MutateFunc func(g *model.Game) error

// GameRepository is the state container for games: roster, box score and the shot log.
// Implementations hand out deep copies, so a returned game can be read without locking.
type GameRepository interface {
	Create(ctx context.Context, g model.Game) (model.Game, error)
	GetByID(ctx context.Context, id string) (model.Game, error)
	// List pages through games, newest date first.
	List(ctx context.Context, p Page) (PageResult[model.Game], error)
	// All returns every game in insertion order; reports pick and order their own subset.
	All(ctx context.Context) ([]model.Game, error)
	// Update applies fn to the stored game atomically and returns the result. The shot log is
	// append-only: fn may add shots but must not drop or rewrite existing ones.
	Update(ctx context.Context, id string, fn MutateFunc) (model.Game, error)
	Delete(ctx context.Context, id string) error
}
