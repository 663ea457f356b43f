// Package service holds use-case orchestration between the HTTP layer and the game repository.
// Kept intentionally lean: validation, domain error shaping, logging and metrics. The game
// rules themselves live in ledger and analytics.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/maxviazov/courtside-stats/internal/analytics"
	"github.com/maxviazov/courtside-stats/internal/ledger"
	"github.com/maxviazov/courtside-stats/internal/model"
	"github.com/maxviazov/courtside-stats/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// ErrPlayerNotFound is surfaced whenever an event names a player missing from the game roster,
// shooter and defender alike.
var ErrPlayerNotFound = ledger.ErrPlayerNotFound

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput builds an aggregated validation error if any field errors are present.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// NewInvalidInputError lets outer layers report request-shape problems the same way services do.
func NewInvalidInputError(fe []FieldError) error { return newInvalidInput(fe) }

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	var ie *invalidInputError
	if errors.As(err, &ie) {
		return ie.Fields()
	}
	return nil
}

// Clock supplies timestamps; tests pin it.
type Clock func() time.Time

func systemClock() time.Time { return time.Now().UTC() }

// IDGenerator mints ids for games, players and shots.
type IDGenerator func() string

// Metrics is the slice of instrumentation the services emit. *metrics.Recorder satisfies it.
type Metrics interface {
	ShotRecorded(t model.ShotType, made bool)
	StatRecorded(key model.StatKey)
	GameCreated()
	GameCompleted()
}

// NewGameInput is everything needed to set up a game.
type NewGameInput struct {
	Name     string
	Team     string
	Opponent string
	Date     time.Time
	Players  []model.Player
}

// GameService covers game setup and every box-score mutation. Mutations on an unknown game are
// no-ops that return nil; callers that need a 404 check existence with GetGame first.
type GameService interface {
	CreateGame(ctx context.Context, in NewGameInput) (model.Game, error)
	GetGame(ctx context.Context, id string) (model.Game, error)
	ListGames(ctx context.Context, page repository.Page) (repository.PageResult[model.Game], error)
	DeleteGame(ctx context.Context, id string) error
	AddPlayer(ctx context.Context, gameID string, p model.Player) (model.Player, error)
	ToggleActive(ctx context.Context, gameID, playerID string) error
	RecordStat(ctx context.Context, gameID, playerID string, key model.StatKey) error
	UpdateScore(ctx context.Context, gameID string, score model.Score) error
	UpdateQuarter(ctx context.Context, gameID string, quarter int) error
	UpdateTime(ctx context.Context, gameID, clock string) error
	CompleteGame(ctx context.Context, gameID string) error
}

// ShotService records and reads the shot log.
type ShotService interface {
	// RecordShot returns the enriched shot, or a zero Shot when the game does not exist.
	RecordShot(ctx context.Context, gameID string, in ledger.ShotInput) (model.Shot, error)
	GetShotsByGame(ctx context.Context, gameID string) ([]model.Shot, error)
	GetShotsByPlayer(ctx context.Context, gameID, playerID string) ([]model.Shot, error)
}

// AnalyticsService answers single-game statistics. An unknown game yields zero-valued results.
type AnalyticsService interface {
	ShotEfficiency(ctx context.Context, gameID string, f analytics.ShotFilter) (model.ShotEfficiency, error)
	ZoneEfficiency(ctx context.Context, gameID string, f analytics.ShotFilter) (map[model.Zone]model.ShotEfficiency, error)
	QuarterBreakdown(ctx context.Context, gameID string, f analytics.ShotFilter) ([]model.QuarterEfficiency, error)
	DefenderImpact(ctx context.Context, gameID, defenderID string) (model.DefenderImpact, error)
	TeamDefensiveImpact(ctx context.Context, gameID string) (model.TeamDefensiveImpact, error)
	PlayerMatchupStats(ctx context.Context, gameID, shooterID, defenderID string) (model.MatchupStats, error)
	ZoneDefensiveEfficiency(ctx context.Context, gameID string, zone model.Zone) (model.ZoneDefense, error)
}

// ReportQuery narrows the games a multi-game report covers.
type ReportQuery struct {
	GameID string
	Team   string
	Range  model.ReportRange
}

// ReportService answers multi-game reports.
type ReportService interface {
	PlayerReport(ctx context.Context, playerID string, q ReportQuery) (model.PlayerReport, error)
	TeamReport(ctx context.Context, q ReportQuery) (model.TeamReport, error)
	Leaderboard(ctx context.Context, q ReportQuery, category model.LeaderboardCategory) ([]model.LeaderboardEntry, error)
}
