package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/maxviazov/courtside-stats/internal/ledger"
	"github.com/maxviazov/courtside-stats/internal/model"
	"github.com/maxviazov/courtside-stats/internal/repository"
)

const (
	maxNameLen     = 100
	maxPositionLen = 20
	maxJersey      = 99
)

// clockPattern accepts a game clock such as 12:00 or 0:07.
var clockPattern = regexp.MustCompile(`^\d{1,2}:[0-5]\d$`)

func validateText(field, value string, max int, required bool) []FieldError {
	switch n := len([]rune(value)); {
	case n == 0 && required:
		return []FieldError{{Field: field, Message: "must not be empty"}}
	case n > max:
		return []FieldError{{Field: field, Message: fmt.Sprintf("length must be <= %d", max)}}
	}
	return nil
}

// normalizePlayer trims text fields and mints an id when the caller left it blank.
func normalizePlayer(p model.Player, newID IDGenerator) model.Player {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		p.ID = newID()
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Position = strings.ToUpper(strings.TrimSpace(p.Position))
	return p
}

func validatePlayer(prefix string, p model.Player) []FieldError {
	var ferrs []FieldError
	ferrs = append(ferrs, validateText(prefix+"name", p.Name, maxNameLen, true)...)
	ferrs = append(ferrs, validateText(prefix+"position", p.Position, maxPositionLen, false)...)
	if p.Number < 0 || p.Number > maxJersey {
		ferrs = append(ferrs, FieldError{Field: prefix + "number", Message: fmt.Sprintf("must be between 0 and %d", maxJersey)})
	}
	return ferrs
}

func validateNewGame(in NewGameInput) []FieldError {
	var ferrs []FieldError
	ferrs = append(ferrs, validateText("name", in.Name, maxNameLen, true)...)
	ferrs = append(ferrs, validateText("team", in.Team, maxNameLen, true)...)
	ferrs = append(ferrs, validateText("opponent", in.Opponent, maxNameLen, true)...)
	if in.Date.IsZero() {
		ferrs = append(ferrs, FieldError{Field: "date", Message: "must be set"})
	}
	seen := make(map[string]bool, len(in.Players))
	for i, p := range in.Players {
		prefix := fmt.Sprintf("players[%d].", i)
		ferrs = append(ferrs, validatePlayer(prefix, p)...)
		if seen[p.ID] {
			ferrs = append(ferrs, FieldError{Field: prefix + "id", Message: "duplicate player id"})
		}
		seen[p.ID] = true
	}
	return ferrs
}

func validateFinite(field string, v float64) []FieldError {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []FieldError{{Field: field, Message: "must be a finite number"}}
	}
	return nil
}

// validateShot rejects a shot type that could not be derived and coordinates no court can hold.
// Unknown players are left to the ledger.
func validateShot(in ledger.ShotInput) []FieldError {
	var ferrs []FieldError
	if !in.ShotType.Valid() {
		ferrs = append(ferrs, FieldError{Field: "shot_type", Message: "must be 2PT, 3PT or FT"})
	}
	ferrs = append(ferrs, validateFinite("x", in.X)...)
	ferrs = append(ferrs, validateFinite("y", in.Y)...)
	if d := in.Defender; d != nil && d.Position != nil {
		ferrs = append(ferrs, validateFinite("defender.position.x", d.Position.X)...)
		ferrs = append(ferrs, validateFinite("defender.position.y", d.Position.Y)...)
	}
	return ferrs
}

func validateRange(r model.ReportRange) []FieldError {
	switch r {
	case "", model.RangeAll, model.RangeLast5, model.RangeLast10:
		return nil
	}
	return []FieldError{{Field: "range", Message: "must be one of all|last5|last10"}}
}

func validateCategory(c model.LeaderboardCategory) []FieldError {
	switch c {
	case model.CategoryOffense, model.CategoryDefense, model.CategoryEfficiency:
		return nil
	}
	return []FieldError{{Field: "category", Message: "must be one of offense|defense|efficiency"}}
}

// isDomainError separates caller mistakes from storage failures for logging.
func isDomainError(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrPlayerNotFound) ||
		errors.Is(err, ledger.ErrInvalidStat) || errors.Is(err, ledger.ErrInvalidShotType)
}

// applyToGame runs fn on the stored game. An unknown game is logged and reported as applied=false
// with a nil error.
func applyToGame(ctx context.Context, games repository.GameRepository, log zerolog.Logger, gameID, op string, fn repository.MutateFunc) (g model.Game, applied bool, err error) {
	g, err = games.Update(ctx, gameID, fn)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn().Str("game_id", gameID).Str("op", op).Msg("game not found, mutation ignored")
		return model.Game{}, false, nil
	case err != nil && isDomainError(err):
		log.Debug().Err(err).Str("game_id", gameID).Str("op", op).Interface("field_errors", FieldErrors(err)).Msg("mutation rejected")
		return model.Game{}, false, err
	case err != nil:
		log.Error().Err(err).Str("game_id", gameID).Str("op", op).Msg("mutation failed")
		return model.Game{}, false, err
	}
	return g, true, nil
}

// loadGame returns nil for an unknown game so read paths can fall back to zero values.
func loadGame(ctx context.Context, games repository.GameRepository, log zerolog.Logger, gameID string) (*model.Game, error) {
	g, err := games.GetByID(ctx, gameID)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn().Str("game_id", gameID).Msg("game not found, returning empty result")
		return nil, nil
	}
	if err != nil {
		log.Error().Err(err).Str("game_id", gameID).Msg("load game failed")
		return nil, err
	}
	return &g, nil
}
