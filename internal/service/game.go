package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/courtside-stats/internal/ledger"
	"github.com/maxviazov/courtside-stats/internal/model"
	"github.com/maxviazov/courtside-stats/internal/repository"
)

type gameService struct {
	games repository.GameRepository
	opts  options
	log   zerolog.Logger
}

func NewGameService(games repository.GameRepository, logger zerolog.Logger, opts ...Option) GameService {
	l := logger.With().Str("module", "service").Str("component", "game").Logger()
	return &gameService{games: games, opts: buildOptions(opts), log: l}
}

func (s *gameService) CreateGame(ctx context.Context, in NewGameInput) (model.Game, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Team = strings.TrimSpace(in.Team)
	in.Opponent = strings.TrimSpace(in.Opponent)
	players := make([]model.Player, len(in.Players))
	for i, p := range in.Players {
		players[i] = normalizePlayer(p, s.opts.newID)
	}
	in.Players = players

	if err := newInvalidInput(validateNewGame(in)); err != nil {
		s.log.Debug().Interface("field_errors", FieldErrors(err)).Msg("game validation failed")
		return model.Game{}, err
	}

	start := time.Now()
	g := ledger.NewGame(s.opts.newID(), in.Name, in.Team, in.Opponent, in.Date, in.Players)
	g.CreatedAt = s.opts.now()
	created, err := s.games.Create(ctx, g)
	if err != nil {
		s.log.Error().Err(err).Str("game_id", g.ID).Msg("create game failed")
		return model.Game{}, err
	}
	s.opts.metrics.GameCreated()
	s.log.Info().Str("game_id", created.ID).Int("players", len(created.Players)).Dur("took", time.Since(start)).Msg("game created")
	return created, nil
}

func (s *gameService) GetGame(ctx context.Context, id string) (model.Game, error) {
	if strings.TrimSpace(id) == "" {
		return model.Game{}, newInvalidInput([]FieldError{{Field: "id", Message: "must not be empty"}})
	}
	return s.games.GetByID(ctx, id)
}

func (s *gameService) ListGames(ctx context.Context, page repository.Page) (repository.PageResult[model.Game], error) {
	p := page.Normalize()
	res, err := s.games.List(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list games failed")
		return repository.PageResult[model.Game]{}, err
	}
	return res, nil
}

func (s *gameService) DeleteGame(ctx context.Context, id string) error {
	if err := s.games.Delete(ctx, id); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Error().Err(err).Str("game_id", id).Msg("delete game failed")
		}
		return err
	}
	s.log.Info().Str("game_id", id).Msg("game deleted")
	return nil
}

func (s *gameService) AddPlayer(ctx context.Context, gameID string, p model.Player) (model.Player, error) {
	p = normalizePlayer(p, s.opts.newID)
	_, applied, err := applyToGame(ctx, s.games, s.log, gameID, "add_player", func(g *model.Game) error {
		if err := newInvalidInput(validatePlayer("", p)); err != nil {
			return err
		}
		if _, exists := g.FindPlayer(p.ID); exists {
			return newInvalidInput([]FieldError{{Field: "id", Message: "player already on roster"}})
		}
		return ledger.AddPlayer(g, p)
	})
	if err != nil || !applied {
		return model.Player{}, err
	}
	s.log.Info().Str("game_id", gameID).Str("player_id", p.ID).Msg("player added")
	return p, nil
}

func (s *gameService) ToggleActive(ctx context.Context, gameID, playerID string) error {
	var active bool
	_, applied, err := applyToGame(ctx, s.games, s.log, gameID, "toggle_active", func(g *model.Game) error {
		var err error
		active, err = ledger.ToggleActive(g, playerID)
		return err
	})
	if err == nil && applied {
		s.log.Debug().Str("game_id", gameID).Str("player_id", playerID).Bool("active", active).Msg("player toggled")
	}
	return err
}

func (s *gameService) RecordStat(ctx context.Context, gameID, playerID string, key model.StatKey) error {
	start := time.Now()
	_, applied, err := applyToGame(ctx, s.games, s.log, gameID, "record_stat", func(g *model.Game) error {
		if !key.Valid() {
			return newInvalidInput([]FieldError{{Field: "stat", Message: "unknown stat key"}})
		}
		_, err := ledger.RecordStat(g, playerID, key)
		return err
	})
	if err != nil || !applied {
		return err
	}
	s.opts.metrics.StatRecorded(key)
	s.log.Info().Str("game_id", gameID).Str("player_id", playerID).Str("stat", string(key)).Dur("took", time.Since(start)).Msg("stat recorded")
	return nil
}

func (s *gameService) UpdateScore(ctx context.Context, gameID string, score model.Score) error {
	_, _, err := applyToGame(ctx, s.games, s.log, gameID, "update_score", func(g *model.Game) error {
		var ferrs []FieldError
		if score.Team < 0 {
			ferrs = append(ferrs, FieldError{Field: "team", Message: "must be >= 0"})
		}
		if score.Opponent < 0 {
			ferrs = append(ferrs, FieldError{Field: "opponent", Message: "must be >= 0"})
		}
		if err := newInvalidInput(ferrs); err != nil {
			return err
		}
		ledger.SetScore(g, score)
		return nil
	})
	return err
}

// UpdateQuarter accepts any period from 1 up; 5 and beyond are overtimes.
func (s *gameService) UpdateQuarter(ctx context.Context, gameID string, quarter int) error {
	_, _, err := applyToGame(ctx, s.games, s.log, gameID, "update_quarter", func(g *model.Game) error {
		if quarter < 1 {
			return newInvalidInput([]FieldError{{Field: "quarter", Message: "must be >= 1"}})
		}
		ledger.SetQuarter(g, quarter)
		return nil
	})
	return err
}

func (s *gameService) UpdateTime(ctx context.Context, gameID, clock string) error {
	clock = strings.TrimSpace(clock)
	_, _, err := applyToGame(ctx, s.games, s.log, gameID, "update_time", func(g *model.Game) error {
		if !clockPattern.MatchString(clock) {
			return newInvalidInput([]FieldError{{Field: "time_remaining", Message: "expected MM:SS"}})
		}
		ledger.SetTimeRemaining(g, clock)
		return nil
	})
	return err
}

func (s *gameService) CompleteGame(ctx context.Context, gameID string) error {
	var transitioned bool
	_, applied, err := applyToGame(ctx, s.games, s.log, gameID, "complete", func(g *model.Game) error {
		transitioned = ledger.Complete(g)
		return nil
	})
	if err != nil || !applied {
		return err
	}
	if transitioned {
		s.opts.metrics.GameCompleted()
		s.log.Info().Str("game_id", gameID).Msg("game completed")
	}
	return nil
}
