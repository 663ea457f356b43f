package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/courtside-stats/internal/analytics"
	"github.com/maxviazov/courtside-stats/internal/model"
	"github.com/maxviazov/courtside-stats/internal/repository"
)

type reportService struct {
	games repository.GameRepository
	log   zerolog.Logger
}

func NewReportService(games repository.GameRepository, logger zerolog.Logger) ReportService {
	l := logger.With().Str("module", "service").Str("component", "report").Logger()
	return &reportService{games: games, log: l}
}

// selectGames validates q and returns the games it covers, newest first.
func (s *reportService) selectGames(ctx context.Context, playerID string, q ReportQuery) ([]model.Game, error) {
	if err := newInvalidInput(validateRange(q.Range)); err != nil {
		s.log.Debug().Str("range", string(q.Range)).Msg("report validation failed")
		return nil, err
	}
	all, err := s.games.All(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("load games failed")
		return nil, err
	}
	return analytics.SelectGames(all, analytics.Selection{
		PlayerID: playerID,
		GameID:   strings.TrimSpace(q.GameID),
		Team:     strings.TrimSpace(q.Team),
		Range:    q.Range,
	}), nil
}

func (s *reportService) PlayerReport(ctx context.Context, playerID string, q ReportQuery) (model.PlayerReport, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return model.PlayerReport{}, newInvalidInput([]FieldError{{Field: "player_id", Message: "must not be empty"}})
	}
	start := time.Now()
	games, err := s.selectGames(ctx, playerID, q)
	if err != nil {
		return model.PlayerReport{}, err
	}
	r := analytics.PlayerReport(games, playerID)
	s.log.Debug().Str("player_id", playerID).Int("games", len(games)).Dur("took", time.Since(start)).Msg("player report built")
	return r, nil
}

// TeamReport covers q.Team, or the team of the most recent selected game when q.Team is blank.
func (s *reportService) TeamReport(ctx context.Context, q ReportQuery) (model.TeamReport, error) {
	start := time.Now()
	games, err := s.selectGames(ctx, "", q)
	if err != nil {
		return model.TeamReport{}, err
	}
	team := strings.TrimSpace(q.Team)
	if team == "" && len(games) > 0 {
		team = games[0].Team
	}
	r := analytics.TeamReport(games, team)
	s.log.Debug().Str("team", team).Int("games", len(games)).Dur("took", time.Since(start)).Msg("team report built")
	return r, nil
}

func (s *reportService) Leaderboard(ctx context.Context, q ReportQuery, category model.LeaderboardCategory) ([]model.LeaderboardEntry, error) {
	if category == "" {
		category = model.CategoryOffense
	}
	if err := newInvalidInput(validateCategory(category)); err != nil {
		s.log.Debug().Str("category", string(category)).Msg("leaderboard validation failed")
		return nil, err
	}
	games, err := s.selectGames(ctx, "", q)
	if err != nil {
		return nil, err
	}
	return analytics.Leaderboard(games, category), nil
}
