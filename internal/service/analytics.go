package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/maxviazov/courtside-stats/internal/analytics"
	"github.com/maxviazov/courtside-stats/internal/model"
	"github.com/maxviazov/courtside-stats/internal/repository"
)

type analyticsService struct {
	games repository.GameRepository
	log   zerolog.Logger
}

func NewAnalyticsService(games repository.GameRepository, logger zerolog.Logger) AnalyticsService {
	l := logger.With().Str("module", "service").Str("component", "analytics").Logger()
	return &analyticsService{games: games, log: l}
}

// shots loads the game and applies f. An unknown game has no shots.
func (s *analyticsService) shots(ctx context.Context, gameID string, f analytics.ShotFilter) ([]model.Shot, error) {
	g, err := loadGame(ctx, s.games, s.log, gameID)
	if err != nil || g == nil {
		return []model.Shot{}, err
	}
	return analytics.FilterShots(g.Shots, f), nil
}

func (s *analyticsService) ShotEfficiency(ctx context.Context, gameID string, f analytics.ShotFilter) (model.ShotEfficiency, error) {
	shots, err := s.shots(ctx, gameID, f)
	if err != nil {
		return model.ShotEfficiency{}, err
	}
	return analytics.ShotEfficiency(shots), nil
}

func (s *analyticsService) ZoneEfficiency(ctx context.Context, gameID string, f analytics.ShotFilter) (map[model.Zone]model.ShotEfficiency, error) {
	shots, err := s.shots(ctx, gameID, f)
	if err != nil {
		return map[model.Zone]model.ShotEfficiency{}, err
	}
	return analytics.ZoneEfficiencyMap(shots), nil
}

func (s *analyticsService) QuarterBreakdown(ctx context.Context, gameID string, f analytics.ShotFilter) ([]model.QuarterEfficiency, error) {
	shots, err := s.shots(ctx, gameID, f)
	if err != nil {
		return []model.QuarterEfficiency{}, err
	}
	return analytics.QuarterBreakdown(shots), nil
}

func (s *analyticsService) DefenderImpact(ctx context.Context, gameID, defenderID string) (model.DefenderImpact, error) {
	g, err := loadGame(ctx, s.games, s.log, gameID)
	if err != nil {
		return model.DefenderImpact{}, err
	}
	return analytics.DefenderImpact(g, defenderID), nil
}

func (s *analyticsService) TeamDefensiveImpact(ctx context.Context, gameID string) (model.TeamDefensiveImpact, error) {
	g, err := loadGame(ctx, s.games, s.log, gameID)
	if err != nil {
		return model.TeamDefensiveImpact{}, err
	}
	return analytics.TeamDefensiveImpact(g), nil
}

func (s *analyticsService) PlayerMatchupStats(ctx context.Context, gameID, shooterID, defenderID string) (model.MatchupStats, error) {
	g, err := loadGame(ctx, s.games, s.log, gameID)
	if err != nil {
		return model.MatchupStats{}, err
	}
	return analytics.PlayerMatchupStats(g, shooterID, defenderID), nil
}

func (s *analyticsService) ZoneDefensiveEfficiency(ctx context.Context, gameID string, zone model.Zone) (model.ZoneDefense, error) {
	if !zone.Valid() {
		s.log.Debug().Uint8("zone", uint8(zone)).Msg("zone validation failed")
		return model.ZoneDefense{}, newInvalidInput([]FieldError{{Field: "zone", Message: "unknown zone"}})
	}
	g, err := loadGame(ctx, s.games, s.log, gameID)
	if err != nil {
		return model.ZoneDefense{}, err
	}
	return analytics.ZoneDefensiveEfficiency(g, zone), nil
}
