package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/courtside-stats/internal/analytics"
	"github.com/maxviazov/courtside-stats/internal/court"
	"github.com/maxviazov/courtside-stats/internal/ledger"
	"github.com/maxviazov/courtside-stats/internal/model"
	"github.com/maxviazov/courtside-stats/internal/repository"
)

type shotService struct {
	games repository.GameRepository
	opts  options
	log   zerolog.Logger
}

func NewShotService(games repository.GameRepository, logger zerolog.Logger, opts ...Option) ShotService {
	l := logger.With().Str("module", "service").Str("component", "shot").Logger()
	return &shotService{games: games, opts: buildOptions(opts), log: l}
}

// RecordShot enriches and stores a shot. A missing shot type is derived from the coordinates;
// free throws are always placed on the free-throw spot. Input is checked only once the game is
// known, so a shot for a missing game is dropped without an error.
func (s *shotService) RecordShot(ctx context.Context, gameID string, in ledger.ShotInput) (model.Shot, error) {
	in.PlayerID = strings.TrimSpace(in.PlayerID)
	start := time.Now()
	var shot model.Shot
	_, applied, err := applyToGame(ctx, s.games, s.log, gameID, "record_shot", func(g *model.Game) error {
		placed := placeShot(in)
		if err := newInvalidInput(validateShot(placed)); err != nil {
			return err
		}
		var err error
		shot, err = ledger.RecordShot(g, placed, s.opts.newID(), s.opts.now())
		return err
	})
	if err != nil || !applied {
		return model.Shot{}, err
	}
	s.opts.metrics.ShotRecorded(shot.ShotType, shot.Made)
	ev := s.log.Info().Str("game_id", gameID).Str("shot_id", shot.ID).Str("player_id", shot.PlayerID).
		Stringer("shot_type", shot.ShotType).Stringer("zone", shot.Position.Zone).Bool("made", shot.Made)
	if shot.Defender != nil {
		ev = ev.Str("defender_id", shot.Defender.ID).Stringer("contest_level", shot.Defender.ContestLevel)
	}
	ev.Dur("took", time.Since(start)).Msg("shot recorded")
	return shot, nil
}

// placeShot fills in the shot type when it was left blank and pins free throws to the line.
func placeShot(in ledger.ShotInput) ledger.ShotInput {
	switch in.ShotType {
	case model.ShotTypeUnknown:
		in.ShotType = court.AutoShotType(model.Point{X: in.X, Y: in.Y})
	case model.FreeThrow:
		in.X, in.Y = court.FreeThrowSpot.X, court.FreeThrowSpot.Y
	}
	return in
}

func (s *shotService) GetShotsByGame(ctx context.Context, gameID string) ([]model.Shot, error) {
	g, err := loadGame(ctx, s.games, s.log, gameID)
	if err != nil || g == nil {
		return []model.Shot{}, err
	}
	return analytics.FilterShots(g.Shots, analytics.ShotFilter{}), nil
}

func (s *shotService) GetShotsByPlayer(ctx context.Context, gameID, playerID string) ([]model.Shot, error) {
	g, err := loadGame(ctx, s.games, s.log, gameID)
	if err != nil || g == nil {
		return []model.Shot{}, err
	}
	return analytics.FilterShots(g.Shots, analytics.ShotFilter{PlayerID: playerID}), nil
}
