// Package ledger applies recorded events to a game: shots go onto the append-only log enriched with
// zone and contest data, box-score counters only ever move forward.
//
// Every function mutates the *model.Game it is given and nothing else. Callers own atomicity
// (the repository runs each mutation under its own lock or transaction).
package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/maxviazov/courtside-stats/internal/court"
	"github.com/maxviazov/courtside-stats/internal/model"
)

// ErrPlayerNotFound is returned when an event references a player missing from the roster.
var ErrPlayerNotFound = errors.New("player not found")

// ErrInvalidStat is returned for a stat key outside the twelve recordable counters.
var ErrInvalidStat = errors.New("invalid stat key")

// ErrInvalidShotType is returned when a shot has no valid shot type.
var ErrInvalidShotType = errors.New("invalid shot type")

// DefenderInput names the contesting player and, optionally, where they stood.
type DefenderInput struct {
	ID       string
	Position *model.Point
}

// ShotInput is what a recorder supplies for a shot. Zone, distance, id and timestamp are derived.
type ShotInput struct {
	PlayerID     string
	X, Y         float64
	Made         bool
	ShotType     model.ShotType
	Quarter      int
	Defender     *DefenderInput
	ContestLevel model.ContestLevel
}

// NewGame builds an in-progress game with a zero box score for every rostered player.
// Record timestamps are left zero for the caller or the store to stamp.
func NewGame(id, name, team, opponent string, date time.Time, players []model.Player) model.Game {
	g := model.Game{
		ID:            id,
		Name:          name,
		Team:          team,
		Opponent:      opponent,
		Date:          date,
		Players:       append([]model.Player(nil), players...),
		PlayerStats:   make(map[string]model.PlayerStats, len(players)),
		Quarter:       1,
		TimeRemaining: "12:00",
		Status:        model.StatusInProgress,
		Shots:         []model.Shot{},
	}
	for _, p := range players {
		g.PlayerStats[p.ID] = model.PlayerStats{}
	}
	return g
}

// AddPlayer appends a player to the roster with a fresh stat line.
func AddPlayer(g *model.Game, p model.Player) error {
	if _, ok := g.FindPlayer(p.ID); ok {
		return fmt.Errorf("player %s: already on roster", p.ID)
	}
	g.Players = append(g.Players, p)
	if g.PlayerStats == nil {
		g.PlayerStats = make(map[string]model.PlayerStats)
	}
	g.PlayerStats[p.ID] = model.PlayerStats{}
	return nil
}

// ToggleActive flips a player between the court and the bench and returns the new state.
func ToggleActive(g *model.Game, playerID string) (bool, error) {
	for i := range g.Players {
		if g.Players[i].ID == playerID {
			g.Players[i].IsActive = !g.Players[i].IsActive
			return g.Players[i].IsActive, nil
		}
	}
	return false, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
}

// RecordStat increments a single counter of a player's box score.
func RecordStat(g *model.Game, playerID string, key model.StatKey) (model.PlayerStats, error) {
	if !key.Valid() {
		return model.PlayerStats{}, fmt.Errorf("%w: %q", ErrInvalidStat, key)
	}
	if _, ok := g.FindPlayer(playerID); !ok {
		return model.PlayerStats{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
	}
	if g.PlayerStats == nil {
		g.PlayerStats = make(map[string]model.PlayerStats)
	}
	s := g.PlayerStats[playerID]
	*s.Counter(key)++
	g.PlayerStats[playerID] = s
	return s, nil
}

// RecordShot enriches the input, appends it to the shot log and bumps exactly one outcome counter.
// Validation happens before anything is written, so a failed call leaves g untouched.
// A quarter below 1 falls back to the game's current period. A contest level only travels with a
// defender; without one the shot is recorded as a plain shot.
func RecordShot(g *model.Game, in ShotInput, id string, now time.Time) (model.Shot, error) {
	if !in.ShotType.Valid() {
		return model.Shot{}, ErrInvalidShotType
	}
	if _, ok := g.FindPlayer(in.PlayerID); !ok {
		return model.Shot{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, in.PlayerID)
	}
	key, err := model.ShotOutcomeKey(in.ShotType, in.Made)
	if err != nil {
		return model.Shot{}, err
	}

	quarter := in.Quarter
	if quarter < 1 {
		quarter = g.Quarter
	}
	at := model.Point{X: in.X, Y: in.Y}
	shot := model.Shot{
		ID:        id,
		GameID:    g.ID,
		PlayerID:  in.PlayerID,
		X:         in.X,
		Y:         in.Y,
		Made:      in.Made,
		ShotType:  in.ShotType,
		Quarter:   quarter,
		Timestamp: now,
		Position:  court.ClassifyZone(at),
	}

	if in.Defender != nil {
		defender, ok := g.FindPlayer(in.Defender.ID)
		if !ok {
			return model.Shot{}, fmt.Errorf("%w: defender %s", ErrPlayerNotFound, in.Defender.ID)
		}
		d := &model.Defender{ID: defender.ID, Name: defender.Name}
		if in.ContestLevel.Rated() {
			d.ContestLevel = in.ContestLevel
		}
		if in.Defender.Position != nil {
			pos := *in.Defender.Position
			level, dist := court.ClassifyContest(at, pos)
			d.Position = &pos
			d.Distance = dist
			if !d.ContestLevel.Rated() {
				d.ContestLevel = level
			}
		}
		shot.Defender = d
	}

	if g.PlayerStats == nil {
		g.PlayerStats = make(map[string]model.PlayerStats)
	}
	s := g.PlayerStats[in.PlayerID]
	*s.Counter(key)++
	g.PlayerStats[in.PlayerID] = s
	g.Shots = append(g.Shots, shot)
	return shot, nil
}

// SetScore overwrites the scoreboard.
func SetScore(g *model.Game, score model.Score) { g.Score = score }

// SetQuarter moves the game to period q (5+ for overtime).
func SetQuarter(g *model.Game, q int) { g.Quarter = q }

// SetTimeRemaining updates the game clock display.
func SetTimeRemaining(g *model.Game, clock string) { g.TimeRemaining = clock }

// Complete marks the game completed. It reports false if the game already was.
func Complete(g *model.Game) bool {
	if g.Status == model.StatusCompleted {
		return false
	}
	g.Status = model.StatusCompleted
	return true
}
