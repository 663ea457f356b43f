// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes; the only behavior here is derived box-score math
// and enum encoding, so every layer reads the same numbers.
package model

import "time"

// Court dimensions in court units. The basket sits at (CourtWidth/2, BasketY).
const (
	CourtWidth       = 500.0
	CourtHeight      = 470.0
	BasketY          = 25.0
	ThreePointRadius = 237.5
	PaintHalfWidth   = 80.0
	PaintDepth       = 190.0
	CornerThreeDepth = CourtHeight - 50
)

// Point is a location on the court.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Player is a roster entry of a single game.
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Number   int    `json:"number"`
	Position string `json:"position"`
	IsActive bool   `json:"is_active"`
}

// Score holds both sides of the scoreboard.
type Score struct {
	Team     int `json:"team"`
	Opponent int `json:"opponent"`
}

// ShotPosition is derived from the shot coordinates at insertion time and never supplied by callers.
type ShotPosition struct {
	Zone     Zone    `json:"zone"`
	Distance float64 `json:"distance"`
}

// Defender describes who contested a shot. When a Shot carries a Defender every field is populated;
// a shot without a defender has a nil pointer instead of a half-filled struct.
type Defender struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Position     *Point       `json:"position,omitempty"`
	ContestLevel ContestLevel `json:"contest_level,omitempty"`
	Distance     float64      `json:"distance"`
}

// Shot is one entry of the append-only shot log of a game.
type Shot struct {
	ID        string       `json:"id"`
	GameID    string       `json:"game_id"`
	PlayerID  string       `json:"player_id"`
	X         float64      `json:"x"`
	Y         float64      `json:"y"`
	Made      bool         `json:"made"`
	ShotType  ShotType     `json:"shot_type"`
	Quarter   int          `json:"quarter"`
	Timestamp time.Time    `json:"timestamp"`
	Position  ShotPosition `json:"position"`
	Defender  *Defender    `json:"defender,omitempty"`
}

// Contested reports whether a defender was recorded for the shot.
func (s Shot) Contested() bool { return s.Defender != nil }

// GameStatus is the lifecycle state of a game: in-progress until completed, never back.
type GameStatus string

const (
	StatusInProgress GameStatus = "in-progress"
	StatusCompleted  GameStatus = "completed"
)

// Game is the root aggregate: roster, box score counters and the shot log.
type Game struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Team          string                 `json:"team"`
	Opponent      string                 `json:"opponent"`
	Date          time.Time              `json:"date"`
	Players       []Player               `json:"players"`
	PlayerStats   map[string]PlayerStats `json:"player_stats"`
	Score         Score                  `json:"score"`
	Quarter       int                    `json:"quarter"`
	TimeRemaining string                 `json:"time_remaining"`
	Status        GameStatus             `json:"status"`
	Shots         []Shot                 `json:"shots"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// FindPlayer returns the roster entry for id.
func (g *Game) FindPlayer(id string) (Player, bool) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// Clone returns a deep copy so callers can never mutate a stored game through shared slices or maps.
func (g Game) Clone() Game {
	out := g
	out.Players = append([]Player(nil), g.Players...)
	out.PlayerStats = make(map[string]PlayerStats, len(g.PlayerStats))
	for id, s := range g.PlayerStats {
		out.PlayerStats[id] = s
	}
	out.Shots = make([]Shot, len(g.Shots))
	for i, s := range g.Shots {
		if s.Defender != nil {
			d := *s.Defender
			if d.Position != nil {
				p := *d.Position
				d.Position = &p
			}
			s.Defender = &d
		}
		out.Shots[i] = s
	}
	return out
}
