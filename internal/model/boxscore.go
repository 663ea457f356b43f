package model

import (
	"encoding/json"
	"fmt"
)

// StatKey names one recordable box-score counter.
type StatKey string

const (
	Stat2PTMade  StatKey = "2PT_MADE"
	Stat2PTMiss  StatKey = "2PT_MISS"
	Stat3PTMade  StatKey = "3PT_MADE"
	Stat3PTMiss  StatKey = "3PT_MISS"
	StatFTMade   StatKey = "FT_MADE"
	StatFTMiss   StatKey = "FT_MISS"
	StatRebOff   StatKey = "REB_OFF"
	StatRebDef   StatKey = "REB_DEF"
	StatAssist   StatKey = "AST"
	StatSteal    StatKey = "STL"
	StatBlock    StatKey = "BLK"
	StatTurnover StatKey = "TO"
)

// StatKeys lists every recordable counter in box-score order.
var StatKeys = []StatKey{
	Stat2PTMade, Stat2PTMiss, Stat3PTMade, Stat3PTMiss, StatFTMade, StatFTMiss,
	StatRebOff, StatRebDef, StatAssist, StatSteal, StatBlock, StatTurnover,
}

// Valid reports whether k is one of the twelve counters. PTS is derived and not recordable.
func (k StatKey) Valid() bool {
	for _, known := range StatKeys {
		if k == known {
			return true
		}
	}
	return false
}

// ShotOutcomeKey picks the counter a shot of type t increments.
func ShotOutcomeKey(t ShotType, made bool) (StatKey, error) {
	switch {
	case t == TwoPoint && made:
		return Stat2PTMade, nil
	case t == TwoPoint:
		return Stat2PTMiss, nil
	case t == ThreePoint && made:
		return Stat3PTMade, nil
	case t == ThreePoint:
		return Stat3PTMiss, nil
	case t == FreeThrow && made:
		return StatFTMade, nil
	case t == FreeThrow:
		return StatFTMiss, nil
	}
	return "", fmt.Errorf("unknown shot type %d", t)
}

// PlayerStats is the per-game box score of a player. Points and attempts are always derived from
// the make/miss counters.
type PlayerStats struct {
	TwoMade   int `json:"2PT_MADE"`
	TwoMiss   int `json:"2PT_MISS"`
	ThreeMade int `json:"3PT_MADE"`
	ThreeMiss int `json:"3PT_MISS"`
	FTMade    int `json:"FT_MADE"`
	FTMiss    int `json:"FT_MISS"`
	RebOff    int `json:"REB_OFF"`
	RebDef    int `json:"REB_DEF"`
	Assists   int `json:"AST"`
	Steals    int `json:"STL"`
	Blocks    int `json:"BLK"`
	Turnovers int `json:"TO"`
}

// Counter returns a pointer to the field behind k, or nil for an unknown key.
func (s *PlayerStats) Counter(k StatKey) *int {
	switch k {
	case Stat2PTMade:
		return &s.TwoMade
	case Stat2PTMiss:
		return &s.TwoMiss
	case Stat3PTMade:
		return &s.ThreeMade
	case Stat3PTMiss:
		return &s.ThreeMiss
	case StatFTMade:
		return &s.FTMade
	case StatFTMiss:
		return &s.FTMiss
	case StatRebOff:
		return &s.RebOff
	case StatRebDef:
		return &s.RebDef
	case StatAssist:
		return &s.Assists
	case StatSteal:
		return &s.Steals
	case StatBlock:
		return &s.Blocks
	case StatTurnover:
		return &s.Turnovers
	}
	return nil
}

func (s PlayerStats) Points() int   { return 2*s.TwoMade + 3*s.ThreeMade + s.FTMade }
func (s PlayerStats) Rebounds() int { return s.RebOff + s.RebDef }
func (s PlayerStats) FGM() int      { return s.TwoMade + s.ThreeMade }
func (s PlayerStats) FGA() int      { return s.TwoMade + s.TwoMiss + s.ThreeMade + s.ThreeMiss }
func (s PlayerStats) TPM() int      { return s.ThreeMade }
func (s PlayerStats) TPA() int      { return s.ThreeMade + s.ThreeMiss }
func (s PlayerStats) FTM() int      { return s.FTMade }
func (s PlayerStats) FTA() int      { return s.FTMade + s.FTMiss }

// Efficiency is PTS + REB + AST + STL + BLK - TO - missed field goals - missed free throws.
func (s PlayerStats) Efficiency() int {
	return s.Points() + s.Rebounds() + s.Assists + s.Steals + s.Blocks - s.Turnovers -
		(s.FGA() - s.FGM()) - (s.FTA() - s.FTM())
}

// Add sums two stat lines.
func (s PlayerStats) Add(o PlayerStats) PlayerStats {
	return PlayerStats{
		TwoMade: s.TwoMade + o.TwoMade, TwoMiss: s.TwoMiss + o.TwoMiss,
		ThreeMade: s.ThreeMade + o.ThreeMade, ThreeMiss: s.ThreeMiss + o.ThreeMiss,
		FTMade: s.FTMade + o.FTMade, FTMiss: s.FTMiss + o.FTMiss,
		RebOff: s.RebOff + o.RebOff, RebDef: s.RebDef + o.RebDef,
		Assists: s.Assists + o.Assists, Steals: s.Steals + o.Steals,
		Blocks: s.Blocks + o.Blocks, Turnovers: s.Turnovers + o.Turnovers,
	}
}

// MarshalJSON adds the derived PTS so clients never compute it themselves.
func (s PlayerStats) MarshalJSON() ([]byte, error) {
	type plain PlayerStats
	return json.Marshal(struct {
		plain
		PTS int `json:"PTS"`
	}{plain: plain(s), PTS: s.Points()})
}
