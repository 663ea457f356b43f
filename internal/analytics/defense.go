package analytics

import "github.com/maxviazov/courtside-stats/internal/model"

const unknownDefender = "Unknown"

// contestTally is the shared reduction behind defender and team impact.
type contestTally struct {
	total, forced int
	distance      float64
	byLevel       map[model.ContestLevel]int
	byZone        map[model.Zone]model.ContestStats
}

func newContestTally() contestTally {
	t := contestTally{
		byLevel: make(map[model.ContestLevel]int, len(model.ContestLevels)),
		byZone:  make(map[model.Zone]model.ContestStats),
	}
	for _, l := range model.ContestLevels {
		t.byLevel[l] = 0
	}
	return t
}

// add counts one defended shot. Unrated contests stay out of the level histogram.
func (t *contestTally) add(s model.Shot) {
	t.total++
	t.distance += s.Defender.Distance
	if s.Defender.ContestLevel.Rated() {
		t.byLevel[s.Defender.ContestLevel]++
	}
	z := t.byZone[s.Position.Zone]
	z.Contests++
	if !s.Made {
		t.forced++
		z.SuccessfulContests++
	}
	z.Efficiency = pct(z.SuccessfulContests, z.Contests)
	t.byZone[s.Position.Zone] = z
}

// DefenderImpact reduces the shots contested by defenderID. A successful contest is a forced miss.
// A nil game yields the zero-valued impact with every level bucket present.
func DefenderImpact(g *model.Game, defenderID string) model.DefenderImpact {
	t := newContestTally()
	name := unknownDefender
	if g != nil {
		if p, ok := g.FindPlayer(defenderID); ok {
			name = p.Name
		}
		for _, s := range g.Shots {
			if s.Defender != nil && s.Defender.ID == defenderID {
				t.add(s)
			}
		}
	}
	return model.DefenderImpact{
		DefenderID:         defenderID,
		DefenderName:       name,
		TotalContests:      t.total,
		SuccessfulContests: t.forced,
		ContestEfficiency:  pct(t.forced, t.total),
		AvgContestDistance: avg(t.distance, t.total),
		ContestsByLevel:    t.byLevel,
		ImpactByZone:       t.byZone,
	}
}

// TeamDefensiveImpact is DefenderImpact over every shot that has any defender.
func TeamDefensiveImpact(g *model.Game) model.TeamDefensiveImpact {
	t := newContestTally()
	if g != nil {
		for _, s := range g.Shots {
			if s.Contested() {
				t.add(s)
			}
		}
	}
	return model.TeamDefensiveImpact{
		TotalContests:         t.total,
		SuccessfulContests:    t.forced,
		ContestEfficiency:     pct(t.forced, t.total),
		AvgContestDistance:    avg(t.distance, t.total),
		ContestsByLevel:       t.byLevel,
		ZoneDefenseEfficiency: t.byZone,
	}
}

// PlayerMatchupStats describes shooterID's attempts while defended by defenderID. The average
// contest level is the mean ordinal re-bucketed to the nearest level; an unrated contest counts
// as ordinal 0 but still contributes to the denominator.
func PlayerMatchupStats(g *model.Game, shooterID, defenderID string) model.MatchupStats {
	out := model.MatchupStats{AvgContestLevel: model.Uncontested}
	if g == nil {
		return out
	}
	var ordinals int
	for _, s := range g.Shots {
		if s.PlayerID != shooterID || s.Defender == nil || s.Defender.ID != defenderID {
			continue
		}
		out.TotalShots++
		if s.Made {
			out.MadeShots++
		}
		ordinals += s.Defender.ContestLevel.Ordinal()
	}
	out.Efficiency = pct(out.MadeShots, out.TotalShots)
	out.AvgContestLevel = rebucket(avg(float64(ordinals), out.TotalShots))
	return out
}

func rebucket(v float64) model.ContestLevel {
	switch {
	case v >= 3.5:
		return model.Blocked
	case v >= 2.5:
		return model.HeavyContest
	case v >= 1.5:
		return model.MediumContest
	case v >= 0.5:
		return model.LightContest
	}
	return model.Uncontested
}
