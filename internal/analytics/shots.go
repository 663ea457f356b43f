package analytics

import (
	"sort"

	"github.com/maxviazov/courtside-stats/internal/model"
)

// ShotFilter narrows a shot log. Zero fields match everything.
type ShotFilter struct {
	PlayerID string
	Zone     model.Zone
	Quarter  int
	ShotType model.ShotType
}

func (f ShotFilter) match(s model.Shot) bool {
	switch {
	case f.PlayerID != "" && s.PlayerID != f.PlayerID:
		return false
	case f.Zone != model.ZoneUnknown && s.Position.Zone != f.Zone:
		return false
	case f.Quarter != 0 && s.Quarter != f.Quarter:
		return false
	case f.ShotType != model.ShotTypeUnknown && s.ShotType != f.ShotType:
		return false
	}
	return true
}

// FilterShots returns the shots matching f in log order.
func FilterShots(shots []model.Shot, f ShotFilter) []model.Shot {
	out := make([]model.Shot, 0, len(shots))
	for _, s := range shots {
		if f.match(s) {
			out = append(out, s)
		}
	}
	return out
}

// ShotEfficiency counts makes and misses of any shot subset.
func ShotEfficiency(shots []model.Shot) model.ShotEfficiency {
	var e model.ShotEfficiency
	for _, s := range shots {
		if s.Made {
			e.Made++
		} else {
			e.Missed++
		}
	}
	e.Total = e.Made + e.Missed
	e.Efficiency = pct(e.Made, e.Total)
	return e
}

// ZoneEfficiencyMap partitions shots by zone. Zones without a shot are absent, which callers read
// as "no data" rather than 0%.
func ZoneEfficiencyMap(shots []model.Shot) map[model.Zone]model.ShotEfficiency {
	buckets := make(map[model.Zone][]model.Shot)
	for _, s := range shots {
		buckets[s.Position.Zone] = append(buckets[s.Position.Zone], s)
	}
	out := make(map[model.Zone]model.ShotEfficiency, len(buckets))
	for z, b := range buckets {
		out[z] = ShotEfficiency(b)
	}
	return out
}

// QuarterBreakdown is shot efficiency per period, ordered by quarter. Overtime periods follow the
// fourth quarter.
func QuarterBreakdown(shots []model.Shot) []model.QuarterEfficiency {
	buckets := make(map[int][]model.Shot)
	for _, s := range shots {
		buckets[s.Quarter] = append(buckets[s.Quarter], s)
	}
	out := make([]model.QuarterEfficiency, 0, len(buckets))
	for q, b := range buckets {
		out = append(out, model.QuarterEfficiency{Quarter: q, ShotEfficiency: ShotEfficiency(b)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Quarter < out[j].Quarter })
	return out
}

// ZoneDefensiveEfficiency compares make rates with and without a recorded defender inside zone.
// A nil game yields zero counts.
func ZoneDefensiveEfficiency(g *model.Game, zone model.Zone) model.ZoneDefense {
	out := model.ZoneDefense{Zone: zone}
	if g == nil {
		return out
	}
	var contestedMade, openMade int
	for _, s := range g.Shots {
		if s.Position.Zone != zone {
			continue
		}
		if s.Contested() {
			out.Contested++
			if s.Made {
				contestedMade++
			}
			continue
		}
		out.Uncontested++
		if s.Made {
			openMade++
		}
	}
	out.ContestedEfficiency = pct(contestedMade, out.Contested)
	out.UncontestedEfficiency = pct(openMade, out.Uncontested)
	return out
}
