package court

import "github.com/maxviazov/courtside-stats/internal/model"

// Contest bands, exclusive upper bounds in court units.
const (
	heavyContestBelow  = 20.0
	mediumContestBelow = 40.0
	lightContestBelow  = 60.0
)

// ContestLevelFor maps a shooter-defender separation onto a level. Blocked is never derived.
func ContestLevelFor(distance float64) model.ContestLevel {
	switch {
	case distance < heavyContestBelow:
		return model.HeavyContest
	case distance < mediumContestBelow:
		return model.MediumContest
	case distance < lightContestBelow:
		return model.LightContest
	default:
		return model.Uncontested
	}
}

// ClassifyContest measures the separation between shooter and defender and derives the level.
func ClassifyContest(shooter, defender model.Point) (model.ContestLevel, float64) {
	d := Distance(shooter, defender)
	return ContestLevelFor(d), d
}
