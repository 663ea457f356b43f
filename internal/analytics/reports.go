package analytics

import (
	"sort"
	"strings"

	"github.com/maxviazov/courtside-stats/internal/model"
)

// leaderCount is the length of every top list of a team report.
const leaderCount = 3

// Selection picks the games a multi-game report covers.
type Selection struct {
	PlayerID string // keep games whose roster includes this player
	GameID   string // keep only this game
	Team     string // keep games played by this team, case-insensitively
	Range    model.ReportRange
}

// SelectGames applies sel, orders the result newest first and caps it by the range.
// Input order breaks date ties.
func SelectGames(games []model.Game, sel Selection) []model.Game {
	out := make([]model.Game, 0, len(games))
	for _, g := range games {
		if sel.GameID != "" && g.ID != sel.GameID {
			continue
		}
		if sel.Team != "" && !strings.EqualFold(g.Team, sel.Team) {
			continue
		}
		if sel.PlayerID != "" {
			if _, ok := g.FindPlayer(sel.PlayerID); !ok {
				continue
			}
		}
		out = append(out, g)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if n := sel.Range.Limit(); n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func totalsOf(s model.PlayerStats) model.Totals {
	return model.Totals{
		PTS: s.Points(), REB: s.Rebounds(), AST: s.Assists, STL: s.Steals, BLK: s.Blocks, TO: s.Turnovers,
		FGM: s.FGM(), FGA: s.FGA(), TPM: s.TPM(), TPA: s.TPA(), FTM: s.FTM(), FTA: s.FTA(),
		EFF: s.Efficiency(),
	}
}

func averagesOf(t model.Totals, n int) model.Averages {
	per := func(v int) float64 { return avg(float64(v), n) }
	return model.Averages{
		PTS: per(t.PTS), REB: per(t.REB), AST: per(t.AST), STL: per(t.STL), BLK: per(t.BLK), TO: per(t.TO),
		FGM: per(t.FGM), FGA: per(t.FGA), TPM: per(t.TPM), TPA: per(t.TPA), FTM: per(t.FTM), FTA: per(t.FTA),
		EFF: per(t.EFF),
	}
}

func shootingOf(t model.Totals) model.Shooting {
	return model.Shooting{FGPct: pct(t.FGM, t.FGA), TPPct: pct(t.TPM, t.TPA), FTPct: pct(t.FTM, t.FTA)}
}

// PlayerReport sums a player's box scores over games, typically the output of SelectGames.
// Only games holding a stat line for the player count as played.
func PlayerReport(games []model.Game, playerID string) model.PlayerReport {
	r := model.PlayerReport{Player: model.Player{ID: playerID}, Games: []model.PlayerGameLine{}}
	var sum model.PlayerStats
	found := false
	for _, g := range games {
		if !found {
			if p, ok := g.FindPlayer(playerID); ok {
				r.Player, found = p, true
			}
		}
		s, ok := g.PlayerStats[playerID]
		if !ok {
			continue
		}
		r.GamesPlayed++
		sum = sum.Add(s)
		r.Games = append(r.Games, model.PlayerGameLine{
			GameID:   g.ID,
			GameName: g.Name,
			Date:     g.Date,
			PTS:      s.Points(),
			REB:      s.Rebounds(),
			AST:      s.Assists,
			STL:      s.Steals,
			BLK:      s.Blocks,
			TO:       s.Turnovers,
			EFF:      s.Efficiency(),
		})
	}
	r.Totals = totalsOf(sum)
	r.Averages = averagesOf(r.Totals, r.GamesPlayed)
	r.Shooting = shootingOf(r.Totals)
	return r
}

// playerLine accumulates one player across games, in first-seen order.
type playerLine struct {
	player model.Player
	games  int
	stats  model.PlayerStats
}

func collectPlayers(games []model.Game) []*playerLine {
	index := make(map[string]*playerLine)
	var lines []*playerLine
	for _, g := range games {
		for _, p := range g.Players {
			l, ok := index[p.ID]
			if !ok {
				l = &playerLine{player: p}
				index[p.ID] = l
				lines = append(lines, l)
			}
			if s, played := g.PlayerStats[p.ID]; played {
				l.games++
				l.stats = l.stats.Add(s)
			}
		}
	}
	return lines
}

// TeamReport aggregates every player of every game. A game is won only when the team outscored the
// opponent; ties count as losses.
func TeamReport(games []model.Game, team string) model.TeamReport {
	r := model.TeamReport{
		Team:          team,
		GamesPlayed:   len(games),
		TopScorers:    []model.TeamLeader{},
		TopRebounders: []model.TeamLeader{},
		TopPlaymakers: []model.TeamLeader{},
	}
	var sum model.PlayerStats
	for _, g := range games {
		if g.Score.Team > g.Score.Opponent {
			r.Wins++
		} else {
			r.Losses++
		}
		r.PointsScored += g.Score.Team
		r.PointsAllowed += g.Score.Opponent
		for _, s := range g.PlayerStats {
			sum = sum.Add(s)
		}
	}
	r.AvgPointsScored = avg(float64(r.PointsScored), r.GamesPlayed)
	r.AvgPointsAllowed = avg(float64(r.PointsAllowed), r.GamesPlayed)
	r.PointDifferential = r.AvgPointsScored - r.AvgPointsAllowed
	r.Totals = totalsOf(sum)
	r.Averages = averagesOf(r.Totals, r.GamesPlayed)
	r.Shooting = shootingOf(r.Totals)

	var regulars []*playerLine
	for _, l := range collectPlayers(games) {
		if l.games > 0 && 2*l.games >= len(games) {
			regulars = append(regulars, l)
		}
	}
	r.TopScorers = leaders(regulars, func(s model.PlayerStats) int { return s.Points() })
	r.TopRebounders = leaders(regulars, func(s model.PlayerStats) int { return s.Rebounds() })
	r.TopPlaymakers = leaders(regulars, func(s model.PlayerStats) int { return s.Assists })
	return r
}

func leaders(lines []*playerLine, stat func(model.PlayerStats) int) []model.TeamLeader {
	out := make([]model.TeamLeader, 0, len(lines))
	for _, l := range lines {
		out = append(out, model.TeamLeader{
			Player:      l.player,
			GamesPlayed: l.games,
			PerGame:     avg(float64(stat(l.stats)), l.games),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PerGame > out[j].PerGame })
	if len(out) > leaderCount {
		out = out[:leaderCount]
	}
	return out
}

// Leaderboard ranks every player who appeared in games by per-game output in category:
// points for offense, rebounds+steals+blocks for defense, EFF for efficiency.
// An unknown category ranks by points.
func Leaderboard(games []model.Game, category model.LeaderboardCategory) []model.LeaderboardEntry {
	lines := collectPlayers(games)
	out := make([]model.LeaderboardEntry, 0, len(lines))
	for _, l := range lines {
		if l.games == 0 {
			continue
		}
		t := totalsOf(l.stats)
		out = append(out, model.LeaderboardEntry{
			Player:      l.player,
			GamesPlayed: l.games,
			Averages:    averagesOf(t, l.games),
			Shooting:    shootingOf(t),
		})
	}
	key := func(e model.LeaderboardEntry) float64 {
		switch category {
		case model.CategoryDefense:
			return e.Averages.REB + e.Averages.STL + e.Averages.BLK
		case model.CategoryEfficiency:
			return e.Averages.EFF
		}
		return e.Averages.PTS
	}
	sort.SliceStable(out, func(i, j int) bool { return key(out[i]) > key(out[j]) })
	return out
}
