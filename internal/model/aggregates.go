package model

import "time"

// ShotEfficiency summarises any subset of shots.
type ShotEfficiency struct {
	Made       int     `json:"made"`
	Missed     int     `json:"missed"`
	Total      int     `json:"total"`
	Efficiency float64 `json:"efficiency"`
}

// ContestStats is the miss-forced tally for one zone.
type ContestStats struct {
	Contests           int     `json:"contests"`
	SuccessfulContests int     `json:"successful_contests"`
	Efficiency         float64 `json:"efficiency"`
}

// DefenderImpact is how well a single defender contested shots in a game.
type DefenderImpact struct {
	DefenderID         string                `json:"defender_id"`
	DefenderName       string                `json:"defender_name"`
	TotalContests      int                   `json:"total_contests"`
	SuccessfulContests int                   `json:"successful_contests"`
	ContestEfficiency  float64               `json:"contest_efficiency"`
	AvgContestDistance float64               `json:"avg_contest_distance"`
	ContestsByLevel    map[ContestLevel]int  `json:"contests_by_level"`
	ImpactByZone       map[Zone]ContestStats `json:"impact_by_zone"`
}

// TeamDefensiveImpact is the same reduction over every contested shot of a game.
type TeamDefensiveImpact struct {
	TotalContests         int                   `json:"total_contests"`
	SuccessfulContests    int                   `json:"successful_contests"`
	ContestEfficiency     float64               `json:"contest_efficiency"`
	AvgContestDistance    float64               `json:"avg_contest_distance"`
	ContestsByLevel       map[ContestLevel]int  `json:"contests_by_level"`
	ZoneDefenseEfficiency map[Zone]ContestStats `json:"zone_defense_efficiency"`
}

// MatchupStats describes one shooter against one defender.
type MatchupStats struct {
	TotalShots      int          `json:"total_shots"`
	MadeShots       int          `json:"made_shots"`
	Efficiency      float64      `json:"efficiency"`
	AvgContestLevel ContestLevel `json:"avg_contest_level"`
}

// ZoneDefense compares contested and uncontested shooting inside one zone.
type ZoneDefense struct {
	Zone                  Zone    `json:"zone"`
	Contested             int     `json:"contested"`
	Uncontested           int     `json:"uncontested"`
	ContestedEfficiency   float64 `json:"contested_efficiency"`
	UncontestedEfficiency float64 `json:"uncontested_efficiency"`
}

// QuarterEfficiency is shot efficiency for a single period.
type QuarterEfficiency struct {
	Quarter int `json:"quarter"`
	ShotEfficiency
}

// ReportRange caps how many of the most recent games a report covers.
type ReportRange string

const (
	RangeAll    ReportRange = "all"
	RangeLast5  ReportRange = "last5"
	RangeLast10 ReportRange = "last10"
)

// Limit returns the number of games the range keeps, 0 meaning unlimited.
func (r ReportRange) Limit() int {
	switch r {
	case RangeLast5:
		return 5
	case RangeLast10:
		return 10
	}
	return 0
}

// Averages are per-game values of the summed box-score quantities.
type Averages struct {
	PTS float64 `json:"pts"`
	REB float64 `json:"reb"`
	AST float64 `json:"ast"`
	STL float64 `json:"stl"`
	BLK float64 `json:"blk"`
	TO  float64 `json:"to"`
	FGM float64 `json:"fgm"`
	FGA float64 `json:"fga"`
	TPM float64 `json:"tpm"`
	TPA float64 `json:"tpa"`
	FTM float64 `json:"ftm"`
	FTA float64 `json:"fta"`
	EFF float64 `json:"eff"`
}

// Totals are the summed box-score quantities of a report.
type Totals struct {
	PTS int `json:"pts"`
	REB int `json:"reb"`
	AST int `json:"ast"`
	STL int `json:"stl"`
	BLK int `json:"blk"`
	TO  int `json:"to"`
	FGM int `json:"fgm"`
	FGA int `json:"fga"`
	TPM int `json:"tpm"`
	TPA int `json:"tpa"`
	FTM int `json:"ftm"`
	FTA int `json:"fta"`
	EFF int `json:"eff"`
}

// Shooting holds the three percentages a report derives from its totals.
type Shooting struct {
	FGPct float64 `json:"fg_pct"`
	TPPct float64 `json:"tp_pct"`
	FTPct float64 `json:"ft_pct"`
}

// PlayerGameLine is one row of the game-by-game table of a player report.
type PlayerGameLine struct {
	GameID   string    `json:"game_id"`
	GameName string    `json:"game_name"`
	Date     time.Time `json:"date"`
	PTS      int       `json:"pts"`
	REB      int       `json:"reb"`
	AST      int       `json:"ast"`
	STL      int       `json:"stl"`
	BLK      int       `json:"blk"`
	TO       int       `json:"to"`
	EFF      int       `json:"eff"`
}

// PlayerReport aggregates a player over a selection of games.
type PlayerReport struct {
	Player      Player           `json:"player"`
	GamesPlayed int              `json:"games_played"`
	Totals      Totals           `json:"totals"`
	Averages    Averages         `json:"averages"`
	Shooting    Shooting         `json:"shooting"`
	Games       []PlayerGameLine `json:"games"`
}

// TeamLeader is one entry of a top-3 list.
type TeamLeader struct {
	Player      Player  `json:"player"`
	GamesPlayed int     `json:"games_played"`
	PerGame     float64 `json:"per_game"`
}

// TeamReport aggregates the team over a selection of games.
type TeamReport struct {
	Team              string       `json:"team"`
	GamesPlayed       int          `json:"games_played"`
	Wins              int          `json:"wins"`
	Losses            int          `json:"losses"`
	PointsScored      int          `json:"points_scored"`
	PointsAllowed     int          `json:"points_allowed"`
	AvgPointsScored   float64      `json:"avg_points_scored"`
	AvgPointsAllowed  float64      `json:"avg_points_allowed"`
	PointDifferential float64      `json:"point_differential"`
	Totals            Totals       `json:"totals"`
	Averages          Averages     `json:"averages"`
	Shooting          Shooting     `json:"shooting"`
	TopScorers        []TeamLeader `json:"top_scorers"`
	TopRebounders     []TeamLeader `json:"top_rebounders"`
	TopPlaymakers     []TeamLeader `json:"top_playmakers"`
}

// LeaderboardCategory picks the sort key of the statistics leaderboard.
type LeaderboardCategory string

const (
	CategoryOffense    LeaderboardCategory = "offense"
	CategoryDefense    LeaderboardCategory = "defense"
	CategoryEfficiency LeaderboardCategory = "efficiency"
)

// LeaderboardEntry is per-game averages of one player across the selected games.
type LeaderboardEntry struct {
	Player      Player   `json:"player"`
	GamesPlayed int      `json:"games_played"`
	Averages    Averages `json:"averages"`
	Shooting    Shooting `json:"shooting"`
}
