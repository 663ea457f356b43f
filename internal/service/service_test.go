package service_test

import (
	"context"
	"fmt"
	"io"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/courtside-stats/internal/analytics"
	"github.com/maxviazov/courtside-stats/internal/ledger"
	"github.com/maxviazov/courtside-stats/internal/model"
	"github.com/maxviazov/courtside-stats/internal/repository"
	"github.com/maxviazov/courtside-stats/internal/repository/memory"
	"github.com/maxviazov/courtside-stats/internal/service"
)

type fakeMetrics struct {
	shots     map[model.ShotType]int
	stats     map[model.StatKey]int
	created   int
	completed int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{shots: map[model.ShotType]int{}, stats: map[model.StatKey]int{}}
}

func (f *fakeMetrics) ShotRecorded(t model.ShotType, _ bool) { f.shots[t]++ }
func (f *fakeMetrics) StatRecorded(k model.StatKey)          { f.stats[k]++ }
func (f *fakeMetrics) GameCreated()                          { f.created++ }
func (f *fakeMetrics) GameCompleted()                        { f.completed++ }

var _ service.Metrics = (*fakeMetrics)(nil)

// sequentialIDs hands out id-1, id-2, ...
func sequentialIDs() service.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

var fixedNow = time.Date(2025, 3, 1, 19, 30, 0, 0, time.UTC)

type fixture struct {
	repo      *memory.Store
	metrics   *fakeMetrics
	games     service.GameService
	shots     service.ShotService
	analytics service.AnalyticsService
	reports   service.ReportService
}

func newFixture() fixture {
	logger := zerolog.New(io.Discard)
	repo := memory.NewStore()
	m := newFakeMetrics()
	ids := sequentialIDs()
	opts := []service.Option{
		service.WithClock(func() time.Time { return fixedNow }),
		service.WithIDGenerator(ids),
		service.WithMetrics(m),
	}
	return fixture{
		repo:      repo,
		metrics:   m,
		games:     service.NewGameService(repo, logger, opts...),
		shots:     service.NewShotService(repo, logger, opts...),
		analytics: service.NewAnalyticsService(repo, logger),
		reports:   service.NewReportService(repo, logger),
	}
}

func (f fixture) createGame(t *testing.T, team string, day int) model.Game {
	t.Helper()
	g, err := f.games.CreateGame(context.Background(), service.NewGameInput{
		Name:     "League game",
		Team:     team,
		Opponent: "Rivals",
		Date:     time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC),
		Players: []model.Player{
			{ID: "p1", Name: "Avery", Number: 4, Position: "pg", IsActive: true},
			{ID: "p2", Name: "Blake", Number: 12, Position: "C"},
		},
	})
	require.NoError(t, err)
	return g
}

func hasField(err error, field string) bool {
	for _, fe := range service.FieldErrors(err) {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func TestGameService_CreateGame_Validation(t *testing.T) {
	f := newFixture()
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		in      service.NewGameInput
		wantErr bool
		field   string
	}{
		{"missing name", service.NewGameInput{Team: "A", Opponent: "B", Date: day}, true, "name"},
		{"missing team", service.NewGameInput{Name: "g", Opponent: "B", Date: day}, true, "team"},
		{"missing opponent", service.NewGameInput{Name: "g", Team: "A", Date: day}, true, "opponent"},
		{"missing date", service.NewGameInput{Name: "g", Team: "A", Opponent: "B"}, true, "date"},
		{"bad jersey", service.NewGameInput{Name: "g", Team: "A", Opponent: "B", Date: day,
			Players: []model.Player{{ID: "x", Name: "X", Number: 100}}}, true, "players[0].number"},
		{"duplicate ids", service.NewGameInput{Name: "g", Team: "A", Opponent: "B", Date: day,
			Players: []model.Player{{ID: "x", Name: "X"}, {ID: "x", Name: "Y"}}}, true, "players[1].id"},
		{"ok without roster", service.NewGameInput{Name: "g", Team: "A", Opponent: "B", Date: day}, false, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.games.CreateGame(context.Background(), tc.in)
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, service.ErrInvalidInput)
			assert.True(t, hasField(err, tc.field), "expected field %s in %v", tc.field, service.FieldErrors(err))
		})
	}
}

func TestGameService_CreateGame(t *testing.T) {
	f := newFixture()
	g := f.createGame(t, "Hawks", 5)

	assert.Equal(t, "id-1", g.ID)
	assert.Equal(t, model.StatusInProgress, g.Status)
	assert.Equal(t, 1, g.Quarter)
	assert.Equal(t, "12:00", g.TimeRemaining)
	assert.Equal(t, fixedNow, g.CreatedAt)
	assert.Equal(t, "PG", g.Players[0].Position)
	assert.Len(t, g.PlayerStats, 2)
	assert.Equal(t, 1, f.metrics.created)
}

func TestGameService_CreateGame_MintsPlayerIDs(t *testing.T) {
	f := newFixture()
	g, err := f.games.CreateGame(context.Background(), service.NewGameInput{
		Name: "g", Team: "A", Opponent: "B", Date: fixedNow,
		Players: []model.Player{{Name: "No Id"}},
	})
	require.NoError(t, err)
	require.Len(t, g.Players, 1)
	assert.NotEmpty(t, g.Players[0].ID)
	assert.Contains(t, g.PlayerStats, g.Players[0].ID)
}

func TestGameService_GetAndDelete(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	g := f.createGame(t, "Hawks", 5)

	_, err := f.games.GetGame(ctx, "")
	require.ErrorIs(t, err, service.ErrInvalidInput)

	got, err := f.games.GetGame(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, g.Name, got.Name)

	require.NoError(t, f.games.DeleteGame(ctx, g.ID))
	_, err = f.games.GetGame(ctx, g.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.ErrorIs(t, f.games.DeleteGame(ctx, g.ID), repository.ErrNotFound)
}

func TestGameService_ListGames_NewestFirst(t *testing.T) {
	f := newFixture()
	f.createGame(t, "Hawks", 1)
	f.createGame(t, "Hawks", 9)
	f.createGame(t, "Hawks", 4)

	res, err := f.games.ListGames(context.Background(), repository.Page{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	require.Len(t, res.Items, 2)
	assert.Equal(t, 9, res.Items[0].Date.Day())
	assert.Equal(t, 4, res.Items[1].Date.Day())
}

func TestGameService_MutationsOnUnknownGameAreNoOps(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	require.NoError(t, f.games.RecordStat(ctx, "missing", "p1", model.StatAssist))
	require.NoError(t, f.games.ToggleActive(ctx, "missing", "p1"))
	require.NoError(t, f.games.UpdateScore(ctx, "missing", model.Score{Team: 1}))
	require.NoError(t, f.games.UpdateQuarter(ctx, "missing", 2))
	require.NoError(t, f.games.UpdateTime(ctx, "missing", "5:00"))
	require.NoError(t, f.games.CompleteGame(ctx, "missing"))

	p, err := f.games.AddPlayer(ctx, "missing", model.Player{Name: "Casey"})
	require.NoError(t, err)
	assert.Empty(t, p.ID)

	shot, err := f.shots.RecordShot(ctx, "missing", ledger.ShotInput{PlayerID: "p1", X: 250, Y: 100, ShotType: model.TwoPoint, Quarter: 1})
	require.NoError(t, err)
	assert.Empty(t, shot.ID)

	// input that would be rejected on a real game is still a no-op on a missing one
	require.NoError(t, f.games.RecordStat(ctx, "missing", "p1", model.StatKey("PTS")))
	require.NoError(t, f.games.UpdateScore(ctx, "missing", model.Score{Team: -1, Opponent: -1}))
	require.NoError(t, f.games.UpdateQuarter(ctx, "missing", 0))
	require.NoError(t, f.games.UpdateTime(ctx, "missing", "soon"))
	_, err = f.games.AddPlayer(ctx, "missing", model.Player{})
	require.NoError(t, err)
	_, err = f.shots.RecordShot(ctx, "missing", ledger.ShotInput{Quarter: 0})
	require.NoError(t, err)
	_, err = f.shots.RecordShot(ctx, "missing", ledger.ShotInput{PlayerID: "p1", X: math.NaN(), ShotType: model.ShotType(9)})
	require.NoError(t, err)

	assert.Empty(t, f.metrics.stats)
	assert.Empty(t, f.metrics.shots)
	assert.Zero(t, f.metrics.completed)
}

func TestGameService_RecordStat(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	g := f.createGame(t, "Hawks", 5)

	require.NoError(t, f.games.RecordStat(ctx, g.ID, "p1", model.StatAssist))
	require.NoError(t, f.games.RecordStat(ctx, g.ID, "p1", model.StatAssist))
	require.NoError(t, f.games.RecordStat(ctx, g.ID, "p2", model.StatRebDef))

	err := f.games.RecordStat(ctx, g.ID, "ghost", model.StatAssist)
	require.ErrorIs(t, err, service.ErrPlayerNotFound)

	err = f.games.RecordStat(ctx, g.ID, "p1", model.StatKey("dunks"))
	require.ErrorIs(t, err, service.ErrInvalidInput)

	got, err := f.games.GetGame(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.PlayerStats["p1"].Assists)
	assert.Equal(t, 1, got.PlayerStats["p2"].RebDef)
	assert.Equal(t, 2, f.metrics.stats[model.StatAssist])
}

func TestGameService_AddPlayerAndToggle(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	g := f.createGame(t, "Hawks", 5)

	p, err := f.games.AddPlayer(ctx, g.ID, model.Player{Name: "Casey", Number: 7})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)

	_, err = f.games.AddPlayer(ctx, g.ID, model.Player{ID: "p1", Name: "Dup"})
	require.ErrorIs(t, err, service.ErrInvalidInput)
	assert.True(t, hasField(err, "id"))

	_, err = f.games.AddPlayer(ctx, g.ID, model.Player{})
	require.ErrorIs(t, err, service.ErrInvalidInput)

	require.NoError(t, f.games.ToggleActive(ctx, g.ID, p.ID))
	require.ErrorIs(t, f.games.ToggleActive(ctx, g.ID, "ghost"), service.ErrPlayerNotFound)

	got, err := f.games.GetGame(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, got.Players, 3)
	assert.True(t, got.Players[2].IsActive)
	assert.Contains(t, got.PlayerStats, p.ID)
}

func TestGameService_ScoreboardUpdates(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	g := f.createGame(t, "Hawks", 5)

	require.NoError(t, f.games.UpdateScore(ctx, g.ID, model.Score{Team: 54, Opponent: 50}))
	require.NoError(t, f.games.UpdateQuarter(ctx, g.ID, 5))
	require.NoError(t, f.games.UpdateTime(ctx, g.ID, "4:59"))

	require.ErrorIs(t, f.games.UpdateScore(ctx, g.ID, model.Score{Team: -1}), service.ErrInvalidInput)
	require.ErrorIs(t, f.games.UpdateQuarter(ctx, g.ID, 0), service.ErrInvalidInput)
	require.ErrorIs(t, f.games.UpdateTime(ctx, g.ID, "4:75"), service.ErrInvalidInput)
	require.ErrorIs(t, f.games.UpdateTime(ctx, g.ID, "soon"), service.ErrInvalidInput)
	require.NoError(t, f.games.UpdateQuarter(ctx, g.ID, 11))
	require.NoError(t, f.games.UpdateQuarter(ctx, g.ID, 5))

	got, err := f.games.GetGame(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Score{Team: 54, Opponent: 50}, got.Score)
	assert.Equal(t, 5, got.Quarter)
	assert.Equal(t, "4:59", got.TimeRemaining)
}

func TestGameService_CompleteGameIsOneWay(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	g := f.createGame(t, "Hawks", 5)

	require.NoError(t, f.games.CompleteGame(ctx, g.ID))
	require.NoError(t, f.games.CompleteGame(ctx, g.ID))

	got, err := f.games.GetGame(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, got.Status)
	assert.Equal(t, 1, f.metrics.completed)
}

func TestShotService_RecordShot(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	g := f.createGame(t, "Hawks", 5)

	shot, err := f.shots.RecordShot(ctx, g.ID, ledger.ShotInput{
		PlayerID: "p1", X: 250, Y: 100, Made: true, ShotType: model.TwoPoint, Quarter: 2,
		Defender: &ledger.DefenderInput{ID: "p2", Position: &model.Point{X: 250, Y: 104}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, shot.ID)
	assert.Equal(t, g.ID, shot.GameID)
	assert.Equal(t, fixedNow, shot.Timestamp)
	assert.Equal(t, model.Paint, shot.Position.Zone)
	require.NotNil(t, shot.Defender)
	assert.Equal(t, model.HeavyContest, shot.Defender.ContestLevel)
	assert.Equal(t, "Blake", shot.Defender.Name)

	got, err := f.games.GetGame(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.PlayerStats["p1"].TwoMade)
	assert.Equal(t, 2, got.PlayerStats["p1"].Points())
	assert.Equal(t, 1, f.metrics.shots[model.TwoPoint])
}

func TestShotService_RecordShot_DerivesTypeAndPinsFreeThrows(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	g := f.createGame(t, "Hawks", 5)

	three, err := f.shots.RecordShot(ctx, g.ID, ledger.ShotInput{PlayerID: "p1", X: 250, Y: 400, Quarter: 1})
	require.NoError(t, err)
	assert.Equal(t, model.ThreePoint, three.ShotType)

	ft, err := f.shots.RecordShot(ctx, g.ID, ledger.ShotInput{PlayerID: "p1", X: 10, Y: 10, Made: true, ShotType: model.FreeThrow, Quarter: 1})
	require.NoError(t, err)
	assert.Equal(t, 250.0, ft.X)
	assert.Equal(t, 190.0, ft.Y)

	got, err := f.games.GetGame(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.PlayerStats["p1"].ThreeMiss)
	assert.Equal(t, 1, got.PlayerStats["p1"].FTMade)
}

func TestShotService_RecordShot_Rejects(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	g := f.createGame(t, "Hawks", 5)

	cases := []struct {
		name  string
		in    ledger.ShotInput
		want  error
		field string
	}{
		{"no player", ledger.ShotInput{X: 1, Y: 1, ShotType: model.TwoPoint, Quarter: 1}, service.ErrPlayerNotFound, ""},
		{"bad type", ledger.ShotInput{PlayerID: "p1", ShotType: model.ShotType(9), Quarter: 1}, service.ErrInvalidInput, "shot_type"},
		{"non-finite x", ledger.ShotInput{PlayerID: "p1", X: math.NaN(), Y: 1, ShotType: model.TwoPoint, Quarter: 1}, service.ErrInvalidInput, "x"},
		{"infinite defender y", ledger.ShotInput{PlayerID: "p1", X: 250, Y: 60, ShotType: model.TwoPoint, Quarter: 1, Defender: &ledger.DefenderInput{ID: "p2", Position: &model.Point{X: 250, Y: math.Inf(1)}}}, service.ErrInvalidInput, "defender.position.y"},
		{"unknown shooter", ledger.ShotInput{PlayerID: "ghost", ShotType: model.TwoPoint, Quarter: 1}, service.ErrPlayerNotFound, ""},
		{"unknown defender", ledger.ShotInput{PlayerID: "p1", ShotType: model.TwoPoint, Quarter: 1, Defender: &ledger.DefenderInput{ID: "ghost"}}, service.ErrPlayerNotFound, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.shots.RecordShot(ctx, g.ID, tc.in)
			require.ErrorIs(t, err, tc.want)
			if tc.field != "" {
				assert.True(t, hasField(err, tc.field), "expected field %s in %v", tc.field, service.FieldErrors(err))
			}
		})
	}

	got, err := f.games.GetGame(ctx, g.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Shots)
	assert.Equal(t, model.PlayerStats{}, got.PlayerStats["p1"])
}

func TestShotService_RecordShot_AcceptsUnusualInput(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	g := f.createGame(t, "Hawks", 5)
	require.NoError(t, f.games.UpdateQuarter(ctx, g.ID, 3))

	plain, err := f.shots.RecordShot(ctx, g.ID, ledger.ShotInput{PlayerID: "p1", X: 250, Y: 100, Made: true, ShotType: model.TwoPoint, Quarter: 1, ContestLevel: model.HeavyContest})
	require.NoError(t, err)
	assert.Nil(t, plain.Defender)

	overtime, err := f.shots.RecordShot(ctx, g.ID, ledger.ShotInput{PlayerID: "p1", X: 250, Y: 100, ShotType: model.TwoPoint, Quarter: 11})
	require.NoError(t, err)
	assert.Equal(t, 11, overtime.Quarter)

	self, err := f.shots.RecordShot(ctx, g.ID, ledger.ShotInput{PlayerID: "p1", X: 250, Y: 100, ShotType: model.TwoPoint, Quarter: 2, Defender: &ledger.DefenderInput{ID: "p1"}})
	require.NoError(t, err)
	require.NotNil(t, self.Defender)
	assert.Equal(t, "p1", self.Defender.ID)

	noQuarter, err := f.shots.RecordShot(ctx, g.ID, ledger.ShotInput{PlayerID: "p1", X: 250, Y: 100, ShotType: model.TwoPoint})
	require.NoError(t, err)
	assert.Equal(t, 3, noQuarter.Quarter)

	got, err := f.games.GetGame(ctx, g.ID)
	require.NoError(t, err)
	assert.Len(t, got.Shots, 4)
	assert.Equal(t, 1, got.PlayerStats["p1"].TwoMade)
	assert.Equal(t, 3, got.PlayerStats["p1"].TwoMiss)
}

func TestShotService_Queries(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	g := f.createGame(t, "Hawks", 5)
	for _, p := range []string{"p1", "p2", "p1"} {
		_, err := f.shots.RecordShot(ctx, g.ID, ledger.ShotInput{PlayerID: p, X: 250, Y: 60, ShotType: model.TwoPoint, Quarter: 1})
		require.NoError(t, err)
	}

	all, err := f.shots.GetShotsByGame(ctx, g.ID)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := f.shots.GetShotsByPlayer(ctx, g.ID, "p1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	none, err := f.shots.GetShotsByGame(ctx, "missing")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestAnalyticsService(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	g := f.createGame(t, "Hawks", 5)
	inputs := []ledger.ShotInput{
		{PlayerID: "p1", X: 250, Y: 60, Made: true, ShotType: model.TwoPoint, Quarter: 1,
			Defender: &ledger.DefenderInput{ID: "p2"}, ContestLevel: model.LightContest},
		{PlayerID: "p1", X: 250, Y: 60, ShotType: model.TwoPoint, Quarter: 2,
			Defender: &ledger.DefenderInput{ID: "p2"}, ContestLevel: model.Blocked},
		{PlayerID: "p1", X: 250, Y: 400, Made: true, ShotType: model.ThreePoint, Quarter: 2},
	}
	for _, in := range inputs {
		_, err := f.shots.RecordShot(ctx, g.ID, in)
		require.NoError(t, err)
	}

	eff, err := f.analytics.ShotEfficiency(ctx, g.ID, analytics.ShotFilter{PlayerID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, 3, eff.Total)
	assert.Equal(t, 2, eff.Made)

	zones, err := f.analytics.ZoneEfficiency(ctx, g.ID, analytics.ShotFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, zones[model.Paint].Total)
	assert.Equal(t, 1, zones[model.AboveBreak3].Made)

	quarters, err := f.analytics.QuarterBreakdown(ctx, g.ID, analytics.ShotFilter{})
	require.NoError(t, err)
	require.Len(t, quarters, 2)
	assert.Equal(t, 2, quarters[1].Quarter)

	impact, err := f.analytics.DefenderImpact(ctx, g.ID, "p2")
	require.NoError(t, err)
	assert.Equal(t, "Blake", impact.DefenderName)
	assert.Equal(t, 2, impact.TotalContests)
	assert.Equal(t, 1, impact.SuccessfulContests)

	team, err := f.analytics.TeamDefensiveImpact(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, team.TotalContests)
	assert.Equal(t, 1, team.SuccessfulContests)

	matchup, err := f.analytics.PlayerMatchupStats(ctx, g.ID, "p1", "p2")
	require.NoError(t, err)
	assert.Equal(t, 2, matchup.TotalShots)
	assert.Equal(t, 1, matchup.MadeShots)

	zd, err := f.analytics.ZoneDefensiveEfficiency(ctx, g.ID, model.Paint)
	require.NoError(t, err)
	assert.Equal(t, 2, zd.Contested)
	assert.Zero(t, zd.Uncontested)

	_, err = f.analytics.ZoneDefensiveEfficiency(ctx, g.ID, model.ZoneUnknown)
	require.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestAnalyticsService_UnknownGameIsZero(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	eff, err := f.analytics.ShotEfficiency(ctx, "missing", analytics.ShotFilter{})
	require.NoError(t, err)
	assert.Equal(t, model.ShotEfficiency{}, eff)

	impact, err := f.analytics.DefenderImpact(ctx, "missing", "p2")
	require.NoError(t, err)
	assert.Equal(t, "Unknown", impact.DefenderName)

	team, err := f.analytics.TeamDefensiveImpact(ctx, "missing")
	require.NoError(t, err)
	assert.Zero(t, team.TotalContests)

	zones, err := f.analytics.ZoneEfficiency(ctx, "missing", analytics.ShotFilter{})
	require.NoError(t, err)
	require.NotNil(t, zones)
	assert.Empty(t, zones)

	quarters, err := f.analytics.QuarterBreakdown(ctx, "missing", analytics.ShotFilter{})
	require.NoError(t, err)
	require.NotNil(t, quarters)
	assert.Empty(t, quarters)
}

func TestReportService(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	older := f.createGame(t, "Hawks", 1)
	newer := f.createGame(t, "Hawks", 8)
	other := f.createGame(t, "Owls", 3)

	require.NoError(t, f.games.RecordStat(ctx, older.ID, "p1", model.StatAssist))
	require.NoError(t, f.games.UpdateScore(ctx, older.ID, model.Score{Team: 80, Opponent: 70}))
	_, err := f.shots.RecordShot(ctx, newer.ID, ledger.ShotInput{PlayerID: "p1", X: 250, Y: 60, Made: true, ShotType: model.TwoPoint, Quarter: 1})
	require.NoError(t, err)
	require.NoError(t, f.games.UpdateScore(ctx, newer.ID, model.Score{Team: 60, Opponent: 60}))
	_, err = f.shots.RecordShot(ctx, other.ID, ledger.ShotInput{PlayerID: "p2", X: 250, Y: 60, Made: true, ShotType: model.TwoPoint, Quarter: 1})
	require.NoError(t, err)

	pr, err := f.reports.PlayerReport(ctx, "p1", service.ReportQuery{Team: "hawks"})
	require.NoError(t, err)
	assert.Equal(t, 2, pr.GamesPlayed)
	assert.Equal(t, 2, pr.Totals.PTS)
	assert.Equal(t, 1, pr.Totals.AST)

	last, err := f.reports.PlayerReport(ctx, "p1", service.ReportQuery{Team: "Hawks", Range: model.RangeLast5})
	require.NoError(t, err)
	assert.Equal(t, 2, last.GamesPlayed)

	tr, err := f.reports.TeamReport(ctx, service.ReportQuery{Team: "Hawks"})
	require.NoError(t, err)
	assert.Equal(t, 2, tr.GamesPlayed)
	assert.Equal(t, 1, tr.Wins)
	assert.Equal(t, 1, tr.Losses)

	latest, err := f.reports.TeamReport(ctx, service.ReportQuery{})
	require.NoError(t, err)
	assert.Equal(t, "Hawks", latest.Team)

	board, err := f.reports.Leaderboard(ctx, service.ReportQuery{GameID: other.ID}, "")
	require.NoError(t, err)
	require.NotEmpty(t, board)
	assert.Equal(t, "p2", board[0].Player.ID)

	_, err = f.reports.Leaderboard(ctx, service.ReportQuery{}, "style")
	require.ErrorIs(t, err, service.ErrInvalidInput)
	_, err = f.reports.TeamReport(ctx, service.ReportQuery{Range: "last3"})
	require.ErrorIs(t, err, service.ErrInvalidInput)
	_, err = f.reports.PlayerReport(ctx, " ", service.ReportQuery{})
	require.ErrorIs(t, err, service.ErrInvalidInput)
}
