// Package contract holds behaviour suites every storage driver must pass. Driver tests supply
// factories; the suites never know which backend they run against.
package contract

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/maxviazov/courtside-stats/internal/ledger"
	"github.com/maxviazov/courtside-stats/internal/model"
	"github.com/maxviazov/courtside-stats/internal/repository"
)

type GameFactory func(t *testing.T) (repo repository.GameRepository, cleanup func())

type TxFactory func(t *testing.T) (tx repository.TxManager, games repository.GameRepository, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

var seedDate = time.Date(2025, 2, 1, 18, 0, 0, 0, time.UTC)

func seedGame(id string, day int) model.Game {
	return ledger.NewGame(id, "Game "+id, "Hawks", "Owls", seedDate.AddDate(0, 0, day), []model.Player{
		{ID: "p1", Name: "Avery", Number: 3, Position: "PG", IsActive: true},
		{ID: "p2", Name: "Blake", Number: 12, Position: "C"},
	})
}

func RunGameRepositoryContract(t *testing.T, makeRepo GameFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, seedGame("g1", 0))
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if created.CreatedAt.IsZero() {
			t.Fatalf("created_at not set")
		}
		got, err := repo.GetByID(ctx, "g1")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.Name != "Game g1" || got.Team != "Hawks" || got.Opponent != "Owls" || !got.Date.Equal(seedDate) {
			t.Fatalf("mismatch: %+v", got)
		}
		if len(got.Players) != 2 || got.Players[0].Name != "Avery" || !got.Players[0].IsActive {
			t.Fatalf("roster mismatch: %+v", got.Players)
		}
		if len(got.PlayerStats) != 2 || got.Status != model.StatusInProgress || got.Quarter != 1 {
			t.Fatalf("state mismatch: %+v", got)
		}
		if got.Shots == nil || len(got.Shots) != 0 {
			t.Fatalf("expected empty shot log, got %v", got.Shots)
		}
	})

	t.Run("create_keeps_caller_created_at", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		stamped := time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)
		g := seedGame("g1", 0)
		g.CreatedAt = stamped
		created, err := repo.Create(ctx, g)
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if !created.CreatedAt.Equal(stamped) {
			t.Fatalf("created_at = %v, want %v", created.CreatedAt, stamped)
		}
		got, err := repo.GetByID(ctx, "g1")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if !got.CreatedAt.Equal(stamped) {
			t.Fatalf("stored created_at = %v, want %v", got.CreatedAt, stamped)
		}
	})

	t.Run("create_duplicate_conflict", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.Create(ctx, seedGame("g1", 0)); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if _, err := repo.Create(ctx, seedGame("g1", 1)); !errors.Is(err, repository.ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("update_appends_shots_and_counters", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.Create(ctx, seedGame("g1", 0)); err != nil {
			t.Fatalf("seed: %v", err)
		}
		shotAt := seedDate.Add(5 * time.Minute)
		for i, in := range []ledger.ShotInput{
			{PlayerID: "p1", X: 250, Y: 100, Made: true, ShotType: model.TwoPoint, Quarter: 1},
			{PlayerID: "p1", X: 30, Y: 440, ShotType: model.ThreePoint, Quarter: 2,
				Defender: &ledger.DefenderInput{ID: "p2", Position: &model.Point{X: 40, Y: 440}}},
		} {
			in := in
			id := fmt.Sprintf("s%d", i+1)
			if _, err := repo.Update(ctx, "g1", func(g *model.Game) error {
				_, err := ledger.RecordShot(g, in, id, shotAt)
				return err
			}); err != nil {
				t.Fatalf("update %d: %v", i, err)
			}
		}

		got, err := repo.GetByID(ctx, "g1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if len(got.Shots) != 2 || got.Shots[0].ID != "s1" || got.Shots[1].ID != "s2" {
			t.Fatalf("shot log mismatch: %+v", got.Shots)
		}
		first, second := got.Shots[0], got.Shots[1]
		if first.Position.Zone != model.Paint || first.Defender != nil || !first.Timestamp.Equal(shotAt) {
			t.Fatalf("first shot mismatch: %+v", first)
		}
		if second.Position.Zone != model.LeftCorner3 || second.ShotType != model.ThreePoint {
			t.Fatalf("second shot mismatch: %+v", second)
		}
		d := second.Defender
		if d == nil || d.ID != "p2" || d.Name != "Blake" || d.ContestLevel != model.HeavyContest || d.Distance != 10 {
			t.Fatalf("defender mismatch: %+v", d)
		}
		if d.Position == nil || *d.Position != (model.Point{X: 40, Y: 440}) {
			t.Fatalf("defender position mismatch: %+v", d.Position)
		}
		if s := got.PlayerStats["p1"]; s.TwoMade != 1 || s.ThreeMiss != 1 || s.Points() != 2 {
			t.Fatalf("stats mismatch: %+v", s)
		}
	})

	t.Run("update_error_discards_changes", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.Create(ctx, seedGame("g1", 0)); err != nil {
			t.Fatalf("seed: %v", err)
		}
		boom := errors.New("boom")
		_, err := repo.Update(ctx, "g1", func(g *model.Game) error {
			g.Score = model.Score{Team: 99, Opponent: 1}
			if _, err := ledger.RecordStat(g, "p1", model.StatAssist); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected fn error, got %v", err)
		}
		got, err := repo.GetByID(ctx, "g1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Score != (model.Score{}) || got.PlayerStats["p1"].Assists != 0 {
			t.Fatalf("changes leaked: %+v", got)
		}
	})

	t.Run("update_rejects_shot_rewrite", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.Create(ctx, seedGame("g1", 0)); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if _, err := repo.Update(ctx, "g1", func(g *model.Game) error {
			_, err := ledger.RecordShot(g, ledger.ShotInput{PlayerID: "p2", X: 250, Y: 190, Made: true, ShotType: model.FreeThrow}, "s1", seedDate)
			return err
		}); err != nil {
			t.Fatalf("record: %v", err)
		}
		_, err := repo.Update(ctx, "g1", func(g *model.Game) error {
			g.Shots = g.Shots[:0]
			return nil
		})
		if !errors.Is(err, repository.ErrShotLogRewritten) {
			t.Fatalf("expected ErrShotLogRewritten, got %v", err)
		}
	})

	t.Run("update_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.Update(context.Background(), "missing", func(*model.Game) error { return nil })
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list_pagination_total", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for i := 0; i < 7; i++ {
			if _, err := repo.Create(ctx, seedGame(fmt.Sprintf("g%d", i), i)); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		res, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 0})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 3 || res.Total != 7 {
			t.Fatalf("unexpected page: len=%d total=%d", len(res.Items), res.Total)
		}
		if res.Items[0].ID != "g6" || res.Items[2].ID != "g4" {
			t.Fatalf("expected newest first, got %s..%s", res.Items[0].ID, res.Items[2].ID)
		}
		res2, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 6})
		if err != nil {
			t.Fatalf("list2: %v", err)
		}
		if len(res2.Items) != 1 || res2.Total != 7 || res2.Items[0].ID != "g0" {
			t.Fatalf("unexpected last page: len=%d total=%d", len(res2.Items), res2.Total)
		}
		res3, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 30})
		if err != nil {
			t.Fatalf("list3: %v", err)
		}
		if len(res3.Items) != 0 || res3.Total != 7 {
			t.Fatalf("unexpected past-the-end page: len=%d total=%d", len(res3.Items), res3.Total)
		}
	})

	t.Run("all_in_insertion_order", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for _, id := range []string{"late", "early", "middle"} {
			day := map[string]int{"late": 9, "early": 1, "middle": 5}[id]
			if _, err := repo.Create(ctx, seedGame(id, day)); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		all, err := repo.All(ctx)
		if err != nil {
			t.Fatalf("all: %v", err)
		}
		if len(all) != 3 || all[0].ID != "late" || all[1].ID != "early" || all[2].ID != "middle" {
			t.Fatalf("unexpected order: %+v", all)
		}
	})

	t.Run("delete", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.Create(ctx, seedGame("g1", 0)); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if err := repo.Delete(ctx, "g1"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := repo.GetByID(ctx, "g1"); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after delete, got %v", err)
		}
		if err := repo.Delete(ctx, "g1"); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound on second delete, got %v", err)
		}
	})

	t.Run("returned_games_are_copies", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, seedGame("g1", 0))
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		created.Players[0].Name = "Mutated"
		created.PlayerStats["p1"] = model.PlayerStats{Steals: 7}
		got, err := repo.GetByID(ctx, "g1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Players[0].Name != "Avery" || got.PlayerStats["p1"].Steals != 0 {
			t.Fatalf("stored game was mutated through a returned copy: %+v", got)
		}
	})
}

func RunTxManagerContract(t *testing.T, makeTx TxFactory) {
	t.Helper()

	t.Run("commit_on_nil_error", func(t *testing.T) {
		tx, games, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			_, err := games.Create(ctx, seedGame("tx-ok", 0))
			return err
		})
		if err != nil {
			t.Fatalf("tx failed: %v", err)
		}
		if _, err := games.GetByID(ctx, "tx-ok"); err != nil {
			t.Fatalf("expected committed game, got %v", err)
		}
	})

	t.Run("rollback_on_error", func(t *testing.T) {
		tx, games, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		rollback := errors.New("rollback please")
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			if _, err := games.Create(ctx, seedGame("tx-rb", 0)); err != nil {
				return err
			}
			return rollback
		})
		if !errors.Is(err, rollback) {
			t.Fatalf("expected rollback error, got %v", err)
		}
		if _, err := games.GetByID(ctx, "tx-rb"); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected rolled back game to be absent, got %v", err)
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()

	t.Run("ping_ok", func(t *testing.T) {
		p, cleanup := makePinger(t)
		t.Cleanup(cleanup)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			t.Fatalf("ping failed: %v", err)
		}
	})
}
