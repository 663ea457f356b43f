package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/courtside-stats/internal/model"
	"github.com/maxviazov/courtside-stats/internal/repository"
)

const gameColumns = `id, name, team, opponent, date, players, player_stats, score_team, score_opponent,
	quarter, time_remaining, status, created_at, updated_at`

const shotColumns = `game_id, id, player_id, x, y, made, shot_type, quarter, ts, zone, distance, defender`

type gameRepository struct {
	pool *pgxpool.Pool
	tx   repository.TxManager
}

// NewGameRepository stores game rows in games and the shot log in game_shots.
func NewGameRepository(pool *pgxpool.Pool, tx repository.TxManager) repository.GameRepository {
	return &gameRepository{pool: pool, tx: tx}
}

func (r *gameRepository) Create(ctx context.Context, g model.Game) (model.Game, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Game{}, err
	}
	out := normalize(g.Clone())
	// A zero CreatedAt lets the database stamp the row; otherwise the caller's value is kept.
	var createdAt *time.Time
	if !out.CreatedAt.IsZero() {
		at := out.CreatedAt
		createdAt = &at
	}
	err := r.tx.WithinTx(ctx, func(ctx context.Context) error {
		exec := getQ(ctx, r.pool)
		row := exec.QueryRow(ctx,
			`INSERT INTO games (id, name, team, opponent, date, players, player_stats, score_team, score_opponent,
			                    quarter, time_remaining, status, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, COALESCE($13::timestamptz, now()))
			 RETURNING created_at, updated_at`,
			out.ID, out.Name, out.Team, out.Opponent, out.Date, out.Players, out.PlayerStats,
			out.Score.Team, out.Score.Opponent, out.Quarter, out.TimeRemaining, string(out.Status), createdAt,
		)
		if err := row.Scan(&out.CreatedAt, &out.UpdatedAt); err != nil {
			return err
		}
		return insertShots(ctx, exec, out.ID, 0, out.Shots)
	})
	if err != nil {
		return model.Game{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *gameRepository) GetByID(ctx context.Context, id string) (model.Game, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Game{}, err
	}
	return r.get(ctx, getQ(ctx, r.pool), id, false)
}

func (r *gameRepository) get(ctx context.Context, exec querier, id string, forUpdate bool) (model.Game, error) {
	sql := `SELECT ` + gameColumns + ` FROM games WHERE id = $1`
	if forUpdate {
		sql += ` FOR UPDATE`
	}
	g, err := scanGame(exec.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Game{}, repository.ErrNotFound
		}
		return model.Game{}, repository.MapPgError(err)
	}
	shots, err := loadShots(ctx, exec, []string{id})
	if err != nil {
		return model.Game{}, err
	}
	g.Shots = shots[id]
	return normalize(g), nil
}

func (r *gameRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Game], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Game]{}, err
	}
	p = p.Normalize()
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT `+gameColumns+`, COUNT(*) OVER() AS total
		 FROM games
		 ORDER BY date DESC, seq
		 LIMIT $1 OFFSET $2`,
		p.Limit, p.Offset,
	)
	if err != nil {
		return repository.PageResult[model.Game]{}, repository.MapPgError(err)
	}
	res := repository.PageResult[model.Game]{Items: make([]model.Game, 0, p.Limit)}
	for rows.Next() {
		var total int
		g, err := scanGame(rows, &total)
		if err != nil {
			rows.Close()
			return repository.PageResult[model.Game]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, g)
		res.Total = total
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return repository.PageResult[model.Game]{}, repository.MapPgError(err)
	}
	if len(res.Items) == 0 {
		// the window is past the end, so COUNT(*) OVER() had no row to ride on
		if err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM games`).Scan(&res.Total); err != nil {
			return repository.PageResult[model.Game]{}, repository.MapPgError(err)
		}
	}
	if err := attachShots(ctx, exec, res.Items); err != nil {
		return repository.PageResult[model.Game]{}, err
	}
	return res, nil
}

func (r *gameRepository) All(ctx context.Context) ([]model.Game, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx, `SELECT `+gameColumns+` FROM games ORDER BY seq`)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	games := make([]model.Game, 0)
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			rows.Close()
			return nil, repository.MapPgError(err)
		}
		games = append(games, g)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	if err := attachShots(ctx, exec, games); err != nil {
		return nil, err
	}
	return games, nil
}

// Update locks the game row, applies fn and writes back the row plus only the shots fn appended.
func (r *gameRepository) Update(ctx context.Context, id string, fn repository.MutateFunc) (model.Game, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Game{}, err
	}
	var out model.Game
	err := r.tx.WithinTx(ctx, func(ctx context.Context) error {
		exec := getQ(ctx, r.pool)
		current, err := r.get(ctx, exec, id, true)
		if err != nil {
			return err
		}
		next := current.Clone()
		if err := fn(&next); err != nil {
			return err
		}
		logged := len(current.Shots)
		if err := repository.CheckAppendOnly(logged, len(next.Shots)); err != nil {
			return err
		}
		next = normalize(next)
		next.ID = id

		row := exec.QueryRow(ctx,
			`UPDATE games SET name = $2, team = $3, opponent = $4, date = $5, players = $6, player_stats = $7,
			        score_team = $8, score_opponent = $9, quarter = $10, time_remaining = $11, status = $12,
			        updated_at = now()
			 WHERE id = $1
			 RETURNING updated_at`,
			id, next.Name, next.Team, next.Opponent, next.Date, next.Players, next.PlayerStats,
			next.Score.Team, next.Score.Opponent, next.Quarter, next.TimeRemaining, string(next.Status),
		)
		if err := row.Scan(&next.UpdatedAt); err != nil {
			return err
		}
		if err := insertShots(ctx, exec, id, logged, next.Shots[logged:]); err != nil {
			return err
		}
		out = next
		return nil
	})
	if err != nil {
		return model.Game{}, err
	}
	return out, nil
}

func (r *gameRepository) Delete(ctx context.Context, id string) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	tag, err := getQ(ctx, r.pool).Exec(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// normalize swaps nil collections for empty ones so JSONB columns never hold null.
func normalize(g model.Game) model.Game {
	if g.Players == nil {
		g.Players = []model.Player{}
	}
	if g.PlayerStats == nil {
		g.PlayerStats = map[string]model.PlayerStats{}
	}
	if g.Shots == nil {
		g.Shots = []model.Shot{}
	}
	return g
}

func scanGame(row pgx.Row, extra ...any) (model.Game, error) {
	var (
		g      model.Game
		status string
	)
	dest := []any{
		&g.ID, &g.Name, &g.Team, &g.Opponent, &g.Date, &g.Players, &g.PlayerStats,
		&g.Score.Team, &g.Score.Opponent, &g.Quarter, &g.TimeRemaining, &status, &g.CreatedAt, &g.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return model.Game{}, err
	}
	g.Status = model.GameStatus(status)
	return g, nil
}

func attachShots(ctx context.Context, exec querier, games []model.Game) error {
	if len(games) == 0 {
		return nil
	}
	ids := make([]string, len(games))
	for i := range games {
		ids[i] = games[i].ID
	}
	shots, err := loadShots(ctx, exec, ids)
	if err != nil {
		return err
	}
	for i := range games {
		games[i].Shots = shots[games[i].ID]
		games[i] = normalize(games[i])
	}
	return nil
}

// loadShots reads the shot logs of ids in log order.
func loadShots(ctx context.Context, exec querier, ids []string) (map[string][]model.Shot, error) {
	rows, err := exec.Query(ctx,
		`SELECT `+shotColumns+` FROM game_shots WHERE game_id = ANY($1) ORDER BY game_id, seq`, ids)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	out := make(map[string][]model.Shot, len(ids))
	for rows.Next() {
		var (
			s              model.Shot
			shotType, zone string
			ts             time.Time
		)
		if err := rows.Scan(&s.GameID, &s.ID, &s.PlayerID, &s.X, &s.Y, &s.Made, &shotType, &s.Quarter, &ts,
			&zone, &s.Position.Distance, &s.Defender); err != nil {
			return nil, repository.MapPgError(err)
		}
		if err := s.ShotType.UnmarshalText([]byte(shotType)); err != nil {
			return nil, fmt.Errorf("shot %s: %w", s.ID, err)
		}
		if err := s.Position.Zone.UnmarshalText([]byte(zone)); err != nil {
			return nil, fmt.Errorf("shot %s: %w", s.ID, err)
		}
		s.Timestamp = ts.UTC()
		out[s.GameID] = append(out[s.GameID], s)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return out, nil
}

// insertShots appends shots to the log of gameID, numbering them from first.
func insertShots(ctx context.Context, exec querier, gameID string, first int, shots []model.Shot) error {
	if len(shots) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i, s := range shots {
		batch.Queue(
			`INSERT INTO game_shots (`+shotColumns+`, seq)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			gameID, s.ID, s.PlayerID, s.X, s.Y, s.Made, s.ShotType.String(), s.Quarter, s.Timestamp,
			s.Position.Zone.String(), s.Position.Distance, s.Defender, first+i,
		)
	}
	br := exec.SendBatch(ctx, batch)
	for range shots {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return repository.MapPgError(err)
		}
	}
	return br.Close()
}

var _ repository.GameRepository = (*gameRepository)(nil)
