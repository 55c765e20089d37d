// Package result implements the test-result repository using PostgreSQL.
package result

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/qatrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/qatrack-backend/internal/domain"
)

const table = "test_results"

var columns = []string{"id", "run_id", "test_case_id", "status", "notes", "duration_ms", "executed_at"}

// Repo provides test-result persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new result repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// resultRow mirrors the test_results table for scany.
type resultRow struct {
	ID         int64     `db:"id"`
	RunID      int64     `db:"run_id"`
	CaseID     int64     `db:"test_case_id"`
	Status     string    `db:"status"`
	Notes      *string   `db:"notes"`
	DurationMS *int64    `db:"duration_ms"`
	ExecutedAt time.Time `db:"executed_at"`
}

func (r resultRow) toDomain() domain.Result {
	return domain.Result{
		ID:         r.ID,
		RunID:      r.RunID,
		CaseID:     r.CaseID,
		Status:     domain.ResultStatus(r.Status),
		Notes:      r.Notes,
		DurationMS: r.DurationMS,
		ExecutedAt: r.ExecutedAt,
	}
}

// Create inserts a new result. Both referenced rows must exist at creation
// time; a missing run or case surfaces as domain.ErrNotFound via the FK
// violation mapping. executed_at defaults to the insertion time.
func (r *Repo) Create(ctx context.Context, res *domain.Result) (*domain.Result, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("run_id", "test_case_id", "status", "notes", "duration_ms").
		Values(res.RunID, res.CaseID, res.Status.String(), res.Notes, res.DurationMS).
		Suffix("RETURNING " + joined()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row resultRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "test_result", 0)
	}

	created := row.toDomain()
	return &created, nil
}

// GetByID returns a result by primary key.
func (r *Repo) GetByID(ctx context.Context, resultID int64) (*domain.Result, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": resultID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row resultRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "test_result", resultID)
	}

	res := row.toDomain()
	return &res, nil
}

// ListByRun returns the run's results in creation order (ascending id).
func (r *Repo) ListByRun(ctx context.Context, runID int64, skip, limit int) ([]domain.Result, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"run_id": runID}).
		OrderBy("id ASC").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []resultRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	results := make([]domain.Result, len(rows))
	for i, row := range rows {
		results[i] = row.toDomain()
	}

	return results, nil
}

// Update applies a partial update. Only fields present in params are written.
func (r *Repo) Update(ctx context.Context, resultID int64, params domain.ResultUpdateParams) (*domain.Result, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update(table).
		Where(squirrel.Eq{"id": resultID}).
		Suffix("RETURNING " + joined())

	if params.Status != nil {
		update = update.Set("status", params.Status.String())
	}
	if params.Notes != nil {
		update = update.Set("notes", *params.Notes)
	}
	if params.DurationMS != nil {
		update = update.Set("duration_ms", *params.DurationMS)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row resultRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "test_result", resultID)
	}

	updated := row.toDomain()
	return &updated, nil
}

// Delete removes a result and returns its prior state, or
// domain.ErrNotFound if absent.
func (r *Repo) Delete(ctx context.Context, resultID int64) (*domain.Result, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": resultID}).
		Suffix("RETURNING " + joined()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row resultRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "test_result", resultID)
	}

	deleted := row.toDomain()
	return &deleted, nil
}

func joined() string {
	return strings.Join(columns, ", ")
}
