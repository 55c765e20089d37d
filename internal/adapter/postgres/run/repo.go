// Package run implements the test-run repository using PostgreSQL.
// Runs are deliberately not owner-scoped; any authenticated user may read
// and write any run.
package run

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

const table = "test_runs"

var columns = []string{"id", "name", "status", "suite_id", "started_at", "completed_at", "created_at"}

// Repo provides test-run persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new run repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// runRow mirrors the test_runs table for scany.
type runRow struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Status      string     `db:"status"`
	SuiteID     *int64     `db:"suite_id"`
	StartedAt   *time.Time `db:"started_at"`
	CompletedAt *time.Time `db:"completed_at"`
	CreatedAt   time.Time  `db:"created_at"`
}

func (r runRow) toDomain() domain.Run {
	return domain.Run{
		ID:          r.ID,
		Name:        r.Name,
		Status:      domain.RunStatus(r.Status),
		SuiteID:     r.SuiteID,
		StartedAt:   r.StartedAt,
		CompletedAt: r.CompletedAt,
		CreatedAt:   r.CreatedAt,
	}
}

// Create inserts a new run. SuiteID may be nil for an ad-hoc run; a
// reference to a missing suite surfaces as domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, run *domain.Run) (*domain.Run, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("name", "status", "suite_id").
		Values(run.Name, run.Status.String(), run.SuiteID).
		Suffix("RETURNING " + joined()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row runRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "test_run", 0)
	}

	created := row.toDomain()
	return &created, nil
}

// GetByID returns a run by primary key.
func (r *Repo) GetByID(ctx context.Context, runID int64) (*domain.Run, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": runID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row runRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "test_run", runID)
	}

	run := row.toDomain()
	return &run, nil
}

// List returns runs in creation order (ascending id).
func (r *Repo) List(ctx context.Context, skip, limit int) ([]domain.Run, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("id ASC").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []runRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	runs := make([]domain.Run, len(rows))
	for i, row := range rows {
		runs[i] = row.toDomain()
	}

	return runs, nil
}

// Update applies a partial update. Only fields present in params are
// written. Runs carry no updated_at column.
func (r *Repo) Update(ctx context.Context, runID int64, params domain.RunUpdateParams) (*domain.Run, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update(table).
		Where(squirrel.Eq{"id": runID}).
		Suffix("RETURNING " + joined())

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Status != nil {
		update = update.Set("status", params.Status.String())
	}
	if params.StartedAt != nil {
		update = update.Set("started_at", *params.StartedAt)
	}
	if params.CompletedAt != nil {
		update = update.Set("completed_at", *params.CompletedAt)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row runRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "test_run", runID)
	}

	updated := row.toDomain()
	return &updated, nil
}

// Delete removes a run and returns its prior state, or domain.ErrNotFound
// if absent. Results belonging to the run are cascade-deleted by the schema.
func (r *Repo) Delete(ctx context.Context, runID int64) (*domain.Run, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": runID}).
		Suffix("RETURNING " + joined()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row runRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "test_run", runID)
	}

	deleted := row.toDomain()
	return &deleted, nil
}

func joined() string {
	return strings.Join(columns, ", ")
}
