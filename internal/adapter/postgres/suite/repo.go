// Package suite implements the test-suite repository using PostgreSQL.
// Every read and write is scoped by owner_id: a suite that exists but
// belongs to another user is reported as domain.ErrNotFound.
package suite

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

const table = "test_suites"

var columns = []string{"id", "name", "description", "owner_id", "created_at", "updated_at"}

// Repo provides test-suite persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new suite repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// suiteRow mirrors the test_suites table for scany.
type suiteRow struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	OwnerID     int64     `db:"owner_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r suiteRow) toDomain() domain.Suite {
	return domain.Suite{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		OwnerID:     r.OwnerID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Create inserts a new suite owned by ownerID. created_at and updated_at
// are assigned by the database in the same statement and are equal.
func (r *Repo) Create(ctx context.Context, ownerID int64, s *domain.Suite) (*domain.Suite, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("name", "description", "owner_id").
		Values(s.Name, s.Description, ownerID).
		Suffix("RETURNING " + joined()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row suiteRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "test_suite", 0)
	}

	created := row.toDomain()
	return &created, nil
}

// GetByID returns a suite by primary key, filtered by owner.
// Returns domain.ErrNotFound if the suite does not exist or belongs to
// another user — the two cases are indistinguishable to the caller.
func (r *Repo) GetByID(ctx context.Context, ownerID, suiteID int64) (*domain.Suite, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": suiteID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row suiteRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "test_suite", suiteID)
	}

	s := row.toDomain()
	return &s, nil
}

// List returns the owner's suites in creation order (ascending id).
// Returns an empty slice (not nil) when the user has no suites.
func (r *Repo) List(ctx context.Context, ownerID int64, skip, limit int) ([]domain.Suite, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("id ASC").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []suiteRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list suites: %w", err)
	}

	suites := make([]domain.Suite, len(rows))
	for i, row := range rows {
		suites[i] = row.toDomain()
	}

	return suites, nil
}

// Update applies a partial update to an owned suite. Only fields present
// in params are written; updated_at is always refreshed.
func (r *Repo) Update(ctx context.Context, ownerID, suiteID int64, params domain.SuiteUpdateParams) (*domain.Suite, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": suiteID, "owner_id": ownerID}).
		Suffix("RETURNING " + joined())

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Description != nil {
		update = update.Set("description", *params.Description)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row suiteRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "test_suite", suiteID)
	}

	updated := row.toDomain()
	return &updated, nil
}

// Delete removes an owned suite and returns its prior state, or
// domain.ErrNotFound if absent or not owned. Cases in the suite and their
// results are cascade-deleted; runs referencing the suite get suite_id
// nulled — all by schema rules within the statement's transaction.
func (r *Repo) Delete(ctx context.Context, ownerID, suiteID int64) (*domain.Suite, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": suiteID, "owner_id": ownerID}).
		Suffix("RETURNING " + joined()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row suiteRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "test_suite", suiteID)
	}

	deleted := row.toDomain()
	return &deleted, nil
}

func joined() string {
	return strings.Join(columns, ", ")
}
