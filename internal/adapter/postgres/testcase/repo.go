// Package testcase implements the test-case repository using PostgreSQL.
// Rows are not owner-scoped here: ownership is derived transitively
// through the parent suite at the service layer on every operation.
package testcase

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

const table = "test_cases"

var columns = []string{
	"id", "title", "description", "steps", "expected_result",
	"priority", "severity", "status", "suite_id", "created_at", "updated_at",
}

// Repo provides test-case persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new test-case repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// caseRow mirrors the test_cases table for scany.
type caseRow struct {
	ID             int64     `db:"id"`
	Title          string    `db:"title"`
	Description    *string   `db:"description"`
	Steps          *string   `db:"steps"`
	ExpectedResult *string   `db:"expected_result"`
	Priority       string    `db:"priority"`
	Severity       string    `db:"severity"`
	Status         string    `db:"status"`
	SuiteID        int64     `db:"suite_id"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r caseRow) toDomain() domain.Case {
	return domain.Case{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		Steps:          r.Steps,
		ExpectedResult: r.ExpectedResult,
		Priority:       domain.Priority(r.Priority),
		Severity:       domain.Severity(r.Severity),
		Status:         domain.CaseStatus(r.Status),
		SuiteID:        r.SuiteID,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// Create inserts a new case into its suite. A vanished suite surfaces as
// domain.ErrNotFound via the FK violation mapping.
func (r *Repo) Create(ctx context.Context, c *domain.Case) (*domain.Case, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("title", "description", "steps", "expected_result", "priority", "severity", "status", "suite_id").
		Values(c.Title, c.Description, c.Steps, c.ExpectedResult,
			c.Priority.String(), c.Severity.String(), c.Status.String(), c.SuiteID).
		Suffix("RETURNING " + joined()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row caseRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "test_case", 0)
	}

	created := row.toDomain()
	return &created, nil
}

// GetByID returns a case by primary key.
func (r *Repo) GetByID(ctx context.Context, caseID int64) (*domain.Case, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": caseID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row caseRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "test_case", caseID)
	}

	c := row.toDomain()
	return &c, nil
}

// ListBySuite returns the suite's cases in creation order (ascending id).
func (r *Repo) ListBySuite(ctx context.Context, suiteID int64, skip, limit int) ([]domain.Case, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"suite_id": suiteID}).
		OrderBy("id ASC").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []caseRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}

	cases := make([]domain.Case, len(rows))
	for i, row := range rows {
		cases[i] = row.toDomain()
	}

	return cases, nil
}

// Update applies a partial update. Only fields present in params are
// written; updated_at is always refreshed.
func (r *Repo) Update(ctx context.Context, caseID int64, params domain.CaseUpdateParams) (*domain.Case, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": caseID}).
		Suffix("RETURNING " + joined())

	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.Description != nil {
		update = update.Set("description", *params.Description)
	}
	if params.Steps != nil {
		update = update.Set("steps", *params.Steps)
	}
	if params.ExpectedResult != nil {
		update = update.Set("expected_result", *params.ExpectedResult)
	}
	if params.Priority != nil {
		update = update.Set("priority", params.Priority.String())
	}
	if params.Severity != nil {
		update = update.Set("severity", params.Severity.String())
	}
	if params.Status != nil {
		update = update.Set("status", params.Status.String())
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row caseRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "test_case", caseID)
	}

	updated := row.toDomain()
	return &updated, nil
}

// Delete removes a case and returns its prior state, or domain.ErrNotFound
// if absent. Results referencing the case are cascade-deleted by the schema.
func (r *Repo) Delete(ctx context.Context, caseID int64) (*domain.Case, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": caseID}).
		Suffix("RETURNING " + joined()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row caseRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "test_case", caseID)
	}

	deleted := row.toDomain()
	return &deleted, nil
}

func joined() string {
	return strings.Join(columns, ", ")
}
