package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an active user with a unique email and a placeholder
// password hash. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	user := domain.User{
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtestha",
		IsActive:     true,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, is_active)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		user.Email, user.PasswordHash, user.IsActive,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedSuite creates a suite owned by the given user.
func SeedSuite(t *testing.T, pool *pgxpool.Pool, ownerID int64) domain.Suite {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	desc := "Seeded suite " + suffix
	suite := domain.Suite{
		Name:        "suite-" + suffix,
		Description: &desc,
		OwnerID:     ownerID,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO test_suites (name, description, owner_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		suite.Name, suite.Description, suite.OwnerID,
	).Scan(&suite.ID, &suite.CreatedAt, &suite.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSuite insert suite: %v", err)
	}

	return suite
}

// SeedCase creates a test case in the given suite with default
// priority/severity/status values.
func SeedCase(t *testing.T, pool *pgxpool.Pool, suiteID int64) domain.Case {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	steps := "1. do something " + suffix
	expected := "it works"
	c := domain.Case{
		Title:          "case-" + suffix,
		Steps:          &steps,
		ExpectedResult: &expected,
		Priority:       domain.PriorityMedium,
		Severity:       domain.SeverityMajor,
		Status:         domain.CaseStatusDraft,
		SuiteID:        suiteID,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO test_cases (title, steps, expected_result, priority, severity, status, suite_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		c.Title, c.Steps, c.ExpectedResult, c.Priority.String(), c.Severity.String(), c.Status.String(), c.SuiteID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCase insert case: %v", err)
	}

	return c
}

// SeedRun creates a pending run, optionally tied to a suite.
func SeedRun(t *testing.T, pool *pgxpool.Pool, suiteID *int64) domain.Run {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	run := domain.Run{
		Name:    "run-" + suffix,
		Status:  domain.RunStatusPending,
		SuiteID: suiteID,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO test_runs (name, status, suite_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		run.Name, run.Status.String(), run.SuiteID,
	).Scan(&run.ID, &run.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedRun insert run: %v", err)
	}

	return run
}

// SeedResult creates a passed result linking the given run and case.
func SeedResult(t *testing.T, pool *pgxpool.Pool, runID, caseID int64) domain.Result {
	t.Helper()
	ctx := context.Background()

	notes := "seeded result " + uniqueSuffix()
	duration := int64(1200)
	res := domain.Result{
		RunID:      runID,
		CaseID:     caseID,
		Status:     domain.ResultStatusPassed,
		Notes:      &notes,
		DurationMS: &duration,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO test_results (run_id, test_case_id, status, notes, duration_ms)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, executed_at`,
		res.RunID, res.CaseID, res.Status.String(), res.Notes, res.DurationMS,
	).Scan(&res.ID, &res.ExecutedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedResult insert result: %v", err)
	}

	return res
}
