// Command cleanup physically removes deactivated users together with
// their suites, cases, and results (via FK cascades). It is intended to
// be invoked by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/qatrack-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/qatrack-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/qatrack-backend/internal/app"
	"github.com/heartmarshall/qatrack-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, cfg.Service.Name)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := userrepo.New(pool)

	deleted, err := users.DeleteInactive(ctx)
	if err != nil {
		logger.Error("cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("cleanup completed", slog.Int64("deleted_users", deleted))
}
