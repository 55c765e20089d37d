package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/qatrack-backend/internal/adapter/postgres"
	resultrepo "github.com/heartmarshall/qatrack-backend/internal/adapter/postgres/result"
	runrepo "github.com/heartmarshall/qatrack-backend/internal/adapter/postgres/run"
	suiterepo "github.com/heartmarshall/qatrack-backend/internal/adapter/postgres/suite"
	caserepo "github.com/heartmarshall/qatrack-backend/internal/adapter/postgres/testcase"
	userrepo "github.com/heartmarshall/qatrack-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/qatrack-backend/internal/auth"
	"github.com/heartmarshall/qatrack-backend/internal/config"
	authsvc "github.com/heartmarshall/qatrack-backend/internal/service/auth"
	resultsvc "github.com/heartmarshall/qatrack-backend/internal/service/result"
	runsvc "github.com/heartmarshall/qatrack-backend/internal/service/run"
	suitesvc "github.com/heartmarshall/qatrack-backend/internal/service/suite"
	casesvc "github.com/heartmarshall/qatrack-backend/internal/service/testcase"
	"github.com/heartmarshall/qatrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/qatrack-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects
// to the database, assembles services and the HTTP server, and blocks
// until the context is cancelled. Shutdown is graceful within
// cfg.Server.ShutdownTimeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log, cfg.Service.Name)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	jwtMgr, err := authpkg.NewJWTManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.JWTIssuer,
		cfg.Auth.Algorithm,
		cfg.Auth.AccessTokenTTL,
	)
	if err != nil {
		return fmt.Errorf("init jwt manager: %w", err)
	}

	users := userrepo.New(pool)
	suites := suiterepo.New(pool)
	cases := caserepo.New(pool)
	runs := runrepo.New(pool)
	results := resultrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	authService := authsvc.NewService(logger, users, jwtMgr, cfg.Auth)
	suiteService := suitesvc.NewService(logger, suites)
	caseService := casesvc.NewService(logger, cases, suites, txManager)
	runService := runsvc.NewService(logger, runs)
	resultService := resultsvc.NewService(logger, results)

	router := rest.NewRouter(rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Suites:  rest.NewSuiteHandler(suiteService, logger),
		Cases:   rest.NewCaseHandler(caseService, logger),
		Runs:    rest.NewRunHandler(runService, logger),
		Results: rest.NewResultHandler(resultService, logger),
		Health:  rest.NewHealthHandler(pool, cfg.Service.Name, BuildVersion()),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped", slog.Duration("uptime", uptime()))
	return nil
}

var started = time.Now()

func uptime() time.Duration {
	return time.Since(started)
}
