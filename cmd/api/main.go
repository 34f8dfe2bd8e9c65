package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ebisa/contabil/internal/chartofaccounts"
	coaStore "github.com/ebisa/contabil/internal/chartofaccounts/store"
	"github.com/ebisa/contabil/internal/company"
	companyStore "github.com/ebisa/contabil/internal/company/store"
	"github.com/ebisa/contabil/internal/config"
	"github.com/ebisa/contabil/internal/database"
	"github.com/ebisa/contabil/internal/export"
	contabilHttp "github.com/ebisa/contabil/internal/http"
	"github.com/ebisa/contabil/internal/http/auth"
	coaHandler "github.com/ebisa/contabil/internal/http/chartofaccounts"
	companyHandler "github.com/ebisa/contabil/internal/http/company"
	tbHandler "github.com/ebisa/contabil/internal/http/trialbalance"
	"github.com/ebisa/contabil/internal/importer"
	"github.com/ebisa/contabil/internal/logging"
	"github.com/ebisa/contabil/internal/trialbalance"
	tbStore "github.com/ebisa/contabil/internal/trialbalance/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// "api token <email>" prints a bearer token for local use.
	if len(os.Args) == 3 && os.Args[1] == "token" {
		token, err := auth.Sign([]byte(cfg.App.JWTSecret), os.Args[2], nil)
		if err != nil {
			slog.Error("failed to sign token", "error", err)
			os.Exit(1)
		}

		fmt.Println(token)

		return
	}

	log, closer, err := logging.New(logging.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		slog.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer closer.Close()

	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	db, err := database.New(cfg.ConnectionString(), database.PoolConfig{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.DB.Migrate {
		if err := database.Migrate(ctx, db); err != nil {
			return err
		}

		log.Info("schema applied")
	}

	var (
		companyService      = company.NewService(companyStore.New(db))
		trialBalanceService = trialbalance.NewService(tbStore.New(db, cfg.Import.BatchSize), companyService)
		chartService        = chartofaccounts.NewService(coaStore.New(db, cfg.Import.BatchSize), companyService)
		importService       = importer.NewService(trialBalanceService, chartService, log)
		exportService       = export.NewService(trialBalanceService)
	)

	var (
		trialBalanceH = tbHandler.NewHandler(importService, trialBalanceService, exportService, cfg.MaxUploadBytes())
		chartH        = coaHandler.NewHandler(importService, chartService, cfg.MaxUploadBytes())
		companyH      = companyHandler.NewHandler(companyService)
	)

	router := contabilHttp.New(contabilHttp.Options{
		CORSOrigins: cfg.App.CORSOrigins,
		JWTSecret:   cfg.App.JWTSecret,
		DefaultUser: cfg.App.User,
	}, trialBalanceH, chartH, companyH)

	if cfg.App.JWTSecret == "" {
		log.Warn("JWT_SECRET is empty, requests run as the default user", "user", cfg.App.User)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)

	go func() {
		log.Info("starting server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
