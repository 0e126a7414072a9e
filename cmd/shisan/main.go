package main

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v2"

	"github.com/hisakawa/shisan/internal/api"
	"github.com/hisakawa/shisan/internal/config"
	"github.com/hisakawa/shisan/internal/database"
	"github.com/hisakawa/shisan/internal/dividend"
	"github.com/hisakawa/shisan/internal/export"
	"github.com/hisakawa/shisan/internal/fx"
	"github.com/hisakawa/shisan/internal/holdings"
	"github.com/hisakawa/shisan/internal/quote"
	"github.com/hisakawa/shisan/internal/refresh"
	"github.com/hisakawa/shisan/internal/valuation"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func main() {
	app := &cli.App{
		Name:  "shisan",
		Usage: "portfolio valuation and dividend projection service",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API server with the periodic refresh worker",
				Action: runServe,
			},
			{
				Name:   "refresh",
				Usage:  "run a single valuation pass and print the portfolio as JSON",
				Action: runRefresh,
			},
			{
				Name:  "export",
				Usage: "run a single valuation pass and write the report",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Usage: "xlsx output path (overrides EXPORT_PATH)",
					},
				},
				Action: runExport,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// buildRefresher wires the full valuation pipeline from configuration.
// The returned pool is nil when DATABASE_URL is not set; the service then
// runs without rate persistence or refresh flags.
func buildRefresher(ctx context.Context, cfg config.Config) (*refresh.Service, *pgxpool.Pool, error) {
	stored, err := holdings.Load(cfg.HoldingsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading holdings: %w", err)
	}

	var pool *pgxpool.Pool
	var rateRepo fx.RateRepository
	var opts []refresh.Option

	if cfg.DatabaseURL != "" {
		pool, err = database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}

		migrationsSub, err := fs.Sub(migrationsFS, "migrations")
		if err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("creating migrations sub-fs: %w", err)
		}
		if err := database.RunMigrations(ctx, pool, migrationsSub); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("running migrations: %w", err)
		}

		rateRepo = fx.NewPgRateRepository(pool)
		opts = append(opts, refresh.WithFlagStore(refresh.NewPgFlagStore(pool)))
	} else {
		slog.Warn("DATABASE_URL not set, running without persistence")
	}

	noise := quote.RandomNoise()
	if cfg.NoiseSeed != 0 {
		noise = quote.SeededNoise(cfg.NoiseSeed)
	}

	fxClient := fx.NewClient(cfg.FXURL, cfg.FXRetryBaseDelay, cfg.FXRetryMax)
	rates := fx.NewService(fxClient, rateRepo, cfg.FXFallbackRate)
	prices := quote.NewService(noise)
	hydrator := valuation.NewService(prices, rates, noise)

	if exporter, ok := buildExporter(ctx, cfg, ""); ok {
		opts = append(opts, refresh.WithExportHook(exporter))
	}

	return refresh.NewService(stored, hydrator, dividend.DefaultTable, opts...), pool, nil
}

// buildExporter picks a report writer from configuration. Google Sheets wins
// when credentials are configured, otherwise a local xlsx file is written.
func buildExporter(ctx context.Context, cfg config.Config, overridePath string) (refresh.Exporter, bool) {
	if cfg.SheetsID != "" && cfg.SheetsCredsJSON != "" {
		w, err := export.NewSheetsWriter(ctx, cfg.SheetsID, cfg.SheetsCredsJSON)
		if err != nil {
			slog.Error("failed to create sheets writer, falling back to xlsx", "error", err)
		} else {
			return w, true
		}
	}

	path := cfg.ExportPath
	if overridePath != "" {
		path = overridePath
	}
	if path == "" {
		return nil, false
	}
	return export.NewExcelWriter(path), true
}

func runServe(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	refresher, pool, err := buildRefresher(ctx, cfg)
	if err != nil {
		return err
	}
	if pool != nil {
		defer pool.Close()
	}

	w := refresh.NewWorker(refresher, cfg.RefreshInterval)
	go w.Run(ctx)

	if cfg.AdminAPIKey == "" {
		slog.Warn("ADMIN_API_KEY not set, refresh endpoint is unprotected")
	}

	srv := api.NewServer(cfg.HTTPPort, refresher, cfg.AdminAPIKey)

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Shutdown complete")
	return nil
}

func runRefresh(c *cli.Context) error {
	cfg := config.Load()

	refresher, pool, err := buildRefresher(c.Context, cfg)
	if err != nil {
		return err
	}
	if pool != nil {
		defer pool.Close()
	}

	if err := refresher.Refresh(c.Context); err != nil {
		return fmt.Errorf("refreshing portfolio: %w", err)
	}

	result, ok := refresher.Latest()
	if !ok {
		return fmt.Errorf("refresh produced no result")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func runExport(c *cli.Context) error {
	cfg := config.Load()

	refresher, pool, err := buildRefresher(c.Context, cfg)
	if err != nil {
		return err
	}
	if pool != nil {
		defer pool.Close()
	}

	exporter, ok := buildExporter(c.Context, cfg, c.String("out"))
	if !ok {
		return fmt.Errorf("no export target configured: set --out, EXPORT_PATH, or SHEETS_SPREADSHEET_ID")
	}

	if err := refresher.Refresh(c.Context); err != nil {
		return fmt.Errorf("refreshing portfolio: %w", err)
	}
	result, ok := refresher.Latest()
	if !ok {
		return fmt.Errorf("refresh produced no result")
	}

	if err := exporter.Export(c.Context, result.Portfolio, result.Dividends); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	log.Println("Report written")
	return nil
}
