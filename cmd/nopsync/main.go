package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"nopsync/internal/adapters/catalog"
	server "nopsync/internal/adapters/http_server"
	"nopsync/internal/adapters/observability"
	redisad "nopsync/internal/adapters/redis"
	"nopsync/internal/app"
	"nopsync/internal/domain"
	"nopsync/internal/shared"
	"nopsync/internal/storage/memory"
	mysqlrepo "nopsync/internal/storage/mysql"
)

const usage = `usage: nopsync <command>

commands:
  products     sync products from the catalog API into nopCommerce
  categories   sync categories from the catalog API into nopCommerce
  test         dry run: fetch both feeds and sync them in memory, write nothing
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) != 1 {
		fmt.Fprint(os.Stderr, usage)
		return 1
	}
	cmd := args[0]
	switch cmd {
	case domain.EntityProducts, domain.EntityCategories, "test":
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		return 1
	}

	cfg, err := shared.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	// initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("command", cmd).
		Str("base", cfg.CatalogBase).
		Int64("language_id", cfg.LanguageID).
		Msg("nopsync starting")

	db, err := sqlx.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Error().Err(err).Msg("sqlx.Open failed")
		return 1
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("db ping failed")
		return 1
	}
	log.Info().Msg("db ping ok")
	repo := mysqlrepo.New(db)

	client, err := catalog.New(catalog.Options{
		BaseURL:        cfg.CatalogBase,
		APIKey:         cfg.CatalogKey,
		ProductsPath:   cfg.CatalogProductsPath,
		CategoriesPath: cfg.CatalogCategoriesPath,
		Timeout:        cfg.CatalogTimeout(),
		RPS:            cfg.CatalogRPS,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize catalog client")
		return 1
	}

	// optional redis: run lock + last-run summaries
	var (
		lock     domain.RunLock
		recorder domain.RunRecorder
	)
	if cfg.RedisAddr != "" {
		rs := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rs.Close()
		if err := rs.Ping(ctx); err != nil {
			log.Error().Err(err).Str("addr", cfg.RedisAddr).Msg("redis ping failed")
			return 1
		}
		lock, recorder = rs, rs
	}

	if cfg.MetricsAddr != "" {
		srv := server.New()
		srv.Mount("/metrics", observability.MetricsHandler(observability.InitRegistry()))
		srv.MountHandlers(&server.Handlers{Q: app.NewRunQueries(recorder)})
		go func() {
			if err := srv.Serve(ctx, cfg.MetricsAddr); err != nil {
				log.Error().Err(err).Msg("status server failed")
			}
		}()
	}

	opts := []app.Option{
		app.WithLanguageID(cfg.LanguageID),
		app.WithProgressEvery(cfg.ProgressEvery),
	}

	if cmd == "test" {
		return dryRun(ctx, client, opts)
	}

	if err := repo.EnsureExternalIDColumns(ctx); err != nil {
		log.Error().Err(err).Msg("schema check failed")
		return 1
	}

	runner := app.NewRunner(client,
		app.NewProductSync(repo, repo, repo, opts...),
		app.NewCategorySync(repo, opts...),
		lock, recorder, cfg.LockTTL())

	res, err := runner.Run(ctx, cmd)
	return report(cmd, res, err)
}

// dryRun syncs both feeds into an in-memory store so the would-be counts can
// be inspected without touching MySQL.
func dryRun(ctx context.Context, f domain.Fetcher, opts []app.Option) int {
	mem := memory.New()
	runner := app.NewRunner(f,
		app.NewProductSync(mem, mem, mem, opts...),
		app.NewCategorySync(mem, opts...),
		nil, nil, 0)

	code := 0
	for _, entity := range []string{domain.EntityCategories, domain.EntityProducts} {
		res, err := runner.Run(ctx, entity)
		if c := report("test/"+entity, res, err); c != 0 {
			code = c
		}
		if errors.Is(err, domain.ErrFetch) || errors.Is(err, context.Canceled) {
			break
		}
	}
	log.Info().
		Int("products", mem.ProductCount()).
		Int("categories", mem.CategoryCount()).
		Int("assignments", len(mem.Assignments())).
		Int("localized", len(mem.Localized())).
		Msg("dry run complete; nothing written")
	return code
}

func report(cmd string, res domain.BatchResult, err error) int {
	if err == nil {
		log.Info().Str("command", cmd).Int("processed", res.Processed).Msg("sync ok")
		return 0
	}
	var be *domain.BatchError
	switch {
	case errors.As(err, &be):
		log.Error().Str("command", cmd).Int("errored", be.Result.Errored).Msg("sync finished with errors")
	case errors.Is(err, domain.ErrLocked):
		log.Error().Str("command", cmd).Err(err).Msg("another run holds the lock")
	default:
		log.Error().Str("command", cmd).Err(err).Msg("sync failed")
	}
	return 1
}
