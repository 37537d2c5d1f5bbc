// Command treasurehunt manages treasure catalogs and scores recorded hunts.
//
// Usage:
//
//	treasurehunt [-config path] migrate
//	treasurehunt [-config path] import <catalog.yaml>
//	treasurehunt [-config path] score <guesses.yaml>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/treasurehunt/internal/catalog"
	"github.com/udisondev/treasurehunt/internal/config"
	"github.com/udisondev/treasurehunt/internal/db"
	"github.com/udisondev/treasurehunt/internal/game"
	"github.com/udisondev/treasurehunt/internal/hunt"
	"github.com/udisondev/treasurehunt/internal/model"
)

const DefaultConfigPath = "config/treasurehunt.yaml"

var errUsage = errors.New("usage: treasurehunt [-config path] migrate | import <catalog.yaml> | score <guesses.yaml>")

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("treasurehunt", flag.ContinueOnError)
	cfgPath := fs.String("config", defaultConfigPath(), "path to config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	switch fs.Arg(0) {
	case "migrate":
		return runMigrate(ctx, cfg)
	case "import":
		if fs.NArg() != 2 {
			return errUsage
		}
		return runImport(ctx, cfg, fs.Arg(1))
	case "score":
		if fs.NArg() != 2 {
			return errUsage
		}
		return runScore(ctx, cfg, fs.Arg(1), out)
	default:
		return errUsage
	}
}

func defaultConfigPath() string {
	if p := os.Getenv("TREASUREHUNT_CONFIG"); p != "" {
		return p
	}
	return DefaultConfigPath
}

func runMigrate(ctx context.Context, cfg config.Hunt) error {
	switch cfg.Catalog.Source {
	case config.SourcePostgres:
		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
	case config.SourceSQLite:
		// OpenSQLite migrates on open.
		repo, err := db.OpenSQLite(ctx, cfg.SQLite.Path)
		if err != nil {
			return err
		}
		if err := repo.Close(); err != nil {
			return fmt.Errorf("closing sqlite: %w", err)
		}
	default:
		return fmt.Errorf("catalog source %q has no database to migrate", cfg.Catalog.Source)
	}
	slog.Info("database migrations applied", "source", cfg.Catalog.Source)
	return nil
}

func runImport(ctx context.Context, cfg config.Hunt, path string) error {
	treasures, err := catalog.NewYAMLFile(path).LoadTreasures(ctx)
	if err != nil {
		return fmt.Errorf("reading catalog: %w", err)
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := store.SaveTreasures(ctx, treasures); err != nil {
		return fmt.Errorf("saving catalog: %w", err)
	}
	slog.Info("catalog imported", "source", cfg.Catalog.Source, "treasures", len(treasures))
	return nil
}

func runScore(ctx context.Context, cfg config.Hunt, guessesPath string, out io.Writer) error {
	var (
		treasures []*model.Treasure
		guesses   []catalog.Guess
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		src, closeSrc, err := openSource(gctx, cfg)
		if err != nil {
			return err
		}
		defer closeSrc()

		treasures, err = src.LoadTreasures(gctx)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		f, err := os.Open(guessesPath)
		if err != nil {
			return fmt.Errorf("opening guesses: %w", err)
		}
		defer f.Close()

		guesses, err = catalog.ParseGuesses(f)
		if err != nil {
			return fmt.Errorf("guesses %s: %w", guessesPath, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("hunt loaded", "treasures", len(treasures), "guesses", len(guesses))

	session := hunt.New(game.New(treasures...))
	if err := replay(session, guesses, out); err != nil {
		return err
	}

	attempted, total := session.Progress()
	score := session.Score()
	fmt.Fprintf(out, "attempted %d/%d treasures\n", attempted, total)
	fmt.Fprintf(out, "score %d (average %s)\n", score.Points(), score.Average.StringFixed(2))
	return nil
}

// replay feeds guesses into the session in file order and prints each result.
func replay(session *hunt.Session, guesses []catalog.Guess, out io.Writer) error {
	for i, gs := range guesses {
		if gs.Skip {
			if err := session.Skip(gs.TreasureID); err != nil {
				return fmt.Errorf("guess #%d: %w", i, err)
			}
			fmt.Fprintf(out, "#%d %s skipped\n", i+1, gs.TreasureID)
			continue
		}

		res, err := session.Submit(gs.TreasureID, gs.Location, gs.Label)
		if err != nil {
			return fmt.Errorf("guess #%d: %w", i, err)
		}
		best, _ := res.Best.Distance()
		fmt.Fprintf(out, "#%d %s distance=%dm delta=%+d best=%dm\n",
			i+1, gs.TreasureID, res.Distance, res.Delta, best)
	}
	return nil
}

// openSource returns the configured catalog source and its close func.
func openSource(ctx context.Context, cfg config.Hunt) (catalog.Source, func(), error) {
	if cfg.Catalog.Source == config.SourceYAML {
		return catalog.NewYAMLFile(cfg.Catalog.Path), func() {}, nil
	}
	return openStore(ctx, cfg)
}

// openStore returns the configured database-backed catalog store.
func openStore(ctx context.Context, cfg config.Hunt) (catalog.Store, func(), error) {
	switch cfg.Catalog.Source {
	case config.SourcePostgres:
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, nil, err
		}
		return db.NewTreasureRepository(database.Pool()), database.Close, nil
	case config.SourceSQLite:
		repo, err := db.OpenSQLite(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = repo.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("catalog source %q is not a database", cfg.Catalog.Source)
	}
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
