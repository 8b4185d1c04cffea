package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ravenor/mistvale/internal/config"
	"github.com/ravenor/mistvale/internal/db"
	"github.com/ravenor/mistvale/internal/game/clock"
	"github.com/ravenor/mistvale/internal/game/spell"
	"github.com/ravenor/mistvale/internal/world"
)

const GameConfigPath = "config/gameserver.yaml"

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

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := GameConfigPath
	if p := os.Getenv("MISTVALE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadGameServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("mistvale server starting",
		"log_level", cfg.LogLevel,
		"tick_millis", cfg.TickMillis,
		"pvp", cfg.Combat.PvpEnabled)

	book := spell.NewBook(spell.WithLookupDebug(cfg.SpellLookupDebug))
	if err := spell.RegisterBuiltins(book); err != nil {
		return fmt.Errorf("loading spell catalogue: %w", err)
	}
	slog.Info("spell catalogue loaded", "spells", book.Len())

	gameClock := clock.New(cfg.TickLength())
	w := world.New(gameClock, cfg.Combat.Rules(), book)

	var repo *db.PlayerRepository
	if cfg.Database.Enabled {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		repo = db.NewPlayerRepository(database.Pool())
		slog.Info("database connected, migrations applied")
	}

	g, gctx := errgroup.WithContext(ctx)

	// The simulation is single-threaded: one goroutine owns the world and
	// runs both the tick step and the autosave sweep.
	g.Go(func() error {
		return runSimulation(gctx, cfg, w, repo)
	})

	slog.Info("mistvale server ready")
	return g.Wait()
}

func runSimulation(ctx context.Context, cfg config.GameServer, w *world.World, repo *db.PlayerRepository) error {
	tick := time.NewTicker(cfg.TickLength())
	defer tick.Stop()

	var autosave <-chan time.Time
	if repo != nil && cfg.AutosaveSeconds > 0 {
		t := time.NewTicker(cfg.AutosaveInterval())
		defer t.Stop()
		autosave = t.C
	}

	for {
		select {
		case <-ctx.Done():
			if repo != nil {
				if err := saveWorld(context.Background(), w, repo); err != nil {
					slog.Error("final save failed", "err", err)
				}
			}
			return ctx.Err()
		case <-tick.C:
			w.Step()
		case <-autosave:
			if err := saveWorld(ctx, w, repo); err != nil {
				slog.Error("autosave failed", "err", err)
			} else {
				slog.Debug("autosave complete", "players", w.PlayerCount())
			}
		}
	}
}

func saveWorld(ctx context.Context, w *world.World, repo *db.PlayerRepository) error {
	return repo.SaveAll(ctx, w.EachPlayer)
}

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
