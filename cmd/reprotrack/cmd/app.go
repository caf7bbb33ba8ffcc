package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/talgya/reprotrack/internal/entropy"
	"github.com/talgya/reprotrack/internal/odds"
	"github.com/talgya/reprotrack/internal/persistence"
	"github.com/talgya/reprotrack/internal/prompt"
	"github.com/talgya/reprotrack/internal/settings"
	"github.com/talgya/reprotrack/internal/tracker"
)

// backend is a settings slot plus roll journal. Both *persistence.DB and
// *persistence.RedisStore satisfy it.
type backend interface {
	settings.Store
	tracker.Journal
	RecentRolls(ctx context.Context, chatID string, limit int) ([]persistence.Roll, error)
	Close() error
}

// app is one opened tracker with its storage.
type app struct {
	tracker *tracker.Tracker
	store   backend
	saver   *persistence.Debouncer
	db      *persistence.DB // nil with the redis backend
}

func openBackend(ctx context.Context) (backend, *persistence.DB, error) {
	switch store := viper.GetString("store"); store {
	case "redis":
		r, err := persistence.DialRedis(ctx, viper.GetString("redis_addr"), viper.GetString("redis_prefix"))
		if err != nil {
			return nil, nil, err
		}
		return r, nil, nil
	case "sqlite", "":
		path := viper.GetString("db")
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("create data dir: %w", err)
			}
		}
		db, err := persistence.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q (want sqlite or redis)", store)
	}
}

func loadOdds() (odds.Table, error) {
	if path := viper.GetString("odds_file"); path != "" {
		return odds.LoadFile(path)
	}
	if viper.GetBool("low_fertility") {
		return odds.LowFertilityVariant(), nil
	}
	return odds.Default(), nil
}

// promptWriter mirrors prompt slots into <dir>/<slot>.txt for hosts that
// read files.
func promptWriter(dir string) prompt.Injector {
	return prompt.InjectorFunc(func(slot, text string) {
		path := filepath.Join(dir, slot+".txt")
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			slog.Warn("writing prompt slot failed", "slot", slot, "error", err)
		}
	})
}

func openApp(ctx context.Context) (*app, error) {
	table, err := loadOdds()
	if err != nil {
		return nil, err
	}
	store, db, err := openBackend(ctx)
	if err != nil {
		return nil, err
	}

	data, err := store.LoadSettings(ctx)
	if err != nil {
		store.Close()
		return nil, err
	}
	s, err := settings.Load(data, table)
	if err != nil {
		store.Close()
		return nil, err
	}
	if lang := viper.GetString("language"); lang != "" {
		s.Language = lang
	}

	a := &app{store: store, db: db}
	a.saver = persistence.NewDebouncer(store, func() ([]byte, error) {
		return a.tracker.Snapshot()
	}, viper.GetDuration("save_debounce"))

	opts := tracker.Options{
		Odds:        table,
		Fair:        entropy.Fair(entropy.NewClient(viper.GetString("random_org_key"))),
		Saver:       a.saver,
		Journal:     store,
		Notifier:    notifier(),
		ResultDelay: viper.GetDuration("result_clear_delay"),
	}
	if dir := viper.GetString("prompt_dir"); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			store.Close()
			return nil, fmt.Errorf("create prompt dir: %w", err)
		}
		opts.Injector = promptWriter(dir)
	}
	a.tracker = tracker.New(s, opts)

	slog.Debug("tracker opened",
		"store", viper.GetString("store"),
		"chats", len(s.Sessions),
		"language", s.Language,
		"fair_source", fmt.Sprintf("%T", opts.Fair),
	)
	return a, nil
}

// Close clears any announcement still on screen, flushes pending settings
// and releases the store.
func (a *app) Close() {
	a.tracker.Slots().Flush()
	a.saver.Flush()
	if err := a.store.Close(); err != nil {
		slog.Warn("closing store failed", "error", err)
	}
}

func chatFlag() string {
	return viper.GetString("chat")
}
