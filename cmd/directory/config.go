package main

import (
	"context"
	"fmt"

	"github.com/jonathan/london-crypto-directory/internal/config"
	"github.com/jonathan/london-crypto-directory/internal/store"
)

// loadConfig layers defaults, the optional config file and the environment.
// Flags are applied by each command afterwards.
func loadConfig(path string) (config.Config, error) {
	cfg := config.Defaults()
	if path != "" {
		fileCfg, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	cfg.ApplyEnv()
	return cfg, nil
}

func openStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	st, err := store.Open(ctx, store.Options{
		Driver:      store.Driver(cfg.StoreDriver),
		DatabaseURL: cfg.DatabaseURL,
		SQLitePath:  cfg.SQLitePath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open company store: %w", err)
	}
	return st, nil
}
