package main

import (
	"context"
	"os"

	"github.com/Ramon-Molinero/pokedex/internal/app"
	"github.com/Ramon-Molinero/pokedex/internal/config"
)

// configPath is bound to the --config persistent flag.
var configPath string

// bootstrap loads configuration (--config, then CONFIG_PATH, then
// ./config.yaml), applies command-line overrides, installs the logger and
// opens the app.
func bootstrap(ctx context.Context, overrides ...func(*config.Config)) (*app.App, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, err
	}
	for _, o := range overrides {
		o(cfg)
	}
	logger := app.NewLogger(cfg.Log)
	return app.New(ctx, cfg, logger)
}
