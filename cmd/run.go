package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/app"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/config"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/logging"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/session"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/store"
)

// runApp opens the session store, builds dependencies, and launches the
// TUI.
func runApp(cmd *cobra.Command) error {
	cfg, log, st, err := buildDeps(cmd)
	if err != nil {
		return err
	}
	defer st.Close()
	defer func() { _ = log.Sync() }()

	client := api.NewClient(cfg, log)
	sess := session.NewStore(st.SessionRepo(), log)

	return app.Run(cfg, log, client, sess)
}

// buildDeps loads config, sets up logging, and opens the store. Shared
// by the TUI and the non-interactive commands.
func buildDeps(cmd *cobra.Command) (config.Config, *zap.SugaredLogger, *store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(cfg.LogPath)
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("set up logging: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("open store: %w", err)
	}

	return cfg, log, st, nil
}
