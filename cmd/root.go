package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/config"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "learneye",
	Short: "AI-tutored learning in your terminal",
	Long:  "LearnEye builds a course on any topic, quizzes you on each module, and has you teach it back before moving on.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite session file (overrides LEARNEYE_DB env var)")

	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the session database path using --db flag
// (highest priority), then the LEARNEYE_DB config value, then the
// default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
