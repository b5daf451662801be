package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/notify"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/progress"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/session"
)

// progressCmd prints the learner's progress report without entering the
// TUI. Handy for a quick check or for piping into other tools.
var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Print your learning progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, st, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sess := session.NewStore(st.SessionRepo(), log)
		restored, err := sess.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("restore session: %w", err)
		}
		if !restored.Active() {
			return fmt.Errorf("no learner signed in, run learneye first")
		}

		client := api.NewClient(cfg, log)
		report, err := client.FetchProgress(cmd.Context(), restored.Learner)
		if err != nil {
			return fmt.Errorf("fetch progress: %w", err)
		}

		printReport(&notify.Writer{Out: os.Stdout}, restored.Learner, progress.Build(report))
		return nil
	},
}

func printReport(out *notify.Writer, learner string, vm progress.ViewModel) {
	s := vm.Summary
	out.Notify(notify.Info(fmt.Sprintf("Progress for %s", learner)))
	out.Notify(notify.Info(fmt.Sprintf(
		"  courses %d   modules %d   streak %d days   level %d",
		s.TotalCourses, s.ModulesCompleted, s.CurrentStreak, s.Level)))
	if len(s.Badges) > 0 {
		out.Notify(notify.Info(fmt.Sprintf("  badges: %v", s.Badges)))
	}

	if len(vm.Path) > 0 {
		out.Notify(notify.Info(""))
		out.Notify(notify.Info("Learning path"))
		for _, pt := range vm.Path {
			out.Notify(notify.Success(fmt.Sprintf("  %-14s %.0f%%", pt.Label, pt.Percentage)))
		}
	}

	if len(vm.Attempts) > 0 {
		out.Notify(notify.Info(""))
		out.Notify(notify.Info("Quiz attempts"))
		for _, a := range vm.Attempts {
			line := fmt.Sprintf("  #%d  %d/%d (%.0f%%)", a.Attempt, a.Score, a.Total, a.Percentage)
			if a.Date != "" {
				line += "  " + a.Date
			}
			if a.Percentage >= 60 {
				out.Notify(notify.Success(line))
			} else {
				out.Notify(notify.Warn(line))
			}
		}
	}

	if len(vm.Path) == 0 && len(vm.Attempts) == 0 {
		out.Notify(notify.Info("  nothing here yet, finish a module to see it"))
	}
}
