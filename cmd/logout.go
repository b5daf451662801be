package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/session"
)

// logoutCmd clears the stored session: learner name and any course in
// flight. The next run starts from the welcome screen.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the active course",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, st, err := buildDeps(cmd)
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
			fmt.Println("Nobody is signed in.")
			return nil
		}

		if err := sess.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		fmt.Printf("Signed %s out. See you next time!\n", restored.Learner)
		return nil
	},
}
