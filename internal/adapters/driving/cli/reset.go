package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear uploaded documents and the last answer",
	Long: `Clears the session: uploaded documents and the last answer are
dropped. Stale index entries are removed on the next question.`,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	sess, err := sessionStore.Load()
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}

	if err := documentService.Reset(cmd.Context(), sess); err != nil {
		return err
	}

	if err := sessionStore.Save(sess); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	cmd.Println("Session cleared.")
	return nil
}
