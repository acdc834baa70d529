package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdwcare/mdwcare-cli/internal/core/domain"
	"github.com/mdwcare/mdwcare-cli/internal/core/services"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "List uploaded documents",
	RunE:  runDocsList,
}

var docsRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Remove an uploaded document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsRemove,
}

func init() {
	docsCmd.AddCommand(docsRemoveCmd)
	rootCmd.AddCommand(docsCmd)
}

func runDocsList(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	sess, err := sessionStore.Load()
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}

	if len(sess.Documents) == 0 {
		cmd.Println("No documents uploaded. Use: mdwcare upload <file>")
		return nil
	}

	cmd.Printf("Documents (%d of %d slots):\n", len(sess.Documents), services.DefaultMaxDocuments)
	for _, doc := range sess.Documents {
		cmd.Printf("  %s (%d chunks)\n", doc.Name, len(doc.Chunks))
	}
	return nil
}

func runDocsRemove(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	sess, err := sessionStore.Load()
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}

	name := args[0]
	if err := documentService.Remove(cmd.Context(), sess, name); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no document named %q", name)
		}
		return err
	}

	if err := sessionStore.Save(sess); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	cmd.Printf("Removed %s\n", name)
	return nil
}
