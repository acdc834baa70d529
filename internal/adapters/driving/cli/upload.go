package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mdwcare/mdwcare-cli/internal/core/domain"
	"github.com/mdwcare/mdwcare-cli/internal/core/services"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [files...]",
	Short: "Upload policy documents (pdf, docx, txt)",
	Long: `Uploads one or more policy documents into the session. Documents are
cleaned and split into chunks ready for retrieval; a session holds at
most three documents.`,
	Args: cobra.RangeArgs(1, services.DefaultMaxDocuments),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	sess, err := sessionStore.Load()
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}

	uploaded := 0
	for _, path := range args {
		name := filepath.Base(path)
		kind, err := kindFromName(name)
		if err != nil {
			cmd.Printf("Skipping %s: %v\n", name, err)
			continue
		}

		f, err := os.Open(path)
		if err != nil {
			cmd.Printf("Skipping %s: %v\n", name, err)
			continue
		}

		doc, err := documentService.Upload(cmd.Context(), sess, name, kind, f)
		f.Close()
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			cmd.Printf("Skipping %s: already uploaded\n", name)
			continue
		case errors.Is(err, domain.ErrNoContent):
			cmd.Printf("Skipping %s: no usable text found\n", name)
			continue
		case err != nil:
			return fmt.Errorf("uploading %s: %w", name, err)
		}

		cmd.Printf("Uploaded %s (%d chunks)\n", doc.Name, len(doc.Chunks))
		uploaded++
	}

	if uploaded > 0 {
		if err := sessionStore.Save(sess); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
	}

	cmd.Printf("%d of %d document slots in use\n", len(sess.Documents), services.DefaultMaxDocuments)
	return nil
}

// kindFromName maps a filename extension to a document kind.
func kindFromName(name string) (domain.DocumentKind, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return domain.KindPDF, nil
	case ".docx":
		return domain.KindDOCX, nil
	case ".txt":
		return domain.KindTXT, nil
	default:
		return "", fmt.Errorf("unsupported file type %q: %w", filepath.Ext(name), domain.ErrUnsupportedType)
	}
}
