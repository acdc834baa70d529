// Package cli implements the mdwcare command line interface using cobra.
// Commands talk to the core services through the driving ports; the
// concrete stack (OpenAI, SQLite, file stores) is wired lazily on first
// use so tests can inject fakes by swapping the package-level services.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mdwcare/mdwcare-cli/internal/adapters/driven/config/file"
	"github.com/mdwcare/mdwcare-cli/internal/adapters/driven/extract"
	"github.com/mdwcare/mdwcare-cli/internal/adapters/driven/openai"
	sessionfile "github.com/mdwcare/mdwcare-cli/internal/adapters/driven/session/file"
	"github.com/mdwcare/mdwcare-cli/internal/adapters/driven/tokenizer"
	"github.com/mdwcare/mdwcare-cli/internal/adapters/driven/vector/memory"
	"github.com/mdwcare/mdwcare-cli/internal/adapters/driven/vector/sqlite"
	"github.com/mdwcare/mdwcare-cli/internal/core/ports/driven"
	"github.com/mdwcare/mdwcare-cli/internal/core/ports/driving"
	"github.com/mdwcare/mdwcare-cli/internal/core/services"
	"github.com/mdwcare/mdwcare-cli/internal/gate"
	"github.com/mdwcare/mdwcare-cli/internal/logger"
	"github.com/mdwcare/mdwcare-cli/internal/prompt"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

// Services used by the commands. Wired by ensureServices, swapped by tests.
var (
	documentService driving.DocumentService
	answerService   driving.AnswerService
	sessionStore    driven.SessionStore
)

var rootCmd = &cobra.Command{
	Use:   "mdwcare",
	Short: "Ask questions about Singapore MOM policies for domestic workers",
	Long: `mdwcare answers questions about Singapore's Ministry of Manpower
policies for hiring Migrant Domestic Workers, confinement nannies and
elderly caregivers.

Upload up to three policy documents (pdf, docx or txt), then ask
questions. Answers are grounded in the uploaded content, with MOM
website links surfaced alongside.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ensureServices wires the production stack on first use. Commands whose
// services were pre-set (tests) skip wiring entirely.
func ensureServices() error {
	if documentService != nil && answerService != nil && sessionStore != nil {
		return nil
	}

	// A .env in the working directory is a convenience, not a requirement.
	_ = godotenv.Load()

	cfg, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		apiKey = cfg.GetString(file.KeyAPIKey)
	}
	if apiKey == "" {
		return fmt.Errorf("no OpenAI API key: set OPENAI_API_KEY or %q in %s", file.KeyAPIKey, cfg.Path())
	}

	embedder, err := openai.NewEmbeddingService(openai.EmbeddingConfig{
		APIKey:  apiKey,
		BaseURL: cfg.GetString(file.KeyBaseURL),
		Model:   cfg.GetString(file.KeyEmbeddingModel),
	})
	if err != nil {
		return fmt.Errorf("creating embedding service: %w", err)
	}

	completion, err := openai.NewCompletionService(openai.CompletionConfig{
		APIKey:  apiKey,
		BaseURL: cfg.GetString(file.KeyBaseURL),
		Model:   cfg.GetString(file.KeyCompletionModel),
	})
	if err != nil {
		return fmt.Errorf("creating completion service: %w", err)
	}

	// Ephemeral mode keeps vectors in memory; the index is rebuilt on the
	// next invocation since nothing persists.
	var vectors driven.VectorStore
	if cfg.GetBool(file.KeyEphemeral) {
		vectors = memory.New()
	} else {
		vectors, err = sqlite.NewStore("")
		if err != nil {
			return fmt.Errorf("opening vector store: %w", err)
		}
	}

	sessions, err := sessionfile.NewStore("")
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}

	prompts, err := file.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("opening prompt store: %w", err)
	}

	counter, err := tokenizer.NewCounter(completion.ModelName())
	if err != nil {
		logger.Warn("Token encoding unavailable, falling back to word count: %v", err)
		counter = tokenizer.NewFallbackCounter()
	}

	documentService = services.NewDocumentService(
		extract.DefaultRegistry(),
		cfg.GetInt(file.KeyChunkSize),
		0,
	)
	answerService = services.NewAnswerService(
		gate.New(),
		services.NewIndexer(embedder, vectors),
		prompt.NewComposer(prompts),
		completion,
		counter,
		cfg.GetInt(file.KeyTopK),
		cfg.GetInt(file.KeyMaxTokens),
	)
	sessionStore = sessions
	return nil
}
