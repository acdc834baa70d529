package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mdwcare/mdwcare-cli/internal/core/domain"
)

// quickQuestions are common employer questions offered as shortcuts.
var quickQuestions = []string{
	"Show me how to apply for a domestic helper in Singapore.",
	"Provide the link to hire a helper for elderly care at home.",
	"Where can I apply for a nanny or confinement helper online?",
}

var askQuick int

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about MOM policies",
	Long: `Asks a question against the uploaded documents. The question is checked
for relevance and safety, relevant chunks are retrieved and the answer
is grounded in them. Without uploaded documents the answer falls back
to general MOM knowledge.

Use --quick without a question to list common questions, or
--quick N to ask the Nth one directly.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVarP(&askQuick, "quick", "q", 0, "ask the Nth quick question (0 lists them)")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question, err := resolveQuestion(cmd, args)
	if err != nil || question == "" {
		return err
	}

	if err := ensureServices(); err != nil {
		return err
	}

	sess, err := sessionStore.Load()
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}

	record, err := answerService.Ask(cmd.Context(), sess, question)
	switch {
	case errors.Is(err, domain.ErrUnsafeQuestion):
		cmd.Println("This question contains inappropriate content and will not be answered.")
		return nil
	case errors.Is(err, domain.ErrOffTopicQuestion):
		cmd.Println("This question is outside MOM domestic worker policies. Try asking about levies, work permits, rest days or similar topics.")
		return nil
	case err != nil:
		return err
	}

	// Persist the rebuilt index state and the answer.
	if err := sessionStore.Save(sess); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	cmd.Print(renderAnswer(record))
	return nil
}

// resolveQuestion picks the question from the argument or the quick list.
// Returns an empty question after listing the quick questions.
func resolveQuestion(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return strings.TrimSpace(args[0]), nil
	}

	if !cmd.Flags().Changed("quick") {
		return "", errors.New("provide a question or use --quick")
	}

	if askQuick <= 0 {
		cmd.Println("Quick questions:")
		for i, q := range quickQuestions {
			cmd.Printf("  [%d] %s\n", i+1, q)
		}
		cmd.Println("\nRun: mdwcare ask --quick N")
		return "", nil
	}

	if askQuick > len(quickQuestions) {
		return "", fmt.Errorf("quick question %d does not exist (1-%d)", askQuick, len(quickQuestions))
	}
	return quickQuestions[askQuick-1], nil
}
