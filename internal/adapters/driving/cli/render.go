package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mdwcare/mdwcare-cli/internal/core/domain"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	answerStyle  = lipgloss.NewStyle().PaddingLeft(2)
	linkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Underline(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// renderAnswer formats an answer record for terminal output.
func renderAnswer(record *domain.AnswerRecord) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Answer"))
	b.WriteString("\n")
	b.WriteString(answerStyle.Render(record.Answer))
	b.WriteString("\n")

	if len(record.URLs) > 0 {
		b.WriteString("\n")
		b.WriteString(headingStyle.Render("MOM links"))
		b.WriteString("\n")
		for _, u := range record.URLs {
			b.WriteString("  " + linkStyle.Render(u) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(faintStyle.Render(fmt.Sprintf(
		"%d context chunks, ~%d tokens", len(record.Evidence), record.TokenCount)))
	b.WriteString("\n")

	return b.String()
}
