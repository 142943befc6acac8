package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func RenderMarkdown(content string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

func RenderField(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

func RenderEntityHeader(title string, fields []string) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(title))
	sb.WriteString("\n")
	for _, f := range fields {
		sb.WriteString("  " + f + "\n")
	}
	return sb.String()
}

// RenderVerdict formats a per-file validation outcome for the lint output.
func RenderVerdict(ok bool, ref string) string {
	if ok {
		return validStyle.Render("ok") + "    " + ref
	}
	return invalidStyle.Render("fail") + "  " + ref
}

// RenderCount formats a result-count footer such as "3 of 12 shown".
func RenderCount(shown, total int) string {
	if shown == total {
		return countStyle.Render(fmt.Sprintf("%d result(s)", total))
	}
	return countStyle.Render(fmt.Sprintf("%d of %d result(s) shown", shown, total))
}
