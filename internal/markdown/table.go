package markdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rogersnm/almanac/internal/model"
)

var (
	headerRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle      = lipgloss.NewStyle()
)

func RenderSummaryTable(items []model.Summary) string {
	if len(items) == 0 {
		return "No documents found."
	}
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = []string{
			item.ID,
			item.Meta.Name,
			item.Meta.Category,
			item.Meta.Author,
			strings.Join(item.Meta.Tags, ", "),
			item.Meta.LastUpdated.String(),
		}
	}
	return renderTable([]string{"ID", "Name", "Category", "Author", "Tags", "Updated"}, rows)
}

func RenderKeyTable(header string, keys []string) string {
	if len(keys) == 0 {
		return "No entries."
	}
	rows := make([][]string, len(keys))
	for i, k := range keys {
		rows[i] = []string{k}
	}
	return renderTable([]string{header}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerRowStyle
			}
			return cellStyle
		})
	return t.Render()
}
