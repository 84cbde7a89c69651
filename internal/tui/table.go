package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/samandr77/microservices/onboarding/internal/entity"
)

const emptyList = "No applications found."

var Headers = []string{"Name", "Firm", "Mobile", "PAN", "Status"}

func Row(app entity.Application) []string {
	return []string{app.Name, app.Firm, app.Mobile, app.PAN, app.Status}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// RenderTable draws items as a bordered table followed by the range footer.
func RenderTable(items []entity.Application, page, size, totalPages, totalElements int) string {
	if len(items) == 0 {
		return mutedStyle.Render(emptyList)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(Headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})

	for _, app := range items {
		t.Row(Row(app)...)
	}

	return t.Render() + "\n" + mutedStyle.Render(Footer(page, size, totalPages, totalElements))
}

// Footer describes the visible range, e.g. "Showing 31-42 of 42 (page 3/3)".
func Footer(page, size, totalPages, totalElements int) string {
	first, last := entity.Range(page, size, totalElements)
	if totalElements == 0 {
		return "Showing 0 of 0"
	}

	return fmt.Sprintf("Showing %d-%d of %d (page %d/%d)", first, last, totalElements, page, totalPages)
}

// RenderErrors lists field errors in field order.
func RenderErrors(fields []string, messages map[string]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers("Field", "Error").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return errorStyle.Padding(0, 1)
			default:
				return cellStyle
			}
		})

	for _, f := range fields {
		t.Row(f, messages[f])
	}

	return t.Render()
}
