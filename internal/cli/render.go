package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/valter-silva-au/task-tracker/pkg/models"
)

// noteColumnWidth is the widest the note column gets in list output.
// Longer notes are cut and suffixed with "...".
const noteColumnWidth = 40

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("245"))

	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	stateActiveStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	stateCompletedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// renderTaskTable renders tasks as a bordered grid with ID, title, state,
// and a truncated note column.
func renderTaskTable(tasks []models.Task) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorder).
		Headers("ID", "TITLE", "STATE", "NOTE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		})

	for _, task := range tasks {
		t.Row(task.ID, singleLine(task.Title), stateLabel(task.State), truncate(singleLine(task.Notes), noteColumnWidth))
	}
	return t.String()
}

// renderTaskDetail renders one task with its full note history.
func renderTaskDetail(task models.Task) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("ID:    "))
	b.WriteString(" " + task.ID + "\n")
	b.WriteString(labelStyle.Render("Title: "))
	b.WriteString(" " + task.Title + "\n")
	b.WriteString(labelStyle.Render("State: "))
	b.WriteString(" " + stateLabel(task.State) + "\n")
	b.WriteString(labelStyle.Render("Notes:"))
	b.WriteString("\n")
	if task.Notes == "" {
		b.WriteString("  (none)\n")
		return b.String()
	}
	for _, line := range strings.Split(task.Notes, "\n") {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

func stateLabel(state models.TaskState) string {
	switch state {
	case models.StateActive:
		return stateActiveStyle.Render("active")
	case models.StateCompleted:
		return stateCompletedStyle.Render("completed")
	default:
		return string(state)
	}
}

// singleLine folds line breaks so a multi-line value fits one table cell.
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " | ")
	s = strings.ReplaceAll(s, "\n", " | ")
	return strings.ReplaceAll(s, "\r", " ")
}

// truncate shortens s to at most limit runes, ending in "..." when cut.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= 3 {
		return string(r[:limit])
	}
	return string(r[:limit-3]) + "..."
}
