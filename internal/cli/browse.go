package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/valter-silva-au/task-tracker/pkg/models"
)

// Browser tab indices.
const (
	tabActive = iota
	tabCompleted
	tabCount
)

type browseModel struct {
	activeTab int
	cursor    int
	expanded  bool
	width     int
	height    int

	active    []models.Task
	completed []models.Task

	loading bool
	err     error
}

// tasksLoadedMsg carries both collections back to the model.
type tasksLoadedMsg struct {
	active    []models.Task
	completed []models.Task
	err       error
}

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
	cursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	detailStyle    = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

func newBrowseModel() browseModel {
	return browseModel{
		activeTab: tabActive,
		loading:   true,
	}
}

func (m browseModel) Init() tea.Cmd {
	return loadTasks
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			m.cursor, m.expanded = 0, false
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
			m.cursor, m.expanded = 0, false
			return m, nil
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}
			return m, nil
		case "enter", " ":
			if len(m.visible()) > 0 {
				m.expanded = !m.expanded
			}
			return m, nil
		case "r":
			m.loading = true
			return m, loadTasks
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tasksLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.active = msg.active
		m.completed = msg.completed
		m.err = nil
		if n := len(m.visible()); m.cursor >= n {
			m.cursor = max(n-1, 0)
		}
		return m, nil
	}

	return m, nil
}

// visible returns the tasks on the current tab.
func (m browseModel) visible() []models.Task {
	if m.activeTab == tabCompleted {
		return m.completed
	}
	return m.active
}

func (m browseModel) View() string {
	title := titleStyle.Render(" tt ")
	help := helpStyle.Render("tab: switch list | j/k: move | enter: notes | r: reload | q: quit")

	if m.loading {
		return fmt.Sprintf("%s\n\n  Loading tasks...\n\n%s", title, help)
	}
	if m.err != nil {
		return fmt.Sprintf("%s\n\n  Error: %s\n\n%s", title, m.err, help)
	}

	tabs := []string{
		fmt.Sprintf("Active (%d)", len(m.active)),
		fmt.Sprintf("Completed (%d)", len(m.completed)),
	}
	for i := range tabs {
		if i == m.activeTab {
			tabs[i] = activeTabStyle.Render(tabs[i])
		} else {
			tabs[i] = tabStyle.Render(tabs[i])
		}
	}

	var b strings.Builder
	tasks := m.visible()
	if len(tasks) == 0 {
		b.WriteString("  No tasks found.\n")
	}
	for i, task := range tasks {
		line := fmt.Sprintf("%s  %s", task.ID, singleLine(task.Title))
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	body := b.String()
	if m.expanded && m.cursor < len(tasks) {
		detail := renderTaskDetail(tasks[m.cursor])
		if m.width > 4 {
			detail = detailStyle.Width(m.width - 4).Render(strings.TrimRight(detail, "\n"))
		} else {
			detail = detailStyle.Render(strings.TrimRight(detail, "\n"))
		}
		body += "\n" + detail + "\n"
	}

	return fmt.Sprintf("%s %s\n\n%s\n%s", title, lipgloss.JoinHorizontal(lipgloss.Top, tabs...), body, help)
}

func loadTasks() tea.Msg {
	if TaskMgr == nil {
		return tasksLoadedMsg{err: fmt.Errorf("task manager not initialized")}
	}

	active, err := TaskMgr.ListTasks(models.ListActive)
	if err != nil {
		return tasksLoadedMsg{err: fmt.Errorf("loading active tasks: %w", err)}
	}
	completed, err := TaskMgr.ListTasks(models.ListCompleted)
	if err != nil {
		return tasksLoadedMsg{err: fmt.Errorf("loading completed tasks: %w", err)}
	}
	return tasksLoadedMsg{active: active, completed: completed}
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse tasks interactively",
	Long: `Open a read-only terminal view of active and completed tasks.

Switch lists with Tab, move with j/k or the arrow keys, expand a task's
notes with Enter, reload with r, quit with q.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}
		p := tea.NewProgram(newBrowseModel(), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
