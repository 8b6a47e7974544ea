package cli

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/valter-silva-au/task-tracker/pkg/models"
)

func loadedBrowseModel(t *testing.T) browseModel {
	t.Helper()
	m := newBrowseModel()
	updated, _ := m.Update(tasksLoadedMsg{
		active: []models.Task{
			{ID: "aaaa0001", Title: "first", State: models.StateActive},
			{ID: "aaaa0002", Title: "second", Notes: "[2026-03-14 09:26] hello", State: models.StateActive},
		},
		completed: []models.Task{
			{ID: "cccc0001", Title: "done one", State: models.StateCompleted},
		},
	})
	return updated.(browseModel)
}

func press(m browseModel, key string) browseModel {
	var msg tea.KeyMsg
	switch key {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, _ := m.Update(msg)
	return updated.(browseModel)
}

func TestBrowseModel_Init(t *testing.T) {
	m := newBrowseModel()
	if m.activeTab != tabActive {
		t.Errorf("activeTab = %d, want %d", m.activeTab, tabActive)
	}
	if !m.loading {
		t.Error("expected loading = true on init")
	}
	if m.Init() == nil {
		t.Error("expected Init to return a load command")
	}
	if !strings.Contains(m.View(), "Loading") {
		t.Error("view should show loading state")
	}
}

func TestBrowseModel_TabSwitching(t *testing.T) {
	m := loadedBrowseModel(t)

	m = press(m, "tab")
	if m.activeTab != tabCompleted {
		t.Errorf("after tab: activeTab = %d", m.activeTab)
	}
	m = press(m, "tab")
	if m.activeTab != tabActive {
		t.Errorf("tab should wrap around, got %d", m.activeTab)
	}
	m = press(m, "shift+tab")
	if m.activeTab != tabCompleted {
		t.Errorf("shift+tab should wrap backwards, got %d", m.activeTab)
	}
}

func TestBrowseModel_CursorBounds(t *testing.T) {
	m := loadedBrowseModel(t)

	m = press(m, "up")
	if m.cursor != 0 {
		t.Errorf("cursor should not go below 0, got %d", m.cursor)
	}
	m = press(m, "j")
	m = press(m, "down")
	if m.cursor != 1 {
		t.Errorf("cursor should stop at last task, got %d", m.cursor)
	}
	m = press(m, "k")
	if m.cursor != 0 {
		t.Errorf("cursor = %d after k, want 0", m.cursor)
	}

	m = press(m, "j")
	m = press(m, "tab")
	if m.cursor != 0 {
		t.Errorf("switching tabs should reset the cursor, got %d", m.cursor)
	}
}

func TestBrowseModel_ExpandShowsNotes(t *testing.T) {
	m := loadedBrowseModel(t)
	m = press(m, "down")
	m = press(m, "enter")

	if !m.expanded {
		t.Fatal("enter should expand the selected task")
	}
	if !strings.Contains(m.View(), "[2026-03-14 09:26] hello") {
		t.Errorf("expanded view should show notes:\n%s", m.View())
	}

	m = press(m, "enter")
	if m.expanded {
		t.Error("enter again should collapse")
	}
}

func TestBrowseModel_View(t *testing.T) {
	m := loadedBrowseModel(t)
	view := m.View()
	for _, want := range []string{"Active (2)", "Completed (1)", "aaaa0001", "first"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "cccc0001") {
		t.Error("completed tasks should not show on the active tab")
	}

	m = press(m, "tab")
	if !strings.Contains(m.View(), "cccc0001") {
		t.Error("completed tab should list completed tasks")
	}
}

func TestBrowseModel_LoadError(t *testing.T) {
	m := newBrowseModel()
	updated, _ := m.Update(tasksLoadedMsg{err: errors.New("disk on fire")})
	got := updated.(browseModel)

	if got.loading {
		t.Error("loading should be cleared")
	}
	if !strings.Contains(got.View(), "disk on fire") {
		t.Errorf("view should show the error:\n%s", got.View())
	}
}

func TestBrowseModel_QuitAndReload(t *testing.T) {
	m := loadedBrowseModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if !updated.(browseModel).loading || cmd == nil {
		t.Error("r should start a reload")
	}
}

func TestLoadTasks(t *testing.T) {
	tm, _ := useFileTaskManager(t)
	a, _ := tm.CreateTask("open", "")
	b, _ := tm.CreateTask("closed", "")
	if _, err := tm.CompleteTask(b.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg, ok := loadTasks().(tasksLoadedMsg)
	if !ok {
		t.Fatal("loadTasks should return tasksLoadedMsg")
	}
	if msg.err != nil {
		t.Fatalf("unexpected error: %v", msg.err)
	}
	if len(msg.active) != 1 || msg.active[0].ID != a.ID {
		t.Errorf("active = %+v", msg.active)
	}
	if len(msg.completed) != 1 || msg.completed[0].ID != b.ID {
		t.Errorf("completed = %+v", msg.completed)
	}
}

func TestLoadTasks_NilTaskManager(t *testing.T) {
	useTaskMgr(t, nil)

	msg := loadTasks().(tasksLoadedMsg)
	if msg.err == nil {
		t.Error("expected error when task manager is nil")
	}
}
