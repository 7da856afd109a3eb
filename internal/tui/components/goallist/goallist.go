package goallist

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kwheeler/goalpost/internal/models"
)

type TapMsg struct {
	ID string
}

type UntapMsg struct {
	ID string
}

type ArchiveMsg struct {
	ID string
}

type DeleteMsg struct {
	ID string
}

type AddMsg struct{}

type Item struct {
	Goal models.Goal
}

func (i Item) Title() string {
	if i.Goal.IsCompleted {
		return "✓ " + i.Goal.Title
	}
	return "○ " + i.Goal.Title
}

func (i Item) Description() string {
	done := int(math.Round(i.Goal.Progress * float64(i.Goal.TotalSegments) / 100))
	bar := strings.Repeat("█", done) + strings.Repeat("░", i.Goal.TotalSegments-done)
	return fmt.Sprintf("%s %.0f%% | %d days completed", bar, i.Goal.Progress, len(i.Goal.CompletedDays))
}

func (i Item) FilterValue() string { return i.Goal.Title }

type KeyMap struct {
	Tap     key.Binding
	Untap   key.Binding
	Add     key.Binding
	Archive key.Binding
	Delete  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tap: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "tap"),
		),
		Untap: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo tap"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add goal"),
		),
		Archive: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "archive"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(goals []models.Goal, width, height int) Model {
	l := list.New(toItems(goals), list.NewDefaultDelegate(), width, height)
	l.Title = "Today"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is rendered globally

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Tap, keys.Add, keys.Archive}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Tap, keys.Untap, keys.Add, keys.Archive, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func toItems(goals []models.Goal) []list.Item {
	items := make([]list.Item, len(goals))
	for i, g := range goals {
		items[i] = Item{Goal: g}
	}
	return items
}

// SetGoals replaces the listed goals, keeping the cursor in range.
func (m *Model) SetGoals(goals []models.Goal) {
	m.list.SetItems(toItems(goals))
}

// Selected returns the goal under the cursor.
func (m Model) Selected() (models.Goal, bool) {
	if i, ok := m.list.SelectedItem().(Item); ok {
		return i.Goal, true
	}
	return models.Goal{}, false
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Tap):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return TapMsg{ID: i.Goal.ID} }
			}
		case key.Matches(msg, m.keys.Untap):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return UntapMsg{ID: i.Goal.ID} }
			}
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddMsg{} }
		case key.Matches(msg, m.keys.Archive):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ArchiveMsg{ID: i.Goal.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteMsg{ID: i.Goal.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No goals yet.\n  Press 'a' to add one from the catalog."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
