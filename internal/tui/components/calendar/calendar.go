// Package calendar renders one goal's completion ledger as a month grid.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kwheeler/goalpost/internal/engine"
	"github.com/kwheeler/goalpost/internal/models"
)

type KeyMap struct {
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevGoal  key.Binding
	NextGoal  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevMonth: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next month"),
		),
		PrevGoal: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev goal"),
		),
		NextGoal: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next goal"),
		),
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	todayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type Model struct {
	goals    []models.Goal
	selected int
	month    time.Time
	keys     KeyMap
}

func New(goals []models.Goal) Model {
	now := time.Now()
	return Model{
		goals: goals,
		month: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local),
		keys:  DefaultKeyMap(),
	}
}

// SetGoals replaces the goals shown, clamping the selection.
func (m *Model) SetGoals(goals []models.Goal) {
	m.goals = goals
	if m.selected >= len(goals) {
		m.selected = 0
	}
}

func (m Model) Keys() KeyMap { return m.keys }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.PrevMonth):
			m.month = m.month.AddDate(0, -1, 0)
		case key.Matches(msg, m.keys.NextMonth):
			m.month = m.month.AddDate(0, 1, 0)
		case key.Matches(msg, m.keys.PrevGoal):
			if m.selected > 0 {
				m.selected--
			}
		case key.Matches(msg, m.keys.NextGoal):
			if m.selected < len(m.goals)-1 {
				m.selected++
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.goals) == 0 {
		return "\n  No goals to chart."
	}

	g := m.goals[m.selected]
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s - %s", g.Title, m.month.Format("January 2006"))))
	b.WriteString(fmt.Sprintf("  (%d/%d)\n\n", m.selected+1, len(m.goals)))
	b.WriteString(dimStyle.Render("  Su  Mo  Tu  We  Th  Fr  Sa"))
	b.WriteString("\n")

	first := m.month
	daysInMonth := first.AddDate(0, 1, -1).Day()
	today := engine.DayKey(time.Now())

	b.WriteString(strings.Repeat("    ", int(first.Weekday())))
	completed := 0
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.Local)
		dayKey := engine.DayKey(date)
		cell := fmt.Sprintf(" %2d ", day)

		switch {
		case g.CompletedDays[dayKey]:
			completed++
			b.WriteString(doneStyle.Render(cell))
		case dayKey == today:
			b.WriteString(todayStyle.Render(cell))
		default:
			b.WriteString(cell)
		}
		if date.Weekday() == time.Saturday {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %d days completed this month", completed))
	return b.String()
}
