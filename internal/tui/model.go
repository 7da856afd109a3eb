package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/kwheeler/goalpost/internal/session"
	"github.com/kwheeler/goalpost/internal/tui/components/calendar"
	"github.com/kwheeler/goalpost/internal/tui/components/goallist"
	"github.com/kwheeler/goalpost/internal/tui/components/habitlist"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateCalendar
	StateHabits
	StateAddGoal
	StateAddHabit
	StateConfirmDelete
)

// tabCount covers the states reachable by tab cycling.
const tabCount = 3

type Model struct {
	sess          *session.Session
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	goalList  goallist.Model
	calendar  calendar.Model
	habitList habitlist.Model

	form           *huh.Form
	goalForm       *GoalFormModel
	habitForm      *HabitFormModel
	goalToDeleteID string
	status         string

	quitting bool
	width    int
	height   int
}

func NewModel(sess *session.Session) Model {
	goals := sess.Goals()
	return Model{
		sess:      sess,
		state:     StateToday,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		goalList:  goallist.New(goals, 0, 0),
		calendar:  calendar.New(goals),
		habitList: habitlist.New(sess.CustomHabits(), 0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateToday:
		gk := goallist.DefaultKeyMap()
		keys = append(keys, gk.Tap, gk.Add, gk.Archive)
	case StateCalendar:
		ck := m.calendar.Keys()
		keys = append(keys, ck.PrevMonth, ck.NextMonth)
	case StateHabits:
		hk := habitlist.DefaultKeyMap()
		keys = append(keys, hk.Add, hk.Track)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateToday:
		gk := goallist.DefaultKeyMap()
		actions = []key.Binding{gk.Tap, gk.Untap, gk.Add, gk.Archive, gk.Delete}
	case StateCalendar:
		ck := m.calendar.Keys()
		actions = []key.Binding{ck.PrevMonth, ck.NextMonth, ck.PrevGoal, ck.NextGoal}
	case StateHabits:
		hk := habitlist.DefaultKeyMap()
		actions = []key.Binding{hk.Add, hk.Track, hk.Delete}
	}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh re-reads session state into every component, after any
// mutation and after the midnight reset check.
func (m *Model) refresh() {
	goals := m.sess.Goals()
	m.goalList.SetGoals(goals)
	m.calendar.SetGoals(goals)
	m.habitList.SetHabits(m.sess.CustomHabits())
}
