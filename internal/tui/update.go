package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/kwheeler/goalpost/internal/catalog"
	"github.com/kwheeler/goalpost/internal/engine"
	"github.com/kwheeler/goalpost/internal/tui/components/goallist"
	"github.com/kwheeler/goalpost/internal/tui/components/habitlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.goalList.SetSize(msg.Width-4, msg.Height-6)
		m.habitList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		// A key press after midnight lands on a new day.
		if m.sess.EnsureDailyReset() {
			m.refresh()
			m.status = "New day! Progress has been reset."
		}
	}

	switch m.state {
	case StateAddGoal, StateAddHabit:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	return m.updateTabs(msg)
}

func (m Model) updateTabs(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case goallist.TapMsg:
		_, ev, err := m.sess.Advance(msg.ID)
		m.setActionStatus(ev, err)
		m.refresh()
		return m, nil

	case goallist.UntapMsg:
		if _, _, err := m.sess.Retreat(msg.ID); err != nil {
			m.status = err.Error()
		} else {
			m.status = ""
		}
		m.refresh()
		return m, nil

	case goallist.AddMsg:
		m.previousState = m.state
		m.state = StateAddGoal
		m.goalForm = &GoalFormModel{}
		m.form = NewGoalForm(m.goalForm)
		return m, m.form.Init()

	case goallist.ArchiveMsg:
		if err := m.sess.Archive(msg.ID); err != nil {
			m.status = err.Error()
		} else {
			m.status = "Archived. Re-add the same goal later to restore its history."
		}
		m.refresh()
		return m, nil

	case goallist.DeleteMsg:
		m.previousState = m.state
		m.state = StateConfirmDelete
		m.goalToDeleteID = msg.ID
		return m, nil

	case habitlist.AddHabitMsg:
		m.previousState = m.state
		m.state = StateAddHabit
		m.habitForm = &HabitFormModel{Segments: "1", Color: "blue"}
		m.form = NewHabitForm(m.habitForm)
		return m, m.form.Init()

	case habitlist.TrackHabitMsg:
		if g, err := m.sess.AddGoalFromCustomHabit(msg.ID); err != nil {
			m.status = err.Error()
		} else {
			m.status = fmt.Sprintf("Now tracking %s", g.Title)
		}
		m.refresh()
		return m, nil

	case habitlist.DeleteHabitMsg:
		if err := m.sess.RemoveCustomHabit(msg.ID); err != nil {
			m.status = err.Error()
		} else {
			m.status = "Habit removed. Goals created from it are unaffected."
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case StateToday:
		m.goalList, cmd = m.goalList.Update(msg)
	case StateCalendar:
		m.calendar, cmd = m.calendar.Update(msg)
	case StateHabits:
		m.habitList, cmd = m.habitList.Update(msg)
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.state == StateAddGoal {
			m.submitGoalForm()
		} else {
			m.submitHabitForm()
		}
		m.state = m.previousState
		m.form = nil
		m.refresh()
		return m, nil
	case huh.StateAborted:
		m.state = m.previousState
		m.form = nil
		m.status = ""
		return m, nil
	}
	return m, cmd
}

func (m *Model) submitGoalForm() {
	t, ok := catalog.Find(m.goalForm.TemplateID)
	if !ok {
		m.status = "Unknown catalog template."
		return
	}
	g, err := m.sess.AddGoal(t)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("Added %s", g.Title)
}

func (m *Model) submitHabitForm() {
	segments, err := strconv.Atoi(m.habitForm.Segments)
	if err != nil {
		m.status = "Segments must be a number."
		return
	}

	h, err := m.sess.AddCustomHabit(m.habitForm.Title, m.habitForm.Description, m.habitForm.Color, segments)
	if err != nil {
		m.status = err.Error()
		return
	}

	if m.habitForm.Track {
		if _, err := m.sess.AddGoalFromCustomHabit(h.ID); err != nil {
			m.status = err.Error()
			return
		}
		m.status = fmt.Sprintf("Created and tracking %s", h.Title)
		return
	}
	m.status = fmt.Sprintf("Created habit %s", h.Title)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			if err := m.sess.Delete(m.goalToDeleteID); err != nil {
				m.status = err.Error()
			} else {
				m.status = "Goal deleted."
			}
			m.goalToDeleteID = ""
			m.state = m.previousState
			m.refresh()
		case "n", "N", "esc", "q":
			m.goalToDeleteID = ""
			m.state = m.previousState
		}
	}
	return m, nil
}

func (m *Model) setActionStatus(ev engine.Event, err error) {
	switch {
	case err != nil:
		m.status = err.Error()
	case ev == engine.EventCompleted:
		m.status = "Goal completed for today!"
	case ev == engine.EventUncompleted:
		m.status = "Goal restarted at 0%."
	default:
		m.status = ""
	}
}
