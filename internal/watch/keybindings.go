package watch

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Key bindings as constants for consistency.
const (
	KeyQuit      = "q"
	KeyQuitEsc   = "esc"
	KeyQuitAlt   = "ctrl+c"
	KeyRefresh   = "r"
	KeyConfigure = "c"
	KeyStopAlarm = "s"

	KeySubmit    = "enter"
	KeyFieldNext = "tab"
	KeyFieldDown = "down"
	KeyFieldPrev = "shift+tab"
	KeyFieldUp   = "up"
)

// HandleKeyMsg processes keyboard input for the current mode. Returns the
// command to run, and whether the key was consumed; unconsumed keys in form
// mode fall through to the active text input.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.app.Mode == ModeForm {
		return m.handleFormKey(msg)
	}
	return m.handleMonitorKey(msg)
}

func (m *Model) handleMonitorKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case KeyQuit, KeyQuitEsc, KeyQuitAlt:
		m.quit()
		return true, tea.Quit

	case KeyRefresh:
		m.forced = true
		m.app.AddLog("🔄 Manual refresh triggered")
		return true, m.maybeFetchCmd()

	case KeyConfigure:
		m.app.OpenForm()
		return true, nil

	case KeyStopAlarm:
		if m.alarm.Active() {
			m.alarm.Stop()
			m.app.AlarmActive = false
			m.app.AddLog("🔇 Alarm stopped manually")
		}
		return true, nil
	}

	return false, nil
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case KeyQuitAlt:
		m.quit()
		return true, tea.Quit

	case KeyQuitEsc:
		// On first launch the form is the only UI, so cancelling quits.
		if !m.app.Configured {
			m.quit()
			return true, tea.Quit
		}
		m.app.CloseForm()
		return true, nil

	case KeySubmit:
		if m.app.SubmitForm() {
			// A new session starts here. Invalidate any fetch still in
			// flight from the old configuration so its result cannot
			// seed the clean slate.
			m.generation++
			m.fetching = false
			m.lastFetch = time.Time{}
			m.forced = true
			return true, m.maybeFetchCmd()
		}
		// Blank address: stay in the form.
		return true, nil

	case KeyFieldNext, KeyFieldDown:
		m.app.Form.Next()
		return true, nil

	case KeyFieldPrev, KeyFieldUp:
		m.app.Form.Prev()
		return true, nil
	}

	// Everything else is text entry for the active field.
	return true, m.app.Form.Update(msg)
}
