package watch

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anjalxbt/mooncap/internal/dex"
)

// Fetcher looks up the watched pair. Satisfied by *dex.Client; swappable
// in tests.
type Fetcher interface {
	FetchPair(ctx context.Context, chain, address string) (*dex.Pair, error)
}

// scheduleInterval is how often the model re-evaluates whether a fetch is
// due. Much shorter than the fetch interval so forced refreshes feel
// immediate.
const scheduleInterval = time.Second

// spinnerInterval is the animation frame rate for the fetch spinner.
const spinnerInterval = 150 * time.Millisecond

// fetchTimeout bounds one API round trip.
const fetchTimeout = 15 * time.Second

// Model is the Bubble Tea model for the watcher dashboard. All state
// mutation happens inside Update; the fetch itself runs as a command and
// reports back via fetchResultMsg or fetchErrMsg. At most one fetch is in
// flight at a time.
type Model struct {
	app     *App
	alarm   *Coordinator
	fetcher Fetcher

	// lastFetch is when the last fetch started. Zero before the first
	// one, which makes the first scheduled fetch due immediately.
	lastFetch time.Time
	forced    bool
	fetching  bool

	// generation identifies the current monitoring session. Each fetch
	// command is stamped with it, and reconfiguring bumps it, so a result
	// from a fetch started under the old configuration is discarded
	// instead of seeding the fresh session.
	generation int

	width  int
	height int

	spinnerFrame int
	quitting     bool

	// now is swappable for tests.
	now func() time.Time
}

// tickMsg signals a schedule check.
type tickMsg time.Time

// spinnerTickMsg signals a spinner animation frame update.
type spinnerTickMsg time.Time

// fetchResultMsg carries the snapshot from a successful fetch.
type fetchResultMsg struct {
	gen  int
	snap Snapshot
}

// fetchErrMsg carries a failed fetch.
type fetchErrMsg struct {
	gen int
	err error
}

// NewModel creates the dashboard model. When the app starts configured the
// first fetch fires immediately rather than waiting out an interval.
func NewModel(app *App, fetcher Fetcher) Model {
	return Model{
		app:     app,
		alarm:   NewCoordinator(),
		fetcher: fetcher,
		forced:  app.Configured,
		now:     time.Now,
	}
}

// Init starts the spinner and fires an immediate schedule check, which
// triggers the first fetch right away when the app starts configured. The
// tick handler reschedules itself, so this is the only place a tick chain
// begins.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinnerTickCmd(),
		func() tea.Msg { return tickMsg(time.Now()) },
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		m.syncAlarmState()
		fetch := m.maybeFetchCmd()
		return m, tea.Batch(m.tickCmd(), fetch)

	case spinnerTickMsg:
		m.spinnerFrame = (m.spinnerFrame + 1) % len(FetchSpinnerFrames)
		return m, m.spinnerTickCmd()

	case fetchResultMsg:
		if msg.gen != m.generation {
			// Stale result from before a reconfiguration.
			return m, nil
		}
		m.fetching = false
		if m.app.ApplyFetchResult(msg.snap) && !m.alarm.Active() {
			m.alarm.Start(m.app.Config.AlarmFile, m.app.Config.AlarmDuration())
		}

	case fetchErrMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		m.fetching = false
		m.app.ApplyFetchError(msg.err.Error())
	}

	return m, nil
}

// View renders the dashboard or the configuration form.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.app.Mode == ModeForm {
		return m.renderForm()
	}
	return m.renderDashboard()
}

// quit shuts the watcher down, silencing any sounding alarm.
func (m *Model) quit() {
	m.quitting = true
	m.app.Running = false
	m.alarm.Stop()
}

// syncAlarmState clears the alarm flag once a sounding alarm has run out
// on its own. Manual stops clear it directly.
func (m *Model) syncAlarmState() {
	if m.app.AlarmActive && !m.alarm.Active() {
		m.app.AlarmActive = false
	}
}

// tickCmd returns a command that sends the next schedule check.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(scheduleInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// spinnerTickCmd returns a command that sends a spinner tick for animation.
func (m Model) spinnerTickCmd() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// maybeFetchCmd starts a fetch when one is due and none is in flight.
// Returns nil otherwise.
func (m *Model) maybeFetchCmd() tea.Cmd {
	if m.fetching {
		return nil
	}

	elapsed := m.app.Config.Interval()
	if !m.lastFetch.IsZero() {
		elapsed = m.now().Sub(m.lastFetch)
	}

	if !ShouldFetch(m.app.Configured, m.app.Mode, m.forced, elapsed, m.app.Config.Interval()) {
		return nil
	}

	m.fetching = true
	m.forced = false
	m.lastFetch = m.now()

	return m.fetchCmd(m.generation, m.app.Config.Chain, m.app.Config.PairAddress)
}

// fetchCmd performs one API lookup in the background, stamping the result
// with the session generation it was started under.
func (m Model) fetchCmd(gen int, chain, address string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		pair, err := m.fetcher.FetchPair(ctx, chain, address)
		if err != nil {
			return fetchErrMsg{gen: gen, err: err}
		}

		return fetchResultMsg{gen: gen, snap: SnapshotFromPair(pair)}
	}
}
