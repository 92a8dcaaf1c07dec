package watch

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/anjalxbt/mooncap/internal/config"
)

// Mode is the current UI mode of the watcher.
type Mode int

const (
	// ModeMonitoring shows the live dashboard.
	ModeMonitoring Mode = iota
	// ModeForm shows the configuration form.
	ModeForm
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeMonitoring:
		return "monitoring"
	case ModeForm:
		return "configuring"
	default:
		return "unknown"
	}
}

// App aggregates the full watcher state: configuration, the latest
// snapshot, bounded history and log, counters, alarm/target flags, and the
// UI mode. It is owned and mutated exclusively by the event loop; the view
// only reads it.
type App struct {
	Config *config.Config

	// Snapshot is nil until the first successful fetch.
	Snapshot *Snapshot
	History  *History
	Log      *LogBuffer

	FetchCount uint64
	ErrorCount uint64

	// TargetHit is monotonic: once true it stays true until a full
	// reconfiguration resets the session.
	TargetHit   bool
	AlarmActive bool
	Configured  bool
	Running     bool

	Mode Mode
	Form *Form

	// LastFetchAt is the wall-clock time of the last successful fetch,
	// formatted for the stats panel. Empty before the first fetch.
	LastFetchAt string

	// now is swappable for tests.
	now func() time.Time
}

// NewApp creates the application state. When the config carries a pair
// address the app starts monitoring immediately; otherwise it opens the
// configuration form as the only UI.
func NewApp(cfg *config.Config) *App {
	a := &App{
		Config:  cfg,
		History: NewHistory(HistorySize),
		Log:     NewLogBuffer(LogSize),
		Running: true,
		now:     time.Now,
	}

	if cfg.Configured() {
		a.Configured = true
		a.Mode = ModeMonitoring
		a.AddLog(fmt.Sprintf("Monitoring %s on %s", cfg.PairAddress, cfg.Chain))
	} else {
		a.Mode = ModeForm
		a.Form = NewForm(cfg)
	}

	return a
}

// ApplyFetchResult folds one successful fetch into the state. It returns
// true when this result newly reached the target, which is the single edge
// that may start the alarm.
func (a *App) ApplyFetchResult(snap Snapshot) (targetJustHit bool) {
	// Keep the previous token identity when the source omitted it, so a
	// sparse record does not blank the header.
	if prev := a.Snapshot; prev != nil {
		if snap.TokenName == "" {
			snap.TokenName = prev.TokenName
		}
		if snap.TokenSymbol == "" {
			snap.TokenSymbol = prev.TokenSymbol
		}
	}
	a.Snapshot = &snap

	mcap := snap.MarketCapUsd
	if mcap < 0 {
		mcap = 0
	}
	a.History.Push(uint64(math.Round(mcap)))

	a.FetchCount++
	a.LastFetchAt = a.now().Format("15:04:05")

	a.AddLog(fmt.Sprintf("MCap: $%.0f | Price: $%.8f | 1h: %s",
		snap.MarketCapUsd, snap.PriceUsd, FormatChange(snap.PriceChange1hPct)))

	if snap.MarketCapUsd >= a.Config.TargetMarketCap && !a.TargetHit {
		a.TargetHit = true
		a.AlarmActive = true
		a.AddLog(fmt.Sprintf("🔥 TARGET HIT! Market cap reached $%.0f 🔥", snap.MarketCapUsd))
		return true
	}

	return false
}

// ApplyFetchError records a failed fetch. Errors never interrupt
// monitoring and never touch the alarm or target state.
func (a *App) ApplyFetchError(msg string) {
	a.ErrorCount++
	a.AddLog("❌ Error: " + msg)
}

// AddLog appends a timestamped line to the bounded log.
func (a *App) AddLog(msg string) {
	a.Log.Append(fmt.Sprintf("[%s] %s", a.now().Format("15:04:05"), msg))
}

// ProgressPercent returns how far the current market cap is toward the
// target, clamped to 100. A non-positive target yields 0.
func (a *App) ProgressPercent() float64 {
	if a.Config.TargetMarketCap <= 0 {
		return 0
	}
	var mcap float64
	if a.Snapshot != nil {
		mcap = a.Snapshot.MarketCapUsd
	}
	return math.Min(mcap/a.Config.TargetMarketCap*100, 100)
}

// OpenForm pre-fills the configuration form from the current config and
// switches to form mode. Legal in both modes.
func (a *App) OpenForm() {
	a.Form = NewForm(a.Config)
	a.Mode = ModeForm
}

// CloseForm returns to monitoring without touching the configuration.
// Callers must only close the form when the app is configured; on first
// launch the form is the only UI and cancelling it quits instead.
func (a *App) CloseForm() {
	a.Mode = ModeMonitoring
}

// SubmitForm validates the form and, on success, atomically replaces the
// configuration and resets all live state so monitoring starts from a
// clean slate. Returns false (and leaves everything untouched) when the
// address field is blank.
func (a *App) SubmitForm() bool {
	if a.Form == nil {
		return false
	}

	addr := strings.TrimSpace(a.Form.Value(FieldAddress))
	if addr == "" {
		return false
	}

	cfg := &config.Config{
		PairAddress:          addr,
		Chain:                config.NormalizeChain(a.Form.Value(FieldChain)),
		TargetMarketCap:      config.ParseTarget(a.Form.Value(FieldTarget)),
		IntervalSeconds:      config.ParseIntervalSeconds(a.Form.Value(FieldInterval)),
		AlarmFile:            a.Config.AlarmFile,
		AlarmDurationSeconds: a.Config.AlarmDurationSeconds,
	}

	a.Config = cfg
	a.Snapshot = nil
	a.History = NewHistory(HistorySize)
	a.Log = NewLogBuffer(LogSize)
	a.FetchCount = 0
	a.ErrorCount = 0
	a.TargetHit = false
	a.AlarmActive = false
	a.LastFetchAt = ""
	a.Configured = true
	a.Mode = ModeMonitoring

	a.AddLog(fmt.Sprintf("Monitoring %s on %s (target $%s)",
		cfg.PairAddress, cfg.Chain, strconv.FormatFloat(cfg.TargetMarketCap, 'f', -1, 64)))

	return true
}
