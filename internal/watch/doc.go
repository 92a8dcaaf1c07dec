// Package watch implements a real-time TUI dashboard for a single trading
// pair, polling DexScreener and sounding an alarm when a market-cap target
// is crossed.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm
// Architecture (Model-Update-View pattern):
//
//   - Model: Holds the dashboard state and drives the fetch schedule
//   - Update: Processes messages (keystrokes, ticks, fetch results)
//   - View: Renders the current state to a string for display
//
// # Key Components
//
//	App         - Domain state: config, latest snapshot, history, log, flags
//	Model       - The Bubble Tea model wrapping App, alarm, and fetcher
//	Coordinator - Owns the background alarm activity (at most one at a time)
//	History     - Ring buffer of market-cap samples (sparkline data)
//	Form        - Configuration form shown on first launch or on demand
//
// # Message Flow
//
// The dashboard operates on a tick-based schedule:
//
//  1. tickMsg fires every second as a schedule check
//  2. maybeFetchCmd starts an API lookup when the interval has elapsed (or
//     a refresh was forced) and no fetch is already in flight
//  3. fetchResultMsg or fetchErrMsg arrives, folding the result into App
//  4. View() re-renders the dashboard with new data
//
// A target crossing is detected inside ApplyFetchResult; the resulting edge
// starts the alarm exactly once, and the target-hit flag stays latched
// until the pair is reconfigured.
//
// # Keyboard Shortcuts
//
// Navigation and control is handled via keybindings defined in
// keybindings.go:
//
//	q, Esc, Ctrl+C   - Quit
//	r                - Force refresh
//	c                - Open the configuration form
//	s                - Stop a sounding alarm
//
// Inside the form, Tab/↓ and Shift+Tab/↑ move between fields, Enter
// applies the configuration, and Esc cancels (or quits on first launch).
package watch
