package watch

import (
	"os"
	"os/exec"
	"sync/atomic"
	"time"

	"github.com/muesli/termenv"

	"github.com/anjalxbt/mooncap/internal/logger"
)

// alarmPollInterval is the quantum at which the sounding goroutine checks
// the stop flag. Stopping is best-effort within one quantum.
const alarmPollInterval = 100 * time.Millisecond

// bellInterval spaces out terminal bells so they read as an alarm rather
// than noise.
const bellInterval = 2 * time.Second

// Handle is the stop handle for one alarm activity. The stop flag is the
// only state shared between the event loop and the sounding goroutine.
type Handle struct {
	stop atomic.Bool
	done atomic.Bool
}

// Coordinator owns at most one outstanding alarm activity. Start is
// guarded so repeated target-hit detections while already sounding never
// spawn a second one; Stop is idempotent.
type Coordinator struct {
	handle *Handle
	log    logger.Logger

	// notify pushes a terminal notification when the alarm starts.
	// Swappable in tests.
	notify func(title, body string)

	// sound runs the audible part of the alarm. Swappable in tests.
	sound func(mediaFile string, duration time.Duration, h *Handle)
}

// NewCoordinator creates an idle alarm coordinator.
func NewCoordinator() *Coordinator {
	return &Coordinator{
		log:    logger.NewEnvLogger("[alarm]"),
		notify: notifyTerminal,
		sound:  soundAlarm,
	}
}

// Active reports whether an alarm activity is outstanding. A naturally
// finished activity is reaped here, returning the coordinator to idle.
func (c *Coordinator) Active() bool {
	if c.handle == nil {
		return false
	}
	if c.handle.done.Load() {
		c.handle = nil
		return false
	}
	return true
}

// Start begins sounding the alarm in the background. A no-op while an
// alarm activity is already outstanding.
func (c *Coordinator) Start(mediaFile string, duration time.Duration) {
	if c.Active() {
		return
	}

	h := &Handle{}
	c.handle = h
	c.log.Debug("starting alarm (media=%q duration=%s)", mediaFile, duration)
	c.notify("mooncap", "Target market cap hit")

	go func() {
		c.sound(mediaFile, duration, h)
		h.done.Store(true)
	}()
}

// Stop signals the outstanding alarm activity to end and releases the
// handle. Stopping an idle coordinator is a no-op.
func (c *Coordinator) Stop() {
	if c.handle == nil {
		return
	}
	c.handle.stop.Store(true)
	c.handle = nil
	c.log.Debug("alarm stopped")
}

// notifyTerminal emits an OSC notification so terminals that support it
// surface the target hit even when the window is unfocused.
func notifyTerminal(title, body string) {
	out := termenv.NewOutput(os.Stderr)
	out.Notify(title, body)
}

// audioPlayers are tried in order when a media file is configured.
var audioPlayers = []struct {
	name string
	args []string
}{
	{"afplay", nil},
	{"paplay", nil},
	{"aplay", nil},
	{"mpv", []string{"--no-terminal", "--no-video"}},
	{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
}

// soundAlarm plays the configured media file on repeat through a system
// audio player, falling back to the terminal bell when no player is
// available or playback fails. Runs until the duration elapses or the
// stop flag is set.
func soundAlarm(mediaFile string, duration time.Duration, h *Handle) {
	deadline := time.Now().Add(duration)

	if mediaFile != "" {
		if player, args := findPlayer(); player != "" {
			if playMediaAlarm(player, args, mediaFile, deadline, h) {
				return
			}
			// Playback failed; fall through to the bell.
		}
	}

	playBellAlarm(deadline, h)
}

// findPlayer returns the first available audio player on PATH.
func findPlayer() (string, []string) {
	for _, p := range audioPlayers {
		if _, err := exec.LookPath(p.name); err == nil {
			return p.name, p.args
		}
	}
	return "", nil
}

// playMediaAlarm loops the media file until the deadline or stop flag.
// Returns false when the player could not be started at all, so the
// caller can fall back to the bell.
func playMediaAlarm(player string, args []string, mediaFile string, deadline time.Time, h *Handle) bool {
	started := false

	for time.Now().Before(deadline) && !h.stop.Load() {
		cmd := exec.Command(player, append(append([]string{}, args...), mediaFile)...)
		if err := cmd.Start(); err != nil {
			return started
		}
		started = true

		finished := make(chan error, 1)
		go func() { finished <- cmd.Wait() }()

	wait:
		for {
			select {
			case <-finished:
				break wait
			case <-time.After(alarmPollInterval):
				if h.stop.Load() || !time.Now().Before(deadline) {
					_ = cmd.Process.Kill()
					<-finished
					return true
				}
			}
		}
	}

	return true
}

// playBellAlarm emits a terminal bell every couple of seconds until the
// deadline or stop flag.
func playBellAlarm(deadline time.Time, h *Handle) {
	for time.Now().Before(deadline) && !h.stop.Load() {
		os.Stderr.WriteString("\a")

		// Sleep in poll-sized slices so a stop lands quickly.
		slept := time.Duration(0)
		for slept < bellInterval {
			if h.stop.Load() || !time.Now().Before(deadline) {
				return
			}
			time.Sleep(alarmPollInterval)
			slept += alarmPollInterval
		}
	}
}
