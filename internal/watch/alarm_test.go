package watch

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anjalxbt/mooncap/internal/logger"
)

// newTestCoordinator returns a coordinator whose sounding goroutine just
// waits for the stop flag, and a counter of how many times it started.
func newTestCoordinator() (*Coordinator, *atomic.Int32) {
	var starts atomic.Int32

	c := NewCoordinator()
	c.notify = func(title, body string) {}
	c.sound = func(mediaFile string, duration time.Duration, h *Handle) {
		starts.Add(1)
		deadline := time.Now().Add(duration)
		for time.Now().Before(deadline) && !h.stop.Load() {
			time.Sleep(time.Millisecond)
		}
	}

	return c, &starts
}

func TestCoordinatorStartAndStop(t *testing.T) {
	c, starts := newTestCoordinator()

	assert.False(t, c.Active())

	c.Start("", time.Second)
	assert.True(t, c.Active())

	c.Stop()
	assert.False(t, c.Active())

	assert.Eventually(t, func() bool { return starts.Load() == 1 },
		time.Second, 5*time.Millisecond)
}

func TestCoordinatorStartWhileSoundingIsNoop(t *testing.T) {
	c, starts := newTestCoordinator()

	c.Start("", time.Second)
	c.Start("", time.Second)
	c.Start("", time.Second)

	assert.True(t, c.Active())
	c.Stop()

	assert.Eventually(t, func() bool { return starts.Load() == 1 },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), starts.Load(), "only one alarm activity may run at a time")
}

func TestCoordinatorStopIsIdempotent(t *testing.T) {
	c, _ := newTestCoordinator()

	c.Stop() // idle stop is a no-op
	assert.False(t, c.Active())

	c.Start("", time.Second)
	c.Stop()
	c.Stop()
	assert.False(t, c.Active())
}

func TestCoordinatorNaturalFinishReturnsToIdle(t *testing.T) {
	c, _ := newTestCoordinator()

	c.Start("", 10*time.Millisecond)

	require.Eventually(t, func() bool { return !c.Active() },
		time.Second, 5*time.Millisecond,
		"coordinator reaps a finished activity")

	// A new alarm can start after the previous one ran out.
	c.Start("", time.Second)
	assert.True(t, c.Active())
	c.Stop()
}

func TestCoordinatorNotifiesOnStart(t *testing.T) {
	c, _ := newTestCoordinator()

	var notified atomic.Bool
	c.notify = func(title, body string) {
		notified.Store(true)
	}

	c.Start("", time.Second)
	defer c.Stop()

	assert.True(t, notified.Load())
}

func TestCoordinatorLogsLifecycle(t *testing.T) {
	c, _ := newTestCoordinator()
	buf := logger.NewBufferLogger()
	c.log = buf

	c.Start("chime.wav", time.Second)
	c.Stop()

	require.Len(t, buf.Messages, 2)
	assert.Contains(t, buf.Messages[0].Message, "starting alarm")
	assert.Contains(t, buf.Messages[0].Message, "chime.wav")
	assert.Contains(t, buf.Messages[1].Message, "alarm stopped")
}

func TestFindPlayerMissingBinaries(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	player, _ := findPlayer()
	assert.Empty(t, player, "no audio players on an empty PATH")
}

func TestPlayBellAlarmRespectsStop(t *testing.T) {
	h := &Handle{}
	h.stop.Store(true)

	done := make(chan struct{})
	go func() {
		playBellAlarm(time.Now().Add(time.Hour), h)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("bell loop did not exit after stop")
	}
}

func TestPlayBellAlarmRespectsDeadline(t *testing.T) {
	h := &Handle{}

	done := make(chan struct{})
	go func() {
		playBellAlarm(time.Now().Add(-time.Second), h)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("bell loop did not exit after deadline")
	}
}
