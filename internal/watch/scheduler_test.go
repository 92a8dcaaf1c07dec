package watch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShouldFetch(t *testing.T) {
	interval := 180 * time.Second

	tests := []struct {
		name       string
		configured bool
		mode       Mode
		forced     bool
		elapsed    time.Duration
		want       bool
	}{
		{
			name:       "interval elapsed",
			configured: true,
			mode:       ModeMonitoring,
			elapsed:    180 * time.Second,
			want:       true,
		},
		{
			name:       "interval exceeded",
			configured: true,
			mode:       ModeMonitoring,
			elapsed:    181 * time.Second,
			want:       true,
		},
		{
			name:       "one second short of interval",
			configured: true,
			mode:       ModeMonitoring,
			elapsed:    179 * time.Second,
			want:       false,
		},
		{
			name:       "forced overrides interval",
			configured: true,
			mode:       ModeMonitoring,
			forced:     true,
			elapsed:    time.Second,
			want:       true,
		},
		{
			name:       "not configured never fetches",
			configured: false,
			mode:       ModeMonitoring,
			forced:     true,
			elapsed:    time.Hour,
			want:       false,
		},
		{
			name:       "form mode never fetches",
			configured: true,
			mode:       ModeForm,
			forced:     true,
			elapsed:    time.Hour,
			want:       false,
		},
		{
			name:       "idle inside interval",
			configured: true,
			mode:       ModeMonitoring,
			elapsed:    time.Second,
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShouldFetch(tt.configured, tt.mode, tt.forced, tt.elapsed, interval)
			assert.Equal(t, tt.want, got)
		})
	}
}
