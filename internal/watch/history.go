package watch

// HistorySize is the number of market-cap samples retained for the trend
// sparkline.
const HistorySize = 60

// LogSize is the number of log lines retained.
const LogSize = 100

// History is a fixed-capacity ring buffer of market-cap samples in whole
// USD. On overflow the oldest sample is evicted. It feeds the trend
// display only and plays no part in alarm decisions.
type History struct {
	data  []uint64
	head  int
	count int
	size  int
}

// NewHistory creates an empty history with the given capacity.
func NewHistory(size int) *History {
	if size <= 0 {
		size = HistorySize
	}
	return &History{
		data: make([]uint64, size),
		size: size,
	}
}

// Push appends a sample, evicting the oldest when full.
func (h *History) Push(v uint64) {
	h.data[h.head] = v
	h.head = (h.head + 1) % h.size
	if h.count < h.size {
		h.count++
	}
}

// Len returns the number of stored samples.
func (h *History) Len() int {
	return h.count
}

// Values returns all stored samples in chronological order (oldest first).
func (h *History) Values() []uint64 {
	if h.count == 0 {
		return nil
	}

	result := make([]uint64, h.count)

	// head points at the next write position, so the oldest sample sits
	// at head when the buffer is full and at 0 otherwise.
	start := (h.head - h.count + h.size) % h.size
	for i := 0; i < h.count; i++ {
		result[i] = h.data[(start+i)%h.size]
	}

	return result
}

// Floats returns the samples as float64 for graph rendering.
func (h *History) Floats() []float64 {
	vals := h.Values()
	if vals == nil {
		return nil
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = float64(v)
	}
	return out
}

// LogBuffer is a fixed-capacity ring buffer of human-readable log lines
// with the same FIFO eviction as History.
type LogBuffer struct {
	data  []string
	head  int
	count int
	size  int
}

// NewLogBuffer creates an empty log buffer with the given capacity.
func NewLogBuffer(size int) *LogBuffer {
	if size <= 0 {
		size = LogSize
	}
	return &LogBuffer{
		data: make([]string, size),
		size: size,
	}
}

// Append adds a line, evicting the oldest when full.
func (l *LogBuffer) Append(line string) {
	l.data[l.head] = line
	l.head = (l.head + 1) % l.size
	if l.count < l.size {
		l.count++
	}
}

// Len returns the number of stored lines.
func (l *LogBuffer) Len() int {
	return l.count
}

// Lines returns all stored lines in chronological order (oldest first).
func (l *LogBuffer) Lines() []string {
	if l.count == 0 {
		return nil
	}

	result := make([]string, l.count)
	start := (l.head - l.count + l.size) % l.size
	for i := 0; i < l.count; i++ {
		result[i] = l.data[(start+i)%l.size]
	}

	return result
}

// Last returns up to n of the most recent lines, newest first, for the
// log panel which renders top-down from the latest entry.
func (l *LogBuffer) Last(n int) []string {
	lines := l.Lines()
	if n > len(lines) {
		n = len(lines)
	}
	if n <= 0 {
		return nil
	}

	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = lines[len(lines)-1-i]
	}
	return result
}
