package watch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryPushAndValues(t *testing.T) {
	h := NewHistory(5)

	assert.Equal(t, 0, h.Len())
	assert.Nil(t, h.Values())

	h.Push(10)
	h.Push(20)
	h.Push(30)

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []uint64{10, 20, 30}, h.Values())
}

func TestHistoryEvictsOldestWhenFull(t *testing.T) {
	h := NewHistory(3)

	for i := uint64(1); i <= 5; i++ {
		h.Push(i * 100)
	}

	require.Equal(t, 3, h.Len())
	assert.Equal(t, []uint64{300, 400, 500}, h.Values())
}

func TestHistoryLenNeverExceedsCapacity(t *testing.T) {
	h := NewHistory(HistorySize)

	for i := 0; i < HistorySize*3; i++ {
		h.Push(uint64(i))
	}

	assert.Equal(t, HistorySize, h.Len())

	vals := h.Values()
	require.Len(t, vals, HistorySize)
	// Oldest retained sample is the first one still inside the window.
	assert.Equal(t, uint64(HistorySize*3-HistorySize), vals[0])
	assert.Equal(t, uint64(HistorySize*3-1), vals[HistorySize-1])
}

func TestHistoryFloats(t *testing.T) {
	h := NewHistory(4)
	h.Push(1)
	h.Push(2)

	assert.Equal(t, []float64{1, 2}, h.Floats())

	empty := NewHistory(4)
	assert.Nil(t, empty.Floats())
}

func TestHistoryInvalidSizeFallsBackToDefault(t *testing.T) {
	h := NewHistory(0)

	for i := 0; i < HistorySize+10; i++ {
		h.Push(uint64(i))
	}

	assert.Equal(t, HistorySize, h.Len())
}

func TestLogBufferAppendAndLines(t *testing.T) {
	l := NewLogBuffer(3)

	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Lines())

	l.Append("first")
	l.Append("second")

	assert.Equal(t, []string{"first", "second"}, l.Lines())
}

func TestLogBufferEvictsOldest(t *testing.T) {
	l := NewLogBuffer(3)

	for i := 1; i <= 5; i++ {
		l.Append(fmt.Sprintf("line %d", i))
	}

	require.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"line 3", "line 4", "line 5"}, l.Lines())
}

func TestLogBufferLastNewestFirst(t *testing.T) {
	l := NewLogBuffer(10)
	l.Append("a")
	l.Append("b")
	l.Append("c")

	assert.Equal(t, []string{"c", "b"}, l.Last(2))
	assert.Equal(t, []string{"c", "b", "a"}, l.Last(5), "n beyond length returns all")
	assert.Nil(t, l.Last(0))
}
