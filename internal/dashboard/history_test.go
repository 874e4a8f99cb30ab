package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHistory_DefaultSize(t *testing.T) {
	h := NewHistory(0)
	assert.Equal(t, DefaultHistorySize, h.size)

	h = NewHistory(-5)
	assert.Equal(t, DefaultHistorySize, h.size)

	h = NewHistory(10)
	assert.Equal(t, 10, h.size)
}

func TestHistory_PushAndLast(t *testing.T) {
	h := NewHistory(5)

	h.Push(1)
	h.Push(2)
	h.Push(3)

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []float64{1, 2, 3}, h.Last(3))
	assert.Equal(t, []float64{2, 3}, h.Last(2))

	// Asking for more than stored returns what exists.
	assert.Equal(t, []float64{1, 2, 3}, h.Last(10))
}

func TestHistory_Wraparound(t *testing.T) {
	h := NewHistory(3)

	for _, v := range []float64{1, 2, 3, 4, 5} {
		h.Push(v)
	}

	// Oldest values are overwritten once the buffer fills.
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []float64{3, 4, 5}, h.Last(3))
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory(3)

	assert.Equal(t, 0, h.Len())
	assert.Nil(t, h.Last(3))
	assert.Nil(t, h.Last(0))
	assert.Nil(t, h.Last(-1))
}
