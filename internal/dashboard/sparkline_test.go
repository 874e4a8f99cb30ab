package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentLevel(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		level   int
	}{
		{"floor", 0, 0},
		{"ceiling", 100, 7},
		{"midpoint", 50, 3},
		{"clamps below range", -10, 0},
		{"clamps above range", 250, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.level, percentLevel(tt.percent))
		})
	}
}

func TestRenderSparkline_Empty(t *testing.T) {
	assert.Equal(t, "", renderSparkline(nil, 10))
	assert.Equal(t, "", renderSparkline([]float64{1, 2}, 0))
}

func TestRenderSparkline_FixedDomain(t *testing.T) {
	// Color profile is pinned to Ascii in view_test, so output is plain text.
	out := renderSparkline([]float64{0, 100}, 10)
	assert.Equal(t, "▁█", out)
}

func TestRenderSparkline_TruncatesToWidth(t *testing.T) {
	data := []float64{0, 0, 0, 100, 100}
	out := renderSparkline(data, 2)

	// Only the two most recent points remain.
	assert.Equal(t, "██", out)
}
