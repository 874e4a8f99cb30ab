package dashboard

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dley18/System-Health-Dashboard/internal/logger"
	"github.com/dley18/System-Health-Dashboard/internal/stream"
)

// testSubscription returns a quiescent subscription: the endpoint is
// unreachable and the hour-long delay keeps the dial loop out of the way.
func testSubscription(t *testing.T) *stream.Subscription {
	t.Helper()
	sub := stream.Subscribe("ws://127.0.0.1:1/metrics/stream",
		stream.WithReconnectDelay(time.Hour),
		stream.WithLogger(logger.Noop()))
	t.Cleanup(func() { sub.Close() })
	return sub
}

func TestNewModel(t *testing.T) {
	sub := testSubscription(t)
	m := NewModel(sub, 10)

	assert.False(t, m.Live())
	assert.Equal(t, "Connecting...", m.StatusText())
	assert.Equal(t, "—", m.Readout())
	assert.Equal(t, 0, m.Samples())
	assert.Equal(t, 0, m.history.Len())
}

func TestModel_Update_Reading(t *testing.T) {
	sub := testSubscription(t)
	m := NewModel(sub, 10)

	updated, cmd := m.Update(readingMsg(stream.Reading{Total: 42.37}))
	m = updated.(Model)

	assert.True(t, m.Live())
	assert.Equal(t, "Live", m.StatusText())
	assert.Equal(t, "42.4%", m.Readout())
	assert.Equal(t, 1, m.Samples())
	assert.Equal(t, 1, m.history.Len())

	// The model re-arms the channel read for the next update.
	assert.NotNil(t, cmd)
}

func TestModel_Update_ReadingOverwritesPrior(t *testing.T) {
	sub := testSubscription(t)
	m := NewModel(sub, 10)

	updated, _ := m.Update(readingMsg(stream.Reading{Total: 10}))
	m = updated.(Model)
	updated, _ = m.Update(readingMsg(stream.Reading{Total: 90}))
	m = updated.(Model)

	// Latest reading wins; history keeps both.
	assert.Equal(t, "90.0%", m.Readout())
	assert.Equal(t, []float64{10, 90}, m.history.Last(2))
}

func TestModel_Readout_Formats(t *testing.T) {
	tests := []struct {
		name   string
		total  float64
		expect string
	}{
		{"rounds to one decimal", 42.37, "42.4%"},
		{"zero", 0, "0.0%"},
		{"integer reading", 7, "7.0%"},
		{"full utilization", 100, "100.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := testSubscription(t)
			m := NewModel(sub, 10)

			updated, _ := m.Update(readingMsg(stream.Reading{Total: tt.total}))
			m = updated.(Model)

			assert.Equal(t, tt.expect, m.Readout())
		})
	}
}

func TestModel_Update_StreamClosed(t *testing.T) {
	sub := testSubscription(t)
	m := NewModel(sub, 10)

	updated, _ := m.Update(streamClosedMsg{})
	m = updated.(Model)

	assert.True(t, m.closed)
}

func TestModel_Update_WindowSize(t *testing.T) {
	sub := testSubscription(t)
	m := NewModel(sub, 10)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestModel_HandleKey_Quit(t *testing.T) {
	for _, key := range []string{KeyQuit, KeyQuitAlt} {
		t.Run(key, func(t *testing.T) {
			sub := testSubscription(t)
			m := NewModel(sub, 10)

			var msg tea.KeyMsg
			if key == KeyQuitAlt {
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			} else {
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			}

			updated, cmd := m.Update(msg)
			m = updated.(Model)

			assert.True(t, m.quitting)
			assert.Equal(t, "", m.View())
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())

			// Quitting tears the subscription down.
			assert.Equal(t, stream.StateCancelled, sub.State())
		})
	}
}

func TestModel_HandleKey_Unbound(t *testing.T) {
	sub := testSubscription(t)
	m := NewModel(sub, 10)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m = updated.(Model)

	assert.False(t, m.quitting)
	assert.NotEqual(t, stream.StateCancelled, sub.State())
}

func TestModel_SecondsSinceUpdate(t *testing.T) {
	sub := testSubscription(t)
	m := NewModel(sub, 10)

	// No reading yet
	assert.Equal(t, 0, m.SecondsSinceUpdate())

	updated, _ := m.Update(readingMsg(stream.Reading{Total: 1}))
	m = updated.(Model)
	assert.LessOrEqual(t, m.SecondsSinceUpdate(), 1)
}
