package dashboard

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dley18/System-Health-Dashboard/internal/stream"
)

// Model is the Bubble Tea model for the live CPU dashboard. It holds no
// independent metric state: everything rendered is derived from the latest
// reading published by the stream subscription.
type Model struct {
	sub     *stream.Subscription
	latest  *stream.Reading
	history *History
	spin    spinner.Model

	width      int
	height     int
	samples    int
	lastUpdate time.Time
	quitting   bool
	closed     bool // update channel closed; subscription has shut down
}

// readingMsg carries a new reading from the subscription.
type readingMsg stream.Reading

// streamClosedMsg signals that the subscription's update channel closed.
type streamClosedMsg struct{}

// statusTickMsg refreshes the footer's connection state display.
type statusTickMsg time.Time

// statusTickInterval is how often the footer state is re-rendered while no
// readings are arriving.
const statusTickInterval = 500 * time.Millisecond

// NewModel creates a dashboard model consuming the given subscription.
// historySize controls the sparkline buffer; 0 uses the default.
func NewModel(sub *stream.Subscription, historySize int) Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = StatusConnectingStyle

	return Model{
		sub:     sub,
		history: NewHistory(historySize),
		spin:    sp,
	}
}

// Init starts the spinner, the status ticker, and the first read.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		m.statusTickCmd(),
		m.waitForReading(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := m.handleKey(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case statusTickMsg:
		return m, m.statusTickCmd()

	case readingMsg:
		r := stream.Reading(msg)
		m.latest = &r
		m.history.Push(r.Total)
		m.samples++
		m.lastUpdate = time.Now()
		return m, m.waitForReading()

	case streamClosedMsg:
		m.closed = true
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// waitForReading returns a command that blocks on the subscription's update
// channel and delivers the next reading as a message.
func (m Model) waitForReading() tea.Cmd {
	return func() tea.Msg {
		r, ok := <-m.sub.Updates()
		if !ok {
			return streamClosedMsg{}
		}
		return readingMsg(r)
	}
}

// statusTickCmd returns a command that re-renders the footer state.
func (m Model) statusTickCmd() tea.Cmd {
	return tea.Tick(statusTickInterval, func(t time.Time) tea.Msg {
		return statusTickMsg(t)
	})
}

// Live reports whether at least one valid reading has arrived.
func (m Model) Live() bool {
	return m.latest != nil
}

// StatusText returns the textual connection status: "Connecting..." until
// the first valid reading arrives, "Live" afterwards.
func (m Model) StatusText() string {
	if m.Live() {
		return "Live"
	}
	return "Connecting..."
}

// Readout returns the numeric reading formatted to one decimal place with a
// percent sign, or an em-dash placeholder while the value is unknown.
func (m Model) Readout() string {
	if m.latest == nil {
		return "—"
	}
	return fmt.Sprintf("%.1f%%", m.latest.Total)
}

// Samples returns how many readings have been received.
func (m Model) Samples() int {
	return m.samples
}

// SecondsSinceUpdate returns how many seconds have passed since the last
// reading, or 0 if none has arrived yet.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(time.Since(m.lastUpdate).Seconds())
}
