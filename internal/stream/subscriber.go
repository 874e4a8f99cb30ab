package stream

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dley18/System-Health-Dashboard/internal/logger"
)

// State identifies where a subscription is in its connection lifecycle.
type State int

const (
	// StateDisconnected means no connection is open and a reconnect is pending.
	StateDisconnected State = iota
	// StateConnecting means a dial is in flight.
	StateConnecting
	// StateConnected means the stream is live.
	StateConnected
	// StateCancelled means Close was called; the subscription is finished.
	StateCancelled
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// DefaultReconnectDelay is the fixed pause between a disconnect and the next
// dial. There is deliberately no backoff and no attempt cap: every disconnect
// is treated identically and retried forever until the subscription is closed.
const DefaultReconnectDelay = time.Second

// Option configures a Subscription.
type Option func(*Subscription)

// WithReconnectDelay overrides the pause between reconnect attempts.
func WithReconnectDelay(d time.Duration) Option {
	return func(s *Subscription) {
		if d > 0 {
			s.delay = d
		}
	}
}

// WithLogger sets the logger used for connection diagnostics. Dial and read
// failures are logged at debug level only; they are never surfaced to the
// consumer beyond the implicit "no reading yet" state.
func WithLogger(l logger.Logger) Option {
	return func(s *Subscription) {
		s.log = l
	}
}

// WithDialer overrides the websocket dialer, mainly for tests.
func WithDialer(d *websocket.Dialer) Option {
	return func(s *Subscription) {
		s.dialer = d
	}
}

// Subscription is the caller-held handle for a live metrics stream. It owns
// exactly one websocket connection and one retry timer at a time; both are
// released when Close is called.
type Subscription struct {
	endpoint string
	delay    time.Duration
	dialer   *websocket.Dialer
	log      logger.Logger

	// updates carries the latest reading with capacity 1; the run goroutine
	// replaces a pending value rather than queueing behind a slow consumer.
	updates chan Reading
	done    chan struct{}

	mu        sync.Mutex
	state     State
	conn      *websocket.Conn
	cancelled bool
	cancel    chan struct{}
}

// Subscribe opens a streaming connection to endpoint and returns the handle
// the caller holds for the lifetime of its interest in the data. The endpoint
// is not validated beyond what the websocket dial itself requires; a bad
// address simply cycles through the reconnect loop like any other failure.
func Subscribe(endpoint string, opts ...Option) *Subscription {
	s := &Subscription{
		endpoint: endpoint,
		delay:    DefaultReconnectDelay,
		dialer:   websocket.DefaultDialer,
		log:      logger.NewEnvLogger("[stream]"),
		updates:  make(chan Reading, 1),
		done:     make(chan struct{}),
		cancel:   make(chan struct{}),
		state:    StateDisconnected,
	}
	for _, opt := range opts {
		opt(s)
	}

	go s.run()
	return s
}

// Endpoint returns the address this subscription dials.
func (s *Subscription) Endpoint() string {
	return s.endpoint
}

// Updates returns the channel of readings. The channel is closed once the
// subscription has fully shut down after Close.
func (s *Subscription) Updates() <-chan Reading {
	return s.updates
}

// Done is closed when the connection loop has exited and all resources are
// released.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// State returns the current lifecycle state.
func (s *Subscription) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close cancels the subscription: no further reconnect attempts occur and no
// further readings are published. The live connection, if any, is closed
// immediately; a dial already in flight is torn down as soon as it completes.
// Close is idempotent and safe to call from any goroutine.
func (s *Subscription) Close() error {
	s.mu.Lock()
	if s.cancelled {
		s.mu.Unlock()
		return nil
	}
	s.cancelled = true
	s.state = StateCancelled
	close(s.cancel)
	conn := s.conn
	s.conn = nil
	s.mu.Unlock()

	if conn != nil {
		return conn.Close()
	}
	return nil
}

// run is the connection loop: dial, read until failure, pause, repeat.
// It is the only writer to the updates channel and closes it on exit.
func (s *Subscription) run() {
	defer close(s.done)
	defer close(s.updates)

	for {
		if !s.transition(StateConnecting) {
			return
		}

		conn, _, err := s.dialer.Dial(s.endpoint, nil)
		if err != nil {
			s.log.Debug("dial %s: %v", s.endpoint, err)
			s.transition(StateDisconnected)
			if !s.pause() {
				return
			}
			continue
		}

		if !s.adopt(conn) {
			// Close landed while the dial was in flight. The connection
			// opened anyway; tear it down before exiting.
			conn.Close()
			return
		}

		s.readLoop(conn)

		s.release(conn)
		conn.Close()
		if !s.transition(StateDisconnected) {
			return
		}
		if !s.pause() {
			return
		}
	}
}

// readLoop consumes messages until the connection fails or is closed.
// A graceful close and a hard failure get identical treatment.
func (s *Subscription) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			s.log.Debug("read %s: %v", s.endpoint, err)
			return
		}

		reading, ok := decodeReading(data)
		if !ok {
			continue
		}
		s.publish(reading)
	}
}

// publish replaces the pending reading so the consumer always receives the
// most recent value, never a backlog. Only the run goroutine calls this, so
// the drain-then-send on the capacity-1 channel cannot race another sender.
func (s *Subscription) publish(r Reading) {
	if s.isCancelled() {
		return
	}
	for {
		select {
		case s.updates <- r:
			return
		default:
		}
		select {
		case <-s.updates:
		default:
		}
	}
}

// pause waits out the reconnect delay. Returns false if the subscription was
// cancelled while waiting.
func (s *Subscription) pause() bool {
	t := time.NewTimer(s.delay)
	defer t.Stop()

	select {
	case <-t.C:
		return true
	case <-s.cancel:
		return false
	}
}

// transition moves to the next state unless the subscription is cancelled.
func (s *Subscription) transition(next State) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelled {
		return false
	}
	s.state = next
	return true
}

// adopt records the freshly dialed connection as the single live connection.
// Returns false if Close won the race, in which case the caller must discard
// the connection.
func (s *Subscription) adopt(conn *websocket.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelled {
		return false
	}
	s.conn = conn
	s.state = StateConnected
	return true
}

// release clears the live connection reference if it still points at conn.
func (s *Subscription) release(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
}

func (s *Subscription) isCancelled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelled
}
