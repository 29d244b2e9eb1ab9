package session

import (
	"context"
	"fmt"

	"volview/internal/event"
)

// Driver starts and stops the immersive presentation. The desktop viewer uses
// a stub; an XR runtime binding implements the real thing.
type Driver interface {
	RequestSession(ctx context.Context) error
	EndSession(ctx context.Context) error
}

// Session tracks immersive presence and passthrough mode. All methods are
// called from the frame loop; the driver calls may block and take a context.
type Session struct {
	driver Driver

	active      bool
	passthrough bool

	// Started and Ended fire on presence transitions, after the driver call
	// succeeded.
	Started event.Event
	Ended   event.Event
}

// New creates an inactive session around a driver.
func New(driver Driver) *Session {
	return &Session{driver: driver}
}

// Active reports whether an immersive session is presenting.
func (s *Session) Active() bool {
	return s.active
}

// Passthrough reports whether the camera passthrough mode is on.
func (s *Session) Passthrough() bool {
	return s.passthrough
}

// TogglePassthrough flips passthrough mode. Only meaningful while active, but
// harmless otherwise.
func (s *Session) TogglePassthrough() {
	s.passthrough = !s.passthrough
}

// Request asks the driver to begin presenting. Requesting an already active
// session is a no-op.
func (s *Session) Request(ctx context.Context) error {
	if s.active {
		return nil
	}
	if err := s.driver.RequestSession(ctx); err != nil {
		return fmt.Errorf("request session: %w", err)
	}
	s.active = true
	s.Started.Invoke()
	return nil
}

// End asks the driver to stop presenting. Passthrough resets so the next
// session starts opaque.
func (s *Session) End(ctx context.Context) error {
	if !s.active {
		return nil
	}
	if err := s.driver.EndSession(ctx); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	s.active = false
	s.passthrough = false
	s.Ended.Invoke()
	return nil
}
