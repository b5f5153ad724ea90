package watch

import (
	"log/slog"
	"sync"

	"github.com/dmitrymomot/vetform/pkg/feedback"
	"github.com/dmitrymomot/vetform/pkg/field"
	"github.com/dmitrymomot/vetform/pkg/logger"
)

// Subscription is a live registration created by Register.
type Subscription struct {
	checker  *field.Checker
	renderer feedback.Renderer
	logger   *slog.Logger

	mu     sync.Mutex
	cancel func()
	closed bool
}

// Option configures a Subscription.
type Option func(*Subscription)

// WithChecker sets the classifier and validators used by the subscription.
func WithChecker(c *field.Checker) Option {
	return func(s *Subscription) {
		if c != nil {
			s.checker = c
		}
	}
}

// WithLogger sets the logger. Checks are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(s *Subscription) {
		if l != nil {
			s.logger = l
		}
	}
}

// Register attaches live validation for the fields of src, painting through r.
func Register(src Source, r feedback.Renderer, opts ...Option) *Subscription {
	s := &Subscription{
		checker:  field.NewChecker(),
		renderer: r,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	cancel := src.Subscribe(s.handle)

	s.mu.Lock()
	s.cancel = cancel
	closed := s.closed
	s.mu.Unlock()
	if closed {
		cancel()
	}
	return s
}

// Close detaches the subscription. It is safe to call more than once.
func (s *Subscription) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
}

// Closed reports whether Close was called.
func (s *Subscription) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Subscription) handle(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || ev.Field == nil {
		return
	}

	cat := s.checker.Classify(ev.Field)
	if !cat.Classified() {
		return
	}

	switch ev.Trigger {
	case TriggerInput:
		field.Normalize(cat, ev.Field)
		s.renderer.Clear(ev.Field)
	case TriggerBlur:
		if cat != field.AppointmentDateTime {
			s.check(ev, cat)
		}
	case TriggerChange:
		if cat == field.AppointmentDateTime {
			s.check(ev, cat)
		}
	}
}

func (s *Subscription) check(ev Event, cat field.Category) {
	out := s.checker.Validate(cat, ev.Field.Name(), ev.Field.Value())
	s.renderer.Render(ev.Field, out)
	s.logger.Debug("field checked",
		logger.Field(ev.Field.Name()),
		logger.Category(cat),
		logger.Trigger(ev.Trigger),
		logger.Severity(out.Severity),
	)
}
