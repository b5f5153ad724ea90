package feedback

import (
	"sort"
	"sync"

	"github.com/dmitrymomot/vetform/pkg/field"
	"github.com/dmitrymomot/vetform/pkg/validator"
)

// View is what a field currently shows.
type View struct {
	State    State
	Severity validator.Severity
	Message  string
}

// HasMessage reports whether a message element is present.
func (v View) HasMessage() bool {
	return v.Message != ""
}

// Board is a headless Renderer. It is safe for concurrent use.
type Board struct {
	mu       sync.RWMutex
	views    map[string]View
	localize Localize
}

// BoardOption configures a Board.
type BoardOption func(*Board)

// WithBoardLocalize sets the message source of the board.
func WithBoardLocalize(fn Localize) BoardOption {
	return func(b *Board) {
		if fn != nil {
			b.localize = fn
		}
	}
}

// NewBoard creates an empty board.
func NewBoard(opts ...BoardOption) *Board {
	b := &Board{
		views:    make(map[string]View),
		localize: OwnMessage,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Render implements Renderer.
func (b *Board) Render(h field.Handle, o validator.Outcome) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.views, h.Name())
	if o.Severity == validator.SeverityNone {
		return
	}

	b.views[h.Name()] = View{
		State:    StateOf(o),
		Severity: o.Severity,
		Message:  b.localize(o),
	}
}

// Clear implements Renderer.
func (b *Board) Clear(h field.Handle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.views, h.Name())
}

// View returns the current view of the named field.
// Fields without feedback return the zero View.
func (b *Board) View(name string) View {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.views[name]
}

// Fields returns the names of fields with feedback, sorted.
func (b *Board) Fields() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.views))
	for name := range b.views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset drops all feedback.
func (b *Board) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.views)
}
