package field

import "sync"

// Handle is a borrowed reference to one input control.
type Handle interface {
	Name() string
	Kind() string
	Value() string
	SetValue(string)
}

// Input is an in-memory Handle. It is safe for concurrent use.
type Input struct {
	name  string
	kind  string
	mu    sync.RWMutex
	value string
}

// NewInput creates an in-memory handle.
func NewInput(name, kind, value string) *Input {
	return &Input{name: name, kind: kind, value: value}
}

func (i *Input) Name() string { return i.name }
func (i *Input) Kind() string { return i.kind }

func (i *Input) Value() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.value
}

func (i *Input) SetValue(v string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.value = v
}
