package watch

import "sync"

// Bus is an in-memory Source. Emit delivers synchronously to every
// subscriber in subscription order.
type Bus struct {
	mu   sync.RWMutex
	next int
	subs map[int]func(Event)
	ids  []int
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(Event))}
}

// Subscribe implements Source.
func (b *Bus) Subscribe(fn func(Event)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	b.subs[id] = fn
	b.ids = append(b.ids, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			for i, v := range b.ids {
				if v == id {
					b.ids = append(b.ids[:i], b.ids[i+1:]...)
					break
				}
			}
		})
	}
}

// Emit delivers ev to every subscriber.
func (b *Bus) Emit(ev Event) {
	b.mu.RLock()
	fns := make([]func(Event), 0, len(b.ids))
	for _, id := range b.ids {
		fns = append(fns, b.subs[id])
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// Len returns the number of subscribers.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.ids)
}
