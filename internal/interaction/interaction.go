// Package interaction carries the host's global pointer-interaction stream.
//
// A date picker registers a listener on the stream while its grid is open
// and deregisters it when the grid closes, so a press anywhere outside the
// grid can dismiss it.
package interaction

import (
	"sync"

	"go.uber.org/zap"
)

// Interaction is one pointer press observed by the host
type Interaction struct {
	// TargetID identifies the element under the pointer, empty for none
	TargetID string
	// InsideGrid is true when the press landed inside an open grid panel
	InsideGrid bool
	X, Y       int
}

// Observer is the capability to watch every interaction.
// Register returns a function that removes the listener; calling it more
// than once is harmless.
type Observer interface {
	Register(listener func(Interaction)) (deregister func())
}

// Bus is an in-process Observer that fans interactions out to listeners
type Bus struct {
	mu        sync.Mutex
	nextID    int
	listeners []listener
	logger    *zap.Logger
}

type listener struct {
	id int
	fn func(Interaction)
}

// NewBus creates an empty interaction bus
func NewBus(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{logger: logger}
}

// Register adds a listener
func (b *Bus) Register(fn func(Interaction)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners = append(b.listeners, listener{id: id, fn: fn})
	count := len(b.listeners)
	b.mu.Unlock()

	b.logger.Debug("Interaction listener registered",
		zap.Int("listener_id", id),
		zap.Int("listeners", count))

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			for i, l := range b.listeners {
				if l.id == id {
					b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
					break
				}
			}
			count := len(b.listeners)
			b.mu.Unlock()

			b.logger.Debug("Interaction listener deregistered",
				zap.Int("listener_id", id),
				zap.Int("listeners", count))
		})
	}
}

// Publish delivers in to every listener registered at call time.
// Listeners may deregister themselves while being notified.
func (b *Bus) Publish(in Interaction) {
	b.mu.Lock()
	snapshot := make([]listener, len(b.listeners))
	copy(snapshot, b.listeners)
	b.mu.Unlock()

	for _, l := range snapshot {
		l.fn(in)
	}
}

// Listeners returns the number of registered listeners
func (b *Bus) Listeners() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}
