package events

import (
	"sync"

	"github.com/digiri/giriloyo-batik/internal/models"
)

// Bus fans cart-change notifications out to the subscribers of one guest.
// Publishing never blocks: a subscriber whose buffer is full misses the event.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string]map[chan models.CartChanged]struct{}
	buffer int
}

func NewBus(buffer int) *Bus {
	if buffer < 1 {
		buffer = 1
	}

	return &Bus{subs: make(map[string]map[chan models.CartChanged]struct{}), buffer: buffer}
}

// Subscribe returns a channel of events for guestID and a func that
// unsubscribes and closes it.
func (b *Bus) Subscribe(guestID string) (<-chan models.CartChanged, func()) {
	ch := make(chan models.CartChanged, b.buffer)

	b.mu.Lock()
	if b.subs[guestID] == nil {
		b.subs[guestID] = make(map[chan models.CartChanged]struct{})
	}
	b.subs[guestID][ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs[guestID], ch)
			if len(b.subs[guestID]) == 0 {
				delete(b.subs, guestID)
			}
			b.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

// Publish returns how many subscribers received the event.
func (b *Bus) Publish(evt models.CartChanged) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	delivered := 0
	for ch := range b.subs[evt.GuestID] {
		select {
		case ch <- evt:
			delivered++
		default:
		}
	}

	return delivered
}

func (b *Bus) Subscribers(guestID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subs[guestID])
}
