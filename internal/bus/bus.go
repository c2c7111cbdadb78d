// Package bus is the process-wide event channel connecting the vehicle form's
// background upload job to the application shell.
//
// The two sides are siblings with no reference to each other, so completion
// of a background task is announced here instead of through a direct call.
// Subscribers receive events in publish order; each subscriber owns a
// buffered channel and slow consumers drop events rather than block the
// publisher.
package bus

import "sync"

// UploadStatus tags the lifecycle phase of a background image upload batch.
type UploadStatus string

const (
	// UploadLoading is emitted once before the first file of a batch.
	UploadLoading UploadStatus = "loading"
	// UploadCompleted is emitted once after the last file, regardless of
	// per-file outcomes.
	UploadCompleted UploadStatus = "completed"
)

// Event is a tagged variant carried by the bus.
type Event interface {
	isEvent()
}

// CarsChanged signals that the inventory changed and subscribers should
// refetch the authoritative list. It carries no payload.
type CarsChanged struct{}

func (CarsChanged) isEvent() {}

// CarImagesChanged signals a status change of the background image upload
// for one vehicle.
type CarImagesChanged struct {
	CarID  int64
	Status UploadStatus
}

func (CarImagesChanged) isEvent() {}

const subscriberBuffer = 16

// Bus is a typed publish/subscribe channel. The zero value is not usable;
// construct with [New].
type Bus struct {
	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
	closed bool
}

// New constructs an empty Bus.
func New() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Subscribe registers a new subscriber and returns its receive channel plus
// a cancel function. Cancel is idempotent and closes the channel, so a
// ranging consumer terminates cleanly.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Event, subscriberBuffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	b.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
	return ch, cancel
}

// Publish delivers event to every current subscriber without blocking.
// A subscriber whose buffer is full misses the event; the shell recovers
// from missed events on its next refetch.
func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// Close shuts the bus down: all subscriber channels are closed and further
// Publish and Subscribe calls become no-ops.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
