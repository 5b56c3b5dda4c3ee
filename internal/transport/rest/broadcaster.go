package rest

import (
	"sync"

	"github.com/heartmarshall/thaivocab-backend/internal/pipeline"
)

// Broadcaster fans pipeline snapshots out to SSE subscribers. Register its
// Publish method as the orchestrator's publish hook.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[chan pipeline.Snapshot]struct{}
}

// NewBroadcaster creates an empty Broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[chan pipeline.Snapshot]struct{})}
}

// Publish delivers a snapshot to every subscriber. A subscriber that cannot
// keep up loses intermediate snapshots, never the publisher's progress: the
// channel is drained and the newest snapshot put in its place.
func (b *Broadcaster) Publish(snap pipeline.Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}

// Subscribe registers a new subscriber. The returned cancel func must be
// called when the subscriber goes away.
func (b *Broadcaster) Subscribe() (<-chan pipeline.Snapshot, func()) {
	ch := make(chan pipeline.Snapshot, 1)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		delete(b.subs, ch)
		b.mu.Unlock()
	}
	return ch, cancel
}
