package event

// Listener receives one frame's elapsed time in seconds.
type Listener func(dt float64)

// Subscription is the handle returned by Subscribe and consumed by Unsubscribe.
// The zero value is not subscribed.
type Subscription struct {
	entry *entry
}

// Active reports whether the subscription is still attached to its bus.
func (s Subscription) Active() bool {
	return s.entry != nil && s.entry.live
}

type entry struct {
	fn   Listener
	live bool
}

// Bus is the single per-frame tick channel. Listeners run synchronously,
// in subscription order, on the goroutine that calls Publish.
type Bus struct {
	entries    []*entry
	publishing bool
	dirty      bool // entries holds dead listeners awaiting compaction
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe attaches fn. A listener added during Publish first runs on the
// next Publish.
func (b *Bus) Subscribe(fn Listener) Subscription {
	e := &entry{fn: fn, live: true}
	b.entries = append(b.entries, e)
	return Subscription{entry: e}
}

// Unsubscribe detaches the listener behind s. Unknown or already removed
// subscriptions are ignored. A listener removed during Publish is not called
// for the rest of that Publish.
func (b *Bus) Unsubscribe(s Subscription) {
	if !s.Active() {
		return
	}
	s.entry.live = false
	if b.publishing {
		b.dirty = true
		return
	}
	b.compact()
}

// Publish delivers dt to every live listener.
func (b *Bus) Publish(dt float64) {
	if b.publishing {
		// Re-entrant publish would deliver two ticks in one frame.
		return
	}
	b.publishing = true
	// Snapshot the length so listeners subscribed mid-publish wait a frame.
	n := len(b.entries)
	for i := 0; i < n; i++ {
		e := b.entries[i]
		if e.live {
			e.fn(dt)
		}
	}
	b.publishing = false
	if b.dirty {
		b.compact()
	}
}

// Len returns the number of live listeners.
func (b *Bus) Len() int {
	n := 0
	for _, e := range b.entries {
		if e.live {
			n++
		}
	}
	return n
}

func (b *Bus) compact() {
	kept := b.entries[:0]
	for _, e := range b.entries {
		if e.live {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(b.entries); i++ {
		b.entries[i] = nil
	}
	b.entries = kept
	b.dirty = false
}
