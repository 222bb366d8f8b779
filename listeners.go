package todo

import "sync"

// Change is delivered to listeners after an event has been committed
type Change struct {
	Event Event
	State State
}

// Listener observes committed changes. Listeners run synchronously, in
// subscription order, after the store lock is released, so they may call
// back into the store. Changes are always delivered in commit order: a change
// made from inside a listener is delivered once the current change has
// reached every listener.
type Listener func(Change)

// TypedListenerFunc converts a function on one event type into a Listener
// that ignores every other event
type TypedListenerFunc[T Event] func(T, State)

func (f TypedListenerFunc[T]) Listener() Listener {
	return func(c Change) {
		if e, ok := c.Event.(T); ok {
			f(e, c.State)
		}
	}
}

type listenerSet struct {
	mu      sync.Mutex
	nextID  int
	entries []listenerEntry

	queueMu     sync.Mutex
	queue       []Change
	dispatching bool
}

type listenerEntry struct {
	id int
	fn Listener
}

func (l *listenerSet) add(fn Listener) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, listenerEntry{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { l.remove(id) })
	}
}

func (l *listenerSet) remove(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, entry := range l.entries {
		if entry.id == id {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return
		}
	}
}

// notify calls a stable copy of the current listeners
func (l *listenerSet) notify(c Change) {
	l.mu.Lock()
	entries := make([]listenerEntry, len(l.entries))
	copy(entries, l.entries)
	l.mu.Unlock()

	for _, entry := range entries {
		entry.fn(c)
	}
}

// enqueue records c for delivery. The store calls it while holding its own
// lock, so the queue is in commit order.
func (l *listenerSet) enqueue(c Change) {
	l.queueMu.Lock()
	l.queue = append(l.queue, c)
	l.queueMu.Unlock()
}

// drain delivers queued changes in order. A drain already in progress, on
// this goroutine or another, picks up anything queued behind it.
func (l *listenerSet) drain() {
	l.queueMu.Lock()
	if l.dispatching {
		l.queueMu.Unlock()
		return
	}
	l.dispatching = true
	l.queueMu.Unlock()

	for {
		l.queueMu.Lock()
		if len(l.queue) == 0 {
			l.dispatching = false
			l.queueMu.Unlock()
			return
		}
		c := l.queue[0]
		l.queue[0] = Change{}
		l.queue = l.queue[1:]
		l.queueMu.Unlock()

		l.notify(c)
	}
}
