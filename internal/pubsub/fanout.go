package pubsub

import (
	"sync"

	"github.com/google/uuid"
)

// Fanout copies each notification into every subscriber's private
// unbounded queue. A slow subscriber never delays the publisher or its
// siblings.
type Fanout[T any] struct {
	mu   sync.Mutex
	subs map[uuid.UUID]*Queue[T]
}

func NewFanout[T any]() *Fanout[T] {
	return &Fanout[T]{subs: make(map[uuid.UUID]*Queue[T])}
}

// Subscribe registers a fresh queue and returns it with its handle.
func (f *Fanout[T]) Subscribe() (uuid.UUID, *Queue[T]) {
	id := uuid.New()
	q := NewQueue[T]()
	f.mu.Lock()
	f.subs[id] = q
	f.mu.Unlock()
	return id, q
}

// Unsubscribe removes and closes the queue for id, if still present.
func (f *Fanout[T]) Unsubscribe(id uuid.UUID) {
	f.mu.Lock()
	q, ok := f.subs[id]
	if ok {
		delete(f.subs, id)
	}
	f.mu.Unlock()
	if ok {
		q.Close()
	}
}

// Notify puts v on every subscriber queue.
func (f *Fanout[T]) Notify(v T) {
	f.mu.Lock()
	qs := make([]*Queue[T], 0, len(f.subs))
	for _, q := range f.subs {
		qs = append(qs, q)
	}
	f.mu.Unlock()
	for _, q := range qs {
		q.Put(v)
	}
}

// Len reports the current subscriber count.
func (f *Fanout[T]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}
