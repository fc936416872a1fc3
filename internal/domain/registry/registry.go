// Package registry tracks which users currently hold an open push
// stream and routes stored messages to them.
package registry

import (
	"sync"

	"github.com/google/uuid"

	"github.com/relaymesh/chat-service/internal/domain/model"
	"github.com/relaymesh/chat-service/internal/pubsub"
)

// Mailbox is the per-connection delivery queue handed to a stream
// handler on install.
type Mailbox = pubsub.Queue[model.Message]

type cell struct {
	id uuid.UUID
	mb *Mailbox
}

// Hub maps usernames to their live mailbox. At most one mailbox per
// user; a later Install displaces the earlier one.
type Hub struct {
	mu    sync.Mutex
	cells map[string]cell
}

func NewHub() *Hub {
	return &Hub{cells: make(map[string]cell)}
}

// Install registers a fresh mailbox for user, closing any previous one.
// The returned id must be passed back to Remove.
func (h *Hub) Install(user string) (uuid.UUID, *Mailbox) {
	id := uuid.New()
	mb := pubsub.NewQueue[model.Message]()
	h.mu.Lock()
	prev, had := h.cells[user]
	h.cells[user] = cell{id: id, mb: mb}
	h.mu.Unlock()
	if had {
		prev.mb.Close()
	}
	return id, mb
}

// Remove detaches the mailbox registered under id. A mailbox installed
// later by the same user is left alone.
func (h *Hub) Remove(user string, id uuid.UUID) {
	h.mu.Lock()
	cur, ok := h.cells[user]
	if ok && cur.id == id {
		delete(h.cells, user)
	} else {
		ok = false
	}
	h.mu.Unlock()
	if ok {
		cur.mb.Close()
	}
}

// Deliver puts m on the recipient's mailbox and reports whether one was
// attached. Offline recipients are skipped; the message is already
// durable.
func (h *Hub) Deliver(m model.Message) bool {
	h.mu.Lock()
	cur, ok := h.cells[m.To]
	h.mu.Unlock()
	if ok {
		cur.mb.Put(m)
	}
	return ok
}

// Attached reports whether user has a live mailbox.
func (h *Hub) Attached(user string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.cells[user]
	return ok
}

// Len reports the number of connected users.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.cells)
}
