// Package service holds the replica core: every state mutation and
// every snapshot passes through one mutex, which is what makes local
// delivery, peer fan-out, and state transfer agree on a single order.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/relaymesh/chat-service/internal/domain/model"
	"github.com/relaymesh/chat-service/internal/domain/registry"
	"github.com/relaymesh/chat-service/internal/metrics"
	"github.com/relaymesh/chat-service/internal/pubsub"
	"github.com/relaymesh/chat-service/internal/storage"
)

// Messages already merged recently; spares the database a constraint
// round-trip on the common duplicate.
const dedupeCacheSize = 4096

// Core serializes all replica state changes.
//
// The mutex covers store writes, mailbox installation and delivery, and
// fan-out subscription. Holding it across subscribe+scan gives every
// new subscriber an exact state transfer: nothing missed, nothing
// duplicated.
type Core struct {
	mu      sync.Mutex
	store   storage.Store
	hub     *registry.Hub
	msgFan  *pubsub.Fanout[model.Message]
	userFan *pubsub.Fanout[model.UserUpdate]
	dedupe  *lru.Cache[string, struct{}]
	metrics metrics.Collector
	log     *slog.Logger
}

func New(store storage.Store, hub *registry.Hub, collector metrics.Collector, log *slog.Logger) *Core {
	cache, _ := lru.New[string, struct{}](dedupeCacheSize)
	return &Core{
		store:   store,
		hub:     hub,
		msgFan:  pubsub.NewFanout[model.Message](),
		userFan: pubsub.NewFanout[model.UserUpdate](),
		dedupe:  cache,
		metrics: collector,
		log:     log,
	}
}

// Authenticate checks the credential pair against the store.
func (c *Core) Authenticate(ctx context.Context, name, password string) (bool, error) {
	ok, err := c.store.Authenticate(ctx, name, password)
	if err == nil {
		c.metrics.AuthAttempt(ok)
	}
	return ok, err
}

// CreateUser registers a new account and announces it to peer
// subscribers. storage.ErrUserExists when the name is taken.
func (c *Core) CreateUser(ctx context.Context, u model.User) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.InsertUser(ctx, u); err != nil {
		return err
	}
	c.userFan.Notify(model.UserUpdate{Create: true, User: u})
	c.metrics.UserCreated()
	c.log.Info("user created", "user", u.Name)
	return nil
}

// DeleteUser removes the account and its conversations, announcing the
// deletion to peer subscribers.
func (c *Core) DeleteUser(ctx context.Context, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.DeleteUser(ctx, name); err != nil {
		return err
	}
	c.userFan.Notify(model.UserUpdate{Create: false, User: model.User{Name: name}})
	c.metrics.UserDeleted()
	c.log.Info("user deleted", "user", name)
	return nil
}

// MergeUserUpdate applies an account mutation received from a peer.
// A create for an existing name is swallowed; peers are not re-notified
// since every replica hears the origin directly.
func (c *Core) MergeUserUpdate(ctx context.Context, up model.UserUpdate) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if up.Create {
		err := c.store.InsertUser(ctx, up.User)
		if errors.Is(err, storage.ErrUserExists) {
			return nil
		}
		return err
	}
	return c.store.DeleteUser(ctx, up.User.Name)
}

// Message accepts a message from a local client: persist, deliver to a
// connected recipient, and fan out to peer firehose subscribers. The
// store assigns the canonical timestamp; two sends between the same
// pair in the same millisecond would collide on the message identity,
// so the stamp is advanced until it is unique.
func (c *Core) Message(ctx context.Context, m *model.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for {
		err := c.store.AppendMessage(ctx, m)
		if err == nil {
			break
		}
		if !errors.Is(err, storage.ErrDuplicateMessage) {
			return err
		}
		t, perr := model.ParseSent(m.Sent)
		if perr != nil {
			return err
		}
		m.Sent = model.FormatSent(t.Add(time.Millisecond))
	}
	c.dedupe.Add(m.Key(), struct{}{})
	c.metrics.MessageAccepted()
	if c.hub.Deliver(*m) {
		c.metrics.MessageDelivered()
	}
	c.msgFan.Notify(*m)
	return nil
}

// MergeMessage applies a message received from a peer firehose. A
// message already present is dropped without delivery; peers are not
// re-notified. Reports whether the message was a duplicate.
func (c *Core) MergeMessage(ctx context.Context, m model.Message) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, seen := c.dedupe.Get(m.Key()); seen {
		c.metrics.MessageReplicated(true)
		return true, nil
	}
	err := c.store.AppendMessage(ctx, &m)
	if errors.Is(err, storage.ErrDuplicateMessage) {
		c.dedupe.Add(m.Key(), struct{}{})
		c.metrics.MessageReplicated(true)
		return true, nil
	}
	if err != nil {
		return false, err
	}
	c.dedupe.Add(m.Key(), struct{}{})
	c.metrics.MessageReplicated(false)
	if c.hub.Deliver(m) {
		c.metrics.MessageDelivered()
	}
	return false, nil
}

// ListUsers returns usernames matching the glob pattern.
func (c *Core) ListUsers(ctx context.Context, glob string) ([]string, error) {
	return c.store.ListUsers(ctx, glob)
}

// UserExists reports whether an account exists.
func (c *Core) UserExists(ctx context.Context, name string) (bool, error) {
	return c.store.UserExists(ctx, name)
}

// Install attaches a fresh mailbox for user without replay, displacing
// any previous one. Used right after account creation, when there is no
// history to replay.
func (c *Core) Install(user string) (uuid.UUID, *registry.Mailbox) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hub.Install(user)
}

// ReplayAndInstall attaches a fresh mailbox for user and returns the
// user's stored history. Scan and install happen under the core lock,
// so a concurrent send lands either in the history or in the mailbox,
// never both and never neither.
func (c *Core) ReplayAndInstall(ctx context.Context, user string) (uuid.UUID, *registry.Mailbox, []model.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	history, err := c.store.ScanMessages(ctx, user)
	if err != nil {
		return uuid.Nil, nil, nil, err
	}
	id, mb := c.hub.Install(user)
	return id, mb, history, nil
}

// Remove detaches the mailbox registered under id.
func (c *Core) Remove(user string, id uuid.UUID) {
	c.hub.Remove(user, id)
}

// SnapshotMessages subscribes to the message fan-out and returns the
// full stored history, atomically. The caller streams the history first
// and then drains the queue.
func (c *Core) SnapshotMessages(ctx context.Context) (uuid.UUID, *pubsub.Queue[model.Message], []model.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	history, err := c.store.ScanMessages(ctx, "")
	if err != nil {
		return uuid.Nil, nil, nil, err
	}
	id, q := c.msgFan.Subscribe()
	return id, q, history, nil
}

// SnapshotUsers subscribes to the account fan-out and returns every
// stored account as a create update, atomically.
func (c *Core) SnapshotUsers(ctx context.Context) (uuid.UUID, *pubsub.Queue[model.UserUpdate], []model.UserUpdate, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	users, err := c.store.ScanUsers(ctx)
	if err != nil {
		return uuid.Nil, nil, nil, err
	}
	updates := make([]model.UserUpdate, len(users))
	for i, u := range users {
		updates[i] = model.UserUpdate{Create: true, User: u}
	}
	id, q := c.userFan.Subscribe()
	return id, q, updates, nil
}

func (c *Core) UnsubscribeMessages(id uuid.UUID) { c.msgFan.Unsubscribe(id) }
func (c *Core) UnsubscribeUsers(id uuid.UUID)    { c.userFan.Unsubscribe(id) }
