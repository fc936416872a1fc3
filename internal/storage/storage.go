// Package storage defines the persistence surface shared by the SQLite
// and in-memory backends.
package storage

import (
	"context"
	"errors"

	"github.com/relaymesh/chat-service/internal/domain/model"
)

var (
	// ErrUserExists is returned by InsertUser when the username is taken.
	ErrUserExists = errors.New("storage: user already exists")

	// ErrDuplicateMessage is returned by AppendMessage when a message
	// with the same (from, to, sent) identity is already stored.
	ErrDuplicateMessage = errors.New("storage: duplicate message")
)

// Store is the durable state of one replica: accounts and the full
// message history.
type Store interface {
	// InsertUser adds an account. ErrUserExists if the name is taken.
	InsertUser(ctx context.Context, u model.User) error

	// DeleteUser removes the account and every message it sent or
	// received. Deleting an absent user is a no-op.
	DeleteUser(ctx context.Context, name string) error

	// Authenticate reports whether the name/password pair matches a
	// stored account.
	Authenticate(ctx context.Context, name, password string) (bool, error)

	// UserExists reports whether an account with the given name exists.
	UserExists(ctx context.Context, name string) (bool, error)

	// ListUsers returns usernames matching the glob pattern, sorted.
	// An empty pattern matches every user.
	ListUsers(ctx context.Context, glob string) ([]string, error)

	// ScanUsers returns every account, for state transfer.
	ScanUsers(ctx context.Context) ([]model.User, error)

	// AppendMessage stores m, assigning the canonical timestamp when
	// m.Sent is empty. ErrDuplicateMessage if the identity is taken.
	AppendMessage(ctx context.Context, m *model.Message) error

	// ScanMessages returns messages sent or received by participant in
	// sent order. An empty participant selects the whole history.
	ScanMessages(ctx context.Context, participant string) ([]model.Message, error)

	Close() error
}
