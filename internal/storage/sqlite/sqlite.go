// Package sqlite persists accounts and message history in a single
// SQLite database file, shared by every server process pointed at it.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"modernc.org/sqlite"

	"github.com/relaymesh/chat-service/internal/domain/model"
	"github.com/relaymesh/chat-service/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	name     TEXT PRIMARY KEY,
	password TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS messages (
	"from" TEXT NOT NULL,
	"to"   TEXT NOT NULL,
	text   TEXT NOT NULL,
	sent   TEXT NOT NULL,
	UNIQUE ("from", "to", sent)
);
CREATE INDEX IF NOT EXISTS messages_sent ON messages (sent ASC);
`

// Store implements storage.Store on a SQLite file via the pure-Go
// modernc driver.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

var _ storage.Store = (*Store)(nil)

// Open opens (creating if needed) the database at path and applies the
// schema. WAL keeps concurrent replica processes on one file workable.
func Open(path string) (*Store, error) {
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) InsertUser(ctx context.Context, u model.User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (name, password) VALUES (?, ?)`,
		u.Name, u.Password)
	if isConstraint(err) {
		return storage.ErrUserExists
	}
	if err != nil {
		return fmt.Errorf("sqlite: insert user: %w", err)
	}
	return nil
}

func (s *Store) DeleteUser(ctx context.Context, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin delete user: %w", err)
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM messages WHERE "from" = ? OR "to" = ?`, name, name); err != nil {
		return fmt.Errorf("sqlite: delete conversations: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM users WHERE name = ?`, name); err != nil {
		return fmt.Errorf("sqlite: delete user: %w", err)
	}
	return tx.Commit()
}

func (s *Store) Authenticate(ctx context.Context, name, password string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE name = ? AND password = ?`,
		name, password).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("sqlite: authenticate: %w", err)
	}
	return n > 0, nil
}

func (s *Store) UserExists(ctx context.Context, name string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE name = ?`, name).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("sqlite: user exists: %w", err)
	}
	return n > 0, nil
}

func (s *Store) ListUsers(ctx context.Context, glob string) ([]string, error) {
	if glob == "" {
		glob = "*"
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM users WHERE name GLOB ? ORDER BY name`, glob)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list users: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("sqlite: scan username: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *Store) ScanUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, password FROM users ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: scan users: %w", err)
	}
	defer rows.Close()
	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.Name, &u.Password); err != nil {
			return nil, fmt.Errorf("sqlite: scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Store) AppendMessage(ctx context.Context, m *model.Message) error {
	if m.Sent == "" {
		m.Sent = model.FormatSent(s.now())
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages ("from", "to", text, sent) VALUES (?, ?, ?, ?)`,
		m.From, m.To, m.Text, m.Sent)
	if isConstraint(err) {
		return storage.ErrDuplicateMessage
	}
	if err != nil {
		return fmt.Errorf("sqlite: append message: %w", err)
	}
	return nil
}

func (s *Store) ScanMessages(ctx context.Context, participant string) ([]model.Message, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if participant == "" {
		rows, err = s.db.QueryContext(ctx,
			`SELECT "from", "to", text, sent FROM messages ORDER BY sent ASC`)
	} else {
		rows, err = s.db.QueryContext(ctx,
			`SELECT "from", "to", text, sent FROM messages
			 WHERE "from" = ? OR "to" = ? ORDER BY sent ASC`,
			participant, participant)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: scan messages: %w", err)
	}
	defer rows.Close()
	var msgs []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.From, &m.To, &m.Text, &m.Sent); err != nil {
			return nil, fmt.Errorf("sqlite: scan message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// SQLITE_CONSTRAINT plus the UNIQUE and PRIMARYKEY extended codes.
func isConstraint(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case 19, 1555, 2067:
		return true
	}
	return false
}
