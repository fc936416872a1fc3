// Package memory is a process-local storage.Store for deployments that
// do not persist state across restarts.
package memory

import (
	"context"
	"path"
	"sort"
	"sync"
	"time"

	"github.com/relaymesh/chat-service/internal/domain/model"
	"github.com/relaymesh/chat-service/internal/storage"
)

// Store keeps accounts and history in maps and slices. Zero value is
// not usable; use New.
type Store struct {
	mu    sync.Mutex
	users map[string]string
	msgs  []model.Message
	seen  map[string]struct{}
	now   func() time.Time
}

var _ storage.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		users: make(map[string]string),
		seen:  make(map[string]struct{}),
		now:   time.Now,
	}
}

func (s *Store) Close() error { return nil }

func (s *Store) InsertUser(_ context.Context, u model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.Name]; ok {
		return storage.ErrUserExists
	}
	s.users[u.Name] = u.Password
	return nil
}

func (s *Store) DeleteUser(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, name)
	kept := s.msgs[:0]
	for _, m := range s.msgs {
		if m.From == name || m.To == name {
			delete(s.seen, m.Key())
			continue
		}
		kept = append(kept, m)
	}
	s.msgs = kept
	return nil
}

func (s *Store) Authenticate(_ context.Context, name, password string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pw, ok := s.users[name]
	return ok && pw == password, nil
}

func (s *Store) UserExists(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[name]
	return ok, nil
}

func (s *Store) ListUsers(_ context.Context, glob string) ([]string, error) {
	if glob == "" {
		glob = "*"
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var names []string
	for name := range s.users {
		ok, err := path.Match(glob, name)
		if err != nil {
			return nil, err
		}
		if ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) ScanUsers(_ context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]model.User, 0, len(s.users))
	for name, pw := range s.users {
		users = append(users, model.User{Name: name, Password: pw})
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users, nil
}

func (s *Store) AppendMessage(_ context.Context, m *model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.Sent == "" {
		m.Sent = model.FormatSent(s.now())
	}
	if _, dup := s.seen[m.Key()]; dup {
		return storage.ErrDuplicateMessage
	}
	s.seen[m.Key()] = struct{}{}
	s.msgs = append(s.msgs, *m)
	return nil
}

func (s *Store) ScanMessages(_ context.Context, participant string) ([]model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var msgs []model.Message
	for _, m := range s.msgs {
		if participant == "" || m.From == participant || m.To == participant {
			msgs = append(msgs, m)
		}
	}
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].Sent < msgs[j].Sent })
	return msgs, nil
}
