// Package textproto implements the first-generation chat server: a
// null-terminated UTF-8 text protocol over a plain TCP socket, with
// in-memory accounts, a single-session-per-user gate, and an offline
// frame queue drained on login.
package textproto

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"path"
	"sort"
	"sync"

	"github.com/relaymesh/chat-service/internal/metrics"
)

// account is one registered user. The queue holds fully rendered
// frames for delivery on next login; session is nil while offline.
type account struct {
	password string
	session  *session
	queue    []string
}

// Server owns the listener and the account table.
type Server struct {
	log     *slog.Logger
	metrics metrics.Collector

	mu    sync.Mutex
	users map[string]*account

	lis net.Listener
}

func NewServer(log *slog.Logger, collector metrics.Collector) *Server {
	return &Server{
		log:     log,
		metrics: collector,
		users:   make(map[string]*account),
	}
}

// Listen binds the TCP listener.
func (s *Server) Listen(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("textproto: listen %s: %w", addr, err)
	}
	s.lis = lis
	s.log.Info("text chat server listening", "addr", lis.Addr().String())
	return nil
}

// Serve accepts sessions until the context ends. Listen must have
// succeeded first.
func (s *Server) Serve(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.lis.Close()
	}()

	for {
		conn, err := s.lis.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("textproto: accept: %w", err)
		}
		go s.serve(conn)
	}
}

// ListenAndServe is Listen followed by Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if err := s.Listen(addr); err != nil {
		return err
	}
	return s.Serve(ctx)
}

// Addr returns the bound address, valid after ListenAndServe starts.
func (s *Server) Addr() net.Addr {
	if s.lis == nil {
		return nil
	}
	return s.lis.Addr()
}

func (s *Server) serve(conn net.Conn) {
	sess := newSession(s, conn)
	s.metrics.StreamOpened()
	defer s.metrics.StreamClosed()
	sess.run()
}

// register adds the account and marks it logged in by sess.
func (s *Server) register(name, password string, sess *session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.users[name]; taken {
		s.metrics.AuthAttempt(false)
		return protocolErrorf("Username %q is not available.", name)
	}
	s.users[name] = &account{password: password, session: sess}
	s.metrics.AuthAttempt(true)
	s.metrics.UserCreated()
	return nil
}

// login authenticates and claims the single-session gate. When the
// gate is held, the sitting session gets a break-in notice and the
// caller is rejected.
func (s *Server) login(name, password string, sess *session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.users[name]
	if !ok {
		s.metrics.AuthAttempt(false)
		return protocolError("Incorrect username.")
	}
	if acct.password != password {
		s.metrics.AuthAttempt(false)
		return protocolError("Incorrect password.")
	}
	if acct.session != nil {
		s.deliverLocked(acct, fmt.Sprintf(
			"ADMIN Someone from %s tried to log in as you and guessed your password correctly.",
			sess.remote()))
		s.metrics.AuthAttempt(false)
		return protocolErrorf("%s is already logged in; are you trying to break in?", name)
	}
	acct.session = sess
	s.metrics.AuthAttempt(true)
	return nil
}

// logout releases the gate held by sess, if it still holds it.
func (s *Server) logout(name string, sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if acct, ok := s.users[name]; ok && acct.session == sess {
		acct.session = nil
	}
}

// drainQueue returns and clears the offline frames for name.
func (s *Server) drainQueue(name string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.users[name]
	if !ok {
		return nil
	}
	frames := acct.queue
	acct.queue = nil
	return frames
}

// listUsers renders the LISTING frame body for the glob pattern.
func (s *Server) listUsers(glob string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.users))
	for name := range s.users {
		ok, err := path.Match(glob, name)
		if err != nil {
			return "", protocolError("Invalid pattern.")
		}
		if ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	lines := "LISTING"
	for _, name := range names {
		lines += "\n" + name
		if s.users[name].session != nil {
			lines += " (online)"
		}
	}
	return lines, nil
}

// deleteUser removes the account; the caller disconnects afterwards.
func (s *Server) deleteUser(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, name)
	s.metrics.UserDeleted()
}

// message routes a rendered MESSAGE frame to the recipient, queueing
// it when the recipient is offline or unreachable.
func (s *Server) message(to, frame string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.users[to]
	if !ok {
		return protocolErrorf("%s is not a user; try LIST to see available users.", to)
	}
	s.deliverLocked(acct, frame)
	s.metrics.MessageAccepted()
	return nil
}

// deliverLocked writes a frame to the account's live session, falling
// back to the offline queue. Caller holds s.mu.
func (s *Server) deliverLocked(acct *account, frame string) {
	if acct.session != nil {
		if err := acct.session.send(frame); err == nil {
			s.metrics.MessageDelivered()
			return
		}
	}
	acct.queue = append(acct.queue, frame)
}

// protocolError is reported to the client as an ERROR frame; the
// session survives it.
type protocolErr struct{ msg string }

func (e protocolErr) Error() string { return e.msg }

func protocolError(msg string) error { return protocolErr{msg} }

func protocolErrorf(format string, args ...any) error {
	return protocolErr{fmt.Sprintf(format, args...)}
}

func isProtocolError(err error) bool {
	var pe protocolErr
	return errors.As(err, &pe)
}
