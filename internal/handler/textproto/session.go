package textproto

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"time"
)

// sentLayout mirrors ISO-8601 with a numeric UTC offset, the format
// clients of the text protocol already parse.
const sentLayout = "2006-01-02T15:04:05.999999-07:00"

// errSessionDeath unwinds a session whose transport is gone.
var errSessionDeath = errors.New("session death")

// session is one client connection: frame transport, the association
// handshake, and the command loop.
type session struct {
	srv  *Server
	conn net.Conn
	r    *bufio.Reader

	writeMu sync.Mutex

	user string
}

func newSession(srv *Server, conn net.Conn) *session {
	return &session{srv: srv, conn: conn, r: bufio.NewReader(conn)}
}

func (s *session) remote() string {
	return s.conn.RemoteAddr().String()
}

// readFrame returns the next null-terminated frame without its
// terminator.
func (s *session) readFrame() (string, error) {
	frame, err := s.r.ReadString(0)
	if err != nil {
		return "", errSessionDeath
	}
	return strings.TrimSuffix(frame, "\x00"), nil
}

// send writes one frame. Thread-safe; frames must not embed nulls.
func (s *session) send(frame string) error {
	if strings.ContainsRune(frame, 0) {
		return fmt.Errorf("frame contains premature null byte")
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if _, err := io.WriteString(s.conn, frame+"\x00"); err != nil {
		return errSessionDeath
	}
	return nil
}

func (s *session) sendError(err error) error {
	return s.send("ERROR " + err.Error())
}

// associate performs the REGISTER/LOGIN handshake, setting s.user on
// success.
func (s *session) associate() error {
	head, err := s.readFrame()
	if err != nil {
		return err
	}
	fields := strings.Fields(head)
	if len(fields) != 2 {
		return protocolError("Username must not contain whitespace or be empty.")
	}
	command, username := fields[0], fields[1]

	password, err := s.readFrame()
	if err != nil {
		return err
	}

	switch command {
	case "REGISTER":
		if err := s.srv.register(username, password, s); err != nil {
			return err
		}
	case "LOGIN":
		if err := s.srv.login(username, password, s); err != nil {
			return err
		}
	default:
		return protocolError("Must LOGIN or REGISTER to begin session.")
	}
	s.user = username
	return nil
}

// run drives the session: associate, drain the offline queue, then the
// command loop until the transport dies.
func (s *session) run() {
	defer s.conn.Close()
	defer func() {
		if s.user != "" {
			s.srv.logout(s.user, s)
		}
	}()

	for s.user == "" {
		err := s.associate()
		if err == nil {
			if err := s.send("SUCCESS You are logged in."); err != nil {
				return
			}
			break
		}
		if !isProtocolError(err) {
			return
		}
		if err := s.sendError(err); err != nil {
			return
		}
	}

	for _, frame := range s.srv.drainQueue(s.user) {
		if err := s.send(frame); err != nil {
			return
		}
	}

	for {
		frame, err := s.readFrame()
		if err != nil {
			return
		}
		if err := s.dispatch(frame); err != nil {
			if isProtocolError(err) {
				if err := s.sendError(err); err != nil {
					return
				}
				continue
			}
			return
		}
	}
}

func (s *session) dispatch(frame string) error {
	parts := strings.SplitN(frame, " ", 2)
	switch parts[0] {
	case "DELETE":
		s.srv.deleteUser(s.user)
		s.send("DELETED Account deleted; you are being disconnected.")
		return errSessionDeath
	case "LIST":
		glob := "*"
		if len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
			glob = strings.TrimSpace(parts[1])
		}
		listing, err := s.srv.listUsers(glob)
		if err != nil {
			return err
		}
		return s.send(listing)
	case "MESSAGE":
		if len(parts) != 2 {
			return protocolError("Incorrect message format.")
		}
		// Recipient ends at the first whitespace; the body keeps any
		// further newlines verbatim.
		sep := strings.IndexAny(parts[1], " \t\n")
		if sep <= 0 || sep == len(parts[1])-1 {
			return protocolError("Incorrect message format.")
		}
		to, body := parts[1][:sep], parts[1][sep+1:]
		rendered := "MESSAGE " + s.user + "\n" +
			"Sent: " + time.Now().UTC().Format(sentLayout) + "\n" +
			body
		if err := s.srv.message(to, rendered); err != nil {
			return err
		}
		return s.send("SENT")
	default:
		return protocolError("Unknown command.")
	}
}
