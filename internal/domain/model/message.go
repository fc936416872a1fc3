package model

import "time"

// SentLayout is the canonical wall-clock format for message timestamps,
// millisecond precision, always UTC.
const SentLayout = "2006-01-02T15:04:05.000Z"

// Message is one chat message as stored and replicated. Sent is the
// canonical timestamp string; together with From and To it identifies
// the message across replicas.
type Message struct {
	From string
	To   string
	Text string
	Sent string
}

// Key returns the replica-wide identity of the message.
func (m Message) Key() string {
	return m.From + "\x00" + m.To + "\x00" + m.Sent
}

// FormatSent renders t in the canonical timestamp format.
func FormatSent(t time.Time) string {
	return t.UTC().Format(SentLayout)
}

// ParseSent parses a canonical timestamp string.
func ParseSent(s string) (time.Time, error) {
	return time.Parse(SentLayout, s)
}
