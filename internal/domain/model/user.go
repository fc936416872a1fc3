package model

import "strings"

// User is a chat account. Passwords are stored as received; transport
// and storage are assumed trusted.
type User struct {
	Name     string
	Password string
}

// UserUpdate is a replicated account mutation. Create false means the
// account and all of its conversations were deleted.
type UserUpdate struct {
	Create bool
	User   User
}

// ValidName reports whether name is acceptable as a username: non-empty
// and free of whitespace.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	fields := strings.Fields(name)
	return len(fields) == 1 && fields[0] == name
}
