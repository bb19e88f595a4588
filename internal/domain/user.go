package domain

import (
	"net/mail"
	"strings"
	"time"
)

// User owns a set of todos; every store and board is scoped to its ID.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// NormalizeEmail trims and lowercases an address so lookups ignore case.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail accepts a bare address only, not "Name <addr>".
func ValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
