package domain

import "strings"

// User represents an account in the system. Users are created at signup and
// never updated or deleted through the exposed API.
type User struct {
	Record
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash,omitempty"` // Stored hashed, filter from API responses
}

// NormalizeUsername canonicalizes a username for storage and index lookups.
// Usernames are stored trimmed; lookups must apply the same transformation.
func NormalizeUsername(username string) string {
	return strings.TrimSpace(username)
}
