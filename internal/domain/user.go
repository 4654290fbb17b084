package domain

import "time"

// User is an account record. PasswordHash holds a bcrypt hash and is never
// serialized to clients.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
