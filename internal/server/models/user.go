// Package models defines the server-side account records persisted next to
// RainChecks.
package models

import "time"

// User is a registered account. PasswordHash holds a bcrypt hash.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}
