// Package models holds plain data records persisted by the repositories.
// Persistence behavior lives in the repository packages, not here.
package models

import "time"

// User is an account record. The password hash never leaves the server:
// it is excluded from every JSON rendering.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
