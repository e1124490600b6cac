// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in and own tasks.
// Users are created at registration and never mutated afterwards.
type User struct {
	ID           uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Email        string    `json:"email"`      // Unique login identifier.
	Username     string    `json:"username"`   // Display name chosen at registration.
	PasswordHash string    `json:"-"`          // bcrypt hash of the password, never serialised.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when this account was created.
}
