package model

import "time"

// Admin mirrors the 'admins' table.  Admin accounts authenticate the
// catalog management endpoints; there is no public registration.
type Admin struct {
	ID           uint64
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
