package models

import "time"

// User represents a user record in the database.
// The password is stored exactly as received and is never serialized back
// to clients.
type User struct {
	ID          int64     `json:"id" db:"id"`                     // Primary key
	FirstName   string    `json:"firstName" db:"first_name"`      // Given name
	LastName    string    `json:"lastName" db:"last_name"`        // Family name
	Email       string    `json:"email" db:"email"`               // Unique email
	Password    string    `json:"-" db:"password"`                // Opaque credential
	DateOfBirth *string   `json:"dateOfBirth" db:"date_of_birth"` // Optional, caller-supplied string
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`      // Creation timestamp
}
