package models

import "time"

// User represents an account entity used for authentication and post
// ownership. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// ID is the unique identifier of the user, assigned by the database
	// on registration and immutable afterwards.
	ID int64 `json:"id"`

	// Email is the unique login identifier. It is normalized to lower
	// case before storage so that uniqueness is case-insensitive.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext, and is not
	// exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the request body for user registration. A plaintext
// password travels only inside this struct and never leaves the handler
// layer unhashed.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
