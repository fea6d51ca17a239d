package models

import "time"

// User is the owner/admin identity record. Password holds the stored
// credential (a bcrypt hash when created through the user service) and is
// never serialized.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Email     *string   `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUser is the client-suppliable subset of User.
type NewUser struct {
	Username string
	Password string
	Email    *string
}
