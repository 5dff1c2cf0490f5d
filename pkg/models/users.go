package models

import "time"

// User is an account that owns contacts. Accounts are created out of band
// (see the create-user subcommand of libreta-rest); the API never mutates
// them. The password hash stays out of every JSON response.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}

// Session binds an opaque bearer token to a user. A session is created on
// login and removed on logout, after which the token is dead for good.
type Session struct {
	Token     string
	UserID    int64
	CreatedAt time.Time
}
