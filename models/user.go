package models

import "time"

// User is a registered HEFIN account.
type User struct {
	// UserID is the server-assigned identifier.
	UserID int64 `json:"id"`

	// Name is the display name, "<first> <last>" at registration.
	Name string `json:"name"`

	// Email is the login, stored lower-cased.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the password. Never serialized.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the relational table backing users.
func (u User) TableName() string {
	return "users"
}

// RegisterRequest is the sign-up form payload.
type RegisterRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	TermsAgree      bool   `json:"termsAgree"`
}

// LoginRequest is the sign-in form payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserProfile is the public view of a user returned to the site. It replaces
// the record the site keeps under the `currentUser` local storage key.
type UserProfile struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Initials    string `json:"initials"`
	AvatarColor string `json:"avatarColor"`
}

// AuthResult is returned by successful registration and login.
type AuthResult struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}
