package models

import "time"

// User represents a registered marketplace account. A User may only exist for
// a PRN that appears in the student roster, and at most one User exists per PRN.
type User struct {
	// UserID is the internal unique identifier assigned at creation.
	UserID int64 `json:"id"`

	// PRN is the 12-digit Permanent Registration Number linking this account
	// to exactly one roster entry. Immutable after signup.
	PRN string `json:"prn"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Never serialized and never returned to clients.
	PasswordHash string `json:"-"`

	// Name is the display name, shown as the seller on listings.
	Name string `json:"name"`

	// Course and Year mirror the roster entry the account was validated against.
	Course string `json:"course"`
	Year   int    `json:"year"`

	// Interests is a free-form profile field supplied at signup.
	Interests string `json:"interests"`

	// CreatedAt is the account creation timestamp, assigned by the database.
	CreatedAt time.Time `json:"-"`
}

// Public returns the client-safe projection of the user, excluding the
// password hash and server-side bookkeeping fields.
func (u User) Public() UserProfile {
	return UserProfile{
		UserID:    u.UserID,
		PRN:       u.PRN,
		Name:      u.Name,
		Course:    u.Course,
		Year:      u.Year,
		Interests: u.Interests,
	}
}

// UserProfile is the public projection of a User returned by the API.
type UserProfile struct {
	UserID    int64  `json:"id"`
	PRN       string `json:"prn"`
	Name      string `json:"name"`
	Course    string `json:"course"`
	Year      int    `json:"year"`
	Interests string `json:"interests"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
