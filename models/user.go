package models

import "time"

// User represents one of the two bootstrap accounts allowed to operate the
// kanban board. Credential data is stored exclusively as a bcrypt hash.
//
// Username policy: usernames are stored and compared exactly as registered
// (no case folding); leading and trailing whitespace is trimmed on input.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login identifier.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// It MUST never hold plaintext and is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the request payload for registration and login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PasswordChange is the request payload for the change-password endpoint.
type PasswordChange struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}
