package models

import (
	"database/sql"
	"time"
)

// User represents an account holder. Only the bcrypt hash of the password is
// ever stored; the plaintext never leaves the auth handlers.
type User struct {
	UserID       string `json:"userID" db:"user_id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
	AuditFields

	// External identity provider fields (Google sign-in). Both are null for
	// password accounts.
	AuthProvider   sql.NullString `json:"-" db:"auth_provider"`
	ProviderUserID sql.NullString `json:"-" db:"provider_user_id"`

	// Refresh token fields. Only the SHA256 hash of the token is stored.
	RefreshTokenHash       sql.NullString `json:"-" db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `json:"-" db:"refresh_token_expiry_time"`
}

// HasValidRefreshToken reports whether the user has a stored refresh token
// that has not expired as of now.
func (u *User) HasValidRefreshToken(now time.Time) bool {
	return u.RefreshTokenHash.Valid && u.RefreshTokenExpiryTime.Valid && now.Before(u.RefreshTokenExpiryTime.Time)
}
