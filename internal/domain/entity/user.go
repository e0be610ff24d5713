package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gift-tracker/internal/domain/port/core"
)

// MaxUsernameLength matches the users.username column width
const MaxUsernameLength = 50

// Role is the privilege level attached to a user
type Role string

const (
	// RoleAdmin is held by the single administrator account
	RoleAdmin Role = "admin"
	// RoleMember is held by every account created through admin tooling
	RoleMember Role = "member"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// IsAdmin reports whether the role carries administrator privilege
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User represents an account that can log in and record purchases
type User struct {
	ID           uint64    // Unique identifier for the user
	Username     string    // Unique login name
	PasswordHash string    // Opaque credential produced by the password hasher
	Role         Role      // Privilege level
	CreatedAt    time.Time // When the user was created
}

// NewUser creates a new user after validating the username and role.
// The password must already be hashed.
func NewUser(username, passwordHash string, role Role, timeProvider coreport.TimeProvider) (*User, error) {
	username, err := NormalizeUsername(username)
	if err != nil {
		return nil, err
	}

	if passwordHash == "" {
		return nil, errs.NewValidationError("password", "is required")
	}

	if !role.Valid() {
		return nil, errs.NewValidationError("role", "must be admin or member")
	}

	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    timeProvider.Now(),
	}, nil
}

// NormalizeUsername trims the username and checks its length
func NormalizeUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", errs.NewValidationError("username", "is required")
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return "", errs.NewValidationError("username", "must be at most 50 characters")
	}
	return username, nil
}

// IsAdmin reports whether the user is the administrator
func (u *User) IsAdmin() bool {
	return u.Role.IsAdmin()
}

// Identity returns the acting identity for this user
func (u *User) Identity() Identity {
	return Identity{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}
