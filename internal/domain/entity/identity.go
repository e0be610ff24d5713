package entity

// Identity is the authenticated actor on whose behalf an operation runs.
// The zero value is the anonymous identity.
type Identity struct {
	UserID   uint64
	Username string
	Role     Role
}

// Anonymous is the identity of an unauthenticated caller
var Anonymous = Identity{}

// IsAuthenticated reports whether the identity refers to a real user
func (i Identity) IsAuthenticated() bool {
	return i.UserID != 0
}

// IsAdmin reports whether the identity carries administrator privilege
func (i Identity) IsAdmin() bool {
	return i.IsAuthenticated() && i.Role.IsAdmin()
}

// String returns a label suitable for logs and denial messages
func (i Identity) String() string {
	if !i.IsAuthenticated() {
		return "anonymous"
	}
	return i.Username
}
