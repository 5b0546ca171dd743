package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether the role is part of the closed enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// Identity represents a known principal, independent of any live session.
// The set of identities is fixed at process start; identities are never
// created or destroyed at runtime.
type Identity struct {
	ID          string
	Email       string
	DisplayName string
	Role        Role
}

// Credential pairs an identity's email with the secret used for the
// authentication comparison. Credentials never leave the credential store
// and are never serialized alongside a session.
type Credential struct {
	Email  string
	Secret string
}

// Session is the server-side record for a signed-in principal. ID is an
// opaque session identifier (the storage key); the remaining fields mirror
// the authenticated Identity with the secret stripped.
type Session struct {
	ID          string `json:"-"`
	UserID      string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        Role   `json:"role"`
}

// IsAdmin reports whether the session belongs to an admin.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// SessionFromIdentity builds a session for the given identity under the
// provided opaque session ID.
func SessionFromIdentity(id string, ident Identity) Session {
	return Session{
		ID:          id,
		UserID:      ident.ID,
		Email:       ident.Email,
		DisplayName: ident.DisplayName,
		Role:        ident.Role,
	}
}
