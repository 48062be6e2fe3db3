package session

import (
	"context"
)

// UserIdentity is the end-user slot of a session. It holds copies of the
// credential fields, never a live reference to the stored record.
type UserIdentity struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// AdminIdentity is the admin slot of a session.
type AdminIdentity struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session carries up to one end-user identity and, independently, up to one
// admin identity. A single browser session may hold both at once.
type Session struct {
	ID    string         `json:"id"`
	User  *UserIdentity  `json:"user,omitempty"`
	Admin *AdminIdentity `json:"admin,omitempty"`
}

// Clone returns a deep copy. Callers mutate their own copy and publish it
// through Store.Save; stored sessions are never shared between requests.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := &Session{ID: s.ID}
	if s.User != nil {
		u := *s.User
		c.User = &u
	}
	if s.Admin != nil {
		a := *s.Admin
		c.Admin = &a
	}
	return c
}

// Store defines the interface for session persistence. Sessions expire after
// a fixed inactivity window measured from the last Save; an expired session
// reads as absent.
type Store interface {
	// Get returns the session with the given id, or errorx.ErrSessionNotFound
	// when the id is unknown or the session has expired.
	Get(ctx context.Context, id string) (*Session, error)

	// Save persists the session and refreshes its expiry window.
	Save(ctx context.Context, sess *Session) error

	// Delete removes the session. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}
