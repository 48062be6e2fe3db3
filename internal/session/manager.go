package session

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/apna-adda/adda/internal/common/cnst"
)

// Manager binds sessions to the request cookie. A session is created lazily
// on the first write; reads on a missing or expired cookie behave as
// anonymous.
type Manager struct {
	store Store
	ttl   time.Duration
}

// NewManager creates a new session manager.
func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{
		store: store,
		ttl:   ttl,
	}
}

// Current returns the session bound to the request cookie, or nil when there
// is none.
func (m *Manager) Current(c *gin.Context) *Session {
	id, err := c.Cookie(cnst.SessionCookie)
	if err != nil || id == "" {
		return nil
	}
	sess, err := m.store.Get(c.Request.Context(), id)
	if err != nil {
		return nil
	}
	return sess
}

// User returns the end-user identity of the current session, or nil.
func (m *Manager) User(c *gin.Context) *UserIdentity {
	if sess := m.Current(c); sess != nil {
		return sess.User
	}
	return nil
}

// Admin returns the admin identity of the current session, or nil.
func (m *Manager) Admin(c *gin.Context) *AdminIdentity {
	if sess := m.Current(c); sess != nil {
		return sess.Admin
	}
	return nil
}

// SetUser fills the end-user slot of the current session, creating the
// session if needed. The admin slot is left untouched.
func (m *Manager) SetUser(c *gin.Context, identity UserIdentity) error {
	sess := m.ensure(c)
	sess.User = &identity
	return m.save(c, sess)
}

// SetAdmin fills the admin slot of the current session, creating the session
// if needed. The end-user slot is left untouched.
func (m *Manager) SetAdmin(c *gin.Context, identity AdminIdentity) error {
	sess := m.ensure(c)
	sess.Admin = &identity
	return m.save(c, sess)
}

// ClearAdmin empties the admin slot only, leaving any end-user identity and
// the session itself intact.
func (m *Manager) ClearAdmin(c *gin.Context) error {
	sess := m.Current(c)
	if sess == nil {
		return nil
	}
	sess.Admin = nil
	return m.save(c, sess)
}

// Destroy deletes the whole session, ending both identities, and expires the
// cookie.
func (m *Manager) Destroy(c *gin.Context) error {
	id, err := c.Cookie(cnst.SessionCookie)
	if err != nil || id == "" {
		return nil
	}
	if err := m.store.Delete(c.Request.Context(), id); err != nil {
		return err
	}
	c.SetCookie(cnst.SessionCookie, "", -1, "/", "", false, true)
	return nil
}

func (m *Manager) ensure(c *gin.Context) *Session {
	if sess := m.Current(c); sess != nil {
		return sess
	}
	return &Session{ID: uuid.New().String()}
}

func (m *Manager) save(c *gin.Context, sess *Session) error {
	if err := m.store.Save(c.Request.Context(), sess); err != nil {
		return err
	}
	c.SetCookie(cnst.SessionCookie, sess.ID, int(m.ttl.Seconds()), "/", "", false, true)
	return nil
}
