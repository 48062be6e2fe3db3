package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/apna-adda/adda/internal/apiserver/database"
	"github.com/apna-adda/adda/internal/common/dto"
	"github.com/apna-adda/adda/internal/common/errorx"
	"github.com/apna-adda/adda/internal/session"
)

// Auth handles end-user registration, login and session reads.
type Auth struct {
	db       database.Database
	sessions *session.Manager
	logger   *zap.Logger
}

// NewAuth creates a new end-user authentication handler.
func NewAuth(db database.Database, sessions *session.Manager, logger *zap.Logger) *Auth {
	return &Auth{
		db:       db,
		sessions: sessions,
		logger:   logger,
	}
}

// Register handles end-user registration. The row is persisted without any
// duplicate check.
func (h *Auth) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid registration request.")
		return
	}

	user := &database.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := h.db.CreateUser(c.Request.Context(), user); err != nil {
		h.logger.Error("failed to register user", zap.Error(err))
		c.String(http.StatusInternalServerError, "Registration failed. Please try again.")
		return
	}

	c.Redirect(http.StatusFound, "/login.html")
}

// Login handles end-user login by exact match on email and password.
func (h *Auth) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid login request.")
		return
	}

	user, err := h.db.FindUserByCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, errorx.ErrNotFound) {
			c.String(http.StatusUnauthorized, "Login failed: Invalid credentials")
			return
		}
		h.logger.Error("failed to look up user", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error during login.")
		return
	}

	err = h.sessions.SetUser(c, session.UserIdentity{
		Email:    user.Email,
		Username: user.Username,
	})
	if err != nil {
		h.logger.Error("failed to save session", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error during login.")
		return
	}

	c.Redirect(http.StatusFound, "/Homepage.html")
}

// SessionInfo reports whether the end-user slot of the session is set. It
// never fails.
func (h *Auth) SessionInfo(c *gin.Context) {
	resp := dto.SessionInfoResponse{}
	if user := h.sessions.User(c); user != nil {
		resp.LoggedIn = true
		resp.Username = &user.Username
	}
	c.JSON(http.StatusOK, resp)
}

// Logout destroys the whole session, ending the admin identity too if one
// was set.
func (h *Auth) Logout(c *gin.Context) {
	if err := h.sessions.Destroy(c); err != nil {
		h.logger.Error("failed to destroy session", zap.Error(err))
		c.String(http.StatusInternalServerError, "Logout failed.")
		return
	}
	c.Redirect(http.StatusFound, "/Homepage.html")
}

// Me returns the authenticated end-user identity. Guarded by
// middleware.RequireUser.
func (h *Auth) Me(c *gin.Context) {
	user := c.MustGet("user").(*session.UserIdentity)
	c.JSON(http.StatusOK, gin.H{
		"username": user.Username,
		"email":    user.Email,
	})
}
