package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/apna-adda/adda/internal/apiserver/database"
	"github.com/apna-adda/adda/internal/common/cnst"
	"github.com/apna-adda/adda/internal/common/dto"
	"github.com/apna-adda/adda/internal/common/errorx"
	"github.com/apna-adda/adda/internal/session"
	"github.com/apna-adda/adda/internal/upload"
)

// bcryptCost matches the work factor the admin records were created with.
const bcryptCost = 10

// Admin handles admin registration, login and session reads.
type Admin struct {
	db       database.Database
	sessions *session.Manager
	uploader *upload.Uploader
	logger   *zap.Logger
}

// NewAdmin creates a new admin authentication handler.
func NewAdmin(db database.Database, sessions *session.Manager, uploader *upload.Uploader, logger *zap.Logger) *Admin {
	return &Admin{
		db:       db,
		sessions: sessions,
		uploader: uploader,
		logger:   logger,
	}
}

// Register handles admin registration with the ownership paper upload. The
// uploaded file is persisted before the conflict check and is not removed
// when the registration is subsequently rejected.
func (h *Admin) Register(c *gin.Context) {
	var req dto.AdminRegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid registration request.")
		return
	}

	fh, err := c.FormFile(cnst.FieldOwnershipPaper)
	if err != nil || req.Name == "" || req.Email == "" || req.Password == "" || req.Aadhaar == "" {
		c.String(http.StatusBadRequest, "All fields including ownership paper upload are required.")
		return
	}

	paperName, err := h.uploader.Save(fh, cnst.FieldOwnershipPaper, cnst.DirOwnershipPapers)
	if err != nil {
		h.logger.Error("failed to store ownership paper", zap.Error(err))
		c.String(http.StatusInternalServerError, "Server error during admin registration.")
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		c.String(http.StatusInternalServerError, "Server error during admin registration.")
		return
	}

	admin := &database.Admin{
		Name:                   req.Name,
		Email:                  req.Email,
		PasswordHash:           string(passwordHash),
		Aadhaar:                req.Aadhaar,
		OwnershipPaperFileName: paperName,
	}
	if err := h.db.CreateAdmin(c.Request.Context(), admin); err != nil {
		switch {
		case errors.Is(err, errorx.ErrInvalidAadhaar):
			c.String(http.StatusBadRequest, "Invalid Aadhaar number. Must be exactly 12 digits.")
		case errors.Is(err, errorx.ErrAdminExists):
			c.String(http.StatusBadRequest, "Admin with given email or Aadhaar already exists.")
		default:
			h.logger.Error("failed to register admin", zap.Error(err))
			c.String(http.StatusInternalServerError, "Server error during admin registration.")
		}
		return
	}

	c.Redirect(http.StatusFound, "/admin-login.html")
}

// Login handles admin login and fills the admin slot of the session.
func (h *Admin) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid login request.")
		return
	}

	admin, err := h.db.GetAdminByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, errorx.ErrNotFound) {
			c.String(http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.logger.Error("failed to look up admin", zap.Error(err))
		c.String(http.StatusInternalServerError, "Server error during admin login.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		c.String(http.StatusUnauthorized, "Invalid email or password")
		return
	}

	err = h.sessions.SetAdmin(c, session.AdminIdentity{
		ID:    admin.ID,
		Name:  admin.Name,
		Email: admin.Email,
	})
	if err != nil {
		h.logger.Error("failed to save session", zap.Error(err))
		c.String(http.StatusInternalServerError, "Server error during admin login.")
		return
	}

	c.Redirect(http.StatusFound, "/admin.html")
}

// Logout clears the admin slot only. An end-user identity on the same
// session survives.
func (h *Admin) Logout(c *gin.Context) {
	if err := h.sessions.ClearAdmin(c); err != nil {
		h.logger.Error("failed to clear admin session", zap.Error(err))
	}
	c.Redirect(http.StatusFound, "/admin-login.html")
}

// SessionInfo reports whether the admin slot of the session is set. It never
// fails.
func (h *Admin) SessionInfo(c *gin.Context) {
	resp := dto.AdminSessionInfoResponse{}
	if admin := h.sessions.Admin(c); admin != nil {
		resp.LoggedIn = true
		resp.Name = &admin.Name
		resp.Email = &admin.Email
	}
	c.JSON(http.StatusOK, resp)
}

// Me returns the full admin record of the authenticated admin. Guarded by
// middleware.RequireAdmin.
func (h *Admin) Me(c *gin.Context) {
	identity := c.MustGet("admin").(*session.AdminIdentity)

	admin, err := h.db.GetAdminByEmail(c.Request.Context(), identity.Email)
	if err != nil {
		h.logger.Error("failed to load admin record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, admin)
}
