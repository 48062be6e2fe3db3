package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/apna-adda/adda/internal/apiserver/database"
	"github.com/apna-adda/adda/internal/common/cnst"
	"github.com/apna-adda/adda/internal/common/dto"
	"github.com/apna-adda/adda/internal/upload"
)

// Tenant handles tenant lead submissions.
type Tenant struct {
	db       database.Database
	uploader *upload.Uploader
	logger   *zap.Logger
}

// NewTenant creates a new tenant submission handler.
func NewTenant(db database.Database, uploader *upload.Uploader, logger *zap.Logger) *Tenant {
	return &Tenant{
		db:       db,
		uploader: uploader,
		logger:   logger,
	}
}

// SubmitDetails persists one tenant lead record with its photo.
func (h *Tenant) SubmitDetails(c *gin.Context) {
	var req dto.TenantSubmissionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid tenant submission.")
		return
	}

	fh, err := c.FormFile(cnst.FieldTenantPhoto)
	if err != nil || !tenantFieldsPresent(&req) {
		c.String(http.StatusBadRequest, "All fields including photo upload are required.")
		return
	}

	photoName, err := h.uploader.Save(fh, cnst.FieldTenantPhoto, cnst.DirTenantPhotos)
	if err != nil {
		h.logger.Error("failed to store tenant photo", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	tenant := &database.Tenant{
		TenantName:       req.TenantName,
		Age:              req.Age,
		Email:            req.Email,
		Phone:            req.Phone,
		NumPeople:        req.NumPeople,
		PropertySelected: req.PropertySelected,
		ListedAmount:     req.ListedAmount,
		ReadyToPay:       req.ReadyToPay,
		LeaseTime:        req.LeaseTime,
		Aadhaar:          req.Aadhaar,
		Photo:            photoName,
	}
	if err := h.db.CreateTenant(c.Request.Context(), tenant); err != nil {
		h.logger.Error("failed to save tenant details", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.Redirect(http.StatusFound, "/success.html")
}

func tenantFieldsPresent(req *dto.TenantSubmissionRequest) bool {
	return req.TenantName != "" &&
		req.Age > 0 &&
		req.Email != "" &&
		req.Phone != "" &&
		req.NumPeople > 0 &&
		req.PropertySelected != "" &&
		req.ListedAmount > 0 &&
		req.ReadyToPay > 0 &&
		req.LeaseTime != "" &&
		req.Aadhaar != ""
}
