package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/apna-adda/adda/internal/apiserver/database"
	"github.com/apna-adda/adda/internal/common/cnst"
	"github.com/apna-adda/adda/internal/common/dto"
	"github.com/apna-adda/adda/internal/common/errorx"
	"github.com/apna-adda/adda/internal/listing"
)

// Listing serves the database-backed listing reads and the file-backed
// listing submission.
type Listing struct {
	db       database.Database
	appender *listing.Appender
	logger   *zap.Logger
}

// NewListing creates a new listing handler.
func NewListing(db database.Database, appender *listing.Appender, logger *zap.Logger) *Listing {
	return &Listing{
		db:       db,
		appender: appender,
		logger:   logger,
	}
}

// List returns a handler serving all listings of one category as a JSON
// array.
func (h *Listing) List(category cnst.ListingCategory) gin.HandlerFunc {
	return func(c *gin.Context) {
		listings, err := h.db.GetListings(c.Request.Context(), category)
		if err != nil {
			h.logger.Error("failed to fetch listings",
				zap.String("category", string(category)),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch listings"})
			return
		}
		if listings == nil {
			listings = []*database.Listing{}
		}
		c.JSON(http.StatusOK, listings)
	}
}

// Add appends a listing to the category's JSON file. The entry never reaches
// the database-backed stores.
func (h *Listing) Add(c *gin.Context) {
	var req dto.AddListingRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required."})
		return
	}

	if req.City == "" || req.Title == "" || req.Type == "" || req.Rent == "" ||
		req.Area == "" || req.Image == "" || req.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required."})
		return
	}

	entry := listing.Entry{
		City:      req.City,
		Title:     req.Title,
		Type:      req.Type,
		Rent:      req.Rent,
		DateAdded: time.Now().Format("2006-01-02"),
		Area:      req.Area,
		Image:     req.Image,
	}
	if err := h.appender.Append(req.Category, entry); err != nil {
		if errors.Is(err, errorx.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category."})
			return
		}
		h.logger.Error("failed to append listing", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save listing."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Listing added successfully!"})
}
