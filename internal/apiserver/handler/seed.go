package handler

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/apna-adda/adda/internal/apiserver/database"
	"github.com/apna-adda/adda/internal/common/cnst"
)

// Seeder performs the one-shot bulk load of a category store from its JSON
// fixture file.
type Seeder struct {
	db      database.Database
	dataDir string
	logger  *zap.Logger
}

// NewSeeder creates a new seed handler reading fixtures from dataDir.
func NewSeeder(db database.Database, dataDir string, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:      db,
		dataDir: dataDir,
		logger:  logger,
	}
}

// Load returns a handler seeding one category store. Seeding a non-empty
// store is a no-op reported as already loaded.
func (s *Seeder) Load(category cnst.ListingCategory) gin.HandlerFunc {
	fixture := cnst.SeedCategories[category]
	return func(c *gin.Context) {
		count, err := s.db.CountListings(c.Request.Context(), category)
		if err != nil {
			s.logger.Error("failed to count listings",
				zap.String("category", string(category)),
				zap.Error(err))
			c.String(http.StatusInternalServerError, "Error loading data.")
			return
		}
		if count > 0 {
			c.String(http.StatusOK, "%s data already loaded. No new insert.", category)
			return
		}

		data, err := os.ReadFile(filepath.Join(s.dataDir, fixture))
		if err != nil {
			s.logger.Error("failed to read seed fixture",
				zap.String("fixture", fixture),
				zap.Error(err))
			c.String(http.StatusInternalServerError, "Error loading data: %v", err)
			return
		}

		var listings []*database.Listing
		if err := json.Unmarshal(data, &listings); err != nil {
			s.logger.Error("failed to parse seed fixture",
				zap.String("fixture", fixture),
				zap.Error(err))
			c.String(http.StatusInternalServerError, "Error loading data: %v", err)
			return
		}

		if err := s.db.CreateListings(c.Request.Context(), category, listings); err != nil {
			s.logger.Error("failed to insert seed data",
				zap.String("category", string(category)),
				zap.Error(err))
			c.String(http.StatusInternalServerError, "Error loading data: %v", err)
			return
		}

		s.logger.Info("seeded listing store",
			zap.String("category", string(category)),
			zap.Int("count", len(listings)))
		c.String(http.StatusOK, "%s data loaded successfully (%d records).", category, len(listings))
	}
}
