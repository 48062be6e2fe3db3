package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/apna-adda/adda/internal/apiserver/middleware"
	"github.com/apna-adda/adda/internal/common/cnst"
	"github.com/apna-adda/adda/internal/session"
)

// Register wires every route onto the engine.
func Register(r *gin.Engine, auth *Auth, admin *Admin, tenant *Tenant, listings *Listing, seeder *Seeder, sessions *session.Manager) {
	// End-user authentication
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)
	r.GET("/session-info", auth.SessionInfo)
	r.GET("/logout", auth.Logout)
	r.GET("/me", middleware.RequireUser(sessions), auth.Me)

	// Admin authentication
	adminGroup := r.Group("/admin")
	{
		adminGroup.POST("/register", admin.Register)
		adminGroup.POST("/login-admin", admin.Login)
		adminGroup.GET("/logout-admin", admin.Logout)
		adminGroup.GET("/session-info-admin", admin.SessionInfo)
		adminGroup.GET("/me", middleware.RequireAdmin(sessions), admin.Me)
	}

	// Tenant submissions
	r.POST("/submit-details", tenant.SubmitDetails)

	// Database-backed listing reads
	r.GET("/api/listings", listings.List(cnst.CategoryListings))
	r.GET("/authority-plots", listings.List(cnst.CategoryAuthorityPlots))
	r.GET("/freehold-property", listings.List(cnst.CategoryFreeholdProp))
	r.GET("/industrial-plots", listings.List(cnst.CategoryIndustrialPlots))
	r.GET("/flats-apartments", listings.List(cnst.CategoryFlatsApartments))

	// One-shot seed loads
	r.GET("/load-data", seeder.Load(cnst.CategoryListings))
	r.GET("/load-authority-plots", seeder.Load(cnst.CategoryAuthorityPlots))
	r.GET("/load-freehold-property", seeder.Load(cnst.CategoryFreeholdProp))
	r.GET("/load-industrial-plots", seeder.Load(cnst.CategoryIndustrialPlots))
	r.GET("/load-flats-apartments", seeder.Load(cnst.CategoryFlatsApartments))

	// File-backed listing submission
	r.POST("/add-listing", listings.Add)
}
