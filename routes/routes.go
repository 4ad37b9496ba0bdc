package routes

import (
	"time"

	"morisbiz/handlers"
	"morisbiz/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the catalog, real estate, contact and
// tracking endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/businesses", hb.Business.ListBusinessesHandler)
		api.GET("/businesses/featured", hb.Business.FeaturedBusinessesHandler)
		api.GET("/businesses/search", hb.Business.SearchBusinessesHandler)
		api.GET("/businesses/:id", hb.Business.GetBusinessHandler)
		api.POST("/businesses", hb.Business.CreateBusinessHandler)
		api.POST("/businesses/:id/reviews", hb.Business.AddReviewHandler)

		api.GET("/properties", hb.Property.ListPropertiesHandler)
		api.GET("/properties/:id", hb.Property.GetPropertyHandler)
		api.POST("/properties", hb.Property.CreatePropertyHandler)

		api.POST("/contact", hb.Contact.SubmitContactHandler)
		api.POST("/analytics/pageview", hb.Analytics.PageViewHandler)
	}
}

// RegisterAdminRoutes registers the moderation panel endpoints. Everything
// except login sits behind the admin JWT middleware.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", hb.Admin.LoginHandler)

		protected := api.Group("")
		protected.Use(middleware.AdminAuthMiddleware())
		protected.GET("/businesses", hb.Admin.ListBusinessesHandler)
		protected.PUT("/businesses/:id", hb.Admin.UpdateBusinessHandler)
		protected.PUT("/businesses/:id/approve", hb.Admin.ApproveBusinessHandler)
		protected.PUT("/businesses/:id/reject", hb.Admin.RejectBusinessHandler)
		protected.DELETE("/businesses/:id", hb.Admin.DeleteBusinessHandler)

		protected.GET("/properties", hb.Admin.ListPropertiesHandler)
		protected.PUT("/properties/:id/approve", hb.Admin.ApprovePropertyHandler)
		protected.PUT("/properties/:id/reject", hb.Admin.RejectPropertyHandler)
		protected.DELETE("/properties/:id", hb.Admin.DeletePropertyHandler)

		protected.GET("/contact-submissions", hb.Admin.ListContactSubmissionsHandler)
		protected.PUT("/contact-submissions/:id/read", hb.Admin.MarkSubmissionReadHandler)

		protected.GET("/dashboard", hb.Admin.DashboardHandler)
		protected.GET("/analytics", hb.Admin.AnalyticsRangeHandler)
		protected.POST("/import", hb.Admin.ImportCompaniesHandler)
	}
}

// RegisterRoutes wires CORS, the health endpoint and every route group.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)

	RegisterPublicRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
