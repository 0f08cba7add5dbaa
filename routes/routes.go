// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"docta-server/handlers"
	"docta-server/middleware"
	"docta-server/models"
)

// HandlerBundle groups the handlers wired in main.
type HandlerBundle struct {
	Period  *handlers.PeriodHandler
	Session *handlers.SessionHandler
	Rating  *handlers.RatingHandler
	Doctor  *handlers.DoctorHandler
}

// RegisterPeriodRoutes registers availability-slot endpoints.
func RegisterPeriodRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/periods")
	{
		// Public availability listing.
		api.GET("/doctor/:doctorId", hb.Period.GetDoctorAvailabilityHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(), middleware.RequireRoles(models.RoleDoctor))
		protected.POST("", hb.Period.CreatePeriodHandler)
		protected.GET("/doctor/me", hb.Period.GetMyPeriodsHandler)
		protected.DELETE("/doctor/me/:periodId", hb.Period.DeleteMyPeriodHandler)
	}
}

// RegisterSessionRoutes registers the reservation endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/sessions")
	api.Use(middleware.JWTAuthMiddleware())
	{
		patient := api.Group("")
		patient.Use(middleware.RequireRoles(models.RolePatient))
		patient.POST("/book/:periodId", hb.Session.BookSessionHandler)
		patient.GET("/patient", hb.Session.ListPatientSessionsHandler)
		patient.GET("/patient/:sessionId", hb.Session.GetPatientSessionHandler)
		patient.PUT("/patient/:sessionId/cancel", hb.Session.CancelByPatientHandler)

		doctor := api.Group("")
		doctor.Use(middleware.RequireRoles(models.RoleDoctor))
		doctor.GET("/doctor", hb.Session.ListDoctorSessionsHandler)
		doctor.GET("/doctor/:sessionId", hb.Session.GetDoctorSessionHandler)
		doctor.GET("/doctor/:sessionId/patient", hb.Session.GetPatientFromSessionHandler)
		doctor.PUT("/doctor/:sessionId/cancel", hb.Session.CancelByDoctorHandler)
	}
}

// RegisterRatingRoutes registers rating endpoints.
func RegisterRatingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/ratings")
	{
		// Public doctor rating listing.
		api.GET("/doctor/:doctorId", hb.Rating.ListDoctorRatingsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(), middleware.RequireRoles(models.RolePatient))
		protected.POST("/session/:sessionId", hb.Rating.CreateRatingHandler)
		protected.PATCH("/:ratingId", hb.Rating.UpdateRatingHandler)
		protected.DELETE("/:ratingId", hb.Rating.DeleteRatingHandler)
	}
}

// RegisterDoctorRoutes registers the public doctor read endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.GET("", hb.Doctor.FilterDoctorsHandler)
		api.GET("/slug/:slug", hb.Doctor.GetDoctorBySlugHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Docta"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterDoctorRoutes(r, hb)
	RegisterPeriodRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterRatingRoutes(r, hb)
}
