package routes

import (
	"time"

	"villamar/handlers"
	"villamar/middleware"
	"villamar/services/admin"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the guest-facing booking endpoint and the
// gated booking management endpoints.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler, gate *admin.SessionGate) {
	api := r.Group("/api/bookings")
	{
		api.POST("", bh.CreateBooking)

		protected := api.Group("")
		protected.Use(middleware.AdminSessionMiddleware(gate))
		protected.GET("", bh.ListBookings)
		protected.GET("/:id/contract", bh.GetBookingContract)
		protected.PATCH("/:id/status", bh.UpdateBookingStatus)
	}
}

// RegisterAdminRoutes registers dashboard login and stats endpoints.
func RegisterAdminRoutes(r *gin.Engine, ah *handlers.AdminHandler, gate *admin.SessionGate) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", ah.Login)

		protected := api.Group("")
		protected.Use(middleware.AdminSessionMiddleware(gate))
		protected.POST("/logout", ah.Logout)
		protected.GET("/stats", ah.Stats)
	}
}

// RegisterHealthRoute exposes the health snapshot.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/health", handlers.Health)
}

// RegisterRoutes wires CORS and all route groups onto the router.
func RegisterRoutes(r *gin.Engine, bh *handlers.BookingHandler, ah *handlers.AdminHandler, gate *admin.SessionGate) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterBookingRoutes(r, bh, gate)
	RegisterAdminRoutes(r, ah, gate)
	RegisterHealthRoute(r)
}
