package routes

import (
	"time"

	"slotwise/handlers"
	"slotwise/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything route registration needs.
type Handlers struct {
	Availability *handlers.AvailabilityHandler
	Booking      *handlers.BookingHandler
	Schedule     *handlers.ScheduleHandler
	Auth         *handlers.AuthHandler
	Org          *handlers.OrgHandler
}

// RegisterRoutes wires all endpoints.
func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", handlers.Health)

	// Public endpoints: slot query and booking creation.
	public := r.Group("/api/orgs/:orgID")
	{
		public.GET("/booking-types/:typeID/slots", h.Availability.GetSlots)
		public.POST("/bookings", h.Booking.CreateBooking)
	}

	r.POST("/api/auth/signup", h.Org.Signup)
	r.POST("/api/auth/login", h.Auth.Login)

	// Dashboard endpoints, scoped to the org in the admin's token.
	dashboard := r.Group("/api/dashboard")
	dashboard.Use(middleware.JWTAuthAdminMiddleware())
	{
		dashboard.GET("/bookings", h.Booking.ListBookings)
		dashboard.GET("/bookings/:bookingID", h.Booking.GetBooking)
		dashboard.DELETE("/bookings/:bookingID", h.Booking.CancelBooking)

		dashboard.POST("/providers", h.Org.CreateProvider)
		dashboard.POST("/booking-types", h.Org.CreateBookingType)
		dashboard.GET("/booking-types", h.Org.ListBookingTypes)

		dashboard.PUT("/providers/:providerID/working-hours", h.Schedule.ReplaceWorkingHours)
		dashboard.POST("/providers/:providerID/overrides", h.Schedule.CreateOverride)
		dashboard.DELETE("/overrides/:overrideID", h.Schedule.DeleteOverride)
		dashboard.POST("/providers/:providerID/recurring-overrides", h.Schedule.CreateRecurringOverride)
	}
}
