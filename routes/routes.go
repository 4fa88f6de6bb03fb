package routes

import (
	"net/http"
	"time"

	"github.com/Tharak23/bridge-full-stack/handlers"
	"github.com/Tharak23/bridge-full-stack/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint of the Bridge engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCartRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterRequestRoutes(r, hb)
	RegisterTicketRoutes(r, hb)
	RegisterOnboardRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": utils.GetHealthStatus()})
	})
}

// RegisterCartRoutes registers the cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.GET("", hb.Cart.GetCart)
		api.POST("/items", hb.Cart.AddItem)
		api.PUT("/items/:index", hb.Cart.UpdateQuantity)
		api.DELETE("/items/:index", hb.Cart.RemoveItem)
		api.DELETE("", hb.Cart.ClearCart)
	}
}

// RegisterBookingRoutes registers the booking funnel and collection
// endpoints: select, schedule and confirm mirror the three funnel steps.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	funnel := r.Group("/api/booking")
	{
		funnel.POST("/select", hb.Booking.Select)
		funnel.POST("/schedule", hb.Booking.Schedule)
		funnel.GET("/draft", hb.Booking.CurrentDraft)
		funnel.DELETE("/draft", hb.Booking.AbandonDraft)
		funnel.POST("/confirm", hb.Booking.Confirm)
		funnel.POST("/checkout", hb.Booking.Checkout)
	}

	api := r.Group("/api/bookings")
	{
		api.GET("", hb.Booking.ListBookings)
		api.GET("/:id", hb.Booking.GetBooking)
		api.PUT("/:id/status", hb.Booking.UpdateStatus)
		api.PATCH("/:id", hb.Booking.PatchBooking)
	}
}

// RegisterPaymentRoutes registers the payment record endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.GET("", hb.Payment.ListPayments)
		api.PUT("/booking/:bookingId/status", hb.Payment.UpdateStatusByBooking)
	}
}

// RegisterRequestRoutes registers the custom service request endpoints.
func RegisterRequestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/requests")
	{
		api.POST("", hb.Request.CreateRequest)
		api.GET("", hb.Request.ListRequests)
		api.GET("/:id", hb.Request.GetRequest)
		api.POST("/:id/applicants", hb.Request.Apply)
		api.POST("/:id/assign", hb.Request.Assign)
	}
}

// RegisterTicketRoutes registers the support ticket endpoints.
func RegisterTicketRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tickets")
	{
		api.POST("", hb.Ticket.CreateTicket)
		api.GET("", hb.Ticket.ListTickets)
		api.GET("/:id", hb.Ticket.GetTicket)
		api.PUT("/:id/status", hb.Ticket.UpdateStatus)
	}
}

// RegisterOnboardRoutes registers the provider onboarding wizard endpoints.
func RegisterOnboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/onboarding")
	{
		api.GET("/draft", hb.Onboard.GetDraft)
		api.PUT("/draft", hb.Onboard.SaveDraft)
		api.POST("/submit", hb.Onboard.Submit)
		api.POST("/hire", hb.Onboard.SubmitHire)
	}
}

// RegisterProfileRoutes registers the cached profile endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/users/me", hb.Profile.CurrentUser)

	api := r.Group("/api/profile")
	{
		api.GET("/hire", hb.Profile.GetHireProfile)
		api.PUT("/hire", hb.Profile.SaveHireProfile)
		api.GET("/provider", hb.Profile.GetProviderProfile)
		api.PUT("/provider", hb.Profile.SaveProviderProfile)
		api.GET("/location", hb.Profile.GetLocation)
		api.PUT("/location", hb.Profile.SaveLocation)
	}
}

// RegisterProviderRoutes registers the provider-side job flow, proxied to
// the backend.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/provider")
	{
		api.GET("/feed", hb.Provider.Feed)
		api.POST("/bookings/:id/accept", hb.Provider.Accept)
		api.POST("/bookings/:id/reject", hb.Provider.Reject)
	}
}

// RegisterCatalogRoutes registers the service catalogue endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", hb.Catalog.ListServices)
		api.GET("/professionals/count", hb.Catalog.ProfessionalCount)
	}
}
