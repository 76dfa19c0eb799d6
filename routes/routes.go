package routes

import (
	"net/http"
	"time"

	"kidsbook/handlers"
	"kidsbook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterGuardianRoutes registers guardian account endpoints.
func RegisterGuardianRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/guardians")
	{
		api.POST("/register", hb.RegisterGuardianHandler)
		api.POST("/login", hb.AuthenticateGuardianHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthGuardianMiddleware(hb.GuardianRepo))
		api.GET("/me", hb.GetGuardianHandler)
		api.PATCH("/me", hb.UpdateGuardianHandler)
		api.DELETE("/me", hb.DeleteGuardianHandler)
		api.GET("/me/credits/packs", hb.ListCreditPacksHandler)
		api.POST("/me/credits/topup", hb.TopUpCreditsHandler)
	}
}

// RegisterChildRoutes registers child profile endpoints.
func RegisterChildRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/children")
	{
		api.Use(middleware.JWTAuthGuardianMiddleware(hb.GuardianRepo))
		api.GET("", hb.ListChildrenHandler)
		api.POST("", hb.AddChildHandler)
		api.PUT("/:id", hb.UpdateChildHandler)
		api.DELETE("/:id", hb.RemoveChildHandler)
	}
}

// RegisterActivityRoutes registers activity discovery endpoints.
func RegisterActivityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/activities")
	{
		api.GET("", hb.ListActivitiesHandler)
		api.GET("/:id", hb.GetActivityHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.JWTAuthGuardianMiddleware(hb.GuardianRepo))
		bookingGroup.POST("/session", hb.StartWizard)
		bookingGroup.GET("/session/:sessionID", hb.GetWizard)
		bookingGroup.POST("/session/:sessionID/children", hb.ToggleChild)
		bookingGroup.PUT("/session/:sessionID/slot", hb.SelectSlot)
		bookingGroup.POST("/session/:sessionID/advance", hb.AdvanceWizard)
		bookingGroup.POST("/confirm", hb.ConfirmWizard)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelWizard)
	}
}

// RegisterPaymentRoutes registers the Stripe webhook endpoint. It is public:
// authenticity comes from the webhook signature, not a bearer token.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/payments/webhook", hb.PaymentWebhookHandler)
}

// RegisterBookingRecordRoutes sets up the endpoints for confirmed bookings.
func RegisterBookingRecordRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthGuardianMiddleware(hb.GuardianRepo))
		api.GET("", hb.ListBookingsHandler)
		api.DELETE("/:id", hb.CancelBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Kidsbook"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterGuardianRoutes(r, hb)
	RegisterChildRoutes(r, hb)
	RegisterActivityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterBookingRecordRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterHealthRoute(r)
}
