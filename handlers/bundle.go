// File: kidsbook/handlers/bundle.go
package handlers

import (
	guardianRepoPkg "kidsbook/database/repository/guardian"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	GuardianRepo guardianRepoPkg.GuardianRepository

	// Guardian endpoints
	RegisterGuardianHandler     gin.HandlerFunc
	AuthenticateGuardianHandler gin.HandlerFunc
	GetGuardianHandler          gin.HandlerFunc
	UpdateGuardianHandler       gin.HandlerFunc
	DeleteGuardianHandler       gin.HandlerFunc
	ListCreditPacksHandler      gin.HandlerFunc
	TopUpCreditsHandler         gin.HandlerFunc
	PaymentWebhookHandler       gin.HandlerFunc

	// Child endpoints
	AddChildHandler     gin.HandlerFunc
	ListChildrenHandler gin.HandlerFunc
	UpdateChildHandler  gin.HandlerFunc
	RemoveChildHandler  gin.HandlerFunc

	// Activity endpoints
	ListActivitiesHandler gin.HandlerFunc
	GetActivityHandler    gin.HandlerFunc

	// Booking wizard endpoints
	StartWizard   gin.HandlerFunc
	GetWizard     gin.HandlerFunc
	ToggleChild   gin.HandlerFunc
	SelectSlot    gin.HandlerFunc
	AdvanceWizard gin.HandlerFunc
	ConfirmWizard gin.HandlerFunc
	CancelWizard  gin.HandlerFunc

	// Booking record endpoints
	ListBookingsHandler  gin.HandlerFunc
	CancelBookingHandler gin.HandlerFunc
}
