package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"kidsbook/models"
	"kidsbook/services/booking"
	"kidsbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the group-booking wizard over HTTP.
type BookingHandler struct {
	Service booking.BookingWizardService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingWizardService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// StartWizard creates a new wizard session for the authenticated guardian.
func (h *BookingHandler) StartWizard(c *gin.Context) {
	guardianID := c.GetString("guardianID")

	var input struct {
		ActivityID string `json:"activityId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.StartWizard(guardianID, input.ActivityID)
	if err != nil {
		h.Logger.Error("failed to start booking wizard",
			zap.String("guardianID", guardianID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to start booking session", err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetWizard returns the current wizard state with derived values.
func (h *BookingHandler) GetWizard(c *gin.Context) {
	resp, err := h.Service.GetWizard(c.GetString("guardianID"), c.Param("sessionID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ToggleChild flips a child's membership in the session's selection set.
func (h *BookingHandler) ToggleChild(c *gin.Context) {
	var input struct {
		ChildID string `json:"childId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.ToggleChild(c.GetString("guardianID"), c.Param("sessionID"), input.ChildID)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SelectSlot sets the chosen time slot for the session.
func (h *BookingHandler) SelectSlot(c *gin.Context) {
	var input struct {
		SlotID string `json:"slotId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.SelectSlot(c.GetString("guardianID"), c.Param("sessionID"), input.SlotID)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AdvanceWizard moves the session to its next step when the current one is
// complete.
func (h *BookingHandler) AdvanceWizard(c *gin.Context) {
	resp, err := h.Service.AdvanceWizard(c.GetString("guardianID"), c.Param("sessionID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmWizard finalizes the booking.
func (h *BookingHandler) ConfirmWizard(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionID" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	confirmation, err := h.Service.ConfirmWizard(c.GetString("guardianID"), input.SessionID)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": confirmation})
}

// CancelWizard discards the session.
func (h *BookingHandler) CancelWizard(c *gin.Context) {
	if err := h.Service.CancelWizard(c.GetString("guardianID"), c.Param("sessionID")); err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// ListBookings returns the authenticated guardian's booking history.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.GetString("guardianID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CancelBooking releases a confirmed booking and refunds its credits.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	if err := h.Service.CancelBooking(c.GetString("guardianID"), c.Param("id")); err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// ListActivities returns the bookable activities, optionally filtered by
// child age (?age=7).
func (h *BookingHandler) ListActivities(c *gin.Context) {
	age := -1
	if raw := c.Query("age"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid age filter", raw)
			return
		}
		age = parsed
	}

	activities, err := h.Service.ListActivities(age)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list activities", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// GetActivity returns one activity with its slot schedule.
func (h *BookingHandler) GetActivity(c *gin.Context) {
	activity, err := h.Service.GetActivity(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "activity not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (h *BookingHandler) respondWizardError(c *gin.Context, err error) {
	var wizErr *booking.WizardError
	if errors.As(err, &wizErr) {
		switch wizErr.Code {
		case "sessionNotFound":
			utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", wizErr.Message)
		case "bookingNotFound":
			utils.JSONError(c, http.StatusNotFound, "booking not found", wizErr.Message)
		case "wrongStep":
			utils.JSONError(c, http.StatusConflict, "booking session is not ready", wizErr.Message)
		case "insufficientCredits":
			utils.JSONError(c, http.StatusPaymentRequired, "insufficient credits", wizErr.Message)
		default:
			utils.JSONError(c, http.StatusBadRequest, "booking request rejected", wizErr.Message)
		}
		return
	}

	h.Logger.Error("booking wizard operation failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "booking operation failed", err.Error())
}
