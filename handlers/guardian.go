package handlers

import (
	"errors"
	"net/http"

	"kidsbook/models"
	"kidsbook/services/guardian"
	"kidsbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GuardianHandler exposes guardian account and wallet endpoints.
type GuardianHandler struct {
	Service guardian.GuardianService
	Logger  *zap.Logger
}

func NewGuardianHandler(svc guardian.GuardianService, logger *zap.Logger) *GuardianHandler {
	return &GuardianHandler{Service: svc, Logger: logger}
}

// RegisterGuardian creates a new guardian account and signs it in.
func (h *GuardianHandler) RegisterGuardian(c *gin.Context) {
	var input models.GuardianRegistration
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.Register(input)
	if err != nil {
		h.respondAccountError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateGuardian signs a guardian in with email and password.
func (h *GuardianHandler) AuthenticateGuardian(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.Authenticate(input.Email, input.Password)
	if err != nil {
		h.respondAccountError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetGuardian returns the authenticated guardian's profile.
func (h *GuardianHandler) GetGuardian(c *gin.Context) {
	g, err := h.Service.GetGuardianByID(c.GetString("guardianID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "guardian not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, g)
}

// UpdateGuardian updates the authenticated guardian's profile.
func (h *GuardianHandler) UpdateGuardian(c *gin.Context) {
	var input models.GuardianUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	g, err := h.Service.UpdateGuardian(c.GetString("guardianID"), input)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update guardian", err.Error())
		return
	}
	c.JSON(http.StatusOK, g)
}

// DeleteGuardian removes the authenticated guardian's account.
func (h *GuardianHandler) DeleteGuardian(c *gin.Context) {
	if err := h.Service.DeleteGuardian(c.GetString("guardianID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete guardian", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ListCreditPacks returns the purchasable credit bundles.
func (h *GuardianHandler) ListCreditPacks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"packs": h.Service.ListCreditPacks()})
}

// TopUpCredits creates a Stripe PaymentIntent for a credit pack.
func (h *GuardianHandler) TopUpCredits(c *gin.Context) {
	var input struct {
		PackID string `json:"packId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	intent, err := h.Service.TopUpCredits(c.GetString("guardianID"), input.PackID)
	if err != nil {
		h.Logger.Error("credit top-up failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create top-up", err.Error())
		return
	}
	c.JSON(http.StatusOK, intent)
}

func (h *GuardianHandler) respondAccountError(c *gin.Context, err error) {
	var acctErr *guardian.AccountError
	if errors.As(err, &acctErr) {
		switch acctErr.Code {
		case "duplicateEmail":
			utils.JSONError(c, http.StatusConflict, "account already exists", acctErr.Message)
		case "invalidCredentials":
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", acctErr.Message)
		default:
			utils.JSONError(c, http.StatusBadRequest, "account request rejected", acctErr.Message)
		}
		return
	}

	h.Logger.Error("guardian account operation failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "account operation failed", err.Error())
}
