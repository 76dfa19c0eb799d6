// File: kidsbook/handlers/payment.go
package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"kidsbook/config"
	"kidsbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

const webhookMaxBodyBytes = 65536

// PaymentWebhook ingests Stripe events. A succeeded payment intent carrying
// top-up metadata credits the guardian's wallet; everything else is
// acknowledged and ignored.
func (h *GuardianHandler) PaymentWebhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, webhookMaxBodyBytes))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "could not read webhook payload", err.Error())
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), config.AppConfig.StripeWebhookSecret)
	if err != nil {
		h.Logger.Warn("rejected webhook with bad signature", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "invalid webhook signature", err.Error())
		return
	}

	if event.Type == "payment_intent.succeeded" {
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "malformed payment intent payload", err.Error())
			return
		}

		guardianID := intent.Metadata["guardianId"]
		credits, convErr := strconv.Atoi(intent.Metadata["credits"])
		if guardianID == "" || convErr != nil || credits <= 0 {
			// Not one of our top-up intents; acknowledge so Stripe stops retrying.
			h.Logger.Warn("payment intent without top-up metadata", zap.String("intentID", intent.ID))
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}

		if err := h.Service.GrantCredits(guardianID, credits); err != nil {
			h.Logger.Error("failed to credit wallet from webhook",
				zap.String("guardianID", guardianID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to credit wallet", err.Error())
			return
		}
		h.Logger.Info("wallet credited from top-up",
			zap.String("guardianID", guardianID), zap.Int("credits", credits))
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
