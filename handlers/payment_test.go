// File: handlers/payment_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kidsbook/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

const testWebhookSecret = "whsec_test_secret"

func newWebhookRouter(svc *mockGuardianService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewGuardianHandler(svc, zap.NewNop())

	r := gin.New()
	r.POST("/api/payments/webhook", h.PaymentWebhook)
	return r
}

// signedIntentEvent builds a payment_intent.succeeded event body and signs it
// the way Stripe would.
func signedIntentEvent(t *testing.T, metadata map[string]string) ([]byte, string) {
	t.Helper()

	event := map[string]interface{}{
		"id":          "evt_1",
		"object":      "event",
		"api_version": stripe.APIVersion,
		"type":        "payment_intent.succeeded",
		"data": map[string]interface{}{
			"object": map[string]interface{}{
				"id":       "pi_1",
				"object":   "payment_intent",
				"metadata": metadata,
			},
		},
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
	})
	return payload, signed.Header
}

func postWebhook(r *gin.Engine, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(body))
	req.Header.Set("Stripe-Signature", signature)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func withWebhookSecret(t *testing.T) {
	t.Helper()
	previous := config.AppConfig.StripeWebhookSecret
	config.AppConfig.StripeWebhookSecret = testWebhookSecret
	t.Cleanup(func() { config.AppConfig.StripeWebhookSecret = previous })
}

func TestPaymentWebhookCreditsWallet(t *testing.T) {
	withWebhookSecret(t)
	svc := &mockGuardianService{}
	r := newWebhookRouter(svc)

	body, signature := signedIntentEvent(t, map[string]string{
		"guardianId": "guard-1",
		"packId":     "starter",
		"credits":    "25",
	})
	w := postWebhook(r, body, signature)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "guard-1", svc.grantedTo)
	assert.Equal(t, 25, svc.grantedAmount)
}

func TestPaymentWebhookRejectsBadSignature(t *testing.T) {
	withWebhookSecret(t)
	svc := &mockGuardianService{}
	r := newWebhookRouter(svc)

	body, _ := signedIntentEvent(t, map[string]string{
		"guardianId": "guard-1",
		"credits":    "25",
	})
	w := postWebhook(r, body, "t=1,v1=deadbeef")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.grantedTo)
}

func TestPaymentWebhookIgnoresForeignIntents(t *testing.T) {
	withWebhookSecret(t)
	svc := &mockGuardianService{}
	r := newWebhookRouter(svc)

	// A succeeded intent without top-up metadata is acknowledged, not credited.
	body, signature := signedIntentEvent(t, map[string]string{})
	w := postWebhook(r, body, signature)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, svc.grantedTo)
	assert.Zero(t, svc.grantedAmount)
}
