package models

import "time"

// CreditPack is a purchasable bundle of wallet credits.
type CreditPack struct {
	ID         string `json:"id"`
	Credits    int    `json:"credits"`
	PriceCents int64  `json:"priceCents"` // USD cents charged via Stripe
}

// TopUpIntent is returned to the client so it can complete a Stripe payment.
type TopUpIntent struct {
	PaymentIntentID string    `json:"paymentIntentId"`
	ClientSecret    string    `json:"clientSecret"`
	PackID          string    `json:"packId"`
	Credits         int       `json:"credits"`
	AmountCents     int64     `json:"amountCents"`
	CreatedAt       time.Time `json:"createdAt"`
}
