// File: guardian/credits.go
package guardian

import (
	"context"
	"fmt"
	"time"

	"kidsbook/models"
	"kidsbook/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// creditPacks are the purchasable wallet bundles. Prices are USD cents.
var creditPacks = []models.CreditPack{
	{ID: "starter", Credits: 10, PriceCents: 999},
	{ID: "family", Credits: 25, PriceCents: 2199},
	{ID: "season", Credits: 60, PriceCents: 4799},
}

// ListCreditPacks returns the purchasable credit bundles.
func (s *DefaultGuardianService) ListCreditPacks() []models.CreditPack {
	packs := make([]models.CreditPack, len(creditPacks))
	copy(packs, creditPacks)
	return packs
}

// TopUpCredits creates a Stripe PaymentIntent for the chosen pack. The wallet
// is credited from the payment webhook once the intent succeeds; the client
// completes the payment with the returned client secret.
func (s *DefaultGuardianService) TopUpCredits(guardianID, packID string) (*models.TopUpIntent, error) {
	ctx := context.Background()

	guardian, err := s.Repo.GetByID(ctx, guardianID)
	if err != nil {
		return nil, fmt.Errorf("failed to load guardian: %w", err)
	}

	var pack *models.CreditPack
	for i := range creditPacks {
		if creditPacks[i].ID == packID {
			pack = &creditPacks[i]
			break
		}
	}
	if pack == nil {
		return nil, fmt.Errorf("unknown credit pack: %s", packID)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(pack.PriceCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
	}
	params.AddMetadata("guardianId", guardian.ID)
	params.AddMetadata("packId", pack.ID)
	params.AddMetadata("credits", fmt.Sprintf("%d", pack.Credits))

	intent, err := paymentintent.New(params)
	if err != nil {
		utils.GetLogger().Error("TopUpCredits: payment intent creation failed",
			zap.String("guardianID", guardianID), zap.Error(err))
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &models.TopUpIntent{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		PackID:          pack.ID,
		Credits:         pack.Credits,
		AmountCents:     pack.PriceCents,
		CreatedAt:       time.Now(),
	}, nil
}

// GrantCredits adds credits to the wallet, called by the payment webhook once
// a top-up intent settles.
func (s *DefaultGuardianService) GrantCredits(guardianID string, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("credit grant must be positive, got %d", amount)
	}
	return s.Repo.AddCredits(context.Background(), guardianID, amount)
}
