package guardianRepo

import (
	"context"

	"kidsbook/models"
)

// GuardianRepository manages guardian accounts and their credits wallets.
type GuardianRepository interface {
	Create(ctx context.Context, guardian *models.Guardian) error
	GetByID(ctx context.Context, id string) (*models.Guardian, error)
	GetByEmail(ctx context.Context, email string) (*models.Guardian, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error

	// AddCredits increases the wallet balance by `amount` (amount > 0).
	AddCredits(ctx context.Context, id string, amount int) error

	// DeductCredits atomically decreases the wallet balance. It fails with
	// ErrInsufficientCredits when the balance does not cover `amount`.
	DeductCredits(ctx context.Context, id string, amount int) error

	SetTokenHash(ctx context.Context, id, tokenHash string) error
}
