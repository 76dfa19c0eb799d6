package childRepo

import (
	"context"

	"kidsbook/models"
)

// ChildRepository manages child profiles owned by guardian accounts.
type ChildRepository interface {
	Create(ctx context.Context, child *models.Child) error
	GetByID(ctx context.Context, id string) (*models.Child, error)
	ListByGuardian(ctx context.Context, guardianID string) ([]models.Child, error)
	Update(ctx context.Context, child *models.Child) error
	Delete(ctx context.Context, guardianID, id string) error
}
