package recordsRepo

import (
	"context"

	"kidsbook/models"
)

// BookingRecordRepository persists confirmed booking records.
type BookingRecordRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByGuardian(ctx context.Context, guardianID string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
