package activityRepo

import (
	"context"

	"kidsbook/models"
)

// ActivityRepository manages listed activities and their embedded time slots.
type ActivityRepository interface {
	Create(ctx context.Context, activity *models.Activity) error
	GetByID(ctx context.Context, id string) (*models.Activity, error)
	List(ctx context.Context) ([]models.Activity, error)

	// DecrementSlotSpots atomically reserves `units` spots on a slot. It fails
	// with ErrInsufficientSpots when fewer than `units` spots remain.
	DecrementSlotSpots(ctx context.Context, activityID, slotID string, units int) error

	// RestoreSlotSpots returns previously reserved spots to a slot.
	RestoreSlotSpots(ctx context.Context, activityID, slotID string, units int) error
}
