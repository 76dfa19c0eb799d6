// File: booking/records.go
package booking

import (
	"context"
	"fmt"

	"kidsbook/models"
	"kidsbook/utils"

	"go.uber.org/zap"
)

// ListBookings returns the guardian's booking history, newest first.
func (s *DefaultBookingWizardService) ListBookings(guardianID string) ([]models.Booking, error) {
	return s.RecordsRepo.ListByGuardian(context.Background(), guardianID)
}

// CancelBooking releases a confirmed booking: the slot spots go back, the
// credits are refunded, and the record is marked cancelled.
func (s *DefaultBookingWizardService) CancelBooking(guardianID, bookingID string) error {
	ctx := context.Background()

	booking, err := s.RecordsRepo.GetByID(ctx, bookingID)
	if err != nil {
		return NewBookingNotFoundError(bookingID)
	}
	if booking.GuardianID != guardianID {
		return NewBookingNotFoundError(bookingID)
	}
	if booking.Status != "confirmed" {
		return NewWrongStepError("booking is not in a cancellable state")
	}

	if err := s.RecordsRepo.UpdateStatus(ctx, bookingID, "cancelled"); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	units := len(booking.ChildIDs)
	if err := s.ActivityRepo.RestoreSlotSpots(ctx, booking.ActivityID, booking.SlotID, units); err != nil {
		utils.GetLogger().Error("failed to release spots for cancelled booking",
			zap.String("bookingID", bookingID), zap.Error(err))
	}
	if err := s.GuardianRepo.AddCredits(ctx, guardianID, booking.TotalCredits); err != nil {
		utils.GetLogger().Error("failed to refund credits for cancelled booking",
			zap.String("bookingID", bookingID), zap.Error(err))
	}
	return nil
}
