// File: booking/confirmation.go
package booking

import (
	"context"
	"time"

	activityRepo "kidsbook/database/repository/activity"
	guardianRepo "kidsbook/database/repository/guardian"
	"kidsbook/models"
	"kidsbook/utils"

	"go.uber.org/zap"
)

// ConfirmWizard finalizes the booking: it re-validates the session against
// the credit gate, reserves the slot spots and deducts wallet credits with
// guarded updates, persists the booking record, discards the session, and
// fires the confirmation push plus a day-before reminder. Any failure after
// spots or credits were taken rolls those back before returning.
func (s *DefaultBookingWizardService) ConfirmWizard(guardianID, sessionID string) (*models.BookingConfirmation, error) {
	ctx := context.Background()
	logger := utils.GetLogger()

	session, err := s.loadOwnedSession(ctx, guardianID, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Step != models.StepConfirming {
		return nil, NewWrongStepError("booking session is not at the confirmation step")
	}
	if len(session.SelectedChildIDs) == 0 {
		return nil, NewWrongStepError("no children selected")
	}
	slot, ok := findSlot(session, session.SelectedSlotID)
	if !ok {
		return nil, NewWrongStepError("no time slot selected")
	}

	total := TotalCredits(session)
	if total > session.CreditsAvailable {
		return nil, NewInsufficientCreditsError(total, session.CreditsAvailable)
	}

	units := len(session.SelectedChildIDs)
	if err := s.ActivityRepo.DecrementSlotSpots(ctx, session.Activity.ID, slot.ID, units); err != nil {
		if err == activityRepo.ErrInsufficientSpots {
			return nil, NewWrongStepError("the selected slot no longer has enough spots")
		}
		return nil, err
	}

	if err := s.GuardianRepo.DeductCredits(ctx, session.GuardianID, total); err != nil {
		s.restoreSpots(ctx, session.Activity.ID, slot.ID, units)
		if err == guardianRepo.ErrInsufficientCredits {
			return nil, NewInsufficientCreditsError(total, session.CreditsAvailable)
		}
		return nil, err
	}

	booking := models.Booking{
		GuardianID:   session.GuardianID,
		ActivityID:   session.Activity.ID,
		ActivityName: session.Activity.Name,
		Venue:        session.Activity.Venue,
		SlotID:       slot.ID,
		SlotDate:     slot.Date,
		SlotLabel:    slot.Label,
		ChildIDs:     session.SelectedChildIDs,
		TotalCredits: total,
		Status:       "confirmed",
		CreatedAt:    time.Now(),
	}
	if err := s.RecordsRepo.Create(ctx, &booking); err != nil {
		logger.Error("failed to persist booking record",
			zap.String("sessionID", sessionID), zap.Error(err))
		// Undo the reservation and the charge so the guardian is left whole.
		s.restoreSpots(ctx, session.Activity.ID, slot.ID, units)
		if refundErr := s.GuardianRepo.AddCredits(ctx, session.GuardianID, total); refundErr != nil {
			logger.Error("failed to refund credits after booking record failure",
				zap.String("guardianID", session.GuardianID), zap.Error(refundErr))
		}
		return nil, err
	}

	if err := s.store().Delete(ctx, sessionID); err != nil {
		logger.Warn("failed to discard confirmed session", zap.Error(err))
	}

	if s.NotificationSvc != nil {
		s.NotificationSvc.NotifyBookingConfirmed(ctx, booking)
	}
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(ctx, booking); err != nil {
			logger.Warn("failed to schedule booking reminder",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	return &models.BookingConfirmation{
		BookingID:    booking.ID,
		ActivityID:   booking.ActivityID,
		SlotID:       booking.SlotID,
		ChildIDs:     booking.ChildIDs,
		TotalCredits: total,
		CreditsLeft:  session.CreditsAvailable - total,
		Step:         models.StepCompleted,
	}, nil
}

func (s *DefaultBookingWizardService) restoreSpots(ctx context.Context, activityID, slotID string, units int) {
	if err := s.ActivityRepo.RestoreSlotSpots(ctx, activityID, slotID, units); err != nil {
		utils.GetLogger().Error("failed to restore slot spots",
			zap.String("slotID", slotID), zap.Error(err))
	}
}
