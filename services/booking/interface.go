package booking

import (
	"context"

	activityRepo "kidsbook/database/repository/activity"
	childRepo "kidsbook/database/repository/child"
	guardianRepo "kidsbook/database/repository/guardian"
	recordsRepo "kidsbook/database/repository/records"
	"kidsbook/models"
	"kidsbook/services/notification"
)

// BookingWizardService manages the stateful group-booking wizard: child
// selection, slot selection, and confirmation.
type BookingWizardService interface {
	StartWizard(guardianID, activityID string) (*models.WizardResponse, error)
	GetWizard(guardianID, sessionID string) (*models.WizardResponse, error)
	ToggleChild(guardianID, sessionID, childID string) (*models.WizardResponse, error)
	SelectSlot(guardianID, sessionID, slotID string) (*models.WizardResponse, error)
	AdvanceWizard(guardianID, sessionID string) (*models.WizardResponse, error)
	ConfirmWizard(guardianID, sessionID string) (*models.BookingConfirmation, error)
	CancelWizard(guardianID, sessionID string) error

	ListActivities(age int) ([]models.Activity, error)
	GetActivity(activityID string) (*models.Activity, error)

	ListBookings(guardianID string) ([]models.Booking, error)
	CancelBooking(guardianID, bookingID string) error
}

// ReminderScheduler queues a day-before reminder for a confirmed booking.
type ReminderScheduler interface {
	ScheduleBookingReminder(ctx context.Context, booking models.Booking) error
}

// DefaultBookingWizardService implements BookingWizardService.
type DefaultBookingWizardService struct {
	Sessions        SessionStore
	ActivityRepo    activityRepo.ActivityRepository
	ChildRepo       childRepo.ChildRepository
	GuardianRepo    guardianRepo.GuardianRepository
	RecordsRepo     recordsRepo.BookingRecordRepository
	NotificationSvc notification.NotificationService
	Reminders       ReminderScheduler
}
