package notification

import (
	"context"
	"fmt"

	guardianRepo "kidsbook/database/repository/guardian"
	"kidsbook/models"
	"kidsbook/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService defines methods for sending FCM pushes to guardians.
// Delivery is fire-and-forget from the caller's perspective: failures are
// logged, never surfaced to the booking flow.
type NotificationService interface {
	SendGuardianPushNotification(ctx context.Context, guardianID, title, body string, data map[string]string) error
	NotifyBookingConfirmed(ctx context.Context, booking models.Booking)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	guardians guardianRepo.GuardianRepository
}

func NewDefaultNotificationService(guardians guardianRepo.GuardianRepository) (*DefaultNotificationService, error) {
	if guardians == nil {
		return nil, fmt.Errorf("notification service initialization error: guardian repository is nil")
	}
	return &DefaultNotificationService{guardians: guardians}, nil
}

// SendGuardianPushNotification looks up a guardian's FCM token and sends a push.
func (s *DefaultNotificationService) SendGuardianPushNotification(
	ctx context.Context,
	guardianID, title, body string,
	data map[string]string,
) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("SendGuardianPushNotification: FCM client not initialized")
	}

	g, err := s.guardians.GetByID(ctx, guardianID)
	if err != nil {
		return fmt.Errorf("SendGuardianPushNotification: could not find guardian %s: %w", guardianID, err)
	}
	token := g.FCMToken
	if token == "" {
		return fmt.Errorf("SendGuardianPushNotification: guardian %s has no FCM token", guardianID)
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendGuardianPushNotification: failed to send FCM message: %w", err)
	}
	return nil
}

// NotifyBookingConfirmed sends the confirmation push for a completed booking.
// Failures are logged and swallowed.
func (s *DefaultNotificationService) NotifyBookingConfirmed(ctx context.Context, booking models.Booking) {
	title := "Booking confirmed 🎉"
	body := fmt.Sprintf(
		"%s at %s on %s (%s) is booked for %d child%s.",
		booking.ActivityName,
		booking.Venue,
		booking.SlotDate,
		booking.SlotLabel,
		len(booking.ChildIDs),
		plural(len(booking.ChildIDs)),
	)

	err := s.SendGuardianPushNotification(ctx, booking.GuardianID, title, body, map[string]string{
		"type":      "booking_confirmed",
		"bookingId": booking.ID,
	})
	if err != nil {
		utils.GetLogger().Warn("booking confirmation push failed",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}
}

// plural returns "ren" for child counts other than 1.
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "ren"
}
