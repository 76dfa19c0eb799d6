package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kidsbook/config"
	"kidsbook/models"

	"github.com/hibiken/asynq"
)

// ReminderScheduler enqueues day-before reminder tasks for confirmed bookings.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler creates the asynq client for reminder scheduling.
func NewReminderScheduler() *ReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &ReminderScheduler{client: client}
}

// ScheduleBookingReminder queues a reminder push for 18:00 the day before the
// booked slot. Slots less than a day away get the reminder immediately.
func (r *ReminderScheduler) ScheduleBookingReminder(ctx context.Context, booking models.Booking) error {
	payload := models.ReminderPayload{
		BookingID:    booking.ID,
		GuardianID:   booking.GuardianID,
		ActivityName: booking.ActivityName,
		SlotDate:     booking.SlotDate,
		SlotLabel:    booking.SlotLabel,
		Title:        "Activity tomorrow 🎒",
		Body: fmt.Sprintf("%s at %s is coming up: %s, %s.",
			booking.ActivityName, booking.Venue, booking.SlotDate, booking.SlotLabel),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	task := asynq.NewTask(TypeReminderSend, data)

	fireAt, err := reminderTime(booking.SlotDate, time.Now())
	if err != nil {
		return err
	}

	if _, err := r.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (r *ReminderScheduler) Close() error {
	return r.client.Close()
}

func reminderTime(slotDate string, now time.Time) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", slotDate, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slot date %q: %w", slotDate, err)
	}
	fireAt := day.AddDate(0, 0, -1).Add(18 * time.Hour)
	if fireAt.Before(now) {
		return now, nil
	}
	return fireAt, nil
}
