package models

// ReminderPayload is the asynq task payload for a booking reminder push.
type ReminderPayload struct {
	BookingID    string `json:"bookingId"`
	GuardianID   string `json:"guardianId"`
	ActivityName string `json:"activityName"`
	SlotDate     string `json:"slotDate"`
	SlotLabel    string `json:"slotLabel"`
	Title        string `json:"title"`
	Body         string `json:"body"`
}
