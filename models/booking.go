package models

import "time"

// Booking represents a confirmed group booking record.
type Booking struct {
	ID           string    `bson:"id" json:"id"`
	GuardianID   string    `bson:"guardianId" json:"guardianId"`
	ActivityID   string    `bson:"activityId" json:"activityId"`
	ActivityName string    `bson:"activityName" json:"activityName"`
	Venue        string    `bson:"venue,omitempty" json:"venue,omitempty"`
	SlotID       string    `bson:"slotId" json:"slotId"`
	SlotDate     string    `bson:"slotDate" json:"slotDate"`
	SlotLabel    string    `bson:"slotLabel" json:"slotLabel"`
	ChildIDs     []string  `bson:"childIds" json:"childIds"`
	TotalCredits int       `bson:"totalCredits" json:"totalCredits"`
	Status       string    `bson:"status" json:"status"` // "confirmed" or "cancelled"
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingConfirmation is the record emitted when a wizard session completes.
// Step is always the wizard's terminal step.
type BookingConfirmation struct {
	BookingID    string     `json:"bookingId"`
	ActivityID   string     `json:"activityId"`
	SlotID       string     `json:"slotId"`
	ChildIDs     []string   `json:"childIds"`
	TotalCredits int        `json:"totalCredits"`
	CreditsLeft  int        `json:"creditsLeft"`
	Step         WizardStep `json:"step"`
}
