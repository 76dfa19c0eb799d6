package models

import "time"

// WizardStep identifies the current step of the booking wizard. Steps are
// linear and forward-only: SelectingChildren → SelectingSlot → Confirming →
// Completed.
type WizardStep string

const (
	StepSelectingChildren WizardStep = "selecting_children"
	StepSelectingSlot     WizardStep = "selecting_slot"
	StepConfirming        WizardStep = "confirming"
	StepCompleted         WizardStep = "completed"
)

// WizardSession holds the full state of one group-booking wizard run between
// HTTP calls. Children, Slots, and Activity are immutable snapshots taken when
// the session is started; only the selection fields and Step mutate.
type WizardSession struct {
	SessionID        string        `json:"sessionId"`
	GuardianID       string        `json:"guardianId"`
	Activity         Activity      `json:"activity"`
	Children         []ChildOption `json:"children"`
	Slots            []TimeSlot    `json:"slots"`
	SelectedChildIDs []string      `json:"selectedChildIds,omitempty"`
	SelectedSlotID   string        `json:"selectedSlotId,omitempty"`
	Step             WizardStep    `json:"step"`
	CreditsAvailable int           `json:"creditsAvailable"`
	CreatedAt        time.Time     `json:"createdAt"`
}

// WizardResponse is the client-facing view of a wizard session, with the
// derived values recomputed on every read.
type WizardResponse struct {
	SessionID        string        `json:"sessionId"`
	Step             WizardStep    `json:"step"`
	Activity         Activity      `json:"activity"`
	Children         []ChildOption `json:"children"`
	SelectedChildIDs []string      `json:"selectedChildIds"`
	SelectedSlotID   string        `json:"selectedSlotId,omitempty"`
	AvailableSlots   []TimeSlot    `json:"availableSlots"`
	TotalCredits     int           `json:"totalCredits"`
	CreditsAvailable int           `json:"creditsAvailable"`
	CanConfirm       bool          `json:"canConfirm"`
}
