// File: booking/wizard.go
//
// Pure state transitions and derived values for the group-booking wizard.
// Every function here is a synchronous, total function over the session
// snapshot; nothing is cached between reads. Invalid selections (unknown or
// ineligible child ids, over-capacity slots) are silent no-ops: the client UI
// is expected to disable invalid choices, so these checks are defensive.
package booking

import (
	"time"

	"kidsbook/models"
)

// ToggleChild flips membership of childID in the session's selection set.
// Unknown or ineligible ids are ignored. When growing the selection past the
// capacity of the currently chosen slot, the slot choice is cleared.
// It reports whether the session changed.
func ToggleChild(session *models.WizardSession, childID string) bool {
	var child *models.ChildOption
	for i := range session.Children {
		if session.Children[i].ID == childID {
			child = &session.Children[i]
			break
		}
	}
	if child == nil || !child.Eligible {
		return false
	}

	for i, id := range session.SelectedChildIDs {
		if id == childID {
			session.SelectedChildIDs = append(session.SelectedChildIDs[:i], session.SelectedChildIDs[i+1:]...)
			return true
		}
	}

	session.SelectedChildIDs = append(session.SelectedChildIDs, childID)

	// A grown selection may no longer fit the chosen slot.
	if session.SelectedSlotID != "" {
		if slot, ok := findSlot(session, session.SelectedSlotID); !ok || !slot.Fits(len(session.SelectedChildIDs)) {
			session.SelectedSlotID = ""
		}
	}
	return true
}

// SelectSlot sets the chosen slot. The call is ignored when the slot is
// unknown or cannot accommodate the current selection size.
// It reports whether the session changed.
func SelectSlot(session *models.WizardSession, slotID string) bool {
	slot, ok := findSlot(session, slotID)
	if !ok || !slot.Fits(len(session.SelectedChildIDs)) {
		return false
	}
	session.SelectedSlotID = slot.ID
	return true
}

// AvailableSlots returns the slots that can accommodate the current selection
// size, preserving source order. It is recomputed on every call.
func AvailableSlots(session *models.WizardSession) []models.TimeSlot {
	partySize := len(session.SelectedChildIDs)
	available := make([]models.TimeSlot, 0, len(session.Slots))
	for _, slot := range session.Slots {
		if slot.Fits(partySize) {
			available = append(available, slot)
		}
	}
	return available
}

// TotalCredits is the activity's credit cost multiplied by the selection size.
func TotalCredits(session *models.WizardSession) int {
	return session.Activity.CreditCost * len(session.SelectedChildIDs)
}

// StepComplete reports whether the given step's completion condition holds.
func StepComplete(session *models.WizardSession, step models.WizardStep) bool {
	switch step {
	case models.StepSelectingChildren:
		return len(session.SelectedChildIDs) > 0
	case models.StepSelectingSlot:
		return session.SelectedSlotID != ""
	case models.StepConfirming:
		return CanConfirm(session)
	default:
		return false
	}
}

// CanConfirm holds when a slot is chosen for a non-empty selection and the
// wallet covers the total.
func CanConfirm(session *models.WizardSession) bool {
	return len(session.SelectedChildIDs) > 0 &&
		session.SelectedSlotID != "" &&
		TotalCredits(session) <= session.CreditsAvailable
}

// Advance moves the wizard to the next step if the current step is complete.
// Steps are forward-only; Completed is reached through confirmation, not
// Advance. It reports whether the step changed.
func Advance(session *models.WizardSession) bool {
	switch session.Step {
	case models.StepSelectingChildren:
		if StepComplete(session, models.StepSelectingChildren) {
			session.Step = models.StepSelectingSlot
			return true
		}
	case models.StepSelectingSlot:
		if StepComplete(session, models.StepSelectingSlot) {
			session.Step = models.StepConfirming
			return true
		}
	}
	return false
}

// BuildChildOptions derives the per-session child views, with eligibility
// computed from the activity's age bounds.
func BuildChildOptions(children []models.Child, activity models.Activity, now time.Time) []models.ChildOption {
	options := make([]models.ChildOption, 0, len(children))
	for _, child := range children {
		age := child.AgeAt(now)
		options = append(options, models.ChildOption{
			ID:       child.ID,
			Name:     child.Name,
			Age:      age,
			Eligible: age >= 0 && activity.AgeEligible(age),
		})
	}
	return options
}

// BuildResponse assembles the client-facing view of a session. Derived values
// are recomputed here on every read.
func BuildResponse(session *models.WizardSession) models.WizardResponse {
	selected := session.SelectedChildIDs
	if selected == nil {
		selected = []string{}
	}
	return models.WizardResponse{
		SessionID:        session.SessionID,
		Step:             session.Step,
		Activity:         session.Activity,
		Children:         session.Children,
		SelectedChildIDs: selected,
		SelectedSlotID:   session.SelectedSlotID,
		AvailableSlots:   AvailableSlots(session),
		TotalCredits:     TotalCredits(session),
		CreditsAvailable: session.CreditsAvailable,
		CanConfirm:       CanConfirm(session),
	}
}

func findSlot(session *models.WizardSession, slotID string) (models.TimeSlot, bool) {
	for _, slot := range session.Slots {
		if slot.ID == slotID {
			return slot, true
		}
	}
	return models.TimeSlot{}, false
}
