// File: booking/wizard_test.go
package booking

import (
	"testing"
	"time"

	"kidsbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession() *models.WizardSession {
	return &models.WizardSession{
		SessionID:  "sess-1",
		GuardianID: "guard-1",
		Activity: models.Activity{
			ID:         "swim-starters",
			Name:       "Swim Starters",
			MinAge:     5,
			MaxAge:     9,
			CreditCost: 2,
		},
		Children: []models.ChildOption{
			{ID: "c1", Name: "Ada", Age: 8, Eligible: true},
			{ID: "c2", Name: "Ben", Age: 10, Eligible: true},
			{ID: "c3", Name: "Cleo", Age: 4, Eligible: false},
		},
		Slots: []models.TimeSlot{
			{ID: "s1", ActivityID: "swim-starters", Date: "2026-09-05", Label: "Morning", SpotsLeft: 6, Capacity: 8},
			{ID: "s2", ActivityID: "swim-starters", Date: "2026-09-05", Label: "Afternoon", SpotsLeft: 3, Capacity: 8},
			{ID: "s3", ActivityID: "swim-starters", Date: "2026-09-12", Label: "Morning", SpotsLeft: 8, Capacity: 8},
			{ID: "s4", ActivityID: "swim-starters", Date: "2026-09-12", Label: "Afternoon", SpotsLeft: 1, Capacity: 8},
		},
		SelectedChildIDs: []string{},
		Step:             models.StepSelectingChildren,
		CreditsAvailable: 8,
	}
}

func TestToggleChildAddsAndRemoves(t *testing.T) {
	session := testSession()

	assert.True(t, ToggleChild(session, "c1"))
	assert.Equal(t, []string{"c1"}, session.SelectedChildIDs)

	assert.True(t, ToggleChild(session, "c2"))
	assert.Equal(t, []string{"c1", "c2"}, session.SelectedChildIDs)

	// Toggling again removes.
	assert.True(t, ToggleChild(session, "c1"))
	assert.Equal(t, []string{"c2"}, session.SelectedChildIDs)
}

func TestToggleChildIgnoresUnknownAndIneligible(t *testing.T) {
	session := testSession()

	assert.False(t, ToggleChild(session, "nope"))
	assert.Empty(t, session.SelectedChildIDs)

	// c3 is below the activity's minimum age.
	assert.False(t, ToggleChild(session, "c3"))
	assert.Empty(t, session.SelectedChildIDs)
}

func TestToggleChildNeverDuplicates(t *testing.T) {
	session := testSession()

	ToggleChild(session, "c1")
	ToggleChild(session, "c1")
	ToggleChild(session, "c1")
	assert.Equal(t, []string{"c1"}, session.SelectedChildIDs)
}

func TestToggleChildClearsSlotWhenSelectionOutgrowsIt(t *testing.T) {
	session := testSession()

	ToggleChild(session, "c1")
	require.True(t, SelectSlot(session, "s4")) // 1 spot left, fits 1 child
	require.Equal(t, "s4", session.SelectedSlotID)

	// Growing to two children no longer fits s4.
	ToggleChild(session, "c2")
	assert.Equal(t, "", session.SelectedSlotID)
}

func TestToggleChildKeepsSlotWhenItStillFits(t *testing.T) {
	session := testSession()

	ToggleChild(session, "c1")
	require.True(t, SelectSlot(session, "s1"))

	ToggleChild(session, "c2")
	assert.Equal(t, "s1", session.SelectedSlotID)
}

func TestSelectSlotIgnoresUnknownAndOverCapacity(t *testing.T) {
	session := testSession()
	ToggleChild(session, "c1")
	ToggleChild(session, "c2")

	assert.False(t, SelectSlot(session, "missing"))
	assert.Equal(t, "", session.SelectedSlotID)

	// s4 has one spot left, party is two.
	assert.False(t, SelectSlot(session, "s4"))
	assert.Equal(t, "", session.SelectedSlotID)

	assert.True(t, SelectSlot(session, "s2"))
	assert.Equal(t, "s2", session.SelectedSlotID)
}

func TestAvailableSlotsFiltersByPartySize(t *testing.T) {
	session := testSession()
	ToggleChild(session, "c1")
	ToggleChild(session, "c2")

	available := AvailableSlots(session)
	require.Len(t, available, 3)
	// Source order is preserved.
	assert.Equal(t, "s1", available[0].ID)
	assert.Equal(t, "s2", available[1].ID)
	assert.Equal(t, "s3", available[2].ID)
}

func TestAvailableSlotsRecomputedAfterDeselection(t *testing.T) {
	session := testSession()
	ToggleChild(session, "c1")
	ToggleChild(session, "c2")
	require.Len(t, AvailableSlots(session), 3)

	// Dropping back to one child brings s4 back.
	ToggleChild(session, "c2")
	assert.Len(t, AvailableSlots(session), 4)
}

func TestTotalCreditsTracksSelectionSize(t *testing.T) {
	session := testSession()
	assert.Equal(t, 0, TotalCredits(session))

	ToggleChild(session, "c1")
	assert.Equal(t, 2, TotalCredits(session))

	ToggleChild(session, "c2")
	assert.Equal(t, 4, TotalCredits(session))

	ToggleChild(session, "c1")
	assert.Equal(t, 2, TotalCredits(session))
}

func TestCanConfirm(t *testing.T) {
	session := testSession()
	assert.False(t, CanConfirm(session))

	ToggleChild(session, "c1")
	assert.False(t, CanConfirm(session)) // no slot yet

	SelectSlot(session, "s1")
	assert.True(t, CanConfirm(session))

	// Wallet too small for the total.
	session.CreditsAvailable = 1
	assert.False(t, CanConfirm(session))
}

func TestAdvanceIsForwardOnlyAndGated(t *testing.T) {
	session := testSession()

	// Empty selection blocks the first step.
	assert.False(t, Advance(session))
	assert.Equal(t, models.StepSelectingChildren, session.Step)

	ToggleChild(session, "c1")
	assert.True(t, Advance(session))
	assert.Equal(t, models.StepSelectingSlot, session.Step)

	// No slot chosen blocks the second step.
	assert.False(t, Advance(session))
	assert.Equal(t, models.StepSelectingSlot, session.Step)

	SelectSlot(session, "s1")
	assert.True(t, Advance(session))
	assert.Equal(t, models.StepConfirming, session.Step)

	// Completed is never reached through Advance.
	assert.False(t, Advance(session))
	assert.Equal(t, models.StepConfirming, session.Step)
}

func TestStepComplete(t *testing.T) {
	session := testSession()
	assert.False(t, StepComplete(session, models.StepSelectingChildren))

	ToggleChild(session, "c1")
	assert.True(t, StepComplete(session, models.StepSelectingChildren))
	assert.False(t, StepComplete(session, models.StepSelectingSlot))

	SelectSlot(session, "s1")
	assert.True(t, StepComplete(session, models.StepSelectingSlot))
	assert.True(t, StepComplete(session, models.StepConfirming))
}

func TestBuildChildOptionsDerivesEligibility(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	activity := models.Activity{ID: "swim-starters", MinAge: 5, MaxAge: 9, CreditCost: 2}
	children := []models.Child{
		{ID: "c1", Name: "Ada", BirthDate: "2018-03-14"},  // 8
		{ID: "c2", Name: "Ben", BirthDate: "2015-10-02"},  // 10
		{ID: "c3", Name: "Cleo", BirthDate: "2022-06-20"}, // 4
		{ID: "c4", Name: "Dov", BirthDate: "not-a-date"},
	}

	options := BuildChildOptions(children, activity, now)
	require.Len(t, options, 4)

	assert.Equal(t, 8, options[0].Age)
	assert.True(t, options[0].Eligible)

	assert.Equal(t, 10, options[1].Age)
	assert.False(t, options[1].Eligible)

	assert.Equal(t, 4, options[2].Age)
	assert.False(t, options[2].Eligible)

	// Unparseable birthdates are never eligible.
	assert.Equal(t, -1, options[3].Age)
	assert.False(t, options[3].Eligible)
}

func TestBuildResponseDerivedFields(t *testing.T) {
	session := testSession()
	ToggleChild(session, "c1")
	ToggleChild(session, "c2")
	SelectSlot(session, "s1")
	Advance(session)
	Advance(session)

	resp := BuildResponse(session)
	assert.Equal(t, "sess-1", resp.SessionID)
	assert.Equal(t, models.StepConfirming, resp.Step)
	assert.Equal(t, []string{"c1", "c2"}, resp.SelectedChildIDs)
	assert.Equal(t, "s1", resp.SelectedSlotID)
	assert.Len(t, resp.AvailableSlots, 3)
	assert.Equal(t, 4, resp.TotalCredits)
	assert.Equal(t, 8, resp.CreditsAvailable)
	assert.True(t, resp.CanConfirm)
}

func TestBuildResponseEmptySelectionIsNotNil(t *testing.T) {
	session := testSession()
	session.SelectedChildIDs = nil

	resp := BuildResponse(session)
	assert.NotNil(t, resp.SelectedChildIDs)
	assert.Empty(t, resp.SelectedChildIDs)
	assert.Equal(t, 0, resp.TotalCredits)
	assert.False(t, resp.CanConfirm)
}
