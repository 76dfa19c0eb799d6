// File: booking/confirmation_test.go
package booking

import (
	"context"
	"errors"
	"testing"

	guardianRepo "kidsbook/database/repository/guardian"
	"kidsbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySessionStore struct {
	sessions map[string]*models.WizardSession
}

func newMemorySessionStore(sessions ...*models.WizardSession) *memorySessionStore {
	store := &memorySessionStore{sessions: map[string]*models.WizardSession{}}
	for _, session := range sessions {
		copied := *session
		store.sessions[session.SessionID] = &copied
	}
	return store
}

func (m *memorySessionStore) Load(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, NewSessionNotFoundError(sessionID)
	}
	copied := *session
	return &copied, nil
}

func (m *memorySessionStore) Save(ctx context.Context, session *models.WizardSession) error {
	copied := *session
	m.sessions[session.SessionID] = &copied
	return nil
}

func (m *memorySessionStore) Delete(ctx context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

// confirmableSession is a session that has walked the full wizard: two
// children selected, a slot picked, sitting at the confirmation step.
func confirmableSession() *models.WizardSession {
	session := testSession()
	session.SelectedChildIDs = []string{"c1", "c2"}
	session.SelectedSlotID = "s1"
	session.Step = models.StepConfirming
	return session
}

func confirmService(store SessionStore) (*DefaultBookingWizardService, *stubActivityRepo, *stubGuardianRepo, *stubRecordsRepo) {
	activities := &stubActivityRepo{}
	guardians := &stubGuardianRepo{}
	records := &stubRecordsRepo{}
	svc := &DefaultBookingWizardService{
		Sessions:     store,
		ActivityRepo: activities,
		GuardianRepo: guardians,
		RecordsRepo:  records,
	}
	return svc, activities, guardians, records
}

func TestConfirmWizardBooksAndSettles(t *testing.T) {
	store := newMemorySessionStore(confirmableSession())
	svc, activities, guardians, records := confirmService(store)

	conf, err := svc.ConfirmWizard("guard-1", "sess-1")
	require.NoError(t, err)

	assert.Equal(t, "book-1", conf.BookingID)
	assert.Equal(t, "swim-starters", conf.ActivityID)
	assert.Equal(t, "s1", conf.SlotID)
	assert.Equal(t, 4, conf.TotalCredits)
	assert.Equal(t, 4, conf.CreditsLeft)
	assert.Equal(t, models.StepCompleted, conf.Step)

	assert.Equal(t, 2, activities.decremented["s1"])
	assert.Equal(t, 4, guardians.deducted["guard-1"])
	require.Contains(t, records.records, "book-1")
	assert.Equal(t, "confirmed", records.records["book-1"].Status)

	// The session is single-use.
	_, err = store.Load(context.Background(), "sess-1")
	var wizErr *WizardError
	require.True(t, errors.As(err, &wizErr))
	assert.Equal(t, "sessionNotFound", wizErr.Code)
}

func TestConfirmWizardRequiresConfirmationStep(t *testing.T) {
	session := confirmableSession()
	session.Step = models.StepSelectingSlot
	store := newMemorySessionStore(session)
	svc, activities, _, _ := confirmService(store)

	_, err := svc.ConfirmWizard("guard-1", "sess-1")
	var wizErr *WizardError
	require.True(t, errors.As(err, &wizErr))
	assert.Equal(t, "wrongStep", wizErr.Code)
	assert.Empty(t, activities.decremented)
}

func TestConfirmWizardEnforcesCreditGate(t *testing.T) {
	session := confirmableSession()
	session.CreditsAvailable = 3 // two children at cost 2 need 4
	store := newMemorySessionStore(session)
	svc, activities, guardians, _ := confirmService(store)

	_, err := svc.ConfirmWizard("guard-1", "sess-1")
	var wizErr *WizardError
	require.True(t, errors.As(err, &wizErr))
	assert.Equal(t, "insufficientCredits", wizErr.Code)
	assert.Empty(t, activities.decremented)
	assert.Empty(t, guardians.deducted)
}

func TestConfirmWizardRollsBackWhenRecordFails(t *testing.T) {
	store := newMemorySessionStore(confirmableSession())
	svc, activities, guardians, records := confirmService(store)
	records.createErr = errors.New("mongo unavailable")

	_, err := svc.ConfirmWizard("guard-1", "sess-1")
	require.EqualError(t, err, "mongo unavailable")

	// Spots and credits both come back.
	assert.Equal(t, 2, activities.restored["s1"])
	assert.Equal(t, 4, guardians.credited["guard-1"])

	// The session survives so the guardian can retry.
	_, loadErr := store.Load(context.Background(), "sess-1")
	assert.NoError(t, loadErr)
}

func TestConfirmWizardPassesThroughDeductFailures(t *testing.T) {
	store := newMemorySessionStore(confirmableSession())
	svc, activities, guardians, _ := confirmService(store)
	guardians.deductErr = errors.New("mongo unavailable")

	_, err := svc.ConfirmWizard("guard-1", "sess-1")
	require.EqualError(t, err, "mongo unavailable")

	var wizErr *WizardError
	assert.False(t, errors.As(err, &wizErr), "transport failures must not read as a declined payment")
	assert.Equal(t, 2, activities.restored["s1"])
}

func TestConfirmWizardMapsInsufficientCreditsSentinel(t *testing.T) {
	store := newMemorySessionStore(confirmableSession())
	svc, activities, guardians, _ := confirmService(store)
	guardians.deductErr = guardianRepo.ErrInsufficientCredits

	_, err := svc.ConfirmWizard("guard-1", "sess-1")
	var wizErr *WizardError
	require.True(t, errors.As(err, &wizErr))
	assert.Equal(t, "insufficientCredits", wizErr.Code)
	assert.Equal(t, 2, activities.restored["s1"])
}

func TestSessionOperationsRejectForeignGuardians(t *testing.T) {
	store := newMemorySessionStore(confirmableSession())
	svc, _, guardians, records := confirmService(store)

	assertNotFound := func(t *testing.T, err error) {
		t.Helper()
		var wizErr *WizardError
		require.True(t, errors.As(err, &wizErr))
		assert.Equal(t, "sessionNotFound", wizErr.Code)
	}

	_, err := svc.GetWizard("guard-2", "sess-1")
	assertNotFound(t, err)

	_, err = svc.ToggleChild("guard-2", "sess-1", "c1")
	assertNotFound(t, err)

	_, err = svc.ConfirmWizard("guard-2", "sess-1")
	assertNotFound(t, err)
	assert.Empty(t, guardians.deducted)
	assert.Empty(t, records.records)

	err = svc.CancelWizard("guard-2", "sess-1")
	assertNotFound(t, err)
	_, loadErr := store.Load(context.Background(), "sess-1")
	assert.NoError(t, loadErr, "a foreign guardian must not discard the session")
}
