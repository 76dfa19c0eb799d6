// File: booking/session.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kidsbook/models"
	"kidsbook/utils"

	"github.com/google/uuid"
)

// Wizard sessions are abandoned implicitly by letting the key expire.
const sessionTTL = 30 * time.Minute

// SessionStore persists in-flight wizard sessions between HTTP calls.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Save(ctx context.Context, session *models.WizardSession) error
	Delete(ctx context.Context, sessionID string) error
}

type redisSessionStore struct{}

// NewRedisSessionStore returns the Redis-backed SessionStore.
func NewRedisSessionStore() SessionStore {
	return redisSessionStore{}
}

func (redisSessionStore) Load(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	cacheClient := utils.GetSessionCacheClient()
	sessionData, err := cacheClient.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, NewSessionNotFoundError(sessionID)
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (redisSessionStore) Save(ctx context.Context, session *models.WizardSession) error {
	sessionData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	cacheClient := utils.GetSessionCacheClient()
	if err := cacheClient.Set(ctx, sessionKey(session.SessionID), sessionData, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	cacheClient := utils.GetSessionCacheClient()
	return cacheClient.Del(ctx, sessionKey(sessionID)).Err()
}

func sessionKey(sessionID string) string {
	return "wizard:" + sessionID
}

// StartWizard creates a fresh wizard session for the guardian and activity:
// it snapshots the activity and its slots, the guardian's children with
// eligibility derived from the activity's age bounds, and the wallet balance,
// then stores the session under a new session ID.
func (s *DefaultBookingWizardService) StartWizard(guardianID, activityID string) (*models.WizardResponse, error) {
	ctx := context.Background()

	activity, err := s.GetActivity(activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}

	guardian, err := s.GuardianRepo.GetByID(ctx, guardianID)
	if err != nil {
		return nil, fmt.Errorf("failed to load guardian: %w", err)
	}

	children, err := s.ChildRepo.ListByGuardian(ctx, guardianID)
	if err != nil {
		return nil, fmt.Errorf("failed to load children: %w", err)
	}

	session := models.WizardSession{
		SessionID:        uuid.New().String(),
		GuardianID:       guardianID,
		Activity:         *activity,
		Children:         BuildChildOptions(children, *activity, time.Now()),
		Slots:            activity.Slots,
		Step:             models.StepSelectingChildren,
		CreditsAvailable: guardian.Credits,
		CreatedAt:        time.Now(),
	}

	if err := s.store().Save(ctx, &session); err != nil {
		return nil, err
	}

	resp := BuildResponse(&session)
	return &resp, nil
}

// GetWizard returns the current session view with derived values recomputed.
func (s *DefaultBookingWizardService) GetWizard(guardianID, sessionID string) (*models.WizardResponse, error) {
	ctx := context.Background()
	session, err := s.loadOwnedSession(ctx, guardianID, sessionID)
	if err != nil {
		return nil, err
	}
	resp := BuildResponse(session)
	return &resp, nil
}

// ToggleChild applies the child-selection toggle and persists the session.
// Invalid ids leave the session untouched; the returned view reflects
// whatever state resulted.
func (s *DefaultBookingWizardService) ToggleChild(guardianID, sessionID, childID string) (*models.WizardResponse, error) {
	return s.mutateSession(guardianID, sessionID, func(session *models.WizardSession) {
		ToggleChild(session, childID)
	})
}

// SelectSlot applies the slot selection and persists the session. Slots that
// cannot cover the current selection size are ignored.
func (s *DefaultBookingWizardService) SelectSlot(guardianID, sessionID, slotID string) (*models.WizardResponse, error) {
	return s.mutateSession(guardianID, sessionID, func(session *models.WizardSession) {
		SelectSlot(session, slotID)
	})
}

// AdvanceWizard moves to the next step when the current one is complete.
func (s *DefaultBookingWizardService) AdvanceWizard(guardianID, sessionID string) (*models.WizardResponse, error) {
	return s.mutateSession(guardianID, sessionID, func(session *models.WizardSession) {
		Advance(session)
	})
}

// CancelWizard discards the session. Selection state is never persisted
// beyond the session itself.
func (s *DefaultBookingWizardService) CancelWizard(guardianID, sessionID string) error {
	ctx := context.Background()
	if _, err := s.loadOwnedSession(ctx, guardianID, sessionID); err != nil {
		return err
	}
	if err := s.store().Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

// ListActivities returns listed activities merged with the static catalog,
// optionally filtered by child age (age < 0 disables the filter).
func (s *DefaultBookingWizardService) ListActivities(age int) ([]models.Activity, error) {
	ctx := context.Background()

	listed, err := s.ActivityRepo.List(ctx)
	if err != nil {
		utils.GetLogger().Warn("activity list query failed, serving catalog only")
		listed = nil
	}

	seen := make(map[string]bool, len(listed))
	activities := make([]models.Activity, 0, len(listed))
	for _, activity := range listed {
		if age >= 0 && !activity.AgeEligible(age) {
			continue
		}
		activity.Slots = nil // discovery view omits schedules
		activities = append(activities, activity)
		seen[activity.ID] = true
	}
	for _, activity := range GetCatalogActivities(age) {
		if !seen[activity.ID] {
			activities = append(activities, activity)
		}
	}
	return activities, nil
}

// GetActivity loads a listed activity by ID, falling back to the static
// catalog when it is not in the database.
func (s *DefaultBookingWizardService) GetActivity(activityID string) (*models.Activity, error) {
	ctx := context.Background()

	activity, err := s.ActivityRepo.GetByID(ctx, activityID)
	if err == nil {
		return activity, nil
	}
	return GetCatalogActivity(activityID)
}

// store returns the configured SessionStore, defaulting to Redis.
func (s *DefaultBookingWizardService) store() SessionStore {
	if s.Sessions != nil {
		return s.Sessions
	}
	return redisSessionStore{}
}

// loadOwnedSession loads a session and verifies it belongs to the caller.
// Sessions owned by other guardians read as missing.
func (s *DefaultBookingWizardService) loadOwnedSession(ctx context.Context, guardianID, sessionID string) (*models.WizardSession, error) {
	session, err := s.store().Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.GuardianID != guardianID {
		return nil, NewSessionNotFoundError(sessionID)
	}
	return session, nil
}

// mutateSession runs the load → mutate → store cycle shared by the selection
// operations.
func (s *DefaultBookingWizardService) mutateSession(guardianID, sessionID string, mutate func(*models.WizardSession)) (*models.WizardResponse, error) {
	ctx := context.Background()

	session, err := s.loadOwnedSession(ctx, guardianID, sessionID)
	if err != nil {
		return nil, err
	}

	mutate(session)

	if err := s.store().Save(ctx, session); err != nil {
		return nil, err
	}

	resp := BuildResponse(session)
	return &resp, nil
}
