// File: guardian/children.go
package guardian

import (
	"context"
	"fmt"
	"time"

	"kidsbook/models"
)

// AddChild creates a child profile under the guardian's account.
func (s *DefaultGuardianService) AddChild(guardianID, name, birthDate string) (*models.Child, error) {
	if name == "" {
		return nil, fmt.Errorf("child name is required")
	}
	if _, err := time.Parse("2006-01-02", birthDate); err != nil {
		return nil, fmt.Errorf("invalid birth date %q, expected YYYY-MM-DD", birthDate)
	}

	child := models.Child{
		GuardianID: guardianID,
		Name:       name,
		BirthDate:  birthDate,
	}
	if err := s.Children.Create(context.Background(), &child); err != nil {
		return nil, fmt.Errorf("failed to create child profile: %w", err)
	}
	return &child, nil
}

// ListChildren returns the guardian's child profiles.
func (s *DefaultGuardianService) ListChildren(guardianID string) ([]models.Child, error) {
	return s.Children.ListByGuardian(context.Background(), guardianID)
}

// UpdateChild updates a child profile. The guardian scoping in the repository
// prevents cross-account edits.
func (s *DefaultGuardianService) UpdateChild(guardianID, childID, name, birthDate string) (*models.Child, error) {
	ctx := context.Background()

	child, err := s.Children.GetByID(ctx, childID)
	if err != nil {
		return nil, fmt.Errorf("child not found: %w", err)
	}
	if child.GuardianID != guardianID {
		return nil, fmt.Errorf("child %s does not belong to guardian %s", childID, guardianID)
	}

	if name != "" {
		child.Name = name
	}
	if birthDate != "" {
		if _, err := time.Parse("2006-01-02", birthDate); err != nil {
			return nil, fmt.Errorf("invalid birth date %q, expected YYYY-MM-DD", birthDate)
		}
		child.BirthDate = birthDate
	}

	if err := s.Children.Update(ctx, child); err != nil {
		return nil, fmt.Errorf("failed to update child profile: %w", err)
	}
	return child, nil
}

// RemoveChild deletes a child profile.
func (s *DefaultGuardianService) RemoveChild(guardianID, childID string) error {
	return s.Children.Delete(context.Background(), guardianID, childID)
}
