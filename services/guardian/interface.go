package guardian

import (
	childRepo "kidsbook/database/repository/child"
	guardianRepo "kidsbook/database/repository/guardian"
	"kidsbook/models"
)

// GuardianService manages guardian accounts, their children, and the credits
// wallet.
type GuardianService interface {
	Register(reg models.GuardianRegistration) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetGuardianByID(guardianID string) (*models.Guardian, error)
	UpdateGuardian(guardianID string, update models.GuardianUpdate) (*models.Guardian, error)
	DeleteGuardian(guardianID string) error

	// Credits wallet.
	ListCreditPacks() []models.CreditPack
	TopUpCredits(guardianID, packID string) (*models.TopUpIntent, error)
	GrantCredits(guardianID string, amount int) error

	// Child profiles.
	AddChild(guardianID, name, birthDate string) (*models.Child, error)
	ListChildren(guardianID string) ([]models.Child, error)
	UpdateChild(guardianID, childID, name, birthDate string) (*models.Child, error)
	RemoveChild(guardianID, childID string) error
}

// DefaultGuardianService is the production implementation.
type DefaultGuardianService struct {
	Repo     guardianRepo.GuardianRepository
	Children childRepo.ChildRepository
}

// AuthResponse contains the guardian's ID, token, and profile basics.
type AuthResponse struct {
	ID      string `json:"id"`
	Token   string `json:"token"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Credits int    `json:"credits"`
}
