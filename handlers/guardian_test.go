// File: handlers/guardian_test.go
package handlers

import (
	"net/http"
	"testing"

	"kidsbook/models"
	"kidsbook/services/guardian"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockGuardianService returns canned responses per method.
type mockGuardianService struct {
	auth *guardian.AuthResponse
	err  error

	grantedTo     string
	grantedAmount int
}

func (m *mockGuardianService) Register(reg models.GuardianRegistration) (*guardian.AuthResponse, error) {
	return m.auth, m.err
}

func (m *mockGuardianService) Authenticate(email, password string) (*guardian.AuthResponse, error) {
	return m.auth, m.err
}

func (m *mockGuardianService) GetGuardianByID(guardianID string) (*models.Guardian, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.Guardian{ID: guardianID}, nil
}

func (m *mockGuardianService) UpdateGuardian(guardianID string, update models.GuardianUpdate) (*models.Guardian, error) {
	return &models.Guardian{ID: guardianID, Name: update.Name}, m.err
}

func (m *mockGuardianService) DeleteGuardian(guardianID string) error { return m.err }

func (m *mockGuardianService) ListCreditPacks() []models.CreditPack {
	return []models.CreditPack{{ID: "starter", Credits: 10, PriceCents: 999}}
}

func (m *mockGuardianService) TopUpCredits(guardianID, packID string) (*models.TopUpIntent, error) {
	return nil, m.err
}

func (m *mockGuardianService) GrantCredits(guardianID string, amount int) error {
	if m.err != nil {
		return m.err
	}
	m.grantedTo = guardianID
	m.grantedAmount = amount
	return nil
}

func (m *mockGuardianService) AddChild(guardianID, name, birthDate string) (*models.Child, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.Child{ID: "child-1", GuardianID: guardianID, Name: name, BirthDate: birthDate}, nil
}

func (m *mockGuardianService) ListChildren(guardianID string) ([]models.Child, error) {
	return nil, m.err
}

func (m *mockGuardianService) UpdateChild(guardianID, childID, name, birthDate string) (*models.Child, error) {
	return nil, m.err
}

func (m *mockGuardianService) RemoveChild(guardianID, childID string) error { return m.err }

func newGuardianRouter(svc guardian.GuardianService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewGuardianHandler(svc, zap.NewNop())

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("guardianID", "guard-1") })
	r.POST("/guardians/register", h.RegisterGuardian)
	r.POST("/guardians/login", h.AuthenticateGuardian)
	r.GET("/guardians/me", h.GetGuardian)
	r.GET("/guardians/me/credits/packs", h.ListCreditPacks)
	r.POST("/children", h.AddChild)
	return r
}

func TestRegisterGuardianDuplicateEmailConflicts(t *testing.T) {
	svc := &mockGuardianService{err: guardian.NewDuplicateEmailError("ada@example.com")}
	r := newGuardianRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/guardians/register", gin.H{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "hunter2!!",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterGuardianValidatesPayload(t *testing.T) {
	r := newGuardianRouter(&mockGuardianService{})

	// Password below the minimum length.
	w := doJSON(t, r, http.MethodPost, "/guardians/register", gin.H{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed email.
	w = doJSON(t, r, http.MethodPost, "/guardians/register", gin.H{
		"name":     "Ada",
		"email":    "not-an-email",
		"password": "hunter2!!",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthenticateGuardianInvalidCredentials(t *testing.T) {
	svc := &mockGuardianService{err: guardian.NewInvalidCredentialsError()}
	r := newGuardianRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/guardians/login", gin.H{
		"email":    "ada@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateGuardianSuccess(t *testing.T) {
	svc := &mockGuardianService{auth: &guardian.AuthResponse{ID: "guard-1", Token: "tok", Credits: 10}}
	r := newGuardianRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/guardians/login", gin.H{
		"email":    "ada@example.com",
		"password": "hunter2!!",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"tok"`)
}

func TestAddChildCreated(t *testing.T) {
	r := newGuardianRouter(&mockGuardianService{})

	w := doJSON(t, r, http.MethodPost, "/children", gin.H{
		"name":      "Ada",
		"birthDate": "2018-03-14",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestListCreditPacks(t *testing.T) {
	r := newGuardianRouter(&mockGuardianService{})

	w := doJSON(t, r, http.MethodGet, "/guardians/me/credits/packs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"starter"`)
}
