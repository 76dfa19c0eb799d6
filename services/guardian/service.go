package guardian

import (
	"context"
	"fmt"
	"time"

	"kidsbook/config"
	"kidsbook/models"
	"kidsbook/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 72 * time.Hour

// Register validates the signup payload, creates the account with a bcrypt
// password hash and the signup credit grant, and signs the guardian in.
func (s *DefaultGuardianService) Register(reg models.GuardianRegistration) (*AuthResponse, error) {
	ctx := context.Background()

	if reg.Email == "" || reg.Password == "" || reg.Name == "" {
		return nil, fmt.Errorf("all fields are required")
	}

	if existing, err := s.Repo.GetByEmail(ctx, reg.Email); err == nil && existing != nil {
		return nil, NewDuplicateEmailError(reg.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: password hashing failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	guardian := models.Guardian{
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: string(hash),
		Credits:      config.AppConfig.SignupCredits,
		FCMToken:     reg.FCMToken,
	}
	if err := s.Repo.Create(ctx, &guardian); err != nil {
		utils.GetLogger().Error("Register: failed to create guardian", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(ctx, &guardian)
}

// Authenticate verifies the password and issues a fresh JWT. The token hash
// is stored on the account and cached for the auth middleware.
func (s *DefaultGuardianService) Authenticate(email, password string) (*AuthResponse, error) {
	ctx := context.Background()

	guardian, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || guardian == nil {
		return nil, NewInvalidCredentialsError()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(guardian.PasswordHash), []byte(password)); err != nil {
		return nil, NewInvalidCredentialsError()
	}

	return s.issueToken(ctx, guardian)
}

func (s *DefaultGuardianService) issueToken(ctx context.Context, guardian *models.Guardian) (*AuthResponse, error) {
	token, err := utils.GenerateToken(guardian.ID, guardian.Email, tokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(ctx, guardian.ID, tokenHash); err != nil {
		return nil, fmt.Errorf("failed to store auth token: %w", err)
	}

	authCache := utils.GetAuthCacheClient()
	if err := authCache.Set(ctx, authCacheKey(guardian.ID), tokenHash, time.Hour).Err(); err != nil {
		utils.GetLogger().Warn("failed to warm auth cache", zap.Error(err))
	}

	return &AuthResponse{
		ID:      guardian.ID,
		Token:   token,
		Name:    guardian.Name,
		Email:   guardian.Email,
		Credits: guardian.Credits,
	}, nil
}

func (s *DefaultGuardianService) GetGuardianByID(guardianID string) (*models.Guardian, error) {
	return s.Repo.GetByID(context.Background(), guardianID)
}

func (s *DefaultGuardianService) UpdateGuardian(guardianID string, update models.GuardianUpdate) (*models.Guardian, error) {
	ctx := context.Background()

	fields := map[string]interface{}{}
	if update.Name != "" {
		fields["name"] = update.Name
	}
	if update.FCMToken != "" {
		fields["fcmToken"] = update.FCMToken
	}
	if len(fields) > 0 {
		if err := s.Repo.Update(ctx, guardianID, fields); err != nil {
			return nil, fmt.Errorf("failed to update guardian: %w", err)
		}
	}
	return s.Repo.GetByID(ctx, guardianID)
}

func (s *DefaultGuardianService) DeleteGuardian(guardianID string) error {
	ctx := context.Background()
	if err := s.Repo.Delete(ctx, guardianID); err != nil {
		return fmt.Errorf("failed to delete guardian: %w", err)
	}
	authCache := utils.GetAuthCacheClient()
	_ = authCache.Del(ctx, authCacheKey(guardianID)).Err()
	return nil
}

// AuthCacheKey builds the composite auth cache key for a guardian; shared
// with the auth middleware.
func AuthCacheKey(guardianID string) string {
	return authCacheKey(guardianID)
}

func authCacheKey(guardianID string) string {
	return "auth:" + guardianID
}
