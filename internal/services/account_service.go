package services

import (
	"context"
	"fmt"
	"log"

	"tradeacademy/internal/models/request_models"
	"tradeacademy/internal/models/response_models"
	"tradeacademy/internal/repositories"
	"tradeacademy/pkg/limiter"
	"tradeacademy/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest, clientIP string) (*response_models.LoginResponse, error)
}

type AccountService struct {
	adminRepo repositories.AdminRepositoryInterface
	attempts  limiter.AttemptStore
}

func NewAccountService(adminRepo repositories.AdminRepositoryInterface, attempts limiter.AttemptStore) AccountServiceInterface {
	return &AccountService{
		adminRepo: adminRepo,
		attempts:  attempts,
	}
}

// Login verifies the shared admin credentials. Unknown username and wrong
// password are indistinguishable to the caller, and both count toward the
// lockout window.
func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest, clientIP string) (*response_models.LoginResponse, error) {
	identifier := fmt.Sprintf("%s|%s", request.Username, clientIP)

	blocked, err := a.attempts.IsBlocked(ctx, identifier)
	if err != nil {
		// Limiter outage must not take down login entirely.
		log.Printf("Login limiter check failed: %v", err)
	}
	if blocked {
		return nil, utils.ErrLoginLocked
	}

	admin, err := a.adminRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if admin == nil {
		a.recordFailure(ctx, identifier)
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(admin.PasswordHash, request.Password); err != nil {
		a.recordFailure(ctx, identifier)
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(admin.ID, admin.Username, admin.Role)
	if err != nil {
		return nil, err
	}

	if err := a.attempts.Clear(ctx, identifier); err != nil {
		log.Printf("Failed to clear login attempts: %v", err)
	}

	return &response_models.LoginResponse{
		Token: token,
		User: response_models.AdminUserInfo{
			ID:       admin.ID,
			Username: admin.Username,
			Role:     admin.Role,
		},
	}, nil
}

func (a *AccountService) recordFailure(ctx context.Context, identifier string) {
	if err := a.attempts.AddAttempt(ctx, identifier); err != nil {
		log.Printf("Failed to record login attempt: %v", err)
	}
}
