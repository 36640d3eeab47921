package service

import (
	"context"
	"errors"
	"time"

	"learnsphere/domain"
	"learnsphere/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo    domain.UserRepository
	accessToken *utils.JWTManager
}

func NewAuthService(userRepo domain.UserRepository, secret string) domain.AuthUseCase {
	return &authService{
		userRepo:    userRepo,
		accessToken: utils.NewJWTManager(secret, 24*time.Hour),
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issue(*user)
}

func (s *authService) Register(ctx context.Context, email, password, name, role string) (*domain.AuthResult, error) {
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         utils.TitleCase(name),
		Role:         role,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now(),
	}

	// The repository re-checks the email under its lock, so a concurrent
	// registration for the same address still fails cleanly.
	if err := s.userRepo.Create(ctx, &user); err != nil {
		return nil, err
	}

	return s.issue(user)
}

func (s *authService) Me(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	public := user.Public()
	return &public, nil
}

func (s *authService) GetAccessTokenManager() *utils.JWTManager {
	return s.accessToken
}

// issue builds the post-auth payload: token, public user record, and the
// role-specific landing route the frontend navigates to.
func (s *authService) issue(user domain.User) (*domain.AuthResult, error) {
	token, err := s.accessToken.GenerateToken(user.ID, user.Role, user.Name)
	if err != nil {
		return nil, err
	}

	return &domain.AuthResult{
		Token:    token,
		User:     user.Public(),
		Redirect: "/dashboard/" + user.Role,
	}, nil
}
