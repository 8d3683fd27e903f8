package services

import (
	"context"
	"errors"
	"log"

	"melodybase/internal/models"
	"melodybase/internal/repositories"
	"melodybase/internal/utils"

	"github.com/google/uuid"
)

type AuthService struct {
	userRepo *repositories.UserRepository
	sessions *repositories.RedisRepository
}

func NewAuthService(userRepo *repositories.UserRepository, sessions *repositories.RedisRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
	}
}

// Register creates the account and signs the user in. The very first account
// becomes admin so a fresh deployment can manage itself.
func (s *AuthService) Register(ctx context.Context, user *models.User) (string, string, error) {
	user.Prepare()

	existing, _ := s.userRepo.FindUserByEmail(user.Email)
	if existing != nil {
		return "", "", errors.New("user already exists")
	}

	if user.Password == "" {
		return "", "", errors.New("password is required")
	}
	hashedPassword, err := utils.Hash(user.Password)
	if err != nil {
		return "", "", err
	}
	user.PasswordHash = string(hashedPassword)
	user.Password = ""

	count, err := s.userRepo.CountUsers()
	if err != nil {
		return "", "", err
	}
	if count == 0 {
		user.Role = "admin"
	}

	if err := s.userRepo.Create(user); err != nil {
		return "", "", err
	}

	return s.issueTokens(ctx, user.ID)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.userRepo.FindUserByEmail(email)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", "", errors.New("invalid email or password")
	}

	if err := utils.VerifyPassword(user.PasswordHash, password); err != nil {
		return "", "", errors.New("invalid email or password")
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		log.Printf("failed to update last login for %s: %v", user.ID, err)
	}

	return s.issueTokens(ctx, user.ID)
}

// Logout blacklists the session id carried by both tokens, so neither the
// access nor the refresh token survives.
func (s *AuthService) Logout(ctx context.Context, jti string) error {
	if err := s.sessions.Blacklist(ctx, jti); err != nil {
		return err
	}
	return s.sessions.DeleteSession(ctx, jti)
}

// Refresh rotates the token pair: the old session id is blacklisted and a
// new one issued, so a stolen refresh token stops working after first use.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := utils.VerifyJWT(refreshToken, utils.RefreshTokenSecret)
	if err != nil {
		return "", "", errors.New("invalid or expired refresh token")
	}

	blacklisted, err := s.sessions.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return "", "", err
	}
	if blacklisted {
		return "", "", errors.New("session has been revoked")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return "", "", errors.New("invalid or expired refresh token")
	}

	user, err := s.userRepo.FindUserByID(userID)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", "", errors.New("user not found")
	}

	if err := s.Logout(ctx, claims.ID); err != nil {
		return "", "", err
	}

	return s.issueTokens(ctx, userID)
}

func (s *AuthService) issueTokens(ctx context.Context, userID uuid.UUID) (string, string, error) {
	accessToken, refreshToken, jti, err := utils.GenerateTokens(userID)
	if err != nil {
		return "", "", err
	}

	if err := s.sessions.StoreSession(ctx, jti, userID.String()); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}
