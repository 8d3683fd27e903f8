package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"melodybase/internal/models"
	"melodybase/internal/repositories"
	"melodybase/internal/utils"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

type GoogleAuthService struct {
	userRepo *repositories.UserRepository
	sessions *repositories.RedisRepository
}

func NewGoogleAuthService(userRepo *repositories.UserRepository, sessions *repositories.RedisRepository) *GoogleAuthService {
	return &GoogleAuthService{
		userRepo: userRepo,
		sessions: sessions,
	}
}

// Callback exchanges the Google access token for a local session. Accounts
// are created on first sign-in; their password hash is random, so password
// login stays impossible until the user sets one.
func (s *GoogleAuthService) Callback(ctx context.Context, token *oauth2.Token) (string, string, error) {
	oauthClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, "GET", "https://www.googleapis.com/oauth2/v2/userinfo", nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to create userinfo request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token.AccessToken))

	response, err := oauthClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("failed to get user info: %w", err)
	}
	defer response.Body.Close()

	var googleUser struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		VerifiedEmail bool   `json:"verified_email"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return "", "", fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(body, &googleUser); err != nil {
		return "", "", fmt.Errorf("failed to parse user info: %w", err)
	}

	if !googleUser.VerifiedEmail {
		return "", "", fmt.Errorf("email is not verified by Google")
	}

	user, err := s.userRepo.FindUserByEmail(googleUser.Email)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		randomHash, err := utils.Hash(uuid.NewString())
		if err != nil {
			return "", "", err
		}
		user = &models.User{
			Email:        googleUser.Email,
			PasswordHash: string(randomHash),
		}
		if err := s.userRepo.Create(user); err != nil {
			return "", "", fmt.Errorf("failed to create user: %w", err)
		}
	}

	accessToken, refreshToken, jti, err := utils.GenerateTokens(user.ID)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate tokens: %w", err)
	}
	if err := s.sessions.StoreSession(ctx, jti, user.ID.String()); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}
