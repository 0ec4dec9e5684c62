package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthService checks the single static admin credential. There are no user
// accounts; whoever holds the credential is the admin.
type AuthService interface {
	Login(ctx context.Context, input LoginInput) error
}

type authService struct {
	adminUsername     string
	adminPasswordHash string
}

func NewAuthService(adminUsername, adminPasswordHash string) AuthService {
	return &authService{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
	}
}

func (s *authService) Login(_ context.Context, input LoginInput) error {
	usernameMatch := subtle.ConstantTimeCompare([]byte(input.Username), []byte(s.adminUsername)) == 1

	err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(input.Password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrAuthInvalidCredentials
		}
		return fmt.Errorf("failed to compare password hash: %w", err)
	}

	if !usernameMatch {
		return ErrAuthInvalidCredentials
	}
	return nil
}
