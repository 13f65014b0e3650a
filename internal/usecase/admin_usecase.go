package usecase

import (
	"context"
	"time"

	"presskit/internal/domain/service"
)

// LoginInput carries the admin credentials.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the freshly minted session token.
type LoginOutput struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// AdminUsecase is the session authority for the admin panel.
type AdminUsecase interface {
	// Login verifies the credentials and mints a session token. Unknown
	// email and wrong password are indistinguishable to the caller: both
	// yield domainerrors.ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout revokes the presented token until its natural expiry.
	Logout(ctx context.Context, claims *service.Claims) error
}
