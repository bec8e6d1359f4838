package ports

import (
	"context"

	"github.com/dayplan-app/planner-api/internal/core/domain"
)

// SignupInput carries the fields accepted at registration.
type SignupInput struct {
	Email       string
	Password    string
	Name        string
	DisplayName string
}

// ConfigUpdateInput carries the optional profile changes from PUT /config.
// Nil pointer = field untouched. Changing the password requires the correct
// current password.
type ConfigUpdateInput struct {
	DisplayName     *string
	Name            *string
	CurrentPassword string
	NewPassword     string
}

// AuthService implements account lifecycle and session issuance.
type AuthService interface {
	// Signup registers a new account and returns it with a fresh token.
	Signup(ctx context.Context, in SignupInput) (*domain.User, string, error)
	// Login verifies credentials and returns a fresh token. Wrong password
	// and unknown email both surface as domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Profile returns the account behind a verified token.
	Profile(ctx context.Context, userID int64) (*domain.User, error)
	// UpdateConfig applies profile changes and/or a password change.
	UpdateConfig(ctx context.Context, userID int64, in ConfigUpdateInput) (*domain.User, error)
}
