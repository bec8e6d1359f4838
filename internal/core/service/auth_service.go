package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dayplan-app/planner-api/internal/core/domain"
	"github.com/dayplan-app/planner-api/internal/core/ports"
	"github.com/dayplan-app/planner-api/internal/core/token"
	"github.com/dayplan-app/planner-api/internal/crypto"
)

// LoginLimiter guards repeated failed logins per normalized email.
// A nil limiter disables the guard (tests, local development).
type LoginLimiter interface {
	// Allow reports whether a login attempt may proceed.
	Allow(ctx context.Context, email string) (bool, error)
	// Failure records a failed attempt.
	Failure(ctx context.Context, email string) error
	// Success resets the counter after a successful login.
	Success(ctx context.Context, email string) error
}

// AuthService implements signup, login, profile, and config updates.
type AuthService struct {
	users   ports.UserRepository
	codec   *token.Codec
	limiter LoginLimiter
	log     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *token.Codec, limiter LoginLimiter, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, limiter: limiter, log: log}
}

// NormalizeEmail lower-cases and trims an email so storage, duplicate
// detection, and login all compare the same string.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, string, error) {
	email := NormalizeEmail(in.Email)
	password := strings.TrimSpace(in.Password)
	if email == "" || password == "" {
		return nil, "", invalidf("email and password are required")
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Email:        email,
		Name:         strings.TrimSpace(in.Name),
		DisplayName:  strings.TrimSpace(in.DisplayName),
		PasswordHash: hash,
		Role:         domain.RoleUser,
		IsActive:     true,
		SignupDate:   time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	tok, err := s.codec.Issue(created.ID, created.Email)
	if err != nil {
		return nil, "", err
	}

	s.log.Info().Int64("user_id", created.ID).Msg("user registered")
	return created, tok, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = NormalizeEmail(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return "", nil, invalidf("email and password are required")
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Msg("login limiter unavailable, allowing attempt")
		} else if !allowed {
			return "", nil, domain.ErrRateLimited
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same failure path as a wrong password: the response must not
			// reveal whether the email exists.
			s.recordFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !crypto.VerifyPassword(password, user.PasswordHash) {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Success(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("login limiter reset failed")
		}
	}

	tok, err := s.codec.Issue(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return tok, user, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.Failure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login limiter record failed")
	}
}

func (s *AuthService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) UpdateConfig(ctx context.Context, userID int64, in ports.ConfigUpdateInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.DisplayName != nil {
		dn := strings.TrimSpace(*in.DisplayName)
		if dn == "" {
			return nil, invalidf("display_name cannot be empty")
		}
		user.DisplayName = dn
	}
	if in.Name != nil {
		n := strings.TrimSpace(*in.Name)
		if n == "" {
			return nil, invalidf("name cannot be empty")
		}
		user.Name = n
	}

	if newPw := strings.TrimSpace(in.NewPassword); newPw != "" {
		current := strings.TrimSpace(in.CurrentPassword)
		if current == "" {
			return nil, invalidf("current_password is required to change the password")
		}
		if !crypto.VerifyPassword(current, user.PasswordHash) {
			return nil, domain.ErrInvalidCredentials
		}
		hash, err := crypto.HashPassword(newPw)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
