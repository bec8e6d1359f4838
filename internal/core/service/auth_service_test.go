package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dayplan-app/planner-api/internal/core/domain"
	"github.com/dayplan-app/planner-api/internal/core/ports"
	"github.com/dayplan-app/planner-api/internal/core/token"
)

func newAuthService(t *testing.T, users ports.UserRepository, limiter LoginLimiter) *AuthService {
	t.Helper()
	codec, err := token.NewCodec("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	return NewAuthService(users, codec, limiter, zerolog.Nop())
}

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo, nil)

	user, tok, err := svc.Signup(context.Background(), ports.SignupInput{
		Email:    "Alice@Example.com ",
		Password: "pass123",
		Name:     "Alice",
	})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if tok == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", user.Role)
	}
	if !user.IsActive {
		t.Fatalf("new account must be active")
	}
}

func TestAuthService_Signup_Validation(t *testing.T) {
	svc := newAuthService(t, newStubUserRepo(), nil)

	if _, _, err := svc.Signup(context.Background(), ports.SignupInput{Email: "", Password: "x"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, _, err := svc.Signup(context.Background(), ports.SignupInput{Email: "a@b.com", Password: "  "}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for blank password, got %v", err)
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo, nil)

	if _, _, err := svc.Signup(context.Background(), ports.SignupInput{Email: "bob@example.com", Password: "pass"}); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	// Same address in different casing must collide.
	_, _, err := svc.Signup(context.Background(), ports.SignupInput{Email: "BOB@example.com", Password: "other"})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{blockAfter: 5}
	svc := newAuthService(t, repo, limiter)

	if _, _, err := svc.Signup(context.Background(), ports.SignupInput{Email: "carol@example.com", Password: "s3cret"}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	tok, user, err := svc.Login(context.Background(), " Carol@Example.COM", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if tok == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Email != "carol@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if limiter.resets != 1 {
		t.Fatalf("expected limiter reset on success, got %d", limiter.resets)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{blockAfter: 5}
	svc := newAuthService(t, repo, limiter)

	_, _, _ = svc.Signup(context.Background(), ports.SignupInput{Email: "dave@example.com", Password: "goodpass"})

	_, _, err := svc.Login(context.Background(), "dave@example.com", "badpass")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if limiter.failures != 1 {
		t.Fatalf("expected one recorded failure, got %d", limiter.failures)
	}
}

func TestAuthService_Login_UnknownEmailIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo, nil)

	_, _, _ = svc.Signup(context.Background(), ports.SignupInput{Email: "erin@example.com", Password: "goodpass"})

	_, _, errUnknown := svc.Login(context.Background(), "ghost@example.com", "whatever")
	_, _, errWrong := svc.Login(context.Background(), "erin@example.com", "badpass")

	// An attacker must not learn whether the email exists.
	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) || !errors.Is(errWrong, domain.ErrInvalidCredentials) {
		t.Fatalf("expected identical ErrInvalidCredentials, got %v and %v", errUnknown, errWrong)
	}
}

func TestAuthService_Login_RateLimited(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{blockAfter: 2}
	svc := newAuthService(t, repo, limiter)

	_, _, _ = svc.Signup(context.Background(), ports.SignupInput{Email: "frank@example.com", Password: "goodpass"})

	for i := 0; i < 2; i++ {
		if _, _, err := svc.Login(context.Background(), "frank@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}
	// Third attempt is blocked even with the right password.
	if _, _, err := svc.Login(context.Background(), "frank@example.com", "goodpass"); !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestAuthService_UpdateConfig(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo, nil)

	user, _, err := svc.Signup(context.Background(), ports.SignupInput{Email: "gail@example.com", Password: "oldpass", Name: "Gail"})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	dn := "Gail R."
	updated, err := svc.UpdateConfig(context.Background(), user.ID, ports.ConfigUpdateInput{DisplayName: &dn})
	if err != nil {
		t.Fatalf("UpdateConfig: %v", err)
	}
	if updated.DisplayName != "Gail R." {
		t.Fatalf("display name not updated: %q", updated.DisplayName)
	}

	empty := "  "
	if _, err := svc.UpdateConfig(context.Background(), user.ID, ports.ConfigUpdateInput{Name: &empty}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for blank name, got %v", err)
	}
}

func TestAuthService_UpdateConfig_PasswordChange(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo, nil)

	user, _, _ := svc.Signup(context.Background(), ports.SignupInput{Email: "hank@example.com", Password: "oldpass"})

	// Wrong current password.
	_, err := svc.UpdateConfig(context.Background(), user.ID, ports.ConfigUpdateInput{
		CurrentPassword: "nope",
		NewPassword:     "newpass",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	// Missing current password.
	_, err = svc.UpdateConfig(context.Background(), user.ID, ports.ConfigUpdateInput{NewPassword: "newpass"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	// Correct current password.
	if _, err := svc.UpdateConfig(context.Background(), user.ID, ports.ConfigUpdateInput{
		CurrentPassword: "oldpass",
		NewPassword:     "newpass",
	}); err != nil {
		t.Fatalf("UpdateConfig: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "hank@example.com", "newpass"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "hank@example.com", "oldpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("old password must stop working, got %v", err)
	}
}
