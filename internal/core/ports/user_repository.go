package ports

import (
	"context"
	"time"

	"github.com/dayplan-app/planner-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
//
// FindByEmail expects an already-normalized (lower-cased, trimmed) email and
// performs an exact match; normalization happens once in the service layer so
// signup-duplicate detection and login always agree.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrEmailTaken when the email
	// is already registered (unique index, not find-then-insert).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Update persists profile/config changes (names, password hash).
	Update(ctx context.Context, user *domain.User) error
	// TouchLastSession records the most recent login time.
	TouchLastSession(ctx context.Context, userID int64, ts time.Time) error
}
