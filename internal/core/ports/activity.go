package ports

import (
	"context"
	"time"

	"github.com/dayplan-app/planner-api/internal/core/domain"
)

// ActivityInput is the DTO handed from the auth handlers to the activity
// dispatcher after a successful signup or login.
type ActivityInput struct {
	UserID    int64
	Kind      domain.ActivityKind
	Timestamp time.Time
}

// ActivityService records session activity off the request path: audit entry
// plus last_session bump on login. Best-effort; failures are logged, never
// returned to the client.
type ActivityService interface {
	Record(ctx context.Context, in ActivityInput) error
}

// ActivityRepository persists audit entries.
type ActivityRepository interface {
	Insert(ctx context.Context, a *domain.Activity) error
}
