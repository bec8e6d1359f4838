package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dayplan-app/planner-api/internal/core/domain"
	"github.com/dayplan-app/planner-api/internal/core/ports"
)

type activityService struct {
	activities ports.ActivityRepository
	users      ports.UserRepository
	log        zerolog.Logger
}

// NewActivityService returns the ActivityService run by the dispatcher
// workers. Logins additionally bump the user's last_session.
func NewActivityService(activities ports.ActivityRepository, users ports.UserRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{activities: activities, users: users, log: log}
}

func (s *activityService) Record(ctx context.Context, in ports.ActivityInput) error {
	if err := s.activities.Insert(ctx, &domain.Activity{
		UserID:    in.UserID,
		Kind:      in.Kind,
		Timestamp: in.Timestamp,
	}); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	if in.Kind == domain.ActivityLogin {
		if err := s.users.TouchLastSession(ctx, in.UserID, in.Timestamp); err != nil {
			// The audit row is already written; last_session is advisory.
			s.log.Warn().Err(err).Int64("user_id", in.UserID).Msg("failed to update last_session")
		}
	}

	s.log.Debug().Int64("user_id", in.UserID).Str("kind", string(in.Kind)).Msg("activity recorded")
	return nil
}
