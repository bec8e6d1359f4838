package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayplan-app/planner-api/internal/core/domain"
)

// ownedFinder matches any repository whose single-record lookup is scoped to
// the owner inside the query itself.
type ownedFinder[T domain.Owned] interface {
	FindByID(ctx context.Context, id, userID int64) (T, error)
}

// requireOwned resolves a resource for userID, collapsing "belongs to someone
// else" and "does not exist" into the same domain.ErrNotFound. It is the one
// ownership-chain check shared by all services: whenever a request references
// a parent resource (calendar of an event, group of a task), the reference is
// resolved through here before it is trusted — on create and on update alike.
func requireOwned[T domain.Owned](ctx context.Context, repo ownedFinder[T], id, userID int64) (T, error) {
	res, err := repo.FindByID(ctx, id, userID)
	if err != nil {
		var zero T
		if errors.Is(err, domain.ErrNotFound) {
			return zero, domain.ErrNotFound
		}
		return zero, fmt.Errorf("ownership lookup: %w", err)
	}
	return res, nil
}

// invalidf builds a client-facing validation error carrying the
// domain.ErrValidation sentinel for the boundary translator.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, fmt.Sprintf(format, args...))
}
