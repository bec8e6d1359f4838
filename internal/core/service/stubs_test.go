package service

import (
	"context"
	"time"

	"github.com/dayplan-app/planner-api/internal/core/domain"
	"github.com/dayplan-app/planner-api/internal/core/ports"
)

// In-memory repository stubs shared by the service tests. They reproduce the
// combined id+owner predicate of the real mongo layer: a foreign resource is
// the same not-found as a missing one.

type stubUserRepo struct {
	nextID int64
	users  map[int64]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	clone := *user
	clone.ID = r.nextID
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) TouchLastSession(_ context.Context, userID int64, ts time.Time) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LastSession = ts
	return nil
}

type stubCalendarRepo struct {
	nextID    int64
	calendars map[int64]*domain.Calendar
}

func newStubCalendarRepo() *stubCalendarRepo {
	return &stubCalendarRepo{calendars: make(map[int64]*domain.Calendar)}
}

func (r *stubCalendarRepo) Create(_ context.Context, cal *domain.Calendar) (*domain.Calendar, error) {
	r.nextID++
	clone := *cal
	clone.ID = r.nextID
	r.calendars[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCalendarRepo) FindByID(_ context.Context, id, userID int64) (*domain.Calendar, error) {
	cal, ok := r.calendars[id]
	if !ok || cal.UserID != userID {
		return nil, domain.ErrNotFound
	}
	clone := *cal
	return &clone, nil
}

func (r *stubCalendarRepo) ListByUser(_ context.Context, userID int64) ([]*domain.Calendar, error) {
	out := []*domain.Calendar{}
	for _, cal := range r.calendars {
		if cal.UserID == userID {
			clone := *cal
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubCalendarRepo) Update(_ context.Context, cal *domain.Calendar) (*domain.Calendar, error) {
	existing, ok := r.calendars[cal.ID]
	if !ok || existing.UserID != cal.UserID {
		return nil, domain.ErrNotFound
	}
	clone := *cal
	r.calendars[cal.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCalendarRepo) Delete(_ context.Context, id, userID int64) error {
	cal, ok := r.calendars[id]
	if !ok || cal.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.calendars, id)
	return nil
}

type stubEventRepo struct {
	nextID int64
	events map[int64]*domain.Event
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{events: make(map[int64]*domain.Event)}
}

func (r *stubEventRepo) Create(_ context.Context, ev *domain.Event) (*domain.Event, error) {
	r.nextID++
	clone := *ev
	clone.ID = r.nextID
	r.events[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubEventRepo) FindByID(_ context.Context, id, userID int64) (*domain.Event, error) {
	ev, ok := r.events[id]
	if !ok || ev.UserID != userID {
		return nil, domain.ErrNotFound
	}
	clone := *ev
	return &clone, nil
}

func (r *stubEventRepo) List(_ context.Context, filter ports.EventRangeFilter) ([]*domain.Event, error) {
	out := []*domain.Event{}
	for _, ev := range r.events {
		if ev.UserID != filter.UserID {
			continue
		}
		if !filter.From.IsZero() && ev.StartDate.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && ev.EndDate.After(filter.To) {
			continue
		}
		clone := *ev
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubEventRepo) Update(_ context.Context, ev *domain.Event) (*domain.Event, error) {
	existing, ok := r.events[ev.ID]
	if !ok || existing.UserID != ev.UserID {
		return nil, domain.ErrNotFound
	}
	clone := *ev
	r.events[ev.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubEventRepo) Delete(_ context.Context, id, userID int64) error {
	ev, ok := r.events[id]
	if !ok || ev.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *stubEventRepo) DeleteByCalendar(_ context.Context, calendarID, userID int64) error {
	for id, ev := range r.events {
		if ev.CalendarID == calendarID && ev.UserID == userID {
			delete(r.events, id)
		}
	}
	return nil
}

type stubTaskRepo struct {
	nextID int64
	tasks  map[int64]*domain.Task
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[int64]*domain.Task)}
}

func (r *stubTaskRepo) Create(_ context.Context, t *domain.Task) (*domain.Task, error) {
	r.nextID++
	clone := *t
	clone.ID = r.nextID
	r.tasks[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id, userID int64) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return nil, domain.ErrNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTaskRepo) ListByUser(_ context.Context, userID, groupID int64) ([]*domain.Task, error) {
	out := []*domain.Task{}
	for _, t := range r.tasks {
		if t.UserID != userID {
			continue
		}
		if groupID != 0 && t.GroupID != groupID {
			continue
		}
		clone := *t
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubTaskRepo) Update(_ context.Context, t *domain.Task) (*domain.Task, error) {
	existing, ok := r.tasks[t.ID]
	if !ok || existing.UserID != t.UserID {
		return nil, domain.ErrNotFound
	}
	clone := *t
	r.tasks[t.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id, userID int64) error {
	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *stubTaskRepo) DeleteByGroup(_ context.Context, groupID, userID int64) error {
	for id, t := range r.tasks {
		if t.GroupID == groupID && t.UserID == userID {
			delete(r.tasks, id)
		}
	}
	return nil
}

type stubTaskGroupRepo struct {
	nextID int64
	groups map[int64]*domain.TaskGroup
}

func newStubTaskGroupRepo() *stubTaskGroupRepo {
	return &stubTaskGroupRepo{groups: make(map[int64]*domain.TaskGroup)}
}

func (r *stubTaskGroupRepo) Create(_ context.Context, g *domain.TaskGroup) (*domain.TaskGroup, error) {
	r.nextID++
	clone := *g
	clone.ID = r.nextID
	r.groups[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTaskGroupRepo) FindByID(_ context.Context, id, userID int64) (*domain.TaskGroup, error) {
	g, ok := r.groups[id]
	if !ok || g.UserID != userID {
		return nil, domain.ErrNotFound
	}
	clone := *g
	return &clone, nil
}

func (r *stubTaskGroupRepo) ListByUser(_ context.Context, userID int64) ([]*domain.TaskGroup, error) {
	out := []*domain.TaskGroup{}
	for _, g := range r.groups {
		if g.UserID == userID {
			clone := *g
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubTaskGroupRepo) Update(_ context.Context, g *domain.TaskGroup) (*domain.TaskGroup, error) {
	existing, ok := r.groups[g.ID]
	if !ok || existing.UserID != g.UserID {
		return nil, domain.ErrNotFound
	}
	clone := *g
	r.groups[g.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTaskGroupRepo) Delete(_ context.Context, id, userID int64) error {
	g, ok := r.groups[id]
	if !ok || g.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.groups, id)
	return nil
}

type stubActivityRepo struct {
	records []*domain.Activity
}

func (r *stubActivityRepo) Insert(_ context.Context, a *domain.Activity) error {
	clone := *a
	r.records = append(r.records, &clone)
	return nil
}

// stubLimiter counts calls and blocks after blockAfter failures.
type stubLimiter struct {
	blockAfter int
	failures   int
	resets     int
}

func (l *stubLimiter) Allow(_ context.Context, _ string) (bool, error) {
	return l.blockAfter == 0 || l.failures < l.blockAfter, nil
}

func (l *stubLimiter) Failure(_ context.Context, _ string) error {
	l.failures++
	return nil
}

func (l *stubLimiter) Success(_ context.Context, _ string) error {
	l.failures = 0
	l.resets++
	return nil
}
