package memory

import (
	"context"
	"time"

	"ecovis/internal/domain/entity"
	"ecovis/internal/domain/repository"
)

// CreateActivity appends a standalone activity. The user's eco score is left as is.
func (s *Store) CreateActivity(_ context.Context, activity *entity.UserActivity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[activity.UserID]; !ok {
		return repository.ErrUserNotFound
	}

	s.activitySeq++
	activity.ID = s.activitySeq
	activity.CreatedAt = s.now()

	clone := *activity
	s.activities[activity.ID] = &clone

	return nil
}

// ListActivitiesByUser returns up to limit activities, newest first.
func (s *Store) ListActivitiesByUser(_ context.Context, userID int64, limit int) ([]*entity.UserActivity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activities := collect(s.activities,
		func(a *entity.UserActivity) bool { return a.UserID == userID },
		func(a *entity.UserActivity) (time.Time, int64) { return a.CreatedAt, a.ID },
	)

	return paginate(activities, repository.Page{Limit: limit}), nil
}
