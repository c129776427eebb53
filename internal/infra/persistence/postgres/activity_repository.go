package postgres

import (
	"context"

	"ecovis/internal/domain/entity"
	"ecovis/internal/domain/repository"
	"ecovis/internal/infra/persistence/model"

	"github.com/pkg/errors"
)

// CreateActivity appends a standalone activity. The user's eco score is left as is.
func (s *Store) CreateActivity(ctx context.Context, activity *entity.UserActivity) error {
	activityM := &model.UserActivityModel{
		UserID:       activity.UserID,
		ActivityType: activity.ActivityType,
		Description:  activity.Description,
		PointsEarned: activity.PointsEarned,
	}

	if err := s.conn(ctx).Create(activityM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to create activity")
	}

	activity.ID = activityM.ID
	activity.CreatedAt = activityM.CreatedAt

	return nil
}

func (s *Store) ListActivitiesByUser(ctx context.Context, userID int64, limit int) ([]*entity.UserActivity, error) {
	var rows []model.UserActivityModel
	err := s.conn(ctx).
		Where("user_id = ?", userID).
		Scopes(newestFirst, paged(repository.Page{Limit: limit})).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	activities := make([]*entity.UserActivity, 0, len(rows))
	for i := range rows {
		activities = append(activities, toActivityDomain(&rows[i]))
	}

	return activities, nil
}

func toActivityDomain(data *model.UserActivityModel) *entity.UserActivity {
	return &entity.UserActivity{
		ID:           data.ID,
		UserID:       data.UserID,
		ActivityType: data.ActivityType,
		Description:  data.Description,
		PointsEarned: data.PointsEarned,
		CreatedAt:    data.CreatedAt,
	}
}
