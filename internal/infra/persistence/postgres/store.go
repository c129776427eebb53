package postgres

import (
	"context"

	"ecovis/internal/domain/repository"
	"ecovis/internal/domain/scoring"
	"ecovis/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var _ repository.Store = (*Store)(nil)

// Store implements repository.Store on PostgreSQL.
// Counters are changed with single UPDATE expressions and every award event runs in one transaction.
type Store struct {
	db *gorm.DB
}

// NewStore is the constructor for Store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// applyAward credits the user and appends the matching activity inside tx.
// A missing user aborts the transaction with repository.ErrUserNotFound.
func applyAward(tx *gorm.DB, userID int64, award scoring.Award) error {
	res := tx.Model(&model.UserModel{}).
		Where("id = ?", userID).
		UpdateColumn("eco_score", gorm.Expr("eco_score + ?", award.Points))
	if res.Error != nil {
		return errors.Wrap(res.Error, "failed to credit eco score")
	}
	if res.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	activity := &model.UserActivityModel{
		UserID:       userID,
		ActivityType: string(award.Kind),
		Description:  award.Description,
		PointsEarned: award.Points,
	}
	if err := tx.Create(activity).Error; err != nil {
		return errors.Wrap(err, "failed to record activity")
	}

	return nil
}

// newestFirst orders rows by creation time, breaking ties by id.
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

// paged applies page to the query. A non-positive limit means no limit.
func paged(page repository.Page) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page.Limit > 0 {
			db = db.Limit(page.Limit)
		}
		if page.Offset > 0 {
			db = db.Offset(page.Offset)
		}

		return db
	}
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}
