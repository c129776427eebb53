package postgres

import (
	"context"

	"ecovis/internal/domain/entity"
	"ecovis/internal/domain/scoring"
	"ecovis/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateWasteRecognition stores the record together with its award in one transaction.
func (s *Store) CreateWasteRecognition(ctx context.Context, recognition *entity.WasteRecognition) error {
	award := scoring.ForWasteRecognition(string(recognition.WasteType))
	recordM := fromWasteRecognitionDomain(recognition)
	recordM.PointsEarned = award.Points

	err := s.transaction(ctx, func(tx *gorm.DB) error {
		if err := applyAward(tx, recognition.UserID, award); err != nil {
			return err
		}

		return errors.Wrap(tx.Create(recordM).Error, "failed to create waste recognition")
	})
	if err != nil {
		return err
	}

	recognition.ID = recordM.ID
	recognition.PointsEarned = recordM.PointsEarned
	recognition.CreatedAt = recordM.CreatedAt

	return nil
}

func (s *Store) ListWasteRecognitionsByUser(ctx context.Context, userID int64) ([]*entity.WasteRecognition, error) {
	var rows []model.WasteRecognitionModel
	if err := s.conn(ctx).Where("user_id = ?", userID).Scopes(newestFirst).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list waste recognitions")
	}

	recognitions := make([]*entity.WasteRecognition, 0, len(rows))
	for i := range rows {
		recognitions = append(recognitions, toWasteRecognitionDomain(&rows[i]))
	}

	return recognitions, nil
}

func toWasteRecognitionDomain(data *model.WasteRecognitionModel) *entity.WasteRecognition {
	return &entity.WasteRecognition{
		ID:                 data.ID,
		UserID:             data.UserID,
		ImageURL:           data.ImageURL,
		WasteType:          entity.WasteType(data.WasteType),
		WeightEstimate:     data.WeightEstimate,
		RecyclabilityScore: data.RecyclabilityScore,
		DisposalMethod:     data.DisposalMethod,
		PointsEarned:       data.PointsEarned,
		CreatedAt:          data.CreatedAt,
	}
}

func fromWasteRecognitionDomain(data *entity.WasteRecognition) *model.WasteRecognitionModel {
	return &model.WasteRecognitionModel{
		UserID:             data.UserID,
		ImageURL:           data.ImageURL,
		WasteType:          string(data.WasteType),
		WeightEstimate:     data.WeightEstimate,
		RecyclabilityScore: data.RecyclabilityScore,
		DisposalMethod:     data.DisposalMethod,
	}
}
