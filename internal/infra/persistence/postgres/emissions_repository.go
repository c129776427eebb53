package postgres

import (
	"context"

	"ecovis/internal/domain/entity"
	"ecovis/internal/domain/scoring"
	"ecovis/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateEmissionsCalculation stores the record together with its award in one transaction.
func (s *Store) CreateEmissionsCalculation(ctx context.Context, calculation *entity.EmissionsCalculation) error {
	award := scoring.ForEmissionsCalculation(calculation.VehicleMake, calculation.VehicleModel)
	recordM := fromEmissionsCalculationDomain(calculation)
	recordM.PointsEarned = award.Points

	err := s.transaction(ctx, func(tx *gorm.DB) error {
		if err := applyAward(tx, calculation.UserID, award); err != nil {
			return err
		}

		return errors.Wrap(tx.Create(recordM).Error, "failed to create emissions calculation")
	})
	if err != nil {
		return err
	}

	calculation.ID = recordM.ID
	calculation.PointsEarned = recordM.PointsEarned
	calculation.CreatedAt = recordM.CreatedAt

	return nil
}

func (s *Store) ListEmissionsCalculationsByUser(ctx context.Context, userID int64) ([]*entity.EmissionsCalculation, error) {
	var rows []model.EmissionsCalculationModel
	if err := s.conn(ctx).Where("user_id = ?", userID).Scopes(newestFirst).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list emissions calculations")
	}

	calculations := make([]*entity.EmissionsCalculation, 0, len(rows))
	for i := range rows {
		calculations = append(calculations, toEmissionsCalculationDomain(&rows[i]))
	}

	return calculations, nil
}

func toEmissionsCalculationDomain(data *model.EmissionsCalculationModel) *entity.EmissionsCalculation {
	return &entity.EmissionsCalculation{
		ID:              data.ID,
		UserID:          data.UserID,
		VehicleMake:     data.VehicleMake,
		VehicleModel:    data.VehicleModel,
		VehicleYear:     data.VehicleYear,
		FuelType:        data.FuelType,
		Distance:        data.Distance,
		EmissionsAmount: data.EmissionsAmount,
		PointsEarned:    data.PointsEarned,
		CreatedAt:       data.CreatedAt,
	}
}

func fromEmissionsCalculationDomain(data *entity.EmissionsCalculation) *model.EmissionsCalculationModel {
	return &model.EmissionsCalculationModel{
		UserID:          data.UserID,
		VehicleMake:     data.VehicleMake,
		VehicleModel:    data.VehicleModel,
		VehicleYear:     data.VehicleYear,
		FuelType:        data.FuelType,
		Distance:        data.Distance,
		EmissionsAmount: data.EmissionsAmount,
	}
}
