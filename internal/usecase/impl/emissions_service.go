package impl

import (
	"context"
	"log/slog"

	deliverycontext "ecovis/internal/delivery/context"
	"ecovis/internal/domain/entity"
	domainerrors "ecovis/internal/domain/errors"
	"ecovis/internal/domain/repository"
	"ecovis/internal/domain/service"
	"ecovis/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type emissionsService struct {
	emissionsRepo repository.EmissionsRepository
	userRepo      repository.UserRepository
	estimator     service.EmissionsEstimator
	logger        *slog.Logger
}

// EmissionsServiceParams holds dependencies for EmissionsService, injected by Fx.
type EmissionsServiceParams struct {
	fx.In

	EmissionsRepo repository.EmissionsRepository
	UserRepo      repository.UserRepository
	Estimator     service.EmissionsEstimator
	Logger        *slog.Logger
}

// NewEmissionsService creates a new emissions service instance
func NewEmissionsService(params EmissionsServiceParams) usecase.EmissionsUsecase {
	return &emissionsService{
		emissionsRepo: params.EmissionsRepo,
		userRepo:      params.UserRepo,
		estimator:     params.Estimator,
		logger:        params.Logger,
	}
}

func (srv *emissionsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *emissionsService) CreateCalculation(ctx context.Context, input *usecase.CreateEmissionsCalculationInput) (*entity.EmissionsCalculation, error) {
	calculation := &entity.EmissionsCalculation{
		UserID:          input.UserID,
		VehicleMake:     input.VehicleMake,
		VehicleModel:    input.VehicleModel,
		VehicleYear:     input.VehicleYear,
		FuelType:        input.FuelType,
		Distance:        input.Distance,
		EmissionsAmount: input.EmissionsAmount,
	}

	if err := srv.emissionsRepo.CreateEmissionsCalculation(ctx, calculation); err != nil {
		srv.log(ctx).Warn("Failed to store emissions calculation", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return nil, translateStoreError(err, "failed to create emissions calculation")
	}

	return calculation, nil
}

// Calculate stores the estimate only when the request names a user.
func (srv *emissionsService) Calculate(ctx context.Context, input *usecase.CalculateEmissionsInput) (*usecase.CalculateEmissionsOutput, error) {
	estimate, err := srv.estimator.Estimate(entity.Vehicle{
		Make:     input.Make,
		Model:    input.Model,
		Year:     input.Year,
		FuelType: entity.FuelType(input.FuelType),
		Distance: input.Distance,
	})
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedFuelType) {
			return nil, domainerrors.NewValidationError("", []domainerrors.FieldError{{
				Field:   "fuelType",
				Rule:    "oneof",
				Message: "fuelType must be one of petrol, diesel, hybrid, electric",
			}})
		}

		return nil, errors.Wrap(err, "failed to estimate emissions")
	}

	output := &usecase.CalculateEmissionsOutput{EmissionsEstimate: estimate}
	if input.UserID == nil {
		return output, nil
	}

	record, err := srv.CreateCalculation(ctx, &usecase.CreateEmissionsCalculationInput{
		UserID:          *input.UserID,
		VehicleMake:     input.Make,
		VehicleModel:    input.Model,
		VehicleYear:     input.Year,
		FuelType:        input.FuelType,
		Distance:        input.Distance,
		EmissionsAmount: estimate.EmissionsAmount,
	})
	if err != nil {
		return nil, err
	}
	output.Record = record

	return output, nil
}

func (srv *emissionsService) ListByUser(ctx context.Context, userID int64) ([]*entity.EmissionsCalculation, error) {
	if _, err := srv.userRepo.FindUserByID(ctx, userID); err != nil {
		return nil, translateStoreError(err, "failed to get user")
	}

	calculations, err := srv.emissionsRepo.ListEmissionsCalculationsByUser(ctx, userID)
	if err != nil {
		return nil, translateStoreError(err, "failed to list emissions calculations")
	}

	return calculations, nil
}
