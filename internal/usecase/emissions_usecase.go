package usecase

import (
	"context"

	"ecovis/internal/domain/entity"
)

// CreateEmissionsCalculationInput is the insert shape of an estimate computed by the client.
type CreateEmissionsCalculationInput struct {
	UserID          int64  `json:"userId" validate:"required,min=1"`
	VehicleMake     string `json:"vehicleMake" validate:"required,max=100"`
	VehicleModel    string `json:"vehicleModel" validate:"required,max=100"`
	VehicleYear     int    `json:"vehicleYear" validate:"required,min=1900,max=2100"`
	FuelType        string `json:"fuelType" validate:"required,max=20"`
	Distance        int    `json:"distance" validate:"min=0,max=2147483647"`
	EmissionsAmount string `json:"emissionsAmount" validate:"required,max=50"`
}

// CalculateEmissionsInput asks the server to estimate a trip.
// When UserID is set the estimate is also stored and awarded.
type CalculateEmissionsInput struct {
	Make     string `json:"make" validate:"required,max=100"`
	Model    string `json:"model" validate:"required,max=100"`
	Year     int    `json:"year" validate:"required,min=1900,max=2100"`
	FuelType string `json:"fuelType" validate:"required,oneof=petrol diesel hybrid electric"`
	Distance int    `json:"distance" validate:"required,min=1,max=2147483647"`
	UserID   *int64 `json:"userId" validate:"omitempty,min=1"`
}

// CalculateEmissionsOutput is the estimate plus the stored record, if any.
type CalculateEmissionsOutput struct {
	entity.EmissionsEstimate
	Record *entity.EmissionsCalculation `json:"record,omitempty"`
}

// EmissionsUsecase defines emissions logging and estimation.
type EmissionsUsecase interface {
	// CreateCalculation stores a calculation and awards its owner.
	CreateCalculation(ctx context.Context, input *CreateEmissionsCalculationInput) (*entity.EmissionsCalculation, error)

	// Calculate estimates the trip with the fixed emission factors.
	Calculate(ctx context.Context, input *CalculateEmissionsInput) (*CalculateEmissionsOutput, error)

	// ListByUser returns the user's calculations, newest first.
	ListByUser(ctx context.Context, userID int64) ([]*entity.EmissionsCalculation, error)
}
