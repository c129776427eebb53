package service

import (
	"ecovis/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrUnsupportedFuelType is returned by an EmissionsEstimator for a fuel type it has no factor for.
var ErrUnsupportedFuelType = errors.New("unsupported fuel type")

// WasteClassifier maps an uploaded image to a recognition profile.
// Implementations must be deterministic for a given file name.
type WasteClassifier interface {
	// Classify returns the profile recognised for the file.
	Classify(fileName string) entity.RecognitionProfile

	// Profile returns the static profile of a waste type. Unknown types get a generic profile.
	Profile(wasteType entity.WasteType) entity.RecognitionProfile
}

// EmissionsEstimator computes the CO₂ footprint of a trip and compares it with greener options.
type EmissionsEstimator interface {
	// Estimate returns the trip emissions with alternatives. It fails only with ErrUnsupportedFuelType.
	Estimate(vehicle entity.Vehicle) (entity.EmissionsEstimate, error)
}
