// Package emissions estimates trip CO₂ from fixed per-fuel emission factors.
package emissions

import (
	"fmt"
	"math"

	"ecovis/internal/domain/entity"
	"ecovis/internal/domain/service"

	"github.com/pkg/errors"
)

// Grams of CO₂ per kilometre.
var emissionFactors = map[entity.FuelType]float64{
	entity.FuelTypePetrol:   120,
	entity.FuelTypeDiesel:   110,
	entity.FuelTypeHybrid:   80,
	entity.FuelTypeElectric: 50,
}

var relativeSavings = map[entity.FuelType]string{
	entity.FuelTypePetrol:   "This is comparable to the average car",
	entity.FuelTypeDiesel:   "This is 8% less than the average petrol car",
	entity.FuelTypeHybrid:   "This is 33% less than the average car",
	entity.FuelTypeElectric: "This is 58% less than the average car",
}

// Kilograms of CO₂ per kilometre for the alternatives offered to the user.
const (
	publicTransportKgPerKm = 0.04
	electricVehicleKgPerKm = 0.05
)

type calculator struct{}

// NewCalculator returns the factor-table estimator.
func NewCalculator() service.EmissionsEstimator {
	return calculator{}
}

func (calculator) Estimate(vehicle entity.Vehicle) (entity.EmissionsEstimate, error) {
	factor, ok := emissionFactors[vehicle.FuelType]
	if !ok {
		return entity.EmissionsEstimate{}, errors.Wrapf(service.ErrUnsupportedFuelType, "fuel type %q", vehicle.FuelType)
	}

	distance := float64(vehicle.Distance)
	total := factor * distance / 1000

	return entity.EmissionsEstimate{
		EmissionsAmount: formatKg(total),
		RelativeSaving:  relativeSavings[vehicle.FuelType],
		Alternatives:    alternatives(total, distance, vehicle.FuelType),
	}, nil
}

func alternatives(original, distance float64, fuelType entity.FuelType) []entity.EmissionsAlternative {
	result := make([]entity.EmissionsAlternative, 0, 3)

	publicTransport := distance * publicTransportKgPerKm
	result = append(result, entity.EmissionsAlternative{
		Name:      "Public Transportation",
		Emissions: formatKg(publicTransport),
		Reduction: formatReduction(original, publicTransport),
	})

	if fuelType != entity.FuelTypeElectric {
		electric := distance * electricVehicleKgPerKm
		result = append(result, entity.EmissionsAlternative{
			Name:      "Electric Vehicle",
			Emissions: formatKg(electric),
			Reduction: formatReduction(original, electric),
		})
	}

	result = append(result, entity.EmissionsAlternative{
		Name:      "Cycling/Walking",
		Emissions: "0 kg CO₂",
		Reduction: formatReduction(original, 0),
	})

	return result
}

func formatKg(kg float64) string {
	return fmt.Sprintf("%.1f kg CO₂", kg)
}

// formatReduction reports 0% for a zero-length trip instead of dividing by zero.
func formatReduction(original, alternative float64) string {
	pct := 0.0
	if original > 0 {
		pct = math.Round((original - alternative) / original * 100)
	}

	return fmt.Sprintf("%d%% reduction", int(pct))
}
