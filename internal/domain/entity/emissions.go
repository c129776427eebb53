package entity

import "time"

// FuelType is the propulsion of the vehicle an estimate is computed for.
type FuelType string

const (
	FuelTypePetrol   FuelType = "petrol"
	FuelTypeDiesel   FuelType = "diesel"
	FuelTypeHybrid   FuelType = "hybrid"
	FuelTypeElectric FuelType = "electric"
)

// EmissionsCalculation is a logged CO₂ estimate for one trip.
type EmissionsCalculation struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	VehicleMake     string    `json:"vehicleMake"`
	VehicleModel    string    `json:"vehicleModel"`
	VehicleYear     int       `json:"vehicleYear"`
	FuelType        string    `json:"fuelType"`
	Distance        int       `json:"distance"`
	EmissionsAmount string    `json:"emissionsAmount"`
	PointsEarned    int       `json:"pointsEarned"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Vehicle is the input of an emissions estimate.
type Vehicle struct {
	Make     string
	Model    string
	Year     int
	FuelType FuelType
	Distance int // kilometres
}

// EmissionsAlternative compares the trip against another way of travelling.
type EmissionsAlternative struct {
	Name      string `json:"name"`
	Emissions string `json:"emissions"`
	Reduction string `json:"reduction"`
}

// EmissionsEstimate is the computed result shown to the user.
type EmissionsEstimate struct {
	EmissionsAmount string                 `json:"emissionsAmount"`
	RelativeSaving  string                 `json:"relativeSaving"`
	Alternatives    []EmissionsAlternative `json:"alternatives"`
}
