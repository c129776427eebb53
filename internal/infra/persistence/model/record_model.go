package model

import "time"

// WasteRecognitionModel mirrors the 'waste_recognitions' table.
type WasteRecognitionModel struct {
	ID                 int64  `gorm:"primaryKey"`
	UserID             int64  `gorm:"not null;index"`
	ImageURL           string `gorm:"type:text;not null"`
	WasteType          string `gorm:"type:varchar(20);not null"`
	WeightEstimate     string `gorm:"type:varchar(50);not null"`
	RecyclabilityScore int    `gorm:"not null"`
	DisposalMethod     string `gorm:"type:text;not null"`
	PointsEarned       int    `gorm:"not null"`
	CreatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (WasteRecognitionModel) TableName() string {
	return "waste_recognitions"
}

// EmissionsCalculationModel mirrors the 'emissions_calculations' table.
type EmissionsCalculationModel struct {
	ID              int64  `gorm:"primaryKey"`
	UserID          int64  `gorm:"not null;index"`
	VehicleMake     string `gorm:"type:varchar(100);not null"`
	VehicleModel    string `gorm:"type:varchar(100);not null"`
	VehicleYear     int    `gorm:"not null"`
	FuelType        string `gorm:"type:varchar(20);not null"`
	Distance        int    `gorm:"not null"`
	EmissionsAmount string `gorm:"type:varchar(50);not null"`
	PointsEarned    int    `gorm:"not null"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmissionsCalculationModel) TableName() string {
	return "emissions_calculations"
}
