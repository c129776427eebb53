package entity

import "time"

// WasteType classifies a recognised waste item.
type WasteType string

const (
	WasteTypePlastic    WasteType = "plastic"
	WasteTypePaper      WasteType = "paper"
	WasteTypeMetal      WasteType = "metal"
	WasteTypeOrganic    WasteType = "organic"
	WasteTypeElectronic WasteType = "electronic"
	WasteTypeHazardous  WasteType = "hazardous"
	WasteTypeGlass      WasteType = "glass"
	WasteTypeTextile    WasteType = "textile"
	WasteTypeMixed      WasteType = "mixed"
	WasteTypeOther      WasteType = "other"
)

// WasteRecognition is a logged recognition result.
type WasteRecognition struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"userId"`
	ImageURL           string    `json:"imageUrl"`
	WasteType          WasteType `json:"wasteType"`
	WeightEstimate     string    `json:"weightEstimate"`
	RecyclabilityScore int       `json:"recyclabilityScore"`
	DisposalMethod     string    `json:"disposalMethod"`
	PointsEarned       int       `json:"pointsEarned"`
	CreatedAt          time.Time `json:"createdAt"`
}

// RecognitionProfile is the static description attached to a waste type.
type RecognitionProfile struct {
	WasteType           WasteType `json:"wasteType"`
	WeightEstimate      string    `json:"weightEstimate"`
	RecyclabilityScore  int       `json:"recyclabilityScore"`
	DisposalMethod      string    `json:"disposalMethod"`
	EnvironmentalImpact string    `json:"environmentalImpact"`
}
