package usecase

import (
	"context"

	"ecovis/internal/domain/entity"
)

// CreateWasteRecognitionInput is the insert shape of a recognition result computed by the client.
type CreateWasteRecognitionInput struct {
	UserID             int64  `json:"userId" validate:"required,min=1"`
	ImageURL           string `json:"imageUrl" validate:"required"`
	WasteType          string `json:"wasteType" validate:"required,oneof=plastic paper metal organic electronic hazardous glass textile mixed other"`
	WeightEstimate     string `json:"weightEstimate" validate:"required,max=50"`
	RecyclabilityScore *int   `json:"recyclabilityScore" validate:"required,min=0,max=100"`
	DisposalMethod     string `json:"disposalMethod" validate:"required"`
}

// AnalyzeWasteInput asks the server to classify an uploaded image.
// When UserID is set the result is also stored and awarded.
type AnalyzeWasteInput struct {
	FileName string `json:"fileName" validate:"required,max=255"`
	ImageURL string `json:"imageUrl" validate:"omitempty"`
	UserID   *int64 `json:"userId" validate:"omitempty,min=1"`
}

// AnalyzeWasteOutput pairs the recognition with the stored record, if any.
type AnalyzeWasteOutput struct {
	Result entity.RecognitionProfile `json:"result"`
	Record *entity.WasteRecognition  `json:"record,omitempty"`
}

// WasteUsecase defines waste recognition logging.
type WasteUsecase interface {
	// CreateRecognition stores a recognition and awards its owner.
	CreateRecognition(ctx context.Context, input *CreateWasteRecognitionInput) (*entity.WasteRecognition, error)

	// Analyze classifies the image deterministically from its file name.
	Analyze(ctx context.Context, input *AnalyzeWasteInput) (*AnalyzeWasteOutput, error)

	// ListByUser returns the user's recognitions, newest first.
	ListByUser(ctx context.Context, userID int64) ([]*entity.WasteRecognition, error)
}
