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

	"go.uber.org/fx"
)

type wasteService struct {
	wasteRepo  repository.WasteRecognitionRepository
	userRepo   repository.UserRepository
	classifier service.WasteClassifier
	logger     *slog.Logger
}

// WasteServiceParams holds dependencies for WasteService, injected by Fx.
type WasteServiceParams struct {
	fx.In

	WasteRepo  repository.WasteRecognitionRepository
	UserRepo   repository.UserRepository
	Classifier service.WasteClassifier
	Logger     *slog.Logger
}

// NewWasteService creates a new waste recognition service instance
func NewWasteService(params WasteServiceParams) usecase.WasteUsecase {
	return &wasteService{
		wasteRepo:  params.WasteRepo,
		userRepo:   params.UserRepo,
		classifier: params.Classifier,
		logger:     params.Logger,
	}
}

func (srv *wasteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRecognition rejects a missing recyclability score instead of storing zero.
func (srv *wasteService) CreateRecognition(ctx context.Context, input *usecase.CreateWasteRecognitionInput) (*entity.WasteRecognition, error) {
	if input.RecyclabilityScore == nil {
		return nil, domainerrors.NewValidationError("", []domainerrors.FieldError{{
			Field:   "recyclabilityScore",
			Rule:    "required",
			Message: "recyclabilityScore is required",
		}})
	}

	recognition := &entity.WasteRecognition{
		UserID:             input.UserID,
		ImageURL:           input.ImageURL,
		WasteType:          entity.WasteType(input.WasteType),
		WeightEstimate:     input.WeightEstimate,
		RecyclabilityScore: *input.RecyclabilityScore,
		DisposalMethod:     input.DisposalMethod,
	}

	if err := srv.wasteRepo.CreateWasteRecognition(ctx, recognition); err != nil {
		srv.log(ctx).Warn("Failed to store waste recognition", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return nil, translateStoreError(err, "failed to create waste recognition")
	}

	srv.log(ctx).Debug("Waste recognition stored",
		slog.Int64("userID", recognition.UserID),
		slog.String("wasteType", string(recognition.WasteType)),
		slog.Int("points", recognition.PointsEarned),
	)

	return recognition, nil
}

// Analyze stores the result only when the request names a user.
func (srv *wasteService) Analyze(ctx context.Context, input *usecase.AnalyzeWasteInput) (*usecase.AnalyzeWasteOutput, error) {
	profile := srv.classifier.Classify(input.FileName)
	output := &usecase.AnalyzeWasteOutput{Result: profile}

	if input.UserID == nil {
		return output, nil
	}

	imageURL := input.ImageURL
	if imageURL == "" {
		imageURL = input.FileName
	}

	score := profile.RecyclabilityScore
	record, err := srv.CreateRecognition(ctx, &usecase.CreateWasteRecognitionInput{
		UserID:             *input.UserID,
		ImageURL:           imageURL,
		WasteType:          string(profile.WasteType),
		WeightEstimate:     profile.WeightEstimate,
		RecyclabilityScore: &score,
		DisposalMethod:     profile.DisposalMethod,
	})
	if err != nil {
		return nil, err
	}
	output.Record = record

	return output, nil
}

func (srv *wasteService) ListByUser(ctx context.Context, userID int64) ([]*entity.WasteRecognition, error) {
	if _, err := srv.userRepo.FindUserByID(ctx, userID); err != nil {
		return nil, translateStoreError(err, "failed to get user")
	}

	recognitions, err := srv.wasteRepo.ListWasteRecognitionsByUser(ctx, userID)
	if err != nil {
		return nil, translateStoreError(err, "failed to list waste recognitions")
	}

	return recognitions, nil
}
