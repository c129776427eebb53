// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"ecovis/config"
	deliverycontext "ecovis/internal/delivery/context"
	"ecovis/internal/domain/entity"
	domainerrors "ecovis/internal/domain/errors"
	"ecovis/internal/domain/repository"
	"ecovis/internal/domain/service"
	"ecovis/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo      repository.UserRepository
	activityRepo  repository.ActivityRepository
	hasher        service.PasswordHasher
	activityLimit int
	logger        *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	ActivityRepo repository.ActivityRepository
	Hasher       service.PasswordHasher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	activityLimit := 0
	if params.Config != nil && params.Config.Pagination != nil {
		activityLimit = params.Config.Pagination.ActivityLimit
	}

	return &userService{
		userRepo:      params.UserRepo,
		activityRepo:  params.ActivityRepo,
		hasher:        params.Hasher,
		activityLimit: activityLimit,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register checks both unique keys before creating the account, so the caller learns which one clashed.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	if _, err := srv.userRepo.FindUserByUsername(ctx, input.Username); err == nil {
		return nil, domainerrors.ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, translateStoreError(err, "failed to check username")
	}

	if _, err := srv.userRepo.FindUserByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, translateStoreError(err, "failed to check email")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to hash password")
	}

	user := &entity.User{
		Username: input.Username,
		Password: hashedPassword,
		Email:    input.Email,
		FullName: nonEmpty(input.FullName),
		Location: nonEmpty(input.Location),
	}

	if err := srv.userRepo.CreateUser(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to create user", slog.String("username", input.Username), slog.Any("error", err))

		return nil, translateStoreError(err, "failed to create user")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", user.ID))

	return user, nil
}

// Login answers every credential mismatch with the same error, whether the user exists or not.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.User, error) {
	if strings.TrimSpace(input.Username) == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingCredentials
	}

	user, err := srv.userRepo.FindUserByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, translateStoreError(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		srv.log(ctx).Warn("Password mismatch on login", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}

func (srv *userService) GetUser(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, translateStoreError(err, "failed to get user")
	}

	return user, nil
}

// ListActivities falls back to the configured activity limit when limit is not positive.
func (srv *userService) ListActivities(ctx context.Context, userID int64, limit int) ([]*entity.UserActivity, error) {
	if _, err := srv.userRepo.FindUserByID(ctx, userID); err != nil {
		return nil, translateStoreError(err, "failed to get user")
	}

	if limit <= 0 {
		limit = srv.activityLimit
	}

	activities, err := srv.activityRepo.ListActivitiesByUser(ctx, userID, limit)
	if err != nil {
		return nil, translateStoreError(err, "failed to list activities")
	}

	return activities, nil
}

// nonEmpty drops blank optional strings so they are stored as NULL.
func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}

	return s
}
