package postgres

import (
	"context"

	"ecovis/internal/domain/entity"
	"ecovis/internal/domain/repository"
	"ecovis/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// FindUserByID retrieves a single user by their unique ID.
func (s *Store) FindUserByID(ctx context.Context, id int64) (*entity.User, error) {
	return s.findUser(ctx, "id = ?", id)
}

// FindUserByUsername matches the lower(username) unique index.
func (s *Store) FindUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return s.findUser(ctx, "lower(username) = lower(?)", username)
}

// FindUserByEmail matches the lower(email) unique index.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.findUser(ctx, "lower(email) = lower(?)", email)
}

func (s *Store) findUser(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel
	if err := s.conn(ctx).Where(query, arg).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// CreateUser inserts the user and writes the generated id and timestamp back to it.
func (s *Store) CreateUser(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	userM.EcoScore = 0

	if err := s.conn(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUser
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.ID = userM.ID
	user.EcoScore = 0
	user.CreatedAt = userM.CreatedAt

	return nil
}

// AddEcoScore increments the score in a single UPDATE so concurrent awards never lose points.
func (s *Store) AddEcoScore(ctx context.Context, userID int64, points int) error {
	res := s.conn(ctx).Model(&model.UserModel{}).
		Where("id = ?", userID).
		UpdateColumn("eco_score", gorm.Expr("eco_score + ?", points))
	if res.Error != nil {
		return errors.Wrap(res.Error, "failed to update eco score")
	}
	if res.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	return &entity.User{
		ID:        data.ID,
		Username:  data.Username,
		Password:  data.Password,
		Email:     data.Email,
		FullName:  data.FullName,
		Location:  data.Location,
		EcoScore:  data.EcoScore,
		CreatedAt: data.CreatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:        data.ID,
		Username:  data.Username,
		Password:  data.Password,
		Email:     data.Email,
		FullName:  data.FullName,
		Location:  data.Location,
		EcoScore:  data.EcoScore,
		CreatedAt: data.CreatedAt,
	}
}
