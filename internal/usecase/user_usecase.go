// Package usecase declares the application services exposed to the delivery layer,
// together with the input shapes clients may send.
package usecase

import (
	"context"

	"ecovis/internal/domain/entity"
)

// RegisterUserInput is the insert shape for a new account.
type RegisterUserInput struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Password string  `json:"password" validate:"required,min=6,max=100"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	FullName *string `json:"fullName" validate:"omitempty,max=100"`
	Location *string `json:"location" validate:"omitempty,max=100"`
}

// LoginInput carries the credentials of a sign-in attempt.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserUsecase defines account management and the eco-score profile.
type UserUsecase interface {
	// Register creates an account. Username and email must be unused, ignoring case.
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	// Login checks the credentials and returns the matching user.
	Login(ctx context.Context, input *LoginInput) (*entity.User, error)

	// GetUser returns a user by id.
	GetUser(ctx context.Context, userID int64) (*entity.User, error)

	// ListActivities returns the newest award events of a user.
	ListActivities(ctx context.Context, userID int64, limit int) ([]*entity.UserActivity, error)
}
