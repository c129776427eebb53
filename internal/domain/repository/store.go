// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"ecovis/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors returned by every storage backend.
var (
	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when a username or email is already registered.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrForumPostNotFound is returned when a referenced forum post does not exist.
	ErrForumPostNotFound = errors.New("forum post not found")
	// ErrProductNotFound is returned when a product does not exist.
	ErrProductNotFound = errors.New("product not found")
)

// Page bounds a list query. Offset and Limit apply to the already sorted collection.
type Page struct {
	Limit  int
	Offset int
}

// Store is the full capability set a storage backend provides.
// The memory and postgres backends both implement it, and callers never
// depend on which one was selected at startup.
type Store interface {
	UserRepository
	ActivityRepository
	WasteRecognitionRepository
	EmissionsRepository
	ForumRepository
	ProductRepository
}

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindUserByID retrieves a single user by their ID.
	FindUserByID(ctx context.Context, id int64) (*entity.User, error)

	// FindUserByUsername retrieves a user by username, ignoring case.
	FindUserByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindUserByEmail retrieves a user by email, ignoring case.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// CreateUser persists a new user with an eco score of 0.
	CreateUser(ctx context.Context, user *entity.User) error

	// AddEcoScore atomically adds points to the user's eco score.
	AddEcoScore(ctx context.Context, userID int64, points int) error
}

// ActivityRepository stores the append-only audit trail of award events.
type ActivityRepository interface {
	// CreateActivity appends one activity record. It does not touch the eco score.
	CreateActivity(ctx context.Context, activity *entity.UserActivity) error

	// ListActivitiesByUser returns the newest activities of a user first.
	ListActivitiesByUser(ctx context.Context, userID int64, limit int) ([]*entity.UserActivity, error)
}

// WasteRecognitionRepository persists waste recognition results.
type WasteRecognitionRepository interface {
	// CreateWasteRecognition inserts the record, credits the owner and logs the activity as one unit.
	CreateWasteRecognition(ctx context.Context, recognition *entity.WasteRecognition) error

	// ListWasteRecognitionsByUser returns the user's recognitions, newest first.
	ListWasteRecognitionsByUser(ctx context.Context, userID int64) ([]*entity.WasteRecognition, error)
}

// EmissionsRepository persists emissions calculations.
type EmissionsRepository interface {
	// CreateEmissionsCalculation inserts the record, credits the owner and logs the activity as one unit.
	CreateEmissionsCalculation(ctx context.Context, calculation *entity.EmissionsCalculation) error

	// ListEmissionsCalculationsByUser returns the user's calculations, newest first.
	ListEmissionsCalculationsByUser(ctx context.Context, userID int64) ([]*entity.EmissionsCalculation, error)
}

// ForumRepository persists forum posts and comments.
type ForumRepository interface {
	// CreateForumPost inserts the post, credits the author and logs the activity as one unit.
	CreateForumPost(ctx context.Context, post *entity.ForumPost) error

	// ListForumPosts returns one page of posts, newest first.
	ListForumPosts(ctx context.Context, page Page) ([]*entity.ForumPost, error)

	// FindForumPostByID retrieves a single post.
	FindForumPostByID(ctx context.Context, id int64) (*entity.ForumPost, error)

	// UpdateForumPostLikes adds or removes one like. Likes never drop below zero.
	UpdateForumPostLikes(ctx context.Context, postID int64, increment bool) error

	// CreateForumComment inserts the comment, bumps the post's comment count,
	// credits the author and logs the activity as one unit.
	CreateForumComment(ctx context.Context, comment *entity.ForumComment) error

	// ListCommentsByPost returns the comments of a post, newest first.
	ListCommentsByPost(ctx context.Context, postID int64) ([]*entity.ForumComment, error)
}

// ProductRepository reads the marketplace catalog.
type ProductRepository interface {
	// ListProducts returns one page of in-stock products, newest first.
	ListProducts(ctx context.Context, page Page) ([]*entity.Product, error)

	// FindProductByID retrieves a single product.
	FindProductByID(ctx context.Context, id int64) (*entity.Product, error)
}
