package usecase

import (
	"context"

	"ecovis/internal/domain/entity"
	"ecovis/internal/domain/repository"
)

// CreateForumPostInput is the insert shape of a forum post.
type CreateForumPostInput struct {
	UserID   int64  `json:"userId" validate:"required,min=1"`
	Title    string `json:"title" validate:"required,min=1,max=200"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"required,oneof=recycling climate_change sustainability events questions general"`
}

// CreateForumCommentInput is the insert shape of a comment. PostID comes from the path.
type CreateForumCommentInput struct {
	PostID  int64  `json:"-"`
	UserID  int64  `json:"userId" validate:"required,min=1"`
	Content string `json:"content" validate:"required"`
}

// ForumUsecase defines the community forum.
type ForumUsecase interface {
	CreatePost(ctx context.Context, input *CreateForumPostInput) (*entity.ForumPost, error)
	ListPosts(ctx context.Context, page repository.Page) ([]*entity.ForumPost, error)
	GetPost(ctx context.Context, postID int64) (*entity.ForumPost, error)

	// LikePost and UnlikePost move the like counter by one; it never drops below zero.
	LikePost(ctx context.Context, postID int64) error
	UnlikePost(ctx context.Context, postID int64) error

	CreateComment(ctx context.Context, input *CreateForumCommentInput) (*entity.ForumComment, error)
	ListComments(ctx context.Context, postID int64) ([]*entity.ForumComment, error)
}
