package impl

import (
	"context"
	"log/slog"

	deliverycontext "ecovis/internal/delivery/context"
	"ecovis/internal/domain/entity"
	"ecovis/internal/domain/repository"
	"ecovis/internal/usecase"

	"go.uber.org/fx"
)

type forumService struct {
	forumRepo repository.ForumRepository
	logger    *slog.Logger
}

// ForumServiceParams holds dependencies for ForumService, injected by Fx.
type ForumServiceParams struct {
	fx.In

	ForumRepo repository.ForumRepository
	Logger    *slog.Logger
}

// NewForumService creates a new forum service instance
func NewForumService(params ForumServiceParams) usecase.ForumUsecase {
	return &forumService{
		forumRepo: params.ForumRepo,
		logger:    params.Logger,
	}
}

func (srv *forumService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *forumService) CreatePost(ctx context.Context, input *usecase.CreateForumPostInput) (*entity.ForumPost, error) {
	post := &entity.ForumPost{
		UserID:   input.UserID,
		Title:    input.Title,
		Content:  input.Content,
		Category: entity.ForumCategory(input.Category),
	}

	if err := srv.forumRepo.CreateForumPost(ctx, post); err != nil {
		srv.log(ctx).Warn("Failed to create forum post", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return nil, translateStoreError(err, "failed to create forum post")
	}

	return post, nil
}

func (srv *forumService) ListPosts(ctx context.Context, page repository.Page) ([]*entity.ForumPost, error) {
	posts, err := srv.forumRepo.ListForumPosts(ctx, page)
	if err != nil {
		return nil, translateStoreError(err, "failed to list forum posts")
	}

	return posts, nil
}

func (srv *forumService) GetPost(ctx context.Context, postID int64) (*entity.ForumPost, error) {
	post, err := srv.forumRepo.FindForumPostByID(ctx, postID)
	if err != nil {
		return nil, translateStoreError(err, "failed to get forum post")
	}

	return post, nil
}

func (srv *forumService) LikePost(ctx context.Context, postID int64) error {
	return srv.updateLikes(ctx, postID, true)
}

func (srv *forumService) UnlikePost(ctx context.Context, postID int64) error {
	return srv.updateLikes(ctx, postID, false)
}

func (srv *forumService) updateLikes(ctx context.Context, postID int64, increment bool) error {
	if err := srv.forumRepo.UpdateForumPostLikes(ctx, postID, increment); err != nil {
		return translateStoreError(err, "failed to update forum post likes")
	}

	return nil
}

func (srv *forumService) CreateComment(ctx context.Context, input *usecase.CreateForumCommentInput) (*entity.ForumComment, error) {
	comment := &entity.ForumComment{
		PostID:  input.PostID,
		UserID:  input.UserID,
		Content: input.Content,
	}

	if err := srv.forumRepo.CreateForumComment(ctx, comment); err != nil {
		srv.log(ctx).Warn("Failed to create forum comment",
			slog.Int64("postID", input.PostID),
			slog.Int64("userID", input.UserID),
			slog.Any("error", err),
		)

		return nil, translateStoreError(err, "failed to create forum comment")
	}

	return comment, nil
}

func (srv *forumService) ListComments(ctx context.Context, postID int64) ([]*entity.ForumComment, error) {
	if _, err := srv.forumRepo.FindForumPostByID(ctx, postID); err != nil {
		return nil, translateStoreError(err, "failed to get forum post")
	}

	comments, err := srv.forumRepo.ListCommentsByPost(ctx, postID)
	if err != nil {
		return nil, translateStoreError(err, "failed to list forum comments")
	}

	return comments, nil
}
