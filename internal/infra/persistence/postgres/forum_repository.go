package postgres

import (
	"context"

	"ecovis/internal/domain/entity"
	"ecovis/internal/domain/repository"
	"ecovis/internal/domain/scoring"
	"ecovis/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateForumPost stores the post together with its award in one transaction.
func (s *Store) CreateForumPost(ctx context.Context, post *entity.ForumPost) error {
	award := scoring.ForForumPost(post.Title)
	postM := &model.ForumPostModel{
		UserID:       post.UserID,
		Title:        post.Title,
		Content:      post.Content,
		Category:     string(post.Category),
		PointsEarned: award.Points,
	}

	err := s.transaction(ctx, func(tx *gorm.DB) error {
		if err := applyAward(tx, post.UserID, award); err != nil {
			return err
		}

		return errors.Wrap(tx.Create(postM).Error, "failed to create forum post")
	})
	if err != nil {
		return err
	}

	post.ID = postM.ID
	post.Likes = 0
	post.CommentCount = 0
	post.PointsEarned = postM.PointsEarned
	post.CreatedAt = postM.CreatedAt

	return nil
}

func (s *Store) ListForumPosts(ctx context.Context, page repository.Page) ([]*entity.ForumPost, error) {
	var rows []model.ForumPostModel
	if err := s.conn(ctx).Scopes(newestFirst, paged(page)).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list forum posts")
	}

	posts := make([]*entity.ForumPost, 0, len(rows))
	for i := range rows {
		posts = append(posts, toForumPostDomain(&rows[i]))
	}

	return posts, nil
}

func (s *Store) FindForumPostByID(ctx context.Context, id int64) (*entity.ForumPost, error) {
	var postM model.ForumPostModel
	if err := s.conn(ctx).Where("id = ?", id).First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrForumPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find forum post")
	}

	return toForumPostDomain(&postM), nil
}

// UpdateForumPostLikes changes likes by one in a single UPDATE, clamped at zero.
func (s *Store) UpdateForumPostLikes(ctx context.Context, postID int64, increment bool) error {
	delta := -1
	if increment {
		delta = 1
	}

	res := s.conn(ctx).Model(&model.ForumPostModel{}).
		Where("id = ?", postID).
		UpdateColumn("likes", gorm.Expr("GREATEST(likes + ?, 0)", delta))
	if res.Error != nil {
		return errors.Wrap(res.Error, "failed to update forum post likes")
	}
	if res.RowsAffected == 0 {
		return repository.ErrForumPostNotFound
	}

	return nil
}

// CreateForumComment bumps the post's comment count, credits the author and
// stores the comment in one transaction.
func (s *Store) CreateForumComment(ctx context.Context, comment *entity.ForumComment) error {
	award := scoring.ForForumComment()
	commentM := &model.ForumCommentModel{
		PostID:       comment.PostID,
		UserID:       comment.UserID,
		Content:      comment.Content,
		PointsEarned: award.Points,
	}

	err := s.transaction(ctx, func(tx *gorm.DB) error {
		res := tx.Model(&model.ForumPostModel{}).
			Where("id = ?", comment.PostID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + 1"))
		if res.Error != nil {
			return errors.Wrap(res.Error, "failed to update comment count")
		}
		if res.RowsAffected == 0 {
			return repository.ErrForumPostNotFound
		}

		if err := applyAward(tx, comment.UserID, award); err != nil {
			return err
		}

		return errors.Wrap(tx.Create(commentM).Error, "failed to create forum comment")
	})
	if err != nil {
		return err
	}

	comment.ID = commentM.ID
	comment.PointsEarned = commentM.PointsEarned
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

func (s *Store) ListCommentsByPost(ctx context.Context, postID int64) ([]*entity.ForumComment, error) {
	var rows []model.ForumCommentModel
	if err := s.conn(ctx).Where("post_id = ?", postID).Scopes(newestFirst).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list forum comments")
	}

	comments := make([]*entity.ForumComment, 0, len(rows))
	for i := range rows {
		comments = append(comments, &entity.ForumComment{
			ID:           rows[i].ID,
			PostID:       rows[i].PostID,
			UserID:       rows[i].UserID,
			Content:      rows[i].Content,
			PointsEarned: rows[i].PointsEarned,
			CreatedAt:    rows[i].CreatedAt,
		})
	}

	return comments, nil
}

func toForumPostDomain(data *model.ForumPostModel) *entity.ForumPost {
	return &entity.ForumPost{
		ID:           data.ID,
		UserID:       data.UserID,
		Title:        data.Title,
		Content:      data.Content,
		Category:     entity.ForumCategory(data.Category),
		Likes:        data.Likes,
		CommentCount: data.CommentCount,
		PointsEarned: data.PointsEarned,
		CreatedAt:    data.CreatedAt,
	}
}
