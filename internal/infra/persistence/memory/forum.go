package memory

import (
	"context"
	"time"

	"ecovis/internal/domain/entity"
	"ecovis/internal/domain/repository"
	"ecovis/internal/domain/scoring"
)

// CreateForumPost stores the post and awards its author.
func (s *Store) CreateForumPost(_ context.Context, post *entity.ForumPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[post.UserID]
	if !ok {
		return repository.ErrUserNotFound
	}

	award := scoring.ForForumPost(post.Title)
	at := s.now()

	s.postSeq++
	post.ID = s.postSeq
	post.Likes = 0
	post.CommentCount = 0
	post.PointsEarned = award.Points
	post.CreatedAt = at

	clone := *post
	s.posts[post.ID] = &clone
	s.award(user, award, at)

	return nil
}

// ListForumPosts returns one page of posts, newest first.
func (s *Store) ListForumPosts(_ context.Context, page repository.Page) ([]*entity.ForumPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := collect(s.posts, nil,
		func(p *entity.ForumPost) (time.Time, int64) { return p.CreatedAt, p.ID },
	)

	return paginate(posts, page), nil
}

// FindForumPostByID returns a copy of the post or ErrForumPostNotFound.
func (s *Store) FindForumPostByID(_ context.Context, id int64) (*entity.ForumPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, repository.ErrForumPostNotFound
	}
	clone := *post

	return &clone, nil
}

// UpdateForumPostLikes clamps at zero when removing a like from an unliked post.
func (s *Store) UpdateForumPostLikes(_ context.Context, postID int64, increment bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		return repository.ErrForumPostNotFound
	}

	if increment {
		post.Likes++
	} else if post.Likes > 0 {
		post.Likes--
	}

	return nil
}

// CreateForumComment stores the comment, bumps the post's comment count and awards the commenter.
func (s *Store) CreateForumComment(_ context.Context, comment *entity.ForumComment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[comment.PostID]
	if !ok {
		return repository.ErrForumPostNotFound
	}
	user, ok := s.users[comment.UserID]
	if !ok {
		return repository.ErrUserNotFound
	}

	award := scoring.ForForumComment()
	at := s.now()

	s.commentSeq++
	comment.ID = s.commentSeq
	comment.PointsEarned = award.Points
	comment.CreatedAt = at

	clone := *comment
	s.comments[comment.ID] = &clone
	post.CommentCount++
	s.award(user, award, at)

	return nil
}

// ListCommentsByPost returns the post's comments, newest first.
func (s *Store) ListCommentsByPost(_ context.Context, postID int64) ([]*entity.ForumComment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return collect(s.comments,
		func(c *entity.ForumComment) bool { return c.PostID == postID },
		func(c *entity.ForumComment) (time.Time, int64) { return c.CreatedAt, c.ID },
	), nil
}
