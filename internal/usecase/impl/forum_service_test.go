package impl

import (
	"context"
	"testing"

	"ecovis/internal/domain/entity"
	domainerrors "ecovis/internal/domain/errors"
	"ecovis/internal/domain/repository"
	"ecovis/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustCreatePost(t *testing.T, srv *services, userID int64, title string) *entity.ForumPost {
	t.Helper()

	post, err := srv.forum.CreatePost(context.Background(), &usecase.CreateForumPostInput{
		UserID: userID, Title: title, Content: "Body", Category: "recycling",
	})
	require.NoError(t, err)

	return post
}

func TestForumService_Posts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	srv := newMemoryServices(t)
	alice := mustRegister(t, srv, "alice")

	first := mustCreatePost(t, srv, alice.ID, "First")
	mustCreatePost(t, srv, alice.ID, "Second")
	third := mustCreatePost(t, srv, alice.ID, "Third")

	assert.Equal(t, 5, first.PointsEarned)
	assert.Equal(t, 15, mustScore(t, srv, alice.ID))

	posts, err := srv.forum.ListPosts(ctx, repository.Page{Limit: 2})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, third.ID, posts[0].ID)

	posts, err = srv.forum.ListPosts(ctx, repository.Page{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, first.ID, posts[0].ID)

	got, err := srv.forum.GetPost(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "First", got.Title)

	_, err = srv.forum.GetPost(ctx, 999)
	require.ErrorIs(t, err, domainerrors.ErrPostNotFound)

	_, err = srv.forum.CreatePost(ctx, &usecase.CreateForumPostInput{
		UserID: 999, Title: "Ghost", Content: "Boo", Category: "general",
	})
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestForumService_Likes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	srv := newMemoryServices(t)
	alice := mustRegister(t, srv, "alice")
	post := mustCreatePost(t, srv, alice.ID, "Likeable")

	require.NoError(t, srv.forum.LikePost(ctx, post.ID))
	require.NoError(t, srv.forum.LikePost(ctx, post.ID))
	require.NoError(t, srv.forum.UnlikePost(ctx, post.ID))
	require.NoError(t, srv.forum.UnlikePost(ctx, post.ID))
	require.NoError(t, srv.forum.UnlikePost(ctx, post.ID))

	got, err := srv.forum.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Likes)

	require.ErrorIs(t, srv.forum.LikePost(ctx, 999), domainerrors.ErrPostNotFound)
	require.ErrorIs(t, srv.forum.UnlikePost(ctx, 999), domainerrors.ErrPostNotFound)
}

func TestForumService_Comments(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	srv := newMemoryServices(t)
	alice := mustRegister(t, srv, "alice")
	bob := mustRegister(t, srv, "bob")
	post := mustCreatePost(t, srv, alice.ID, "Discuss")

	for _, content := range []string{"one", "two"} {
		comment, err := srv.forum.CreateComment(ctx, &usecase.CreateForumCommentInput{
			PostID: post.ID, UserID: bob.ID, Content: content,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, comment.PointsEarned)
	}
	assert.Equal(t, 4, mustScore(t, srv, bob.ID))

	got, err := srv.forum.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CommentCount)

	comments, err := srv.forum.ListComments(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "two", comments[0].Content)

	tests := []struct {
		name    string
		input   *usecase.CreateForumCommentInput
		wantErr error
	}{
		{name: "missing post", input: &usecase.CreateForumCommentInput{PostID: 999, UserID: bob.ID, Content: "x"}, wantErr: domainerrors.ErrPostNotFound},
		{name: "missing user", input: &usecase.CreateForumCommentInput{PostID: post.ID, UserID: 999, Content: "x"}, wantErr: domainerrors.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.forum.CreateComment(ctx, tt.input)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	got, err = srv.forum.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CommentCount, "failed comments must not move the counter")
	assert.Equal(t, 4, mustScore(t, srv, bob.ID))

	_, err = srv.forum.ListComments(ctx, 999)
	require.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestForumService_ListPostsStoreFailure(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	store.On("ListForumPosts", mock.Anything, repository.Page{Limit: 10}).Return(nil, errors.New("timeout"))
	srv := newTestServices(t, store)

	_, err := srv.forum.ListPosts(context.Background(), repository.Page{Limit: 10})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
	store.AssertExpectations(t)
}
