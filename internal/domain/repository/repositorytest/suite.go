// Package repositorytest holds the behavioural checks every repository.Store backend must pass.
package repositorytest

import (
	"context"
	"sync"
	"testing"

	"ecovis/internal/domain/entity"
	"ecovis/internal/domain/repository"
	"ecovis/internal/domain/scoring"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty store. It is called once per subtest.
type Factory func(t *testing.T) repository.Store

// Run executes the shared store checks against the backend built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	t.Run("users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("waste recognition award", func(t *testing.T) { testWasteAward(t, newStore(t)) })
	t.Run("emissions award", func(t *testing.T) { testEmissionsAward(t, newStore(t)) })
	t.Run("award for missing user", func(t *testing.T) { testAwardMissingUser(t, newStore(t)) })
	t.Run("forum posts", func(t *testing.T) { testForumPosts(t, newStore(t)) })
	t.Run("forum likes", func(t *testing.T) { testForumLikes(t, newStore(t)) })
	t.Run("forum comments", func(t *testing.T) { testForumComments(t, newStore(t)) })
	t.Run("activities", func(t *testing.T) { testActivities(t, newStore(t)) })
	t.Run("forum pagination coverage", func(t *testing.T) { testForumPaginationCoverage(t, newStore(t)) })
	t.Run("concurrent awards", func(t *testing.T) { testConcurrentAwards(t, newStore(t)) })
	t.Run("concurrent likes", func(t *testing.T) { testConcurrentLikes(t, newStore(t)) })
	t.Run("missing product", func(t *testing.T) { testMissingProduct(t, newStore(t)) })
}

// MustCreateUser registers a user with the given name and fails the test on error.
func MustCreateUser(t *testing.T, store repository.Store, username string) *entity.User {
	t.Helper()

	user := &entity.User{
		Username: username,
		Password: "hash",
		Email:    username + "@example.com",
	}
	require.NoError(t, store.CreateUser(context.Background(), user))
	require.NotZero(t, user.ID)

	return user
}

func testUsers(t *testing.T, store repository.Store) {
	ctx := context.Background()

	alice := MustCreateUser(t, store, "alice")
	assert.Equal(t, 0, alice.EcoScore)
	assert.False(t, alice.CreatedAt.IsZero())

	bob := MustCreateUser(t, store, "bob")
	assert.NotEqual(t, alice.ID, bob.ID)

	got, err := store.FindUserByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Nil(t, got.FullName)

	got, err = store.FindUserByUsername(ctx, "ALICE")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	got, err = store.FindUserByEmail(ctx, "Bob@Example.com")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, got.ID)

	_, err = store.FindUserByID(ctx, alice.ID+bob.ID+100)
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	_, err = store.FindUserByUsername(ctx, "carol")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	err = store.CreateUser(ctx, &entity.User{Username: "Alice", Password: "x", Email: "other@example.com"})
	assert.True(t, errors.Is(err, repository.ErrDuplicateUser), "username must be unique ignoring case")

	err = store.CreateUser(ctx, &entity.User{Username: "carol", Password: "x", Email: "ALICE@example.com"})
	assert.True(t, errors.Is(err, repository.ErrDuplicateUser), "email must be unique ignoring case")

	require.NoError(t, store.AddEcoScore(ctx, alice.ID, 7))
	got, err = store.FindUserByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.EcoScore)

	err = store.AddEcoScore(ctx, alice.ID+bob.ID+100, 7)
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func testWasteAward(t *testing.T, store repository.Store) {
	ctx := context.Background()
	user := MustCreateUser(t, store, "recycler")

	first := &entity.WasteRecognition{
		UserID:             user.ID,
		ImageURL:           "bottle.jpg",
		WasteType:          entity.WasteTypePlastic,
		WeightEstimate:     "~15g",
		RecyclabilityScore: 92,
		DisposalMethod:     "Blue bin",
	}
	require.NoError(t, store.CreateWasteRecognition(ctx, first))
	assert.NotZero(t, first.ID)
	assert.Equal(t, 15, first.PointsEarned)

	second := &entity.WasteRecognition{UserID: user.ID, ImageURL: "jar.jpg", WasteType: entity.WasteTypeGlass, WeightEstimate: "~200g", RecyclabilityScore: 99, DisposalMethod: "Glass bin"}
	require.NoError(t, store.CreateWasteRecognition(ctx, second))

	got, err := store.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, got.EcoScore)

	list, err := store.ListWasteRecognitionsByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")
	assert.Equal(t, first.ID, list[1].ID)
	assert.Equal(t, entity.WasteTypePlastic, list[1].WasteType)

	activities, err := store.ListActivitiesByUser(ctx, user.ID, 10)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, string(scoring.KindWasteRecognition), activities[0].ActivityType)
	assert.Equal(t, "Recognized glass waste", activities[0].Description)
	assert.Equal(t, 15, activities[0].PointsEarned)
	assert.Equal(t, "Recognized plastic waste", activities[1].Description)

	empty, err := store.ListWasteRecognitionsByUser(ctx, user.ID+1000)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func testEmissionsAward(t *testing.T, store repository.Store) {
	ctx := context.Background()
	user := MustCreateUser(t, store, "driver")

	calc := &entity.EmissionsCalculation{
		UserID:          user.ID,
		VehicleMake:     "Toyota",
		VehicleModel:    "Corolla",
		VehicleYear:     2020,
		FuelType:        string(entity.FuelTypePetrol),
		Distance:        100,
		EmissionsAmount: "12.0 kg CO₂",
	}
	require.NoError(t, store.CreateEmissionsCalculation(ctx, calc))
	assert.Equal(t, 10, calc.PointsEarned)

	got, err := store.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.EcoScore)

	list, err := store.ListEmissionsCalculationsByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "12.0 kg CO₂", list[0].EmissionsAmount)
	assert.Equal(t, 100, list[0].Distance)

	activities, err := store.ListActivitiesByUser(ctx, user.ID, 5)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "Calculated emissions for Toyota Corolla", activities[0].Description)
	assert.Equal(t, 10, activities[0].PointsEarned)
}

func testAwardMissingUser(t *testing.T, store repository.Store) {
	ctx := context.Background()
	user := MustCreateUser(t, store, "present")
	ghost := user.ID + 1000

	err := store.CreateWasteRecognition(ctx, &entity.WasteRecognition{UserID: ghost, ImageURL: "x.jpg", WasteType: entity.WasteTypePaper, WeightEstimate: "~25g", RecyclabilityScore: 98, DisposalMethod: "Green bin"})
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	err = store.CreateEmissionsCalculation(ctx, &entity.EmissionsCalculation{UserID: ghost, VehicleMake: "a", VehicleModel: "b", VehicleYear: 2000, FuelType: "diesel", Distance: 1, EmissionsAmount: "0.1 kg CO₂"})
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	err = store.CreateForumPost(ctx, &entity.ForumPost{UserID: ghost, Title: "t", Content: "c", Category: entity.ForumCategoryGeneral})
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	wastes, err := store.ListWasteRecognitionsByUser(ctx, ghost)
	require.NoError(t, err)
	assert.Empty(t, wastes)

	calcs, err := store.ListEmissionsCalculationsByUser(ctx, ghost)
	require.NoError(t, err)
	assert.Empty(t, calcs)

	posts, err := store.ListForumPosts(ctx, repository.Page{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, posts)

	activities, err := store.ListActivitiesByUser(ctx, ghost, 10)
	require.NoError(t, err)
	assert.Empty(t, activities)
}

func testForumPosts(t *testing.T, store repository.Store) {
	ctx := context.Background()
	author := MustCreateUser(t, store, "author")

	var ids []int64
	for _, title := range []string{"first", "second", "third"} {
		post := &entity.ForumPost{UserID: author.ID, Title: title, Content: "body", Category: entity.ForumCategoryGeneral}
		require.NoError(t, store.CreateForumPost(ctx, post))
		assert.Equal(t, 0, post.Likes)
		assert.Equal(t, 0, post.CommentCount)
		assert.Equal(t, 5, post.PointsEarned)
		ids = append(ids, post.ID)
	}

	got, err := store.FindUserByID(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, got.EcoScore)

	page, err := store.ListForumPosts(ctx, repository.Page{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, ids[2], page[0].ID)
	assert.Equal(t, ids[1], page[1].ID)

	page, err = store.ListForumPosts(ctx, repository.Page{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, ids[0], page[0].ID)

	page, err = store.ListForumPosts(ctx, repository.Page{Limit: 2, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, page)

	post, err := store.FindForumPostByID(ctx, ids[1])
	require.NoError(t, err)
	assert.Equal(t, "second", post.Title)
	assert.Equal(t, entity.ForumCategoryGeneral, post.Category)

	_, err = store.FindForumPostByID(ctx, ids[2]+100)
	assert.True(t, errors.Is(err, repository.ErrForumPostNotFound))

	activities, err := store.ListActivitiesByUser(ctx, author.ID, 1)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "Created forum post: third", activities[0].Description)
}

func testForumLikes(t *testing.T, store repository.Store) {
	ctx := context.Background()
	author := MustCreateUser(t, store, "liker")

	post := &entity.ForumPost{UserID: author.ID, Title: "likes", Content: "body", Category: entity.ForumCategoryEvents}
	require.NoError(t, store.CreateForumPost(ctx, post))

	require.NoError(t, store.UpdateForumPostLikes(ctx, post.ID, true))
	require.NoError(t, store.UpdateForumPostLikes(ctx, post.ID, true))
	require.NoError(t, store.UpdateForumPostLikes(ctx, post.ID, false))

	got, err := store.FindForumPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Likes)

	require.NoError(t, store.UpdateForumPostLikes(ctx, post.ID, false))
	require.NoError(t, store.UpdateForumPostLikes(ctx, post.ID, false))

	got, err = store.FindForumPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Likes, "likes never go negative")

	err = store.UpdateForumPostLikes(ctx, post.ID+100, true)
	assert.True(t, errors.Is(err, repository.ErrForumPostNotFound))

	// likes are not an award event
	user, err := store.FindUserByID(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, user.EcoScore)
}

func testForumComments(t *testing.T, store repository.Store) {
	ctx := context.Background()
	author := MustCreateUser(t, store, "poster")
	commenter := MustCreateUser(t, store, "commenter")

	post := &entity.ForumPost{UserID: author.ID, Title: "comments", Content: "body", Category: entity.ForumCategoryQuestions}
	require.NoError(t, store.CreateForumPost(ctx, post))
	quiet := &entity.ForumPost{UserID: author.ID, Title: "quiet", Content: "body", Category: entity.ForumCategoryQuestions}
	require.NoError(t, store.CreateForumPost(ctx, quiet))

	first := &entity.ForumComment{PostID: post.ID, UserID: commenter.ID, Content: "one"}
	require.NoError(t, store.CreateForumComment(ctx, first))
	assert.Equal(t, 2, first.PointsEarned)

	second := &entity.ForumComment{PostID: post.ID, UserID: commenter.ID, Content: "two"}
	require.NoError(t, store.CreateForumComment(ctx, second))

	got, err := store.FindForumPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CommentCount)

	comments, err := store.ListCommentsByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, got.CommentCount)
	assert.Equal(t, "two", comments[0].Content)
	assert.Equal(t, "one", comments[1].Content)

	user, err := store.FindUserByID(ctx, commenter.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, user.EcoScore)

	err = store.CreateForumComment(ctx, &entity.ForumComment{PostID: post.ID + 100, UserID: commenter.ID, Content: "lost"})
	assert.True(t, errors.Is(err, repository.ErrForumPostNotFound))

	err = store.CreateForumComment(ctx, &entity.ForumComment{PostID: post.ID, UserID: commenter.ID + author.ID + 100, Content: "ghost"})
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	// failed comments leave no trace
	got, err = store.FindForumPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CommentCount)

	user, err = store.FindUserByID(ctx, commenter.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, user.EcoScore)

	// comments only count on their own post
	other, err := store.FindForumPostByID(ctx, quiet.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, other.CommentCount)

	comments, err = store.ListCommentsByPost(ctx, quiet.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func testForumPaginationCoverage(t *testing.T, store repository.Store) {
	ctx := context.Background()
	author := MustCreateUser(t, store, "pager")

	const total = 7
	created := make([]int64, 0, total)
	for i := 0; i < total; i++ {
		post := &entity.ForumPost{UserID: author.ID, Title: "page", Content: "body", Category: entity.ForumCategoryGeneral}
		require.NoError(t, store.CreateForumPost(ctx, post))
		created = append(created, post.ID)
	}

	want := make([]int64, 0, total)
	for i := len(created) - 1; i >= 0; i-- {
		want = append(want, created[i])
	}

	var got []int64
	for _, tc := range []struct{ offset, size int }{{0, 5}, {5, 2}, {10, 0}} {
		page, err := store.ListForumPosts(ctx, repository.Page{Limit: 5, Offset: tc.offset})
		require.NoError(t, err)
		require.Len(t, page, tc.size, "offset %d", tc.offset)
		for _, post := range page {
			got = append(got, post.ID)
		}
	}

	assert.Equal(t, want, got, "pages cover every post once, newest first")
}

func testActivities(t *testing.T, store repository.Store) {
	ctx := context.Background()
	user := MustCreateUser(t, store, "active")

	for i := 0; i < 7; i++ {
		post := &entity.ForumPost{UserID: user.ID, Title: "post", Content: "body", Category: entity.ForumCategoryGeneral}
		require.NoError(t, store.CreateForumPost(ctx, post))
	}

	activities, err := store.ListActivitiesByUser(ctx, user.ID, 5)
	require.NoError(t, err)
	assert.Len(t, activities, 5)
	for i := 1; i < len(activities); i++ {
		assert.False(t, activities[i].CreatedAt.After(activities[i-1].CreatedAt), "newest first")
	}

	manual := &entity.UserActivity{UserID: user.ID, ActivityType: "manual", Description: "Joined a cleanup", PointsEarned: 0}
	require.NoError(t, store.CreateActivity(ctx, manual))
	assert.NotZero(t, manual.ID)

	activities, err = store.ListActivitiesByUser(ctx, user.ID, 0)
	require.NoError(t, err)
	assert.Len(t, activities, 8)
	assert.Equal(t, manual.ID, activities[0].ID)

	// a standalone activity leaves the score alone
	got, err := store.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 35, got.EcoScore)

	err = store.CreateActivity(ctx, &entity.UserActivity{UserID: user.ID + 1000, ActivityType: "manual", Description: "x"})
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func testConcurrentAwards(t *testing.T, store repository.Store) {
	ctx := context.Background()
	user := MustCreateUser(t, store, "busy")

	const workers = 20

	var wg sync.WaitGroup
	errs := make(chan error, workers*2)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.CreateWasteRecognition(ctx, &entity.WasteRecognition{
				UserID: user.ID, ImageURL: "c.jpg", WasteType: entity.WasteTypeMetal,
				WeightEstimate: "~35g", RecyclabilityScore: 95, DisposalMethod: "Metal bin",
			})
			errs <- store.CreateEmissionsCalculation(ctx, &entity.EmissionsCalculation{
				UserID: user.ID, VehicleMake: "VW", VehicleModel: "Golf", VehicleYear: 2018,
				FuelType: "diesel", Distance: 10, EmissionsAmount: "1.1 kg CO₂",
			})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	got, err := store.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, workers*(15+10), got.EcoScore)

	activities, err := store.ListActivitiesByUser(ctx, user.ID, 0)
	require.NoError(t, err)
	require.Len(t, activities, workers*2)

	sum := 0
	for _, a := range activities {
		sum += a.PointsEarned
	}
	assert.Equal(t, got.EcoScore, sum, "eco score equals the sum of awarded activity points")
}

func testConcurrentLikes(t *testing.T, store repository.Store) {
	ctx := context.Background()
	author := MustCreateUser(t, store, "popular")

	post := &entity.ForumPost{UserID: author.ID, Title: "hot", Content: "body", Category: entity.ForumCategoryEvents}
	require.NoError(t, store.CreateForumPost(ctx, post))

	race := func(n int, increment bool) {
		var wg sync.WaitGroup
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- store.UpdateForumPostLikes(ctx, post.ID, increment)
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}
	}

	const workers = 20

	race(workers, true)
	got, err := store.FindForumPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, workers, got.Likes, "no concurrent like is lost")

	race(workers+10, false)
	got, err = store.FindForumPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Likes, "concurrent unlikes stop at zero")
}

func testMissingProduct(t *testing.T, store repository.Store) {
	_, err := store.FindProductByID(context.Background(), 1_000_000)
	assert.True(t, errors.Is(err, repository.ErrProductNotFound))
}
