package memory

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"ecovis/config"
	"ecovis/internal/domain/entity"
	"ecovis/internal/domain/repository"
	"ecovis/internal/domain/repository/repositorytest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Contract(t *testing.T) {
	repositorytest.Run(t, func(t *testing.T) repository.Store {
		return NewStore()
	})
}

func TestNew_Seeded(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Seed = true

	store := New(Params{Config: cfg, Logger: slog.New(slog.DiscardHandler)})
	ctx := context.Background()

	products, err := store.ListProducts(ctx, repository.Page{})
	require.NoError(t, err)
	require.Len(t, products, len(seedProducts))
	// seeded in catalog order, so the last product is the newest
	assert.Equal(t, int64(6), products[0].ID)
	assert.Equal(t, "Beeswax Food Wraps (Set of 3)", products[0].Name)

	owner, err := store.FindUserByUsername(ctx, SeedUsername)
	require.NoError(t, err)
	assert.Empty(t, owner.Password)
	assert.Equal(t, 15, owner.EcoScore)

	posts, err := store.ListForumPosts(ctx, repository.Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, posts, len(seedPosts))
	assert.Equal(t, "How accurate is the CO₂ calculator?", posts[0].Title)
	for _, post := range posts {
		assert.Equal(t, owner.ID, post.UserID)
	}

	activities, err := store.ListActivitiesByUser(ctx, owner.ID, 0)
	require.NoError(t, err)
	assert.Len(t, activities, len(seedPosts))
}

func TestNew_Unseeded(t *testing.T) {
	store := New(Params{Config: &config.Config{}})

	products, err := store.ListProducts(context.Background(), repository.Page{})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestStore_SeedTwiceKeepsFirstOwner(t *testing.T) {
	store := NewStore()
	store.Seed(slog.New(slog.DiscardHandler))
	store.Seed(slog.New(slog.DiscardHandler))

	posts, err := store.ListForumPosts(context.Background(), repository.Page{})
	require.NoError(t, err)
	assert.Len(t, posts, len(seedPosts), "second seed skips posts when the owner already exists")
}

func TestStore_ListProductsHidesOutOfStock(t *testing.T) {
	store := NewStore()
	store.addProduct(entity.Product{Name: "in", InStock: true})
	store.addProduct(entity.Product{Name: "out", InStock: false})

	products, err := store.ListProducts(context.Background(), repository.Page{})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "in", products[0].Name)

	// still reachable by id
	out, err := store.FindProductByID(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, out.InStock)
}

func TestStore_ReturnsCopies(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	user := repositorytest.MustCreateUser(t, store, "copy")
	user.EcoScore = 999

	got, err := store.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.EcoScore)

	got.EcoScore = 500
	again, err := store.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, again.EcoScore)
}

func TestStore_NewestFirstUsesClock(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := []time.Time{base.Add(2 * time.Hour), base, base.Add(time.Hour)}
	store.now = func() time.Time {
		next := ticks[0]
		ticks = ticks[1:]
		return next
	}

	// the user consumes the first tick
	author := repositorytest.MustCreateUser(t, store, "clock")

	older := &entity.ForumPost{UserID: author.ID, Title: "older", Category: entity.ForumCategoryGeneral}
	require.NoError(t, store.CreateForumPost(ctx, older))
	newer := &entity.ForumPost{UserID: author.ID, Title: "newer", Category: entity.ForumCategoryGeneral}
	require.NoError(t, store.CreateForumPost(ctx, newer))

	posts, err := store.ListForumPosts(ctx, repository.Page{})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "newer", posts[0].Title)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name string
		page repository.Page
		want []int
	}{
		{name: "no limit", page: repository.Page{}, want: []int{1, 2, 3, 4, 5}},
		{name: "limit", page: repository.Page{Limit: 2}, want: []int{1, 2}},
		{name: "offset and limit", page: repository.Page{Limit: 2, Offset: 3}, want: []int{4, 5}},
		{name: "offset past end", page: repository.Page{Limit: 2, Offset: 9}, want: []int{}},
		{name: "negative offset", page: repository.Page{Limit: 1, Offset: -3}, want: []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paginate(items, tt.page))
		})
	}
}
