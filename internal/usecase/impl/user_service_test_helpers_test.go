package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ecovis/config"
	"ecovis/internal/domain/entity"
	"ecovis/internal/domain/repository"
	"ecovis/internal/infra/auth"
	"ecovis/internal/infra/emissions"
	"ecovis/internal/infra/persistence/memory"
	"ecovis/internal/infra/recognition"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(activityLimit int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: bcrypt.MinCost,
		},
		Pagination: &config.PaginationConfig{
			DefaultLimit:  10,
			MaxLimit:      100,
			ActivityLimit: activityLimit,
		},
	}
}

// services bundles every usecase over one shared store.
type services struct {
	store     repository.Store
	users     *userService
	waste     *wasteService
	emissions *emissionsService
	forum     *forumService
	products  *productService
}

func newTestServices(t *testing.T, store repository.Store) *services {
	t.Helper()

	logger := newDiscardLogger()
	cfg := newTestConfig(5)

	return &services{
		store: store,
		users: NewUserService(UserServiceParams{
			UserRepo:     store,
			ActivityRepo: store,
			Hasher:       auth.NewBcryptHasher(cfg),
			Config:       cfg,
			Logger:       logger,
		}).(*userService),
		waste: NewWasteService(WasteServiceParams{
			WasteRepo:  store,
			UserRepo:   store,
			Classifier: recognition.NewRuleClassifier(),
			Logger:     logger,
		}).(*wasteService),
		emissions: NewEmissionsService(EmissionsServiceParams{
			EmissionsRepo: store,
			UserRepo:      store,
			Estimator:     emissions.NewCalculator(),
			Logger:        logger,
		}).(*emissionsService),
		forum: NewForumService(ForumServiceParams{
			ForumRepo: store,
			Logger:    logger,
		}).(*forumService),
		products: NewProductService(store).(*productService),
	}
}

func newMemoryServices(t *testing.T) *services {
	t.Helper()

	return newTestServices(t, memory.NewStore())
}

func mustRegister(t *testing.T, srv *services, username string) *entity.User {
	t.Helper()

	user, err := srv.users.Register(context.Background(), registerInput(username))
	require.NoError(t, err)

	return user
}

func mustScore(t *testing.T, srv *services, userID int64) int {
	t.Helper()

	user, err := srv.store.FindUserByID(context.Background(), userID)
	require.NoError(t, err)

	return user.EcoScore
}

// mockStore serves reads from memory and lets a test script failures for the methods it overrides.
type mockStore struct {
	*memory.Store
	mock.Mock
}

func newMockStore() *mockStore {
	return &mockStore{Store: memory.NewStore()}
}

func (m *mockStore) FindUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockStore) CreateWasteRecognition(ctx context.Context, recognition *entity.WasteRecognition) error {
	return m.Called(ctx, recognition).Error(0)
}

func (m *mockStore) ListForumPosts(ctx context.Context, page repository.Page) ([]*entity.ForumPost, error) {
	args := m.Called(ctx, page)
	if posts, ok := args.Get(0).([]*entity.ForumPost); ok {
		return posts, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockStore) FindProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}
