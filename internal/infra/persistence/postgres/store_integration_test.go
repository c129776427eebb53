//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"ecovis/internal/domain/repository"
	"ecovis/internal/domain/repository/repositorytest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB starts a PostgreSQL container, applies the migrations and returns a connected gorm handle.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:alpine",
		tcpostgres.WithDatabase("ecovis"),
		tcpostgres.WithUsername("ecovis"),
		tcpostgres.WithPassword("ecovis"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	applied, err := Migrate(ctx, sqlDB)
	require.NoError(t, err)
	require.Equal(t, 2, applied)

	return db
}

func truncate(t *testing.T, db *gorm.DB) {
	t.Helper()

	err := db.Exec(`TRUNCATE forum_comments, forum_posts, emissions_calculations,
		waste_recognitions, user_activities, users RESTART IDENTITY CASCADE`).Error
	require.NoError(t, err)
}

func TestStore_Integration(t *testing.T) {
	db := setupTestDB(t)

	repositorytest.Run(t, func(t *testing.T) repository.Store {
		truncate(t, db)
		return NewStore(db)
	})

	t.Run("seeded products", func(t *testing.T) {
		store := NewStore(db)
		ctx := context.Background()

		products, err := store.ListProducts(ctx, repository.Page{Limit: 10})
		require.NoError(t, err)
		require.Len(t, products, 6)
		assert.Equal(t, "Beeswax Food Wraps (Set of 3)", products[0].Name)

		product, err := store.FindProductByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Reusable Water Bottle", product.Name)
		assert.Equal(t, "$24.99", product.Price)
		assert.True(t, product.InStock)

		page, err := store.ListProducts(ctx, repository.Page{Limit: 4, Offset: 4})
		require.NoError(t, err)
		assert.Len(t, page, 2)
	})

	t.Run("migrations are idempotent", func(t *testing.T) {
		sqlDB, err := db.DB()
		require.NoError(t, err)

		applied, err := Migrate(context.Background(), sqlDB)
		require.NoError(t, err)
		assert.Zero(t, applied)
	})
}
