package postgres

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(migrations, "migrations")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	for _, entry := range entries {
		body, err := fs.ReadFile(migrations, "migrations/"+entry.Name())
		require.NoError(t, err)

		assert.Contains(t, string(body), "-- +goose Up", entry.Name())
		assert.Contains(t, string(body), "-- +goose Down", entry.Name())
	}

	schema, err := fs.ReadFile(migrations, "migrations/00001_create_schema.sql")
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(schema), "lower(username)"))
	assert.True(t, strings.Contains(string(schema), "lower(email)"))
}
