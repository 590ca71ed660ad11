package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mkn-console/internal/permission"
	"mkn-console/internal/repository"
)

func insertConsoleUser(t *testing.T, testDB *TestDB, name, role, token, grants string) string {
	t.Helper()
	id := uuid.New().String()
	_, err := testDB.Pool.Exec(context.Background(), `
		INSERT INTO console_users (id, name, token, role, grants)
		VALUES ($1, $2, $3, $4, $5)`,
		id, name, token, role, grants)
	require.NoError(t, err)
	return id
}

func TestPostgresSessionRepository_GetByToken(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresSessionRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("resolves a known token", func(t *testing.T) {
		testDB.TruncateTables(t, "console_users")

		userID := insertConsoleUser(t, testDB, "Ayşe Editör", "editor", "tok-editor",
			`{"social.delete": true, "blog.delete": false}`)

		session, err := repo.GetByToken(ctx, "tok-editor")
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, userID, session.UserID)
		assert.Equal(t, "Ayşe Editör", session.Name)
		assert.Equal(t, permission.RoleEditor, session.Role)
		assert.Equal(t, map[string]bool{"social.delete": true, "blog.delete": false}, session.Grants)
	})

	t.Run("unknown token yields nil session", func(t *testing.T) {
		testDB.TruncateTables(t, "console_users")

		session, err := repo.GetByToken(ctx, "tok-bilinmeyen")
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("empty grants column becomes empty map", func(t *testing.T) {
		testDB.TruncateTables(t, "console_users")

		insertConsoleUser(t, testDB, "Mehmet İzleyici", "viewer", "tok-viewer", `{}`)

		session, err := repo.GetByToken(ctx, "tok-viewer")
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.NotNil(t, session.Grants)
		assert.Empty(t, session.Grants)
	})

	t.Run("resolved session feeds the permission gate", func(t *testing.T) {
		testDB.TruncateTables(t, "console_users")

		insertConsoleUser(t, testDB, "Patron", "superadmin", "tok-root", `{}`)

		session, err := repo.Resolve(ctx, "tok-root")
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.True(t, permission.Can(session, permission.KeyUsersWrite))
	})
}
