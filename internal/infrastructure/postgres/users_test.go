package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xausdorf/vietqr-receive/internal/domain/repository"
	"github.com/Xausdorf/vietqr-receive/internal/infrastructure/postgres"
)

func TestUserRepo_FindByID(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, dbURL)
	require.NoError(t, err)
	defer pool.Close()

	userID := uuid.New()
	_, err = pool.Exec(ctx,
		`INSERT INTO users (id, name, account_number) VALUES ($1, $2, $3)`,
		userID, "Nguyễn Văn An", "0011001234567",
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, userID)
	})

	repo := postgres.NewUserRepo(pool)

	t.Run("existing", func(t *testing.T) {
		u, err := repo.FindByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, userID, u.ID())
		assert.Equal(t, "Nguyễn Văn An", u.Name())
		assert.Equal(t, "0011001234567", u.AccountNum())
	})

	t.Run("missing", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
