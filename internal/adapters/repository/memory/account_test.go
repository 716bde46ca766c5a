package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formvalidator/internal/core/domain/account"
)

func TestNewRepository(t *testing.T) {
	repo := NewRepository()

	require.NotNil(t, repo)
	require.NotNil(t, repo.store)
}

func TestRepository_Save(t *testing.T) {
	tests := []struct {
		name      string
		account   *account.Account
		setupRepo func(*testing.T, *Repository)
		wantExist bool
	}{
		{
			name:      "successful_save",
			account:   &account.Account{ID: "id-1", Email: "c@example.com"},
			setupRepo: func(*testing.T, *Repository) {},
		},
		{
			name:    "same_email_different_case",
			account: &account.Account{ID: "id-2", Email: "C@Example.com"},
			setupRepo: func(t *testing.T, repo *Repository) {
				require.NoError(t, repo.Save(context.Background(), &account.Account{ID: "id-1", Email: "c@example.com"}))
			},
			wantExist: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewRepository()
			tt.setupRepo(t, repo)

			err := repo.Save(context.Background(), tt.account)

			if tt.wantExist {
				var existsErr *account.AlreadyExistsError
				require.ErrorAs(t, err, &existsErr)
				assert.Equal(t, tt.account.Email, existsErr.Email)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRepository_GetByEmail(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	saved := &account.Account{ID: "id-1", Email: "c@example.com"}
	require.NoError(t, repo.Save(ctx, saved))

	t.Run("found_case_insensitive", func(t *testing.T) {
		acc, err := repo.GetByEmail(ctx, " C@EXAMPLE.com")

		require.NoError(t, err)
		assert.Equal(t, saved, acc)
	})

	t.Run("not_found", func(t *testing.T) {
		acc, err := repo.GetByEmail(ctx, "nobody@example.com")

		assert.ErrorIs(t, err, account.ErrAccountNotFound)
		assert.Nil(t, acc)
	})

	t.Run("cancelled_context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		acc, err := repo.GetByEmail(cancelled, "c@example.com")

		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, acc)
	})
}

func TestRepository_Count(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, &account.Account{ID: "1", Email: "a@example.com"}))
	require.NoError(t, repo.Save(ctx, &account.Account{ID: "2", Email: "b@example.com"}))

	count, err := repo.Count(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
