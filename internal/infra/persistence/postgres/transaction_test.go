package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
)

func TestTransactionManager_RollbackOnError(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	sentinel := errors.New("boom")
	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if createErr := factory.UserRepo().Create(ctx, &entity.User{
			Email:        "rollback@example.com",
			PasswordHash: "hash",
			Type:         entity.UserTypeBuyer,
		}); createErr != nil {
			return createErr
		}

		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	_, err = NewUserRepository(db).FindByEmail(ctx, "rollback@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTransactionManager_CommitOnSuccess(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.UserRepo().Create(ctx, &entity.User{
			Email:        "commit@example.com",
			PasswordHash: "hash",
			Type:         entity.UserTypeBuyer,
		})
	})
	require.NoError(t, err)

	found, err := NewUserRepository(db).FindByEmail(ctx, "commit@example.com")
	require.NoError(t, err)
	assert.Equal(t, "commit@example.com", found.Email)
}
