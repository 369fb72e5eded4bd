package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
)

func TestTokenRepository_ConfirmTokenLifecycle(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "confirm@example.com", entity.UserTypeBuyer)

	token := &entity.ConfirmEmailToken{UserID: user.ID, Key: "aaaa1111"}
	require.NoError(t, repo.CreateConfirmToken(ctx, token))
	assert.NotZero(t, token.ID)

	// The key must be presented together with the matching email.
	found, err := repo.FindConfirmToken(ctx, "confirm@example.com", "aaaa1111")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.UserID)

	_, err = repo.FindConfirmToken(ctx, "other@example.com", "aaaa1111")
	assert.ErrorIs(t, err, repository.ErrConfirmTokenNotFound)

	_, err = repo.FindConfirmToken(ctx, "confirm@example.com", "wrong")
	assert.ErrorIs(t, err, repository.ErrConfirmTokenNotFound)

	// A second outstanding token is allowed until one is consumed.
	require.NoError(t, repo.CreateConfirmToken(ctx, &entity.ConfirmEmailToken{UserID: user.ID, Key: "bbbb2222"}))

	count, err := repo.CountConfirmTokensByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, repo.DeleteConfirmTokensByUserID(ctx, user.ID))

	count, err = repo.CountConfirmTokensByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTokenRepository_AccessTokenReusedAcrossLogins(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "login@example.com", entity.UserTypeBuyer)

	first, err := repo.GetOrCreateAccessToken(ctx, user.ID, "key-one")
	require.NoError(t, err)
	assert.Equal(t, "key-one", first.Key)

	// A later login proposes a fresh key but the stored one wins.
	second, err := repo.GetOrCreateAccessToken(ctx, user.ID, "key-two")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "key-one", second.Key)

	resolved, err := repo.FindAccessTokenByKey(ctx, "key-one")
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.UserID)

	_, err = repo.FindAccessTokenByKey(ctx, "key-two")
	assert.ErrorIs(t, err, repository.ErrAccessTokenNotFound)
}
