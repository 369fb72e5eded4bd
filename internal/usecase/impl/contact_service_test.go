package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"
)

func TestContactService_Lifecycle(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	buyer := env.registerActive(t, "buyer@example.com", entity.UserTypeBuyer)

	_, err := env.contact.GetContact(ctx, buyer.ID)
	assert.ErrorIs(t, err, domainerrors.ErrContactNotFound)

	created, err := env.contact.CreateContact(ctx, buyer.ID, usecase.CreateContactInput{
		City:      "Saint Petersburg",
		Street:    "Nevsky Prospekt",
		House:     "28",
		Apartment: "14",
		Phone:     "+7 900 000-00-00",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := env.contact.GetContact(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Saint Petersburg", got.City)
	assert.Equal(t, "14", got.Apartment)

	newStreet := "Liteyny Prospekt"
	patched, err := env.contact.PatchContact(ctx, buyer.ID, usecase.PatchContactInput{Street: &newStreet})
	require.NoError(t, err)
	assert.Equal(t, "Liteyny Prospekt", patched.Street)
	// Untouched fields keep their values.
	assert.Equal(t, "Saint Petersburg", patched.City)
	assert.Equal(t, "+7 900 000-00-00", patched.Phone)

	require.NoError(t, env.contact.DeleteContact(ctx, buyer.ID))

	_, err = env.contact.GetContact(ctx, buyer.ID)
	assert.ErrorIs(t, err, domainerrors.ErrContactNotFound)
}

func TestContactService_CreateValidation(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	buyer := env.registerActive(t, "buyer@example.com", entity.UserTypeBuyer)

	_, err := env.contact.CreateContact(ctx, buyer.ID, usecase.CreateContactInput{
		City:   "Moscow",
		Street: "Arbat",
		// house and phone missing
	})
	assert.ErrorIs(t, err, domainerrors.ErrMissingArguments)
}

func TestContactService_PatchAndDeleteWithoutContact(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	buyer := env.registerActive(t, "buyer@example.com", entity.UserTypeBuyer)

	city := "Moscow"
	_, err := env.contact.PatchContact(ctx, buyer.ID, usecase.PatchContactInput{City: &city})
	assert.ErrorIs(t, err, domainerrors.ErrContactNotFound)

	err = env.contact.DeleteContact(ctx, buyer.ID)
	assert.ErrorIs(t, err, domainerrors.ErrContactNotFound)
}

func TestContactService_SecondContactRejected(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	buyer := env.registerActive(t, "buyer@example.com", entity.UserTypeBuyer)

	input := usecase.CreateContactInput{
		City: "Moscow", Street: "Arbat", House: "1", Phone: "+7 911 111-11-11",
	}
	_, err := env.contact.CreateContact(ctx, buyer.ID, input)
	require.NoError(t, err)

	_, err = env.contact.CreateContact(ctx, buyer.ID, input)
	require.Error(t, err)
}
