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

func TestAccountService_RegisterCreatesInactiveAndMailsToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	out, err := env.account.Register(ctx, usecase.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "correct-horse-battery",
		Company:   "Analytical Engines",
		Position:  "Engineer",
		Type:      entity.UserTypeBuyer,
	})
	require.NoError(t, err)
	assert.False(t, out.User.IsActive)

	mails := env.mailer.sentMails()
	require.Len(t, mails, 1)
	assert.Equal(t, []string{"ada@example.com"}, mails[0].To)
	assert.Contains(t, mails[0].Subject, "ada@example.com")
	assert.NotEmpty(t, mails[0].Body)

	// The account cannot log in until the token is presented.
	_, err = env.account.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "correct-horse-battery"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_RegisterWithoutTypeDefaultsToBuyer(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	out, err := env.account.Register(ctx, usecase.RegisterInput{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Password:  "correct-horse-battery",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.UserTypeBuyer, out.User.Type)
}

func TestAccountService_RegisterValidation(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.RegisterInput
		want  error
	}{
		{
			name: "missing last name",
			input: usecase.RegisterInput{
				FirstName: "Ada", Email: "a@example.com", Password: "correct-horse-battery", Type: entity.UserTypeBuyer,
			},
			want: domainerrors.ErrMissingArguments,
		},
		{
			name: "weak password",
			input: usecase.RegisterInput{
				FirstName: "Ada", LastName: "Lovelace", Email: "a@example.com", Password: "12345678", Type: entity.UserTypeBuyer,
			},
			want: domainerrors.ErrPasswordStrength,
		},
		{
			name: "unknown account type",
			input: usecase.RegisterInput{
				FirstName: "Ada", LastName: "Lovelace", Email: "a@example.com", Password: "correct-horse-battery", Type: entity.UserType("admin"),
			},
			want: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.account.Register(ctx, tt.input)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			var wantErr domainerrors.AppError
			require.ErrorAs(t, tt.want, &wantErr)
			assert.Equal(t, wantErr.ErrorCode(), appErr.ErrorCode())
		})
	}

	// No mail goes out and nothing is stored for a rejected registration.
	assert.Empty(t, env.mailer.sentMails())
}

func TestAccountService_RegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	env.registerActive(t, "dup@example.com", entity.UserTypeBuyer)

	_, err := env.account.Register(ctx, usecase.RegisterInput{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "dup@example.com",
		Password:  "correct-horse-battery",
		Type:      entity.UserTypeBuyer,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUserAlreadyExists.ErrorCode(), appErr.ErrorCode())
}

func TestAccountService_ConfirmWrongPairLeavesInactive(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.account.Register(ctx, usecase.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "correct-horse-battery",
		Type:      entity.UserTypeBuyer,
	})
	require.NoError(t, err)

	err = env.account.Confirm(ctx, usecase.ConfirmInput{Email: "ada@example.com", Token: "bogus"})
	assert.ErrorIs(t, err, domainerrors.ErrConfirmTokenInvalid)

	_, err = env.account.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "correct-horse-battery"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_ConfirmTokenCannotBeReplayed(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	env.registerActive(t, "ada@example.com", entity.UserTypeBuyer)

	mails := env.mailer.sentMails()
	token := mails[len(mails)-1].Body

	// The token was consumed by the successful confirmation.
	err := env.account.Confirm(ctx, usecase.ConfirmInput{Email: "ada@example.com", Token: token})
	assert.ErrorIs(t, err, domainerrors.ErrConfirmTokenInvalid)
}

func TestAccountService_LoginReusesToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	env.registerActive(t, "ada@example.com", entity.UserTypeBuyer)

	first := env.loginToken(t, "ada@example.com")
	second := env.loginToken(t, "ada@example.com")
	assert.Equal(t, first, second)
	assert.Len(t, first, 40, "opaque keys are 20 random bytes hex encoded")
}

func TestAccountService_LoginWrongPassword(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	env.registerActive(t, "ada@example.com", entity.UserTypeBuyer)

	_, err := env.account.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "wrong-password-here"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = env.account.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "correct-horse-battery"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Authenticate(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	user := env.registerActive(t, "shop@example.com", entity.UserTypeShop)
	token := env.loginToken(t, "shop@example.com")

	identity, err := env.account.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, entity.UserTypeShop, identity.Type)
	assert.True(t, identity.IsShop())

	_, err = env.account.Authenticate(ctx, "deadbeef")
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)

	_, err = env.account.Authenticate(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
}
