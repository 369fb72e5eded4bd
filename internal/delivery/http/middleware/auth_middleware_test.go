package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAccountUsecase resolves a single known key to a fixed identity.
type stubAccountUsecase struct {
	key      string
	identity entity.Identity
	calls    int
}

func (s *stubAccountUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAccountUsecase) Confirm(ctx context.Context, input usecase.ConfirmInput) error {
	return errors.New("not implemented")
}

func (s *stubAccountUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAccountUsecase) Authenticate(ctx context.Context, key string) (entity.Identity, error) {
	s.calls++
	if key != s.key {
		return entity.Identity{}, errors.WithStack(domainerrors.ErrAuthenticationRequired)
	}

	return s.identity, nil
}

func newAuthTestContext(t *testing.T, authHeader string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	uc := &stubAccountUsecase{}
	m := NewAuthMiddleware(uc)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	err := m.Authenticate(next)(newAuthTestContext(t, ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
	assert.False(t, nextCalled)
	assert.Zero(t, uc.calls, "the usecase must not be consulted without a token")
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	uc := &stubAccountUsecase{}
	m := NewAuthMiddleware(uc)

	err := m.Authenticate(func(c echo.Context) error { return nil })(newAuthTestContext(t, "Token abcdef"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
	assert.Zero(t, uc.calls)
}

func TestAuthMiddleware_Authenticate_UnknownKey(t *testing.T) {
	uc := &stubAccountUsecase{key: "valid-key"}
	m := NewAuthMiddleware(uc)

	err := m.Authenticate(func(c echo.Context) error { return nil })(newAuthTestContext(t, "Bearer wrong-key"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
	assert.Equal(t, 1, uc.calls)
}

func TestAuthMiddleware_Authenticate_ValidKeySetsIdentity(t *testing.T) {
	uc := &stubAccountUsecase{
		key:      "valid-key",
		identity: entity.Identity{UserID: 7, Type: entity.UserTypeShop, Email: "shop@example.com"},
	}
	m := NewAuthMiddleware(uc)

	c := newAuthTestContext(t, "Bearer valid-key")
	var seen entity.Identity
	next := func(c echo.Context) error {
		identity, ok := deliverycontext.GetIdentity(c)
		require.True(t, ok)
		seen = identity

		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, uint(7), seen.UserID)
	assert.Equal(t, entity.UserTypeShop, seen.Type)
}

func TestAuthMiddleware_RequireShop_BlocksBuyer(t *testing.T) {
	m := NewAuthMiddleware(&stubAccountUsecase{})

	c := newAuthTestContext(t, "")
	deliverycontext.SetIdentity(c, entity.Identity{UserID: 3, Type: entity.UserTypeBuyer})

	nextCalled := false
	err := m.RequireShop(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrShopOnly)
	assert.False(t, nextCalled, "the handler must never run for a buyer")
}

func TestAuthMiddleware_RequireShop_AllowsShop(t *testing.T) {
	m := NewAuthMiddleware(&stubAccountUsecase{})

	c := newAuthTestContext(t, "")
	deliverycontext.SetIdentity(c, entity.Identity{UserID: 4, Type: entity.UserTypeShop})

	nextCalled := false
	require.NoError(t, m.RequireShop(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c))
	assert.True(t, nextCalled)
}

func TestAuthMiddleware_RequireShop_NoIdentity(t *testing.T) {
	m := NewAuthMiddleware(&stubAccountUsecase{})

	err := m.RequireShop(func(c echo.Context) error { return nil })(newAuthTestContext(t, ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
}
