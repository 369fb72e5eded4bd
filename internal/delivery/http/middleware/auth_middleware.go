package middleware

import (
	"strings"

	deliverycontext "bazaar/internal/delivery/context"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware resolves opaque bearer tokens into an authenticated identity.
type AuthMiddleware struct {
	accountUC usecase.AccountUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(accountUC usecase.AccountUsecase) *AuthMiddleware {
	return &AuthMiddleware{accountUC: accountUC}
}

// Authenticate validates the Authorization header and stores the resolved
// identity on the request context. Missing, malformed and unknown tokens all
// fail with the same 403 so callers cannot probe for valid keys.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return errors.WithStack(domainerrors.ErrAuthenticationRequired)
		}

		key := strings.TrimPrefix(authHeader, "Bearer ")
		if key == authHeader || key == "" {
			return errors.WithStack(domainerrors.ErrAuthenticationRequired)
		}

		identity, err := m.accountUC.Authenticate(c.Request().Context(), key)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// RequireShop rejects identities that are not shop accounts.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireShop(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := deliverycontext.GetIdentity(c)
		if !ok {
			return errors.WithStack(domainerrors.ErrAuthenticationRequired)
		}

		if !identity.IsShop() {
			return errors.WithStack(domainerrors.ErrShopOnly)
		}

		return next(c)
	}
}
