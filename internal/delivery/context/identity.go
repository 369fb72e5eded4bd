package context

import (
	"github.com/labstack/echo/v4"

	"bazaar/internal/domain/entity"
)

// GetIdentity extracts the authenticated identity from echo.Context.
// The second return value reports whether an identity was set.
func GetIdentity(c echo.Context) (entity.Identity, bool) {
	val := c.Get(string(KeyIdentity))
	identity, ok := val.(entity.Identity)

	return identity, ok
}

// SetIdentity stores the authenticated identity in echo.Context.
func SetIdentity(c echo.Context, identity entity.Identity) {
	c.Set(string(KeyIdentity), identity)
}
