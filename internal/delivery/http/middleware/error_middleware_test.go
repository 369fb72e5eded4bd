package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestErrorMiddleware_AppError(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())

	c, rec := newErrorTestContext(t)
	m.HandleHTTPError(errors.WithStack(domainerrors.ErrOrderAlreadyPlaced), c)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"success":false`)
	assert.Contains(t, body, `"ORDER_ALREADY_PLACED"`)
}

func TestErrorMiddleware_WrappedAppErrorKeepsCode(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())

	wrapped := domainerrors.ErrFeedUnavailable.WrapMessage("fetch failed: connection refused")
	c, rec := newErrorTestContext(t)
	m.HandleHTTPError(wrapped, c)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), `"FEED_UNAVAILABLE"`)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())

	c, rec := newErrorTestContext(t)
	m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"HTTP_ERROR"`)
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())

	c, rec := newErrorTestContext(t)
	m.HandleHTTPError(errors.New("boom"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"INTERNAL_ERROR"`)
}
