package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "pushgate/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func createTestErrorMiddleware() (*ErrorMiddleware, *echo.Echo) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewErrorMiddleware(logger), echo.New()
}

func newErrorContext(e *echo.Echo) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestErrorMiddleware_HandleHTTPError_AppError(t *testing.T) {
	m, e := createTestErrorMiddleware()
	c, rec := newErrorContext(e)

	m.HandleHTTPError(errors.Wrap(domainerrors.ErrTopicDispatchFailed, "failed to send topic notification"), c)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOPIC_DISPATCH_FAILED")
	assert.Contains(t, rec.Body.String(), "Failed to send topic notification")
}

func TestErrorMiddleware_HandleHTTPError_EchoHTTPError(t *testing.T) {
	m, e := createTestErrorMiddleware()
	c, rec := newErrorContext(e)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
	assert.Contains(t, rec.Body.String(), "Method Not Allowed")
}

func TestErrorMiddleware_HandleHTTPError_GenericError(t *testing.T) {
	m, e := createTestErrorMiddleware()
	c, rec := newErrorContext(e)

	m.HandleHTTPError(errors.New("broker unavailable"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.Contains(t, rec.Body.String(), "Internal server error")
	// Raw error text stays in the logs, never in the response envelope.
	assert.NotContains(t, rec.Body.String(), "broker unavailable")
}

func TestErrorMiddleware_HandleHTTPError_CommittedResponse(t *testing.T) {
	m, e := createTestErrorMiddleware()
	c, rec := newErrorContext(e)

	assert.NoError(t, c.JSON(http.StatusOK, map[string]string{"status": "ok"}))

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "INTERNAL_ERROR")
}