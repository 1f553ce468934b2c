package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/novafin/finance-system/internal/api/middleware"
	"github.com/novafin/finance-system/internal/core/domain"
)

// ctxSession extracts the session injected by the Auth middleware. Its
// presence proves the middleware ran; a handler reached without it is a
// routing mistake, rejected as unauthenticated rather than panicking.
func ctxSession(c echo.Context) (*domain.Session, error) {
	session, _ := c.Get(middleware.SessionKey).(*domain.Session)
	if session == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return session, nil
}
