package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/novafin/finance-system/internal/core/ports"
)

// SessionKey is the echo context key holding the resolved *domain.Session.
const SessionKey = "session"

// Auth validates the bearer token and resolves the persisted session. The
// token subject must match the stored session's user id: a stale token from a
// logged-out or switched session is rejected. Handlers downstream receive the
// session as an explicit value, never as ambient state.
func Auth(jwtSecret string, users ports.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
			}

			session, err := users.CurrentSession(c.Request().Context())
			if err != nil {
				return err
			}
			if session == nil || session.ID != sub {
				return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
			}

			c.Set(SessionKey, session)
			return next(c)
		}
	}
}
