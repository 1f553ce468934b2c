package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/novafin/finance-system/internal/core/domain"
	"github.com/novafin/finance-system/internal/core/ports"
)

type stubUserService struct {
	session *domain.Session
}

func (s *stubUserService) Register(context.Context, ports.RegisterInput) (*domain.User, error) {
	return nil, nil
}

func (s *stubUserService) Login(context.Context, string, string) (string, *domain.Session, error) {
	return "", nil, nil
}

func (s *stubUserService) CurrentSession(context.Context) (*domain.Session, error) {
	return s.session, nil
}

func (s *stubUserService) Logout(context.Context) error {
	return nil
}

const testSecret = "test-secret"

func signedToken(t *testing.T, sub string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func invoke(t *testing.T, users ports.UserService, authHeader string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/transactions", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := Auth(testSecret, users)(next)(c)
	return rec, c, err
}

func TestAuth_MissingHeader(t *testing.T) {
	_, _, err := invoke(t, &stubUserService{}, "")

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_BadScheme(t *testing.T) {
	_, _, err := invoke(t, &stubUserService{}, "Basic abc")

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	_, _, err := invoke(t, &stubUserService{}, "Bearer not-a-token")

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_NoActiveSession(t *testing.T) {
	// Valid token but the session pointer was cleared (logout in another tab).
	_, _, err := invoke(t, &stubUserService{session: nil}, "Bearer "+signedToken(t, "u1"))

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_SessionMismatch(t *testing.T) {
	users := &stubUserService{session: &domain.Session{ID: "someone-else"}}
	_, _, err := invoke(t, users, "Bearer "+signedToken(t, "u1"))

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_Success(t *testing.T) {
	users := &stubUserService{session: &domain.Session{ID: "u1", Name: "Ana"}}
	rec, c, err := invoke(t, users, "Bearer "+signedToken(t, "u1"))
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	session, _ := c.Get(SessionKey).(*domain.Session)
	if session == nil || session.ID != "u1" {
		t.Fatalf("expected session injected into context, got %+v", session)
	}
}
