package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/docuvault/docstore/internal/auth"
)

func newAuthTestContext(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	token, err := tokens.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, rec := newAuthTestContext(t, "Bearer "+token)

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		if c.Get(SubjectKey) != "alice@example.com" {
			t.Fatalf("subject not set: %v", c.Get(SubjectKey))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_RawTokenWithoutPrefix(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	token, err := tokens.Issue("bob@example.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, _ := newAuthTestContext(t, token)

	handler := Auth(tokens)(func(c echo.Context) error {
		if c.Get(SubjectKey) != "bob@example.com" {
			t.Fatalf("subject not set for raw token")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("raw token should be accepted, got %v", err)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	c, _ := newAuthTestContext(t, "")

	handler := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing header, got %v", err)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)

	other := auth.NewTokenService("other-secret", time.Hour)
	forged, err := other.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("issue forged token: %v", err)
	}

	for _, header := range []string{"Bearer garbage", forged, "Bearer " + forged} {
		c, _ := newAuthTestContext(t, header)

		handler := Auth(tokens)(func(c echo.Context) error {
			t.Fatalf("next should not be called for %q", header)
			return nil
		})

		err := handler(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %q, got %v", header, err)
		}
	}
}
