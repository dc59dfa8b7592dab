package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/docuvault/docstore/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrInvalidID, http.StatusBadRequest, "invalid identifier"},
		{domain.ErrInvalidRole, http.StatusBadRequest, "invalid role"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{domain.ErrDocumentNotFound, http.StatusNotFound, "document not found"},
		{domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{fmt.Errorf("find user: %w: %w", domain.ErrStoreUnavailable, errors.New("timeout")), http.StatusInternalServerError, "internal server error"},
		{errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), tc.msg) {
			t.Fatalf("%v: expected message %q, got %s", tc.err, tc.msg, rec.Body.String())
		}
	}
}

func TestHTTPErrorHandler_WrappedStoreError_DoesNotLeakCause(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	cause := fmt.Errorf("find user: %w: %w", domain.ErrStoreUnavailable, errors.New("dial tcp 10.0.0.5:27017"))
	NewHTTPErrorHandler(zerolog.Nop())(cause, c)

	if strings.Contains(rec.Body.String(), "27017") {
		t.Fatalf("internal details leaked to client: %s", rec.Body.String())
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(echo.NewHTTPError(http.StatusTeapot, "short and stout"), c)

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rec.Code)
	}
}
