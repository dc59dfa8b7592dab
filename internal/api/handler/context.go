package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/docuvault/docstore/internal/api/middleware"
)

// ctxSubject extracts the authenticated identity injected by the Auth
// middleware. An empty subject on a guarded route means the middleware did
// not run; fail fast before any service call.
func ctxSubject(c echo.Context) (string, error) {
	subject, _ := c.Get(middleware.SubjectKey).(string)
	if subject == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return subject, nil
}
