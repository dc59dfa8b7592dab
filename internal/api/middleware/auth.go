package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/docuvault/docstore/internal/api/metrics"
	"github.com/docuvault/docstore/internal/core/ports"
)

// SubjectKey is the echo context key under which Auth stores the
// authenticated identity (the token's subject claim).
const SubjectKey = "subject"

// Auth guards a route behind bearer-token authentication. A missing
// Authorization header is a client error (400); an invalid or expired token
// is unauthorized (401). The header value may carry the raw token or a
// "Bearer "-prefixed one. No database lookup happens here: the subject is
// trusted as the token's claim.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusBadRequest, "missing authorization header")
			}

			subject, err := tokens.Validate(header)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(SubjectKey, subject)
			return next(c)
		}
	}
}
