package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the validity window applied when no TTL is configured.
const DefaultTokenTTL = 10 * 24 * time.Hour

// ErrInvalidToken covers every validation failure: bad signature, malformed
// encoding, or expiry in the past. Callers get no finer-grained outcome.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and validates HS256-signed bearer tokens carrying a
// subject claim. The signing secret is injected once at construction and is
// never rotated during the process lifetime.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token vouching for subject until now + the configured TTL.
func (s *TokenService) Issue(subject string) (string, error) {
	now := s.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate verifies raw against the signing secret and returns the subject
// claim. An optional "Bearer " prefix (case-sensitive, as sent in an
// Authorization header) is stripped first.
func (s *TokenService) Validate(raw string) (string, error) {
	raw = strings.TrimPrefix(raw, "Bearer ")

	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil || !tkn.Valid {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
