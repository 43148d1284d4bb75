// Package jwtmanager issues and validates the stateless HS256 session tokens
// used by the access control middleware. Claims keep the {username, role,
// exp} wire shape existing clients already decode.
package jwtmanager

import (
	"medirecord-service/internal/pkg/exceptions"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type SessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTManager holds the process-wide signing secret. The secret is read-only
// after construction and safe for concurrent use.
func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a session token carrying identity and role, expiring at
// now + ttl. Claims are immutable once issued; extending a session means
// logging in again.
func (m *JWTManager) Issue(email, role string, now time.Time) (string, error) {
	claims := SessionClaims{
		Username: email,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return signed, nil
}

// Validate verifies signature first, then expiry against now exactly (no
// clock skew leeway). Outcomes map to the error taxonomy: expired tokens to
// ErrTokenExpired, anything else that fails verification to ErrTokenMalformed.
// Claim validation is done here against the caller's clock rather than by the
// parser, which only knows the wall clock.
func (m *JWTManager) Validate(tokenString string, now time.Time) (*SessionClaims, error) {
	claims := new(SessionClaims)
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, exceptions.ErrTokenMalformed(err)
	}
	if !token.Valid || claims.Username == "" || claims.Role == "" || claims.ExpiresAt == nil {
		return nil, exceptions.ErrTokenMalformed(nil)
	}
	if !now.Before(claims.ExpiresAt.Time) {
		return nil, exceptions.ErrTokenExpired(nil)
	}

	return claims, nil
}
