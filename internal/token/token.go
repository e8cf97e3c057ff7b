// Package token issues and verifies the signed bearer tokens that carry
// identity and role between requests. Verification is stateless; there is no
// server-side session store, so revocation before expiry is not supported.
package token

import (
	"time"

	"github.com/golang-jwt/jwt"

	"pitchhub/internal/apperrors"
	"pitchhub/internal/models"
)

// Claims binds a user id and role to the standard JWT fields.
type Claims struct {
	UserID uint        `json:"id"`
	Role   models.Role `json:"role"`
	jwt.StandardClaims
}

// Manager signs and parses tokens with a shared HMAC secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Generate signs a token for the given user, valid for the configured TTL.
func (m *Manager) Generate(userID uint, role models.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(m.ttl).Unix(),
			IssuedAt:  now.Unix(),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(m.secret)
}

// Parse validates a token string and returns its claims. Any failure
// (malformed, bad signature, expired) comes back as an auth error.
func (m *Manager) Parse(tokenStr string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.New(apperrors.ErrAuth, "unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || tok == nil || !tok.Valid {
		return nil, apperrors.New(apperrors.ErrAuth, "invalid or expired token")
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || claims.UserID == 0 || claims.Role == "" {
		return nil, apperrors.New(apperrors.ErrAuth, "invalid token payload")
	}
	return claims, nil
}
