package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken covers every verification failure: bad signature,
// structural malformation, or a missing subject claim.
var ErrInvalidToken = errors.New("invalid token")

// TokenCodec issues and verifies signed session tokens. The secret is
// process-wide configuration, injected once at startup.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec creates a codec. A ttl of 0 issues non-expiring tokens.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue mints an HS256 token asserting the given account id.
func (c *TokenCodec) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
	}
	if c.ttl > 0 {
		claims["exp"] = now.Add(c.ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify checks the signature and returns the asserted account id.
func (c *TokenCodec) Verify(tokenStr string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userID, nil
}
