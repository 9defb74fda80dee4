package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("super-secret", 0)
	userID := uuid.New()

	tok, err := codec.Issue(userID)
	require.NoError(t, err)

	got, err := codec.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenCodec("right-secret", 0).Issue(uuid.New())
	require.NoError(t, err)

	_, err = NewTokenCodec("wrong-secret", 0).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMalformedToken(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("secret", 0)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := codec.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func TestVerifyMissingSubject(t *testing.T) {
	t.Parallel()

	// Well-signed token without a subject must still be rejected.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iat": time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenCodec("secret", 0).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("secret", -time.Minute)
	tok, err := codec.Issue(uuid.New())
	require.NoError(t, err)

	_, err = codec.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsUnexpectedSigningMethod(t *testing.T) {
	t.Parallel()

	// alg=none style tokens must not pass the HMAC check.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uuid.New().String(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenCodec("secret", 0).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
