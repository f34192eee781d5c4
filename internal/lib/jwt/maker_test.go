package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key_1234567890"

func TestJWTMaker_GenerateAndParseToken_ValidCases(t *testing.T) {
	tokenTTL := 15 * time.Minute
	maker := NewJWTMaker(testSecret, tokenTTL)

	tests := []struct {
		name   string
		userID int64
	}{
		{name: "first user", userID: 1},
		{name: "large id", userID: 9_000_000_000},
		{name: "zero id", userID: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateToken(tt.userID)
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Len(t, strings.Split(token, "."), 3)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.userID, claims.UserID)
			assert.NotEmpty(t, claims.ID)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestNewJWTMaker_DefaultTTL(t *testing.T) {
	maker := NewJWTMaker(testSecret, 0)

	token, err := maker.GenerateToken(7)
	require.NoError(t, err)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, DefaultTTL, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTMaker_TokensAreUnique(t *testing.T) {
	maker := NewJWTMaker(testSecret, time.Hour)

	first, err := maker.GenerateToken(1)
	require.NoError(t, err)
	second, err := maker.GenerateToken(1)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTMaker_ParseToken_InvalidTokens(t *testing.T) {
	maker := NewJWTMaker(testSecret, 15*time.Minute)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{
			name:    "empty token",
			token:   "",
			wantErr: ErrTokenMalformed,
		},
		{
			name:    "malformed token",
			token:   "invalid.token.here",
			wantErr: ErrTokenMalformed,
		},
		{
			name:    "not a jwt",
			token:   "abc",
			wantErr: ErrTokenMalformed,
		},
		{
			name:    "expired token",
			token:   createExpiredToken(t, testSecret),
			wantErr: ErrTokenExpired,
		},
		{
			name:    "wrong secret key",
			token:   createTokenWithWrongSecret(t),
			wantErr: ErrTokenInvalidSignature,
		},
		{
			name:    "expired token with wrong secret",
			token:   createExpiredToken(t, "wrong_secret_key"),
			wantErr: ErrTokenInvalidSignature,
		},
		{
			name:    "none algorithm",
			token:   createUnsignedToken(t),
			wantErr: ErrTokenInvalidSignature,
		},
		{
			name:    "missing expiry",
			token:   createTokenWithoutExpiry(t),
			wantErr: ErrTokenMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseToken(tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTMaker_ParseToken_TamperedPayload(t *testing.T) {
	maker := NewJWTMaker(testSecret, time.Hour)
	token, err := maker.GenerateToken(1)
	require.NoError(t, err)

	other, err := maker.GenerateToken(2)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	otherParts := strings.Split(other, ".")
	forged := parts[0] + "." + otherParts[1] + "." + parts[2]

	claims, err := maker.ParseToken(forged)
	assert.ErrorIs(t, err, ErrTokenInvalidSignature)
	assert.Nil(t, claims)

	claims, err = maker.ParseToken(token + "tampered")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTMaker_DifferentSecretKeys(t *testing.T) {
	maker1 := NewJWTMaker("first_secret_key", 15*time.Minute)
	maker2 := NewJWTMaker("different_secret_key", 15*time.Minute)

	token, err := maker1.GenerateToken(42)
	require.NoError(t, err)

	claims, err := maker2.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalidSignature)
	assert.Nil(t, claims)

	claims, err = maker1.ParseToken(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestJWTMaker_TokenExpiration(t *testing.T) {
	current := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	maker := NewJWTMaker(testSecret, time.Hour)
	maker.now = func() time.Time { return current }

	token, err := maker.GenerateToken(5)
	require.NoError(t, err)

	current = current.Add(59 * time.Minute)
	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), claims.UserID)

	current = current.Add(2 * time.Minute)
	claims, err = maker.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "expired")
}

func createExpiredToken(t *testing.T, secretKey string) string {
	t.Helper()
	maker := NewJWTMaker(secretKey, -time.Hour)
	token, err := maker.GenerateToken(1)
	require.NoError(t, err)
	return token
}

func createTokenWithWrongSecret(t *testing.T) string {
	t.Helper()
	wrongMaker := NewJWTMaker("wrong_secret_key", 15*time.Minute)
	token, err := wrongMaker.GenerateToken(1)
	require.NoError(t, err)
	return token
}

func createUnsignedToken(t *testing.T) string {
	t.Helper()
	claims := CustomClaims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return token
}

func createTokenWithoutExpiry(t *testing.T) string {
	t.Helper()
	claims := CustomClaims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}
