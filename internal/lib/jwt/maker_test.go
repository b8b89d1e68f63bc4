package jwt

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaker_GenerateAndParseToken_ValidCases(t *testing.T) {
	secret := "test_secret_key_1234567890"
	tokenTTL := 15 * time.Minute
	maker := NewMaker(secret, tokenTTL)

	tests := []struct {
		name   string
		email  string
		userID int64
	}{
		{
			name:   "regular user",
			email:  "alice@example.com",
			userID: 1,
		},
		{
			name:   "user with plus in email",
			email:  "bob+test@example.com",
			userID: 42,
		},
		{
			name:   "large user id",
			email:  "carol@example.com",
			userID: 9_000_000_000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateToken(tt.email, tt.userID)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.email, claims.Subject)
			assert.Equal(t, tt.userID, claims.UserID)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestMaker_ParseToken_InvalidTokens(t *testing.T) {
	secret := "test_secret_key_1234567890"
	maker := NewMaker(secret, 15*time.Minute)

	validToken, err := maker.GenerateToken("alice@example.com", 1)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "malformed token",
			token: "invalid.token.here",
		},
		{
			name:  "expired token",
			token: createExpiredToken(t, secret),
		},
		{
			name:  "wrong secret key",
			token: createTokenWithWrongSecret(t),
		},
		{
			name:  "tampered token",
			token: validToken + "tampered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestMaker_Base64Secret(t *testing.T) {
	// Сырой секрет содержит символы вне алфавита Base64, поэтому
	// декодирование гарантированно не срабатывает и используются сырые байты.
	raw := "super_secret_key!"
	encoded := base64.StdEncoding.EncodeToString([]byte(raw))

	// Base64-секрет и его сырые байты дают один и тот же ключ подписи.
	encodedMaker := NewMaker(encoded, 15*time.Minute)
	rawMaker := NewMaker(raw, 15*time.Minute)

	token, err := encodedMaker.GenerateToken("alice@example.com", 1)
	require.NoError(t, err)

	claims, err := rawMaker.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
}

func TestMaker_DifferentSecretKeys(t *testing.T) {
	maker1 := NewMaker("first_secret_key!", 15*time.Minute)
	maker2 := NewMaker("different_secret!", 15*time.Minute)

	token, err := maker1.GenerateToken("alice@example.com", 1)
	require.NoError(t, err)

	claims, err := maker2.ParseToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)

	claims, err = maker1.ParseToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
}

func TestMaker_TokenExpiration(t *testing.T) {
	maker := NewMaker("test_secret_key!", 100*time.Millisecond)

	token, err := maker.GenerateToken("alice@example.com", 1)
	require.NoError(t, err)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.NotNil(t, claims)

	time.Sleep(150 * time.Millisecond)

	_, err = maker.ParseToken(token)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func createExpiredToken(t *testing.T, secret string) string {
	maker := NewMaker(secret, -time.Hour)
	token, err := maker.GenerateToken("alice@example.com", 1)
	require.NoError(t, err)
	return token
}

func createTokenWithWrongSecret(t *testing.T) string {
	wrongMaker := NewMaker("wrong_secret_key!", 15*time.Minute)
	token, err := wrongMaker.GenerateToken("alice@example.com", 1)
	require.NoError(t, err)
	return token
}
