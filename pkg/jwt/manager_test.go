package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, err := m.GenerateToken("editor", "Ed")
	require.NoError(t, err)

	claims, err := m.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "editor", claims.UserID)
	assert.Equal(t, "Ed", claims.Nickname)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := NewManager("a", time.Hour).GenerateToken("u", "")
	require.NoError(t, err)

	_, err = NewManager("b", time.Hour).VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	token, err := NewManager("s", -time.Hour).GenerateToken("u", "")
	require.NoError(t, err)

	// expiry <= 0 이면 기본 24h 가 적용되므로 직접 만료 토큰을 만든다
	m := &Manager{secretKey: []byte("s"), expiry: -time.Minute}
	expired, err := m.GenerateToken("u", "")
	require.NoError(t, err)

	_, err = m.VerifyToken(expired)
	assert.ErrorIs(t, err, ErrExpiredToken)

	_, err = m.VerifyToken(token)
	assert.NoError(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	_, err := NewManager("s", 0).VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
