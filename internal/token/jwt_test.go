package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/avelichko/reminder-server/internal/model"
)

func TestJWT_AccessToken_Roundtrip(t *testing.T) {
	j := NewJWT("access-secret", "refresh-secret", time.Minute, time.Hour)
	u := uuid.New()

	access, err := j.GenerateAccessToken(u)
	require.NoError(t, err)
	got, err := j.ParseAccessToken(access)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestJWT_RefreshToken_Roundtrip(t *testing.T) {
	j := NewJWT("access-secret", "refresh-secret", time.Minute, time.Hour)
	u := uuid.New()

	refresh, err := j.GenerateRefreshToken(u)
	require.NoError(t, err)

	got, err := j.ParseRefreshToken(refresh)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestJWT_TokenType_Mismatch(t *testing.T) {
	j := NewJWT("same-secret", "same-secret", time.Minute, time.Hour)
	u := uuid.New()

	access, err := j.GenerateAccessToken(u)
	require.NoError(t, err)

	_, err = j.ParseRefreshToken(access)
	require.Error(t, err)
	require.ErrorIs(t, err, model.ErrTokenSignature)
}

func TestJWT_Expired(t *testing.T) {
	j := NewJWT("access-secret", "refresh-secret", -time.Minute, time.Hour)
	u := uuid.New()

	access, err := j.GenerateAccessToken(u)
	require.NoError(t, err)

	_, err = j.ParseAccessToken(access)
	require.Error(t, err)
	require.ErrorIs(t, err, model.ErrTokenExpired)
}

func TestJWT_WrongSecret(t *testing.T) {
	issuer := NewJWT("access-secret", "refresh-secret", time.Minute, time.Hour)
	verifier := NewJWT("other-secret", "refresh-secret", time.Minute, time.Hour)
	u := uuid.New()

	access, err := issuer.GenerateAccessToken(u)
	require.NoError(t, err)

	_, err = verifier.ParseAccessToken(access)
	require.Error(t, err)
	require.ErrorIs(t, err, model.ErrTokenSignature)
}

func TestJWT_IndependentSecrets(t *testing.T) {
	j := NewJWT("access-secret", "refresh-secret", time.Minute, time.Hour)
	u := uuid.New()

	refresh, err := j.GenerateRefreshToken(u)
	require.NoError(t, err)

	_, err = j.ParseAccessToken(refresh)
	require.Error(t, err)
}

func TestJWT_Malformed(t *testing.T) {
	j := NewJWT("access-secret", "refresh-secret", time.Minute, time.Hour)

	_, err := j.ParseAccessToken("not-a-token")
	require.Error(t, err)
	require.ErrorIs(t, err, model.ErrTokenMalformed)
}
