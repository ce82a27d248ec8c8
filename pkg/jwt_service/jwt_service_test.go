package jwtservice

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/fitquest/internal/error_values"
	"github.com/limbo/fitquest/pkg/entity"
)

func TestTokenRoundTrip(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Name: "runner"}
	s := New("secret", time.Hour)
	token, err := s.GenerateToken(user)
	require.NoError(t, err)
	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "runner", claims.Username)
}

func TestParseTokenRejects(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Name: "runner"}
	issuedAt := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	issuer := New("secret", time.Hour)
	issuer.now = func() time.Time { return issuedAt }
	token, err := issuer.GenerateToken(user)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		s := New("secret", time.Hour)
		s.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
		_, err := s.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("other secret", func(t *testing.T) {
		s := New("another", time.Hour)
		s.now = func() time.Time { return issuedAt }
		_, err := s.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := New("secret", time.Hour).ParseToken("not.a.token")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
}
