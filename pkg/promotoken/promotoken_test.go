package promotoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigner_IssueAndParse(t *testing.T) {
	signer := NewSigner("test-secret", 30*time.Minute)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	token, err := signer.Issue(42, "SUMMER10", now)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := signer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.PromotionID)
	assert.Equal(t, "SUMMER10", claims.Code)
}

func TestSigner_Parse_Expired(t *testing.T) {
	signer := NewSigner("test-secret", 30*time.Minute)

	// Токен выпущен час назад с TTL 30 минут
	token, err := signer.Issue(42, "SUMMER10", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = signer.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestSigner_Parse_WrongSecret(t *testing.T) {
	signer := NewSigner("test-secret", 30*time.Minute)
	other := NewSigner("other-secret", 30*time.Minute)

	token, err := signer.Issue(42, "SUMMER10", time.Now())
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSigner_Parse_Garbage(t *testing.T) {
	signer := NewSigner("test-secret", 30*time.Minute)

	_, err := signer.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
