package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_RoundTrip(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	for i := 0; i < 5; i++ {
		userID := uuid.New()

		token, err := issuer.Issue(userID)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		got, err := issuer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, userID, got)
	}
}

func TestIssuer_Verify(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	t.Run("expired token is invalid", func(t *testing.T) {
		// Issued two hours in the past relative to a 1h TTL.
		stale := NewIssuer("test-secret", -time.Hour)
		token, err := stale.Issue(uuid.New())
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tampered token is invalid", func(t *testing.T) {
		token, err := issuer.Issue(uuid.New())
		require.NoError(t, err)

		tampered := token[:len(token)-2] + "xx"
		_, err = issuer.Verify(tampered)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with another secret is invalid", func(t *testing.T) {
		other := NewIssuer("other-secret", time.Hour)
		token, err := other.Issue(uuid.New())
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage is invalid", func(t *testing.T) {
		_, err := issuer.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
