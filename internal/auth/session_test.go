package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifySession(t *testing.T) {
	sessions := NewSessionManager("test-secret")

	token, err := sessions.Issue("admin-42", time.Now())
	require.NoError(t, err)

	adminId, err := sessions.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-42", adminId)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	sessions := NewSessionManager("test-secret")

	token, err := sessions.Issue("admin-42", time.Now().Add(-SessionTTL-time.Hour))
	require.NoError(t, err)

	_, err = sessions.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewSessionManager("secret-a").Issue("admin-42", time.Now())
	require.NoError(t, err)

	_, err = NewSessionManager("secret-b").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	sessions := NewSessionManager("test-secret")

	for _, bad := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		_, err := sessions.Verify(bad)
		assert.ErrorIs(t, err, ErrInvalidSession, "token %q", bad)
	}
}
