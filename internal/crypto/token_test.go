package crypto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSigner(t *testing.T) {
	signer := NewSessionSigner("device-secret", "learnsync")
	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	expires := issued.Add(24 * time.Hour)

	token, err := signer.Sign("sess_abc", 42, issued, expires)
	require.NoError(t, err)

	claims, err := signer.Parse(token, issued.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "sess_abc", claims.SessionID)
	assert.Equal(t, "42", claims.Subject)

	_, err = signer.Parse(token, expires.Add(time.Second))
	assert.Error(t, err, "токен после истечения недействителен")

	_, err = NewSessionSigner("other-secret", "learnsync").Parse(token, issued)
	assert.Error(t, err, "чужой секрет не принимается")
}
