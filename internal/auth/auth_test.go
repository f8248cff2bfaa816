package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)
	assert.True(t, IsHashed(hash))

	tests := []struct {
		name      string
		stored    string
		candidate string
		want      bool
	}{
		{"hash match", hash, "rahasia123", true},
		{"hash mismatch", hash, "rahasia124", false},
		{"legacy plaintext match", "toko-ani", "toko-ani", true},
		{"legacy plaintext mismatch", "toko-ani", "toko-ani ", false},
		{"no stored password", "", "anything", false},
		{"empty candidate", "toko-ani", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyPassword(tt.stored, tt.candidate))
		})
	}

	_, err = HashPassword("")
	assert.Error(t, err)
}

func TestTokenIssuer(t *testing.T) {
	issuer, err := NewTokenIssuer("secret", time.Hour)
	require.NoError(t, err)

	admin, expiresAt, err := issuer.IssueAdmin()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := issuer.Validate(admin)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.True(t, claims.CanEdit(42))

	editor, _, err := issuer.IssueEditor(7)
	require.NoError(t, err)
	claims, err = issuer.Validate(editor)
	require.NoError(t, err)
	assert.Equal(t, RoleEditor, claims.Role)
	assert.True(t, claims.CanEdit(7))
	assert.False(t, claims.CanEdit(8))
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer, err := NewTokenIssuer("secret", time.Hour)
	require.NoError(t, err)
	other, err := NewTokenIssuer("other", time.Hour)
	require.NoError(t, err)

	token, _, err := other.IssueAdmin()
	require.NoError(t, err)
	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	token, _, err = issuer.IssueAdmin()
	require.NoError(t, err)
	issuer.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenIssuer_RandomKey(t *testing.T) {
	a, err := NewTokenIssuer("", 0)
	require.NoError(t, err)
	b, err := NewTokenIssuer("", 0)
	require.NoError(t, err)
	assert.Equal(t, 12*time.Hour, a.TTL())

	token, _, err := a.IssueAdmin()
	require.NoError(t, err)
	_, err = b.Validate(token)
	assert.Error(t, err)
}
