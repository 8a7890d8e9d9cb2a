package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestManager() *Manager {
	return NewManager(Config{
		SecretKey:  "secret",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
		BcryptCost: bcrypt.MinCost,
	})
}

func TestManager_IssueParse(t *testing.T) {
	t.Parallel()
	m := newTestManager()

	access, err := m.Issue("user-1", AccessToken)
	require.NoError(t, err)
	refresh, err := m.Issue("user-1", RefreshToken)
	require.NoError(t, err)

	sub, err := m.Parse(access, AccessToken)
	require.NoError(t, err)
	require.Equal(t, "user-1", sub)

	sub, err = m.Parse(refresh, RefreshToken)
	require.NoError(t, err)
	require.Equal(t, "user-1", sub)
}

func TestManager_ParseWrongType(t *testing.T) {
	t.Parallel()
	m := newTestManager()

	access, err := m.Issue("user-1", AccessToken)
	require.NoError(t, err)

	_, err = m.Parse(access, RefreshToken)
	var typeErr *TokenTypeError
	require.ErrorAs(t, err, &typeErr)
	require.Equal(t, "Invalid token type 'access' expected 'refresh'", typeErr.Error())

	refresh, err := m.Issue("user-1", RefreshToken)
	require.NoError(t, err)
	_, err = m.Parse(refresh, AccessToken)
	require.ErrorAs(t, err, &typeErr)
}

func TestManager_ParseInvalid(t *testing.T) {
	t.Parallel()
	m := newTestManager()

	tests := []struct {
		name  string
		token func() string
	}{
		{
			name:  "garbage",
			token: func() string { return "not.a.token" },
		},
		{
			name: "other key",
			token: func() string {
				other := NewManager(Config{SecretKey: "other", AccessTTL: time.Minute})
				tok, _ := other.Issue("user-1", AccessToken)
				return tok
			},
		},
		{
			name: "expired",
			token: func() string {
				expired := newTestManager()
				expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
				tok, _ := expired.Issue("user-1", AccessToken)
				return tok
			},
		},
		{
			name: "empty subject",
			token: func() string {
				tok, _ := m.Issue("", AccessToken)
				return tok
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := m.Parse(tt.token(), AccessToken)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestManager_Password(t *testing.T) {
	t.Parallel()
	m := newTestManager()

	hash, err := m.HashPassword("Passw0rd!")
	require.NoError(t, err)
	require.True(t, m.VerifyPassword(hash, "Passw0rd!"))
	require.False(t, m.VerifyPassword(hash, "passw0rd!"))
	require.False(t, m.VerifyPassword([]byte("broken"), "Passw0rd!"))
}
