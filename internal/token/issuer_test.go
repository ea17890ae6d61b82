package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Unsighted/Dashboard-backend/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    7,
		Name:  "Admin",
		Email: "admin@example.com",
		Role:  domain.RoleAdmin,
	}
}

func newTestIssuer(now func() time.Time) *Issuer {
	return NewIssuer(Config{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
		Now:           now,
	})
}

func TestIssueAccess_RoundTrip(t *testing.T) {
	issuer := newTestIssuer(nil)

	tokenString, err := issuer.IssueAccess(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := issuer.ParseAccess(tokenString)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "Admin", claims.Name)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestIssueRefresh_RoundTrip(t *testing.T) {
	issuer := newTestIssuer(nil)

	tokenString, err := issuer.IssueRefresh(7)
	require.NoError(t, err)

	claims, err := issuer.ParseRefresh(tokenString)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
}

func TestParseAccess_Expired(t *testing.T) {
	current := time.Now()
	issuer := newTestIssuer(func() time.Time { return current })

	tokenString, err := issuer.IssueAccess(testUser())
	require.NoError(t, err)

	// jump past the 15 minute lifetime
	current = current.Add(16 * time.Minute)

	_, err = issuer.ParseAccess(tokenString)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestParseRefresh_Expired(t *testing.T) {
	current := time.Now()
	issuer := newTestIssuer(func() time.Time { return current })

	tokenString, err := issuer.IssueRefresh(7)
	require.NoError(t, err)

	current = current.Add(7*24*time.Hour + time.Minute)

	_, err = issuer.ParseRefresh(tokenString)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestParseAccess_WrongSecret(t *testing.T) {
	issuer := newTestIssuer(nil)
	other := NewIssuer(Config{
		AccessSecret:  "different-secret",
		RefreshSecret: "refresh-secret",
	})

	tokenString, err := other.IssueAccess(testUser())
	require.NoError(t, err)

	_, err = issuer.ParseAccess(tokenString)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestSecretsAreNotInterchangeable(t *testing.T) {
	issuer := newTestIssuer(nil)

	accessToken, err := issuer.IssueAccess(testUser())
	require.NoError(t, err)
	refreshToken, err := issuer.IssueRefresh(7)
	require.NoError(t, err)

	// a refresh token must not pass as an access token and vice versa
	_, err = issuer.ParseAccess(refreshToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	_, err = issuer.ParseRefresh(accessToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestParseAccess_Garbage(t *testing.T) {
	issuer := newTestIssuer(nil)

	for _, tokenString := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := issuer.ParseAccess(tokenString)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	}
}

func TestParseAccess_RejectsUnsignedToken(t *testing.T) {
	issuer := newTestIssuer(nil)

	// header {"alg":"none","typ":"JWT"} with an empty signature
	unsigned := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJ1c2VySWQiOjd9."
	_, err := issuer.ParseAccess(unsigned)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestNewIssuer_DefaultTTLs(t *testing.T) {
	issuer := NewIssuer(Config{AccessSecret: "a", RefreshSecret: "r"})
	assert.Equal(t, 15*time.Minute, issuer.AccessTTL())
	assert.Equal(t, 7*24*time.Hour, issuer.refreshTTL)
}
