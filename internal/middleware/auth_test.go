package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Unsighted/Dashboard-backend/internal/domain"
	"github.com/Unsighted/Dashboard-backend/internal/token"
)

func newAuthTestRouter(issuer *token.Issuer, roles ...domain.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handlers := []gin.HandlerFunc{Authenticate(issuer)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRoles(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID})
	})

	r.GET("/protected", handlers...)
	return r
}

func issueFor(t *testing.T, issuer *token.Issuer, role domain.Role) string {
	t.Helper()
	tok, err := issuer.IssueAccess(&domain.User{
		ID:    7,
		Name:  "Admin",
		Email: "admin@example.com",
		Role:  role,
	})
	require.NoError(t, err)
	return tok
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	issuer := token.NewIssuer(token.Config{
		AccessSecret:  "access-test-secret",
		RefreshSecret: "refresh-test-secret",
	})
	r := newAuthTestRouter(issuer)

	t.Run("valid token", func(t *testing.T) {
		w := doRequest(r, "Bearer "+issueFor(t, issuer, domain.RoleUser))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userId":7`)
	})

	t.Run("missing header", func(t *testing.T) {
		w := doRequest(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("not bearer", func(t *testing.T) {
		w := doRequest(r, "Basic abc123")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doRequest(r, "Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := token.NewIssuer(token.Config{
			AccessSecret:  "some-other-secret",
			RefreshSecret: "refresh-test-secret",
		})
		w := doRequest(r, "Bearer "+issueFor(t, other, domain.RoleUser))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		current := time.Now()
		clockIssuer := token.NewIssuer(token.Config{
			AccessSecret:  "access-test-secret",
			RefreshSecret: "refresh-test-secret",
			Now:           func() time.Time { return current },
		})
		tok := issueFor(t, clockIssuer, domain.RoleUser)
		current = current.Add(16 * time.Minute)

		w := doRequest(newAuthTestRouter(clockIssuer), "Bearer "+tok)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "token expired")
	})
}

func TestRequireRoles(t *testing.T) {
	issuer := token.NewIssuer(token.Config{
		AccessSecret:  "access-test-secret",
		RefreshSecret: "refresh-test-secret",
	})

	t.Run("admin route rejects user role", func(t *testing.T) {
		r := newAuthTestRouter(issuer, domain.RoleAdmin)

		w := doRequest(r, "Bearer "+issueFor(t, issuer, domain.RoleUser))
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = doRequest(r, "Bearer "+issueFor(t, issuer, domain.RoleAdmin))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("shared route admits both roles", func(t *testing.T) {
		r := newAuthTestRouter(issuer, domain.RoleUser, domain.RoleAdmin)

		for _, role := range []domain.Role{domain.RoleUser, domain.RoleAdmin} {
			w := doRequest(r, "Bearer "+issueFor(t, issuer, role))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("unauthenticated request never reaches the role check", func(t *testing.T) {
		r := newAuthTestRouter(issuer, domain.RoleAdmin)
		w := doRequest(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
