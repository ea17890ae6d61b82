package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Unsighted/Dashboard-backend/internal/domain"
	"github.com/Unsighted/Dashboard-backend/internal/service"
	"github.com/Unsighted/Dashboard-backend/internal/token"
	"github.com/Unsighted/Dashboard-backend/pkg/logger"
)

// stubUserRepo backs the auth flow tests with a single in-memory user
type stubUserRepo struct {
	user *domain.User
}

func (r *stubUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }

func (r *stubUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, nil
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if r.user != nil && r.user.Email == email {
		return r.user, nil
	}
	return nil, nil
}

func (r *stubUserRepo) List(ctx context.Context) ([]*domain.User, error) { return nil, nil }

func (r *stubUserRepo) Update(ctx context.Context, user *domain.User) error { return nil }

func (r *stubUserRepo) Delete(ctx context.Context, id int64) (bool, error) { return false, nil }

func (r *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.user != nil && r.user.Email == email, nil
}

func (r *stubUserRepo) StoreRefreshToken(ctx context.Context, userID int64, tok string) error {
	if r.user == nil || r.user.ID != userID {
		return domain.ErrUserNotFound
	}
	r.user.RefreshToken = &tok
	return nil
}

func (r *stubUserRepo) RefreshTokenMatches(ctx context.Context, userID int64, tok string) (bool, error) {
	if r.user == nil || r.user.ID != userID || r.user.RefreshToken == nil {
		return false, nil
	}
	return *r.user.RefreshToken == tok, nil
}

func (r *stubUserRepo) ClearRefreshToken(ctx context.Context, userID int64) error {
	if r.user != nil && r.user.ID == userID {
		r.user.RefreshToken = nil
	}
	return nil
}

func newAuthRouter(t *testing.T) (*gin.Engine, *stubUserRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("Password1!"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &stubUserRepo{user: &domain.User{
		ID:           7,
		Name:         "Admin",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}}

	issuer := token.NewIssuer(token.Config{
		AccessSecret:  "access-test-secret",
		RefreshSecret: "refresh-test-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
	})

	h := NewAuthHandler(service.NewAuthService(repo, issuer, logger.Get()))

	r := gin.New()
	auth := r.Group("/api/auth")
	auth.POST("/login", h.Login)
	auth.POST("/refresh", h.Refresh)
	auth.POST("/logout", h.Logout)
	return r, repo
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Login(t *testing.T) {
	r, _ := newAuthRouter(t)

	t.Run("success", func(t *testing.T) {
		w := postJSON(r, "/api/auth/login", gin.H{
			"email":    "admin@example.com",
			"password": "Password1!",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Token        string `json:"token"`
			RefreshToken string `json:"refreshToken"`
			User         struct {
				ID   int64  `json:"id"`
				Role string `json:"role"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, int64(7), resp.User.ID)
		assert.Equal(t, "admin", resp.User.Role)

		// hash never leaks
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("wrong password", func(t *testing.T) {
		w := postJSON(r, "/api/auth/login", gin.H{
			"email":    "admin@example.com",
			"password": "nope",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
	})

	t.Run("unknown email gets the same error", func(t *testing.T) {
		w := postJSON(r, "/api/auth/login", gin.H{
			"email":    "ghost@example.com",
			"password": "Password1!",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
	})

	t.Run("missing fields", func(t *testing.T) {
		w := postJSON(r, "/api/auth/login", gin.H{"email": "admin@example.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_SessionLifecycle(t *testing.T) {
	r, repo := newAuthRouter(t)

	// login
	w := postJSON(r, "/api/auth/login", gin.H{
		"email":    "admin@example.com",
		"password": "Password1!",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	// refresh succeeds while the session is open
	w = postJSON(r, "/api/auth/refresh", gin.H{"refreshToken": login.RefreshToken})
	require.Equal(t, http.StatusOK, w.Code)
	var refresh struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &refresh))
	assert.NotEmpty(t, refresh.Token)

	// the stored token is not rotated by refresh
	require.NotNil(t, repo.user.RefreshToken)
	assert.Equal(t, login.RefreshToken, *repo.user.RefreshToken)

	// logout revokes the session
	w = postJSON(r, "/api/auth/logout", gin.H{"userId": 7})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, repo.user.RefreshToken)

	// the still-unexpired token is now rejected
	w = postJSON(r, "/api/auth/refresh", gin.H{"refreshToken": login.RefreshToken})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_REVOKED")

	// logout again is a no-op
	w = postJSON(r, "/api/auth/logout", gin.H{"userId": 7})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_Refresh_Errors(t *testing.T) {
	r, _ := newAuthRouter(t)

	t.Run("missing token is 401", func(t *testing.T) {
		w := postJSON(r, "/api/auth/refresh", gin.H{})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token is 403", func(t *testing.T) {
		w := postJSON(r, "/api/auth/refresh", gin.H{"refreshToken": "not-a-jwt"})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
	})
}

func TestAuthHandler_Logout_MissingUserID(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postJSON(r, "/api/auth/logout", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
