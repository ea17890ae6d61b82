package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Unsighted/Dashboard-backend/internal/domain"
)

// AccessClaims is the self-contained claim set carried by an access token.
// It is never re-checked against storage; validity is signature + time only.
type AccessClaims struct {
	UserID int64       `json:"userId"`
	Email  string      `json:"email"`
	Name   string      `json:"name"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// RefreshClaims is the claim set carried by a refresh token
type RefreshClaims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// Config holds the two signing contexts of the issuer. The secrets must
// differ: a leaked access secret must not be able to mint refresh tokens.
type Config struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration

	// Now overrides the clock; nil means time.Now. Tests use this to
	// exercise expiry deterministically.
	Now func() time.Time
}

// Issuer mints and verifies access and refresh tokens. The two token kinds
// are signed with independent secrets and are never interchangeable.
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewIssuer creates an Issuer from config, applying the default lifetimes
// (15m access, 7d refresh) when unset.
func NewIssuer(cfg Config) *Issuer {
	if cfg.AccessTTL == 0 {
		cfg.AccessTTL = 15 * time.Minute
	}
	if cfg.RefreshTTL == 0 {
		cfg.RefreshTTL = 7 * 24 * time.Hour
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Issuer{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
		now:           now,
	}
}

// AccessTTL returns the configured access token lifetime
func (i *Issuer) AccessTTL() time.Duration {
	return i.accessTTL
}

// IssueAccess mints a signed access token for the user
func (i *Issuer) IssueAccess(user *domain.User) (string, error) {
	now := i.now()
	claims := &AccessClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.accessTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.accessSecret)
}

// IssueRefresh mints a signed refresh token for the user id
func (i *Issuer) IssueRefresh(userID int64) (string, error) {
	now := i.now()
	claims := &RefreshClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.refreshTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.refreshSecret)
}

// ParseAccess verifies an access token and returns its claims.
// Returns domain.ErrTokenExpired past the lifetime, domain.ErrInvalidToken
// for every other verification failure.
func (i *Issuer) ParseAccess(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := i.parse(tokenString, claims, i.accessSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

// ParseRefresh verifies a refresh token and returns its claims
func (i *Issuer) ParseRefresh(tokenString string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := i.parse(tokenString, claims, i.refreshSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

func (i *Issuer) parse(tokenString string, claims jwt.Claims, secret []byte) error {
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, domain.ErrInvalidToken
			}
			return secret, nil
		},
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.ErrTokenExpired
		}
		return domain.ErrInvalidToken
	}
	if !token.Valid {
		return domain.ErrInvalidToken
	}
	return nil
}
