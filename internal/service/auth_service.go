package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Unsighted/Dashboard-backend/internal/domain"
	"github.com/Unsighted/Dashboard-backend/internal/dto"
	"github.com/Unsighted/Dashboard-backend/internal/repository"
	"github.com/Unsighted/Dashboard-backend/internal/token"
	"github.com/Unsighted/Dashboard-backend/pkg/logger"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Login verifies credentials and opens a session
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Refresh exchanges a valid refresh token for a new access token
	Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error)
	// Logout revokes the user's stored refresh token
	Logout(ctx context.Context, userID int64) error
}

// authService implements AuthService
type authService struct {
	userRepo repository.UserRepository
	issuer   *token.Issuer
	log      *logger.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, issuer *token.Issuer, log *logger.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		issuer:   issuer,
		log:      log,
	}
}

// Login verifies credentials, mints both tokens and stores the refresh
// token on the user row. A second login replaces the previous session.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// burn a bcrypt comparison so unknown emails take as long as
		// wrong passwords
		CheckPasswordHash(req.Password, dummyHash)
		return nil, domain.ErrInvalidCredentials
	}

	if !CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.issuer.IssueAccess(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.issuer.IssueRefresh(user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.StoreRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, err
	}

	s.log.Info("user logged in",
		zap.Int64("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)

	return &dto.LoginResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		User:         dto.ToUserResponse(user),
	}, nil
}

// Refresh validates the presented refresh token cryptographically, then
// against the stored token, and mints a fresh access token. The stored
// refresh token is kept as is, so the client reuses it until it expires
// or the user logs out.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	claims, err := s.issuer.ParseRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	matches, err := s.userRepo.RefreshTokenMatches(ctx, claims.UserID, refreshToken)
	if err != nil {
		return nil, err
	}
	if !matches {
		return nil, domain.ErrTokenRevoked
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrTokenRevoked
	}

	accessToken, err := s.issuer.IssueAccess(user)
	if err != nil {
		return nil, err
	}

	return &dto.RefreshResponse{Token: accessToken}, nil
}

// Logout clears the stored refresh token. Logging out twice is a no-op.
func (s *authService) Logout(ctx context.Context, userID int64) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		return err
	}
	s.log.Info("user logged out", zap.Int64("user_id", userID))
	return nil
}

// dummyHash is a bcrypt hash of a random string, used to equalize login
// timing for unknown emails.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"
