package dto

import "github.com/Unsighted/Dashboard-backend/internal/domain"

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents refresh token request
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest represents logout request
type LogoutRequest struct {
	UserID int64 `json:"userId" binding:"required"`
}

// UserResponse represents user data in auth responses. The password hash
// and stored refresh token never leave the server.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

// RefreshResponse carries the re-issued access token
type RefreshResponse struct {
	Token string `json:"token"`
}

// ToUserResponse converts a domain user to its auth response shape
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}
