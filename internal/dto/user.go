package dto

import "github.com/Unsighted/Dashboard-backend/internal/domain"

// CreateUserRequest represents a new staff account
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" binding:"required"`
}

// UpdateUserRequest represents a partial account update. A non-nil
// Password triggers a rehash.
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8,max=72"`
	Role     *string `json:"role"`
}

// ParsedRole returns the validated role value
func (r *CreateUserRequest) ParsedRole() (domain.Role, error) {
	role := domain.Role(r.Role)
	if !role.Valid() {
		return "", domain.ErrInvalidRole
	}
	return role, nil
}
