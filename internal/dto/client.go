package dto

import "github.com/Unsighted/Dashboard-backend/internal/domain"

// CreateClientRequest represents a new client directory entry
type CreateClientRequest struct {
	Name    string `json:"name" binding:"required,min=2"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
}

// UpdateClientRequest represents a partial client update
type UpdateClientRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address"`
}

// ToClient converts the create request to a domain client
func (r *CreateClientRequest) ToClient() *domain.Client {
	return &domain.Client{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
	}
}

// Apply merges the update request into an existing client
func (r *UpdateClientRequest) Apply(client *domain.Client) {
	if r.Name != nil {
		client.Name = *r.Name
	}
	if r.Phone != nil {
		client.Phone = *r.Phone
	}
	if r.Email != nil {
		client.Email = *r.Email
	}
	if r.Address != nil {
		client.Address = *r.Address
	}
}
