package dto

import "github.com/Unsighted/Dashboard-backend/internal/domain"

// CreateSupplierRequest represents a new supplier directory entry
type CreateSupplierRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Contact  string `json:"contact"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
	Category string `json:"category"`
}

// UpdateSupplierRequest represents a partial supplier update
type UpdateSupplierRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2"`
	Contact  *string `json:"contact"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Category *string `json:"category"`
}

// ToSupplier converts the create request to a domain supplier
func (r *CreateSupplierRequest) ToSupplier() *domain.Supplier {
	return &domain.Supplier{
		Name:     r.Name,
		Contact:  r.Contact,
		Phone:    r.Phone,
		Email:    r.Email,
		Category: r.Category,
	}
}

// Apply merges the update request into an existing supplier
func (r *UpdateSupplierRequest) Apply(supplier *domain.Supplier) {
	if r.Name != nil {
		supplier.Name = *r.Name
	}
	if r.Contact != nil {
		supplier.Contact = *r.Contact
	}
	if r.Phone != nil {
		supplier.Phone = *r.Phone
	}
	if r.Email != nil {
		supplier.Email = *r.Email
	}
	if r.Category != nil {
		supplier.Category = *r.Category
	}
}
