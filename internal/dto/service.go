package dto

import "github.com/Unsighted/Dashboard-backend/internal/domain"

// CreateServiceRequest represents a new catalog entry
type CreateServiceRequest struct {
	Name          string   `json:"name" binding:"required,min=2"`
	Price         float64  `json:"price" binding:"required,gte=0"`
	OriginalPrice float64  `json:"originalPrice" binding:"gte=0"`
	Duration      int      `json:"duration" binding:"required,gt=0"`
	Category      string   `json:"category" binding:"required"`
	Benefits      []string `json:"benefits"`
	Image         string   `json:"image"`
	Availability  string   `json:"availability"`
}

// UpdateServiceRequest represents a partial catalog update
type UpdateServiceRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=2"`
	Price         *float64 `json:"price" binding:"omitempty,gte=0"`
	OriginalPrice *float64 `json:"originalPrice" binding:"omitempty,gte=0"`
	Duration      *int     `json:"duration" binding:"omitempty,gt=0"`
	Category      *string  `json:"category"`
	Benefits      []string `json:"benefits"`
	Image         *string  `json:"image"`
	Availability  *string  `json:"availability"`
}

// ToService converts the create request to a domain service
func (r *CreateServiceRequest) ToService() *domain.Service {
	benefits := r.Benefits
	if benefits == nil {
		benefits = []string{}
	}
	return &domain.Service{
		Name:          r.Name,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Duration:      r.Duration,
		Category:      r.Category,
		Benefits:      benefits,
		Image:         r.Image,
		Availability:  r.Availability,
	}
}

// Apply merges the update request into an existing service
func (r *UpdateServiceRequest) Apply(svc *domain.Service) {
	if r.Name != nil {
		svc.Name = *r.Name
	}
	if r.Price != nil {
		svc.Price = *r.Price
	}
	if r.OriginalPrice != nil {
		svc.OriginalPrice = *r.OriginalPrice
	}
	if r.Duration != nil {
		svc.Duration = *r.Duration
	}
	if r.Category != nil {
		svc.Category = *r.Category
	}
	if r.Benefits != nil {
		svc.Benefits = r.Benefits
	}
	if r.Image != nil {
		svc.Image = *r.Image
	}
	if r.Availability != nil {
		svc.Availability = *r.Availability
	}
}
