package repository

import (
	"context"

	"github.com/Unsighted/Dashboard-backend/internal/domain"
)

// UserRepository defines the interface for user data access.
// The refresh token operations act on the single token column of the user
// row, so a user has at most one live refresh token at a time.
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *domain.User) error
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// List retrieves all users
	List(ctx context.Context) ([]*domain.User, error)
	// Update updates a user
	Update(ctx context.Context, user *domain.User) error
	// Delete deletes a user
	Delete(ctx context.Context, id int64) (bool, error)
	// ExistsByEmail checks if a user exists with the given email
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// StoreRefreshToken replaces the stored refresh token for the user
	StoreRefreshToken(ctx context.Context, userID int64, token string) error
	// RefreshTokenMatches reports whether the presented token equals the stored one
	RefreshTokenMatches(ctx context.Context, userID int64, token string) (bool, error)
	// ClearRefreshToken removes the stored refresh token, ending the session
	ClearRefreshToken(ctx context.Context, userID int64) error
}

// AppointmentRepository defines the interface for appointment data access
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) error
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context) ([]*domain.Appointment, error)
	ListByStatus(ctx context.Context, status domain.AppointmentStatus) ([]*domain.Appointment, error)
	ListByDate(ctx context.Context, date string) ([]*domain.Appointment, error)
	Update(ctx context.Context, appt *domain.Appointment) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// ServiceRepository defines the interface for service catalog data access
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) error
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	ListByCategory(ctx context.Context, category string) ([]*domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// ClientRepository defines the interface for client directory data access
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// SupplierRepository defines the interface for supplier directory data access
type SupplierRepository interface {
	Create(ctx context.Context, supplier *domain.Supplier) error
	GetByID(ctx context.Context, id int64) (*domain.Supplier, error)
	List(ctx context.Context) ([]*domain.Supplier, error)
	Update(ctx context.Context, supplier *domain.Supplier) error
	Delete(ctx context.Context, id int64) (bool, error)
}
