package service

import (
	"context"

	"github.com/Unsighted/Dashboard-backend/internal/domain"
	"github.com/Unsighted/Dashboard-backend/internal/dto"
	"github.com/Unsighted/Dashboard-backend/internal/repository"
	"github.com/Unsighted/Dashboard-backend/pkg/logger"
)

// SupplierService defines the interface for supplier directory operations
type SupplierService interface {
	Create(ctx context.Context, req *dto.CreateSupplierRequest) (*domain.Supplier, error)
	GetByID(ctx context.Context, id int64) (*domain.Supplier, error)
	List(ctx context.Context) ([]*domain.Supplier, error)
	Update(ctx context.Context, id int64, req *dto.UpdateSupplierRequest) (*domain.Supplier, error)
	Delete(ctx context.Context, id int64) error
}

type supplierService struct {
	repo repository.SupplierRepository
	log  *logger.Logger
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(repo repository.SupplierRepository, log *logger.Logger) SupplierService {
	return &supplierService{repo: repo, log: log}
}

func (s *supplierService) Create(ctx context.Context, req *dto.CreateSupplierRequest) (*domain.Supplier, error) {
	supplier := req.ToSupplier()
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) GetByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	supplier, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}
	return supplier, nil
}

func (s *supplierService) List(ctx context.Context) ([]*domain.Supplier, error) {
	return s.repo.List(ctx)
}

func (s *supplierService) Update(ctx context.Context, id int64, req *dto.UpdateSupplierRequest) (*domain.Supplier, error) {
	supplier, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}

	req.Apply(supplier)

	if err := s.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrSupplierNotFound
	}
	return nil
}
