package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Unsighted/Dashboard-backend/internal/domain"
	"github.com/Unsighted/Dashboard-backend/internal/dto"
	"github.com/Unsighted/Dashboard-backend/internal/repository"
	"github.com/Unsighted/Dashboard-backend/pkg/logger"
)

// CatalogService defines the interface for service catalog operations
type CatalogService interface {
	Create(ctx context.Context, req *dto.CreateServiceRequest) (*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context, category string) ([]*domain.Service, error)
	Update(ctx context.Context, id int64, req *dto.UpdateServiceRequest) (*domain.Service, error)
	Delete(ctx context.Context, id int64) error
}

type catalogService struct {
	repo repository.ServiceRepository
	log  *logger.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(repo repository.ServiceRepository, log *logger.Logger) CatalogService {
	return &catalogService{repo: repo, log: log}
}

func (s *catalogService) Create(ctx context.Context, req *dto.CreateServiceRequest) (*domain.Service, error) {
	svc := req.ToService()
	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, err
	}

	s.log.Info("service created",
		zap.Int64("service_id", svc.ID),
		zap.String("name", svc.Name),
	)
	return svc, nil
}

func (s *catalogService) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, domain.ErrServiceNotFound
	}
	return svc, nil
}

func (s *catalogService) List(ctx context.Context, category string) ([]*domain.Service, error) {
	if category != "" {
		return s.repo.ListByCategory(ctx, category)
	}
	return s.repo.List(ctx)
}

func (s *catalogService) Update(ctx context.Context, id int64, req *dto.UpdateServiceRequest) (*domain.Service, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, domain.ErrServiceNotFound
	}

	req.Apply(svc)

	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *catalogService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrServiceNotFound
	}
	return nil
}
