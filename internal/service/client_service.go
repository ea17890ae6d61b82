package service

import (
	"context"

	"github.com/Unsighted/Dashboard-backend/internal/domain"
	"github.com/Unsighted/Dashboard-backend/internal/dto"
	"github.com/Unsighted/Dashboard-backend/internal/repository"
	"github.com/Unsighted/Dashboard-backend/pkg/logger"
)

// ClientService defines the interface for client directory operations
type ClientService interface {
	Create(ctx context.Context, req *dto.CreateClientRequest) (*domain.Client, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, id int64, req *dto.UpdateClientRequest) (*domain.Client, error)
	Delete(ctx context.Context, id int64) error
}

type clientService struct {
	repo repository.ClientRepository
	log  *logger.Logger
}

// NewClientService creates a new ClientService
func NewClientService(repo repository.ClientRepository, log *logger.Logger) ClientService {
	return &clientService{repo: repo, log: log}
}

func (s *clientService) Create(ctx context.Context, req *dto.CreateClientRequest) (*domain.Client, error) {
	client := req.ToClient()
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	return client, nil
}

func (s *clientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.repo.List(ctx)
}

func (s *clientService) Update(ctx context.Context, id int64, req *dto.UpdateClientRequest) (*domain.Client, error) {
	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}

	req.Apply(client)

	if err := s.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrClientNotFound
	}
	return nil
}
