package di

import (
	"github.com/Unsighted/Dashboard-backend/internal/handler"
	"github.com/Unsighted/Dashboard-backend/internal/repository"
	"github.com/Unsighted/Dashboard-backend/internal/service"
	"github.com/Unsighted/Dashboard-backend/internal/token"
	"github.com/Unsighted/Dashboard-backend/pkg/database"
	"github.com/Unsighted/Dashboard-backend/pkg/logger"
	"github.com/Unsighted/Dashboard-backend/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB     *database.PostgresDB
	Redis  *redis.Client
	Issuer *token.Issuer

	// Repositories
	UserRepo        repository.UserRepository
	AppointmentRepo repository.AppointmentRepository
	ServiceRepo     repository.ServiceRepository
	ClientRepo      repository.ClientRepository
	SupplierRepo    repository.SupplierRepository

	// Services
	AuthService        service.AuthService
	AppointmentService service.AppointmentService
	CatalogService     service.CatalogService
	ClientService      service.ClientService
	SupplierService    service.SupplierService
	UserService        service.UserService

	// Handlers
	AuthHandler        *handler.AuthHandler
	AppointmentHandler *handler.AppointmentHandler
	ServiceHandler     *handler.ServiceHandler
	ClientHandler      *handler.ClientHandler
	SupplierHandler    *handler.SupplierHandler
	UserHandler        *handler.UserHandler
	HealthHandler      *handler.HealthHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB     *database.PostgresDB
	Redis  *redis.Client // nil disables caching
	Issuer *token.Issuer
	Log    *logger.Logger
}

// NewContainer wires repositories, services and handlers
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:     cfg.DB,
		Redis:  cfg.Redis,
		Issuer: cfg.Issuer,
	}

	pool := cfg.DB.Pool()

	c.UserRepo = repository.NewPostgresUserRepository(pool)
	c.AppointmentRepo = repository.NewPostgresAppointmentRepository(pool)
	c.ClientRepo = repository.NewPostgresClientRepository(pool)
	c.SupplierRepo = repository.NewPostgresSupplierRepository(pool)

	serviceRepo := repository.ServiceRepository(repository.NewPostgresServiceRepository(pool))
	if cfg.Redis != nil {
		serviceRepo = repository.NewCachedServiceRepository(serviceRepo, cfg.Redis, cfg.Log)
	}
	c.ServiceRepo = serviceRepo

	c.AuthService = service.NewAuthService(c.UserRepo, cfg.Issuer, cfg.Log)
	c.AppointmentService = service.NewAppointmentService(c.AppointmentRepo, cfg.Log)
	c.CatalogService = service.NewCatalogService(c.ServiceRepo, cfg.Log)
	c.ClientService = service.NewClientService(c.ClientRepo, cfg.Log)
	c.SupplierService = service.NewSupplierService(c.SupplierRepo, cfg.Log)
	c.UserService = service.NewUserService(c.UserRepo, cfg.Log)

	c.AuthHandler = handler.NewAuthHandler(c.AuthService)
	c.AppointmentHandler = handler.NewAppointmentHandler(c.AppointmentService)
	c.ServiceHandler = handler.NewServiceHandler(c.CatalogService)
	c.ClientHandler = handler.NewClientHandler(c.ClientService)
	c.SupplierHandler = handler.NewSupplierHandler(c.SupplierService)
	c.UserHandler = handler.NewUserHandler(c.UserService)
	c.HealthHandler = handler.NewHealthHandler(cfg.DB, cfg.Redis)

	return c
}
