package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Unsighted/Dashboard-backend/internal/domain"
	"github.com/Unsighted/Dashboard-backend/internal/dto"
	"github.com/Unsighted/Dashboard-backend/internal/service"
	"github.com/Unsighted/Dashboard-backend/pkg/response"
)

// ServiceHandler handles service catalog HTTP requests
type ServiceHandler struct {
	catalog service.CatalogService
}

// NewServiceHandler creates a new ServiceHandler
func NewServiceHandler(catalog service.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

// Create adds a catalog entry
// POST /api/services
func (h *ServiceHandler) Create(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	svc, err := h.catalog.Create(c.Request.Context(), &req)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// List lists the catalog, optionally filtered by category
// GET /api/services?category=hair
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.catalog.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if services == nil {
		services = []*domain.Service{}
	}
	c.JSON(http.StatusOK, services)
}

// Get retrieves one catalog entry
// GET /api/services/:id
func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	svc, err := h.catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// Update applies a partial update to a catalog entry
// PUT /api/services/:id
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	svc, err := h.catalog.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// Delete removes a catalog entry
// DELETE /api/services/:id
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("service deleted"))
}
