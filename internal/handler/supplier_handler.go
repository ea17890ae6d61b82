package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Unsighted/Dashboard-backend/internal/domain"
	"github.com/Unsighted/Dashboard-backend/internal/dto"
	"github.com/Unsighted/Dashboard-backend/internal/service"
	"github.com/Unsighted/Dashboard-backend/pkg/response"
)

// SupplierHandler handles supplier directory HTTP requests
type SupplierHandler struct {
	suppliers service.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(suppliers service.SupplierService) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

// Create adds a supplier
// POST /api/suppliers
func (h *SupplierHandler) Create(c *gin.Context) {
	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	supplier, err := h.suppliers.Create(c.Request.Context(), &req)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, supplier)
}

// List lists all suppliers
// GET /api/suppliers
func (h *SupplierHandler) List(c *gin.Context) {
	suppliers, err := h.suppliers.List(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if suppliers == nil {
		suppliers = []*domain.Supplier{}
	}
	c.JSON(http.StatusOK, suppliers)
}

// Get retrieves one supplier
// GET /api/suppliers/:id
func (h *SupplierHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	supplier, err := h.suppliers.GetByID(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, supplier)
}

// Update applies a partial update to a supplier
// PUT /api/suppliers/:id
func (h *SupplierHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	supplier, err := h.suppliers.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, supplier)
}

// Delete removes a supplier
// DELETE /api/suppliers/:id
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.suppliers.Delete(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("supplier deleted"))
}
