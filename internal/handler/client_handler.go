package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Unsighted/Dashboard-backend/internal/domain"
	"github.com/Unsighted/Dashboard-backend/internal/dto"
	"github.com/Unsighted/Dashboard-backend/internal/service"
	"github.com/Unsighted/Dashboard-backend/pkg/response"
)

// ClientHandler handles client directory HTTP requests
type ClientHandler struct {
	clients service.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clients service.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// Create adds a client
// POST /api/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	client, err := h.clients.Create(c.Request.Context(), &req)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// List lists all clients
// GET /api/clients
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clients.List(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if clients == nil {
		clients = []*domain.Client{}
	}
	c.JSON(http.StatusOK, clients)
}

// Get retrieves one client
// GET /api/clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	client, err := h.clients.GetByID(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// Update applies a partial update to a client
// PUT /api/clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	client, err := h.clients.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// Delete removes a client
// DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.clients.Delete(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("client deleted"))
}
