package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Unsighted/Dashboard-backend/internal/domain"
	"github.com/Unsighted/Dashboard-backend/internal/dto"
	"github.com/Unsighted/Dashboard-backend/internal/service"
	"github.com/Unsighted/Dashboard-backend/pkg/response"
)

// AppointmentHandler handles appointment HTTP requests
type AppointmentHandler struct {
	appointments service.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler
func NewAppointmentHandler(appointments service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

// parseID extracts the numeric id path parameter, writing a 400 on failure
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, response.BadRequest("invalid id"))
		return 0, false
	}
	return id, true
}

// writeDomainError maps a service error to its HTTP response
func writeDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, response.NotFound(err.Error()))
	case domain.IsValidationError(err):
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, response.Conflict(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, response.InternalError("internal error"))
	}
}

// Create books a new appointment
// POST /api/appointments
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	appt, err := h.appointments.Create(c.Request.Context(), &req)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appt)
}

// List lists appointments, optionally filtered by status or date
// GET /api/appointments?status=pending&date=2026-09-15
func (h *AppointmentHandler) List(c *gin.Context) {
	appts, err := h.appointments.List(c.Request.Context(), c.Query("status"), c.Query("date"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if appts == nil {
		appts = []*domain.Appointment{}
	}
	c.JSON(http.StatusOK, appts)
}

// Get retrieves one appointment
// GET /api/appointments/:id
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	appt, err := h.appointments.GetByID(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// Update applies a partial update to an appointment
// PUT /api/appointments/:id
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	appt, err := h.appointments.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// UpdateStatus changes only the appointment status
// PATCH /api/appointments/:id/status
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("status is required"))
		return
	}

	appt, err := h.appointments.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// Delete removes an appointment
// DELETE /api/appointments/:id
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.appointments.Delete(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("appointment deleted"))
}
