package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Unsighted/Dashboard-backend/internal/domain"
	"github.com/Unsighted/Dashboard-backend/internal/service"
	"github.com/Unsighted/Dashboard-backend/pkg/logger"
)

// memAppointmentRepo is a map-backed AppointmentRepository
type memAppointmentRepo struct {
	appointments map[int64]*domain.Appointment
	nextID       int64
}

func newMemAppointmentRepo() *memAppointmentRepo {
	return &memAppointmentRepo{appointments: make(map[int64]*domain.Appointment), nextID: 1}
}

func (r *memAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) error {
	appt.ID = r.nextID
	r.nextID++
	r.appointments[appt.ID] = appt
	return nil
}

func (r *memAppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	return r.appointments[id], nil
}

func (r *memAppointmentRepo) List(ctx context.Context) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, appt := range r.appointments {
		out = append(out, appt)
	}
	return out, nil
}

func (r *memAppointmentRepo) ListByStatus(ctx context.Context, status domain.AppointmentStatus) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, appt := range r.appointments {
		if appt.Status == status {
			out = append(out, appt)
		}
	}
	return out, nil
}

func (r *memAppointmentRepo) ListByDate(ctx context.Context, date string) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, appt := range r.appointments {
		if appt.Date.Format("2006-01-02") == date {
			out = append(out, appt)
		}
	}
	return out, nil
}

func (r *memAppointmentRepo) Update(ctx context.Context, appt *domain.Appointment) error {
	r.appointments[appt.ID] = appt
	return nil
}

func (r *memAppointmentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := r.appointments[id]; !ok {
		return false, nil
	}
	delete(r.appointments, id)
	return true, nil
}

func newAppointmentRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAppointmentHandler(service.NewAppointmentService(newMemAppointmentRepo(), logger.Get()))

	r := gin.New()
	api := r.Group("/api/appointments")
	api.POST("", h.Create)
	api.GET("", h.List)
	api.GET("/:id", h.Get)
	api.PUT("/:id", h.Update)
	api.PATCH("/:id/status", h.UpdateStatus)
	api.DELETE("/:id", h.Delete)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validAppointmentBody() gin.H {
	return gin.H{
		"clientName": "Jordan Smith",
		"service":    "Haircut",
		"date":       "2026-09-15",
		"time":       "14:30",
		"duration":   45,
		"price":      35,
	}
}

func TestAppointmentHandler_Create(t *testing.T) {
	r := newAppointmentRouter()

	t.Run("created", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/appointments", validAppointmentBody())
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"pending"`)
	})

	t.Run("missing required field", func(t *testing.T) {
		body := validAppointmentBody()
		delete(body, "clientName")
		w := doJSON(r, http.MethodPost, "/api/appointments", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid status", func(t *testing.T) {
		body := validAppointmentBody()
		body["status"] = "postponed"
		w := doJSON(r, http.MethodPost, "/api/appointments", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAppointmentHandler_GetAndList(t *testing.T) {
	r := newAppointmentRouter()

	w := doJSON(r, http.MethodPost, "/api/appointments", validAppointmentBody())
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("list", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/appointments", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var appts []json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &appts))
		assert.Len(t, appts, 1)
	})

	t.Run("list with status filter", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/appointments?status=completed", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("get", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/appointments/1", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("get missing", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/appointments/99", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("get bad id", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/appointments/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAppointmentHandler_StatusUpdate(t *testing.T) {
	r := newAppointmentRouter()

	w := doJSON(r, http.MethodPost, "/api/appointments", validAppointmentBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPatch, "/api/appointments/1/status", gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"confirmed"`)

	w = doJSON(r, http.MethodPatch, "/api/appointments/1/status", gin.H{"status": "bogus"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPatch, "/api/appointments/99/status", gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAppointmentHandler_Delete(t *testing.T) {
	r := newAppointmentRouter()

	w := doJSON(r, http.MethodPost, "/api/appointments", validAppointmentBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/appointments/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/appointments/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
