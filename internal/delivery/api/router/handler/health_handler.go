package handler

import (
	"net/http"

	"taskmanager/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves the unauthenticated liveness endpoints.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Root confirms the API is up.
func (h *HealthHandler) Root(c echo.Context) error {
	return response.Message(c, http.StatusOK, "Task Manager API is running!")
}

// Health is polled by load balancers and container health checks.
func (h *HealthHandler) Health(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "healthy"})
}
