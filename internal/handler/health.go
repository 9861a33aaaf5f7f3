package handler

import (
	"net/http"

	"scriptmarket/internal/service"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	healthService service.HealthService
}

func NewHealthHandler(healthService service.HealthService) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

func (h *HealthHandler) Health(c echo.Context) error {
	resp := h.healthService.Check(c.Request().Context())

	status := http.StatusOK
	if resp.Database != "ok" {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, resp)
}
