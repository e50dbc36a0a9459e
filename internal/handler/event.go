package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ticketera/escenario-service/internal/seating"
)

// CreateEvent handles POST /v1/escenarios/:id/eventos.
func (h *Handler) CreateEvent(c echo.Context) error {
	scenarioID, ok := paramUUID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if _, err := h.Scenarios.GetByID(c.Request().Context(), scenarioID); err != nil {
		return writeError(c, err)
	}
	var body struct {
		Nombre string `json:"nombre"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	e, err := seating.NewEvent(scenarioID, body.Nombre)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.Events.Create(c.Request().Context(), &e); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, e)
}

// ListEvents handles GET /v1/escenarios/:id/eventos.
func (h *Handler) ListEvents(c echo.Context) error {
	scenarioID, ok := paramUUID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if _, err := h.Scenarios.GetByID(c.Request().Context(), scenarioID); err != nil {
		return writeError(c, err)
	}
	items, err := h.Events.ListByScenario(c.Request().Context(), scenarioID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}
