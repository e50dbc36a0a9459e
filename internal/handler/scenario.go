package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ticketera/escenario-service/internal/repository"
	"github.com/ticketera/escenario-service/internal/seating"
)

// CreateScenario handles POST /v1/escenarios.
func (h *Handler) CreateScenario(c echo.Context) error {
	var in seating.ScenarioInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	s, err := seating.NewScenario(in)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.Scenarios.Create(c.Request().Context(), &s); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

// GetScenario handles GET /v1/escenarios/:id.
func (h *Handler) GetScenario(c echo.Context) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	s, err := h.Scenarios.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

// SearchScenarios handles GET /v1/escenarios with optional q, ciudad and
// activo filters plus 1-based pagination.  Absent filters mean no
// constraint; total is the full match count so clients can compute the
// page count.
func (h *Handler) SearchScenarios(c echo.Context) error {
	f := repository.ScenarioSearch{
		Query:    strings.TrimSpace(c.QueryParam("q")),
		Ciudad:   strings.TrimSpace(c.QueryParam("ciudad")),
		Page:     1,
		PageSize: 20,
	}
	if v := strings.ToLower(strings.TrimSpace(c.QueryParam("activo"))); v == "true" || v == "1" || v == "false" || v == "0" {
		want := v == "true" || v == "1"
		f.Activo = &want
	}
	if v := c.QueryParam("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid page"})
		}
		f.Page = n
	}
	if v := c.QueryParam("page_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid page_size"})
		}
		f.PageSize = n
	}
	items, total, err := h.Scenarios.Search(c.Request().Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"items":     items,
		"total":     total,
		"page":      f.Page,
		"page_size": f.PageSize,
	})
}

// UpdateScenario handles PATCH /v1/escenarios/:id.  Only supplied fields
// change; capacidad_total is never writable and activo=false is the soft
// delete.
func (h *Handler) UpdateScenario(c echo.Context) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	cur, err := h.Scenarios.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	var body struct {
		Nombre      *string `json:"nombre"`
		Descripcion *string `json:"descripcion"`
		Ubicacion   *string `json:"ubicacion"`
		Ciudad      *string `json:"ciudad"`
		Estado      *string `json:"estado"`
		Pais        *string `json:"pais"`
		Activo      *bool   `json:"activo"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if body.Nombre != nil {
		nombre := strings.TrimSpace(*body.Nombre)
		if nombre == "" {
			return writeError(c, seating.ErrEmptyName)
		}
		cur.Nombre = nombre
	}
	if body.Descripcion != nil {
		cur.Descripcion = strings.TrimSpace(*body.Descripcion)
	}
	if body.Ubicacion != nil {
		cur.Ubicacion = strings.TrimSpace(*body.Ubicacion)
	}
	if body.Ciudad != nil {
		cur.Ciudad = strings.TrimSpace(*body.Ciudad)
	}
	if body.Estado != nil {
		cur.Estado = strings.TrimSpace(*body.Estado)
	}
	if body.Pais != nil {
		cur.Pais = strings.TrimSpace(*body.Pais)
	}
	if body.Activo != nil {
		cur.Activo = *body.Activo
	}
	if err := h.Scenarios.Update(c.Request().Context(), cur); err != nil {
		return writeError(c, err)
	}
	fresh, err := h.Scenarios.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, fresh)
}

// DeleteScenario handles DELETE /v1/escenarios/:id.  Events, zones and
// seats cascade at the store; deletion is permitted with or without
// attached seats.
func (h *Handler) DeleteScenario(c echo.Context) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if err := h.Scenarios.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
