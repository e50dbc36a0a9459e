package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ticketera/escenario-service/internal/queue"
	"github.com/ticketera/escenario-service/internal/seating"
)

// zoneRequest is the payload shared by zone creation and layout
// regeneration: a numbering scheme plus, in MANUAL mode, the explicit
// seat list.
type zoneRequest struct {
	Name      string                  `json:"name"`
	Numbering seating.NumberingScheme `json:"numbering"`
	Seats     []seating.SeatSpec      `json:"seats"`
}

// CreateZone handles POST /v1/eventos/:event_id/zonas.  The numbering
// scheme is expanded into the full seat inventory; the scenario capacity is
// recomputed once the batch is durably stored.
func (h *Handler) CreateZone(c echo.Context) error {
	eventID, ok := paramUUID(c, "event_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid event_id"})
	}
	event, err := h.Events.GetByID(c.Request().Context(), eventID)
	if err != nil {
		return writeError(c, err)
	}
	var body zoneRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return writeError(c, seating.ErrEmptyName)
	}
	now := time.Now().UTC()
	zone := seating.Zone{
		ID:        uuid.New(),
		EventID:   eventID,
		Name:      name,
		Numbering: body.Numbering,
		CreatedAt: now,
		UpdatedAt: now,
	}
	seats, err := seating.Generate(zone.ID, eventID, body.Numbering, body.Seats)
	if err != nil {
		return writeError(c, err)
	}
	zone = seating.AttachSeats(zone, seats)
	if err := h.Zones.Create(c.Request().Context(), &zone); err != nil {
		return writeError(c, err)
	}
	if err := h.Seats.CreateBulk(c.Request().Context(), seats); err != nil {
		return writeError(c, err)
	}
	total, err := h.Scenarios.RecalculateCapacity(c.Request().Context(), event.ScenarioID)
	if err != nil {
		return writeError(c, err)
	}
	h.publishLayoutChange(c, event, &zone, "created", zone.SeatCount(), total)
	return c.JSON(http.StatusCreated, map[string]any{
		"zone":            zone,
		"seat_count":      zone.SeatCount(),
		"capacidad_total": total,
	})
}

// ListZones handles GET /v1/eventos/:event_id/zonas.
func (h *Handler) ListZones(c echo.Context) error {
	eventID, ok := paramUUID(c, "event_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid event_id"})
	}
	if _, err := h.Events.GetByID(c.Request().Context(), eventID); err != nil {
		return writeError(c, err)
	}
	items, err := h.Zones.ListByEvent(c.Request().Context(), eventID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// RegenerateLayout handles PUT /v1/eventos/:event_id/zonas/:zone_id/layout.
// The zone's seats are wiped and regenerated from the submitted scheme
// (replace-all, never an incremental merge) so a retried request converges
// on the same layout.
func (h *Handler) RegenerateLayout(c echo.Context) error {
	eventID, ok := paramUUID(c, "event_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid event_id"})
	}
	zoneID, ok := paramUUID(c, "zone_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid zone_id"})
	}
	event, err := h.Events.GetByID(c.Request().Context(), eventID)
	if err != nil {
		return writeError(c, err)
	}
	zone, err := h.Zones.GetByIDAndEvent(c.Request().Context(), zoneID, eventID)
	if err != nil {
		return writeError(c, err)
	}
	var body zoneRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	seats, err := seating.Generate(zoneID, eventID, body.Numbering, body.Seats)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.Seats.DeleteByZone(c.Request().Context(), zoneID); err != nil {
		return writeError(c, err)
	}
	if err := h.Seats.CreateBulk(c.Request().Context(), seats); err != nil {
		return writeError(c, err)
	}
	zone.Numbering = body.Numbering
	if err := h.Zones.UpdateNumbering(c.Request().Context(), zone); err != nil {
		return writeError(c, err)
	}
	total, err := h.Scenarios.RecalculateCapacity(c.Request().Context(), event.ScenarioID)
	if err != nil {
		return writeError(c, err)
	}
	h.publishLayoutChange(c, event, zone, "regenerated", len(seats), total)
	return c.JSON(http.StatusOK, map[string]any{
		"zone_id":         zoneID,
		"seat_count":      len(seats),
		"capacidad_total": total,
	})
}

// DeleteZone handles DELETE /v1/eventos/:event_id/zonas/:zone_id.  Seats
// are removed with the zone and the scenario capacity shrinks accordingly.
func (h *Handler) DeleteZone(c echo.Context) error {
	eventID, ok := paramUUID(c, "event_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid event_id"})
	}
	zoneID, ok := paramUUID(c, "zone_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid zone_id"})
	}
	event, err := h.Events.GetByID(c.Request().Context(), eventID)
	if err != nil {
		return writeError(c, err)
	}
	zone, err := h.Zones.GetByIDAndEvent(c.Request().Context(), zoneID, eventID)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.Seats.DeleteByZone(c.Request().Context(), zoneID); err != nil {
		return writeError(c, err)
	}
	if err := h.Zones.Delete(c.Request().Context(), zoneID); err != nil {
		return writeError(c, err)
	}
	total, err := h.Scenarios.RecalculateCapacity(c.Request().Context(), event.ScenarioID)
	if err != nil {
		return writeError(c, err)
	}
	h.publishLayoutChange(c, event, zone, "deleted", 0, total)
	return c.NoContent(http.StatusNoContent)
}

// publishLayoutChange emits a layout.changed event best-effort; the
// publisher already logs failures.
func (h *Handler) publishLayoutChange(c echo.Context, event *seating.Event, zone *seating.Zone, action string, seatCount, total int) {
	_ = h.Publish(c.Request().Context(), queue.LayoutChangedEvent{
		ScenarioID:     event.ScenarioID.String(),
		EventID:        event.ID.String(),
		ZoneID:         zone.ID.String(),
		ZoneName:       zone.Name,
		Action:         action,
		SeatCount:      seatCount,
		CapacidadTotal: total,
		OccurredAt:     time.Now().UTC().Format(time.RFC3339),
	})
}
