package handler

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ticketera/escenario-service/internal/seating"
)

// ListSeats handles GET /v1/eventos/:event_id/zonas/:zone_id/asientos.
// Both ids scope the query, so a zone belonging to another event simply
// yields an empty list.
func (h *Handler) ListSeats(c echo.Context) error {
	eventID, ok := paramUUID(c, "event_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid event_id"})
	}
	zoneID, ok := paramUUID(c, "zone_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid zone_id"})
	}
	seats, err := h.Seats.ListByZone(c.Request().Context(), eventID, zoneID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"zone_id": zoneID,
		"count":   len(seats),
		"items":   seats,
	})
}

// SeatLayoutView handles GET /v1/eventos/:event_id/zonas/:zone_id/asientos/layout.
// Positioned seats are grouped into rows and rendered left to right;
// unpositioned seats are listed separately.
func (h *Handler) SeatLayoutView(c echo.Context) error {
	eventID, ok := paramUUID(c, "event_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid event_id"})
	}
	zoneID, ok := paramUUID(c, "zone_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid zone_id"})
	}
	zone, err := h.Zones.GetByIDAndEvent(c.Request().Context(), zoneID, eventID)
	if err != nil {
		return writeError(c, err)
	}
	seats, err := h.Seats.ListByZone(c.Request().Context(), eventID, zoneID)
	if err != nil {
		return writeError(c, err)
	}

	byRow := map[int][]seating.Seat{}
	var unpositioned []string
	for _, s := range seats {
		if s.Position == nil {
			unpositioned = append(unpositioned, s.Label)
			continue
		}
		byRow[s.Position.StartRow] = append(byRow[s.Position.StartRow], s)
	}
	rowNums := make([]int, 0, len(byRow))
	for r := range byRow {
		rowNums = append(rowNums, r)
	}
	sort.Ints(rowNums)

	rows := make([]string, 0, len(rowNums))
	for _, r := range rowNums {
		row := byRow[r]
		sort.Slice(row, func(i, j int) bool {
			return row[i].Position.StartCol < row[j].Position.StartCol
		})
		cells := make([]string, 0, len(row))
		for _, s := range row {
			cells = append(cells, fmt.Sprintf("[%s %s]", s.Label, s.State))
		}
		rows = append(rows, fmt.Sprintf("row %d: %s", r, strings.Join(cells, " ")))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"zone_id":      zone.ID,
		"zone_name":    zone.Name,
		"rows":         rows,
		"unpositioned": unpositioned,
		"count":        len(seats),
	})
}

// GetSeat handles GET /v1/eventos/:event_id/zonas/:zone_id/asientos/:seat_id.
// The zone is verified first so a wrong zone id yields zone-not-found
// rather than a misleading seat error.
func (h *Handler) GetSeat(c echo.Context) error {
	eventID, ok := paramUUID(c, "event_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid event_id"})
	}
	zoneID, ok := paramUUID(c, "zone_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid zone_id"})
	}
	seatID, ok := paramUUID(c, "seat_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid seat_id"})
	}
	if _, err := h.Zones.GetByIDAndEvent(c.Request().Context(), zoneID, eventID); err != nil {
		return writeError(c, err)
	}
	seat, err := h.Seats.GetByIDInZone(c.Request().Context(), seatID, zoneID, eventID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, seat)
}

// UpdateSeat handles PATCH /v1/eventos/:event_id/zonas/:zone_id/asientos/:seat_id.
// Label, state and meta are patchable; a label change is validated for
// uniqueness against the rest of the zone before anything is written.
func (h *Handler) UpdateSeat(c echo.Context) error {
	eventID, ok := paramUUID(c, "event_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid event_id"})
	}
	zoneID, ok := paramUUID(c, "zone_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid zone_id"})
	}
	seatID, ok := paramUUID(c, "seat_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid seat_id"})
	}
	zone, err := h.Zones.GetByIDAndEvent(c.Request().Context(), zoneID, eventID)
	if err != nil {
		return writeError(c, err)
	}
	var body struct {
		Label *string            `json:"label"`
		State *seating.SeatState `json:"state"`
		Meta  map[string]string  `json:"meta"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if body.State != nil && !seating.ValidSeatState(*body.State) {
		return writeError(c, fmt.Errorf("%w: unknown state %q", seating.ErrInvalidSeatSpec, *body.State))
	}
	seats, err := h.Seats.ListByZone(c.Request().Context(), eventID, zoneID)
	if err != nil {
		return writeError(c, err)
	}
	patched, err := seating.UpdateSeat(seating.AttachSeats(*zone, seats), seatID, seating.SeatPatch{
		Label: body.Label,
		State: body.State,
		Meta:  body.Meta,
	})
	if err != nil {
		return writeError(c, err)
	}
	var updated *seating.Seat
	for i := range patched.Seats {
		if patched.Seats[i].ID == seatID {
			updated = &patched.Seats[i]
			break
		}
	}
	if err := h.Seats.Update(c.Request().Context(), updated); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteSeat handles DELETE /v1/eventos/:event_id/zonas/:zone_id/asientos/:seat_id.
// The scenario capacity is recomputed once the seat is gone.
func (h *Handler) DeleteSeat(c echo.Context) error {
	eventID, ok := paramUUID(c, "event_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid event_id"})
	}
	zoneID, ok := paramUUID(c, "zone_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid zone_id"})
	}
	seatID, ok := paramUUID(c, "seat_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid seat_id"})
	}
	event, err := h.Events.GetByID(c.Request().Context(), eventID)
	if err != nil {
		return writeError(c, err)
	}
	if _, err := h.Zones.GetByIDAndEvent(c.Request().Context(), zoneID, eventID); err != nil {
		return writeError(c, err)
	}
	if _, err := h.Seats.GetByIDInZone(c.Request().Context(), seatID, zoneID, eventID); err != nil {
		return writeError(c, err)
	}
	if err := h.Seats.Delete(c.Request().Context(), seatID, zoneID); err != nil {
		return writeError(c, err)
	}
	if _, err := h.Scenarios.RecalculateCapacity(c.Request().Context(), event.ScenarioID); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
