// Package handler maps HTTP requests onto the seating core and the
// repository boundary.  Handlers consume store interfaces rather than
// concrete repositories so they stay testable without a database.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ticketera/escenario-service/internal/queue"
	"github.com/ticketera/escenario-service/internal/repository"
	"github.com/ticketera/escenario-service/internal/seating"
)

// ScenarioStore is the persistence boundary for scenarios.
type ScenarioStore interface {
	Create(ctx context.Context, s *seating.Scenario) error
	GetByID(ctx context.Context, id uuid.UUID) (*seating.Scenario, error)
	Search(ctx context.Context, f repository.ScenarioSearch) ([]seating.Scenario, int64, error)
	Update(ctx context.Context, s *seating.Scenario) error
	Delete(ctx context.Context, id uuid.UUID) error
	RecalculateCapacity(ctx context.Context, scenarioID uuid.UUID) (int, error)
}

// EventStore is the persistence boundary for events.
type EventStore interface {
	Create(ctx context.Context, e *seating.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*seating.Event, error)
	ListByScenario(ctx context.Context, scenarioID uuid.UUID) ([]seating.Event, error)
}

// ZoneStore is the persistence boundary for zones.
type ZoneStore interface {
	Create(ctx context.Context, z *seating.Zone) error
	GetByIDAndEvent(ctx context.Context, zoneID, eventID uuid.UUID) (*seating.Zone, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]repository.ZoneWithCount, error)
	UpdateNumbering(ctx context.Context, z *seating.Zone) error
	Delete(ctx context.Context, zoneID uuid.UUID) error
}

// SeatStore is the persistence boundary for seats.
type SeatStore interface {
	CreateBulk(ctx context.Context, seats []seating.Seat) error
	ListByZone(ctx context.Context, eventID, zoneID uuid.UUID) ([]seating.Seat, error)
	GetByIDInZone(ctx context.Context, seatID, zoneID, eventID uuid.UUID) (*seating.Seat, error)
	Update(ctx context.Context, s *seating.Seat) error
	Delete(ctx context.Context, seatID, zoneID uuid.UUID) error
	DeleteByZone(ctx context.Context, zoneID uuid.UUID) error
}

// Handler bundles the stores behind every endpoint.  Publish is called
// best-effort after layout mutations; failures are never surfaced to the
// client.
type Handler struct {
	Scenarios ScenarioStore
	Events    EventStore
	Zones     ZoneStore
	Seats     SeatStore
	Publish   func(ctx context.Context, ev queue.LayoutChangedEvent) error
}

// NewHandler constructs a Handler and panics if any store is nil.
func NewHandler(scenarios ScenarioStore, events EventStore, zones ZoneStore, seats SeatStore,
	publish func(ctx context.Context, ev queue.LayoutChangedEvent) error) *Handler {
	if scenarios == nil || events == nil || zones == nil || seats == nil {
		panic("nil store passed to NewHandler")
	}
	if publish == nil {
		publish = func(context.Context, queue.LayoutChangedEvent) error { return nil }
	}
	return &Handler{
		Scenarios: scenarios,
		Events:    events,
		Zones:     zones,
		Seats:     seats,
		Publish:   publish,
	}
}

// paramUUID parses a path parameter as a UUID.
func paramUUID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// writeError maps an error to the client-visible status: not-found
// conditions become 404, domain validation failures 422 with the error
// text, everything else 500 without internal detail.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrScenarioNotFound),
		errors.Is(err, repository.ErrEventNotFound),
		errors.Is(err, repository.ErrZoneNotFound),
		errors.Is(err, repository.ErrSeatNotFound),
		errors.Is(err, seating.ErrSeatNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case seating.IsDomainError(err):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
}
