package seating

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event ties zones to a scenario.  A scenario's capacity aggregates the
// seats of every zone under its events.
type Event struct {
	ID         uuid.UUID `json:"id"`
	ScenarioID uuid.UUID `json:"escenario_id"`
	Nombre     string    `json:"nombre"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewEvent builds an event under a scenario.  Nombre follows the same
// trim/non-empty rule as scenario names.
func NewEvent(scenarioID uuid.UUID, nombre string) (Event, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return Event{}, ErrEmptyName
	}
	now := time.Now().UTC()
	return Event{
		ID:         uuid.New(),
		ScenarioID: scenarioID,
		Nombre:     nombre,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}
