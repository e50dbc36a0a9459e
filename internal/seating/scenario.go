package seating

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Scenario is a venue: the top-level entity aggregating the zones of its
// events.  CapacidadTotal is derived, never set by clients.
type Scenario struct {
	ID             uuid.UUID `json:"id"`
	Nombre         string    `json:"nombre"`
	Descripcion    string    `json:"descripcion,omitempty"`
	Ubicacion      string    `json:"ubicacion,omitempty"`
	Ciudad         string    `json:"ciudad,omitempty"`
	Estado         string    `json:"estado,omitempty"`
	Pais           string    `json:"pais,omitempty"`
	CapacidadTotal int       `json:"capacidad_total"`
	Activo         bool      `json:"activo"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ScenarioInput carries the client-supplied fields for a new scenario.
type ScenarioInput struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Ubicacion   string `json:"ubicacion"`
	Ciudad      string `json:"ciudad"`
	Estado      string `json:"estado"`
	Pais        string `json:"pais"`
}

// NewScenario builds a scenario from client input.  Nombre is trimmed and
// must be non-empty; the new scenario starts active with zero capacity and
// equal creation/update timestamps.
func NewScenario(in ScenarioInput) (Scenario, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return Scenario{}, ErrEmptyName
	}
	now := time.Now().UTC()
	return Scenario{
		ID:          uuid.New(),
		Nombre:      nombre,
		Descripcion: strings.TrimSpace(in.Descripcion),
		Ubicacion:   strings.TrimSpace(in.Ubicacion),
		Ciudad:      strings.TrimSpace(in.Ciudad),
		Estado:      strings.TrimSpace(in.Estado),
		Pais:        strings.TrimSpace(in.Pais),
		Activo:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// RecomputeCapacity sets CapacidadTotal to the sum of seat counts across
// the given zones.  Full recomputation is used instead of incremental
// counters so partial failures can never leave the capacity drifted.
func RecomputeCapacity(s Scenario, zones []Zone) Scenario {
	total := 0
	for _, z := range zones {
		total += z.SeatCount()
	}
	s.CapacidadTotal = total
	s.UpdatedAt = time.Now().UTC()
	return s
}
