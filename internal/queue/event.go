// Package queue defines message payloads exchanged over the message broker.
package queue

// LayoutChangedEvent is published after a zone's seat layout changes
// (creation, regeneration or deletion).  It carries enough information for
// downstream consumers to audit capacity changes without querying the
// primary database.
type LayoutChangedEvent struct {
	ScenarioID     string `json:"escenario_id"`
	EventID        string `json:"event_id"`
	ZoneID         string `json:"zone_id"`
	ZoneName       string `json:"zone_name"`
	Action         string `json:"action"` // created | regenerated | deleted
	SeatCount      int    `json:"seat_count"`
	CapacidadTotal int    `json:"capacidad_total"`
	OccurredAt     string `json:"occurred_at"`
}
