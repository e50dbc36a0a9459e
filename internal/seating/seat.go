package seating

import "github.com/google/uuid"

// SeatState describes the lifecycle state of a seat.  Transitions past
// AVAILABLE belong to the booking layer; the layout engine only ever
// creates seats as AVAILABLE.
type SeatState string

const (
	StateAvailable SeatState = "AVAILABLE"
	StateReserved  SeatState = "RESERVED"
	StateSold      SeatState = "SOLD"
	StateBlocked   SeatState = "BLOCKED"
)

// ValidSeatState reports whether s is one of the known states.
func ValidSeatState(s SeatState) bool {
	switch s {
	case StateAvailable, StateReserved, StateSold, StateBlocked:
		return true
	}
	return false
}

// Seat is one physical seat within a zone.  ZoneID and EventID are
// non-owning back-references; Position is nil for unpositioned seats.
type Seat struct {
	ID       uuid.UUID         `json:"id"`
	ZoneID   uuid.UUID         `json:"zone_id"`
	EventID  uuid.UUID         `json:"event_id"`
	Label    string            `json:"label"`
	State    SeatState         `json:"state"`
	Position *GridRef          `json:"position,omitempty"`
	Meta     map[string]string `json:"meta,omitempty"`
}

// SeatSpec is one requested seat in MANUAL numbering mode.  Label may be
// empty when Position is set; the generator then derives a deterministic
// label from the position.
type SeatSpec struct {
	Position *GridRef          `json:"position,omitempty"`
	Label    string            `json:"label,omitempty"`
	Meta     map[string]string `json:"meta,omitempty"`
}

// SeatPatch is a partial update for a seat.  Nil fields are left unchanged;
// a non-nil Meta replaces the whole mapping.  Grid position is never
// patched: layout changes go through regeneration.
type SeatPatch struct {
	Label *string
	State *SeatState
	Meta  map[string]string
}
