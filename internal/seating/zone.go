package seating

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Zone is a named subdivision of an event's venue.  It owns its seats
// exclusively; the seat count is always derived from the collection so it
// cannot drift from the stored seats.
type Zone struct {
	ID        uuid.UUID       `json:"id"`
	EventID   uuid.UUID       `json:"event_id"`
	Name      string          `json:"name"`
	Numbering NumberingScheme `json:"numbering"`
	Seats     []Seat          `json:"seats,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SeatCount returns the number of seats currently attached.
func (z Zone) SeatCount() int { return len(z.Seats) }

// AttachSeats replaces the zone's whole seat collection.  Replace-all
// semantics keep regeneration idempotent.
func AttachSeats(z Zone, seats []Seat) Zone {
	z.Seats = seats
	return z
}

// RemoveSeat removes one seat by identity and returns the updated zone.
// ErrSeatNotFound is returned when the id is absent.
func RemoveSeat(z Zone, seatID uuid.UUID) (Zone, error) {
	for i, s := range z.Seats {
		if s.ID == seatID {
			out := make([]Seat, 0, len(z.Seats)-1)
			out = append(out, z.Seats[:i]...)
			out = append(out, z.Seats[i+1:]...)
			z.Seats = out
			return z, nil
		}
	}
	return z, ErrSeatNotFound
}

// UpdateSeat applies a partial update to one seat.  A label change is
// re-validated for uniqueness against the rest of the zone; positions are
// untouched so no overlap check is needed here.
func UpdateSeat(z Zone, seatID uuid.UUID, patch SeatPatch) (Zone, error) {
	idx := -1
	for i, s := range z.Seats {
		if s.ID == seatID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return z, ErrSeatNotFound
	}
	if patch.Label != nil && *patch.Label != z.Seats[idx].Label {
		for i, s := range z.Seats {
			if i != idx && s.Label == *patch.Label {
				return z, fmt.Errorf("%w: %q", ErrDuplicateLabel, *patch.Label)
			}
		}
	}
	out := make([]Seat, len(z.Seats))
	copy(out, z.Seats)
	seat := out[idx]
	if patch.Label != nil {
		seat.Label = *patch.Label
	}
	if patch.State != nil {
		seat.State = *patch.State
	}
	if patch.Meta != nil {
		seat.Meta = patch.Meta
	}
	out[idx] = seat
	z.Seats = out
	return z, nil
}
