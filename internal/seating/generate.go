package seating

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// Generate expands a numbering scheme (or an explicit seat list) into the
// full seat inventory of a zone.  Generation is all-or-nothing: on any
// error no seats are returned.  Given identical inputs the result is the
// same up to generated IDs, so replace-all regeneration is safe to retry.
func Generate(zoneID, eventID uuid.UUID, scheme NumberingScheme, specs []SeatSpec) ([]Seat, error) {
	if err := scheme.Validate(); err != nil {
		return nil, err
	}
	switch scheme.Mode {
	case ModeRowsColumns:
		if len(specs) > 0 {
			return nil, fmt.Errorf("%w: explicit seats not allowed in %s mode", ErrConflictingSpec, ModeRowsColumns)
		}
		return generateGrid(zoneID, eventID, scheme), nil
	case ModeManual:
		return generateManual(zoneID, eventID, specs)
	}
	return nil, ErrInvalidNumbering
}

// generateGrid produces one seat per cell of a Rows x Columns grid.  Labels
// are RowPrefix + row + SeatPrefix + column with 1-based indices; rows are
// never reordered or skipped.
func generateGrid(zoneID, eventID uuid.UUID, scheme NumberingScheme) []Seat {
	seats := make([]Seat, 0, scheme.Rows*scheme.Columns)
	for r := 1; r <= scheme.Rows; r++ {
		for c := 1; c <= scheme.Columns; c++ {
			cell := UnitCell(r, c)
			seats = append(seats, Seat{
				ID:       uuid.New(),
				ZoneID:   zoneID,
				EventID:  eventID,
				Label:    scheme.RowPrefix + strconv.Itoa(r) + scheme.SeatPrefix + strconv.Itoa(c),
				State:    StateAvailable,
				Position: &cell,
			})
		}
	}
	return seats
}

// generateManual validates and materializes an explicit seat list.  Every
// accepted seat has a non-empty label unique within the call; positioned
// seats are pairwise non-overlapping.  Unpositioned seats are exempt from
// the overlap check but not from label uniqueness.
func generateManual(zoneID, eventID uuid.UUID, specs []SeatSpec) ([]Seat, error) {
	seats := make([]Seat, 0, len(specs))
	labels := make(map[string]struct{}, len(specs))
	placed := make([]Seat, 0, len(specs))
	for _, spec := range specs {
		if spec.Position == nil && spec.Label == "" {
			return nil, fmt.Errorf("%w: seat needs a label or a grid position", ErrInvalidSeatSpec)
		}
		if spec.Position != nil && !spec.Position.Valid() {
			return nil, fmt.Errorf("%w: grid ref fields must be >= 1", ErrInvalidSeatSpec)
		}
		label := spec.Label
		if label == "" {
			label = "R" + strconv.Itoa(spec.Position.StartRow) + "C" + strconv.Itoa(spec.Position.StartCol)
		}
		if _, dup := labels[label]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
		}
		labels[label] = struct{}{}
		seat := Seat{
			ID:      uuid.New(),
			ZoneID:  zoneID,
			EventID: eventID,
			Label:   label,
			State:   StateAvailable,
			Meta:    spec.Meta,
		}
		if spec.Position != nil {
			pos := *spec.Position
			seat.Position = &pos
			for _, prev := range placed {
				if prev.Position.Overlaps(pos) {
					return nil, fmt.Errorf("%w: seats %q and %q", ErrOverlappingPlacement, prev.Label, label)
				}
			}
			placed = append(placed, seat)
		}
		seats = append(seats, seat)
	}
	return seats, nil
}
