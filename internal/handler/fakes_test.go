package handler

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/ticketera/escenario-service/internal/queue"
	"github.com/ticketera/escenario-service/internal/repository"
	"github.com/ticketera/escenario-service/internal/seating"
)

// fakeDB is shared in-memory state behind the four fake stores, so
// handlers can be exercised without a database.  Insertion order stands in
// for the repositories' created_at ordering.
type fakeDB struct {
	scenarios     map[uuid.UUID]seating.Scenario
	scenarioOrder []uuid.UUID
	events        map[uuid.UUID]seating.Event
	eventOrder    []uuid.UUID
	zones         map[uuid.UUID]seating.Zone
	zoneOrder     []uuid.UUID
	seats         map[uuid.UUID]seating.Seat
	seatOrder     []uuid.UUID

	published []queue.LayoutChangedEvent
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		scenarios: map[uuid.UUID]seating.Scenario{},
		events:    map[uuid.UUID]seating.Event{},
		zones:     map[uuid.UUID]seating.Zone{},
		seats:     map[uuid.UUID]seating.Seat{},
	}
}

func (db *fakeDB) publish(_ context.Context, ev queue.LayoutChangedEvent) error {
	db.published = append(db.published, ev)
	return nil
}

func (db *fakeDB) handler() *Handler {
	return NewHandler(
		&fakeScenarios{db},
		&fakeEvents{db},
		&fakeZones{db},
		&fakeSeats{db},
		db.publish,
	)
}

type fakeScenarios struct{ db *fakeDB }

func (f *fakeScenarios) Create(_ context.Context, s *seating.Scenario) error {
	f.db.scenarios[s.ID] = *s
	f.db.scenarioOrder = append(f.db.scenarioOrder, s.ID)
	return nil
}

func (f *fakeScenarios) GetByID(_ context.Context, id uuid.UUID) (*seating.Scenario, error) {
	s, ok := f.db.scenarios[id]
	if !ok {
		return nil, repository.ErrScenarioNotFound
	}
	return &s, nil
}

func (f *fakeScenarios) Search(_ context.Context, q repository.ScenarioSearch) ([]seating.Scenario, int64, error) {
	var matches []seating.Scenario
	for _, id := range f.db.scenarioOrder {
		s, ok := f.db.scenarios[id]
		if !ok {
			continue
		}
		if q.Query != "" && !strings.Contains(strings.ToLower(s.Nombre), strings.ToLower(q.Query)) {
			continue
		}
		if q.Ciudad != "" && !strings.EqualFold(s.Ciudad, q.Ciudad) {
			continue
		}
		if q.Activo != nil && s.Activo != *q.Activo {
			continue
		}
		matches = append(matches, s)
	}
	total := int64(len(matches))
	start := (q.Page - 1) * q.PageSize
	if start >= len(matches) {
		return []seating.Scenario{}, total, nil
	}
	end := start + q.PageSize
	if end > len(matches) {
		end = len(matches)
	}
	return matches[start:end], total, nil
}

func (f *fakeScenarios) Update(_ context.Context, s *seating.Scenario) error {
	cur, ok := f.db.scenarios[s.ID]
	if !ok {
		return repository.ErrScenarioNotFound
	}
	// capacidad_total is never client-writable.
	keep := cur.CapacidadTotal
	cur = *s
	cur.CapacidadTotal = keep
	f.db.scenarios[s.ID] = cur
	return nil
}

func (f *fakeScenarios) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.db.scenarios[id]; !ok {
		return repository.ErrScenarioNotFound
	}
	delete(f.db.scenarios, id)
	for eid, e := range f.db.events {
		if e.ScenarioID == id {
			delete(f.db.events, eid)
		}
	}
	return nil
}

func (f *fakeScenarios) RecalculateCapacity(_ context.Context, scenarioID uuid.UUID) (int, error) {
	s, ok := f.db.scenarios[scenarioID]
	if !ok {
		return 0, repository.ErrScenarioNotFound
	}
	total := 0
	for _, seat := range f.db.seats {
		if e, ok := f.db.events[seat.EventID]; ok && e.ScenarioID == scenarioID {
			total++
		}
	}
	s.CapacidadTotal = total
	f.db.scenarios[scenarioID] = s
	return total, nil
}

type fakeEvents struct{ db *fakeDB }

func (f *fakeEvents) Create(_ context.Context, e *seating.Event) error {
	f.db.events[e.ID] = *e
	f.db.eventOrder = append(f.db.eventOrder, e.ID)
	return nil
}

func (f *fakeEvents) GetByID(_ context.Context, id uuid.UUID) (*seating.Event, error) {
	e, ok := f.db.events[id]
	if !ok {
		return nil, repository.ErrEventNotFound
	}
	return &e, nil
}

func (f *fakeEvents) ListByScenario(_ context.Context, scenarioID uuid.UUID) ([]seating.Event, error) {
	out := []seating.Event{}
	for _, id := range f.db.eventOrder {
		if e, ok := f.db.events[id]; ok && e.ScenarioID == scenarioID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeZones struct{ db *fakeDB }

func (f *fakeZones) Create(_ context.Context, z *seating.Zone) error {
	stored := *z
	stored.Seats = nil
	f.db.zones[z.ID] = stored
	f.db.zoneOrder = append(f.db.zoneOrder, z.ID)
	return nil
}

func (f *fakeZones) GetByIDAndEvent(_ context.Context, zoneID, eventID uuid.UUID) (*seating.Zone, error) {
	z, ok := f.db.zones[zoneID]
	if !ok || z.EventID != eventID {
		return nil, repository.ErrZoneNotFound
	}
	return &z, nil
}

func (f *fakeZones) ListByEvent(_ context.Context, eventID uuid.UUID) ([]repository.ZoneWithCount, error) {
	out := []repository.ZoneWithCount{}
	for _, id := range f.db.zoneOrder {
		z, ok := f.db.zones[id]
		if !ok || z.EventID != eventID {
			continue
		}
		count := 0
		for _, s := range f.db.seats {
			if s.ZoneID == id {
				count++
			}
		}
		out = append(out, repository.ZoneWithCount{Zone: z, SeatCount: count})
	}
	return out, nil
}

func (f *fakeZones) UpdateNumbering(_ context.Context, z *seating.Zone) error {
	cur, ok := f.db.zones[z.ID]
	if !ok {
		return repository.ErrZoneNotFound
	}
	cur.Numbering = z.Numbering
	f.db.zones[z.ID] = cur
	return nil
}

func (f *fakeZones) Delete(_ context.Context, zoneID uuid.UUID) error {
	if _, ok := f.db.zones[zoneID]; !ok {
		return repository.ErrZoneNotFound
	}
	delete(f.db.zones, zoneID)
	return nil
}

type fakeSeats struct{ db *fakeDB }

func (f *fakeSeats) CreateBulk(_ context.Context, seats []seating.Seat) error {
	for _, s := range seats {
		f.db.seats[s.ID] = s
		f.db.seatOrder = append(f.db.seatOrder, s.ID)
	}
	return nil
}

func (f *fakeSeats) ListByZone(_ context.Context, eventID, zoneID uuid.UUID) ([]seating.Seat, error) {
	out := []seating.Seat{}
	for _, id := range f.db.seatOrder {
		if s, ok := f.db.seats[id]; ok && s.ZoneID == zoneID && s.EventID == eventID {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Position == nil || b.Position == nil {
			return a.Position != nil && b.Position == nil
		}
		if a.Position.StartRow != b.Position.StartRow {
			return a.Position.StartRow < b.Position.StartRow
		}
		return a.Position.StartCol < b.Position.StartCol
	})
	return out, nil
}

func (f *fakeSeats) GetByIDInZone(_ context.Context, seatID, zoneID, eventID uuid.UUID) (*seating.Seat, error) {
	s, ok := f.db.seats[seatID]
	if !ok || s.ZoneID != zoneID || s.EventID != eventID {
		return nil, repository.ErrSeatNotFound
	}
	return &s, nil
}

func (f *fakeSeats) Update(_ context.Context, s *seating.Seat) error {
	if _, ok := f.db.seats[s.ID]; !ok {
		return repository.ErrSeatNotFound
	}
	f.db.seats[s.ID] = *s
	return nil
}

func (f *fakeSeats) Delete(_ context.Context, seatID, zoneID uuid.UUID) error {
	s, ok := f.db.seats[seatID]
	if !ok || s.ZoneID != zoneID {
		return repository.ErrSeatNotFound
	}
	delete(f.db.seats, seatID)
	return nil
}

func (f *fakeSeats) DeleteByZone(_ context.Context, zoneID uuid.UUID) error {
	for id, s := range f.db.seats {
		if s.ZoneID == zoneID {
			delete(f.db.seats, id)
		}
	}
	return nil
}
