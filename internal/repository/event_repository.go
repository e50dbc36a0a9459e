package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/ticketera/escenario-service/internal/seating"
)

// EventRepo provides persistence for events under a scenario.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo constructs an EventRepo with the given DB handle.
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

// Create inserts a new event.
func (r *EventRepo) Create(ctx context.Context, e *seating.Event) error {
	const q = `INSERT INTO eventos (id, escenario_id, nombre, created_at, updated_at)
	           VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		e.ID.String(), e.ScenarioID.String(), e.Nombre, e.CreatedAt, e.UpdatedAt)
	return err
}

// GetByID retrieves an event by id, returning ErrEventNotFound when no row
// matches.
func (r *EventRepo) GetByID(ctx context.Context, id uuid.UUID) (*seating.Event, error) {
	const q = `SELECT id, escenario_id, nombre, created_at, updated_at FROM eventos WHERE id = ?`
	var (
		e          seating.Event
		idStr      string
		scenarioID string
	)
	err := r.db.QueryRowContext(ctx, q, id.String()).
		Scan(&idStr, &scenarioID, &e.Nombre, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if e.ID, err = uuid.Parse(idStr); err != nil {
		return nil, err
	}
	if e.ScenarioID, err = uuid.Parse(scenarioID); err != nil {
		return nil, err
	}
	return &e, nil
}

// ListByScenario returns all events of a scenario ordered by creation.
func (r *EventRepo) ListByScenario(ctx context.Context, scenarioID uuid.UUID) ([]seating.Event, error) {
	const q = `SELECT id, escenario_id, nombre, created_at, updated_at
	           FROM eventos
	           WHERE escenario_id = ?
	           ORDER BY created_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q, scenarioID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []seating.Event
	for rows.Next() {
		var (
			e     seating.Event
			idStr string
			scStr string
		)
		if err := rows.Scan(&idStr, &scStr, &e.Nombre, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		if e.ID, err = uuid.Parse(idStr); err != nil {
			return nil, err
		}
		if e.ScenarioID, err = uuid.Parse(scStr); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
