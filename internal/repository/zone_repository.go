package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/ticketera/escenario-service/internal/seating"
)

// ZoneRepo provides persistence for zones.  The numbering scheme is stored
// alongside the zone row; seats live in their own table.
type ZoneRepo struct {
	db *sql.DB
}

// NewZoneRepo constructs a ZoneRepo with the given DB handle.
func NewZoneRepo(db *sql.DB) *ZoneRepo {
	return &ZoneRepo{db: db}
}

// ZoneWithCount pairs a zone with its current seat count for listings.
type ZoneWithCount struct {
	Zone      seating.Zone `json:"zone"`
	SeatCount int          `json:"seat_count"`
}

// Create inserts a new zone together with its numbering scheme.
func (r *ZoneRepo) Create(ctx context.Context, z *seating.Zone) error {
	const q = `INSERT INTO zonas (id, event_id, name, numbering_mode, num_rows, num_cols, row_prefix, seat_prefix, created_at, updated_at)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		z.ID.String(), z.EventID.String(), z.Name,
		string(z.Numbering.Mode), z.Numbering.Rows, z.Numbering.Columns,
		z.Numbering.RowPrefix, z.Numbering.SeatPrefix,
		z.CreatedAt, z.UpdatedAt)
	return err
}

// GetByIDAndEvent retrieves a zone only when it belongs to the given
// event.  A zone under a different event yields ErrZoneNotFound, which is
// what keeps the zone-in-event check ahead of any seat lookup.
func (r *ZoneRepo) GetByIDAndEvent(ctx context.Context, zoneID, eventID uuid.UUID) (*seating.Zone, error) {
	const q = `SELECT id, event_id, name, numbering_mode, num_rows, num_cols, row_prefix, seat_prefix, created_at, updated_at
	           FROM zonas WHERE id = ? AND event_id = ?`
	z, err := scanZone(r.db.QueryRowContext(ctx, q, zoneID.String(), eventID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrZoneNotFound
		}
		return nil, err
	}
	return z, nil
}

// ListByEvent returns all zones of an event with their seat counts.
func (r *ZoneRepo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]ZoneWithCount, error) {
	const q = `SELECT z.id, z.event_id, z.name, z.numbering_mode, z.num_rows, z.num_cols, z.row_prefix, z.seat_prefix, z.created_at, z.updated_at,
	                  COUNT(a.id) AS seat_count
	           FROM zonas z
	           LEFT JOIN asientos a ON a.zone_id = z.id
	           WHERE z.event_id = ?
	           GROUP BY z.id
	           ORDER BY z.created_at ASC, z.id ASC`
	rows, err := r.db.QueryContext(ctx, q, eventID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ZoneWithCount
	for rows.Next() {
		var (
			z     seating.Zone
			idStr string
			evStr string
			mode  string
			count int
		)
		if err := rows.Scan(&idStr, &evStr, &z.Name, &mode,
			&z.Numbering.Rows, &z.Numbering.Columns,
			&z.Numbering.RowPrefix, &z.Numbering.SeatPrefix,
			&z.CreatedAt, &z.UpdatedAt, &count); err != nil {
			return nil, err
		}
		if z.ID, err = uuid.Parse(idStr); err != nil {
			return nil, err
		}
		if z.EventID, err = uuid.Parse(evStr); err != nil {
			return nil, err
		}
		z.Numbering.Mode = seating.NumberingMode(mode)
		out = append(out, ZoneWithCount{Zone: z, SeatCount: count})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateNumbering persists a new numbering scheme after a layout
// regeneration.
func (r *ZoneRepo) UpdateNumbering(ctx context.Context, z *seating.Zone) error {
	const q = `UPDATE zonas
	           SET numbering_mode = ?, num_rows = ?, num_cols = ?, row_prefix = ?, seat_prefix = ?, updated_at = UTC_TIMESTAMP()
	           WHERE id = ? AND event_id = ?`
	res, err := r.db.ExecContext(ctx, q,
		string(z.Numbering.Mode), z.Numbering.Rows, z.Numbering.Columns,
		z.Numbering.RowPrefix, z.Numbering.SeatPrefix,
		z.ID.String(), z.EventID.String())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrZoneNotFound
	}
	return nil
}

// Delete removes a zone; its seats cascade at the schema level.
func (r *ZoneRepo) Delete(ctx context.Context, zoneID uuid.UUID) error {
	const q = `DELETE FROM zonas WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, zoneID.String())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrZoneNotFound
	}
	return nil
}

func scanZone(row interface{ Scan(...any) error }) (*seating.Zone, error) {
	var (
		z     seating.Zone
		idStr string
		evStr string
		mode  string
	)
	if err := row.Scan(&idStr, &evStr, &z.Name, &mode,
		&z.Numbering.Rows, &z.Numbering.Columns,
		&z.Numbering.RowPrefix, &z.Numbering.SeatPrefix,
		&z.CreatedAt, &z.UpdatedAt); err != nil {
		return nil, err
	}
	var err error
	if z.ID, err = uuid.Parse(idStr); err != nil {
		return nil, err
	}
	if z.EventID, err = uuid.Parse(evStr); err != nil {
		return nil, err
	}
	z.Numbering.Mode = seating.NumberingMode(mode)
	return &z, nil
}
