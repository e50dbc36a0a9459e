package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/ticketera/escenario-service/internal/seating"
)

// SeatRepo provides persistence for seats.  Seat rows carry zone_id and
// event_id so integrity checks can be expressed in the query itself.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

const seatColumns = `id, zone_id, event_id, label, state, start_row, start_col, row_span, col_span, meta`

// CreateBulk inserts a generated seat batch in a single statement.
func (r *SeatRepo) CreateBulk(ctx context.Context, seats []seating.Seat) error {
	if len(seats) == 0 {
		return nil
	}
	query := `INSERT INTO asientos (` + seatColumns + `) VALUES `
	args := make([]any, 0, len(seats)*10)
	for i, s := range seats {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
		sr, sc, rs, cs := positionCols(s.Position)
		meta, err := metaJSON(s.Meta)
		if err != nil {
			return err
		}
		args = append(args,
			s.ID.String(), s.ZoneID.String(), s.EventID.String(),
			s.Label, string(s.State), sr, sc, rs, cs, meta)
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// ListByZone retrieves all seats of a zone ordered by grid position then
// label.  When the zone does not belong to the event the result is simply
// empty, not an error.
func (r *SeatRepo) ListByZone(ctx context.Context, eventID, zoneID uuid.UUID) ([]seating.Seat, error) {
	const q = `SELECT ` + seatColumns + `
	           FROM asientos
	           WHERE zone_id = ? AND event_id = ?
	           ORDER BY start_row IS NULL, start_row, start_col, label`
	rows, err := r.db.QueryContext(ctx, q, zoneID.String(), eventID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []seating.Seat{}
	for rows.Next() {
		s, err := scanSeat(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByIDInZone retrieves one seat scoped to its zone and event.  A seat
// that exists under another zone or event yields ErrSeatNotFound.
func (r *SeatRepo) GetByIDInZone(ctx context.Context, seatID, zoneID, eventID uuid.UUID) (*seating.Seat, error) {
	const q = `SELECT ` + seatColumns + `
	           FROM asientos
	           WHERE id = ? AND zone_id = ? AND event_id = ?`
	s, err := scanSeat(r.db.QueryRowContext(ctx, q, seatID.String(), zoneID.String(), eventID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	return s, nil
}

// Update persists label, state and meta of one seat.  Grid position never
// changes outside of full regeneration.
func (r *SeatRepo) Update(ctx context.Context, s *seating.Seat) error {
	meta, err := metaJSON(s.Meta)
	if err != nil {
		return err
	}
	const q = `UPDATE asientos
	           SET label = ?, state = ?, meta = ?, updated_at = UTC_TIMESTAMP()
	           WHERE id = ? AND zone_id = ?`
	res, err := r.db.ExecContext(ctx, q, s.Label, string(s.State), meta, s.ID.String(), s.ZoneID.String())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSeatNotFound
	}
	return nil
}

// Delete removes one seat scoped to its zone.
func (r *SeatRepo) Delete(ctx context.Context, seatID, zoneID uuid.UUID) error {
	const q = `DELETE FROM asientos WHERE id = ? AND zone_id = ?`
	res, err := r.db.ExecContext(ctx, q, seatID.String(), zoneID.String())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSeatNotFound
	}
	return nil
}

// DeleteByZone removes all seats of a zone.  Used for replace-all layout
// regeneration; callers verify zone ownership first.
func (r *SeatRepo) DeleteByZone(ctx context.Context, zoneID uuid.UUID) error {
	const q = `DELETE FROM asientos WHERE zone_id = ?`
	_, err := r.db.ExecContext(ctx, q, zoneID.String())
	return err
}

func scanSeat(row interface{ Scan(...any) error }) (*seating.Seat, error) {
	var (
		s     seating.Seat
		idStr string
		znStr string
		evStr string
		state string
		sr    sql.NullInt64
		sc    sql.NullInt64
		rs    sql.NullInt64
		cs    sql.NullInt64
		meta  sql.NullString
	)
	if err := row.Scan(&idStr, &znStr, &evStr, &s.Label, &state, &sr, &sc, &rs, &cs, &meta); err != nil {
		return nil, err
	}
	var err error
	if s.ID, err = uuid.Parse(idStr); err != nil {
		return nil, err
	}
	if s.ZoneID, err = uuid.Parse(znStr); err != nil {
		return nil, err
	}
	if s.EventID, err = uuid.Parse(evStr); err != nil {
		return nil, err
	}
	s.State = seating.SeatState(state)
	if sr.Valid && sc.Valid {
		pos := seating.GridRef{
			StartRow: int(sr.Int64),
			StartCol: int(sc.Int64),
			RowSpan:  int(rs.Int64),
			ColSpan:  int(cs.Int64),
		}
		s.Position = &pos
	}
	if meta.Valid && meta.String != "" {
		if err := json.Unmarshal([]byte(meta.String), &s.Meta); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func positionCols(p *seating.GridRef) (sr, sc, rs, cs sql.NullInt64) {
	if p == nil {
		return
	}
	sr = sql.NullInt64{Int64: int64(p.StartRow), Valid: true}
	sc = sql.NullInt64{Int64: int64(p.StartCol), Valid: true}
	rs = sql.NullInt64{Int64: int64(p.RowSpan), Valid: true}
	cs = sql.NullInt64{Int64: int64(p.ColSpan), Valid: true}
	return
}

func metaJSON(m map[string]string) (sql.NullString, error) {
	if len(m) == 0 {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}
