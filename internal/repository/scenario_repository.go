package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/ticketera/escenario-service/internal/seating"
)

// ScenarioRepo provides persistence for scenarios (venues).
type ScenarioRepo struct {
	db *sql.DB
}

// NewScenarioRepo constructs a ScenarioRepo with the given DB handle.
func NewScenarioRepo(db *sql.DB) *ScenarioRepo {
	return &ScenarioRepo{db: db}
}

const scenarioColumns = `id, nombre, descripcion, ubicacion, ciudad, estado, pais, capacidad_total, activo, created_at, updated_at`

// ScenarioSearch defines filters and pagination for searching scenarios.
// Empty string filters and a nil Activo mean "no constraint".  Page is
// 1-based.
type ScenarioSearch struct {
	Query    string
	Ciudad   string
	Activo   *bool
	Page     int
	PageSize int
}

func scanScenario(row interface{ Scan(...any) error }) (*seating.Scenario, error) {
	var (
		s   seating.Scenario
		id  string
		dsc sql.NullString
		ubi sql.NullString
		ciu sql.NullString
		est sql.NullString
		pai sql.NullString
	)
	if err := row.Scan(&id, &s.Nombre, &dsc, &ubi, &ciu, &est, &pai,
		&s.CapacidadTotal, &s.Activo, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	s.ID = parsed
	s.Descripcion = dsc.String
	s.Ubicacion = ubi.String
	s.Ciudad = ciu.String
	s.Estado = est.String
	s.Pais = pai.String
	return &s, nil
}

// Create inserts a new scenario.
func (r *ScenarioRepo) Create(ctx context.Context, s *seating.Scenario) error {
	const q = `INSERT INTO escenarios (` + scenarioColumns + `)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		s.ID.String(), s.Nombre, nullStr(s.Descripcion), nullStr(s.Ubicacion),
		nullStr(s.Ciudad), nullStr(s.Estado), nullStr(s.Pais),
		s.CapacidadTotal, s.Activo, s.CreatedAt, s.UpdatedAt)
	return err
}

// GetByID retrieves a scenario by id, returning ErrScenarioNotFound when
// no row matches.
func (r *ScenarioRepo) GetByID(ctx context.Context, id uuid.UUID) (*seating.Scenario, error) {
	const q = `SELECT ` + scenarioColumns + ` FROM escenarios WHERE id = ?`
	s, err := scanScenario(r.db.QueryRowContext(ctx, q, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScenarioNotFound
		}
		return nil, err
	}
	return s, nil
}

// Search returns one page of matching scenarios plus the total match count
// irrespective of pagination.  Query and Ciudad match case-insensitively as
// substrings; Activo filters exactly when set.  Ordering is created_at then
// id so repeated identical queries return identical pages.
func (r *ScenarioRepo) Search(ctx context.Context, f ScenarioSearch) ([]seating.Scenario, int64, error) {
	where := []string{}
	args := []any{}

	if f.Query != "" {
		where = append(where, "LOWER(nombre) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Query)+"%")
	}
	if f.Ciudad != "" {
		where = append(where, "LOWER(ciudad) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Ciudad)+"%")
	}
	if f.Activo != nil {
		where = append(where, "activo = ?")
		args = append(args, *f.Activo)
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	var total int64
	countSQL := `SELECT COUNT(*) FROM escenarios WHERE ` + cond
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := f.PageSize
	offset := (f.Page - 1) * f.PageSize

	dataSQL := `SELECT ` + scenarioColumns + ` FROM escenarios
	            WHERE ` + cond + `
	            ORDER BY created_at ASC, id ASC
	            LIMIT ? OFFSET ?`
	argsData := append(append([]any{}, args...), limit, offset)

	rows, err := r.db.QueryContext(ctx, dataSQL, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]seating.Scenario, 0, limit)
	for rows.Next() {
		s, err := scanScenario(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Update persists field changes (including activo for soft delete) on an
// existing scenario.  CapacidadTotal is not written here; it only changes
// through RecalculateCapacity.
func (r *ScenarioRepo) Update(ctx context.Context, s *seating.Scenario) error {
	const q = `UPDATE escenarios
	           SET nombre = ?, descripcion = ?, ubicacion = ?, ciudad = ?, estado = ?, pais = ?,
	               activo = ?, updated_at = UTC_TIMESTAMP()
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		s.Nombre, nullStr(s.Descripcion), nullStr(s.Ubicacion), nullStr(s.Ciudad),
		nullStr(s.Estado), nullStr(s.Pais), s.Activo, s.ID.String())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrScenarioNotFound
	}
	return nil
}

// Delete removes a scenario.  Events, zones and seats cascade at the
// schema level.
func (r *ScenarioRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM escenarios WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id.String())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrScenarioNotFound
	}
	return nil
}

// RecalculateCapacity recomputes capacidad_total as the full seat count
// over all zones of the scenario's events, in a single statement so the
// stored value can never drift from the seat inventory.  The new total is
// returned.
func (r *ScenarioRepo) RecalculateCapacity(ctx context.Context, scenarioID uuid.UUID) (int, error) {
	const q = `UPDATE escenarios
	           SET capacidad_total = (
	                   SELECT COUNT(*)
	                   FROM asientos a
	                   JOIN eventos e ON e.id = a.event_id
	                   WHERE e.escenario_id = ?
	               ),
	               updated_at = UTC_TIMESTAMP()
	           WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, scenarioID.String(), scenarioID.String()); err != nil {
		return 0, err
	}
	var total int
	const sel = `SELECT capacidad_total FROM escenarios WHERE id = ?`
	if err := r.db.QueryRowContext(ctx, sel, scenarioID.String()).Scan(&total); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrScenarioNotFound
		}
		return 0, err
	}
	return total, nil
}

// nullStr maps empty strings to NULL so optional columns stay NULL instead
// of accumulating empty strings.
func nullStr(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
