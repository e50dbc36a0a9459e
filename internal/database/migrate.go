package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema statements are idempotent so Migrate can run at every startup.
// Deletes cascade downward: escenario -> eventos -> zonas -> asientos, so
// no zone or seat ever outlives its owning scenario.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS escenarios (
		id              CHAR(36) PRIMARY KEY,
		nombre          VARCHAR(255) NOT NULL,
		descripcion     TEXT NULL,
		ubicacion       VARCHAR(255) NULL,
		ciudad          VARCHAR(128) NULL,
		estado          VARCHAR(128) NULL,
		pais            VARCHAR(128) NULL,
		capacidad_total INT NOT NULL DEFAULT 0,
		activo          TINYINT(1) NOT NULL DEFAULT 1,
		created_at      DATETIME NOT NULL,
		updated_at      DATETIME NOT NULL,
		KEY idx_escenarios_ciudad (ciudad),
		KEY idx_escenarios_created (created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS eventos (
		id           CHAR(36) PRIMARY KEY,
		escenario_id CHAR(36) NOT NULL,
		nombre       VARCHAR(255) NOT NULL,
		created_at   DATETIME NOT NULL,
		updated_at   DATETIME NOT NULL,
		KEY idx_eventos_escenario (escenario_id),
		CONSTRAINT fk_eventos_escenario FOREIGN KEY (escenario_id)
			REFERENCES escenarios (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS zonas (
		id             CHAR(36) PRIMARY KEY,
		event_id       CHAR(36) NOT NULL,
		name           VARCHAR(255) NOT NULL,
		numbering_mode VARCHAR(16) NOT NULL,
		num_rows       INT NOT NULL DEFAULT 0,
		num_cols       INT NOT NULL DEFAULT 0,
		row_prefix     VARCHAR(16) NOT NULL DEFAULT '',
		seat_prefix    VARCHAR(16) NOT NULL DEFAULT '',
		created_at     DATETIME NOT NULL,
		updated_at     DATETIME NOT NULL,
		KEY idx_zonas_event (event_id),
		CONSTRAINT fk_zonas_evento FOREIGN KEY (event_id)
			REFERENCES eventos (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS asientos (
		id         CHAR(36) PRIMARY KEY,
		zone_id    CHAR(36) NOT NULL,
		event_id   CHAR(36) NOT NULL,
		label      VARCHAR(64) NOT NULL,
		state      VARCHAR(16) NOT NULL DEFAULT 'AVAILABLE',
		start_row  INT NULL,
		start_col  INT NULL,
		row_span   INT NULL,
		col_span   INT NULL,
		meta       TEXT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_asientos_zone_label (zone_id, label),
		KEY idx_asientos_event (event_id),
		CONSTRAINT fk_asientos_zona FOREIGN KEY (zone_id)
			REFERENCES zonas (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate applies the schema statements in order.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate statement %d: %w", i+1, err)
		}
	}
	return nil
}
