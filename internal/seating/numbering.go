package seating

// NumberingMode selects how a zone's seats are labeled.
type NumberingMode string

const (
	// ModeRowsColumns auto-generates one seat per grid cell from Rows x Columns.
	ModeRowsColumns NumberingMode = "ROWS_COLUMNS"
	// ModeManual takes an explicit seat list; Rows/Columns are advisory bounds.
	ModeManual NumberingMode = "MANUAL"
)

// NumberingScheme is the zone-level policy describing how seats are
// auto-labeled.  In ROWS_COLUMNS mode Rows and Columns must both be >= 1;
// in MANUAL mode a value of 0 means unbounded.
type NumberingScheme struct {
	Mode       NumberingMode `json:"mode"`
	Rows       int           `json:"rows,omitempty"`
	Columns    int           `json:"columns,omitempty"`
	RowPrefix  string        `json:"row_prefix,omitempty"`
	SeatPrefix string        `json:"seat_prefix,omitempty"`
}

// Validate checks the scheme against its mode's requirements.
func (n NumberingScheme) Validate() error {
	switch n.Mode {
	case ModeRowsColumns:
		if n.Rows < 1 || n.Columns < 1 {
			return ErrInvalidNumbering
		}
		return nil
	case ModeManual:
		if n.Rows < 0 || n.Columns < 0 {
			return ErrInvalidNumbering
		}
		return nil
	default:
		return ErrInvalidNumbering
	}
}
