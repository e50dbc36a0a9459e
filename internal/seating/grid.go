package seating

// GridRef anchors a seat (or a block of cells) on a zone's grid.  The
// rectangle it covers is half-open: [StartRow, StartRow+RowSpan) x
// [StartCol, StartCol+ColSpan).  All fields are 1-based and must be >= 1.
// A GridRef is immutable once attached to a seat.
type GridRef struct {
	StartRow int `json:"start_row"`
	StartCol int `json:"start_col"`
	RowSpan  int `json:"row_span"`
	ColSpan  int `json:"col_span"`
}

// UnitCell returns a GridRef covering exactly one cell.
func UnitCell(row, col int) GridRef {
	return GridRef{StartRow: row, StartCol: col, RowSpan: 1, ColSpan: 1}
}

// Valid reports whether every field is at least 1.
func (g GridRef) Valid() bool {
	return g.StartRow >= 1 && g.StartCol >= 1 && g.RowSpan >= 1 && g.ColSpan >= 1
}

// Overlaps reports whether two half-open rectangles share at least one cell.
func (g GridRef) Overlaps(o GridRef) bool {
	return g.StartRow < o.StartRow+o.RowSpan &&
		o.StartRow < g.StartRow+g.RowSpan &&
		g.StartCol < o.StartCol+o.ColSpan &&
		o.StartCol < g.StartCol+g.ColSpan
}
