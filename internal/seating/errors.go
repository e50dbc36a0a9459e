// Package seating implements the seating layout core: grid placement,
// numbering schemes, seat generation and the zone/scenario aggregates.
// Everything in this package is a pure, synchronous transformation over
// value inputs; persistence lives behind the repositories.
package seating

import "errors"

// Sentinel errors raised by the layout engine and the aggregates.  Callers
// match them with errors.Is; generation failures are wrapped with the
// offending labels or positions for context.
var (
	// ErrInvalidNumbering signals rows/columns missing or below 1 in
	// ROWS_COLUMNS mode, or an unknown numbering mode.
	ErrInvalidNumbering = errors.New("invalid numbering scheme")

	// ErrConflictingSpec signals explicit seats supplied together with
	// ROWS_COLUMNS mode.
	ErrConflictingSpec = errors.New("conflicting seat specification")

	// ErrInvalidSeatSpec signals a manual seat with neither a label nor a
	// grid position, or a malformed grid ref.
	ErrInvalidSeatSpec = errors.New("invalid seat spec")

	// ErrOverlappingPlacement signals two seats whose grid rectangles
	// intersect within the same generation call.
	ErrOverlappingPlacement = errors.New("overlapping seat placement")

	// ErrDuplicateLabel signals a seat label reused within a zone.
	ErrDuplicateLabel = errors.New("duplicate seat label")

	// ErrEmptyName signals a name that is empty after trimming.
	ErrEmptyName = errors.New("nombre must not be empty")

	// ErrSeatNotFound signals a seat id absent from a zone's collection.
	ErrSeatNotFound = errors.New("seat not found in zone")
)

// IsDomainError reports whether err belongs to the layout/aggregation error
// taxonomy, i.e. should surface as a 422-equivalent rather than a 500.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrInvalidNumbering) ||
		errors.Is(err, ErrConflictingSpec) ||
		errors.Is(err, ErrInvalidSeatSpec) ||
		errors.Is(err, ErrOverlappingPlacement) ||
		errors.Is(err, ErrDuplicateLabel) ||
		errors.Is(err, ErrEmptyName)
}
