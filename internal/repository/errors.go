// Package repository implements MySQL persistence for scenarios, events,
// zones and seats.  Sentinel errors let handlers distinguish failure
// scenarios without inspecting SQL details.
package repository

import "errors"

// ErrScenarioNotFound is returned when a scenario lookup yields no rows.
var ErrScenarioNotFound = errors.New("escenario not found")

// ErrEventNotFound is returned when an event lookup yields no rows.
var ErrEventNotFound = errors.New("evento not found")

// ErrZoneNotFound is returned when a zone lookup yields no rows, including
// the case where the zone exists but under a different event.
var ErrZoneNotFound = errors.New("zona not found")

// ErrSeatNotFound is returned when a seat lookup yields no rows within the
// requested zone and event.
var ErrSeatNotFound = errors.New("asiento not found")
