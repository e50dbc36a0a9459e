package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketera/escenario-service/internal/seating"
)

func TestCreateZoneGeneratesSeatsAndCapacity(t *testing.T) {
	db := newFakeDB()
	h := db.handler()
	s := seedScenario(t, db, "Wembley", "London")
	ev := seedEvent(t, db, s.ID, "Final")

	rec := invoke(t, h.CreateZone, http.MethodPost,
		`{"name":"Platea","numbering":{"mode":"ROWS_COLUMNS","rows":3,"columns":4,"row_prefix":"R","seat_prefix":"-"}}`,
		"event_id", ev.ID.String())

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(12), body["seat_count"])
	assert.Equal(t, float64(12), body["capacidad_total"])

	assert.Equal(t, 12, db.scenarios[s.ID].CapacidadTotal)
	require.Len(t, db.published, 1)
	assert.Equal(t, "created", db.published[0].Action)
	assert.Equal(t, 12, db.published[0].SeatCount)
}

func TestCreateZoneManualMode(t *testing.T) {
	db := newFakeDB()
	h := db.handler()
	s := seedScenario(t, db, "Wembley", "London")
	ev := seedEvent(t, db, s.ID, "Final")

	rec := invoke(t, h.CreateZone, http.MethodPost,
		`{"name":"Palcos","numbering":{"mode":"MANUAL"},"seats":[{"label":"Palco-1","position":{"start_row":1,"start_col":1,"row_span":1,"col_span":4}},{"label":"Palco-2","position":{"start_row":1,"start_col":5,"row_span":1,"col_span":4}}]}`,
		"event_id", ev.ID.String())

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["seat_count"])
}

func TestCreateZoneInvalidNumbering(t *testing.T) {
	db := newFakeDB()
	h := db.handler()
	s := seedScenario(t, db, "Wembley", "London")
	ev := seedEvent(t, db, s.ID, "Final")

	rec := invoke(t, h.CreateZone, http.MethodPost,
		`{"name":"Rota","numbering":{"mode":"ROWS_COLUMNS","rows":0,"columns":4}}`,
		"event_id", ev.ID.String())

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, db.zones)
	assert.Empty(t, db.seats)
}

func TestCreateZoneOverlapRejected(t *testing.T) {
	db := newFakeDB()
	h := db.handler()
	s := seedScenario(t, db, "Wembley", "London")
	ev := seedEvent(t, db, s.ID, "Final")

	rec := invoke(t, h.CreateZone, http.MethodPost,
		`{"name":"Palcos","numbering":{"mode":"MANUAL"},"seats":[{"label":"A","position":{"start_row":1,"start_col":1,"row_span":2,"col_span":2}},{"label":"B","position":{"start_row":2,"start_col":2,"row_span":1,"col_span":1}}]}`,
		"event_id", ev.ID.String())

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body["error"], "overlapping")
}

func TestCreateZoneEventNotFound(t *testing.T) {
	db := newFakeDB()
	h := db.handler()

	rec := invoke(t, h.CreateZone, http.MethodPost,
		`{"name":"Platea","numbering":{"mode":"ROWS_COLUMNS","rows":1,"columns":1}}`,
		"event_id", uuid.NewString())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateZoneEmptyName(t *testing.T) {
	db := newFakeDB()
	h := db.handler()
	s := seedScenario(t, db, "Wembley", "London")
	ev := seedEvent(t, db, s.ID, "Final")

	rec := invoke(t, h.CreateZone, http.MethodPost,
		`{"name":"  ","numbering":{"mode":"ROWS_COLUMNS","rows":1,"columns":1}}`,
		"event_id", ev.ID.String())
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListZones(t *testing.T) {
	db := newFakeDB()
	h := db.handler()
	s := seedScenario(t, db, "Wembley", "London")
	ev := seedEvent(t, db, s.ID, "Final")
	createZone(t, h, ev.ID, "Platea", 2, 3)

	rec := invoke(t, h.ListZones, http.MethodGet, "", "event_id", ev.ID.String())
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	first := items[0].(map[string]any)
	assert.Equal(t, float64(6), first["seat_count"])
}

func TestRegenerateLayoutReplacesSeats(t *testing.T) {
	db := newFakeDB()
	h := db.handler()
	s := seedScenario(t, db, "Wembley", "London")
	ev := seedEvent(t, db, s.ID, "Final")
	zoneID := createZone(t, h, ev.ID, "Platea", 2, 2)

	rec := invoke(t, h.RegenerateLayout, http.MethodPut,
		`{"numbering":{"mode":"ROWS_COLUMNS","rows":3,"columns":3}}`,
		"event_id", ev.ID.String(), "zone_id", zoneID.String())

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(9), body["seat_count"])
	assert.Equal(t, float64(9), body["capacidad_total"])
	assert.Len(t, db.seats, 9)
	assert.Equal(t, seating.NumberingScheme{Mode: seating.ModeRowsColumns, Rows: 3, Columns: 3},
		db.zones[zoneID].Numbering)
	assert.Equal(t, "regenerated", db.published[len(db.published)-1].Action)
}

func TestRegenerateLayoutBadSchemeLeavesSeats(t *testing.T) {
	db := newFakeDB()
	h := db.handler()
	s := seedScenario(t, db, "Wembley", "London")
	ev := seedEvent(t, db, s.ID, "Final")
	zoneID := createZone(t, h, ev.ID, "Platea", 2, 2)

	rec := invoke(t, h.RegenerateLayout, http.MethodPut,
		`{"numbering":{"mode":"ROWS_COLUMNS","rows":0,"columns":3}}`,
		"event_id", ev.ID.String(), "zone_id", zoneID.String())

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	// Validation happens before the old layout is touched.
	assert.Len(t, db.seats, 4)
	assert.Equal(t, 4, db.scenarios[s.ID].CapacidadTotal)
}

func TestRegenerateLayoutZoneNotFound(t *testing.T) {
	db := newFakeDB()
	h := db.handler()
	s := seedScenario(t, db, "Wembley", "London")
	ev := seedEvent(t, db, s.ID, "Final")

	rec := invoke(t, h.RegenerateLayout, http.MethodPut,
		`{"numbering":{"mode":"ROWS_COLUMNS","rows":1,"columns":1}}`,
		"event_id", ev.ID.String(), "zone_id", uuid.NewString())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteZoneShrinksCapacity(t *testing.T) {
	db := newFakeDB()
	h := db.handler()
	s := seedScenario(t, db, "Wembley", "London")
	ev := seedEvent(t, db, s.ID, "Final")
	keep := createZone(t, h, ev.ID, "Platea", 2, 2)
	gone := createZone(t, h, ev.ID, "Palco", 1, 3)
	require.Equal(t, 7, db.scenarios[s.ID].CapacidadTotal)

	rec := invoke(t, h.DeleteZone, http.MethodDelete, "",
		"event_id", ev.ID.String(), "zone_id", gone.String())

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 4, db.scenarios[s.ID].CapacidadTotal)
	assert.Contains(t, db.zones, keep)
	assert.NotContains(t, db.zones, gone)
	assert.Equal(t, "deleted", db.published[len(db.published)-1].Action)
}

// createZone creates a ROWS_COLUMNS zone through the handler and returns its id.
func createZone(t *testing.T, h *Handler, eventID uuid.UUID, name string, rows, cols int) uuid.UUID {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"numbering":{"mode":"ROWS_COLUMNS","rows":%d,"columns":%d}}`, name, rows, cols)
	rec := invoke(t, h.CreateZone, http.MethodPost, body, "event_id", eventID.String())
	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody(t, rec)
	zone := resp["zone"].(map[string]any)
	id, err := uuid.Parse(zone["id"].(string))
	require.NoError(t, err)
	return id
}
