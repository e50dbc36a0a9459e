package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateScenario(t *testing.T) {
	db := newFakeDB()
	h := db.handler()

	rec := invoke(t, h.CreateScenario, http.MethodPost,
		`{"nombre":" Estadio Azteca ","ciudad":"CDMX","pais":"Mexico"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Estadio Azteca", body["nombre"])
	assert.Equal(t, "CDMX", body["ciudad"])
	assert.Equal(t, true, body["activo"])
	assert.Equal(t, float64(0), body["capacidad_total"])
}

func TestCreateScenarioEmptyName(t *testing.T) {
	db := newFakeDB()
	h := db.handler()

	rec := invoke(t, h.CreateScenario, http.MethodPost, `{"nombre":"   "}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetScenarioNotFound(t *testing.T) {
	db := newFakeDB()
	h := db.handler()

	rec := invoke(t, h.GetScenario, http.MethodGet, "", "id", uuid.NewString())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetScenarioBadID(t *testing.T) {
	db := newFakeDB()
	h := db.handler()

	rec := invoke(t, h.GetScenario, http.MethodGet, "", "id", "not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchScenariosPagination(t *testing.T) {
	db := newFakeDB()
	h := db.handler()
	for i := 0; i < 25; i++ {
		seedScenario(t, db, fmt.Sprintf("Teatro %02d", i), "Madrid")
	}

	rec := invokeQuery(t, h.SearchScenarios, http.MethodGet, "page=3&page_size=10")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(25), body["total"])
	assert.Equal(t, float64(3), body["page"])
	assert.Len(t, body["items"], 5)
}

func TestSearchScenariosFilters(t *testing.T) {
	db := newFakeDB()
	h := db.handler()
	seedScenario(t, db, "Estadio Nacional", "Lima")
	seedScenario(t, db, "Teatro Municipal", "Lima")
	seedScenario(t, db, "Estadio Centenario", "Montevideo")

	rec := invokeQuery(t, h.SearchScenarios, http.MethodGet, "q=estadio&ciudad=Lima")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["total"])
	assert.Len(t, body["items"], 1)
}

func TestSearchScenariosActivoFilter(t *testing.T) {
	db := newFakeDB()
	h := db.handler()
	seedScenario(t, db, "Abierto", "Quito")
	closed := seedScenario(t, db, "Cerrado", "Quito")
	closed.Activo = false
	db.scenarios[closed.ID] = closed

	rec := invokeQuery(t, h.SearchScenarios, http.MethodGet, "activo=false")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["total"])
}

func TestSearchScenariosInvalidPage(t *testing.T) {
	db := newFakeDB()
	h := db.handler()

	rec := invokeQuery(t, h.SearchScenarios, http.MethodGet, "page=0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = invokeQuery(t, h.SearchScenarios, http.MethodGet, "page_size=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchScenariosEmptyPage(t *testing.T) {
	db := newFakeDB()
	h := db.handler()
	seedScenario(t, db, "Solo", "Bogota")

	rec := invokeQuery(t, h.SearchScenarios, http.MethodGet, "page=5&page_size=10")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["total"])
	assert.Len(t, body["items"], 0)
}

func TestUpdateScenarioPartial(t *testing.T) {
	db := newFakeDB()
	h := db.handler()
	s := seedScenario(t, db, "Gran Rex", "Buenos Aires")

	rec := invoke(t, h.UpdateScenario, http.MethodPatch,
		`{"ciudad":"Rosario"}`, "id", s.ID.String())

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Rosario", body["ciudad"])
	assert.Equal(t, "Gran Rex", body["nombre"])
}

func TestUpdateScenarioEmptyNombre(t *testing.T) {
	db := newFakeDB()
	h := db.handler()
	s := seedScenario(t, db, "Gran Rex", "Buenos Aires")

	rec := invoke(t, h.UpdateScenario, http.MethodPatch,
		`{"nombre":"  "}`, "id", s.ID.String())
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdateScenarioSoftDelete(t *testing.T) {
	db := newFakeDB()
	h := db.handler()
	s := seedScenario(t, db, "Gran Rex", "Buenos Aires")

	rec := invoke(t, h.UpdateScenario, http.MethodPatch,
		`{"activo":false}`, "id", s.ID.String())
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["activo"])
}

func TestDeleteScenario(t *testing.T) {
	db := newFakeDB()
	h := db.handler()
	s := seedScenario(t, db, "Efimero", "Lima")

	rec := invoke(t, h.DeleteScenario, http.MethodDelete, "", "id", s.ID.String())
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = invoke(t, h.GetScenario, http.MethodGet, "", "id", s.ID.String())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteScenarioNotFound(t *testing.T) {
	db := newFakeDB()
	h := db.handler()

	rec := invoke(t, h.DeleteScenario, http.MethodDelete, "", "id", uuid.NewString())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateAndListEvents(t *testing.T) {
	db := newFakeDB()
	h := db.handler()
	s := seedScenario(t, db, "Movistar Arena", "Santiago")

	rec := invoke(t, h.CreateEvent, http.MethodPost,
		`{"nombre":"Gira 2026"}`, "id", s.ID.String())
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Gira 2026", body["nombre"])
	assert.Equal(t, s.ID.String(), body["escenario_id"])

	rec = invoke(t, h.ListEvents, http.MethodGet, "", "id", s.ID.String())
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody(t, rec)
	assert.Len(t, list["items"], 1)
}

func TestCreateEventScenarioNotFound(t *testing.T) {
	db := newFakeDB()
	h := db.handler()

	rec := invoke(t, h.CreateEvent, http.MethodPost,
		`{"nombre":"Huerfano"}`, "id", uuid.NewString())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
