package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/ticketera/escenario-service/internal/seating"
)

// invoke runs a handler func against a synthetic request and returns the
// recorder.  params are alternating name/value pairs for path parameters.
func invoke(t *testing.T, fn echo.HandlerFunc, method, body string, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	require.NoError(t, fn(c))
	return rec
}

// invokeQuery is invoke with a raw query string instead of a body.
func invokeQuery(t *testing.T, fn echo.HandlerFunc, method, query string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/?"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, fn(c))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func seedScenario(t *testing.T, db *fakeDB, nombre, ciudad string) seating.Scenario {
	t.Helper()
	s, err := seating.NewScenario(seating.ScenarioInput{Nombre: nombre, Ciudad: ciudad})
	require.NoError(t, err)
	require.NoError(t, (&fakeScenarios{db}).Create(context.Background(), &s))
	return s
}

func seedEvent(t *testing.T, db *fakeDB, scenarioID uuid.UUID, nombre string) seating.Event {
	t.Helper()
	e, err := seating.NewEvent(scenarioID, nombre)
	require.NoError(t, err)
	require.NoError(t, (&fakeEvents{db}).Create(context.Background(), &e))
	return e
}
