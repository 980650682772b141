package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightlog/flight-record-service/internal/adapter/http/response"
	"github.com/flightlog/flight-record-service/internal/domain"
	"github.com/flightlog/flight-record-service/internal/usecase"
)

var (
	testJFK = &domain.Airport{
		ID: "ap-jfk", ICAO: "KJFK", IATA: "JFK", Name: "John F. Kennedy International",
		Latitude: 40.6413, Longitude: -73.7781, Timezone: "America/New_York",
	}
	testLAX = &domain.Airport{
		ID: "ap-lax", ICAO: "KLAX", IATA: "LAX", Name: "Los Angeles International",
		Latitude: 33.9416, Longitude: -118.4085, Timezone: "America/Los_Angeles",
	}
	testAirline = &domain.Airline{ID: "al-gia", ICAO: "GIA", Name: "Garuda Indonesia"}
)

// mockRecorder is a func-field implementation of FlightRecorder.
type mockRecorder struct {
	createFunc func(ctx context.Context, userID string, in domain.FlightInput) (*domain.Flight, error)
	updateFunc func(ctx context.Context, userID, id string, in domain.FlightInput) error
	deleteFunc func(ctx context.Context, userID, id string) error
	listFunc   func(ctx context.Context, userID string) ([]*domain.Flight, error)
}

func (m *mockRecorder) CreateFlight(ctx context.Context, userID string, in domain.FlightInput) (*domain.Flight, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, in)
	}
	return &domain.Flight{ID: "fl-1"}, nil
}

func (m *mockRecorder) UpdateFlight(ctx context.Context, userID, id string, in domain.FlightInput) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, id, in)
	}
	return nil
}

func (m *mockRecorder) DeleteFlight(ctx context.Context, userID, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, id)
	}
	return nil
}

func (m *mockRecorder) ListFlights(ctx context.Context, userID string) ([]*domain.Flight, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID)
	}
	return nil, nil
}

// mockImporter is a func-field implementation of Importer.
type mockImporter struct {
	importFunc func(ctx context.Context, userID string, batch []usecase.ImportFlight, opts usecase.ImportOptions) (*usecase.ImportResult, error)
}

func (m *mockImporter) Import(ctx context.Context, userID string, batch []usecase.ImportFlight, opts usecase.ImportOptions) (*usecase.ImportResult, error) {
	if m.importFunc != nil {
		return m.importFunc(ctx, userID, batch, opts)
	}
	return &usecase.ImportResult{}, nil
}

// mockRefs serves reference data from in-memory fixtures.
type mockRefs struct{}

func (mockRefs) GetAirportsByIDs(_ context.Context, ids []string) (map[string]*domain.Airport, error) {
	out := map[string]*domain.Airport{}
	for _, id := range ids {
		for _, a := range []*domain.Airport{testJFK, testLAX} {
			if a.ID == id {
				out[id] = a
			}
		}
	}
	return out, nil
}

func (mockRefs) FindAirportsByCodes(_ context.Context, codes []string) (map[string]*domain.Airport, error) {
	out := map[string]*domain.Airport{}
	for _, a := range []*domain.Airport{testJFK, testLAX} {
		out[a.ICAO] = a
		out[a.IATA] = a
	}
	return out, nil
}

func (mockRefs) GetAirlinesByIDs(_ context.Context, ids []string) (map[string]*domain.Airline, error) {
	out := map[string]*domain.Airline{}
	for _, id := range ids {
		if id == testAirline.ID {
			out[id] = testAirline
		}
	}
	return out, nil
}

func (mockRefs) FindAirlinesByCodes(_ context.Context, codes []string) (map[string]*domain.Airline, error) {
	return map[string]*domain.Airline{testAirline.ICAO: testAirline}, nil
}

func (mockRefs) GetAircraftByIDs(_ context.Context, ids []string) (map[string]*domain.Aircraft, error) {
	return map[string]*domain.Aircraft{}, nil
}

// setupTestHandler creates a test Echo instance with the handler wired in.
func setupTestHandler(rec usecase.FlightRecorder, imp usecase.Importer) *echo.Echo {
	e := echo.New()
	h := NewFlightHandler(rec, imp, mockRefs{})
	RegisterRoutes(e, h)
	return e
}

// makeRequest issues a test request, optionally as the given acting user.
func makeRequest(e *echo.Echo, method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if userID != "" {
		req.Header.Set(HeaderUserID, userID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorDetail {
	t.Helper()
	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	return detail
}

func validSaveBody() map[string]interface{} {
	return map[string]interface{}{
		"reason": "leisure",
		"legs": []map[string]interface{}{{
			"from":      "ap-jfk",
			"to":        "ap-lax",
			"departure": map[string]string{"date": "2024-01-01", "time": "10:00"},
			"seats":     []map[string]string{{"userId": "u1"}},
		}},
	}
}

func TestHealth(t *testing.T) {
	e := setupTestHandler(&mockRecorder{}, &mockImporter{})

	rec := makeRequest(e, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestCreateFlight_Success(t *testing.T) {
	var captured domain.FlightInput
	recorder := &mockRecorder{
		createFunc: func(_ context.Context, userID string, in domain.FlightInput) (*domain.Flight, error) {
			assert.Equal(t, "u1", userID)
			captured = in
			return &domain.Flight{ID: "fl-1", Date: "2024-01-01"}, nil
		},
	}
	e := setupTestHandler(recorder, &mockImporter{})

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights", "u1", validSaveBody())

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"fl-1"`)

	require.Len(t, captured.Legs, 1)
	require.NotNil(t, captured.Legs[0].From)
	assert.Equal(t, "America/New_York", captured.Legs[0].From.Timezone)
	assert.Equal(t, "2024-01-01", captured.Legs[0].Departure.Date)
}

func TestCreateFlight_LegacyFlatShape(t *testing.T) {
	var captured domain.FlightInput
	recorder := &mockRecorder{
		createFunc: func(_ context.Context, _ string, in domain.FlightInput) (*domain.Flight, error) {
			captured = in
			return &domain.Flight{ID: "fl-1"}, nil
		},
	}
	e := setupTestHandler(recorder, &mockImporter{})

	// Leg fields at the top level, no legs array.
	body := map[string]interface{}{
		"from":      "ap-jfk",
		"to":        "ap-lax",
		"departure": map[string]string{"date": "2024-01-01", "time": "10:00"},
	}

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights", "u1", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, captured.Legs, 1)
	require.NotNil(t, captured.Legs[0].To)
	assert.Equal(t, "ap-lax", captured.Legs[0].To.ID)
}

func TestCreateFlight_MissingActingUser(t *testing.T) {
	e := setupTestHandler(&mockRecorder{}, &mockImporter{})

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights", "", validSaveBody())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, response.MsgMissingActingUser, decodeError(t, rec).Message)
}

func TestCreateFlight_UnknownAirport(t *testing.T) {
	e := setupTestHandler(&mockRecorder{}, &mockImporter{})

	body := validSaveBody()
	body["legs"].([]map[string]interface{})[0]["to"] = "ap-nowhere"

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights", "u1", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, "legs[0].to", detail.Path)
	assert.Equal(t, "unknown airport", detail.Message)
}

func TestCreateFlight_FieldErrorFromCore(t *testing.T) {
	recorder := &mockRecorder{
		createFunc: func(_ context.Context, _ string, _ domain.FlightInput) (*domain.Flight, error) {
			return nil, domain.LegFieldError(0, "departure", "select a departure date")
		},
	}
	e := setupTestHandler(recorder, &mockImporter{})

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights", "u1", validSaveBody())

	require.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, "legs[0].departure", detail.Path)
	assert.Equal(t, "select a departure date", detail.Message)
}

func TestCreateFlight_StoreFailure(t *testing.T) {
	recorder := &mockRecorder{
		createFunc: func(_ context.Context, _ string, _ domain.FlightInput) (*domain.Flight, error) {
			return nil, domain.NewStoreError(assert.AnError)
		},
	}
	e := setupTestHandler(recorder, &mockImporter{})

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights", "u1", validSaveBody())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// The store error detail never leaks to the client.
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestUpdateFlight_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "success", err: nil, wantStatus: http.StatusNoContent},
		{name: "not a seat holder", err: domain.ErrNotFlightOwner, wantStatus: http.StatusForbidden},
		{name: "missing flight", err: domain.ErrFlightNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &mockRecorder{
				updateFunc: func(_ context.Context, userID, id string, _ domain.FlightInput) error {
					assert.Equal(t, "u1", userID)
					assert.Equal(t, "fl-1", id)
					return tt.err
				},
			}
			e := setupTestHandler(recorder, &mockImporter{})

			rec := makeRequest(e, http.MethodPut, "/api/v1/flights/fl-1", "u1", validSaveBody())

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeleteFlight(t *testing.T) {
	recorder := &mockRecorder{
		deleteFunc: func(_ context.Context, userID, id string) error {
			assert.Equal(t, "fl-1", id)
			return nil
		},
	}
	e := setupTestHandler(recorder, &mockImporter{})

	rec := makeRequest(e, http.MethodDelete, "/api/v1/flights/fl-1", "u1", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestListFlights_EmptyIsArray(t *testing.T) {
	e := setupTestHandler(&mockRecorder{}, &mockImporter{})

	rec := makeRequest(e, http.MethodGet, "/api/v1/flights", "u1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestImportFlights_OptionsWiring(t *testing.T) {
	var captured usecase.ImportOptions
	importer := &mockImporter{
		importFunc: func(_ context.Context, userID string, batch []usecase.ImportFlight, opts usecase.ImportOptions) (*usecase.ImportResult, error) {
			assert.Equal(t, "u1", userID)
			require.Len(t, batch, 1)
			captured = opts
			return &usecase.ImportResult{InsertedFlights: 1}, nil
		},
	}
	e := setupTestHandler(&mockRecorder{}, importer)

	body := map[string]interface{}{
		"flights": []map[string]interface{}{{
			"legs": []map[string]interface{}{{
				"from":      "JFK",
				"to":        "LAX",
				"departure": map[string]string{"date": "2024-01-01", "time": "10:00"},
				"airline":   "GIA",
				"seats":     []map[string]string{{"travellerName": "Alice"}},
			}},
		}},
		"userMappings": map[string]string{"Alice": "u-alice"},
	}

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights/import?dedupe=false", "u1", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"insertedFlights":1`)

	assert.False(t, captured.Dedupe)
	assert.Contains(t, captured.AirportsByCode, "JFK")
	assert.Contains(t, captured.AirlinesByCode, "GIA")
	assert.Equal(t, "u-alice", captured.UsersByName["Alice"])
}

func TestImportFlights_DedupeDefaultsTrue(t *testing.T) {
	importer := &mockImporter{
		importFunc: func(_ context.Context, _ string, _ []usecase.ImportFlight, opts usecase.ImportOptions) (*usecase.ImportResult, error) {
			assert.True(t, opts.Dedupe)
			return &usecase.ImportResult{}, nil
		},
	}
	e := setupTestHandler(&mockRecorder{}, importer)

	body := map[string]interface{}{
		"flights": []map[string]interface{}{{"legs": []map[string]interface{}{{"from": "JFK", "to": "LAX"}}}},
	}

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights/import", "u1", body)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestImportFlights_EmptyBatch(t *testing.T) {
	e := setupTestHandler(&mockRecorder{}, &mockImporter{})

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights/import", "u1", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
