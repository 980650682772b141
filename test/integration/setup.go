// Package integration provides helpers and integration tests for the
// flight record system. Integration tests verify that the HTTP layer, the
// core use cases and the store boundary work together correctly.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/flightlog/flight-record-service/internal/adapter/http"
	"github.com/flightlog/flight-record-service/internal/domain"
	"github.com/flightlog/flight-record-service/internal/usecase"
	"github.com/flightlog/flight-record-service/test/mock"
)

// Reference fixtures shared by the integration tests.
var (
	JFK = &domain.Airport{
		ID: "ap-jfk", ICAO: "KJFK", IATA: "JFK", Name: "John F. Kennedy International",
		Latitude: 40.6413, Longitude: -73.7781, Timezone: "America/New_York",
	}
	LAX = &domain.Airport{
		ID: "ap-lax", ICAO: "KLAX", IATA: "LAX", Name: "Los Angeles International",
		Latitude: 33.9416, Longitude: -118.4085, Timezone: "America/Los_Angeles",
	}
	CGK = &domain.Airport{
		ID: "ap-cgk", ICAO: "WIII", IATA: "CGK", Name: "Soekarno-Hatta International",
		Latitude: -6.1256, Longitude: 106.6559, Timezone: "Asia/Jakarta",
	}
	Garuda = &domain.Airline{ID: "al-gia", ICAO: "GIA", Name: "Garuda Indonesia"}
)

// TestServer wraps an Echo instance wired against an in-memory store.
type TestServer struct {
	Echo  *echo.Echo
	Store *mock.Store
}

// NewTestServer creates a test server with the full application stack on
// top of a seeded in-memory store.
func NewTestServer() *TestServer {
	st := mock.NewStore().
		WithAirports(JFK, LAX, CGK).
		WithAirlines(Garuda)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	recorder := usecase.NewFlightRecorder(st, nil)
	importer := usecase.NewImporter(st, nil)
	handler := httpAdapter.NewFlightHandler(recorder, importer, st)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:  e,
		Store: st,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	UserID string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyBytes []byte
	if req.Body != nil {
		bodyBytes, _ = json.Marshal(req.Body)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bytes.NewReader(bodyBytes))
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if req.UserID != "" {
		httpReq.Header.Set(httpAdapter.HeaderUserID, req.UserID)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// CreateFlight posts a flight as the given user.
func (ts *TestServer) CreateFlight(userID string, body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights",
		UserID: userID,
		Body:   body,
	})
}

// Import posts an import batch as the given user.
func (ts *TestServer) Import(userID, query string, body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/import" + query,
		UserID: userID,
		Body:   body,
	})
}

// Decode unmarshals the response body into out.
func (r Response) Decode(out interface{}) error {
	return json.Unmarshal(r.Body, out)
}
