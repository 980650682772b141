package http

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flightlog/flight-record-service/internal/adapter/http/response"
	"github.com/flightlog/flight-record-service/internal/domain"
	"github.com/flightlog/flight-record-service/internal/usecase"
)

// HeaderUserID carries the acting user's ID. Authentication happens
// upstream; this service trusts the header.
const HeaderUserID = "X-User-ID"

// FlightHandler handles HTTP requests for flight record endpoints.
type FlightHandler struct {
	recorder usecase.FlightRecorder
	importer usecase.Importer
	refs     domain.ReferenceStore
}

// NewFlightHandler creates a new FlightHandler.
func NewFlightHandler(recorder usecase.FlightRecorder, importer usecase.Importer, refs domain.ReferenceStore) *FlightHandler {
	return &FlightHandler{
		recorder: recorder,
		importer: importer,
		refs:     refs,
	}
}

// CreateFlight handles POST /api/v1/flights
//
// @Summary Record a flight
// @Description Validate and store a new flight with its legs and seats
// @Tags flights
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Param request body SaveFlightRequest true "Flight to record"
// @Success 201 {object} domain.Flight
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Operation failure"
// @Router /api/v1/flights [post]
func (h *FlightHandler) CreateFlight(c echo.Context) error {
	userID, ok := actingUser(c)
	if !ok {
		return response.BadRequest(c, response.MsgMissingActingUser)
	}

	var req SaveFlightRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	input, err := toFlightInput(c.Request().Context(), h.refs, &req)
	if err != nil {
		return h.handleError(c, err)
	}

	flight, err := h.recorder.CreateFlight(c.Request().Context(), userID, input)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, flight)
}

// UpdateFlight handles PUT /api/v1/flights/:id
//
// @Summary Replace a flight
// @Description Validate the input and replace the legs and seats of an existing flight
// @Tags flights
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Param id path string true "Flight ID"
// @Param request body SaveFlightRequest true "Replacement flight"
// @Success 204 "Replaced"
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 403 {object} response.ErrorDetail "Acting user holds no seat"
// @Failure 404 {object} response.ErrorDetail "Flight not found"
// @Router /api/v1/flights/{id} [put]
func (h *FlightHandler) UpdateFlight(c echo.Context) error {
	userID, ok := actingUser(c)
	if !ok {
		return response.BadRequest(c, response.MsgMissingActingUser)
	}

	var req SaveFlightRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	input, err := toFlightInput(c.Request().Context(), h.refs, &req)
	if err != nil {
		return h.handleError(c, err)
	}

	if err := h.recorder.UpdateFlight(c.Request().Context(), userID, c.Param("id"), input); err != nil {
		return h.handleError(c, err)
	}

	return response.NoContent(c)
}

// DeleteFlight handles DELETE /api/v1/flights/:id
//
// @Summary Delete a flight
// @Tags flights
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Param id path string true "Flight ID"
// @Success 204 "Deleted"
// @Failure 403 {object} response.ErrorDetail "Acting user holds no seat"
// @Failure 404 {object} response.ErrorDetail "Flight not found"
// @Router /api/v1/flights/{id} [delete]
func (h *FlightHandler) DeleteFlight(c echo.Context) error {
	userID, ok := actingUser(c)
	if !ok {
		return response.BadRequest(c, response.MsgMissingActingUser)
	}

	if err := h.recorder.DeleteFlight(c.Request().Context(), userID, c.Param("id")); err != nil {
		return h.handleError(c, err)
	}

	return response.NoContent(c)
}

// ListFlights handles GET /api/v1/flights
//
// @Summary List the acting user's flights
// @Tags flights
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Success 200 {array} domain.Flight
// @Router /api/v1/flights [get]
func (h *FlightHandler) ListFlights(c echo.Context) error {
	userID, ok := actingUser(c)
	if !ok {
		return response.BadRequest(c, response.MsgMissingActingUser)
	}

	flights, err := h.recorder.ListFlights(c.Request().Context(), userID)
	if err != nil {
		return h.handleError(c, err)
	}
	if flights == nil {
		flights = []*domain.Flight{}
	}

	return response.OK(c, flights)
}

// ImportFlights handles POST /api/v1/flights/import
//
// @Summary Bulk-import flights
// @Description Import a batch of flights, deduplicating against already recorded flights unless dedupe=false
// @Tags flights
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Param dedupe query boolean false "Deduplicate against existing flights (default true)"
// @Param request body ImportRequest true "Batch to import"
// @Success 200 {object} usecase.ImportResult
// @Failure 400 {object} response.ErrorDetail "Malformed request"
// @Failure 500 {object} response.ErrorDetail "Operation failure"
// @Router /api/v1/flights/import [post]
func (h *FlightHandler) ImportFlights(c echo.Context) error {
	userID, ok := actingUser(c)
	if !ok {
		return response.BadRequest(c, response.MsgMissingActingUser)
	}

	var req ImportRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if len(req.Flights) == 0 {
		return response.BadRequest(c, "flights must not be empty")
	}

	ctx := c.Request().Context()

	airports, err := h.refs.FindAirportsByCodes(ctx, importAirportCodes(req.Flights))
	if err != nil {
		return h.handleError(c, domain.NewStoreError(err))
	}
	airlines, err := h.refs.FindAirlinesByCodes(ctx, importAirlineCodes(req.Flights))
	if err != nil {
		return h.handleError(c, domain.NewStoreError(err))
	}

	opts := usecase.ImportOptions{
		Dedupe:         c.QueryParam("dedupe") != "false",
		AirportsByCode: airports,
		AirlinesByCode: airlines,
		UsersByName:    req.UserMappings,
	}

	result, err := h.importer.Import(ctx, userID, req.Flights, opts)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, result)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleError maps core errors to HTTP responses.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	if fe, ok := domain.AsFieldError(err); ok {
		return response.FieldFailure(c, fe.Path, fe.Message)
	}
	if errors.Is(err, domain.ErrNotFlightOwner) {
		return response.Forbidden(c)
	}
	if errors.Is(err, domain.ErrFlightNotFound) {
		return response.NotFound(c)
	}
	if oe, ok := domain.AsOperationError(err); ok {
		return response.OperationFailure(c, oe.Status, response.MsgInternalError)
	}
	return response.InternalServerError(c)
}

// actingUser extracts the acting user ID from the trusted header.
func actingUser(c echo.Context) (string, bool) {
	id := strings.TrimSpace(c.Request().Header.Get(HeaderUserID))
	return id, id != ""
}

// importAirportCodes collects every airport code referenced by the batch.
func importAirportCodes(flights []usecase.ImportFlight) []string {
	seen := map[string]struct{}{}
	var out []string
	add := func(code string) {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			return
		}
		if _, dup := seen[code]; dup {
			return
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	for _, f := range flights {
		for _, leg := range f.Legs {
			add(leg.FromCode)
			add(leg.ToCode)
		}
	}
	return out
}

// importAirlineCodes collects every airline designator referenced by the
// batch.
func importAirlineCodes(flights []usecase.ImportFlight) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, f := range flights {
		for _, leg := range f.Legs {
			code := strings.ToUpper(strings.TrimSpace(leg.AirlineCode))
			if code == "" {
				continue
			}
			if _, dup := seen[code]; dup {
				continue
			}
			seen[code] = struct{}{}
			out = append(out, code)
		}
	}
	return out
}
