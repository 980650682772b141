package usecase

import (
	"context"
	"errors"

	"github.com/flightlog/flight-record-service/internal/domain"
	"github.com/flightlog/flight-record-service/internal/infrastructure/logger"
)

// FlightRecorder defines the single-flight save operations of the engine.
type FlightRecorder interface {
	// CreateFlight validates and assembles the input and atomically persists
	// the new flight. Returns the stored flight with its new ID.
	CreateFlight(ctx context.Context, actingUserID string, in domain.FlightInput) (*domain.Flight, error)

	// UpdateFlight validates the input and atomically replaces the legs and
	// seats of an existing flight. The acting user must hold a seat on at
	// least one leg of the existing record.
	UpdateFlight(ctx context.Context, actingUserID, flightID string, in domain.FlightInput) error

	// DeleteFlight removes a flight. The same ownership rule as for updates
	// applies.
	DeleteFlight(ctx context.Context, actingUserID, flightID string) error

	// ListFlights returns the acting user's flights, legs ordered.
	ListFlights(ctx context.Context, actingUserID string) ([]*domain.Flight, error)
}

// flightRecorder implements FlightRecorder on top of the store boundary.
type flightRecorder struct {
	store domain.Store
	log   *logger.Logger
}

// NewFlightRecorder creates a FlightRecorder backed by the given store.
func NewFlightRecorder(store domain.Store, log *logger.Logger) FlightRecorder {
	if log == nil {
		log = logger.Nop()
	}
	return &flightRecorder{store: store, log: log}
}

// AssembleFlight validates all legs of one raw flight in order and builds
// the flight record. Validation short-circuits on the first leg error,
// propagating its field-scoped error. The flight's nominal date is the
// primary departure date of the first leg, which by construction is the
// calendar date of the effective departure instant in the first leg's
// origin timezone.
func AssembleFlight(in domain.FlightInput) (*domain.Flight, error) {
	if len(in.Legs) == 0 {
		return nil, domain.NewFieldError("legs", "flight needs at least one leg")
	}
	if !in.Reason.IsValid() {
		return nil, domain.NewFieldError("reason", "unknown flight reason")
	}

	flight := &domain.Flight{
		Reason: in.Reason,
		Note:   in.Note,
		Legs:   make([]domain.Leg, 0, len(in.Legs)),
	}

	for i, rawLeg := range in.Legs {
		leg, err := ValidateLeg(i, rawLeg)
		if err != nil {
			return nil, err
		}
		flight.Legs = append(flight.Legs, leg)
	}

	first := in.Legs[0]
	flight.Date = first.Departure.Date
	if flight.Date == "" {
		flight.Date = first.DepartureScheduled.Date
	}

	return flight, nil
}

// CreateFlight implements FlightRecorder.CreateFlight.
func (r *flightRecorder) CreateFlight(ctx context.Context, actingUserID string, in domain.FlightInput) (*domain.Flight, error) {
	in.ApplyDefaults(actingUserID)

	flight, err := AssembleFlight(in)
	if err != nil {
		return nil, err
	}

	id, err := r.store.CreateFlight(ctx, flight)
	if err != nil {
		r.log.Error().Err(err).Msg("create flight failed")
		return nil, domain.NewStoreError(err)
	}
	flight.ID = id

	r.log.Info().Str("flight_id", id).Str("date", flight.Date).Int("legs", len(flight.Legs)).Msg("flight created")
	return flight, nil
}

// UpdateFlight implements FlightRecorder.UpdateFlight.
func (r *flightRecorder) UpdateFlight(ctx context.Context, actingUserID, flightID string, in domain.FlightInput) error {
	existing, err := r.store.GetFlight(ctx, flightID)
	if err != nil {
		if errors.Is(err, domain.ErrFlightNotFound) {
			return err
		}
		r.log.Error().Err(err).Str("flight_id", flightID).Msg("load flight failed")
		return domain.NewStoreError(err)
	}

	// Authorization lives here because it needs the existing record: only a
	// seat holder may rewrite a flight.
	if !existing.HasSeatForUser(actingUserID) {
		return domain.ErrNotFlightOwner
	}

	in.ApplyDefaults(actingUserID)

	flight, err := AssembleFlight(in)
	if err != nil {
		return err
	}
	flight.ID = flightID

	if err := r.store.UpdateFlight(ctx, flightID, flight); err != nil {
		r.log.Error().Err(err).Str("flight_id", flightID).Msg("update flight failed")
		return domain.NewStoreError(err)
	}

	r.log.Info().Str("flight_id", flightID).Msg("flight updated")
	return nil
}

// DeleteFlight implements FlightRecorder.DeleteFlight.
func (r *flightRecorder) DeleteFlight(ctx context.Context, actingUserID, flightID string) error {
	existing, err := r.store.GetFlight(ctx, flightID)
	if err != nil {
		if errors.Is(err, domain.ErrFlightNotFound) {
			return err
		}
		r.log.Error().Err(err).Str("flight_id", flightID).Msg("load flight failed")
		return domain.NewStoreError(err)
	}

	if !existing.HasSeatForUser(actingUserID) {
		return domain.ErrNotFlightOwner
	}

	if err := r.store.DeleteFlight(ctx, flightID); err != nil {
		r.log.Error().Err(err).Str("flight_id", flightID).Msg("delete flight failed")
		return domain.NewStoreError(err)
	}

	r.log.Info().Str("flight_id", flightID).Msg("flight deleted")
	return nil
}

// ListFlights implements FlightRecorder.ListFlights.
func (r *flightRecorder) ListFlights(ctx context.Context, actingUserID string) ([]*domain.Flight, error) {
	flights, err := r.store.FindUserFlights(ctx, actingUserID, domain.FlightFilter{})
	if err != nil {
		r.log.Error().Err(err).Msg("list flights failed")
		return nil, domain.NewStoreError(err)
	}
	return flights, nil
}
