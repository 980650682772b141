// Package usecase contains the business logic of the flight record engine:
// per-leg datetime validation, flight assembly and bulk-import
// deduplication.
package usecase

import (
	"fmt"
	"time"

	"github.com/flightlog/flight-record-service/internal/domain"
	"github.com/flightlog/flight-record-service/internal/geo"
	"github.com/flightlog/flight-record-service/internal/infrastructure/timeutil"
)

// Validation messages surfaced to the user.
const (
	msgSelectOrigin      = "select an origin airport"
	msgSelectDestination = "select a destination airport"
	msgSelectDeparture   = "select a departure date"
	msgDateTooOld        = "date must not be before 1970"
	msgArrivalNoTime     = "cannot have arrival date without time"
	msgArrivalBefore     = "arrival must be after departure"
	msgSeatRequired      = "at least one traveller is required"
	msgSeatIdentity      = "seat needs either a user or a guest name"
	msgSeatSingleIdent   = "seat cannot have both a user and a guest name"
)

// ValidateLeg turns the raw leg input at position index into a normalized
// leg record. It reconciles every entered date/time pair into a UTC instant
// anchored to the relevant airport's timezone, derives the leg duration and
// checks the leg invariants. The first violation is returned as a
// *domain.FieldError scoped to the offending input (e.g. "legs[2].arrivalTime").
//
// The function is pure: it never touches storage and fills no defaults
// (defaults are merged before validation, see FlightInput.ApplyDefaults).
func ValidateLeg(index int, in domain.LegInput) (domain.Leg, error) {
	if in.From == nil {
		return domain.Leg{}, domain.LegFieldError(index, "from", msgSelectOrigin)
	}
	if in.To == nil {
		return domain.Leg{}, domain.LegFieldError(index, "to", msgSelectDestination)
	}

	// A leg needs at least a departure date, actual or scheduled.
	primaryDate := in.Departure.Date
	if primaryDate == "" {
		primaryDate = in.DepartureScheduled.Date
	}
	if primaryDate == "" {
		return domain.Leg{}, domain.LegFieldError(index, "departure", msgSelectDeparture)
	}

	primary, err := timeutil.ParseLocalDate(primaryDate, in.From.Timezone)
	if err != nil {
		return domain.Leg{}, domain.LegFieldError(index, "departure", err.Error())
	}
	if timeutil.BeforeMinimumEpoch(primary) {
		return domain.Leg{}, domain.LegFieldError(index, "departure", msgDateTooOld)
	}

	leg := domain.Leg{
		Order:                index,
		From:                 in.From,
		To:                   in.To,
		DepartureTerminal:    in.DepartureTerminal,
		DepartureGate:        in.DepartureGate,
		ArrivalTerminal:      in.ArrivalTerminal,
		ArrivalGate:          in.ArrivalGate,
		FlightNumber:         in.FlightNumber,
		AircraftRegistration: in.AircraftRegistration,
		Airline:              in.Airline,
		Aircraft:             in.Aircraft,
	}

	// Departure-side fields resolve in the origin zone. A date without its
	// paired time stays date-only information and is never promoted to an
	// instant.
	if leg.Departure, err = mergePair(in.Departure, in.From.Timezone); err != nil {
		return domain.Leg{}, domain.LegFieldError(index, "departureTime", err.Error())
	}
	if leg.DepartureScheduled, err = mergePair(in.DepartureScheduled, in.From.Timezone); err != nil {
		return domain.Leg{}, domain.LegFieldError(index, "departureScheduledTime", err.Error())
	}
	if leg.Takeoff, err = mergePair(in.Takeoff, in.From.Timezone); err != nil {
		return domain.Leg{}, domain.LegFieldError(index, "takeoffTime", err.Error())
	}

	// Arrival-side fields resolve in the destination zone.
	arrival := in.Arrival
	if arrival.Date != "" && arrival.Time == "" {
		return domain.Leg{}, domain.LegFieldError(index, "arrivalTime", msgArrivalNoTime)
	}
	if arrival.Date == "" && arrival.Time != "" {
		// Same-day arrival convenience: an arrival time entered without a
		// date inherits the departure date.
		arrival.Date = primaryDate
	}
	if leg.Arrival, err = mergePair(arrival, in.To.Timezone); err != nil {
		return domain.Leg{}, domain.LegFieldError(index, "arrivalTime", err.Error())
	}
	if leg.Arrival != nil && timeutil.BeforeMinimumEpoch(*leg.Arrival) {
		return domain.Leg{}, domain.LegFieldError(index, "arrival", msgDateTooOld)
	}
	if leg.ArrivalScheduled, err = mergePair(in.ArrivalScheduled, in.To.Timezone); err != nil {
		return domain.Leg{}, domain.LegFieldError(index, "arrivalScheduledTime", err.Error())
	}
	if leg.Landing, err = mergePair(in.Landing, in.To.Timezone); err != nil {
		return domain.Leg{}, domain.LegFieldError(index, "landingTime", err.Error())
	}

	// Ordering uses the effective instants (actual preferred, scheduled
	// fallback); equal instants are allowed.
	dep := effective(leg.Departure, leg.DepartureScheduled)
	arr := effective(leg.Arrival, leg.ArrivalScheduled)
	if dep != nil && arr != nil && arr.Before(*dep) {
		return domain.Leg{}, domain.LegFieldError(index, "arrival", msgArrivalBefore)
	}

	leg.DurationSeconds = deriveDuration(dep, arr, in.From, in.To)

	seats, err := validateSeats(index, in.Seats)
	if err != nil {
		return domain.Leg{}, err
	}
	leg.Seats = seats

	return leg, nil
}

// mergePair resolves a date+time pair into a UTC instant in the given zone.
// Returns nil without error when the pair does not carry both parts.
func mergePair(p domain.DateTimePair, timezone string) (*time.Time, error) {
	if p.Date == "" || p.Time == "" {
		return nil, nil
	}
	merged, err := timeutil.MergeLocal(p.Date, p.Time, timezone)
	if err != nil {
		return nil, err
	}
	utc := timeutil.ToUTC(merged)
	return &utc, nil
}

// effective returns the actual instant when present, else the scheduled one.
func effective(actual, scheduled *time.Time) *time.Time {
	if actual != nil {
		return actual
	}
	return scheduled
}

// deriveDuration computes the leg duration in seconds: exact when both
// instants are known, a great-circle estimate when the airports differ,
// nil otherwise.
func deriveDuration(dep, arr *time.Time, from, to *domain.Airport) *int64 {
	if dep != nil && arr != nil {
		secs := int64(arr.Sub(*dep) / time.Second)
		return &secs
	}

	if from.ID != to.ID {
		km := geo.Distance(
			geo.Coordinate{Latitude: from.Latitude, Longitude: from.Longitude},
			geo.Coordinate{Latitude: to.Latitude, Longitude: to.Longitude},
		)
		secs := int64(geo.EstimateDuration(km) / time.Second)
		return &secs
	}

	return nil
}

// validateSeats checks the seat invariants for one leg and converts the
// inputs into seat records.
func validateSeats(legIndex int, inputs []domain.SeatInput) ([]domain.Seat, error) {
	if len(inputs) == 0 {
		return nil, domain.LegFieldError(legIndex, "seats", msgSeatRequired)
	}

	seats := make([]domain.Seat, 0, len(inputs))
	for j, in := range inputs {
		path := func(field string) string {
			return seatFieldPath(legIndex, j, field)
		}

		hasUser := in.UserID != nil && *in.UserID != ""
		hasGuest := in.GuestName != nil && *in.GuestName != ""
		if !hasUser && !hasGuest {
			return nil, domain.NewFieldError(path(""), msgSeatIdentity)
		}
		if hasUser && hasGuest {
			return nil, domain.NewFieldError(path(""), msgSeatSingleIdent)
		}

		if !in.SeatType.IsValid() {
			return nil, domain.NewFieldError(path("seatType"), "unknown seat type")
		}
		if !in.SeatClass.IsValid() {
			return nil, domain.NewFieldError(path("seatClass"), "unknown seat class")
		}

		seat := domain.Seat{
			SeatType:   in.SeatType,
			SeatNumber: in.SeatNumber,
			SeatClass:  in.SeatClass,
		}
		if hasUser {
			seat.UserID = in.UserID
		} else {
			seat.GuestName = in.GuestName
		}
		seats = append(seats, seat)
	}

	return seats, nil
}

// seatFieldPath builds paths like "legs[1].seats[0].seatType".
func seatFieldPath(legIndex, seatIndex int, field string) string {
	p := fmt.Sprintf("legs[%d].seats[%d]", legIndex, seatIndex)
	if field != "" {
		p += "." + field
	}
	return p
}
