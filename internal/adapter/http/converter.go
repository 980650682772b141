package http

import (
	"context"

	"github.com/flightlog/flight-record-service/internal/domain"
)

// toFlightInput resolves the request's reference IDs and converts it into
// the canonical core input. Unknown reference IDs produce field errors
// scoped to the offending leg.
func toFlightInput(ctx context.Context, refs domain.ReferenceStore, req *SaveFlightRequest) (domain.FlightInput, error) {
	legs := req.normalizedLegs()

	airportIDs := collectIDs(legs, func(l *LegDTO) []string { return []string{l.From, l.To} })
	airlineIDs := collectIDs(legs, func(l *LegDTO) []string { return []string{l.AirlineID} })
	aircraftIDs := collectIDs(legs, func(l *LegDTO) []string { return []string{l.AircraftID} })

	airports, err := refs.GetAirportsByIDs(ctx, airportIDs)
	if err != nil {
		return domain.FlightInput{}, domain.NewStoreError(err)
	}
	airlines, err := refs.GetAirlinesByIDs(ctx, airlineIDs)
	if err != nil {
		return domain.FlightInput{}, domain.NewStoreError(err)
	}
	aircraft, err := refs.GetAircraftByIDs(ctx, aircraftIDs)
	if err != nil {
		return domain.FlightInput{}, domain.NewStoreError(err)
	}

	input := domain.FlightInput{
		Reason: domain.Reason(req.Reason),
		Note:   req.Note,
	}
	input.Legs = make([]domain.LegInput, 0, len(legs))

	for i := range legs {
		leg := &legs[i]
		in := domain.LegInput{
			Departure:            leg.Departure.toPair(),
			Arrival:              leg.Arrival.toPair(),
			DepartureScheduled:   leg.DepartureScheduled.toPair(),
			ArrivalScheduled:     leg.ArrivalScheduled.toPair(),
			Takeoff:              leg.Takeoff.toPair(),
			Landing:              leg.Landing.toPair(),
			DepartureTerminal:    leg.DepartureTerminal,
			DepartureGate:        leg.DepartureGate,
			ArrivalTerminal:      leg.ArrivalTerminal,
			ArrivalGate:          leg.ArrivalGate,
			FlightNumber:         leg.FlightNumber,
			AircraftRegistration: leg.AircraftRegistration,
			Seats:                toSeatInputs(leg.Seats),
		}

		// An absent ID stays nil and is reported by the core validator; a
		// present but unknown ID is a boundary failure.
		if leg.From != "" {
			in.From = airports[leg.From]
			if in.From == nil {
				return domain.FlightInput{}, domain.LegFieldError(i, "from", "unknown airport")
			}
		}
		if leg.To != "" {
			in.To = airports[leg.To]
			if in.To == nil {
				return domain.FlightInput{}, domain.LegFieldError(i, "to", "unknown airport")
			}
		}
		if leg.AirlineID != "" {
			in.Airline = airlines[leg.AirlineID]
			if in.Airline == nil {
				return domain.FlightInput{}, domain.LegFieldError(i, "airlineId", "unknown airline")
			}
		}
		if leg.AircraftID != "" {
			in.Aircraft = aircraft[leg.AircraftID]
			if in.Aircraft == nil {
				return domain.FlightInput{}, domain.LegFieldError(i, "aircraftId", "unknown aircraft")
			}
		}

		input.Legs = append(input.Legs, in)
	}

	return input, nil
}

// collectIDs gathers the non-empty reference IDs selected from each leg.
func collectIDs(legs []LegDTO, pick func(*LegDTO) []string) []string {
	seen := map[string]struct{}{}
	var out []string
	for i := range legs {
		for _, id := range pick(&legs[i]) {
			if id == "" {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
