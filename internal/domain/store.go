package domain

import "context"

//go:generate mockgen -source=store.go -destination=mock_store.go -package=domain

// FlightFilter narrows a user-flight query. Empty slices mean "no constraint
// on this dimension". Dates are YYYY-MM-DD strings; origin and destination
// IDs refer to the first leg's airports and are applied in-memory by the
// caller when the backend cannot index them.
type FlightFilter struct {
	// Dates restricts results to flights on these nominal dates
	Dates []string

	// OriginIDs restricts results to flights whose first leg departs from
	// one of these airports
	OriginIDs []string

	// DestinationIDs restricts results to flights whose first leg arrives
	// at one of these airports
	DestinationIDs []string
}

// Store is the persistence boundary consumed by the engine. Implementations
// must make every single-flight write atomic: a flight row, its ordered legs
// and their seats are inserted or replaced together or not at all.
type Store interface {
	// CreateFlight atomically inserts a flight with its legs and seats and
	// returns the new flight ID.
	CreateFlight(ctx context.Context, flight *Flight) (string, error)

	// UpdateFlight atomically replaces the legs and seats of an existing
	// flight. Old legs are deleted (cascading their seats) and the new
	// ordered legs reinserted in one transaction.
	UpdateFlight(ctx context.Context, id string, flight *Flight) error

	// DeleteFlight atomically removes a flight with its legs and seats.
	DeleteFlight(ctx context.Context, id string) error

	// GetFlight loads one flight with legs (ordered by Leg.Order ascending)
	// and seats populated. Returns ErrFlightNotFound when absent.
	GetFlight(ctx context.Context, id string) (*Flight, error)

	// CreateManyFlights bulk-inserts flights. Each flight is atomic on its
	// own; no cross-flight atomicity is provided.
	CreateManyFlights(ctx context.Context, flights []*Flight) error

	// FindFlights returns all flights matching the filter regardless of who
	// holds seats on them, with legs and seats populated and legs ordered by
	// Order ascending. The duplicate matcher uses this to find candidates
	// recorded by other travellers.
	FindFlights(ctx context.Context, filter FlightFilter) ([]*Flight, error)

	// FindUserFlights returns the flights on which the user holds at least
	// one seat on any leg, matching the filter, with legs and seats
	// populated and legs ordered by Order ascending.
	FindUserFlights(ctx context.Context, userID string, filter FlightFilter) ([]*Flight, error)

	// FindUserSeatFlightIDs returns, out of the given flight IDs, the set on
	// which the user already holds a seat. One batched query, not one per
	// flight.
	FindUserSeatFlightIDs(ctx context.Context, userID string, flightIDs []string) (map[string]struct{}, error)

	// InsertSeats bulk-inserts seat rows onto existing legs.
	InsertSeats(ctx context.Context, seats []*Seat) error
}
