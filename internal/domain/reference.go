package domain

import "context"

// ReferenceStore reads the externally owned reference tables. The engine
// only ever resolves references; it never creates or mutates them.
type ReferenceStore interface {
	// GetAirportsByIDs returns the airports for the given IDs, keyed by ID.
	// Missing IDs are simply absent from the map.
	GetAirportsByIDs(ctx context.Context, ids []string) (map[string]*Airport, error)

	// FindAirportsByCodes resolves ICAO and IATA codes to airports. The
	// returned map is keyed by every code (ICAO and IATA) of each match, so
	// a caller can look up whichever form it holds.
	FindAirportsByCodes(ctx context.Context, codes []string) (map[string]*Airport, error)

	// GetAirlinesByIDs returns the airlines for the given IDs, keyed by ID.
	GetAirlinesByIDs(ctx context.Context, ids []string) (map[string]*Airline, error)

	// FindAirlinesByCodes resolves ICAO designators to airlines, keyed by
	// designator.
	FindAirlinesByCodes(ctx context.Context, codes []string) (map[string]*Airline, error)

	// GetAircraftByIDs returns the aircraft types for the given IDs, keyed
	// by ID.
	GetAircraftByIDs(ctx context.Context, ids []string) (map[string]*Aircraft, error)
}
