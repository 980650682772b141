// Package mock provides test doubles for the flight record system. These
// mocks are designed for integration testing where we need configurable
// behavior (seeded reference data, forced errors) and real in-memory
// persistence semantics.
package mock

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/flightlog/flight-record-service/internal/domain"
)

// Store is a configurable in-memory implementation of domain.Store and
// domain.ReferenceStore. It is configured using the builder pattern
// methods and mimics the real store's semantics: IDs assigned on insert,
// legs kept in order, not-found sentinels.
type Store struct {
	mu       sync.Mutex
	flights  map[string]*domain.Flight
	airports map[string]*domain.Airport
	airlines map[string]*domain.Airline
	aircraft map[string]*domain.Aircraft
	nextID   int
	err      error
}

var (
	_ domain.Store          = (*Store)(nil)
	_ domain.ReferenceStore = (*Store)(nil)
)

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		flights:  map[string]*domain.Flight{},
		airports: map[string]*domain.Airport{},
		airlines: map[string]*domain.Airline{},
		aircraft: map[string]*domain.Aircraft{},
	}
}

// WithAirports seeds reference airports.
func (s *Store) WithAirports(airports ...*domain.Airport) *Store {
	for _, a := range airports {
		s.airports[a.ID] = a
	}
	return s
}

// WithAirlines seeds reference airlines.
func (s *Store) WithAirlines(airlines ...*domain.Airline) *Store {
	for _, a := range airlines {
		s.airlines[a.ID] = a
	}
	return s
}

// WithAircraft seeds reference aircraft types.
func (s *Store) WithAircraft(aircraft ...*domain.Aircraft) *Store {
	for _, a := range aircraft {
		s.aircraft[a.ID] = a
	}
	return s
}

// WithError configures every operation to fail with the given error.
func (s *Store) WithError(err error) *Store {
	s.err = err
	return s
}

// FlightCount returns the number of stored flights.
func (s *Store) FlightCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.flights)
}

func (s *Store) newID(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}

// assignIDs gives the flight tree fresh IDs, as the real store does on
// insert.
func (s *Store) assignIDs(f *domain.Flight) {
	if f.ID == "" {
		f.ID = s.newID("fl")
	}
	for i := range f.Legs {
		leg := &f.Legs[i]
		if leg.ID == "" {
			leg.ID = s.newID("leg")
		}
		leg.FlightID = f.ID
		for j := range leg.Seats {
			seat := &leg.Seats[j]
			if seat.ID == "" {
				seat.ID = s.newID("seat")
			}
			seat.LegID = leg.ID
		}
	}
}

func (s *Store) CreateFlight(_ context.Context, flight *domain.Flight) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}

	s.assignIDs(flight)
	s.flights[flight.ID] = flight
	return flight.ID, nil
}

func (s *Store) UpdateFlight(_ context.Context, id string, flight *domain.Flight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, ok := s.flights[id]; !ok {
		return domain.ErrFlightNotFound
	}

	flight.ID = id
	for i := range flight.Legs {
		flight.Legs[i].ID = ""
	}
	s.assignIDs(flight)
	s.flights[id] = flight
	return nil
}

func (s *Store) DeleteFlight(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, ok := s.flights[id]; !ok {
		return domain.ErrFlightNotFound
	}
	delete(s.flights, id)
	return nil
}

func (s *Store) GetFlight(_ context.Context, id string) (*domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	f, ok := s.flights[id]
	if !ok {
		return nil, domain.ErrFlightNotFound
	}
	return f, nil
}

func (s *Store) CreateManyFlights(ctx context.Context, flights []*domain.Flight) error {
	for _, f := range flights {
		if _, err := s.CreateFlight(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) FindFlights(_ context.Context, filter domain.FlightFilter) ([]*domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.matchFlights(filter, nil), nil
}

func (s *Store) FindUserFlights(_ context.Context, userID string, filter domain.FlightFilter) ([]*domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.matchFlights(filter, &userID), nil
}

// matchFlights applies the filter, optionally restricted to flights on
// which the given user holds a seat. Caller holds the lock.
func (s *Store) matchFlights(filter domain.FlightFilter, userID *string) []*domain.Flight {
	dates := toSet(filter.Dates)
	origins := toSet(filter.OriginIDs)
	dests := toSet(filter.DestinationIDs)

	var out []*domain.Flight
	for _, f := range s.flights {
		if userID != nil && !f.HasSeatForUser(*userID) {
			continue
		}
		if len(dates) > 0 {
			if _, ok := dates[f.Date]; !ok {
				continue
			}
		}
		first := f.FirstLeg()
		if first == nil {
			continue
		}
		if len(origins) > 0 {
			if _, ok := origins[first.From.ID]; !ok {
				continue
			}
		}
		if len(dests) > 0 {
			if _, ok := dests[first.To.ID]; !ok {
				continue
			}
		}
		out = append(out, f)
	}
	return out
}

func (s *Store) FindUserSeatFlightIDs(_ context.Context, userID string, flightIDs []string) (map[string]struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	out := map[string]struct{}{}
	for _, id := range flightIDs {
		if f, ok := s.flights[id]; ok && f.HasSeatForUser(userID) {
			out[id] = struct{}{}
		}
	}
	return out, nil
}

func (s *Store) InsertSeats(_ context.Context, seats []*domain.Seat) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	for _, seat := range seats {
		leg := s.findLeg(seat.LegID)
		if leg == nil {
			return fmt.Errorf("unknown leg %q", seat.LegID)
		}
		row := *seat
		if row.ID == "" {
			row.ID = s.newID("seat")
		}
		leg.Seats = append(leg.Seats, row)
	}
	return nil
}

func (s *Store) findLeg(legID string) *domain.Leg {
	for _, f := range s.flights {
		for i := range f.Legs {
			if f.Legs[i].ID == legID {
				return &f.Legs[i]
			}
		}
	}
	return nil
}

func (s *Store) GetAirportsByIDs(_ context.Context, ids []string) (map[string]*domain.Airport, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := map[string]*domain.Airport{}
	for _, id := range ids {
		if a, ok := s.airports[id]; ok {
			out[id] = a
		}
	}
	return out, nil
}

func (s *Store) FindAirportsByCodes(_ context.Context, codes []string) (map[string]*domain.Airport, error) {
	if s.err != nil {
		return nil, s.err
	}
	wanted := toSet(upperAll(codes))
	out := map[string]*domain.Airport{}
	for _, a := range s.airports {
		icao := strings.ToUpper(a.ICAO)
		iata := strings.ToUpper(a.IATA)
		_, wantICAO := wanted[icao]
		_, wantIATA := wanted[iata]
		if !wantICAO && !wantIATA {
			continue
		}
		if icao != "" {
			out[icao] = a
		}
		if iata != "" {
			out[iata] = a
		}
	}
	return out, nil
}

func (s *Store) GetAirlinesByIDs(_ context.Context, ids []string) (map[string]*domain.Airline, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := map[string]*domain.Airline{}
	for _, id := range ids {
		if a, ok := s.airlines[id]; ok {
			out[id] = a
		}
	}
	return out, nil
}

func (s *Store) FindAirlinesByCodes(_ context.Context, codes []string) (map[string]*domain.Airline, error) {
	if s.err != nil {
		return nil, s.err
	}
	wanted := toSet(upperAll(codes))
	out := map[string]*domain.Airline{}
	for _, a := range s.airlines {
		icao := strings.ToUpper(a.ICAO)
		if _, ok := wanted[icao]; ok {
			out[icao] = a
		}
	}
	return out, nil
}

func (s *Store) GetAircraftByIDs(_ context.Context, ids []string) (map[string]*domain.Aircraft, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := map[string]*domain.Aircraft{}
	for _, id := range ids {
		if a, ok := s.aircraft[id]; ok {
			out[id] = a
		}
	}
	return out, nil
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func upperAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ToUpper(strings.TrimSpace(v)))
	}
	return out
}
