package store

import (
	"context"
	"strings"

	"github.com/flightlog/flight-record-service/internal/domain"
)

// GetAirportsByIDs returns the airports for the given IDs, keyed by ID.
func (s *Store) GetAirportsByIDs(ctx context.Context, ids []string) (map[string]*domain.Airport, error) {
	out := make(map[string]*domain.Airport, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []airportRow
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		a := fromAirportRow(&rows[i])
		out[a.ID] = a
	}
	return out, nil
}

// FindAirportsByCodes resolves ICAO and IATA codes to airports. Each match
// is keyed under both of its codes so callers can look up whichever form
// they hold. Lookup is case-insensitive; keys are uppercased.
func (s *Store) FindAirportsByCodes(ctx context.Context, codes []string) (map[string]*domain.Airport, error) {
	out := make(map[string]*domain.Airport, len(codes))
	upper := upperAll(codes)
	if len(upper) == 0 {
		return out, nil
	}

	var rows []airportRow
	err := s.db.WithContext(ctx).
		Where("icao IN ? OR iata IN ?", upper, upper).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for i := range rows {
		a := fromAirportRow(&rows[i])
		if a.ICAO != "" {
			out[strings.ToUpper(a.ICAO)] = a
		}
		if a.IATA != "" {
			out[strings.ToUpper(a.IATA)] = a
		}
	}
	return out, nil
}

// GetAirlinesByIDs returns the airlines for the given IDs, keyed by ID.
func (s *Store) GetAirlinesByIDs(ctx context.Context, ids []string) (map[string]*domain.Airline, error) {
	out := make(map[string]*domain.Airline, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []airlineRow
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ID] = &domain.Airline{ID: row.ID, ICAO: row.ICAO, Name: row.Name}
	}
	return out, nil
}

// FindAirlinesByCodes resolves ICAO designators to airlines, keyed by
// uppercased designator.
func (s *Store) FindAirlinesByCodes(ctx context.Context, codes []string) (map[string]*domain.Airline, error) {
	out := make(map[string]*domain.Airline, len(codes))
	upper := upperAll(codes)
	if len(upper) == 0 {
		return out, nil
	}

	var rows []airlineRow
	if err := s.db.WithContext(ctx).Where("icao IN ?", upper).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[strings.ToUpper(row.ICAO)] = &domain.Airline{ID: row.ID, ICAO: row.ICAO, Name: row.Name}
	}
	return out, nil
}

// GetAircraftByIDs returns the aircraft types for the given IDs, keyed by ID.
func (s *Store) GetAircraftByIDs(ctx context.Context, ids []string) (map[string]*domain.Aircraft, error) {
	out := make(map[string]*domain.Aircraft, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []aircraftRow
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ID] = &domain.Aircraft{ID: row.ID, ICAO: row.ICAO, Name: row.Name}
	}
	return out, nil
}

// SeedAirports inserts reference airports, assigning IDs where missing.
// Used at bootstrap and in tests; the request path never writes airports.
func (s *Store) SeedAirports(ctx context.Context, airports []*domain.Airport) error {
	for _, a := range airports {
		if a.ID == "" {
			a.ID = newID()
		}
		row := airportRow{
			ID:        a.ID,
			ICAO:      strings.ToUpper(a.ICAO),
			IATA:      strings.ToUpper(a.IATA),
			Name:      a.Name,
			Latitude:  a.Latitude,
			Longitude: a.Longitude,
			Timezone:  a.Timezone,
		}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedAirlines inserts reference airlines, assigning IDs where missing.
func (s *Store) SeedAirlines(ctx context.Context, airlines []*domain.Airline) error {
	for _, a := range airlines {
		if a.ID == "" {
			a.ID = newID()
		}
		row := airlineRow{ID: a.ID, ICAO: strings.ToUpper(a.ICAO), Name: a.Name}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedAircraft inserts reference aircraft types, assigning IDs where
// missing.
func (s *Store) SeedAircraft(ctx context.Context, aircraft []*domain.Aircraft) error {
	for _, a := range aircraft {
		if a.ID == "" {
			a.ID = newID()
		}
		row := aircraftRow{ID: a.ID, ICAO: strings.ToUpper(a.ICAO), Name: a.Name}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func fromAirportRow(row *airportRow) *domain.Airport {
	return &domain.Airport{
		ID:        row.ID,
		ICAO:      row.ICAO,
		IATA:      row.IATA,
		Name:      row.Name,
		Latitude:  row.Latitude,
		Longitude: row.Longitude,
		Timezone:  row.Timezone,
	}
}

func upperAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToUpper(strings.TrimSpace(v))
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
