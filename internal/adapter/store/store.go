// Package store implements the persistence boundary on top of gorm. The
// backing database is selected by configuration: sqlite for single-user
// deployments, mysql or postgres otherwise.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/flightlog/flight-record-service/internal/config"
	"github.com/flightlog/flight-record-service/internal/domain"
	"github.com/flightlog/flight-record-service/internal/infrastructure/logger"
	"github.com/flightlog/flight-record-service/internal/infrastructure/retry"
)

const seatInsertBatchSize = 200

// Store is the gorm-backed implementation of the persistence boundary.
type Store struct {
	db  *gorm.DB
	log *logger.Logger
}

var (
	_ domain.Store          = (*Store)(nil)
	_ domain.ReferenceStore = (*Store)(nil)
)

// New wraps an already-open gorm handle.
func New(db *gorm.DB, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{db: db, log: log}
}

// Open connects to the configured database, waiting for it to accept
// connections, and migrates the schema. This is the only place in the
// service where an operation is retried.
func Open(ctx context.Context, cfg config.DatabaseConfig, log *logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.Nop()
	}

	dialector, err := cfg.Dialector()
	if err != nil {
		return nil, err
	}

	var db *gorm.DB
	err = retry.Do(ctx, func() error {
		var openErr error
		db, openErr = gorm.Open(dialector, &gorm.Config{})
		if openErr != nil {
			log.Warn().Err(openErr).Str("driver", cfg.Driver).Msg("database not ready, retrying")
		}
		return openErr
	}, retry.ConnectConfig)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&airportRow{}, &airlineRow{}, &aircraftRow{},
		&flightRow{}, &legRow{}, &seatRow{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	log.Info().Str("driver", cfg.Driver).Msg("database ready")
	return New(db, log), nil
}

// CreateFlight inserts the flight with its legs and seats in one transaction
// and returns the new flight ID.
func (s *Store) CreateFlight(ctx context.Context, flight *domain.Flight) (string, error) {
	row := toFlightRow(flight)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(row).Error
	})
	if err != nil {
		return "", err
	}
	return row.ID, nil
}

// UpdateFlight replaces the legs and seats of an existing flight. The old
// rows are deleted and the new tree inserted in a single transaction.
func (s *Store) UpdateFlight(ctx context.Context, id string, flight *domain.Flight) error {
	flight.ID = id
	row := toFlightRow(flight)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&flightRow{}).Where("id = ?", id).Updates(map[string]any{
			"date":   row.Date,
			"reason": row.Reason,
			"note":   row.Note,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrFlightNotFound
		}

		if err := deleteFlightChildren(tx, id); err != nil {
			return err
		}

		for i := range row.Legs {
			if err := tx.Create(&row.Legs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteFlight removes the flight with its legs and seats in one
// transaction.
func (s *Store) DeleteFlight(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteFlightChildren(tx, id); err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&flightRow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrFlightNotFound
		}
		return nil
	})
}

// deleteFlightChildren removes the seats and legs of a flight inside the
// caller's transaction.
func deleteFlightChildren(tx *gorm.DB, flightID string) error {
	legIDs := tx.Model(&legRow{}).Select("id").Where("flight_id = ?", flightID)
	if err := tx.Where("leg_id IN (?)", legIDs).Delete(&seatRow{}).Error; err != nil {
		return err
	}
	return tx.Where("flight_id = ?", flightID).Delete(&legRow{}).Error
}

// GetFlight loads one flight with ordered legs and their seats.
func (s *Store) GetFlight(ctx context.Context, id string) (*domain.Flight, error) {
	var row flightRow
	err := s.db.WithContext(ctx).
		Preload("Legs", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Legs.Seats").
		First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrFlightNotFound
	}
	if err != nil {
		return nil, err
	}

	r, err := s.loadRefs(ctx, []*flightRow{&row})
	if err != nil {
		return nil, err
	}
	return fromFlightRow(&row, r), nil
}

// CreateManyFlights inserts each flight in its own transaction. A failure
// aborts the remainder of the batch but leaves already-inserted flights in
// place.
func (s *Store) CreateManyFlights(ctx context.Context, flights []*domain.Flight) error {
	for _, f := range flights {
		if _, err := s.CreateFlight(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

// FindFlights returns all flights matching the filter regardless of seat
// holders. Date narrowing happens in the query; the first-leg origin and
// destination constraints are applied after loading, since the first leg is
// not addressable in a portable query.
func (s *Store) FindFlights(ctx context.Context, filter domain.FlightFilter) ([]*domain.Flight, error) {
	q := s.db.WithContext(ctx).
		Preload("Legs", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Legs.Seats").
		Order("date ASC, id ASC")
	if len(filter.Dates) > 0 {
		q = q.Where("date IN ?", filter.Dates)
	}

	var rows []*flightRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return s.hydrateAndFilter(ctx, rows, filter)
}

// FindUserFlights returns the flights on which the user holds at least one
// seat, narrowed by the filter. Date narrowing happens in the query; the
// first-leg origin and destination constraints are applied after loading,
// since the first leg is not addressable in a portable query.
func (s *Store) FindUserFlights(ctx context.Context, userID string, filter domain.FlightFilter) ([]*domain.Flight, error) {
	q := s.db.WithContext(ctx).
		Model(&seatRow{}).
		Distinct("legs.flight_id").
		Joins("JOIN legs ON legs.id = seats.leg_id").
		Joins("JOIN flights ON flights.id = legs.flight_id").
		Where("seats.user_id = ?", userID)
	if len(filter.Dates) > 0 {
		q = q.Where("flights.date IN ?", filter.Dates)
	}

	var flightIDs []string
	if err := q.Pluck("legs.flight_id", &flightIDs).Error; err != nil {
		return nil, err
	}
	if len(flightIDs) == 0 {
		return nil, nil
	}

	var rows []*flightRow
	err := s.db.WithContext(ctx).
		Preload("Legs", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Legs.Seats").
		Where("id IN ?", flightIDs).
		Order("date ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return s.hydrateAndFilter(ctx, rows, filter)
}

// hydrateAndFilter converts flight rows to domain flights with reference
// entities resolved and applies the filter's first-leg constraints.
func (s *Store) hydrateAndFilter(ctx context.Context, rows []*flightRow, filter domain.FlightFilter) ([]*domain.Flight, error) {
	r, err := s.loadRefs(ctx, rows)
	if err != nil {
		return nil, err
	}

	origins := stringSet(filter.OriginIDs)
	dests := stringSet(filter.DestinationIDs)

	out := make([]*domain.Flight, 0, len(rows))
	for _, row := range rows {
		f := fromFlightRow(row, r)
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
	return out, nil
}

// FindUserSeatFlightIDs returns, out of the given flight IDs, the set on
// which the user already holds a seat. One query for the whole batch.
func (s *Store) FindUserSeatFlightIDs(ctx context.Context, userID string, flightIDs []string) (map[string]struct{}, error) {
	out := make(map[string]struct{}, len(flightIDs))
	if len(flightIDs) == 0 {
		return out, nil
	}

	var ids []string
	err := s.db.WithContext(ctx).
		Model(&seatRow{}).
		Distinct("legs.flight_id").
		Joins("JOIN legs ON legs.id = seats.leg_id").
		Where("seats.user_id = ?", userID).
		Where("legs.flight_id IN ?", flightIDs).
		Pluck("legs.flight_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}

// InsertSeats bulk-inserts seat rows onto existing legs.
func (s *Store) InsertSeats(ctx context.Context, seats []*domain.Seat) error {
	if len(seats) == 0 {
		return nil
	}

	rows := make([]seatRow, 0, len(seats))
	for _, seat := range seats {
		rows = append(rows, toSeatRow(seat, seat.LegID))
	}
	return s.db.WithContext(ctx).CreateInBatches(rows, seatInsertBatchSize).Error
}

// loadRefs batch-loads the airports, airlines and aircraft referenced by
// the given flight rows.
func (s *Store) loadRefs(ctx context.Context, rows []*flightRow) (refs, error) {
	airportIDs := map[string]struct{}{}
	airlineIDs := map[string]struct{}{}
	aircraftIDs := map[string]struct{}{}
	for _, row := range rows {
		for i := range row.Legs {
			leg := &row.Legs[i]
			airportIDs[leg.FromID] = struct{}{}
			airportIDs[leg.ToID] = struct{}{}
			if leg.AirlineID != nil {
				airlineIDs[*leg.AirlineID] = struct{}{}
			}
			if leg.AircraftID != nil {
				aircraftIDs[*leg.AircraftID] = struct{}{}
			}
		}
	}

	r := refs{}
	var err error
	if r.airports, err = s.GetAirportsByIDs(ctx, setKeys(airportIDs)); err != nil {
		return refs{}, err
	}
	if r.airlines, err = s.GetAirlinesByIDs(ctx, setKeys(airlineIDs)); err != nil {
		return refs{}, err
	}
	if r.aircraft, err = s.GetAircraftByIDs(ctx, setKeys(aircraftIDs)); err != nil {
		return refs{}, err
	}
	return r, nil
}

func stringSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func setKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
