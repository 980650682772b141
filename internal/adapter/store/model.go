package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/flightlog/flight-record-service/internal/domain"
)

// flightRow is the persistence shape of a flight.
type flightRow struct {
	ID        string `gorm:"primaryKey;size:36"`
	Date      string `gorm:"size:10;index:idx_flights_date"`
	Reason    string `gorm:"size:16"`
	Note      string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Legs []legRow `gorm:"foreignKey:FlightID"`
}

func (flightRow) TableName() string { return "flights" }

// legRow is the persistence shape of a leg. The domain's Order field maps to
// the position column to stay clear of the SQL keyword.
type legRow struct {
	ID       string `gorm:"primaryKey;size:36"`
	FlightID string `gorm:"size:36;index:idx_legs_flight"`
	Position int    `gorm:"column:position"`

	FromID string `gorm:"size:36;index:idx_legs_from"`
	ToID   string `gorm:"size:36;index:idx_legs_to"`

	Departure          *time.Time
	DepartureScheduled *time.Time
	Arrival            *time.Time
	ArrivalScheduled   *time.Time
	Takeoff            *time.Time
	Landing            *time.Time

	DepartureTerminal string `gorm:"size:32"`
	DepartureGate     string `gorm:"size:32"`
	ArrivalTerminal   string `gorm:"size:32"`
	ArrivalGate       string `gorm:"size:32"`

	FlightNumber         string  `gorm:"size:16"`
	AircraftRegistration string  `gorm:"size:16"`
	AirlineID            *string `gorm:"size:36"`
	AircraftID           *string `gorm:"size:36"`

	DurationSeconds *int64

	Seats []seatRow `gorm:"foreignKey:LegID"`
}

func (legRow) TableName() string { return "legs" }

// seatRow is the persistence shape of a seat. The partial unique indexes
// enforce one row per (leg, user) and per (leg, guest); NULLs never collide.
type seatRow struct {
	ID        string  `gorm:"primaryKey;size:36"`
	LegID     string  `gorm:"size:36;index:idx_seats_leg;uniqueIndex:idx_seats_leg_user;uniqueIndex:idx_seats_leg_guest"`
	UserID    *string `gorm:"size:36;uniqueIndex:idx_seats_leg_user"`
	GuestName *string `gorm:"size:128;uniqueIndex:idx_seats_leg_guest"`
	SeatType  string  `gorm:"size:16"`
	SeatNo    string  `gorm:"column:seat_number;size:8"`
	SeatClass string  `gorm:"size:16"`
}

func (seatRow) TableName() string { return "seats" }

// airportRow, airlineRow and aircraftRow hold externally owned reference
// data. The engine only reads them; seeding is a bootstrap concern.
type airportRow struct {
	ID        string `gorm:"primaryKey;size:36"`
	ICAO      string `gorm:"size:8;uniqueIndex:idx_airports_icao"`
	IATA      string `gorm:"size:8;index:idx_airports_iata"`
	Name      string `gorm:"size:128"`
	Latitude  float64
	Longitude float64
	Timezone  string `gorm:"size:64"`
}

func (airportRow) TableName() string { return "airports" }

type airlineRow struct {
	ID   string `gorm:"primaryKey;size:36"`
	ICAO string `gorm:"size:8;uniqueIndex:idx_airlines_icao"`
	Name string `gorm:"size:128"`
}

func (airlineRow) TableName() string { return "airlines" }

type aircraftRow struct {
	ID   string `gorm:"primaryKey;size:36"`
	ICAO string `gorm:"size:8;uniqueIndex:idx_aircraft_icao"`
	Name string `gorm:"size:128"`
}

func (aircraftRow) TableName() string { return "aircraft" }

// newID returns a fresh row identifier.
func newID() string { return uuid.NewString() }

// toFlightRow converts a domain flight into its row tree, assigning fresh
// IDs to every row that does not carry one yet.
func toFlightRow(f *domain.Flight) *flightRow {
	row := &flightRow{
		ID:     f.ID,
		Date:   f.Date,
		Reason: string(f.Reason),
		Note:   f.Note,
	}
	if row.ID == "" {
		row.ID = newID()
	}

	row.Legs = make([]legRow, 0, len(f.Legs))
	for i := range f.Legs {
		row.Legs = append(row.Legs, toLegRow(&f.Legs[i], row.ID))
	}
	return row
}

func toLegRow(l *domain.Leg, flightID string) legRow {
	row := legRow{
		ID:                   l.ID,
		FlightID:             flightID,
		Position:             l.Order,
		Departure:            l.Departure,
		DepartureScheduled:   l.DepartureScheduled,
		Arrival:              l.Arrival,
		ArrivalScheduled:     l.ArrivalScheduled,
		Takeoff:              l.Takeoff,
		Landing:              l.Landing,
		DepartureTerminal:    l.DepartureTerminal,
		DepartureGate:        l.DepartureGate,
		ArrivalTerminal:      l.ArrivalTerminal,
		ArrivalGate:          l.ArrivalGate,
		FlightNumber:         l.FlightNumber,
		AircraftRegistration: l.AircraftRegistration,
		DurationSeconds:      l.DurationSeconds,
	}
	if row.ID == "" {
		row.ID = newID()
	}
	if l.From != nil {
		row.FromID = l.From.ID
	}
	if l.To != nil {
		row.ToID = l.To.ID
	}
	if l.Airline != nil {
		id := l.Airline.ID
		row.AirlineID = &id
	}
	if l.Aircraft != nil {
		id := l.Aircraft.ID
		row.AircraftID = &id
	}

	row.Seats = make([]seatRow, 0, len(l.Seats))
	for i := range l.Seats {
		row.Seats = append(row.Seats, toSeatRow(&l.Seats[i], row.ID))
	}
	return row
}

func toSeatRow(s *domain.Seat, legID string) seatRow {
	row := seatRow{
		ID:        s.ID,
		LegID:     legID,
		UserID:    s.UserID,
		GuestName: s.GuestName,
		SeatType:  string(s.SeatType),
		SeatNo:    s.SeatNumber,
		SeatClass: string(s.SeatClass),
	}
	if row.ID == "" {
		row.ID = newID()
	}
	return row
}

// refs carries the batch-loaded reference entities needed to hydrate rows
// back into domain flights.
type refs struct {
	airports map[string]*domain.Airport
	airlines map[string]*domain.Airline
	aircraft map[string]*domain.Aircraft
}

// fromFlightRow converts a row tree back into a domain flight, resolving
// reference IDs against the batch-loaded maps.
func fromFlightRow(row *flightRow, r refs) *domain.Flight {
	f := &domain.Flight{
		ID:     row.ID,
		Date:   row.Date,
		Reason: domain.Reason(row.Reason),
		Note:   row.Note,
	}

	f.Legs = make([]domain.Leg, 0, len(row.Legs))
	for i := range row.Legs {
		f.Legs = append(f.Legs, fromLegRow(&row.Legs[i], r))
	}
	return f
}

func fromLegRow(row *legRow, r refs) domain.Leg {
	l := domain.Leg{
		ID:                   row.ID,
		FlightID:             row.FlightID,
		Order:                row.Position,
		From:                 r.airports[row.FromID],
		To:                   r.airports[row.ToID],
		Departure:            row.Departure,
		DepartureScheduled:   row.DepartureScheduled,
		Arrival:              row.Arrival,
		ArrivalScheduled:     row.ArrivalScheduled,
		Takeoff:              row.Takeoff,
		Landing:              row.Landing,
		DepartureTerminal:    row.DepartureTerminal,
		DepartureGate:        row.DepartureGate,
		ArrivalTerminal:      row.ArrivalTerminal,
		ArrivalGate:          row.ArrivalGate,
		FlightNumber:         row.FlightNumber,
		AircraftRegistration: row.AircraftRegistration,
		DurationSeconds:      row.DurationSeconds,
	}
	if row.AirlineID != nil {
		l.Airline = r.airlines[*row.AirlineID]
	}
	if row.AircraftID != nil {
		l.Aircraft = r.aircraft[*row.AircraftID]
	}

	l.Seats = make([]domain.Seat, 0, len(row.Seats))
	for _, s := range row.Seats {
		l.Seats = append(l.Seats, domain.Seat{
			ID:         s.ID,
			LegID:      s.LegID,
			UserID:     s.UserID,
			GuestName:  s.GuestName,
			SeatType:   domain.SeatType(s.SeatType),
			SeatNumber: s.SeatNo,
			SeatClass:  domain.SeatClass(s.SeatClass),
		})
	}
	return l
}
