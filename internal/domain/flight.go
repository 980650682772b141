// Package domain contains the core business entities and rules for the flight
// record system. These entities are storage-agnostic and form the foundation
// upon which all other components are built.
package domain

import "time"

// DateLayout is the canonical calendar date format used throughout the system.
const DateLayout = "2006-01-02"

// Flight represents one recorded journey: an ordered, non-empty sequence of
// legs flown on a single nominal date.
type Flight struct {
	// ID is the unique identifier of the flight (UUID, assigned on insert)
	ID string `json:"id"`

	// Date is the flight's nominal calendar date in YYYY-MM-DD format.
	// It is derived from the first leg's effective departure, expressed in
	// the first leg's origin timezone.
	Date string `json:"date"`

	// Reason is an optional trip reason (leisure, business, crew, other)
	Reason Reason `json:"reason,omitempty"`

	// Note is an optional free-text note
	Note string `json:"note,omitempty"`

	// Legs is the ordered sequence of legs. Order follows Leg.Order,
	// contiguous from 0. Every persisted flight has at least one leg.
	Legs []Leg `json:"legs"`
}

// FirstLeg returns the flight's first leg, or nil for a legless flight.
// Persisted flights always have at least one leg; the nil case only occurs
// on transient import data.
func (f *Flight) FirstLeg() *Leg {
	if len(f.Legs) == 0 {
		return nil
	}
	return &f.Legs[0]
}

// HasSeatForUser reports whether the given user holds a seat on any leg.
func (f *Flight) HasSeatForUser(userID string) bool {
	for i := range f.Legs {
		for j := range f.Legs[i].Seats {
			s := &f.Legs[i].Seats[j]
			if s.UserID != nil && *s.UserID == userID {
				return true
			}
		}
	}
	return false
}

// Leg represents a single takeoff-to-landing segment of a flight.
type Leg struct {
	// ID is the unique identifier of the leg (UUID, assigned on insert)
	ID string `json:"id"`

	// FlightID is the owning flight
	FlightID string `json:"flightId"`

	// Order is the 0-based position of this leg within its flight
	Order int `json:"order"`

	// From is the origin airport
	From *Airport `json:"from"`

	// To is the destination airport
	To *Airport `json:"to"`

	// Departure is the actual gate departure instant (UTC)
	Departure *time.Time `json:"departure,omitempty"`

	// DepartureScheduled is the timetabled departure instant (UTC)
	DepartureScheduled *time.Time `json:"departureScheduled,omitempty"`

	// Arrival is the actual gate arrival instant (UTC)
	Arrival *time.Time `json:"arrival,omitempty"`

	// ArrivalScheduled is the timetabled arrival instant (UTC)
	ArrivalScheduled *time.Time `json:"arrivalScheduled,omitempty"`

	// Takeoff is the actual wheels-up instant (UTC)
	Takeoff *time.Time `json:"takeoff,omitempty"`

	// Landing is the actual wheels-down instant (UTC)
	Landing *time.Time `json:"landing,omitempty"`

	// DepartureTerminal and DepartureGate locate the departure within the airport
	DepartureTerminal string `json:"departureTerminal,omitempty"`
	DepartureGate     string `json:"departureGate,omitempty"`

	// ArrivalTerminal and ArrivalGate locate the arrival within the airport
	ArrivalTerminal string `json:"arrivalTerminal,omitempty"`
	ArrivalGate     string `json:"arrivalGate,omitempty"`

	// FlightNumber is the airline flight number (e.g., "GA-123")
	FlightNumber string `json:"flightNumber,omitempty"`

	// AircraftRegistration is the tail number of the airframe flown
	AircraftRegistration string `json:"aircraftRegistration,omitempty"`

	// Airline is an optional reference to the operating airline
	Airline *Airline `json:"airline,omitempty"`

	// Aircraft is an optional reference to the aircraft type
	Aircraft *Aircraft `json:"aircraft,omitempty"`

	// DurationSeconds is the leg duration in seconds. Exact when both
	// departure and arrival instants are known, estimated from the
	// great-circle distance otherwise. Nil when it cannot be derived.
	DurationSeconds *int64 `json:"durationSeconds,omitempty"`

	// Seats are the travellers on this leg. Order is irrelevant.
	// Every persisted leg has at least one seat.
	Seats []Seat `json:"seats"`
}

// EffectiveDeparture returns the actual departure when present, falling back
// to the scheduled departure. Nil when neither is set.
func (l *Leg) EffectiveDeparture() *time.Time {
	if l.Departure != nil {
		return l.Departure
	}
	return l.DepartureScheduled
}

// Seat represents one traveller's assignment on a leg. A seat belongs either
// to a registered user (UserID) or to a named guest (GuestName), never both
// and never neither.
type Seat struct {
	// ID is the unique identifier of the seat (UUID, assigned on insert)
	ID string `json:"id"`

	// LegID is the owning leg
	LegID string `json:"legId"`

	// UserID is the registered traveller, if any
	UserID *string `json:"userId,omitempty"`

	// GuestName is the free-text guest traveller, if any
	GuestName *string `json:"guestName,omitempty"`

	// SeatType is the optional physical seat position
	SeatType SeatType `json:"seatType,omitempty"`

	// SeatNumber is the optional seat designator (e.g., "12A")
	SeatNumber string `json:"seatNumber,omitempty"`

	// SeatClass is the optional cabin class
	SeatClass SeatClass `json:"seatClass,omitempty"`
}

// Reason is the trip reason classification.
type Reason string

// Available trip reasons.
const (
	ReasonLeisure  Reason = "leisure"
	ReasonBusiness Reason = "business"
	ReasonCrew     Reason = "crew"
	ReasonOther    Reason = "other"
)

// IsValid checks if the reason is a valid value. The empty string is valid
// (reason is optional).
func (r Reason) IsValid() bool {
	switch r {
	case "", ReasonLeisure, ReasonBusiness, ReasonCrew, ReasonOther:
		return true
	default:
		return false
	}
}

// SeatType is the physical position of a seat.
type SeatType string

// Available seat types.
const (
	SeatTypeWindow   SeatType = "window"
	SeatTypeAisle    SeatType = "aisle"
	SeatTypeMiddle   SeatType = "middle"
	SeatTypePilot    SeatType = "pilot"
	SeatTypeCopilot  SeatType = "copilot"
	SeatTypeJumpseat SeatType = "jumpseat"
	SeatTypeOther    SeatType = "other"
)

// IsValid checks if the seat type is a valid value. The empty string is valid
// (seat type is optional).
func (s SeatType) IsValid() bool {
	switch s {
	case "", SeatTypeWindow, SeatTypeAisle, SeatTypeMiddle,
		SeatTypePilot, SeatTypeCopilot, SeatTypeJumpseat, SeatTypeOther:
		return true
	default:
		return false
	}
}

// SeatClass is the cabin class of a seat.
type SeatClass string

// Available seat classes.
const (
	SeatClassEconomy     SeatClass = "economy"
	SeatClassEconomyPlus SeatClass = "economy+"
	SeatClassBusiness    SeatClass = "business"
	SeatClassFirst       SeatClass = "first"
	SeatClassPrivate     SeatClass = "private"
)

// IsValid checks if the seat class is a valid value. The empty string is
// valid (seat class is optional).
func (s SeatClass) IsValid() bool {
	switch s {
	case "", SeatClassEconomy, SeatClassEconomyPlus, SeatClassBusiness,
		SeatClassFirst, SeatClassPrivate:
		return true
	default:
		return false
	}
}
