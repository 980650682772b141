package domain

import "strings"

// DateTimePair is a wall-clock instant as the user entered it: a calendar
// date string (YYYY-MM-DD) and a separate time-of-day string (HH:MM), either
// of which may be empty. The pair is only promoted to a real instant by the
// datetime resolver, anchored to the relevant airport's timezone.
type DateTimePair struct {
	// Date is the local calendar date in YYYY-MM-DD format
	Date string `json:"date,omitempty"`

	// Time is the local time of day in HH:MM (or HH:MM:SS) format
	Time string `json:"time,omitempty"`
}

// IsZero reports whether neither date nor time is set.
func (p DateTimePair) IsZero() bool {
	return p.Date == "" && p.Time == ""
}

// SeatInput is the raw seat data for one traveller on a leg.
type SeatInput struct {
	// UserID is the registered traveller, if any
	UserID *string `json:"userId,omitempty"`

	// GuestName is the free-text guest traveller, if any
	GuestName *string `json:"guestName,omitempty"`

	// SeatType is the optional physical seat position
	SeatType SeatType `json:"seatType,omitempty"`

	// SeatNumber is the optional seat designator
	SeatNumber string `json:"seatNumber,omitempty"`

	// SeatClass is the optional cabin class
	SeatClass SeatClass `json:"seatClass,omitempty"`
}

// LegInput is the raw input for a single leg. Airport, airline and aircraft
// references have already been resolved by the boundary adapter; everything
// wall-clock related is still in its entered string form.
type LegInput struct {
	// From and To are the origin and destination airports (both required)
	From *Airport `json:"from"`
	To   *Airport `json:"to"`

	// Departure and Arrival are the actual gate times as entered
	Departure DateTimePair `json:"departure,omitempty"`
	Arrival   DateTimePair `json:"arrival,omitempty"`

	// DepartureScheduled and ArrivalScheduled are the timetabled times
	DepartureScheduled DateTimePair `json:"departureScheduled,omitempty"`
	ArrivalScheduled   DateTimePair `json:"arrivalScheduled,omitempty"`

	// Takeoff and Landing are the actual wheels-up / wheels-down times
	Takeoff DateTimePair `json:"takeoff,omitempty"`
	Landing DateTimePair `json:"landing,omitempty"`

	// DepartureTerminal and DepartureGate locate the departure within the airport
	DepartureTerminal string `json:"departureTerminal,omitempty"`
	DepartureGate     string `json:"departureGate,omitempty"`

	// ArrivalTerminal and ArrivalGate locate the arrival within the airport
	ArrivalTerminal string `json:"arrivalTerminal,omitempty"`
	ArrivalGate     string `json:"arrivalGate,omitempty"`

	// FlightNumber is the optional airline flight number
	FlightNumber string `json:"flightNumber,omitempty"`

	// AircraftRegistration is the optional tail number
	AircraftRegistration string `json:"aircraftRegistration,omitempty"`

	// Airline and Aircraft are optional resolved references
	Airline  *Airline  `json:"airline,omitempty"`
	Aircraft *Aircraft `json:"aircraft,omitempty"`

	// Seats are the travellers on this leg
	Seats []SeatInput `json:"seats,omitempty"`
}

// FlightInput is the raw input for saving one flight. The boundary adapter
// normalizes every wire shape into this form before the core sees it.
type FlightInput struct {
	// Reason is the optional trip reason
	Reason Reason `json:"reason,omitempty"`

	// Note is the optional free-text note
	Note string `json:"note,omitempty"`

	// Legs is the ordered list of raw legs (at least one)
	Legs []LegInput `json:"legs"`
}

// ApplyDefaults normalizes the input in place into one canonical raw-flight
// record before validation: identity strings are trimmed, and any leg without
// seats gets a single seat for the acting user. Validation itself never
// fills defaults; this is the only place fallbacks happen.
func (in *FlightInput) ApplyDefaults(actingUserID string) {
	in.Note = strings.TrimSpace(in.Note)

	for i := range in.Legs {
		leg := &in.Legs[i]
		leg.FlightNumber = strings.TrimSpace(leg.FlightNumber)
		leg.AircraftRegistration = strings.ToUpper(strings.TrimSpace(leg.AircraftRegistration))
		leg.DepartureTerminal = strings.TrimSpace(leg.DepartureTerminal)
		leg.DepartureGate = strings.TrimSpace(leg.DepartureGate)
		leg.ArrivalTerminal = strings.TrimSpace(leg.ArrivalTerminal)
		leg.ArrivalGate = strings.TrimSpace(leg.ArrivalGate)

		if len(leg.Seats) == 0 {
			uid := actingUserID
			leg.Seats = []SeatInput{{UserID: &uid}}
		}

		for j := range leg.Seats {
			seat := &leg.Seats[j]
			seat.SeatNumber = strings.TrimSpace(seat.SeatNumber)
			if seat.GuestName != nil {
				name := strings.TrimSpace(*seat.GuestName)
				if name == "" {
					seat.GuestName = nil
				} else {
					seat.GuestName = &name
				}
			}
		}
	}
}
