package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightlog/flight-record-service/internal/domain"
)

func TestValidateLeg_RequiresAirports(t *testing.T) {
	leg := basicLeg("u1")
	leg.From = nil

	_, err := ValidateLeg(0, leg)
	fe := requireFieldError(t, err)
	assert.Equal(t, "legs[0].from", fe.Path)

	leg = basicLeg("u1")
	leg.To = nil

	_, err = ValidateLeg(1, leg)
	fe = requireFieldError(t, err)
	assert.Equal(t, "legs[1].to", fe.Path)
}

func TestValidateLeg_RequiresDepartureDate(t *testing.T) {
	leg := basicLeg("u1")
	leg.Departure = domain.DateTimePair{}

	_, err := ValidateLeg(2, leg)

	fe := requireFieldError(t, err)
	assert.Equal(t, "legs[2].departure", fe.Path)
	assert.Equal(t, "select a departure date", fe.Message)
}

func TestValidateLeg_ScheduledDepartureSuffices(t *testing.T) {
	leg := basicLeg("u1")
	leg.Departure = domain.DateTimePair{}
	leg.DepartureScheduled = domain.DateTimePair{Date: "2024-01-01", Time: "09:30"}

	got, err := ValidateLeg(0, leg)

	require.NoError(t, err)
	assert.Nil(t, got.Departure)
	require.NotNil(t, got.DepartureScheduled)
	// 09:30 EST is 14:30 UTC.
	assert.Equal(t, "2024-01-01T14:30:00Z", got.DepartureScheduled.Format(time.RFC3339))
}

func TestValidateLeg_RejectsPreEpochDeparture(t *testing.T) {
	leg := basicLeg("u1")
	leg.Departure = domain.DateTimePair{Date: "1969-07-20", Time: "10:00"}

	_, err := ValidateLeg(0, leg)

	fe := requireFieldError(t, err)
	assert.Equal(t, "legs[0].departure", fe.Path)
	assert.Equal(t, "date must not be before 1970", fe.Message)
}

func TestValidateLeg_CrossZoneArrival(t *testing.T) {
	// Departing JFK at 10:00 Eastern and arriving LAX at 08:00 Pacific is
	// valid: 08:00 PT is 11:00 ET, one hour after departure.
	leg := basicLeg("u1")
	leg.Arrival = domain.DateTimePair{Date: "2024-01-01", Time: "08:00"}

	got, err := ValidateLeg(0, leg)

	require.NoError(t, err)
	require.NotNil(t, got.DurationSeconds)
	assert.Equal(t, int64(3600), *got.DurationSeconds)
}

func TestValidateLeg_TranscontinentalDuration(t *testing.T) {
	// 10:00 ET to 13:00 PT is the classic six-hour JFK-LAX block.
	leg := basicLeg("u1")
	leg.Arrival = domain.DateTimePair{Date: "2024-01-01", Time: "13:00"}

	got, err := ValidateLeg(0, leg)

	require.NoError(t, err)
	require.NotNil(t, got.DurationSeconds)
	assert.Equal(t, int64(6*3600), *got.DurationSeconds)

	// Instants are stored in UTC.
	require.NotNil(t, got.Departure)
	assert.Equal(t, "2024-01-01T15:00:00Z", got.Departure.Format(time.RFC3339))
	require.NotNil(t, got.Arrival)
	assert.Equal(t, "2024-01-01T21:00:00Z", got.Arrival.Format(time.RFC3339))
}

func TestValidateLeg_ArrivalBeforeDeparture(t *testing.T) {
	leg := domain.LegInput{
		From:      apCGK,
		To:        apCGK,
		Departure: domain.DateTimePair{Date: "2024-01-01", Time: "10:00"},
		Arrival:   domain.DateTimePair{Date: "2024-01-01", Time: "08:00"},
		Seats:     []domain.SeatInput{userSeat("u1")},
	}

	_, err := ValidateLeg(3, leg)

	fe := requireFieldError(t, err)
	assert.Equal(t, "legs[3].arrival", fe.Path)
	assert.Equal(t, "arrival must be after departure", fe.Message)
}

func TestValidateLeg_ArrivalDateWithoutTime(t *testing.T) {
	leg := basicLeg("u1")
	leg.Arrival = domain.DateTimePair{Date: "2024-01-01"}

	_, err := ValidateLeg(0, leg)

	fe := requireFieldError(t, err)
	assert.Equal(t, "legs[0].arrivalTime", fe.Path)
	assert.Equal(t, "cannot have arrival date without time", fe.Message)
}

func TestValidateLeg_ArrivalTimeDefaultsToDepartureDate(t *testing.T) {
	leg := basicLeg("u1")
	leg.Arrival = domain.DateTimePair{Time: "13:00"}

	got, err := ValidateLeg(0, leg)

	require.NoError(t, err)
	require.NotNil(t, got.Arrival)
	assert.Equal(t, "2024-01-01T21:00:00Z", got.Arrival.Format(time.RFC3339))
}

func TestValidateLeg_MalformedTimeScopedToField(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*domain.LegInput)
		wantPath string
	}{
		{
			name: "departure time",
			mutate: func(l *domain.LegInput) {
				l.Departure = domain.DateTimePair{Date: "2024-01-01", Time: "25:99"}
			},
			wantPath: "legs[0].departureTime",
		},
		{
			name: "scheduled departure time",
			mutate: func(l *domain.LegInput) {
				l.DepartureScheduled = domain.DateTimePair{Date: "2024-01-01", Time: "junk"}
			},
			wantPath: "legs[0].departureScheduledTime",
		},
		{
			name: "arrival time",
			mutate: func(l *domain.LegInput) {
				l.Arrival = domain.DateTimePair{Date: "2024-01-01", Time: "8 o'clock"}
			},
			wantPath: "legs[0].arrivalTime",
		},
		{
			name: "takeoff time",
			mutate: func(l *domain.LegInput) {
				l.Takeoff = domain.DateTimePair{Date: "2024-01-01", Time: "xx:yy"}
			},
			wantPath: "legs[0].takeoffTime",
		},
		{
			name: "landing time",
			mutate: func(l *domain.LegInput) {
				l.Landing = domain.DateTimePair{Date: "2024-01-01", Time: "99:00"}
			},
			wantPath: "legs[0].landingTime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leg := basicLeg("u1")
			tt.mutate(&leg)

			_, err := ValidateLeg(0, leg)

			fe := requireFieldError(t, err)
			assert.Equal(t, tt.wantPath, fe.Path)
		})
	}
}

func TestValidateLeg_DateWithoutTimeStaysDateOnly(t *testing.T) {
	// A scheduled date without its paired time must not be promoted to an
	// instant.
	leg := basicLeg("u1")
	leg.DepartureScheduled = domain.DateTimePair{Date: "2024-01-01"}

	got, err := ValidateLeg(0, leg)

	require.NoError(t, err)
	assert.Nil(t, got.DepartureScheduled)
}

func TestValidateLeg_DurationEstimatedWithoutArrival(t *testing.T) {
	leg := basicLeg("u1")

	got, err := ValidateLeg(0, leg)

	require.NoError(t, err)
	require.NotNil(t, got.DurationSeconds)
	// JFK-LAX is just under 4000 km; the estimate has to land between the
	// 30 minute overhead floor and an absurd upper bound.
	assert.Greater(t, *got.DurationSeconds, int64(3*3600))
	assert.Less(t, *got.DurationSeconds, int64(8*3600))
}

func TestValidateLeg_NoDurationForSameAirport(t *testing.T) {
	leg := domain.LegInput{
		From:      apCGK,
		To:        apCGK,
		Departure: domain.DateTimePair{Date: "2024-01-01", Time: "10:00"},
		Seats:     []domain.SeatInput{userSeat("u1")},
	}

	got, err := ValidateLeg(0, leg)

	require.NoError(t, err)
	assert.Nil(t, got.DurationSeconds)
}

func TestValidateLeg_SeatValidation(t *testing.T) {
	tests := []struct {
		name     string
		seats    []domain.SeatInput
		wantPath string
		wantMsg  string
	}{
		{
			name:     "no seats",
			seats:    nil,
			wantPath: "legs[0].seats",
			wantMsg:  "at least one traveller is required",
		},
		{
			name:     "seat without identity",
			seats:    []domain.SeatInput{{}},
			wantPath: "legs[0].seats[0]",
			wantMsg:  "seat needs either a user or a guest name",
		},
		{
			name:     "seat with both identities",
			seats:    []domain.SeatInput{{UserID: strPtr("u1"), GuestName: strPtr("Alex")}},
			wantPath: "legs[0].seats[0]",
			wantMsg:  "seat cannot have both a user and a guest name",
		},
		{
			name:     "unknown seat type",
			seats:    []domain.SeatInput{{UserID: strPtr("u1"), SeatType: "hammock"}},
			wantPath: "legs[0].seats[0].seatType",
			wantMsg:  "unknown seat type",
		},
		{
			name:     "unknown seat class",
			seats:    []domain.SeatInput{{UserID: strPtr("u1"), SeatClass: "steerage"}},
			wantPath: "legs[0].seats[0].seatClass",
			wantMsg:  "unknown seat class",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leg := basicLeg("u1")
			leg.Seats = tt.seats

			_, err := ValidateLeg(0, leg)

			fe := requireFieldError(t, err)
			assert.Equal(t, tt.wantPath, fe.Path)
			assert.Equal(t, tt.wantMsg, fe.Message)
		})
	}
}

func TestValidateLeg_SecondSeatIndexInPath(t *testing.T) {
	leg := basicLeg("u1")
	leg.Seats = []domain.SeatInput{userSeat("u1"), {}}

	_, err := ValidateLeg(1, leg)

	fe := requireFieldError(t, err)
	assert.Equal(t, "legs[1].seats[1]", fe.Path)
}

// requireFieldError asserts err is a field-scoped validation error.
func requireFieldError(t *testing.T, err error) *domain.FieldError {
	t.Helper()
	require.Error(t, err)
	fe, ok := domain.AsFieldError(err)
	require.True(t, ok, "expected a field error, got %v", err)
	return fe
}
