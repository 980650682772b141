package http

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizedLegs_LegsArrayWins(t *testing.T) {
	req := SaveFlightRequest{
		Legs: []LegDTO{{From: "ap-a", To: "ap-b"}},
	}
	// Stray flat fields are ignored when a legs array is present.
	req.From = "ap-ignored"

	legs := req.normalizedLegs()

	require.Len(t, legs, 1)
	assert.Equal(t, "ap-a", legs[0].From)
}

func TestNormalizedLegs_FlatShape(t *testing.T) {
	var req SaveFlightRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"reason": "business",
		"from": "ap-a",
		"to": "ap-b",
		"departure": {"date": "2024-01-01", "time": "10:00"},
		"flightNumber": "GA-123"
	}`), &req))

	legs := req.normalizedLegs()

	require.Len(t, legs, 1)
	assert.Equal(t, "ap-a", legs[0].From)
	assert.Equal(t, "ap-b", legs[0].To)
	assert.Equal(t, "GA-123", legs[0].FlightNumber)
	require.NotNil(t, legs[0].Departure)
	assert.Equal(t, "2024-01-01", legs[0].Departure.Date)
}

func TestNormalizedLegs_EmptyRequest(t *testing.T) {
	var req SaveFlightRequest

	assert.Nil(t, req.normalizedLegs())
}

func TestDateTimeDTO_NilToPair(t *testing.T) {
	var d *DateTimeDTO

	assert.True(t, d.toPair().IsZero())
}
