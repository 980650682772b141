package domain

// Airport is immutable reference data describing one airport. Airports are
// owned externally and referenced by ID; the engine never writes them.
type Airport struct {
	// ID is the unique identifier of the airport
	ID string `json:"id"`

	// ICAO is the 4-letter ICAO code (e.g., "KJFK")
	ICAO string `json:"icao"`

	// IATA is the 3-letter IATA code (e.g., "JFK"), may be empty
	IATA string `json:"iata,omitempty"`

	// Name is the full airport name
	Name string `json:"name"`

	// Latitude and Longitude are the airport coordinates in decimal degrees
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// Timezone is the IANA timezone identifier (e.g., "Europe/Paris") used
	// to disambiguate local times entered for this airport
	Timezone string `json:"timezone"`
}

// Airline is reference data describing one airline.
type Airline struct {
	// ID is the unique identifier of the airline
	ID string `json:"id"`

	// ICAO is the airline's ICAO designator (e.g., "GIA")
	ICAO string `json:"icao"`

	// Name is the full airline name
	Name string `json:"name"`
}

// Aircraft is reference data describing one aircraft type.
type Aircraft struct {
	// ID is the unique identifier of the aircraft type
	ID string `json:"id"`

	// ICAO is the aircraft type designator (e.g., "B738")
	ICAO string `json:"icao"`

	// Name is the full aircraft type name
	Name string `json:"name"`
}
