package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/flightlog/flight-record-service/internal/domain"
	"github.com/flightlog/flight-record-service/internal/infrastructure/logger"
)

// ImportSeat is one traveller on an imported leg. TravellerName is matched
// against the user mapping; unmatched names become guest seats.
type ImportSeat struct {
	// TravellerName identifies the traveller by display name
	TravellerName string `json:"travellerName"`

	// SeatType is the optional physical seat position
	SeatType domain.SeatType `json:"seatType,omitempty"`

	// SeatNumber is the optional seat designator
	SeatNumber string `json:"seatNumber,omitempty"`

	// SeatClass is the optional cabin class
	SeatClass domain.SeatClass `json:"seatClass,omitempty"`
}

// ImportLeg is one leg of an imported flight, airports and airline still in
// their exported code form.
type ImportLeg struct {
	// FromCode and ToCode are ICAO or IATA airport codes
	FromCode string `json:"from"`
	ToCode   string `json:"to"`

	// Wall-clock fields as exported, date and time entered separately
	Departure          domain.DateTimePair `json:"departure,omitempty"`
	Arrival            domain.DateTimePair `json:"arrival,omitempty"`
	DepartureScheduled domain.DateTimePair `json:"departureScheduled,omitempty"`
	ArrivalScheduled   domain.DateTimePair `json:"arrivalScheduled,omitempty"`
	Takeoff            domain.DateTimePair `json:"takeoff,omitempty"`
	Landing            domain.DateTimePair `json:"landing,omitempty"`

	// FlightNumber is the optional airline flight number
	FlightNumber string `json:"flightNumber,omitempty"`

	// AircraftRegistration is the optional tail number
	AircraftRegistration string `json:"aircraftRegistration,omitempty"`

	// AirlineCode is the optional ICAO airline designator
	AirlineCode string `json:"airline,omitempty"`

	// Seats are the travellers on this leg
	Seats []ImportSeat `json:"seats,omitempty"`
}

// ImportFlight is one flight of an import batch.
type ImportFlight struct {
	Reason domain.Reason `json:"reason,omitempty"`
	Note   string        `json:"note,omitempty"`
	Legs   []ImportLeg   `json:"legs"`
}

// ImportOptions configures one import call. The mapping tables are provided
// by the caller; the importer itself never queries reference data.
type ImportOptions struct {
	// Dedupe enables the duplicate matcher. When false every incoming
	// flight is inserted as new, duplicates included.
	Dedupe bool

	// AirportsByCode maps ICAO and IATA codes to airports
	AirportsByCode map[string]*domain.Airport

	// AirlinesByCode maps ICAO designators to airlines
	AirlinesByCode map[string]*domain.Airline

	// UsersByName maps traveller display names to user IDs
	UsersByName map[string]string
}

// ImportResult summarizes one import call. Unknown reference codes never
// abort the batch; they are reported here keyed by code with the batch
// indices affected, so the caller can resolve them and re-import.
type ImportResult struct {
	// InsertedFlights is the number of flights inserted as new
	InsertedFlights int `json:"insertedFlights"`

	// AttachedSeats is the number of seats attached to existing flights
	AttachedSeats int `json:"attachedSeats"`

	// SkippedFlights counts incoming flights dropped as duplicates or for
	// unresolvable data
	SkippedFlights int `json:"skippedFlights"`

	// UnknownAirports lists unresolved airport codes with the batch indices
	// that referenced them; those flights are skipped
	UnknownAirports map[string][]int `json:"unknownAirports,omitempty"`

	// UnknownAirlines lists unresolved airline codes with the batch indices
	// that referenced them; those flights import without an airline ref
	UnknownAirlines map[string][]int `json:"unknownAirlines,omitempty"`
}

// Importer runs bulk flight imports with signature-based deduplication.
type Importer interface {
	// Import validates the batch, decides per flight whether it is new, a
	// seat attachment onto an existing flight, or a duplicate to discard,
	// and issues at most two bulk writes. The insert and attach phases are
	// independent transactions; an attach failure does not roll back
	// already-inserted flights.
	Import(ctx context.Context, actingUserID string, batch []ImportFlight, opts ImportOptions) (*ImportResult, error)
}

// importer implements Importer on top of the store boundary.
type importer struct {
	store domain.Store
	log   *logger.Logger
}

// NewImporter creates an Importer backed by the given store.
func NewImporter(store domain.Store, log *logger.Logger) Importer {
	if log == nil {
		log = logger.Nop()
	}
	return &importer{store: store, log: log}
}

// Import implements Importer.Import.
func (im *importer) Import(ctx context.Context, actingUserID string, batch []ImportFlight, opts ImportOptions) (*ImportResult, error) {
	result := &ImportResult{
		UnknownAirports: map[string][]int{},
		UnknownAirlines: map[string][]int{},
	}

	// Phase 1: resolve codes and validate. A flight with an unknown
	// airport or invalid leg data is skipped and reported, never fatal to
	// the batch.
	assembled := make([]*domain.Flight, 0, len(batch))
	for i, raw := range batch {
		flight, ok := im.resolveAndAssemble(i, raw, actingUserID, opts, result)
		if !ok {
			result.SkippedFlights++
			continue
		}
		assembled = append(assembled, flight)
	}

	if len(assembled) == 0 {
		return result, nil
	}

	// Explicit non-deduplicated path: insert everything as new.
	if !opts.Dedupe {
		if err := im.store.CreateManyFlights(ctx, assembled); err != nil {
			im.log.Error().Err(err).Msg("bulk insert failed")
			return nil, domain.NewStoreError(err)
		}
		result.InsertedFlights = len(assembled)
		return result, nil
	}

	return im.dedupeAndWrite(ctx, actingUserID, assembled, result)
}

// dedupeAndWrite partitions the assembled flights into {insert, attach,
// discard} against the flights already stored, whoever recorded them, and
// performs the two bulk writes.
func (im *importer) dedupeAndWrite(ctx context.Context, actingUserID string, assembled []*domain.Flight, result *ImportResult) (*ImportResult, error) {
	// De-duplicate the batch against itself, first occurrence wins.
	unique := make([]*domain.Flight, 0, len(assembled))
	seen := make(map[string]struct{}, len(assembled))
	for _, f := range assembled {
		sig := flightSignature(f)
		if _, dup := seen[sig]; dup {
			result.SkippedFlights++
			continue
		}
		seen[sig] = struct{}{}
		unique = append(unique, f)
	}

	// Narrow existing candidates: fetch by the batch's date set only, then
	// filter in-memory on the first leg's airports. This bounds the fetch
	// without requiring a multi-column index.
	dates := make(map[string]struct{})
	origins := make(map[string]struct{})
	dests := make(map[string]struct{})
	for _, f := range unique {
		dates[f.Date] = struct{}{}
		if first := f.FirstLeg(); first != nil {
			origins[first.From.ID] = struct{}{}
			dests[first.To.ID] = struct{}{}
		}
	}

	candidates, err := im.store.FindFlights(ctx, domain.FlightFilter{Dates: keys(dates)})
	if err != nil {
		im.log.Error().Err(err).Msg("candidate fetch failed")
		return nil, domain.NewStoreError(err)
	}

	// Signature -> existing flight, first match wins on the rare collision.
	existingBySig := make(map[string]*domain.Flight)
	for _, c := range candidates {
		first := c.FirstLeg()
		if first == nil {
			continue
		}
		if _, ok := origins[first.From.ID]; !ok {
			continue
		}
		if _, ok := dests[first.To.ID]; !ok {
			continue
		}
		sig := flightSignature(c)
		if _, ok := existingBySig[sig]; !ok {
			existingBySig[sig] = c
		}
	}

	// One batched seat-membership lookup for all matched flights.
	matchedIDs := make([]string, 0, len(existingBySig))
	for _, c := range existingBySig {
		matchedIDs = append(matchedIDs, c.ID)
	}
	seatFlightIDs := map[string]struct{}{}
	if len(matchedIDs) > 0 {
		seatFlightIDs, err = im.store.FindUserSeatFlightIDs(ctx, actingUserID, matchedIDs)
		if err != nil {
			im.log.Error().Err(err).Msg("seat membership fetch failed")
			return nil, domain.NewStoreError(err)
		}
	}

	var inserts []*domain.Flight
	var attach []*domain.Seat
	for _, f := range unique {
		existing, found := existingBySig[flightSignature(f)]
		if !found {
			inserts = append(inserts, f)
			continue
		}

		if _, already := seatFlightIDs[existing.ID]; already {
			// Same flight, same user: a pure duplicate to discard.
			result.SkippedFlights++
			continue
		}

		// Flight exists for someone else: attach the incoming first leg's
		// seats to the existing flight's first leg.
		attach = append(attach, seatsForLeg(f.FirstLeg(), existing.FirstLeg().ID)...)
	}

	attach = dedupeSeatRows(attach)

	// Two independent bulk writes; a failure here must not undo the other.
	if len(inserts) > 0 {
		if err := im.store.CreateManyFlights(ctx, inserts); err != nil {
			im.log.Error().Err(err).Msg("bulk insert failed")
			return nil, domain.NewStoreError(err)
		}
		result.InsertedFlights = len(inserts)
	}

	if len(attach) > 0 {
		if err := im.store.InsertSeats(ctx, attach); err != nil {
			im.log.Error().Err(err).Int("inserted_flights", result.InsertedFlights).Msg("seat attach failed after insert phase")
			return nil, domain.NewStoreError(err)
		}
		result.AttachedSeats = len(attach)
	}

	im.log.Info().
		Int("inserted", result.InsertedFlights).
		Int("attached", result.AttachedSeats).
		Int("skipped", result.SkippedFlights).
		Msg("import finished")

	return result, nil
}

// resolveAndAssemble maps one raw import flight through the reference
// mappings and runs it through flight assembly. Returns false when the
// flight cannot be imported; reference problems are recorded on the result.
func (im *importer) resolveAndAssemble(index int, raw ImportFlight, actingUserID string, opts ImportOptions, result *ImportResult) (*domain.Flight, bool) {
	input := domain.FlightInput{
		Reason: raw.Reason,
		Note:   raw.Note,
	}

	resolvable := true
	for _, leg := range raw.Legs {
		from, ok := lookupAirport(opts.AirportsByCode, leg.FromCode)
		if !ok {
			result.UnknownAirports[leg.FromCode] = append(result.UnknownAirports[leg.FromCode], index)
			resolvable = false
		}
		to, ok := lookupAirport(opts.AirportsByCode, leg.ToCode)
		if !ok {
			result.UnknownAirports[leg.ToCode] = append(result.UnknownAirports[leg.ToCode], index)
			resolvable = false
		}
		if !resolvable {
			continue
		}

		var airline *domain.Airline
		if leg.AirlineCode != "" {
			airline = opts.AirlinesByCode[strings.ToUpper(leg.AirlineCode)]
			if airline == nil {
				// Unknown airline is not fatal; the leg imports without
				// the reference.
				result.UnknownAirlines[leg.AirlineCode] = append(result.UnknownAirlines[leg.AirlineCode], index)
			}
		}

		seats := make([]domain.SeatInput, 0, len(leg.Seats))
		for _, s := range leg.Seats {
			seats = append(seats, resolveSeat(s, opts.UsersByName))
		}

		input.Legs = append(input.Legs, domain.LegInput{
			From:                 from,
			To:                   to,
			Departure:            leg.Departure,
			Arrival:              leg.Arrival,
			DepartureScheduled:   leg.DepartureScheduled,
			ArrivalScheduled:     leg.ArrivalScheduled,
			Takeoff:              leg.Takeoff,
			Landing:              leg.Landing,
			FlightNumber:         leg.FlightNumber,
			AircraftRegistration: leg.AircraftRegistration,
			Airline:              airline,
			Seats:                seats,
		})
	}

	if !resolvable {
		return nil, false
	}

	input.ApplyDefaults(actingUserID)

	flight, err := AssembleFlight(input)
	if err != nil {
		im.log.Warn().Err(err).Int("batch_index", index).Msg("import flight skipped")
		return nil, false
	}
	return flight, true
}

// resolveSeat maps a traveller name to a registered user when possible,
// falling back to a guest seat.
func resolveSeat(s ImportSeat, usersByName map[string]string) domain.SeatInput {
	out := domain.SeatInput{
		SeatType:   s.SeatType,
		SeatNumber: s.SeatNumber,
		SeatClass:  s.SeatClass,
	}

	name := strings.TrimSpace(s.TravellerName)
	if uid, ok := usersByName[name]; ok {
		out.UserID = &uid
		return out
	}
	if name != "" {
		out.GuestName = &name
	}
	return out
}

// lookupAirport resolves an exported airport code (ICAO or IATA) against
// the mapping.
func lookupAirport(byCode map[string]*domain.Airport, code string) (*domain.Airport, bool) {
	a, ok := byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok || a == nil {
		return nil, false
	}
	return a, true
}

// flightSignature derives the string key under which two flights are
// considered the same real-world flight: nominal date, first-leg route,
// flight number, registration, both instants and the leg count, joined
// with "|".
//
// This is a deliberate heuristic, not structural equality. It ignores seat
// composition and airline/aircraft refs, so a missed duplicate (false
// negative) is possible and accepted; a false positive would silently merge
// two distinct flights and is what the field specificity guards against.
func flightSignature(f *domain.Flight) string {
	first := f.FirstLeg()

	parts := []string{
		f.Date,
		first.From.ID,
		first.To.ID,
		first.FlightNumber,
		first.AircraftRegistration,
		instantKey(first.Departure),
		instantKey(first.Arrival),
		strconv.Itoa(len(f.Legs)),
	}
	return strings.Join(parts, "|")
}

// instantKey renders an optional instant for the signature; absent
// instants contribute an empty field.
func instantKey(t *time.Time) string {
	if t == nil {
		return ""
	}
	return strconv.FormatInt(t.Unix(), 10)
}

// seatsForLeg copies a leg's seats as insert rows for the target leg.
func seatsForLeg(from *domain.Leg, targetLegID string) []*domain.Seat {
	if from == nil {
		return nil
	}
	rows := make([]*domain.Seat, 0, len(from.Seats))
	for i := range from.Seats {
		seat := from.Seats[i]
		seat.ID = ""
		seat.LegID = targetLegID
		rows = append(rows, &seat)
	}
	return rows
}

// dedupeSeatRows keeps at most one seat row per (leg, user) and per
// (leg, guest) pair, first occurrence wins.
func dedupeSeatRows(rows []*domain.Seat) []*domain.Seat {
	if len(rows) == 0 {
		return rows
	}

	out := rows[:0]
	seen := make(map[string]struct{}, len(rows))
	for _, s := range rows {
		key := s.LegID + "|"
		switch {
		case s.UserID != nil:
			key += "u|" + *s.UserID
		case s.GuestName != nil:
			key += "g|" + *s.GuestName
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

// keys returns the keys of a string set.
func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
