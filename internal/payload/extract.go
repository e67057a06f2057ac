package payload

// Alias tables for each canonical field, highest priority first. The
// nested provider-specific paths come before the flat generic spellings:
// a structural match on flight_info.* is more trustworthy than an
// incidental top-level key collision. New shapes are added here, not as
// code branches.
var (
	flightNumberAliases = []string{
		"flight_info.flight_no",
		"flightNumber",
		"flight_number",
		"flight",
	}
	originAliases = []string{
		"flight_info.departure_airport_iata",
		"origin",
		"departure",
		"from",
	}
	destinationAliases = []string{
		"flight_info.arrival_airport_iata",
		"destination",
		"arrival",
		"to",
	}
	altitudeAliases = []string{
		"positional_info.above_sea_level_feet",
		"altitude",
		"alt",
	}
	speedAliases = []string{
		"positional_info.horizontal_velocity_mph",
		"speed",
		"groundSpeed",
		"ground_speed",
	}
	timeRemainingAliases = []string{
		"flight_info.time_to_land_mins",
		"timeRemaining",
		"time_remaining",
		"eta",
	}
)

// Extract maps an arbitrary portal document to a FlightStatus. It never
// fails: a missing or wrong-typed field leaves the output field absent.
// The returned record is fully formed, display strings included.
func Extract(raw Raw) FlightStatus {
	st := FlightStatus{
		FlightNumber:    firstText(raw, flightNumberAliases),
		Origin:          firstText(raw, originAliases),
		Destination:     firstText(raw, destinationAliases),
		AltitudeFeet:    firstNumber(raw, altitudeAliases),
		SpeedMph:        firstNumber(raw, speedAliases),
		ProgressPercent: Progress(raw),
	}

	// Time remaining is minutes when numeric; some portals pre-format it
	// ("2h 5m") and that string passes through unchanged.
	for _, path := range timeRemainingAliases {
		if n, ok := raw.Number(path); ok {
			st.TimeRemainingMinutes = &n
			break
		}
		if s, ok := raw.Text(path); ok {
			st.TimeRemainingText = &s
			break
		}
	}

	st.AltitudeDisplay = FormatAltitude(st.AltitudeFeet)
	st.SpeedDisplay = FormatSpeed(st.SpeedMph)
	if st.TimeRemainingText != nil {
		st.TimeRemainingDisplay = st.TimeRemainingText
	} else {
		st.TimeRemainingDisplay = FormatTimeRemaining(st.TimeRemainingMinutes)
	}
	return st
}

func firstText(raw Raw, aliases []string) *string {
	for _, path := range aliases {
		if s, ok := raw.Text(path); ok {
			return &s
		}
	}
	return nil
}

func firstNumber(raw Raw, aliases []string) *float64 {
	for _, path := range aliases {
		if n, ok := raw.Number(path); ok {
			return &n
		}
	}
	return nil
}
