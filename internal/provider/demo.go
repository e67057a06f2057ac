package provider

import "encoding/json"

// Demo payloads shown when no portal is reachable. The American sample is
// a real system-status response captured from an aainflight portal; note
// the numerics arrive as JSON strings, which exercises the same coercion
// the live path needs.
const (
	spiritDemoJSON = `{
		"flightNumber": "NK 123",
		"origin": "Fort Lauderdale (FLL)",
		"destination": "Los Angeles (LAX)",
		"altitude": 35000,
		"speed": 520,
		"timeRemaining": 145,
		"progress": 62
	}`

	americanDemoJSON = `{
		"time_stamp": "2026-01-30T22:54:08.150Z",
		"aircraft_info": {
			"tail_no": "N818AW",
			"airline_code": "AAL",
			"aircraft_type": "A319",
			"system_type": "2KU"
		},
		"positional_info": {
			"above_gnd_level_feet": "-129.31",
			"latitude": "33.6678",
			"longitude": "-78.9229",
			"horizontal_velocity_mph": "11.794471",
			"vertical_velocity_mph": "0.07954546",
			"above_sea_level_feet": "-109.75001",
			"source": "ARINC_DIRECT"
		},
		"flight_info": {
			"flight_no": "AAL2911",
			"departure_airport_icao": "KMYR",
			"arrival_airport_icao": "KDFW",
			"departure_airport_iata": "MYR",
			"arrival_airport_iata": "DFW",
			"departure_time": "2026-01-30T22:50:00.00Z",
			"arrival_time": "2026-01-31T01:51:00.00Z",
			"time_to_land_mins": "180",
			"total_flight_duration_mins": "181"
		},
		"service_info": {
			"flight_phase": "TAXI",
			"link_state": "UP",
			"link_type": "2KU",
			"country_code": "US",
			"airport_code": "KMYR"
		}
	}`

	deltaDemoJSON = `{
		"flightNumber": "DL 789",
		"origin": "Atlanta (ATL)",
		"destination": "Seattle (SEA)",
		"altitude": 36000,
		"speed": 532,
		"timeRemaining": 203,
		"progress": 45
	}`
)

var demoPayloads = map[string]map[string]any{
	"spirit":   mustParse(spiritDemoJSON),
	"american": mustParse(americanDemoJSON),
	"delta":    mustParse(deltaDemoJSON),
}

// DemoPayload returns the static placeholder payload for a provider,
// shaped exactly like a live portal response so it flows through the
// normal extraction path. Unknown ids fall back to the spirit sample.
func DemoPayload(id string) map[string]any {
	if doc, ok := demoPayloads[id]; ok {
		return doc
	}
	return demoPayloads["spirit"]
}

func mustParse(raw string) map[string]any {
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		panic("provider: bad demo payload: " + err.Error())
	}
	return doc
}
