package payload

import (
	"math"
	"testing"
)

func TestProgress_Precedence(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
		want float64
	}{
		{
			name: "nested minutes win over everything",
			raw: Raw{
				"flight_info": map[string]any{
					"time_to_land_mins":          "45",
					"total_flight_duration_mins": "180",
				},
				"progress": 99.0,
				"elapsed":  1.0,
				"duration": 2.0,
			},
			want: 25,
		},
		{
			name: "explicit progress",
			raw:  Raw{"progress": 62.0, "elapsed": 1.0, "duration": 2.0},
			want: 62,
		},
		{
			name: "elapsed over duration",
			raw:  Raw{"elapsed": 30.0, "duration": 120.0},
			want: 25,
		},
		{
			name: "distance ratio",
			raw:  Raw{"distance_traveled": 600.0, "total_distance": 800.0},
			want: 75,
		},
		{
			name: "nothing known",
			raw:  Raw{"flightNumber": "NK 123"},
			want: 0,
		},
		{
			name: "zero duration falls through to distance",
			raw:  Raw{"elapsed": 30.0, "duration": 0.0, "distance_traveled": 1.0, "total_distance": 4.0},
			want: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.raw); got != tt.want {
				t.Fatalf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgress_ClampsToRange(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
		want float64
	}{
		{"negative progress", Raw{"progress": -12.0}, 0},
		{"over 100 progress", Raw{"progress": 250.0}, 100},
		{"elapsed beyond duration", Raw{"elapsed": 300.0, "duration": 100.0}, 100},
		{
			"remaining beyond duration",
			Raw{"flight_info": map[string]any{
				"time_to_land_mins":          "400",
				"total_flight_duration_mins": "180",
			}},
			100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.raw); got != tt.want {
				t.Fatalf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}
}

// strconv.ParseFloat accepts "nan", "inf", and "Infinity", so portals can
// ship non-finite values as strings. Those count as absent fields; the
// percentage must stay finite and inside [0, 100].
func TestProgress_NonFiniteStringsTreatedAsAbsent(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
		want float64
	}{
		{"nan progress string", Raw{"progress": "nan"}, 0},
		{"infinity progress string", Raw{"progress": "Infinity"}, 0},
		{"nan elapsed string", Raw{"elapsed": "NaN", "duration": 10.0}, 0},
		{
			"nan nested remaining",
			Raw{"flight_info": map[string]any{
				"time_to_land_mins":          "nan",
				"total_flight_duration_mins": "180",
			}},
			0,
		},
		{
			"nan remaining falls through to explicit progress",
			Raw{
				"flight_info": map[string]any{
					"time_to_land_mins":          "nan",
					"total_flight_duration_mins": "180",
				},
				"progress": 40.0,
			},
			40,
		},
		{"inf duration string", Raw{"elapsed": 30.0, "duration": "inf"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(tt.raw)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("Progress() = %v, want a finite value", got)
			}
			if got != tt.want {
				t.Fatalf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgress_Pure(t *testing.T) {
	raw := Raw{"elapsed": 30.0, "duration": 120.0}
	first := Progress(raw)
	second := Progress(raw)
	if first != second {
		t.Fatalf("Progress not idempotent: %v then %v", first, second)
	}
}
