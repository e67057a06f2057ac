package payload

import "testing"

func f(v float64) *float64 { return &v }

func TestFormatAltitude(t *testing.T) {
	tests := []struct {
		name string
		in   *float64
		want string
		nil_ bool
	}{
		{"cruise altitude grouped", f(35000), "35,000 ft", false},
		{"zero is a value", f(0), "0 ft", false},
		{"fractional rounds", f(34012.5), "34,013 ft", false},
		{"missing passes through", nil, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAltitude(tt.in)
			if tt.nil_ {
				if got != nil {
					t.Fatalf("FormatAltitude(nil) = %q, want nil", *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Fatalf("FormatAltitude(%v) = %v, want %q", *tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatSpeed(t *testing.T) {
	if got := FormatSpeed(nil); got != nil {
		t.Fatalf("FormatSpeed(nil) = %q, want nil", *got)
	}
	if got := FormatSpeed(f(519.6)); got == nil || *got != "520 mph" {
		t.Fatalf("FormatSpeed(519.6) = %v, want 520 mph", got)
	}
	if got := FormatSpeed(f(0)); got == nil || *got != "0 mph" {
		t.Fatalf("FormatSpeed(0) = %v, want 0 mph", got)
	}
}

func TestFormatTimeRemaining(t *testing.T) {
	if got := FormatTimeRemaining(nil); got != nil {
		t.Fatalf("FormatTimeRemaining(nil) = %q, want nil", *got)
	}
	if got := FormatTimeRemaining(f(125)); got == nil || *got != "2h 5m" {
		t.Fatalf("FormatTimeRemaining(125) = %v, want 2h 5m", got)
	}
	if got := FormatTimeRemaining(f(45)); got == nil || *got != "45m" {
		t.Fatalf("FormatTimeRemaining(45) = %v, want 45m", got)
	}
	if got := FormatTimeRemaining(f(60)); got == nil || *got != "1h 0m" {
		t.Fatalf("FormatTimeRemaining(60) = %v, want 1h 0m", got)
	}
}
