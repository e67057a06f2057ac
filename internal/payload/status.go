package payload

// FlightStatus is the canonical, provider-agnostic flight record handed to
// the renderer. Every field except ProgressPercent is optional; absent
// fields render as placeholders, never as errors. Instances are built
// fresh per fetch cycle and not mutated afterwards.
type FlightStatus struct {
	FlightNumber *string
	Origin       *string
	Destination  *string

	AltitudeFeet         *float64
	SpeedMph             *float64
	TimeRemainingMinutes *float64
	// TimeRemainingText carries a provider pre-formatted remaining-time
	// string when the payload holds no numeric value.
	TimeRemainingText *string

	// ProgressPercent is always clamped to [0,100].
	ProgressPercent float64

	// Display strings are computed by Extract before the record leaves
	// this package, so the renderer never formats raw values itself.
	AltitudeDisplay      *string
	SpeedDisplay         *string
	TimeRemainingDisplay *string
}
