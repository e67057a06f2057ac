package payload

// Progress derives a 0–100 completion percentage from whichever
// progress-bearing fields the document carries. Precedence, highest
// first:
//
//  1. flight_info.time_to_land_mins / flight_info.total_flight_duration_mins
//  2. an explicit top-level progress value
//  3. elapsed / duration
//  4. distance_traveled / total_distance
//
// Pure function of the payload; no smoothing across calls. The result is
// always clamped to [0,100].
func Progress(raw Raw) float64 {
	if remaining, ok := raw.Number("flight_info.time_to_land_mins"); ok {
		if total, ok := raw.Number("flight_info.total_flight_duration_mins"); ok && total > 0 {
			return clampPercent(remaining / total * 100)
		}
	}
	if p, ok := raw.Number("progress"); ok {
		return clampPercent(p)
	}
	if elapsed, ok := raw.Number("elapsed"); ok {
		if duration, ok := raw.Number("duration"); ok && duration > 0 {
			return clampPercent(elapsed / duration * 100)
		}
	}
	if traveled, ok := raw.Number("distance_traveled"); ok {
		if total, ok := raw.Number("total_distance"); ok && total > 0 {
			return clampPercent(traveled / total * 100)
		}
	}
	return 0
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
