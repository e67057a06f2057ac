// Package payload normalizes the loosely typed JSON documents returned by
// inflight portal APIs into one canonical FlightStatus record.
//
// Every provider ships a different shape: American nests flight data under
// flight_info/positional_info with numerics encoded as strings, others use
// flat documents with one of several key spellings. The extractor resolves
// each output field against an ordered alias table, nested shapes first,
// and degrades to absent rather than failing.
package payload

import (
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"
)

// Raw is a decoded JSON document from a portal endpoint. No shape beyond
// "is a JSON object" is assumed.
type Raw map[string]any

// Decode reads a JSON object from r.
func Decode(r io.Reader) (Raw, error) {
	var doc Raw
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Parse decodes a JSON object from bytes.
func Parse(b []byte) (Raw, error) {
	var doc Raw
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Lookup walks a dot-separated path and reports whether it ends at a
// present, non-null value. Intermediate segments must be objects.
func (r Raw) Lookup(path string) (any, bool) {
	var current any = map[string]any(r)
	for _, key := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[key]
		if !ok || current == nil {
			return nil, false
		}
	}
	return current, true
}

// Number resolves path to a float64, coercing string-encoded numerics the
// way the portals ship them ("180", "-109.75001").
func (r Raw) Number(path string) (float64, bool) {
	v, ok := r.Lookup(path)
	if !ok {
		return 0, false
	}
	return toNumber(v)
}

// Text resolves path to a non-empty string. Numeric values are rendered
// rather than dropped, since some portals return flight numbers as bare
// numbers.
func (r Raw) Text(path string) (string, bool) {
	v, ok := r.Lookup(path)
	if !ok {
		return "", false
	}
	switch s := v.(type) {
	case string:
		if s == "" {
			return "", false
		}
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case json.Number:
		return s.String(), true
	}
	return "", false
}

func toNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	// ParseFloat accepts "nan", "inf", and "Infinity"; a non-finite
	// value would escape the progress clamp and corrupt formatting, so
	// it counts as absent like any other unusable field.
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
