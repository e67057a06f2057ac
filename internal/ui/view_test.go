package ui

import (
	"testing"

	"github.com/five82/inflight/internal/payload"
	"github.com/five82/inflight/internal/portal"
	"github.com/five82/inflight/internal/state"
)

func snapshotWith(res portal.Result) state.Snapshot {
	return state.Snapshot{Result: res, HasResult: true}
}

func TestBadgeText(t *testing.T) {
	tests := []struct {
		name  string
		model Model
		want  string
	}{
		{"refreshing", Model{refreshing: true}, "Updating..."},
		{"no result yet", Model{}, "Loading..."},
		{"live", Model{snapshot: snapshotWith(portal.Result{Source: portal.SourceLive})}, "Connected"},
		{"cached", Model{snapshot: snapshotWith(portal.Result{Source: portal.SourceCached})}, "Cached"},
		{"demo", Model{snapshot: snapshotWith(portal.Result{Source: portal.SourceDemo})}, "Demo Mode"},
		{"error", Model{snapshot: snapshotWith(portal.Result{Source: portal.SourceError})}, "Not Connected"},
		{"offline cached", Model{snapshot: snapshotWith(portal.Result{Source: portal.SourceCached, Offline: true})}, "Offline Mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.model.badgeText(); got != tt.want {
				t.Fatalf("badgeText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextOr(t *testing.T) {
	if got := textOr(nil); got != placeholder {
		t.Fatalf("textOr(nil) = %q, want %q", got, placeholder)
	}
	s := "NK 123"
	if got := textOr(&s); got != "NK 123" {
		t.Fatalf("textOr = %q, want NK 123", got)
	}
	empty := ""
	if got := textOr(&empty); got != placeholder {
		t.Fatalf("textOr(empty) = %q, want %q", got, placeholder)
	}
}

func TestDisplayStatus_ErrorCycleKeepsLastGoodValues(t *testing.T) {
	flight := "NK 123"
	good := payload.FlightStatus{FlightNumber: &flight, ProgressPercent: 62}

	m := Model{
		snapshot: snapshotWith(portal.Result{Source: portal.SourceError}),
		lastGood: &good,
	}

	st := m.displayStatus()
	if st.FlightNumber == nil || *st.FlightNumber != "NK 123" {
		t.Fatalf("displayStatus lost last good flight number: %v", st.FlightNumber)
	}
	if st.ProgressPercent != 62 {
		t.Fatalf("ProgressPercent = %v, want 62", st.ProgressPercent)
	}
}

func TestDisplayStatus_NothingKnownIsEmptyRecord(t *testing.T) {
	var m Model
	st := m.displayStatus()
	if st.FlightNumber != nil || st.ProgressPercent != 0 {
		t.Fatalf("displayStatus = %#v, want zero record", st)
	}
}
