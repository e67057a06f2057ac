package provider

import (
	"errors"
	"strings"
	"testing"

	"github.com/five82/inflight/internal/payload"
)

func TestGet_KnownProviders(t *testing.T) {
	for _, id := range []string{"spirit", "american", "delta"} {
		p, err := Get(id)
		if err != nil {
			t.Fatalf("Get(%q) returned error: %v", id, err)
		}
		if p.ID != id {
			t.Fatalf("Get(%q).ID = %q", id, p.ID)
		}
		if p.BaseURL == "" || len(p.EndpointPaths) == 0 {
			t.Fatalf("Get(%q) has no endpoints: %#v", id, p)
		}
		if p.Theme.Primary == "" || p.Theme.Secondary == "" {
			t.Fatalf("Get(%q) has no theme colors", id)
		}
	}
}

func TestGet_UnknownProvider(t *testing.T) {
	_, err := Get("united")
	if !errors.Is(err, ErrUnknownProvider) {
		t.Fatalf("Get(united) error = %v, want ErrUnknownProvider", err)
	}
	if !strings.Contains(err.Error(), "united") {
		t.Fatalf("error %q does not name the requested id", err)
	}
}

func TestIDs_Ordered(t *testing.T) {
	ids := IDs()
	want := []string{"spirit", "american", "delta"}
	if len(ids) != len(want) {
		t.Fatalf("IDs() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("IDs()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestNext_CyclesThroughProviders(t *testing.T) {
	if p := Next("spirit"); p.ID != "american" {
		t.Fatalf("Next(spirit) = %q, want american", p.ID)
	}
	if p := Next("delta"); p.ID != "spirit" {
		t.Fatalf("Next(delta) = %q, want spirit (wrap around)", p.ID)
	}
	if p := Next("bogus"); p.ID != "spirit" {
		t.Fatalf("Next(bogus) = %q, want first provider", p.ID)
	}
}

func TestURLs_JoinsBaseAndPathsInOrder(t *testing.T) {
	p, err := Get("spirit")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	urls := p.URLs()
	if len(urls) != len(p.EndpointPaths) {
		t.Fatalf("URLs() length = %d, want %d", len(urls), len(p.EndpointPaths))
	}
	if urls[0] != "https://www.spiritwifi.com/api/flight/info" {
		t.Fatalf("URLs()[0] = %q", urls[0])
	}
}

// Every demo payload must extract to a fully populated record: demo data
// is the last fallback and may never render as an empty card.
func TestDemoPayloads_ExtractFully(t *testing.T) {
	for _, id := range IDs() {
		raw := payload.Raw(DemoPayload(id))
		st := payload.Extract(raw)
		if st.FlightNumber == nil {
			t.Fatalf("%s demo has no flight number", id)
		}
		if st.Origin == nil || st.Destination == nil {
			t.Fatalf("%s demo has no route", id)
		}
		if st.AltitudeDisplay == nil || st.SpeedDisplay == nil {
			t.Fatalf("%s demo has no altitude/speed", id)
		}
		if st.TimeRemainingDisplay == nil {
			t.Fatalf("%s demo has no time remaining", id)
		}
	}
}

func TestDemoPayload_UnknownFallsBackToSpirit(t *testing.T) {
	doc := DemoPayload("nope")
	if doc["flightNumber"] != "NK 123" {
		t.Fatalf("DemoPayload(nope) = %v, want spirit sample", doc["flightNumber"])
	}
}
