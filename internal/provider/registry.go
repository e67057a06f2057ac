// Package provider holds the static table of known inflight WiFi portals.
//
// Each airline exposes a slightly different portal API; the registry
// records where to look (base URL plus an ordered list of candidate
// endpoint paths) and how to present the airline (name, logo, colors).
// The table is fixed at compile time and never mutated.
package provider

import (
	"errors"
	"fmt"
)

// ErrUnknownProvider is returned by Get for ids not in the registry.
var ErrUnknownProvider = errors.New("unknown provider")

// Theme holds the two colors an airline brands its portal with.
type Theme struct {
	Primary   string
	Secondary string
}

// Provider describes one airline's portal configuration.
type Provider struct {
	ID            string
	Name          string
	Logo          string
	BaseURL       string
	EndpointPaths []string
	Theme         Theme
}

// URLs returns the full ordered candidate URL list for this provider.
func (p Provider) URLs() []string {
	urls := make([]string, len(p.EndpointPaths))
	for i, path := range p.EndpointPaths {
		urls[i] = p.BaseURL + path
	}
	return urls
}

// providers is ordered; IDs() preserves this order for the selection UI.
var providers = []Provider{
	{
		ID:      "spirit",
		Name:    "Spirit Airlines",
		Logo:    "✈ Spirit Airlines",
		BaseURL: "https://www.spiritwifi.com",
		EndpointPaths: []string{
			"/api/flight/info",
			"/api/flight/status",
			"/api/v1/flight",
			"/flight-info",
			"/status.json",
		},
		Theme: Theme{Primary: "#FFD100", Secondary: "#FFA500"},
	},
	{
		ID:      "american",
		Name:    "American Airlines",
		Logo:    "🦅 American Airlines",
		BaseURL: "https://www.aainflight.com",
		// Only the Intelsat system-status endpoint is confirmed to exist.
		EndpointPaths: []string{
			"/api/v1/connectivity/intelsat/system-status",
		},
		Theme: Theme{Primary: "#CC0000", Secondary: "#0033AA"},
	},
	{
		ID:      "delta",
		Name:    "Delta Air Lines",
		Logo:    "🔺 Delta Air Lines",
		BaseURL: "https://www.wifi.delta.com",
		EndpointPaths: []string{
			"/api/flight/info",
			"/api/flight/status",
			"/api/v1/flight",
			"/flight-details",
			"/flight-status.json",
		},
		Theme: Theme{Primary: "#003366", Secondary: "#CE1126"},
	},
}

// Get returns the provider for id.
func Get(id string) (Provider, error) {
	for _, p := range providers {
		if p.ID == id {
			return p, nil
		}
	}
	return Provider{}, fmt.Errorf("%w: %q", ErrUnknownProvider, id)
}

// IDs returns provider ids in display order.
func IDs() []string {
	ids := make([]string, len(providers))
	for i, p := range providers {
		ids[i] = p.ID
	}
	return ids
}

// Next returns the provider after id in display order, wrapping around.
// Unknown ids return the first provider.
func Next(id string) Provider {
	for i, p := range providers {
		if p.ID == id {
			return providers[(i+1)%len(providers)]
		}
	}
	return providers[0]
}
