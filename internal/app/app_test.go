package app

import (
	"errors"
	"testing"

	"github.com/five82/inflight/internal/config"
	"github.com/five82/inflight/internal/prefs"
	"github.com/five82/inflight/internal/provider"
)

func TestSelectProvider_FlagWinsOverPrefsAndConfig(t *testing.T) {
	cfg := config.Config{Provider: "spirit"}
	saved := prefs.Prefs{Provider: "american"}

	prov, err := selectProvider(cfg, saved, "delta")
	if err != nil {
		t.Fatalf("selectProvider returned error: %v", err)
	}
	if prov.ID != "delta" {
		t.Fatalf("selectProvider = %q, want delta", prov.ID)
	}
}

func TestSelectProvider_SavedPreferenceWinsOverConfig(t *testing.T) {
	cfg := config.Config{Provider: "spirit"}
	saved := prefs.Prefs{Provider: "american"}

	prov, err := selectProvider(cfg, saved, "")
	if err != nil {
		t.Fatalf("selectProvider returned error: %v", err)
	}
	if prov.ID != "american" {
		t.Fatalf("selectProvider = %q, want american", prov.ID)
	}
}

// A hand-edited prefs.toml naming an airline this build does not know
// must not abort startup; the selection falls back to config.
func TestSelectProvider_UnknownSavedPreferenceFallsBack(t *testing.T) {
	cfg := config.Config{Provider: "spirit"}
	saved := prefs.Prefs{Provider: "jetblue"}

	prov, err := selectProvider(cfg, saved, "")
	if err != nil {
		t.Fatalf("selectProvider returned error: %v", err)
	}
	if prov.ID != "spirit" {
		t.Fatalf("selectProvider = %q, want config fallback spirit", prov.ID)
	}
}

// An unknown airline on the command line is an explicit request and
// stays fatal.
func TestSelectProvider_UnknownFlagFails(t *testing.T) {
	cfg := config.Config{Provider: "spirit"}

	_, err := selectProvider(cfg, prefs.Prefs{}, "jetblue")
	if !errors.Is(err, provider.ErrUnknownProvider) {
		t.Fatalf("selectProvider error = %v, want ErrUnknownProvider", err)
	}
}
