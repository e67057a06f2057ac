// Package prefs persists small user choices between runs.
// Preferences are stored in ~/.config/inflight/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds the persisted user choices.
type Prefs struct {
	// Provider is the last airline the user selected.
	Provider string `toml:"provider"`
}

const defaultPrefsPath = "~/.config/inflight/prefs.toml"

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path. Every failure mode falls
// back to empty prefs; preferences are never worth failing startup over.
func Load(path string) Prefs {
	resolved, err := resolvePath(path)
	if err != nil {
		return Prefs{}
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		return Prefs{}
	}

	var p Prefs
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return Prefs{}
	}
	p.Provider = strings.TrimSpace(p.Provider)
	return p
}

// Save writes preferences to the given path, creating directories as
// needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	trimmed := strings.TrimSpace(path)
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
