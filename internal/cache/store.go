// Package cache persists the last successful portal payload so the app can
// show something useful when every endpoint is unreachable.
//
// There is exactly one slot, not one per provider: selecting a different
// airline makes an old entry unusable but does not evict it. Freshness is
// the caller's concern; the store only answers "what was captured, when,
// for whom". Read and write failures degrade to cache-miss, never to a
// fatal error.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/five82/inflight/internal/payload"
)

const defaultCachePath = "~/.cache/inflight/flightdata.json"

// Entry is the persisted slot contents.
type Entry struct {
	Provider   string      `json:"provider"`
	Payload    payload.Raw `json:"payload"`
	CapturedAt time.Time   `json:"captured_at"`
}

// FreshAt reports whether the entry was captured within ttl of now.
func (e Entry) FreshAt(now time.Time, ttl time.Duration) bool {
	return !e.CapturedAt.IsZero() && now.Sub(e.CapturedAt) < ttl
}

// Store reads and writes the single cache slot.
type Store struct {
	path string
}

// DefaultPath returns the default cache file location.
func DefaultPath() string {
	return defaultCachePath
}

// NewStore builds a Store for the given path; empty uses the default.
func NewStore(path string) (*Store, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: resolved}, nil
}

// Put overwrites the slot with a payload captured now for providerID.
func (s *Store) Put(providerID string, doc payload.Raw) error {
	return s.PutAt(providerID, doc, time.Now())
}

// PutAt is Put with an explicit capture time.
func (s *Store) PutAt(providerID string, doc payload.Raw, capturedAt time.Time) error {
	entry := Entry{Provider: providerID, Payload: doc, CapturedAt: capturedAt}
	bytes, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	if err := os.WriteFile(s.path, bytes, 0o644); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	return nil
}

// Get returns the slot contents when they belong to providerID. A slot
// written for a different provider, a missing file, or a corrupt file all
// read as absent.
func (s *Store) Get(providerID string) (Entry, bool) {
	bytes, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("[cache] read failed, treating as miss: %v", err)
		}
		return Entry{}, false
	}
	var entry Entry
	if err := json.Unmarshal(bytes, &entry); err != nil {
		return Entry{}, false
	}
	if entry.Provider != providerID || entry.Payload == nil {
		return Entry{}, false
	}
	return entry, true
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = defaultCachePath
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
