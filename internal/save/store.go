// Package save persists the day number, money, the standing service star
// and the room contents between sessions.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/appengine-ltd/short-order/internal/kitchen"
)

const formatVersion = 1

var ErrNoSave = errors.New("save: no saved game")

type Snapshot struct {
	Day               int             `json:"day"`
	Money             float64         `json:"money"`
	EarnedServiceStar bool            `json:"earned_service_star"`
	Rooms             []*kitchen.Room `json:"rooms"`
}

type savedGame struct {
	FormatVersion int       `json:"format_version"`
	SavedAt       time.Time `json:"saved_at"`
	Game          Snapshot  `json:"game"`
}

type Entry struct {
	Slot    int
	Path    string
	SavedAt time.Time
	Day     int
	Money   float64
}

type Store struct {
	Dir string
}

func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// DefaultDir is the per-user config directory for save files.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("save: config dir: %w", err)
	}
	return filepath.Join(base, "short-order"), nil
}

func (s *Store) PathForSlot(slot int) string {
	if slot < 1 {
		slot = 1
	}
	return filepath.Join(s.Dir, fmt.Sprintf("short-order-save-%d.json", slot))
}

// Encode serialises snap. Callers on the frame path encode synchronously
// and hand the bytes to Write off the frame.
func Encode(snap Snapshot, now time.Time) ([]byte, error) {
	payload := savedGame{FormatVersion: formatVersion, SavedAt: now.UTC(), Game: snap}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("save: encode: %w", err)
	}
	return data, nil
}

// Write stores encoded data in slot, replacing any previous save atomically.
func (s *Store) Write(slot int, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return fmt.Errorf("save: mkdir %s: %w", s.Dir, err)
	}
	path := s.PathForSlot(slot)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("save: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("save: rename %s: %w", path, err)
	}
	return nil
}

func (s *Store) Save(slot int, snap Snapshot) error {
	data, err := Encode(snap, time.Now())
	if err != nil {
		return err
	}
	return s.Write(slot, data)
}

func (s *Store) Load(slot int) (Snapshot, error) {
	payload, err := readSave(s.PathForSlot(slot))
	if err != nil {
		return Snapshot{}, err
	}
	return payload.Game, nil
}

func readSave(path string) (savedGame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return savedGame{}, ErrNoSave
		}
		return savedGame{}, fmt.Errorf("save: read %s: %w", path, err)
	}
	var payload savedGame
	if err := json.Unmarshal(data, &payload); err != nil {
		return savedGame{}, fmt.Errorf("save: decode %s: %w", path, err)
	}
	if payload.FormatVersion > formatVersion {
		return savedGame{}, fmt.Errorf("save: %s has format %d, newer than %d", path, payload.FormatVersion, formatVersion)
	}
	return payload, nil
}

// List returns every readable save, newest first.
func (s *Store) List() ([]Entry, error) {
	matches, err := filepath.Glob(filepath.Join(s.Dir, "short-order-save-*.json"))
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(matches))
	for _, path := range matches {
		payload, err := readSave(path)
		if err != nil {
			continue
		}
		var slot int
		name := strings.TrimSuffix(filepath.Base(path), ".json")
		if _, err := fmt.Sscanf(name, "short-order-save-%d", &slot); err != nil {
			continue
		}
		entries = append(entries, Entry{
			Slot:    slot,
			Path:    path,
			SavedAt: payload.SavedAt,
			Day:     payload.Game.Day,
			Money:   payload.Game.Money,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].SavedAt.After(entries[j].SavedAt)
	})
	return entries, nil
}
