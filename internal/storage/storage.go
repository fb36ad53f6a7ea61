package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pfrederiksen/ihcc-events/internal/event"
)

// DefaultDataDir is where snapshots live unless overridden.
const DefaultDataDir = "~/.local/share/ihcc-events"

const snapshotFile = "events.json"

// Snapshot is the persisted set of known events, keyed by Event.Key().
type Snapshot struct {
	Events    map[string]*event.Event `json:"events"`
	UpdatedAt string                  `json:"updated_at"`
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{Events: make(map[string]*event.Event)}
}

// Sorted returns the snapshot's events ordered by date, then time, then
// title, for stable display.
func (s *Snapshot) Sorted() []*event.Event {
	events := make([]*event.Event, 0, len(s.Events))
	for _, evt := range s.Events {
		events = append(events, evt)
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		if events[i].Time != events[j].Time {
			return events[i].Time < events[j].Time
		}
		return events[i].Title < events[j].Title
	})
	return events
}

// Storage handles snapshot persistence under a data directory.
type Storage struct {
	dataDir string
}

// New creates a Storage, expanding a leading ~ and creating the data
// directory if needed.
func New(dataDir string) (*Storage, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{dataDir: dataDir}, nil
}

func (s *Storage) snapshotPath() string {
	return filepath.Join(s.dataDir, snapshotFile)
}

// Load reads the snapshot from disk. A missing file yields an empty
// snapshot, not an error.
func (s *Storage) Load() (*Snapshot, error) {
	data, err := os.ReadFile(s.snapshotPath())
	if err != nil {
		if os.IsNotExist(err) {
			return NewSnapshot(), nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if snapshot.Events == nil {
		snapshot.Events = make(map[string]*event.Event)
	}

	return &snapshot, nil
}

// Save writes the snapshot to disk, stamping UpdatedAt.
func (s *Storage) Save(snapshot *Snapshot) error {
	snapshot.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(s.snapshotPath(), data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Merge loads the snapshot, adds events not already present (matched by
// title+date key), saves, and reports how many were new. Existing entries
// win: a re-scrape with different default pricing does not churn the
// snapshot.
func (s *Storage) Merge(events []*event.Event) (added int, err error) {
	snapshot, err := s.Load()
	if err != nil {
		return 0, err
	}

	for _, evt := range events {
		key := evt.Key()
		if _, exists := snapshot.Events[key]; exists {
			continue
		}
		snapshot.Events[key] = evt
		added++
	}

	if err := s.Save(snapshot); err != nil {
		return 0, err
	}
	return added, nil
}
