package sync

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pfrederiksen/ihcc-events/internal/importer"
	"github.com/pfrederiksen/ihcc-events/internal/scraper"
	"github.com/pfrederiksen/ihcc-events/internal/storage"
)

const eventsPage = `<html><body>
<div class="event-item"><h3>Summer Golf Scramble</h3><p>Tee off 7/12/2025 1:00 PM. $75 per player.</p></div>
<div class="event-item"><h3>Wine Dinner</h3><p>Join us 7/18/2025 at 6:30 PM.</p></div>
</body></html>`

func newTestSyncer(t *testing.T, url string, retries uint64) *Syncer {
	t.Helper()

	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}

	parser := importer.NewParser(nil, nil, rand.New(rand.NewSource(1)))
	sc := scraper.New(parser, rand.New(rand.NewSource(1)))
	sc.SetURL(url)

	return New(sc, store, retries)
}

func TestRunOnceMergesNewEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(eventsPage))
	}))
	defer server.Close()

	s := newTestSyncer(t, server.URL, 0)

	added, err := s.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce() error = %v", err)
	}
	if added != 2 {
		t.Errorf("first run added = %d, want 2", added)
	}

	// Same page again: everything is a duplicate.
	added, err = s.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("second RunOnce() error = %v", err)
	}
	if added != 0 {
		t.Errorf("second run added = %d, want 0", added)
	}
}

func TestRunOnceRetriesThenSucceeds(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "maintenance", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(eventsPage))
	}))
	defer server.Close()

	s := newTestSyncer(t, server.URL, 2)

	added, err := s.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce() error = %v", err)
	}
	if added != 2 {
		t.Errorf("added = %d, want 2", added)
	}
	if calls < 2 {
		t.Errorf("server calls = %d, want at least 2 (retry)", calls)
	}
}

func TestRunOnceUnreachableSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	s := newTestSyncer(t, server.URL, 1)

	if _, err := s.RunOnce(context.Background()); !errors.Is(err, ErrSourceUnreachable) {
		t.Errorf("RunOnce() error = %v, want ErrSourceUnreachable", err)
	}
}

func TestScheduleValidatesSpec(t *testing.T) {
	s := newTestSyncer(t, "http://127.0.0.1:0", 0)

	c, err := s.Schedule("@hourly")
	if err != nil {
		t.Fatalf("Schedule(@hourly) error = %v", err)
	}
	c.Stop()

	if _, err := s.Schedule("not a cron spec"); err == nil {
		t.Error("Schedule() accepted an invalid spec")
	}
}
