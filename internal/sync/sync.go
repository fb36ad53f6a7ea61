// Package sync runs the scrape pipeline on a schedule and lands results in
// the snapshot store. Retry policy lives here, not in the pipeline: a sync
// run retries a failed fetch with exponential backoff, while the pipeline
// itself stays single-shot.
package sync

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/robfig/cron/v3"

	"github.com/pfrederiksen/ihcc-events/internal/logger"
	"github.com/pfrederiksen/ihcc-events/internal/scraper"
	"github.com/pfrederiksen/ihcc-events/internal/storage"
)

// ErrSourceUnreachable is returned when every attempt of a sync run came
// back with fallback events instead of real ones.
var ErrSourceUnreachable = errors.New("events source unreachable")

// Syncer couples the scraper to the snapshot store.
type Syncer struct {
	scraper *scraper.Scraper
	store   *storage.Storage
	retries uint64
}

// New creates a Syncer. retries is the number of additional scrape attempts
// after the first before a run gives up.
func New(sc *scraper.Scraper, store *storage.Storage, retries uint64) *Syncer {
	return &Syncer{scraper: sc, store: store, retries: retries}
}

// RunOnce scrapes the events page and merges real results into the
// snapshot, returning how many events were new. Fallback placeholder events
// are never persisted: they exist for display, and writing them to the
// snapshot would shadow the real events of a later successful run. If all
// attempts degrade to fallback, RunOnce returns ErrSourceUnreachable.
func (s *Syncer) RunOnce(ctx context.Context) (added int, err error) {
	var batchAdded int
	op := func() error {
		batch, usedFallback := s.scraper.Scrape(ctx)
		if usedFallback {
			return ErrSourceUnreachable
		}

		n, err := s.store.Merge(batch.Events)
		if err != nil {
			return backoff.Permanent(err)
		}
		batchAdded = n
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), s.retries), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return 0, err
	}

	logger.Info("sync run complete", logger.Fields{"added": batchAdded})
	return batchAdded, nil
}

// Schedule starts a cron scheduler running RunOnce on the given cron
// expression (standard five-field syntax, plus descriptors like @hourly).
// The returned cron is already started; stop it to shut down.
func (s *Syncer) Schedule(spec string) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		if _, err := s.RunOnce(ctx); err != nil {
			logger.Error("scheduled sync failed", logger.Fields{"schedule": spec}, err)
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	logger.Info("sync scheduled", logger.Fields{"schedule": spec})
	return c, nil
}
