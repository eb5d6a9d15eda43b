package cmd

import (
	"context"
	"errors"
	"fmt"

	"team-inventory/core/config"
	"team-inventory/core/events"
	"team-inventory/core/snapshot"
	"team-inventory/core/tracker"

	"go.uber.org/zap"
)

// bootstrap opens the snapshot backend and the event publisher and returns a
// tracker restored from the last snapshot. The cleanup function closes both.
func bootstrap(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*tracker.Tracker, func(), error) {
	if !cfg.Persistence.IsValidBackend() {
		return nil, nil, fmt.Errorf("invalid persistence backend %q", cfg.Persistence.Backend)
	}

	locale, err := cfg.Roster.Tag()
	if err != nil {
		return nil, nil, err
	}

	store, closeStore, err := snapshot.Open(ctx, cfg.Persistence, cfg.Sources())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s snapshot backend: %w", cfg.Persistence.Backend, err)
	}

	publisher, err := events.New(cfg.Events, logg.Named("events"))
	if err != nil {
		// The service stays usable without downstream consumers.
		logg.Warn("Event publisher unavailable, events disabled", zap.Error(err))
		publisher = events.NopPublisher{}
	}

	tr := tracker.New(tracker.Options{
		Locale:    locale,
		Snapshots: store,
		Publisher: publisher,
		Logger:    logg,
	})
	tr.Load(ctx)

	cleanup := func() {
		if err := errors.Join(publisher.Close(), closeStore()); err != nil {
			logg.Warn("Shutdown cleanup failed", zap.Error(err))
		}
	}
	return tr, cleanup, nil
}
