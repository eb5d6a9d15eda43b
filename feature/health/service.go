package health

import (
	"context"
	"errors"
	"fmt"

	"team-inventory/core/snapshot"
	"team-inventory/core/tracker"

	"go.uber.org/zap"
)

// Service runs health checks against the tracker.
type Service struct {
	tracker *tracker.Tracker
	logger  *zap.Logger
}

// NewService creates a new health service.
func NewService(t *tracker.Tracker, logger *zap.Logger) *Service {
	return &Service{tracker: t, logger: logger}
}

// CheckSnapshots returns the snapshot keys that are not present in the backend.
func (s *Service) CheckSnapshots(ctx context.Context) ([]string, error) {
	var missing []string
	store := s.tracker.Snapshots()

	for _, key := range snapshot.Keys {
		_, err := store.Load(ctx, key)
		switch {
		case errors.Is(err, snapshot.ErrNotExist):
			missing = append(missing, key)
		case err != nil:
			return nil, fmt.Errorf("failed to check snapshot %s: %w", key, err)
		}
	}
	return missing, nil
}

// FixSnapshots writes the current state, then checks again.
func (s *Service) FixSnapshots(ctx context.Context, missing []string) error {
	s.logger.Info("Writing missing snapshots", zap.Strings("missing", missing))
	s.tracker.Flush(ctx)

	still, err := s.CheckSnapshots(ctx)
	if err != nil {
		return err
	}
	if len(still) > 0 {
		return fmt.Errorf("snapshots still missing after write: %v", still)
	}
	return nil
}

// Counts returns the current collection sizes.
func (s *Service) Counts() tracker.Counts {
	return s.tracker.Counts()
}

// Backend names the snapshot backend.
func (s *Service) Backend() string {
	return s.tracker.Backend()
}
