package tracker

import (
	"context"
	"time"

	"team-inventory/core/events"
	"team-inventory/core/roster"
)

// ImportRoster replaces players and assignments from a parsed roster.
func (t *Tracker) ImportRoster(ctx context.Context, r roster.Roster) *roster.Report {
	t.mu.Lock()
	defer t.mu.Unlock()

	report := t.reconciler.Reconcile(r)

	t.persist(ctx)
	t.publish(ctx, events.Event{
		Type:       events.TypeRosterImported,
		OccurredAt: time.Now().UTC(),
		Players:    report.Summary.Players,
		Assigned:   report.Summary.Assigned,
		Issues:     report.Summary.Issues,
	})
	return report
}

// PreviewRoster computes what ImportRoster would do without changing anything.
func (t *Tracker) PreviewRoster(r roster.Roster) *roster.Report {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.reconciler.Preview(r)
}
