package lines

import (
	"context"

	"github.com/atomo10/atomo/pkg/ctdf"
	"github.com/atomo10/atomo/pkg/events"
)

// ReplaceSchedules swaps the whole departure list. Entries are stored as given, unsorted and possibly repeated.
func (r *Repository) ReplaceSchedules(ctx context.Context, identifier string, schedules []string) error {
	if schedules == nil {
		schedules = []string{}
	}

	if err := r.writeUnconditionally(ctx, identifier, &ctdf.LineUpdate{Schedules: &schedules}); err != nil {
		return err
	}

	r.publish(ctx, events.EventTypeSchedulesReplaced, identifier, map[string]interface{}{
		"count": len(schedules),
	})

	return nil
}
