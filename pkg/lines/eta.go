package lines

import (
	"context"
	"fmt"

	"github.com/atomo10/atomo/pkg/ctdf"
	"github.com/atomo10/atomo/pkg/util"
)

// ComputeETA projects arrivals for the line as it is stored right now.
// now is an optional "HH:MM" placed on today's date, otherwise the current time is used.
func (r *Repository) ComputeETA(ctx context.Context, identifier string, fromStopIndex int, now string) ([]*ctdf.ETAEntry, error) {
	line, err := r.store.FindLine(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if len(line.Schedules) == 0 {
		return []*ctdf.ETAEntry{}, nil
	}

	reference := r.Now()
	if now != "" {
		hour, minute, err := util.ParseClock(now)
		if err != nil {
			return nil, fmt.Errorf("%w: now: %s", ctdf.ErrValidation, err)
		}

		reference = util.ClockOnDate(reference, hour, minute)
	}

	return ctdf.ProjectETA(line.Stops, line.Schedules, fromStopIndex, reference)
}
