package lines

import (
	"context"
	"fmt"

	"github.com/atomo10/atomo/pkg/ctdf"
	"github.com/atomo10/atomo/pkg/events"
	"golang.org/x/exp/slices"
)

// AppendStop adds stop to the end of the line's route
func (r *Repository) AppendStop(ctx context.Context, identifier string, stop *ctdf.Stop) error {
	if err := r.validateStruct(stop); err != nil {
		return err
	}

	if err := r.writeUnconditionally(ctx, identifier, &ctdf.LineUpdate{PushStop: stop}); err != nil {
		return err
	}

	r.publish(ctx, events.EventTypeStopAppended, identifier, map[string]interface{}{
		"name": stop.Name,
	})

	return nil
}

// PatchStopAt overwrites the fields present in patch on the stop currently at index
func (r *Repository) PatchStopAt(ctx context.Context, identifier string, index int, patch *ctdf.StopPatch) error {
	if err := r.validateStruct(patch); err != nil {
		return err
	}

	err := r.rewriteStops(ctx, identifier, func(stops []*ctdf.Stop) ([]*ctdf.Stop, error) {
		if err := checkStopIndex(stops, index); err != nil {
			return nil, err
		}

		stops[index].ApplyPatch(patch)

		return stops, nil
	})
	if err != nil {
		return err
	}

	r.publish(ctx, events.EventTypeStopPatched, identifier, map[string]interface{}{
		"index": index,
	})

	return nil
}

// DeleteStopAt removes the stop at index. Every later stop moves down one position.
func (r *Repository) DeleteStopAt(ctx context.Context, identifier string, index int) error {
	var removed string

	err := r.rewriteStops(ctx, identifier, func(stops []*ctdf.Stop) ([]*ctdf.Stop, error) {
		if err := checkStopIndex(stops, index); err != nil {
			return nil, err
		}

		removed = stops[index].Name

		return slices.Delete(stops, index, index+1), nil
	})
	if err != nil {
		return err
	}

	r.publish(ctx, events.EventTypeStopDeleted, identifier, map[string]interface{}{
		"index": index,
		"name":  removed,
	})

	return nil
}

func checkStopIndex(stops []*ctdf.Stop, index int) error {
	if index < 0 || index >= len(stops) {
		return fmt.Errorf("%w: %d not in [0, %d)", ctdf.ErrInvalidIndex, index, len(stops))
	}

	return nil
}
