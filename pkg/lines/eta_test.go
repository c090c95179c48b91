package lines

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atomo10/atomo/pkg/ctdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arrivalsByStop(etas []*ctdf.ETAEntry) map[string][]string {
	result := map[string][]string{}
	for _, eta := range etas {
		result[eta.Stop] = eta.Arrivals
	}
	return result
}

func TestComputeETA(t *testing.T) {
	ctx := context.Background()
	repository, _ := newTestRepository(t)
	identifier := createLine(t, repository,
		&ctdf.Stop{Name: "A"},
		&ctdf.Stop{Name: "B", TravelMinutesFromPrevious: 5},
		&ctdf.Stop{Name: "C", TravelMinutesFromPrevious: 4},
	)
	require.NoError(t, repository.ReplaceSchedules(ctx, identifier, []string{"07:30", "08:00"}))

	etas, err := repository.ComputeETA(ctx, identifier, 0, "")
	require.NoError(t, err)
	require.Len(t, etas, 3)
	assert.Equal(t, map[string][]string{
		"A": {"07:30", "08:00"},
		"B": {"07:35", "08:05"},
		"C": {"07:39", "08:09"},
	}, arrivalsByStop(etas))

	etas, err = repository.ComputeETA(ctx, identifier, 1, "12:00")
	require.NoError(t, err)
	require.Len(t, etas, 2)
	assert.Equal(t, "B", etas[0].Stop)

	etas, err = repository.ComputeETA(ctx, identifier, 3, "")
	require.NoError(t, err)
	assert.Len(t, etas, 3)
}

func TestComputeETARecomputesAfterEdits(t *testing.T) {
	ctx := context.Background()
	repository, _ := newTestRepository(t)
	identifier := createLine(t, repository, &ctdf.Stop{Name: "A"}, &ctdf.Stop{Name: "B", TravelMinutesFromPrevious: 5})
	require.NoError(t, repository.ReplaceSchedules(ctx, identifier, []string{"10:00"}))

	minutes := 12
	require.NoError(t, repository.PatchStopAt(ctx, identifier, 1, &ctdf.StopPatch{TravelMinutesFromPrevious: &minutes}))

	etas, err := repository.ComputeETA(ctx, identifier, 0, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:12"}, etas[1].Arrivals)
}

func TestComputeETAEmptySchedules(t *testing.T) {
	ctx := context.Background()
	repository, _ := newTestRepository(t)
	identifier := createLine(t, repository, &ctdf.Stop{Name: "A"}, &ctdf.Stop{Name: "B", TravelMinutesFromPrevious: 5})

	etas, err := repository.ComputeETA(ctx, identifier, 0, "not-a-time")
	require.NoError(t, err)
	assert.NotNil(t, etas)
	assert.Empty(t, etas)
}

func TestComputeETAReferenceDate(t *testing.T) {
	ctx := context.Background()
	repository, _ := newTestRepository(t)
	repository.Now = func() time.Time { return time.Date(2024, 5, 20, 23, 59, 0, 0, time.Local) }
	identifier := createLine(t, repository, &ctdf.Stop{Name: "A"}, &ctdf.Stop{Name: "B", TravelMinutesFromPrevious: 30})
	require.NoError(t, repository.ReplaceSchedules(ctx, identifier, []string{"23:45"}))

	etas, err := repository.ComputeETA(ctx, identifier, 0, "01:00")
	require.NoError(t, err)
	assert.Equal(t, []string{"00:15"}, etas[1].Arrivals)
}

func TestComputeETAErrors(t *testing.T) {
	ctx := context.Background()
	repository, _ := newTestRepository(t)
	identifier := createLine(t, repository, &ctdf.Stop{Name: "A"})
	require.NoError(t, repository.ReplaceSchedules(ctx, identifier, []string{"07:30"}))

	_, err := repository.ComputeETA(ctx, missingLine, 0, "")
	assert.True(t, errors.Is(err, ctdf.ErrNotFound))

	_, err = repository.ComputeETA(ctx, identifier, 0, "25:00")
	assert.True(t, errors.Is(err, ctdf.ErrValidation))

	require.NoError(t, repository.ReplaceSchedules(ctx, identifier, []string{"07:30", "half past"}))
	_, err = repository.ComputeETA(ctx, identifier, 0, "")
	assert.True(t, errors.Is(err, ctdf.ErrValidation))
}
