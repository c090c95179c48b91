package lines

import (
	"context"
	"errors"
	"testing"

	"github.com/atomo10/atomo/pkg/ctdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceSchedules(t *testing.T) {
	ctx := context.Background()
	repository, _ := newTestRepository(t)
	identifier := createLine(t, repository)

	require.NoError(t, repository.ReplaceSchedules(ctx, identifier, []string{"08:00", "07:30", "08:00"}))

	line, err := repository.GetLine(ctx, identifier)
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "07:30", "08:00"}, line.Schedules)

	require.NoError(t, repository.ReplaceSchedules(ctx, identifier, nil))

	line, err = repository.GetLine(ctx, identifier)
	require.NoError(t, err)
	assert.NotNil(t, line.Schedules)
	assert.Empty(t, line.Schedules)
}

func TestReplaceSchedulesStoresUnvalidatedEntries(t *testing.T) {
	ctx := context.Background()
	repository, _ := newTestRepository(t)
	identifier := createLine(t, repository)

	require.NoError(t, repository.ReplaceSchedules(ctx, identifier, []string{"soon"}))

	line, err := repository.GetLine(ctx, identifier)
	require.NoError(t, err)
	assert.Equal(t, []string{"soon"}, line.Schedules)
}

func TestReplaceSchedulesMissingLine(t *testing.T) {
	ctx := context.Background()
	repository, publisher := newTestRepository(t)

	err := repository.ReplaceSchedules(ctx, missingLine, []string{"07:30"})
	assert.True(t, errors.Is(err, ctdf.ErrNotFound))

	err = repository.ReplaceSchedules(ctx, "bogus", []string{"07:30"})
	assert.True(t, errors.Is(err, ctdf.ErrMalformedIdentifier))

	assert.Empty(t, publisher.types())
}
