package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/atomo10/atomo/pkg/events"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type countingPublisher struct {
	count int
}

func (p *countingPublisher) Publish(context.Context, *events.Event) {
	p.count++
}

func TestObservePublisher(t *testing.T) {
	collector := NewCollector()
	inner := &countingPublisher{}
	publisher := collector.ObservePublisher(inner)

	publisher.Publish(context.Background(), &events.Event{Type: events.EventTypeStopAppended, Timestamp: time.Now()})
	publisher.Publish(context.Background(), &events.Event{Type: events.EventTypeStopAppended, Timestamp: time.Now()})
	publisher.Publish(context.Background(), &events.Event{Type: events.EventTypeLineCreated, Timestamp: time.Now()})

	assert.Equal(t, 3, inner.count)
	assert.Equal(t, float64(2), testutil.ToFloat64(collector.LineEventsPublished.WithLabelValues(string(events.EventTypeStopAppended))))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.LineEventsPublished.WithLabelValues(string(events.EventTypeLineCreated))))
}

func TestCollectorsAreIndependent(t *testing.T) {
	first := NewCollector()
	second := NewCollector()

	first.ETAProjections.WithLabelValues("ok").Inc()

	assert.Equal(t, float64(1), testutil.ToFloat64(first.ETAProjections.WithLabelValues("ok")))
	assert.Equal(t, float64(0), testutil.ToFloat64(second.ETAProjections.WithLabelValues("ok")))
}
