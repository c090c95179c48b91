package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/kr/pretty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const IndexName = "atomo-line-events"

type DocumentIndexer interface {
	IndexDocument(ctx context.Context, indexName string, document interface{}) error
}

// BatchConsumer logs line events and, when an indexer is set, keeps them in Elasticsearch as an audit trail
type BatchConsumer struct {
	indexer DocumentIndexer
	timeout time.Duration
}

func NewBatchConsumer(indexer DocumentIndexer) *BatchConsumer {
	return &BatchConsumer{
		indexer: indexer,
		timeout: 10 * time.Second,
	}
}

// Consume acks every event it handled. Events that failed are rejected so they stay in the
// queue's rejected list instead of being dropped.
func (consumer *BatchConsumer) Consume(batch rmq.Deliveries) {
	for _, delivery := range batch {
		if err := consumer.handle(delivery.Payload()); err != nil {
			log.Error().Err(err).Msg("Failed to handle line event")

			if err := delivery.Reject(); err != nil {
				log.Error().Err(err).Msg("Failed to reject line event")
			}
			continue
		}

		if err := delivery.Ack(); err != nil {
			log.Error().Err(err).Msg("Failed to ack line event")
		}
	}
}

func (consumer *BatchConsumer) handle(payload string) error {
	var event Event
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return err
	}

	log.Info().
		Str("type", string(event.Type)).
		Str("line", event.LineIdentifier).
		Time("timestamp", event.Timestamp).
		Msg("Line event")

	if log.Logger.GetLevel() <= zerolog.DebugLevel {
		log.Debug().Msg(pretty.Sprint(event))
	}

	if consumer.indexer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), consumer.timeout)
	defer cancel()

	return consumer.indexer.IndexDocument(ctx, IndexName, event)
}
