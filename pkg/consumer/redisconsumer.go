package consumer

import (
	"fmt"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

type RedisConsumer struct {
	Connection rmq.Connection
	QueueName  string

	NumberConsumers int
	BatchSize       int

	Timeout time.Duration

	Consumer rmq.BatchConsumer
}

func (c *RedisConsumer) Start() error {
	log.Info().Str("queue", c.QueueName).Msg("Starting consumers")

	queue, err := c.Connection.OpenQueue(c.QueueName)
	if err != nil {
		return err
	}
	if err := queue.StartConsuming(int64(c.NumberConsumers*c.BatchSize), 1*time.Second); err != nil {
		return err
	}

	consumers := pool.New().WithErrors()
	for i := 0; i < c.NumberConsumers; i++ {
		id := i
		consumers.Go(func() error {
			return c.startQueueConsumer(queue, id)
		})
	}

	return consumers.Wait()
}

func (c *RedisConsumer) startQueueConsumer(queue rmq.Queue, id int) error {
	log.Info().Msgf("Starting %s consumer %d", c.QueueName, id)

	_, err := queue.AddBatchConsumer(fmt.Sprintf("%s-%d", c.QueueName, id), int64(c.BatchSize), c.Timeout, c.Consumer)

	return err
}
