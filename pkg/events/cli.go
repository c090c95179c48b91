package events

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atomo10/atomo/pkg/config"
	"github.com/atomo10/atomo/pkg/consumer"
	"github.com/atomo10/atomo/pkg/elastic_client"
	"github.com/atomo10/atomo/pkg/redis_client"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "events",
		Usage: "Consumes line change events",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run events consumers",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "stats-listen",
						Value: ":3333",
						Usage: "listen target for the queue stats server",
					},
					&cli.IntFlag{
						Name:  "consumers",
						Value: 5,
						Usage: "number of queue consumers",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load()
					if err != nil {
						return err
					}
					if !cfg.EventsEnabled() {
						return errors.New("ATOMO_REDIS_ADDRESS must be set to consume events")
					}

					redisConnection, err := redis_client.Connect(c.Context, cfg)
					if err != nil {
						return err
					}

					batchConsumer := NewBatchConsumer(nil)
					elasticClient, err := elastic_client.Connect(cfg)
					if err != nil {
						return err
					}
					if elasticClient != nil {
						batchConsumer = NewBatchConsumer(elasticClient)
					}

					redisConsumer := consumer.RedisConsumer{
						Connection:      redisConnection.Queue,
						QueueName:       QueueName,
						NumberConsumers: c.Int("consumers"),
						BatchSize:       20,
						Timeout:         2 * time.Second,
						Consumer:        batchConsumer,
					}
					if err := redisConsumer.Start(); err != nil {
						return err
					}

					statsServer := consumer.NewStatsServer(c.String("stats-listen"), QueueName, redisConnection.Queue, redisConnection.Client)
					go func() {
						if err := statsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
							log.Error().Err(err).Msg("Stats server failed")
						}
					}()

					signals := make(chan os.Signal, 1)
					signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
					defer signal.Stop(signals)

					<-signals // wait for signal
					go func() {
						<-signals // hard exit on second signal (in case shutdown gets stuck)
						os.Exit(1)
					}()

					shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
					defer cancel()
					_ = statsServer.Shutdown(shutdownCtx)

					<-redisConnection.Queue.StopAllConsuming() // wait for all Consume() calls to finish

					return nil
				},
			},
			{
				Name:  "test-event",
				Usage: "publish a test event",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "line",
						Usage:    "line identifier to put on the event",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load()
					if err != nil {
						return err
					}

					redisConnection, err := redis_client.Connect(c.Context, cfg)
					if err != nil {
						return err
					}

					publisher, err := NewQueuePublisher(redisConnection.Queue)
					if err != nil {
						return err
					}

					publisher.Publish(c.Context, &Event{
						Type:           EventTypeSchedulesReplaced,
						LineIdentifier: c.String("line"),
						Timestamp:      time.Now(),
						Detail:         map[string]interface{}{"test": true},
					})

					return nil
				},
			},
		},
	}
}
