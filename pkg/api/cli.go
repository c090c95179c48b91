package api

import (
	"context"

	"github.com/atomo10/atomo/pkg/config"
	"github.com/atomo10/atomo/pkg/database"
	"github.com/atomo10/atomo/pkg/events"
	"github.com/atomo10/atomo/pkg/lines"
	"github.com/atomo10/atomo/pkg/metrics"
	"github.com/atomo10/atomo/pkg/ocr"
	"github.com/atomo10/atomo/pkg/redis_client"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Provides the lines web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "listen target for the web server, overrides ATOMO_LISTEN and PORT",
					},
					&cli.BoolFlag{
						Name:  "memory",
						Usage: "keep lines in memory instead of MongoDB",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load()
					if err != nil {
						return err
					}

					collector := metrics.NewCollector()

					var store lines.DocumentStore
					var health func(ctx context.Context) *database.Health

					if c.Bool("memory") {
						log.Warn().Msg("Using in-memory line store, lines are lost on exit")
						store = database.NewMemoryLineStore()
						health = func(context.Context) *database.Health {
							return &database.Health{Connected: true, Database: "memory"}
						}
					} else {
						instance, err := database.Connect(c.Context, cfg)
						if err != nil {
							return err
						}
						defer instance.Disconnect(context.Background())

						store = database.NewLineStore(instance)
						health = instance.Health
					}

					var publisher events.Publisher = events.NoopPublisher{}
					if cfg.EventsEnabled() {
						redisConnection, err := redis_client.Connect(c.Context, cfg)
						if err != nil {
							return err
						}

						queuePublisher, err := events.NewQueuePublisher(redisConnection.Queue)
						if err != nil {
							return err
						}
						publisher = queuePublisher
					}

					parser, err := ocr.NewSampleParser()
					if err != nil {
						return err
					}

					listen := cfg.Listen
					if c.IsSet("listen") {
						listen = c.String("listen")
					}

					return SetupServer(listen, &Application{
						Lines:   lines.NewRepository(store, collector.ObservePublisher(publisher)),
						OCR:     parser,
						Metrics: collector,
						Health:  health,
					})
				},
			},
		},
	}
}
