package journeys

import (
	"context"
	"time"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/trainose/trainose/pkg/ose"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "journeys",
		Usage: "Journey search between two stations",
		Subcommands: []*cli.Command{
			{
				Name:      "query",
				Usage:     "search journeys between an origin and destination station id",
				ArgsUsage: "<origin> <destination>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "datetime",
						Usage: "RFC3339 reference instant, defaults to now",
					},
					&cli.IntFlag{
						Name:  "results",
						Usage: "maximum number of journeys",
					},
					&cli.IntFlag{
						Name:  "transfers",
						Value: -1,
						Usage: "maximum number of transfers",
					},
					&cli.IntFlag{
						Name:  "interval",
						Value: -1,
						Usage: "search window in minutes forward from the reference instant",
					},
				},
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 2 {
						return cli.Exit("expected exactly an origin and a destination station id", 1)
					}

					opts := &Options{
						Results: c.Int("results"),
					}
					if datetime := c.String("datetime"); datetime != "" {
						when, err := time.Parse(time.RFC3339, datetime)
						if err != nil {
							return err
						}
						opts.When = &when
					}
					if transfers := c.Int("transfers"); transfers >= 0 {
						opts.Transfers = &transfers
					}
					if interval := c.Int("interval"); interval >= 0 {
						opts.Interval = &interval
					}

					planner, err := NewPlanner(context.Background(), ose.NewClient())
					if err != nil {
						return err
					}

					found, err := planner.FindJourneys(context.Background(), c.Args().Get(0), c.Args().Get(1), opts)
					if err != nil {
						return err
					}

					log.Info().Msgf("Found %d journeys", len(found))

					for _, journey := range found {
						pretty.Println(journey)
					}

					return nil
				},
			},
		},
	}
}
