package stations

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/trainose/trainose/pkg/ose"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "stations",
		Usage: "Station directory of the operator network",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "fetch and print all stations",
				Action: func(c *cli.Context) error {
					directory, err := Fetch(context.Background(), ose.NewClient())
					if err != nil {
						return err
					}

					log.Info().Msgf("Fetched %d stations", len(directory.All()))

					encoder := json.NewEncoder(os.Stdout)
					encoder.SetIndent("", "  ")
					return encoder.Encode(directory.All())
				},
			},
		},
	}
}
