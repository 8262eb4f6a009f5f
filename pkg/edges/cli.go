package edges

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
		Name:  "edges",
		Usage: "Network graph edges of the operator network",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "fetch and print all edges",
				Action: func(c *cli.Context) error {
					networkEdges, err := Fetch(context.Background(), ose.NewClient())
					if err != nil {
						return err
					}

					log.Info().Msgf("Fetched %d edges", len(networkEdges))

					encoder := json.NewEncoder(os.Stdout)
					encoder.SetIndent("", "  ")
					return encoder.Encode(networkEdges)
				},
			},
		},
	}
}
