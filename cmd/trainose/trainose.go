package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/trainose/trainose/pkg/api"
	"github.com/trainose/trainose/pkg/edges"
	"github.com/trainose/trainose/pkg/journeys"
	"github.com/trainose/trainose/pkg/stations"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("TRAINOSE_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("TRAINOSE_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "trainose",
		Description: "Client for the TrainOSE mobile-app API - normalises the operator network into FPTF",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			stations.RegisterCLI(),
			edges.RegisterCLI(),
			journeys.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
