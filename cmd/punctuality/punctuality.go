package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/punctuality/pkg/api"
	"github.com/travigo/punctuality/pkg/presentation"
	"github.com/travigo/punctuality/pkg/report"
	"github.com/travigo/punctuality/pkg/util"
	"github.com/urfave/cli/v2"
)

func main() {
	_ = godotenv.Load()
	_ = godotenv.Overload(".env.local")

	if util.GetEnvironmentVariable("LOG_FORMAT", "") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if util.GetEnvironmentVariable("DEBUG", "") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "punctuality",
		Description: "Analyses tram punctuality observations: where along a line delays build up and how often trams run late",

		Commands: []*cli.Command{
			report.RegisterCLI(),
			presentation.RegisterCLI(),
			api.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
