package main

import (
	"context"
	"log"
	"os"

	"github.com/avendano-dev/backoffice/internal/buildinfo"
	"github.com/avendano-dev/backoffice/internal/client/cli"
	"github.com/avendano-dev/backoffice/internal/client/config"
	"github.com/avendano-dev/backoffice/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewZerologLogger(logging.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
