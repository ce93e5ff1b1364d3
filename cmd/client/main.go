package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/hefin/internal/adapter"
	"github.com/MKhiriev/hefin/internal/client"
	"github.com/MKhiriev/hefin/internal/config"
	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewCLILogger("hefin-client", os.Getenv("HEFIN_DEBUG") != "")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	build := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	app := client.NewApp(serverAdapter, os.Stdout, build, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(os.Stderr, client.RenderError(err))
		}
		stop()
		os.Exit(1)
	}
}
