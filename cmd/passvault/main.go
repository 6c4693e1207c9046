package main

import (
	"fmt"

	"github.com/mirovsky/passvault/internal/adapter"
	"github.com/mirovsky/passvault/internal/client"
	"github.com/mirovsky/passvault/internal/config"
	"github.com/mirovsky/passvault/internal/keyring"
	"github.com/mirovsky/passvault/internal/logger"
	"github.com/mirovsky/passvault/internal/service"
	"github.com/mirovsky/passvault/internal/session"
	"github.com/mirovsky/passvault/internal/store"
	"github.com/mirovsky/passvault/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("passvault-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.BaseURL,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	localStorage, err := store.NewLocalStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	ring := keyring.New()
	sessions := session.NewManager(cfg.App.SessionIdle)
	// Whatever ends the session, the keys go with it.
	sessions.Subscribe(ring.Invalidate)

	services := service.NewClientServices(localStorage, serverAdapter, ring, sessions, cfg.App.KDF)

	workers.NewClientWorkers(cfg.Workers, sessions, log).Run()

	app, err := client.NewApp(services, sessions, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
