package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/session-wallet/internal/client"
	"github.com/MKhiriev/session-wallet/internal/config"
	"github.com/MKhiriev/session-wallet/internal/crypto"
	"github.com/MKhiriev/session-wallet/internal/logger"
	"github.com/MKhiriev/session-wallet/internal/service"
	"github.com/MKhiriev/session-wallet/internal/store"
	"github.com/MKhiriev/session-wallet/internal/tui"
	"github.com/MKhiriev/session-wallet/internal/vault"
	"github.com/MKhiriev/session-wallet/internal/wallet"
	"github.com/MKhiriev/session-wallet/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("session-wallet", "").Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.NewClientLogger("session-wallet", cfg.LogDir)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessionStore, err := store.NewSessionStore(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session store")
	}

	cipher := crypto.NewSecretCipher(crypto.Params{
		Time:      cfg.Crypto.ArgonTime,
		MemoryKiB: cfg.Crypto.ArgonMemoryKiB,
		Threads:   cfg.Crypto.ArgonThreads,
	})
	v := vault.New(sessionStore, cipher, cfg.Vault.Prefix, log)

	provider := wallet.NewProvider(wallet.ScryptParams{N: cfg.Crypto.ScryptN, P: cfg.Crypto.ScryptP})

	bridge := tui.NewBridge()
	services := service.NewClientServices(v, provider, service.Collaborators{
		Prompter:  bridge,
		Confirmer: bridge,
		Navigator: bridge,
	}, log)

	ui, err := tui.New(services, v, bridge, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, sessionStore, cfg.Session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() models.AppBuildInfo {
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

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
