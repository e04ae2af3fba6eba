package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
	"github.com/MKhiriev/go-wallet-keeper/internal/handler"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/metrics"
	"github.com/MKhiriev/go-wallet-keeper/internal/rpc"
	"github.com/MKhiriev/go-wallet-keeper/internal/server"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/session"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/internal/wallet"
	"github.com/MKhiriev/go-wallet-keeper/internal/workers"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// feeConfTarget is the confirmation target of fee estimates, in blocks.
const feeConfTarget = 6

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("wallet-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	resolver := rpc.NewResolver(cfg.Network.ForcedNodeURL, cfg.Network.Nodes)
	node := rpc.NewClient(cfg.Network, resolver, log)
	info, err := node.Connect(ctx, cfg.Network.ID)
	if err != nil {
		log.Fatal().Err(err).Str("network", cfg.Network.ID).Msg("error connecting to node")
	}
	log.Info().Str("chain", info.Chain).Int64("blocks", info.Blocks).Msg("connected to node")

	lib, err := wallet.NewLibrary(cfg.Network.ID, node, crypto.NewKeyChainService(), wallet.Options{
		FeeRate:      cfg.Network.FeeRate,
		ConfTarget:   feeConfTarget,
		SyncInterval: cfg.Workers.SyncInterval,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating wallet library")
	}

	registry := session.NewRegistry(session.Config{
		NetworkID:     cfg.Network.ID,
		ForcedNodeURL: cfg.Network.ForcedNodeURL,
		RPC:           node,
		Resolver:      resolver,
		Storage:       storages.WalletRepository,
	})
	m := metrics.New(registry.Len, buildInfo, lib.Network())

	services, err := service.NewServices(registry, service.NewWalletLibrary(lib), m, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m.Handler(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	jobs := workers.NewWorkers(registry, m, cfg.Workers, log)
	jobs.Start(ctx)

	runErr := srv.Run(ctx)

	jobs.Stop()
	for _, h := range registry.Drain() {
		if err = h.Close(); err != nil {
			log.Err(err).Str("identifier", h.Identifier()).Msg("error closing session")
		}
	}

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
