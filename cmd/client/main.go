package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-wallet-keeper/internal/adapter"
	"github.com/MKhiriev/go-wallet-keeper/internal/client"
	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
)

func main() {
	log := logger.NewClientLogger("wallet-client", os.Getenv("CLIENT_LOG_FILE"))

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	newAdapter := func(c config.ClientAdapter) (adapter.ServerAdapter, error) {
		return adapter.NewServerAdapter(c, log)
	}

	app := client.NewApp(cfg, newAdapter, os.Stdin, os.Stdout, log)
	if err = app.Run(context.Background(), os.Args[1:]); err != nil {
		log.Err(err).Msg("command failed")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
