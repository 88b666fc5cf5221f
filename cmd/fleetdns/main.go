package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jroosing/fleetdns/internal/api"
	"github.com/jroosing/fleetdns/internal/api/handlers"
	"github.com/jroosing/fleetdns/internal/config"
	"github.com/jroosing/fleetdns/internal/declaration"
	"github.com/jroosing/fleetdns/internal/logging"
	"github.com/jroosing/fleetdns/internal/provider"
	"github.com/jroosing/fleetdns/internal/store"

	_ "github.com/jroosing/fleetdns/internal/provider/hetzner"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML configuration file (or set FLEETDNS_CONFIG)")
		host       = flag.String("host", "", "Override API bind host")
		port       = flag.Int("port", 0, "Override API bind port")
		jsonLogs   = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(config.ResolveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *host != "" {
		cfg.API.Host = *host
	}
	if *port != 0 {
		cfg.API.Port = *port
	}
	if *jsonLogs {
		cfg.Logging.Structured = true
		cfg.Logging.Format = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}

	logger := logging.Configure(logging.Config{
		Level:       cfg.Logging.Level,
		Structured:  cfg.Logging.Structured,
		Format:      cfg.Logging.Format,
		IncludePID:  cfg.Logging.IncludePID,
		ExtraFields: cfg.Logging.ExtraFields,
	})
	logger.Info("FleetDNS starting",
		"provider", cfg.Provider.Name,
		"store", cfg.Store.Path,
		"api", cfg.API.Enabled,
	)

	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		logger.Error("failed to open store", "path", cfg.Store.Path, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	prov, err := provider.New(cfg.Provider.Name, logger, cfg.Provider.Settings)
	if err != nil {
		logger.Error("failed to build provider", "name", cfg.Provider.Name, "error", err)
		os.Exit(1)
	}

	// A declaration file on disk seeds the store at startup so a fresh
	// install is immediately plannable.
	if cfg.Declaration.Path != "" {
		decl, err := declaration.Load(cfg.Declaration.Path)
		if err != nil {
			logger.Error("failed to load declaration", "path", cfg.Declaration.Path, "error", err)
			os.Exit(1)
		}
		version, err := db.SaveDeclaration(decl)
		if err != nil {
			logger.Error("failed to store declaration", "error", err)
			os.Exit(1)
		}
		logger.Info("declaration loaded",
			"path", cfg.Declaration.Path,
			"domain", decl.Zone.Domain,
			"version", version,
		)
	}

	if !cfg.API.Enabled {
		logger.Error("api.enabled is false and fleetdns has nothing to run; use fleetctl for one-shot applies")
		os.Exit(1)
	}

	h := handlers.New(cfg, db, logger)
	h.SetProvider(prov)

	srv := api.New(cfg, h, logger)
	errCh := make(chan error, 1)
	go func() {
		logger.Info("management API listening", "addr", srv.Addr())
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("api server exited", "error", err)
			os.Exit(1)
		}
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}
