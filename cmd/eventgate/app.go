package main

import (
	"context"
	"fmt"
	"time"

	"github.com/goran-ethernal/QuorumEventGate/internal/autowhitelist"
	internalbus "github.com/goran-ethernal/QuorumEventGate/internal/bus"
	"github.com/goran-ethernal/QuorumEventGate/internal/common"
	"github.com/goran-ethernal/QuorumEventGate/internal/events"
	"github.com/goran-ethernal/QuorumEventGate/internal/library"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/internal/metrics"
	"github.com/goran-ethernal/QuorumEventGate/internal/registry"
	"github.com/goran-ethernal/QuorumEventGate/internal/rpc"
	storefactory "github.com/goran-ethernal/QuorumEventGate/internal/store"
	"github.com/goran-ethernal/QuorumEventGate/internal/validation"
	"github.com/goran-ethernal/QuorumEventGate/pkg/api"
	"github.com/goran-ethernal/QuorumEventGate/pkg/bus"
	pkgconfig "github.com/goran-ethernal/QuorumEventGate/pkg/config"
	"github.com/goran-ethernal/QuorumEventGate/pkg/store"
)

const metricsStopTimeout = 5 * time.Second

// app is the wired component graph. Every collaborator is built once here
// and handed to its consumers through their constructors.
type app struct {
	cfg *pkgconfig.Config
	log *logger.Logger

	chain     *rpc.Client
	store     store.Store
	publisher bus.Publisher
	registry  *registry.Client
	bootstrap *autowhitelist.Bootstrap
	service   *events.Service
	api       *api.Server
	metrics   *metrics.Server
}

func componentLogger(cfg *pkgconfig.Config, component string) *logger.Logger {
	return logger.NewComponentLoggerFromConfig(component, cfg.Logging)
}

func newApp(ctx context.Context, cfg *pkgconfig.Config) (_ *app, err error) {
	a := &app{cfg: cfg, log: componentLogger(cfg, common.ComponentEventService)}

	defer func() {
		if err != nil {
			a.close()
		}
	}()

	metrics.BuildInfoSet(version, commit)
	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		a.metrics = metrics.NewServer(cfg.Metrics, componentLogger(cfg, common.ComponentAPI))
		if err := a.metrics.Start(ctx); err != nil {
			return nil, fmt.Errorf("failed to start metrics server: %w", err)
		}
	}

	a.log.Infow("connecting to quorum node", "url", cfg.Chain.RPCURL)
	a.chain, err = rpc.NewClient(ctx, cfg.Chain, componentLogger(cfg, common.ComponentChainClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create chain client: %w", err)
	}

	a.store, err = storefactory.New(ctx, cfg.Store, componentLogger(cfg, common.ComponentTrustStore))
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	catalog, err := library.LoadCatalog(cfg.Library.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load contract catalog: %w", err)
	}
	lib, err := library.New(catalog, componentLogger(cfg, common.ComponentLibrary))
	if err != nil {
		return nil, fmt.Errorf("failed to build contract library: %w", err)
	}

	a.publisher, err = internalbus.New(ctx, cfg.Bus, componentLogger(cfg, common.ComponentPublisher))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to message bus: %w", err)
	}

	if cfg.Registry != nil {
		a.registry = registry.NewClient(*cfg.Registry, componentLogger(cfg, common.ComponentRegistry))
	}

	validatorLog := componentLogger(cfg, common.ComponentValidator)
	validator := validation.NewEventValidator(
		a.store,
		lib,
		validation.NewCastVerifier(a.store, lib, validatorLog),
		validation.NewBytecodeVerifier(a.chain, lib, validatorLog),
		validatorLog,
	)

	if cfg.AutoWhitelist.IsEnabled() {
		a.bootstrap = a.newBootstrap(lib)
	}

	a.service = events.NewService(a.chain, a.store, validator, a.publisher, cfg.Events, a.log)

	if cfg.API != nil && cfg.API.Enabled {
		a.api = api.NewServer(cfg.API, api.Dependencies{
			Trust:    a.store,
			Progress: a.store,
			Ranges:   a.store,
			Checks:   a.healthChecks(),
		}, componentLogger(cfg, common.ComponentAPI))
	}

	return a, nil
}

func (a *app) newBootstrap(lib *library.Library) *autowhitelist.Bootstrap {
	cfg := a.cfg.AutoWhitelist
	log := componentLogger(a.cfg, common.ComponentAutoWhitelist)

	var public *autowhitelist.PublicWhitelister
	if a.registry != nil {
		public = autowhitelist.NewPublicWhitelister(a.registry, a.store, cfg.Domains, cfg.RegistryContractAddress, log)
	}

	private := autowhitelist.NewPrivateWhitelister(a.chain, lib, a.store, a.store, cfg.ChunkSize, log)

	return autowhitelist.NewBootstrap(a.chain, a.store, a.store, cfg.StopBlock, public, private, cfg.RetryInterval.Duration, log)
}

func (a *app) healthChecks() []api.HealthCheck {
	checks := []api.HealthCheck{
		{Name: common.ComponentChainClient, Pinger: api.PingFunc(func(ctx context.Context) error {
			_, err := a.chain.BlockNumber(ctx)
			return err
		})},
		{Name: common.ComponentTrustStore, Pinger: a.store},
		{Name: common.ComponentPublisher, Pinger: a.publisher},
	}
	if a.registry != nil {
		checks = append(checks, api.HealthCheck{Name: common.ComponentRegistry, Pinger: a.registry})
	}

	return checks
}

// run blocks until ctx is cancelled. The API is served while the bootstrap
// runs so readiness can be observed during a long back-scan.
func (a *app) run(ctx context.Context) error {
	if a.api != nil {
		go func() {
			if err := a.api.Start(ctx); err != nil {
				a.log.Errorw("API server error", "error", err)
			}
		}()
	}

	if a.bootstrap != nil {
		a.log.Info("running auto-whitelist bootstrap...")
		if err := a.bootstrap.Run(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("auto-whitelist bootstrap failed: %w", err)
		}
	}

	if err := a.service.Start(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to start event service: %w", err)
	}

	a.log.Info("QuorumEventGate started")
	<-ctx.Done()

	if err := a.service.Stop(); err != nil {
		a.log.Warnw("event service stopped with error", "error", err)
	}
	a.publisher = nil

	a.log.Info("QuorumEventGate stopped successfully")
	return nil
}

// close releases whatever newApp managed to open.
func (a *app) close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.log.Warnw("failed to close publisher", "error", err)
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warnw("failed to close store", "error", err)
		}
	}
	if a.chain != nil {
		a.chain.Close()
	}
	if a.metrics != nil {
		ctx, cancel := context.WithTimeout(context.Background(), metricsStopTimeout)
		defer cancel()
		if err := a.metrics.Stop(ctx); err != nil {
			a.log.Warnw("failed to stop metrics server", "error", err)
		}
	}
}
