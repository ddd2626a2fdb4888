package main

import (
	"context"
	"fmt"
	"os"

	"github.com/diwise/api-datgateway/internal/pkg/application/services/directory"
	"github.com/diwise/api-datgateway/internal/pkg/application/services/ownership"
	"github.com/diwise/api-datgateway/internal/pkg/domain"
	"github.com/diwise/api-datgateway/internal/pkg/infrastructure/config"
	"github.com/diwise/api-datgateway/internal/pkg/infrastructure/registry"
	application "github.com/diwise/api-datgateway/internal/pkg/presentation"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slices"
)

const serviceName = "api-datgateway"

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)
	defer cleanup()

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using the process environment")
	}

	app := &cli.App{
		Name:    serviceName,
		Usage:   "verifies DAT ownership and serves the DAT directory",
		Version: serviceVersion,
		Action: func(cctx *cli.Context) error {
			return serve(ctx, log)
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start the http api",
				Action: func(cctx *cli.Context) error {
					return serve(ctx, log)
				},
			},
			{
				Name:  "info",
				Usage: "print chain id and token supply of the configured registries",
				Action: func(cctx *cli.Context) error {
					return info(ctx, log)
				},
			},
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("exiting")
	}
}

func serve(ctx context.Context, log zerolog.Logger) error {
	log.Info().Msgf("Starting up %s ...", serviceName)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := registry.Dial(ctx, log, cfg.RPCURL, cfg.RPCDialTimeout)
	if err != nil {
		return err
	}
	defer client.Close()

	contracts, err := bindRegistries(cfg, client)
	if err != nil {
		return err
	}

	readers := []registry.Reader{}
	for _, c := range contracts {
		readers = append(readers, c)
	}

	ownershipSvc := ownership.NewOwnershipService(
		log, cfg.GatewayURL, readers,
		ownership.WithRPCTimeout(cfg.RPCTimeout),
		ownership.WithTokenURICache(cfg.TokenURICacheSize),
	)

	directorySvc := directory.NewDirectoryService(
		log, readers,
		directory.WithTTL(cfg.CacheTTL),
		directory.WithRPCTimeout(cfg.RPCTimeout),
		directory.WithConcurrency(cfg.FetchConcurrency),
		directory.WithMaxSupply(cfg.MaxSupply),
	)

	if cfg.WatchEvents {
		addresses := []common.Address{}
		topics := []common.Hash{}
		for _, c := range contracts {
			addresses = append(addresses, c.Address())
			for _, topic := range c.EventTopics() {
				if !slices.Contains(topics, topic) {
					topics = append(topics, topic)
				}
			}
		}

		if len(topics) == 0 {
			log.Warn().Msg("registry abis declare neither Transfer nor DATMinted, not watching registry events")
		} else {
			watcher := directory.NewRegistryWatcher(ctx, log, client, addresses, topics, cfg.WatchInterval, directorySvc)
			watcher.Start()
			defer watcher.Shutdown()
		}
	}

	api := application.NewAPI(ctx, chi.NewRouter(), ownershipSvc, directorySvc)

	if err = api.Start(cfg.ServicePort); err != nil {
		return fmt.Errorf("failed to start router: %w", err)
	}

	return nil
}

func info(ctx context.Context, log zerolog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := registry.Dial(ctx, log, cfg.RPCURL, cfg.RPCDialTimeout)
	if err != nil {
		return err
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to read chain id: %w", err)
	}

	fmt.Printf("rpc:      %s\nchain id: %s\n", cfg.RPCURL, chainID)

	contracts, err := bindRegistries(cfg, client)
	if err != nil {
		return err
	}

	for _, c := range contracts {
		supply, err := c.TotalSupply(ctx)
		if err != nil {
			fmt.Printf("%-9s %s supply unavailable: %s\n", c.Registry()+":", c.Address().Hex(), err.Error())
			continue
		}
		fmt.Printf("%-9s %s supply %d\n", c.Registry()+":", c.Address().Hex(), supply)
	}

	return nil
}

func bindRegistries(cfg *config.Config, caller bind.ContractCaller) ([]*registry.Contract, error) {
	bindings := []struct {
		registry   domain.Registry
		address    string
		abiFile    string
		enumerable bool
	}{
		{domain.RegistryOfficial, cfg.OfficialContractAddress, cfg.OfficialContractABI, cfg.OfficialEnumerable},
		{domain.RegistryCommunity, cfg.UserContractAddress, cfg.UserContractABI, cfg.UserEnumerable},
	}

	contracts := []*registry.Contract{}

	for _, b := range bindings {
		parsed, err := registry.LoadABI(b.abiFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load abi of %s registry: %w", b.registry, err)
		}

		contracts = append(contracts, registry.NewContract(
			b.registry, common.HexToAddress(b.address), parsed, caller, registry.Enumerable(b.enumerable),
		))
	}

	return contracts, nil
}
