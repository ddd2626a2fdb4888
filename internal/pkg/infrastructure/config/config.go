package config

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServicePort string `envconfig:"SERVICE_PORT" default:"8880"`

	RPCURL         string        `envconfig:"RPC_URL" default:"https://testnet.lazai.network"`
	RPCTimeout     time.Duration `envconfig:"RPC_TIMEOUT" default:"10s"`
	RPCDialTimeout time.Duration `envconfig:"RPC_DIAL_TIMEOUT" default:"2m"`

	OfficialContractAddress string `envconfig:"OFFICIAL_CONTRACT_ADDRESS" required:"true"`
	OfficialContractABI     string `envconfig:"OFFICIAL_CONTRACT_ABI"`
	OfficialEnumerable      bool   `envconfig:"OFFICIAL_ENUMERABLE" default:"false"`

	UserContractAddress string `envconfig:"USER_CONTRACT_ADDRESS" required:"true"`
	UserContractABI     string `envconfig:"USER_CONTRACT_ABI"`
	UserEnumerable      bool   `envconfig:"USER_ENUMERABLE" default:"false"`

	GatewayURL        string        `envconfig:"IPFS_GATEWAY_URL" default:"https://gateway.pinata.cloud/ipfs/"`
	CacheTTL          time.Duration `envconfig:"CACHE_TTL" default:"60s"`
	FetchConcurrency  int           `envconfig:"FETCH_CONCURRENCY" default:"16"`
	TokenURICacheSize int           `envconfig:"TOKEN_URI_CACHE_SIZE" default:"0"`
	MaxSupply         uint64        `envconfig:"MAX_SUPPLY" default:"100000"`

	WatchEvents   bool          `envconfig:"WATCH_EVENTS" default:"false"`
	WatchInterval time.Duration `envconfig:"WATCH_INTERVAL" default:"15s"`
}

// Load decodes the service configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	for name, addr := range map[string]string{
		"OFFICIAL_CONTRACT_ADDRESS": cfg.OfficialContractAddress,
		"USER_CONTRACT_ADDRESS":     cfg.UserContractAddress,
	} {
		if !common.IsHexAddress(addr) {
			return nil, fmt.Errorf("%s is not a valid contract address: %q", name, addr)
		}
	}

	if cfg.CacheTTL <= 0 {
		return nil, fmt.Errorf("CACHE_TTL must be positive, got %s", cfg.CacheTTL)
	}

	if cfg.MaxSupply == 0 {
		return nil, fmt.Errorf("MAX_SUPPLY must be positive")
	}

	if cfg.FetchConcurrency < 1 {
		cfg.FetchConcurrency = 1
	}

	return cfg, nil
}
