package registry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Dial connects to the blockchain RPC endpoint and confirms that it answers
// eth_chainId, retrying with exponential backoff for at most maxElapsed.
func Dial(ctx context.Context, log zerolog.Logger, rpcURL string, maxElapsed time.Duration) (*ethclient.Client, error) {
	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	var client *ethclient.Client

	connect := func() error {
		rpcClient, err := rpc.DialOptions(ctx, rpcURL, rpc.WithHTTPClient(httpClient))
		if err != nil {
			return err
		}

		c := ethclient.NewClient(rpcClient)

		chainID, err := c.ChainID(ctx)
		if err != nil {
			c.Close()
			return err
		}

		log.Info().Str("rpc", rpcURL).Str("chainID", chainID.String()).Msg("connected to blockchain rpc endpoint")
		client = c

		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = maxElapsed

	notify := func(err error, wait time.Duration) {
		log.Warn().Err(err).Msgf("rpc endpoint not reachable, retrying in %s", wait)
	}

	err := backoff.RetryNotify(connect, backoff.WithContext(policy, ctx), notify)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rpc endpoint %s: %w", rpcURL, err)
	}

	return client, nil
}
