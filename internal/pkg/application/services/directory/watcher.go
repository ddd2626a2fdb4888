package directory

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
)

// LogSource is the subset of an ethereum client needed to follow registry events.
type LogSource interface {
	BlockNumber(ctx context.Context) (uint64, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
}

type RegistryWatcher interface {
	Start()
	Shutdown()
}

// NewRegistryWatcher returns a watcher that expires the directory cache
// whenever a mint or transfer event is emitted by one of the registries.
func NewRegistryWatcher(ctx context.Context, logger zerolog.Logger, logs LogSource, addresses []common.Address, topics []common.Hash, interval time.Duration, dir DirectoryService) RegistryWatcher {
	return &registryWatcher{
		ctx:       ctx,
		logs:      logs,
		addresses: addresses,
		topics:    topics,
		interval:  interval,
		directory: dir,
		log:       logger,
		done:      make(chan struct{}),
	}
}

type registryWatcher struct {
	ctx       context.Context
	logs      LogSource
	addresses []common.Address
	topics    []common.Hash
	interval  time.Duration
	directory DirectoryService
	log       zerolog.Logger

	lastBlock uint64
	done      chan struct{}
}

func (w *registryWatcher) Start() {
	w.log.Info().Msg("starting registry watcher")
	go w.run()
}

func (w *registryWatcher) Shutdown() {
	w.log.Info().Msg("shutting down registry watcher")
	close(w.done)
}

func (w *registryWatcher) run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		count, err := w.poll()
		if err != nil {
			w.log.Error().Err(err).Msg("failed to poll registry events")
		} else if count > 0 {
			w.log.Info().Msgf("observed %d registry events, directory cache expired", count)
		}

		select {
		case <-w.done:
			w.log.Info().Msg("registry watcher exiting")
			return
		case <-w.ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// poll looks for registry events in the blocks produced since the previous
// poll. The first poll only records the current head.
func (w *registryWatcher) poll() (count int, err error) {
	ctx, span := tracer.Start(w.ctx, "poll-registry-events")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(span, w.log, ctx)

	// an empty topic set would match every log of the registries
	if len(w.topics) == 0 {
		return
	}

	head, err := w.logs.BlockNumber(ctx)
	if err != nil {
		err = fmt.Errorf("failed to read block number: %w", err)
		return
	}

	if w.lastBlock == 0 || head <= w.lastBlock {
		w.lastBlock = max(w.lastBlock, head)
		return
	}

	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(w.lastBlock + 1),
		ToBlock:   new(big.Int).SetUint64(head),
		Addresses: w.addresses,
		Topics:    [][]common.Hash{w.topics},
	}

	found, err := w.logs.FilterLogs(ctx, query)
	if err != nil {
		err = fmt.Errorf("failed to filter logs in blocks %d-%d: %w", w.lastBlock+1, head, err)
		return
	}

	w.lastBlock = head
	count = len(found)

	if count > 0 {
		w.directory.Expire()
	}

	return
}
