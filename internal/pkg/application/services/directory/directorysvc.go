package directory

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/diwise/api-datgateway/internal/pkg/domain"
	"github.com/diwise/api-datgateway/internal/pkg/infrastructure/metrics"
	"github.com/diwise/api-datgateway/internal/pkg/infrastructure/registry"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var tracer = otel.Tracer("api-datgateway/svcs/directory")

// nativeDecimals is the number of decimals of the network's native unit.
const nativeDecimals = 18

const refreshKey = "dats"

//go:generate moq -rm -out directorysvc_mock.go . DirectoryService
type DirectoryService interface {
	ListAll(ctx context.Context, forceRefresh bool) ([]domain.DAT, domain.Source, error)
	Expire()
}

type Option func(*directorySvc)

func WithTTL(ttl time.Duration) Option {
	return func(svc *directorySvc) {
		svc.ttl = ttl
	}
}

func WithRPCTimeout(timeout time.Duration) Option {
	return func(svc *directorySvc) {
		svc.rpcTimeout = timeout
	}
}

// WithConcurrency bounds the number of tokens fetched in parallel per registry.
func WithConcurrency(limit int) Option {
	return func(svc *directorySvc) {
		if limit > 0 {
			svc.concurrency = limit
		}
	}
}

// WithMaxSupply bounds the token supply a registry may report before the
// enumeration is refused.
func WithMaxSupply(limit uint64) Option {
	return func(svc *directorySvc) {
		if limit > 0 {
			svc.maxSupply = limit
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(svc *directorySvc) {
		svc.now = now
	}
}

func NewDirectoryService(logger zerolog.Logger, readers []registry.Reader, options ...Option) DirectoryService {
	svc := &directorySvc{
		readers:     readers,
		dats:        []domain.DAT{},
		ttl:         60 * time.Second,
		rpcTimeout:  10 * time.Second,
		concurrency: 16,
		maxSupply:   100000,
		now:         time.Now,
		log:         logger,
	}

	for _, opt := range options {
		opt(svc)
	}

	return svc
}

type directorySvc struct {
	readers     []registry.Reader
	ttl         time.Duration
	rpcTimeout  time.Duration
	concurrency int
	maxSupply   uint64
	now         func() time.Time
	log         zerolog.Logger

	datsMutex   sync.RWMutex
	dats        []domain.DAT
	refreshedAt time.Time
	generation  uint64

	refreshes singleflight.Group
}

func (svc *directorySvc) ListAll(ctx context.Context, forceRefresh bool) ([]domain.DAT, domain.Source, error) {
	if !forceRefresh {
		if dats, ok := svc.cached(); ok {
			metrics.DirectoryRequests.WithLabelValues(string(domain.SourceCache)).Inc()
			return dats, domain.SourceCache, nil
		}
	}

	// Concurrent refreshes share a single enumeration. It is detached from the
	// cancellation of whichever request happened to start it, every read is
	// still bounded by the rpc timeout.
	result, err, _ := svc.refreshes.Do(refreshKey, func() (interface{}, error) {
		return svc.refresh(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, "", err
	}

	metrics.DirectoryRequests.WithLabelValues(string(domain.SourceFresh)).Inc()

	return slices.Clone(result.([]domain.DAT)), domain.SourceFresh, nil
}

// Expire marks the cached listing as stale so that the next ListAll
// enumerates the registries again. An enumeration already in flight may have
// read the registries before the change, its result is stored as stale.
func (svc *directorySvc) Expire() {
	svc.datsMutex.Lock()
	defer svc.datsMutex.Unlock()

	svc.refreshedAt = time.Time{}
	svc.generation++
}

func (svc *directorySvc) currentGeneration() uint64 {
	svc.datsMutex.RLock()
	defer svc.datsMutex.RUnlock()

	return svc.generation
}

func (svc *directorySvc) cached() ([]domain.DAT, bool) {
	svc.datsMutex.RLock()
	defer svc.datsMutex.RUnlock()

	if len(svc.dats) == 0 || svc.refreshedAt.IsZero() {
		return nil, false
	}

	if svc.now().Sub(svc.refreshedAt) >= svc.ttl {
		return nil, false
	}

	return slices.Clone(svc.dats), true
}

// storeDATList replaces the cached listing. The listing only counts as fresh
// if the cache was not expired since the enumeration started.
func (svc *directorySvc) storeDATList(list []domain.DAT, startedAt uint64) {
	svc.datsMutex.Lock()
	defer svc.datsMutex.Unlock()

	svc.dats = list

	if svc.generation != startedAt {
		svc.refreshedAt = time.Time{}
		return
	}

	svc.refreshedAt = svc.now()
}

func (svc *directorySvc) refresh(ctx context.Context) (dats []domain.DAT, err error) {
	ctx, span := tracer.Start(ctx, "refresh-dats")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, svc.log, ctx)

	log.Info().Msg("enumerating dat registries")
	start := time.Now()
	generation := svc.currentGeneration()

	perRegistry := make([][]domain.DAT, len(svc.readers))

	g, gctx := errgroup.WithContext(ctx)
	for i, r := range svc.readers {
		i, r := i, r
		g.Go(func() error {
			list, err := svc.enumerate(gctx, log, r)
			if err != nil {
				return err
			}
			perRegistry[i] = list
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
		return nil, err
	}

	dats = []domain.DAT{}
	for _, list := range perRegistry {
		dats = append(dats, list...)
	}

	svc.storeDATList(dats, generation)

	metrics.EnumerationDuration.Observe(time.Since(start).Seconds())
	log.Info().Msgf("enumerated %d dats in %s", len(dats), time.Since(start))

	return dats, nil
}

// enumerate fetches every token of a single registry. Tokens that cannot be
// read are logged and left out. A supply that cannot be read, or is above
// the configured maximum, fails the registry as a whole.
func (svc *directorySvc) enumerate(ctx context.Context, log zerolog.Logger, r registry.Reader) ([]domain.DAT, error) {
	supply, err := svc.totalSupply(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to read total supply of %s registry: %w", r.Registry(), err)
	}

	if supply > svc.maxSupply {
		return nil, fmt.Errorf("%s registry reports a supply of %d, more than the allowed %d", r.Registry(), supply, svc.maxSupply)
	}

	var mu sync.Mutex
	dats := []domain.DAT{}

	g := &errgroup.Group{}
	g.SetLimit(svc.concurrency)

	for position := uint64(0); position < supply; position++ {
		if ctx.Err() != nil {
			break
		}

		position := position
		g.Go(func() error {
			dat, err := svc.fetchToken(ctx, r, position)
			if err != nil {
				log.Warn().Err(err).Str("registry", string(r.Registry())).Uint64("position", position).Msg("skipping unreadable dat")
				metrics.DroppedTokens.WithLabelValues(string(r.Registry())).Inc()
				return nil
			}

			mu.Lock()
			dats = append(dats, *dat)
			mu.Unlock()

			return nil
		})
	}

	g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("enumeration of %s registry aborted: %w", r.Registry(), err)
	}

	slices.SortFunc(dats, byID)

	return dats, nil
}

func (svc *directorySvc) totalSupply(ctx context.Context, r registry.Reader) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, svc.rpcTimeout)
	defer cancel()

	return r.TotalSupply(ctx)
}

// fetchToken reads owner and metadata of the token at position. Ids are
// assumed to be dense and to start at 1, unless the registry supports
// tokenByIndex.
func (svc *directorySvc) fetchToken(ctx context.Context, r registry.Reader, position uint64) (*domain.DAT, error) {
	ctx, cancel := context.WithTimeout(ctx, svc.rpcTimeout)
	defer cancel()

	tokenID := position + 1

	if r.Enumerable() {
		id, err := r.TokenByIndex(ctx, position)
		if err != nil {
			return nil, fmt.Errorf("failed to read token at index %d: %w", position, err)
		}
		tokenID = id
	}

	owner, err := r.OwnerOf(ctx, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to read owner of token %d: %w", tokenID, err)
	}

	meta, err := r.DatMetadata(ctx, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata of token %d: %w", tokenID, err)
	}

	return &domain.DAT{
		ID:          tokenID,
		Type:        r.Registry(),
		Name:        meta.Name,
		Description: meta.Description,
		Price:       toNativeUnit(meta.Price),
		Owner:       owner,
	}, nil
}

func toNativeUnit(baseUnits *big.Int) float64 {
	if baseUnits == nil {
		return 0
	}

	return decimal.NewFromBigInt(baseUnits, -nativeDecimals).InexactFloat64()
}
