package ownership

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diwise/api-datgateway/internal/pkg/domain"
	"github.com/diwise/api-datgateway/internal/pkg/infrastructure/metrics"
	"github.com/diwise/api-datgateway/internal/pkg/infrastructure/registry"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ipfs/go-cid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-datgateway/svcs/ownership")

const ipfsScheme = "ipfs://"

//go:generate moq -rm -out ownershipsvc_mock.go . OwnershipService
type OwnershipService interface {
	VerifyAndResolve(ctx context.Context, reg domain.Registry, tokenID uint64, claimant string) (*domain.AccessGrant, error)
}

type Option func(*ownershipSvc)

func WithRPCTimeout(timeout time.Duration) Option {
	return func(svc *ownershipSvc) {
		svc.rpcTimeout = timeout
	}
}

// WithTokenURICache memoises token URIs. Only enable it for registries that
// cannot change a token uri after mint. Ownership is always read from the chain.
func WithTokenURICache(size int) Option {
	return func(svc *ownershipSvc) {
		if size <= 0 {
			return
		}
		svc.uris, _ = lru.New[tokenKey, string](size)
	}
}

func NewOwnershipService(logger zerolog.Logger, gatewayURL string, readers []registry.Reader, options ...Option) OwnershipService {
	svc := &ownershipSvc{
		readers:    map[domain.Registry]registry.Reader{},
		gatewayURL: gatewayURL,
		rpcTimeout: 10 * time.Second,
		log:        logger,
	}

	for _, r := range readers {
		svc.readers[r.Registry()] = r
	}

	for _, opt := range options {
		opt(svc)
	}

	return svc
}

type tokenKey struct {
	registry domain.Registry
	tokenID  uint64
}

type ownershipSvc struct {
	readers    map[domain.Registry]registry.Reader
	gatewayURL string
	rpcTimeout time.Duration
	uris       *lru.Cache[tokenKey, string]
	log        zerolog.Logger
}

func (svc *ownershipSvc) VerifyAndResolve(ctx context.Context, reg domain.Registry, tokenID uint64, claimant string) (grant *domain.AccessGrant, err error) {
	ctx, span := tracer.Start(ctx, "verify-and-resolve")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, svc.log, ctx)

	reader, ok := svc.readers[reg]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRegistry, reg)
	}

	if strings.TrimSpace(claimant) == "" {
		return nil, domain.ErrMissingClaimant
	}

	if tokenID == 0 {
		return nil, fmt.Errorf("%w: token ids start at 1", domain.ErrInvalidTokenID)
	}

	owner, err := svc.ownerOf(ctx, reader, tokenID)
	if err != nil {
		metrics.AccessDecisions.WithLabelValues(string(reg), "error").Inc()
		return nil, err
	}

	if !strings.EqualFold(owner, strings.TrimSpace(claimant)) {
		log.Info().Str("registry", string(reg)).Uint64("tokenID", tokenID).Str("claimant", claimant).Msg("access denied, claimant does not own token")
		metrics.AccessDecisions.WithLabelValues(string(reg), "denied").Inc()
		return &domain.AccessGrant{Allowed: false}, nil
	}

	tokenURI, err := svc.tokenURI(ctx, reader, tokenID)
	if err != nil {
		metrics.AccessDecisions.WithLabelValues(string(reg), "error").Inc()
		return nil, err
	}

	grant = svc.resolve(log, tokenURI)
	metrics.AccessDecisions.WithLabelValues(string(reg), "granted").Inc()

	return grant, nil
}

func (svc *ownershipSvc) ownerOf(ctx context.Context, reader registry.Reader, tokenID uint64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, svc.rpcTimeout)
	defer cancel()

	owner, err := reader.OwnerOf(ctx, tokenID)
	if err != nil {
		return "", classify(reader.Registry(), tokenID, err)
	}

	return owner, nil
}

func (svc *ownershipSvc) tokenURI(ctx context.Context, reader registry.Reader, tokenID uint64) (string, error) {
	key := tokenKey{registry: reader.Registry(), tokenID: tokenID}

	if svc.uris != nil {
		if uri, ok := svc.uris.Get(key); ok {
			return uri, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, svc.rpcTimeout)
	defer cancel()

	uri, err := reader.TokenURI(ctx, tokenID)
	if err != nil {
		return "", classify(reader.Registry(), tokenID, err)
	}

	if svc.uris != nil {
		svc.uris.Add(key, uri)
	}

	return uri, nil
}

func (svc *ownershipSvc) resolve(log zerolog.Logger, tokenURI string) *domain.AccessGrant {
	hash := strings.TrimPrefix(tokenURI, ipfsScheme)

	grant := &domain.AccessGrant{
		Allowed:  true,
		DataURL:  svc.gatewayURL + hash,
		TokenURI: tokenURI,
	}

	root, _, _ := strings.Cut(hash, "/")
	if c, err := cid.Decode(root); err == nil {
		grant.CID = c.String()
	} else {
		log.Debug().Str("tokenURI", tokenURI).Msg("token uri does not reference an ipfs cid")
	}

	return grant
}

func classify(reg domain.Registry, tokenID uint64, err error) error {
	if errors.Is(err, registry.ErrReverted) {
		return fmt.Errorf("%w: token %d on %s registry", domain.ErrTokenNotFound, tokenID, reg)
	}

	return fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
}
