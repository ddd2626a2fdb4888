package application

import (
	"compress/flate"
	"context"
	"net/http"

	"github.com/diwise/api-datgateway/internal/pkg/application/services/directory"
	"github.com/diwise/api-datgateway/internal/pkg/application/services/ownership"
	"github.com/diwise/api-datgateway/internal/pkg/infrastructure/metrics"
	"github.com/diwise/api-datgateway/internal/pkg/presentation/handlers"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

const banner = "DAT data access gateway is running."

type API interface {
	Start(port string) error
}

type gatewayAPI struct {
	router chi.Router
	log    zerolog.Logger
}

func NewAPI(ctx context.Context, r chi.Router, ownershipSvc ownership.OwnershipService, directorySvc directory.DirectoryService) API {
	return newGatewayAPI(ctx, r, ownershipSvc, directorySvc)
}

func newGatewayAPI(ctx context.Context, r chi.Router, ownershipSvc ownership.OwnershipService, directorySvc directory.DirectoryService) *gatewayAPI {
	log := logging.GetFromContext(ctx)

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		Debug:            false,
	}).Handler)

	// Enable gzip compression for our responses
	compressor := middleware.NewCompressor(flate.DefaultCompression, "application/json")
	r.Use(compressor.Handler)
	r.Use(otelchi.Middleware("api-datgateway", otelchi.WithChiRoutes(r)))

	a := &gatewayAPI{
		router: r,
		log:    log,
	}

	a.addProbeHandlers(r)

	r.Get("/api/data/{registry}/{tokenId}", handlers.NewRetrieveDataAccessHandler(log, ownershipSvc))
	r.Get("/api/dats", handlers.NewRetrieveDATsHandler(log, directorySvc))

	return a
}

func (a *gatewayAPI) Start(port string) error {
	a.log.Info().Msgf("Starting api-datgateway on port:%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

func (a *gatewayAPI) addProbeHandlers(r chi.Router) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(banner))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
}
