package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/diwise/api-datgateway/internal/pkg/application/services/ownership"
	"github.com/diwise/api-datgateway/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-datgateway/api")

type dataAccessResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	DataURL  string `json:"dataUrl,omitempty"`
	TokenURI string `json:"tokenURI,omitempty"`
	CID      string `json:"cid,omitempty"`
}

// NewRetrieveDataAccessHandler releases the gateway url of a DAT's content
// to the wallet given in the userAddress query parameter, provided that the
// wallet owns the token right now.
func NewRetrieveDataAccessHandler(logger zerolog.Logger, svc ownership.OwnershipService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "retrieve-data-access")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		registry := domain.ParseRegistry(chi.URLParam(r, "registry"))
		claimant := r.URL.Query().Get("userAddress")

		// an unparseable id is reported by the service as an invalid token
		// id, after the registry and claimant have been checked
		tokenID, parseErr := strconv.ParseUint(chi.URLParam(r, "tokenId"), 10, 64)
		if parseErr != nil {
			tokenID = 0
		}

		grant, err := svc.VerifyAndResolve(ctx, registry, tokenID, claimant)
		if err != nil {
			status, message := accessErrorResponse(err)
			if status == http.StatusInternalServerError {
				log.Error().Err(err).Str("registry", string(registry)).Uint64("tokenId", tokenID).Msg("ownership check failed")
			} else {
				log.Info().Err(err).Str("registry", string(registry)).Msg("rejected data access request")
			}
			writeAccessResponse(w, status, dataAccessResponse{Message: message})
			return
		}

		if !grant.Allowed {
			err = domain.ErrNotOwner
			log.Info().Str("registry", string(registry)).Uint64("tokenId", tokenID).Msg("claimant does not own the token")
			writeAccessResponse(w, http.StatusForbidden, dataAccessResponse{Message: "You are not the owner of this DAT."})
			return
		}

		writeAccessResponse(w, http.StatusOK, dataAccessResponse{
			Success:  true,
			Message:  "Ownership verified.",
			DataURL:  grant.DataURL,
			TokenURI: grant.TokenURI,
			CID:      grant.CID,
		})
	})
}

func accessErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrMissingClaimant):
		return http.StatusBadRequest, "userAddress query parameter is required."
	case errors.Is(err, domain.ErrInvalidRegistry):
		return http.StatusBadRequest, "Invalid contractType specified."
	case errors.Is(err, domain.ErrInvalidTokenID):
		return http.StatusBadRequest, "Invalid tokenId specified."
	case errors.Is(err, domain.ErrTokenNotFound):
		return http.StatusNotFound, "Token does not exist or could not be found."
	default:
		return http.StatusInternalServerError, "An error occurred on the server."
	}
}

func writeAccessResponse(w http.ResponseWriter, status int, body dataAccessResponse) {
	w.Header().Add("Cache-Control", "no-store")
	writeJSON(w, status, body)
}
