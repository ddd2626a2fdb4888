package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/diwise/api-datgateway/internal/pkg/application/services/directory"
	"github.com/diwise/api-datgateway/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
)

type datsResponse struct {
	Success bool          `json:"success"`
	DATs    []domain.DAT  `json:"dats"`
	Source  domain.Source `json:"source"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewRetrieveDATsHandler(logger zerolog.Logger, svc directory.DirectoryService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "retrieve-dats")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		params := r.URL.Query()
		forceRefresh, _ := strconv.ParseBool(params.Get("forceRefresh"))

		query, err := directory.ParseQuery(params)
		if err != nil {
			log.Info().Err(err).Msg("bad request")
			writeJSON(w, http.StatusBadRequest, failureResponse{Message: err.Error()})
			return
		}

		dats, source, err := svc.ListAll(ctx, forceRefresh)
		if err != nil {
			log.Error().Err(err).Msg("failed to list dats")
			writeJSON(w, http.StatusInternalServerError, failureResponse{Message: "Failed to fetch DATs from the blockchain."})
			return
		}

		writeJSON(w, http.StatusOK, datsResponse{
			Success: true,
			DATs:    query.Apply(dats),
			Source:  source,
		})
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	responseBody, err := json.Marshal(body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(responseBody)
}
