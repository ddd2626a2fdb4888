package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diwise/api-datgateway/internal/pkg/application/services/ownership"
	"github.com/diwise/api-datgateway/internal/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

const ownerAddress = "0xAbC0000000000000000000000000000000000001"

func TestDataAccessIsGrantedToOwner(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	svc := defaultOwnershipMock()
	r.Get("/api/data/{registry}/{tokenId}", NewRetrieveDataAccessHandler(zerolog.Logger{}, svc))

	response, responseBody := newGetRequest(is, ts, "application/json", "/api/data/official/7?userAddress="+ownerAddress, nil)

	is.Equal(response.StatusCode, http.StatusOK)
	is.Equal(response.Header.Get("Cache-Control"), "no-store")
	is.Equal(len(svc.VerifyAndResolveCalls()), 1)

	call := svc.VerifyAndResolveCalls()[0]
	is.Equal(call.Reg, domain.RegistryOfficial)
	is.Equal(call.TokenID, uint64(7))
	is.Equal(call.Claimant, ownerAddress)

	body := dataAccessResponse{}
	is.NoErr(json.Unmarshal([]byte(responseBody), &body))
	is.True(body.Success)
	is.Equal(body.Message, "Ownership verified.")
	is.Equal(body.DataURL, "https://gateway.pinata.cloud/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG")
	is.Equal(body.TokenURI, "ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG")
}

func TestDataAccessIsForbiddenForOtherWallets(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	svc := defaultOwnershipMock()
	r.Get("/api/data/{registry}/{tokenId}", NewRetrieveDataAccessHandler(zerolog.Logger{}, svc))

	response, responseBody := newGetRequest(is, ts, "application/json", "/api/data/user/7?userAddress=0xdead", nil)

	is.Equal(response.StatusCode, http.StatusForbidden)
	is.Equal(svc.VerifyAndResolveCalls()[0].Reg, domain.RegistryCommunity)
	is.Equal(responseBody, `{"success":false,"message":"You are not the owner of this DAT."}`)
}

func TestDataAccessErrorsAreMappedToStatusCodes(t *testing.T) {
	testCases := map[string]struct {
		err     error
		status  int
		message string
	}{
		"missing claimant": {domain.ErrMissingClaimant, http.StatusBadRequest, "userAddress query parameter is required."},
		"bad registry":     {fmt.Errorf("%w: %q", domain.ErrInvalidRegistry, "gold"), http.StatusBadRequest, "Invalid contractType specified."},
		"bad token id":     {domain.ErrInvalidTokenID, http.StatusBadRequest, "Invalid tokenId specified."},
		"no such token":    {fmt.Errorf("ownerOf: %w", domain.ErrTokenNotFound), http.StatusNotFound, "Token does not exist or could not be found."},
		"node unavailable": {fmt.Errorf("%w: dial tcp: i/o timeout", domain.ErrUpstreamUnavailable), http.StatusInternalServerError, "An error occurred on the server."},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			is, r, ts := setupTest(t)
			defer ts.Close()

			svc := &ownership.OwnershipServiceMock{
				VerifyAndResolveFunc: func(ctx context.Context, reg domain.Registry, tokenID uint64, claimant string) (*domain.AccessGrant, error) {
					return nil, tc.err
				},
			}
			r.Get("/api/data/{registry}/{tokenId}", NewRetrieveDataAccessHandler(zerolog.Logger{}, svc))

			response, responseBody := newGetRequest(is, ts, "application/json", "/api/data/official/1?userAddress=0x1", nil)

			is.Equal(response.StatusCode, tc.status)

			body := dataAccessResponse{}
			is.NoErr(json.Unmarshal([]byte(responseBody), &body))
			is.True(!body.Success)
			is.Equal(body.Message, tc.message)
			is.Equal(body.DataURL, "")
		})
	}
}

func TestNonNumericTokenIDIsPassedAsZero(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	svc := defaultOwnershipMock()
	r.Get("/api/data/{registry}/{tokenId}", NewRetrieveDataAccessHandler(zerolog.Logger{}, svc))

	newGetRequest(is, ts, "application/json", "/api/data/official/seven?userAddress="+ownerAddress, nil)

	is.Equal(svc.VerifyAndResolveCalls()[0].TokenID, uint64(0))
}

func defaultOwnershipMock() *ownership.OwnershipServiceMock {
	return &ownership.OwnershipServiceMock{
		VerifyAndResolveFunc: func(ctx context.Context, reg domain.Registry, tokenID uint64, claimant string) (*domain.AccessGrant, error) {
			if reg == "gold" {
				return nil, domain.ErrInvalidRegistry
			}
			if tokenID == 0 {
				return nil, domain.ErrInvalidTokenID
			}
			if claimant != ownerAddress {
				return &domain.AccessGrant{Allowed: false}, nil
			}
			return &domain.AccessGrant{
				Allowed:  true,
				DataURL:  "https://gateway.pinata.cloud/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
				TokenURI: "ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
				CID:      "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
			}, nil
		},
	}
}

func newGetRequest(is *is.I, ts *httptest.Server, accept, path string, body io.Reader) (*http.Response, string) {
	req, err := http.NewRequest(http.MethodGet, ts.URL+path, body)
	is.NoErr(err)

	req.Header.Add("Accept", accept)

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err) // http request failed
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	is.NoErr(err) // failed to read response body

	return resp, string(respBody)
}

func setupTest(t *testing.T) (*is.I, *chi.Mux, *httptest.Server) {
	is := is.New(t)
	r := chi.NewRouter()
	ts := httptest.NewServer(r)

	return is, r, ts
}
