package domain

import "errors"

var (
	ErrInvalidRegistry     = errors.New("invalid registry")
	ErrMissingClaimant     = errors.New("missing claimant address")
	ErrInvalidTokenID      = errors.New("invalid token id")
	ErrTokenNotFound       = errors.New("token not found")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrNotOwner            = errors.New("claimant is not the owner")
)
