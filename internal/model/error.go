package model

import (
	"errors"
	"strconv"
)

// Malformed input (400).
var (
	ErrMalformedInput   = errors.New("malformed input")
	ErrMissingCode      = errors.New("missing authorization code")
	ErrMissingIdentity  = errors.New("missing external identity id")
	ErrMissingSessionID = errors.New("missing checkout session id")
)

// Upstream transport (network or unexpected upstream failure).
var (
	ErrUpstreamTransport = errors.New("upstream transport error")
	ErrTokenExchange     = errors.New("token exchange failed")
	ErrIdentityFetch     = errors.New("identity fetch failed")
	ErrCheckoutCreate    = errors.New("checkout session creation failed")
	ErrSessionRetrieve   = errors.New("checkout session retrieval failed")
)

// Upstream rejection (well-formed error from a provider).
var (
	ErrInvalidSignature  = errors.New("invalid webhook signature")
	ErrMemberNotFound    = errors.New("member not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrUpstreamRejection = errors.New("upstream rejected request")
)

// RejectionError carries the raw provider error body for diagnostics.
type RejectionError struct {
	Status int
	Body   string
}

func (e *RejectionError) Error() string {
	return "upstream status " + strconv.Itoa(e.Status) + ": " + e.Body
}

func (e *RejectionError) Is(target error) bool {
	return target == ErrUpstreamRejection
}
