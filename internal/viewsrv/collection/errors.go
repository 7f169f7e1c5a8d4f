package collection

import (
	"net/http"

	"github.com/meeplehaven/viewsrv/internal/common/apperrors"
)

// Base error for the collection view pipelines
var (
	ErrViewError apperrors.Error = apperrors.New("collection view processing failed").SetStatusCode(http.StatusInternalServerError)
)

// User-facing errors
var (
	ErrGameNotFound apperrors.Error = ErrViewError.New("game not found").SetStatusCode(http.StatusNotFound)
)

// Upstream errors. Descriptions stay generic: the failing upstream and its
// status are logged for diagnostics, never sent to the caller.
var (
	ErrUpstreamUnavailable apperrors.Error = ErrViewError.New("upstream service unavailable").SetStatusCode(http.StatusBadGateway)
	ErrMalformedUpstream   apperrors.Error = ErrUpstreamUnavailable.New("upstream service unavailable")
)
