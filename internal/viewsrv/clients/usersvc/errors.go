package usersvc

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/meeplehaven/viewsrv/internal/common/apperrors"
	"github.com/meeplehaven/viewsrv/internal/common/httpclient"
	"github.com/meeplehaven/viewsrv/internal/viewsrv/collection"
)

const upstreamName = "user-service"

// mapError converts transport and status failures into the generic
// upstream error. The failing upstream and status are logged for
// diagnostics only and never reach the caller.
func mapError(ctx context.Context, err error) apperrors.Error {
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		log.Ctx(ctx).Error().
			Str("upstream", upstreamName).
			Int("status", httpErr.StatusCode).
			Str("detail", httpErr.Message).
			Msg("upstream request failed")
		return collection.ErrUpstreamUnavailable
	}
	log.Ctx(ctx).Error().
		Str("upstream", upstreamName).
		Err(err).
		Msg("upstream request failed")
	return collection.ErrUpstreamUnavailable
}

// malformed logs a parse failure and returns the malformed-response error.
func malformed(ctx context.Context, detail string) apperrors.Error {
	log.Ctx(ctx).Error().
		Str("upstream", upstreamName).
		Str("detail", detail).
		Msg("malformed upstream response")
	return collection.ErrMalformedUpstream
}
