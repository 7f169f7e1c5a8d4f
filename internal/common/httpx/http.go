// Package httpx provides HTTP request and response handling utilities.
// It includes JSON responders, structured error responses, and a wrapper
// that adapts result-returning handlers to http.HandlerFunc.
package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/meeplehaven/viewsrv/internal/common/apperrors"
	"github.com/rs/zerolog/log"
)

// GetRequestData parses a JSON request body into the provided value.
// Only POST and PUT requests carry bodies on this API.
func GetRequestData(r *http.Request, data any) error {
	if r.Method != http.MethodPost && r.Method != http.MethodPut {
		return ErrReqMethodNotSupported()
	}
	if r.Body == nil {
		log.Ctx(r.Context()).Error().Msg("empty request body")
		return ErrUnableToParseReqData()
	}
	if err := json.NewDecoder(r.Body).Decode(data); err != nil {
		return ErrUnableToParseReqData()
	}
	return nil
}

// Response represents a handler result with status code, optional Location
// header, and the value to serialize as the JSON body.
type Response struct {
	StatusCode int
	Location   string
	Response   any
}

// RequestHandler is the handler signature used by API routes. Errors are
// translated to structured error responses by WrapHttpRsp.
type RequestHandler func(r *http.Request) (*Response, error)

// WrapHttpRsp adapts a RequestHandler to http.HandlerFunc, mapping errors
// to JSON error responses and successful results to JSON bodies.
func WrapHttpRsp(handler RequestHandler) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rsp, err := handler(r)
		if err != nil {
			if httperror, ok := err.(*Error); ok {
				httperror.Send(w)
			} else if appErr, ok := err.(apperrors.Error); ok {
				SendError(w, appErr)
			} else {
				ErrApplicationError(err.Error()).Send(w)
			}
			return
		}
		if rsp == nil {
			ErrApplicationError().Send(w)
			return
		}
		var location []string
		if rsp.Location != "" {
			location = append(location, rsp.Location)
		}
		SendJsonRsp(r.Context(), w, rsp.StatusCode, rsp.Response, location...)
	})
}
