package gateway

import (
	"net/http"

	domainerrors "roamtable/pkg/domain-errors"
)

// AsError converts a non-OK result into a coded domain error, for callers
// that prefer idiomatic Go errors over the raw result shape. The raw gateway
// layer itself never errors; this translation happens exactly once, in the
// domain services built on top of it.
func AsError(res Result) error {
	if res.OK() {
		return nil
	}

	msg := res.Err
	if msg == "" {
		msg = genericFailure
	}

	var code domainerrors.Code
	switch {
	case res.SessionExpired:
		code = domainerrors.CodeSessionExpired
	case res.Status == 0:
		code = domainerrors.CodeUnavailable
	case res.Status == http.StatusNotFound:
		code = domainerrors.CodeNotFound
	case res.Status == http.StatusBadRequest:
		code = domainerrors.CodeBadRequest
	case res.Status == http.StatusConflict:
		code = domainerrors.CodeConflict
	case res.Status == http.StatusUnprocessableEntity:
		code = domainerrors.CodeValidation
	case res.Status == http.StatusRequestTimeout || res.Status == http.StatusGatewayTimeout:
		code = domainerrors.CodeTimeout
	case res.Status >= 500:
		code = domainerrors.CodeUnavailable
	default:
		code = domainerrors.CodeInternal
	}
	return domainerrors.New(code, msg)
}
