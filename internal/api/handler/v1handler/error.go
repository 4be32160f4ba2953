package v1handler

import (
	"context"
	"net/http"

	"orgdomain/pkg/logger"
	"orgdomain/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// ErrorBody is the JSON body of every non-2xx response.
type ErrorBody struct {
	Code    string
	Message string
}

// ErrorResponse pairs an ErrorBody with its HTTP status.
type ErrorResponse struct {
	StatusCode int
	Response   ErrorBody
}

var kindStatuses = map[serrors.Kind]struct { //nolint: gochecknoglobals
	status  int
	message string
}{
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:    {http.StatusForbidden, "forbidden"},
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
}

// NewError maps err to a response. Only messages attached through serrors
// reach the client; internal errors are logged and replaced by a generic text.
func NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)

	mapped, ok := kindStatuses[kind]
	if !ok {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Response: ErrorBody{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	msg := serrors.MessageOf(err)
	if msg == "" {
		msg = mapped.message
	}
	if mapped.status == http.StatusServiceUnavailable {
		logger.Warn(ctx, "dependency unavailable", zap.Error(err))
	}

	return &ErrorResponse{
		StatusCode: mapped.status,
		Response: ErrorBody{
			Code:    kind.Error(),
			Message: msg,
		},
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := NewError(r.Context(), err)

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("code")
	e.Str(res.Response.Code)
	e.FieldStart("message")
	e.Str(res.Response.Message)
	e.ObjEnd()

	writeJSON(w, res.StatusCode, e.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
