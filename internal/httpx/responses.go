package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"libraryapi/internal/platform/apperror"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   ErrorResponseBody `json:"error"`
	Meta    map[string]any    `json:"meta,omitempty"`
}

type ErrorResponseBody struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DetailResponse is the confirmation body of mutating endpoints.
type DetailResponse struct {
	Detail string `json:"detail"`
	ID     *int64 `json:"id,omitempty"`
}

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func Detail(w http.ResponseWriter, statusCode int, detail string) {
	JSON(w, statusCode, DetailResponse{Detail: detail})
}

func JSONError(w http.ResponseWriter, statusCode int, code string, message string, details ...ErrorDetail) {
	JSON(w, statusCode, ErrorResponse{
		Success: false,
		Error: ErrorResponseBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.InvalidArgument:
		return http.StatusBadRequest
	case apperror.NotFound:
		return http.StatusNotFound
	case apperror.AlreadyExists, apperror.FailedPrecondition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteError encodes err for the client. Internal causes are logged with the
// request id and never reach the response body.
func WriteError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		JSONError(w, http.StatusBadRequest, apperror.InvalidArgument.String(), verr.Error(), verr.Details...)
		return
	}

	kind := apperror.KindOf(err)
	status := StatusFor(kind)
	requestID := RequestIDFrom(r)

	if kind == apperror.Internal {
		logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", requestID,
			"error", err,
		)
		JSONError(w, status, kind.String(), "Internal server error")
		return
	}

	var appErr *apperror.Error
	if errors.As(err, &appErr) && appErr.Err != nil {
		logger.WarnContext(r.Context(), "request rejected",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", requestID,
			"kind", kind.String(),
			"error", appErr.Err,
		)
	}
	JSONError(w, status, kind.String(), apperror.MessageOf(err, http.StatusText(status)))
}
