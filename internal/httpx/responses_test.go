package httpx

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryapi/internal/platform/apperror"
)

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusCreated, map[string]string{"key": "value"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"key":"value"}`, w.Body.String())
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	JSONError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "Invalid input", ErrorDetail{Field: "title", Message: "title is required"})

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.False(t, response.Success)
	assert.Equal(t, "INVALID_ARGUMENT", response.Error.Code)
	assert.Len(t, response.Error.Details, 1)
}

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid argument", apperror.InvalidArgumentf("sort_by %q is not supported", "x"), http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"not found", apperror.NotFoundf("book not found"), http.StatusNotFound, "NOT_FOUND"},
		{"already exists", fmt.Errorf("create: %w", apperror.AlreadyExistsf("This book exists")), http.StatusConflict, "ALREADY_EXISTS"},
		{"failed precondition", apperror.New(apperror.FailedPrecondition, "author has books"), http.StatusConflict, "FAILED_PRECONDITION"},
		{"internal", errors.New("pq: connection refused"), http.StatusInternalServerError, "INTERNAL"},
		{"validation", &ValidationError{Details: []ErrorDetail{{Field: "pages"}}}, http.StatusBadRequest, "INVALID_ARGUMENT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, httptest.NewRequest(http.MethodGet, "/books", nil), discardLogger(), tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var response ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
			assert.Equal(t, tt.wantCode, response.Error.Code)
		})
	}
}

func TestWriteError_InternalDetailStaysInLogs(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	w := httptest.NewRecorder()
	WriteError(w, httptest.NewRequest(http.MethodGet, "/books", nil), logger, errors.New("password authentication failed for user admin"))

	assert.NotContains(t, w.Body.String(), "password authentication")
	assert.True(t, strings.Contains(logs.String(), "password authentication"))
}

type decodeTarget struct {
	Title string `json:"title" validate:"notblank"`
	Pages int    `json:"pages" validate:"gte=1"`
}

func TestDecodeJSON(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var dst decodeTarget
		r := httptest.NewRequest(http.MethodPost, "/book", strings.NewReader(`{"title":"Dune","pages":412}`))
		require.NoError(t, DecodeJSON(r, &dst))
		assert.Equal(t, "Dune", dst.Title)
	})

	t.Run("empty body", func(t *testing.T) {
		var dst decodeTarget
		r := httptest.NewRequest(http.MethodPost, "/book", strings.NewReader(""))
		err := DecodeJSON(r, &dst)
		assert.Equal(t, apperror.InvalidArgument, apperror.KindOf(err))
	})

	t.Run("malformed", func(t *testing.T) {
		var dst decodeTarget
		r := httptest.NewRequest(http.MethodPost, "/book", strings.NewReader(`{"title":`))
		err := DecodeJSON(r, &dst)
		assert.Equal(t, apperror.InvalidArgument, apperror.KindOf(err))
	})

	t.Run("validation details use json names", func(t *testing.T) {
		var dst decodeTarget
		r := httptest.NewRequest(http.MethodPost, "/book", strings.NewReader(`{"title":"  ","pages":0}`))
		err := DecodeJSON(r, &dst)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		fields := []string{verr.Details[0].Field, verr.Details[1].Field}
		assert.ElementsMatch(t, []string{"title", "pages"}, fields)
	})
}
