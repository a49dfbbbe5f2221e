package author

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"libraryapi/internal/platform/apperror"
	"libraryapi/internal/testutil"
)

func newTestHandler(t *testing.T) (*HTTPHandler, *MockRepository) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHTTPHandler(NewService(repo, logger), logger), repo
}

func TestHTTPHandler_List(t *testing.T) {
	handler, mockRepo := newTestHandler(t)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return([]Author{
			{ID: 1, Name: "Unknown"},
			{ID: 12, Name: "J. R. R. Tolkien"},
			{ID: 3, Name: "Ursula K. Le Guin"},
		}, nil)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/authors", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `{"1":"Unknown","12":"J. R. R. Tolkien","3":"Ursula K. Le Guin"}`, strings.TrimSpace(w.Body.String()))
	})

	t.Run("error", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(nil, context.Canceled)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/authors", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHTTPHandler_Create(t *testing.T) {
	handler, mockRepo := newTestHandler(t)

	t.Run("query param", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), "Frank Herbert").Return(int64(4), nil)

		w := httptest.NewRecorder()
		handler.Create(w, httptest.NewRequest(http.MethodPost, "/author?author_name=Frank+Herbert", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"detail":"added author"}`, w.Body.String())
	})

	t.Run("json body", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), "Octavia Butler").Return(int64(5), nil)

		w := httptest.NewRecorder()
		handler.Create(w, testutil.NewRequest(http.MethodPost, "/author", NameRequest{AuthorName: " Octavia Butler "}))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("duplicate", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), "Frank Herbert").Return(int64(0), ErrAlreadyExists)

		w := httptest.NewRecorder()
		handler.Create(w, httptest.NewRequest(http.MethodPost, "/author?author_name=Frank+Herbert", nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusConflict, resp.Code)
		assert.Equal(t, apperror.AlreadyExists.String(), resp.ErrorCode())
	})

	t.Run("missing name", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Create(w, httptest.NewRequest(http.MethodPost, "/author", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("blank name", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Create(w, httptest.NewRequest(http.MethodPost, "/author?author_name=+++", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_Delete(t *testing.T) {
	handler, mockRepo := newTestHandler(t)

	tests := []struct {
		name     string
		repoErr  error
		wantCode int
	}{
		{"deleted", nil, http.StatusOK},
		{"absent", ErrNotFound, http.StatusNotFound},
		{"still referenced", ErrInUse, http.StatusConflict},
		{"reserved", ErrReserved, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().Delete(gomock.Any(), "Frank Herbert").Return(tt.repoErr)

			w := httptest.NewRecorder()
			handler.Delete(w, httptest.NewRequest(http.MethodDelete, "/author?author_name=Frank%20Herbert", nil))

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
