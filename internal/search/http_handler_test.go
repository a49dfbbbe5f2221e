package search

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func newTestHandler(t *testing.T) (*HTTPHandler, *MockRepository) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHTTPHandler(NewService(repo, logger), logger), repo
}

func TestHTTPHandler_Search(t *testing.T) {
	handler, mockRepo := newTestHandler(t)

	t.Run("hints", func(t *testing.T) {
		mockRepo.EXPECT().Search(gomock.Any(), "tol").Return([]Hint{
			{Kind: KindBook, Name: "Tolerance"},
			{Kind: KindAuthor, Name: "Tolkien"},
		}, nil)

		w := httptest.NewRecorder()
		handler.Search(w, httptest.NewRequest(http.MethodGet, "/search?q=tol", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"hints":{"Tolerance":"book","Tolkien":"author"}}`, w.Body.String())
	})

	t.Run("no match", func(t *testing.T) {
		mockRepo.EXPECT().Search(gomock.Any(), "zzz").Return(nil, nil)

		w := httptest.NewRecorder()
		handler.Search(w, httptest.NewRequest(http.MethodGet, "/search?q=zzz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"hints":{}}`, w.Body.String())
	})

	t.Run("missing or blank q", func(t *testing.T) {
		for _, target := range []string{"/search", "/search?q=", "/search?q=+"} {
			w := httptest.NewRecorder()
			handler.Search(w, httptest.NewRequest(http.MethodGet, target, nil))

			assert.Equal(t, http.StatusNotFound, w.Code, target)
		}
	})

	t.Run("store error", func(t *testing.T) {
		mockRepo.EXPECT().Search(gomock.Any(), "tol").Return(nil, context.DeadlineExceeded)

		w := httptest.NewRecorder()
		handler.Search(w, httptest.NewRequest(http.MethodGet, "/search?q=tol", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestService_HintsCollisionKeepsLastKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	repo.EXPECT().Search(gomock.Any(), "dune").Return([]Hint{
		{Kind: KindBook, Name: "Dune"},
		{Kind: KindLibrary, Name: "Dune"},
	}, nil)

	hints, err := svc.Hints(context.Background(), "dune")
	assert.NoError(t, err)
	assert.Equal(t, Hints{"Dune": KindLibrary}, hints)
}
