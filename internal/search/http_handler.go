package search

import (
	"log/slog"
	"net/http"

	"libraryapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
	logger  *slog.Logger
}

func NewHTTPHandler(service *Service, logger *slog.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, logger: logger}
}

type hintsResponse struct {
	Hints Hints `json:"hints"`
}

// Search handles GET /search?q=
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	hints, err := h.service.Hints(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, hintsResponse{Hints: hints})
}
