package book

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

type listResponse struct {
	Books Collection `json:"books"`
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := ParseListQuery(r.URL.Query())
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	books, err := h.service.List(r.Context(), q)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, listResponse{Books: books})
}

// Get handles GET /book?title=&author=
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	book, err := h.service.Get(r.Context(), query.Get("title"), query.Get("author"))
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, book)
}

// Create handles POST /book
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req NewBook
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, httpx.DetailResponse{Detail: "book created", ID: &id})
}

// Delete handles DELETE /book
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req Ref
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	if err := h.service.Delete(r.Context(), req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.Detail(w, http.StatusOK, "book deleted")
}
