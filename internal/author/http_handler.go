package author

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

// List handles GET /authors
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.service.List(r.Context())
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, authors)
}

// Create handles POST /author?author_name= or a {"author_name"} body.
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	name, err := authorName(r)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if _, err := h.service.Create(r.Context(), name); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.Detail(w, http.StatusOK, "added author")
}

// Delete handles DELETE /author?author_name= or a {"author_name"} body.
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name, err := authorName(r)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if err := h.service.Delete(r.Context(), name); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.Detail(w, http.StatusOK, "author deleted")
}

// authorName prefers the query parameter and falls back to the JSON body.
func authorName(r *http.Request) (string, error) {
	if name := r.URL.Query().Get("author_name"); name != "" {
		return name, nil
	}
	var req NameRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return "", err
	}
	return req.AuthorName, nil
}
