package library

import (
	"fmt"
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

// List handles GET /libs
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	libs, err := h.service.List(r.Context())
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, libs)
}

// Create handles POST /lib
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req Library
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if _, err := h.service.Create(r.Context(), req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.Detail(w, http.StatusOK, fmt.Sprintf("Added library %s", trim(req)))
}

// Delete handles DELETE /lib
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req Library
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if err := h.service.Delete(r.Context(), req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.Detail(w, http.StatusOK, fmt.Sprintf("Library (%s) deleted", trim(req).Name))
}

// UpdateStock handles POST /lib/stock
func (h *HTTPHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	var req Stock
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if err := h.service.UpdateStock(r.Context(), req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, "library stock updated")
}
