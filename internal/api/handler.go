package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hisakawa/shisan/internal/refresh"
)

// PortfolioSource provides the latest valuation result.
type PortfolioSource interface {
	Latest() (refresh.Result, bool)
	Refresh(ctx context.Context) error
}

// Handler provides HTTP endpoints for portfolio data.
type Handler struct {
	source PortfolioSource
}

// NewHandler creates a new API handler.
func NewHandler(source PortfolioSource) *Handler {
	return &Handler{source: source}
}

// GetPortfolio handles GET /api/v1/portfolio.
func (h *Handler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	result, ok := h.source.Latest()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "no valuation available yet")
		return
	}
	writeJSON(w, http.StatusOK, result.Portfolio)
}

// GetSummary handles GET /api/v1/portfolio/summary.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	result, ok := h.source.Latest()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "no valuation available yet")
		return
	}
	writeJSON(w, http.StatusOK, result.Portfolio.Summary)
}

// GetDividends handles GET /api/v1/dividends.
func (h *Handler) GetDividends(w http.ResponseWriter, r *http.Request) {
	result, ok := h.source.Latest()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "no valuation available yet")
		return
	}
	writeJSON(w, http.StatusOK, result.Dividends)
}

// ForceRefresh handles POST /api/v1/refresh.
func (h *Handler) ForceRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.source.Refresh(r.Context()); err != nil {
		if errors.Is(err, refresh.ErrRefreshInFlight) {
			writeError(w, http.StatusConflict, "refresh already running")
			return
		}
		slog.Error("forced refresh failed", "error", err)
		writeError(w, http.StatusInternalServerError, "refresh failed")
		return
	}

	result, ok := h.source.Latest()
	if !ok {
		writeError(w, http.StatusInternalServerError, "refresh produced no result")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		slog.Warn("failed to write HTTP response body", "error", err)
		return
	}
	_, _ = w.Write([]byte("\n"))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
