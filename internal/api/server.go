package api

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"
)

// NewServer creates an HTTP server with all routes configured.
func NewServer(port string, source PortfolioSource, adminAPIKey string) *http.Server {
	handler := NewHandler(source)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /api/v1/portfolio", handler.GetPortfolio)
	mux.HandleFunc("GET /api/v1/portfolio/summary", handler.GetSummary)
	mux.HandleFunc("GET /api/v1/dividends", handler.GetDividends)

	refreshHandler := http.HandlerFunc(handler.ForceRefresh)
	if adminAPIKey != "" {
		mux.Handle("POST /api/v1/refresh", requireAuth(adminAPIKey, refreshHandler))
	} else {
		mux.Handle("POST /api/v1/refresh", refreshHandler)
	}

	return &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func requireAuth(apiKey string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		token := strings.TrimPrefix(auth, "Bearer ")
		if !strings.HasPrefix(auth, "Bearer ") || subtle.ConstantTimeCompare([]byte(token), []byte(apiKey)) != 1 {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
