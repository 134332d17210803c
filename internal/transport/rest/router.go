package rest

import (
	"net/http"
)

// NewRouter builds the HTTP route table. Middleware is applied by the caller
// so tests can exercise routes without the full chain.
func NewRouter(study *StudyHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", health.Live)
	mux.HandleFunc("GET /readyz", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("POST /api/v1/flashcards/{id}/rating", study.RateCard)
	mux.HandleFunc("GET /api/v1/flashcards", study.ListCards)
	mux.HandleFunc("GET /api/v1/flashcards/{id}/reviews", study.CardHistory)
	mux.HandleFunc("GET /api/v1/study/dashboard", study.Dashboard)

	return mux
}
