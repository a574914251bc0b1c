package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"sales-campaigns/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: every request runs its own evaluation context through the use case.
// The global store notice is the host's configured notice, which an active
// notice campaign may override.
type Handler struct {
	svc    port.CampaignUseCase
	notice port.StoreNotice
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, notice port.StoreNotice, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, notice: notice, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/running", h.handleRunningCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Get("/products/{id}/quote", h.handleQuoteProduct)
		r.Post("/products/quote", h.handleQuoteProducts)
		r.Get("/store-notice", h.handleStoreNotice)
		r.Get("/holidays", h.handleHolidays)
		r.Put("/holidays/custom", h.handleSaveCustomHolidays)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps use case errors onto status codes. Unknown errors are
// logged and reported as 500 without details.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, port.ErrCampaignNotFound), errors.Is(err, port.ErrProductNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		h.logger.Error(op+" error",
			slog.Any("error", err),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
