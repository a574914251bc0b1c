package httpadapter

import (
	"encoding/json"
	"net/http"
)

// maxQuoteProducts bounds the number of products priced in one request.
const maxQuoteProducts = 100

// handleQuoteProduct prices a single product. Invalid ids produce HTTP 400,
// unknown products HTTP 404.
func (h *Handler) handleQuoteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	q, err := h.svc.QuoteProduct(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "quote product", err)
		return
	}
	h.writeJSON(w, q)
}

type quoteRequest struct {
	ProductIDs []int64 `json:"product_ids"`
}

// handleQuoteProducts prices a list of products within one evaluation
// context. The request body is {"product_ids": [...]}.
func (h *Handler) handleQuoteProducts(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if len(req.ProductIDs) > maxQuoteProducts {
		http.Error(w, "too many products", http.StatusBadRequest)
		return
	}
	quotes, err := h.svc.QuoteProducts(r.Context(), req.ProductIDs)
	if err != nil {
		h.writeError(w, r, "quote products", err)
		return
	}
	h.writeJSON(w, quotes)
}
