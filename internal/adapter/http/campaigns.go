package httpadapter

import (
	"net/http"
)

// handleListCampaigns returns every published campaign with its computed
// status, window and discount label.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, "list campaigns", err)
		return
	}
	h.writeJSON(w, list)
}

// handleGetCampaign returns a single campaign. A non-numeric {id} results
// in HTTP 400 and an unknown one in HTTP 404.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	ov, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "get campaign", err)
		return
	}
	h.writeJSON(w, ov)
}

// handleRunningCampaigns returns the ids of running campaigns in ascending
// order.
func (h *Handler) handleRunningCampaigns(w http.ResponseWriter, r *http.Request) {
	ids, err := h.svc.RunningCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, "running campaigns", err)
		return
	}
	h.writeJSON(w, struct {
		IDs []int64 `json:"ids"`
	}{IDs: ids})
}

// handleStoreNotice returns the store notice to display, taking an active
// notice campaign into account.
func (h *Handler) handleStoreNotice(w http.ResponseWriter, r *http.Request) {
	notice, err := h.svc.StoreNotice(r.Context(), h.notice)
	if err != nil {
		h.writeError(w, r, "store notice", err)
		return
	}
	h.writeJSON(w, notice)
}
