package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"sales-campaigns/internal/core/domain"
)

type holidayView struct {
	Key  string `json:"key"`
	Date string `json:"date"`
}

// handleHolidays returns the holiday calendar for the `year` query
// parameter, or for the current year when it is missing. Invalid years
// result in HTTP 400.
func (h *Handler) handleHolidays(w http.ResponseWriter, r *http.Request) {
	var year int
	if s := r.URL.Query().Get("year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil || y < 1 || y > 9999 {
			http.Error(w, "invalid 'year'", http.StatusBadRequest)
			return
		}
		year = y
	}

	entries, err := h.svc.Holidays(r.Context(), year)
	if err != nil {
		h.writeError(w, r, "holidays", err)
		return
	}
	out := make([]holidayView, 0, len(entries))
	for _, e := range entries {
		out = append(out, holidayView{Key: e.Key, Date: e.ISODate()})
	}
	h.writeJSON(w, out)
}

// handleSaveCustomHolidays replaces the custom holidays with the sanitized
// rows of the request body and echoes the rows that were kept.
func (h *Handler) handleSaveCustomHolidays(w http.ResponseWriter, r *http.Request) {
	var rows []domain.CustomHolidayInput
	if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	kept, err := h.svc.SaveCustomHolidays(r.Context(), rows)
	if err != nil {
		h.writeError(w, r, "save custom holidays", err)
		return
	}
	h.writeJSON(w, kept)
}
