package api

import (
	"net/http"

	"consulting360/internal/service"
)

type AvailabilityHandler struct {
	Service *service.AvailabilityService
}

func NewAvailabilityHandler(svc *service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

func (h *AvailabilityHandler) MonthInfo(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	timezone := r.URL.Query().Get("timezone")

	result, err := h.Service.MonthInfo(r.Context(), month, timezone)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
