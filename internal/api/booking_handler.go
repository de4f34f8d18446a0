package api

import (
	"encoding/json"
	"net/http"

	"consulting360/internal/entities"
	apperrors "consulting360/internal/errors"
	"consulting360/internal/service"
)

type BookingHandler struct {
	Service *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request", Kind: apperrors.KindInvalidRequest})
		return
	}

	confirmation, err := h.Service.CreateBooking(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	// The provider confirmation is opaque; relay it byte-for-byte.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(confirmation)
}
