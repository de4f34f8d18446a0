package api

import (
	"encoding/json"
	"log"
	"net/http"

	"consulting360/internal/entities"
	apperrors "consulting360/internal/errors"
	"consulting360/internal/service"
)

type StrategistHandler struct {
	Service *service.StrategistService
	Sender  *service.SenderService
}

func NewStrategistHandler(svc *service.StrategistService, sender *service.SenderService) *StrategistHandler {
	return &StrategistHandler{Service: svc, Sender: sender}
}

func (h *StrategistHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req entities.StrategistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request", Kind: apperrors.KindInvalidRequest})
		return
	}

	if req.Email != "" {
		log.Printf("[LEAD] AI Strategist from: %s", req.Email)
		h.Sender.SendLeadEmail(req.Email, req.Input)
	}

	analysis, err := h.Service.GenerateStrategy(r.Context(), req.Input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}
