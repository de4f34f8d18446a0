package api

import (
	"net/http"

	"github.com/gorilla/mux"

	apperrors "consulting360/internal/errors"
)

// NewRouter wires the public API surface. Paths must match the frontend
// exactly; anything else is a JSON 404.
func NewRouter(availability *AvailabilityHandler, booking *BookingHandler, strategist *StrategistHandler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/hubspot/oro/availability/MonthInfo", availability.MonthInfo).Methods("GET")
	r.HandleFunc("/api/hubspot/oro/book", booking.CreateBooking).Methods("POST")
	r.HandleFunc("/api/ai/strategist", strategist.Analyze).Methods("POST")
	r.HandleFunc("/api/health", HealthCheck).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	return r
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{OK: true})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	e := apperrors.ErrNotFound()
	writeJSON(w, e.Code, ErrorResponse{Error: e.Message, Kind: e.Kind})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{
		Error: "Method not allowed",
		Kind:  apperrors.KindMethodNotAllowed,
	})
}
