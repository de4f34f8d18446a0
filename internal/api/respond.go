package api

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "consulting360/internal/errors"
	"consulting360/internal/hubspot"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError converts any handler failure into the uniform {error, kind}
// envelope. Everything is a 500 unless the error carries its own code.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	kind := apperrors.KindInternal

	var httpErr *apperrors.HTTPError
	var upstreamErr *hubspot.UpstreamError
	switch {
	case errors.As(err, &httpErr):
		status = httpErr.Code
		kind = httpErr.Kind
	case errors.As(err, &upstreamErr):
		kind = apperrors.KindUpstream
	}

	writeJSON(w, status, ErrorResponse{Error: err.Error(), Kind: kind})
}
