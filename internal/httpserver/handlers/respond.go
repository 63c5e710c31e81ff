package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"salespark/internal/services"
)

func respondJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func respondError(w http.ResponseWriter, code int, msg string) {
	respondJSON(w, code, map[string]string{"error": msg})
}

// respondServiceError maps workflow errors onto the HTTP taxonomy. Store
// failures are logged server-side and reported generically.
func respondServiceError(w http.ResponseWriter, lg *zap.SugaredLogger, err error, conflictMsg, notFoundMsg string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		respondError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, services.ErrNotFound):
		respondError(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, services.ErrConflict):
		respondError(w, http.StatusConflict, conflictMsg)
	case errors.Is(err, services.ErrForbidden):
		respondError(w, http.StatusForbidden, "forbidden")
	default:
		lg.Errorw("store failure", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
