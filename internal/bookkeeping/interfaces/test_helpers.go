package interfaces

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// respondJSON and respondError are the package-local fallbacks matching the
// signatures the handlers accept through their constructors. Handler tests
// wire these directly; the server binary injects its own pair.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.WithError(err).Error("could not encode response payload")
	}
}

func respondError(w http.ResponseWriter, status int, message string, errs ...[]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}
	if len(errs) > 0 && len(errs[0]) > 0 {
		payload["errors"] = errs[0]
	}
	respondJSON(w, status, payload)
}
