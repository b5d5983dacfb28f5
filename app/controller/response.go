package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"snackshop/schema"
	"snackshop/service"
)

// offlineMessage is returned when offline mode blocks a network call
const offlineMessage = "offline mode enabled"

var errOffline = errors.New(offlineMessage)

// OfflineChecker reports whether the session is in offline mode
type OfflineChecker interface {
	OfflineMode() bool
}

// errorResponse represents the JSON body of a failed request
type errorResponse struct {
	Error  string         `json:"error"`
	Kind   string         `json:"kind,omitempty"`
	Issues []schema.Issue `json:"issues,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps a service failure to its HTTP status
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, op string, err error) {
	kind := service.KindOf(err)
	resp := errorResponse{Error: err.Error(), Kind: string(kind)}

	status := http.StatusInternalServerError
	switch kind {
	case service.KindSchemaValidation:
		status = http.StatusBadRequest
		var ve *schema.ValidationError
		if errors.As(err, &ve) {
			resp.Issues = ve.Issues
		}
	case service.KindEmptyCart:
		status = http.StatusUnprocessableEntity
	case service.KindServiceUnavailable:
		status = http.StatusServiceUnavailable
	}

	logger.Warn("request failed",
		zap.String("operation", op),
		zap.String("kind", string(kind)),
		zap.Int("status", status),
		zap.Error(err))
	writeJSON(w, status, resp)
}
