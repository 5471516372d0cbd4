package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Ramon-Molinero/pokedex/internal/domain"
)

// Error codes returned in the "code" field of error bodies.
const (
	CodeNotFound          = "NOT_FOUND"
	CodeConflict          = "CONFLICT"
	CodeValidation        = "VALIDATION"
	CodeSourceUnavailable = "SOURCE_UNAVAILABLE"
	CodeImportFailed      = "IMPORT_FAILED"
	CodeInternal          = "INTERNAL"
)

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Details []domain.FieldError `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// handleError maps a service error onto a status code and error body.
// Only unexpected failures are logged; their detail is not sent to the client.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   err.Error(),
			Code:    CodeValidation,
			Details: verr.Errors,
		})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, CodeValidation, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, CodeConflict, err.Error())
	case errors.Is(err, domain.ErrSourceUnavailable):
		log.WarnContext(r.Context(), "source unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, CodeSourceUnavailable, "pokemon source unavailable")
	case errors.Is(err, domain.ErrImportFailed):
		writeError(w, http.StatusInternalServerError, CodeImportFailed, err.Error())
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
	}
}
