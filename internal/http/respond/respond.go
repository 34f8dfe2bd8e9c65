// Package respond writes the JSON bodies shared by the API handlers.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ebisa/contabil/internal/apperr"
	"github.com/ebisa/contabil/internal/importer"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Import writes an import result. The body is the result itself for both
// outcomes; the status tells them apart.
func Import(w http.ResponseWriter, res importer.Result) {
	JSON(w, ImportStatus(res), res)
}

func ImportStatus(res importer.Result) int {
	if res.Success {
		return http.StatusCreated
	}

	switch {
	case errors.Is(res.Err, apperr.ErrVigencyExists):
		return http.StatusConflict
	case errors.Is(res.Err, apperr.ErrCompanyNotFound):
		return http.StatusNotFound
	case errors.Is(res.Err, apperr.ErrInvalidInput),
		errors.Is(res.Err, apperr.ErrContextMismatch),
		errors.Is(res.Err, apperr.ErrSchema),
		errors.Is(res.Err, apperr.ErrMalformed),
		errors.Is(res.Err, apperr.ErrDecode):
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}

// Error maps lookup errors to a status; anything unexpected is logged and
// reported as an internal error.
func Error(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, apperr.ErrCompanyNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, apperr.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
