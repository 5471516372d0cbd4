package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Ramon-Molinero/pokedex/internal/service/seed"
)

type seedService interface {
	Reseed(ctx context.Context) (*seed.Summary, error)
}

// SeedHandler triggers a reseed of the collection.
type SeedHandler struct {
	svc seedService
	log *slog.Logger
}

// NewSeedHandler creates a SeedHandler.
func NewSeedHandler(svc seedService, logger *slog.Logger) *SeedHandler {
	return &SeedHandler{svc: svc, log: logger.With("handler", "seed")}
}

type seedResponse struct {
	Message           string `json:"message"`
	Fetched           int    `json:"fetched"`
	Inserted          int    `json:"inserted"`
	DuplicatesSkipped int    `json:"duplicatesSkipped"`
	InvalidSkipped    int    `json:"invalidSkipped"`
}

// Execute handles GET /api/v2/seed.
func (h *SeedHandler) Execute(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Reseed(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, seedResponse{
		Message:           "Seed Executed",
		Fetched:           sum.Fetched,
		Inserted:          sum.Inserted,
		DuplicatesSkipped: sum.DuplicatesSkipped,
		InvalidSkipped:    sum.InvalidSkipped,
	})
}
